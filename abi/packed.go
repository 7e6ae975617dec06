// Copyright 2026 The web3go Authors
// This file is part of web3go.
//
// web3go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// web3go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with web3go. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"fmt"
)

// EncodePacked concatenates values in the non-standard packed mode: integers
// shrink to their declared width, bytes and strings are emitted raw with no
// length word, nothing is padded and no offsets exist. Packed encoding is not
// reversible and tuples are not supported in it.
func EncodePacked(types []Type, values []interface{}) ([]byte, error) {
	if len(types) != len(values) {
		return nil, fmt.Errorf("%w: %d types but %d values", ErrEncode, len(types), len(values))
	}
	var out []byte
	for i, t := range types {
		enc, err := t.encodePacked(values[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, enc...)
	}
	return out, nil
}

func (t Type) encodePacked(v interface{}) ([]byte, error) {
	switch t.Kind {
	case KindUint, KindInt:
		i, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		word, err := t.encodeInteger(i)
		if err != nil {
			return nil, err
		}
		return word[32-t.Bits/8:], nil

	case KindAddress:
		a, err := toAddress(v)
		if err != nil {
			return nil, err
		}
		return a.Bytes(), nil

	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: expected bool, got %T", ErrEncode, v)
		}
		if b {
			return []byte{1}, nil
		}
		return []byte{0}, nil

	case KindFixedBytes:
		return toFixedBytes(v, t.Size)

	case KindBytes:
		b, ok := v.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: expected []byte, got %T", ErrEncode, v)
		}
		return b, nil

	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string, got %T", ErrEncode, v)
		}
		return []byte(s), nil

	case KindArray:
		elems, err := toSlice(v)
		if err != nil {
			return nil, err
		}
		if t.Len >= 0 && len(elems) != t.Len {
			return nil, fmt.Errorf("%w: expected %d array elements, got %d", ErrEncode, t.Len, len(elems))
		}
		var out []byte
		for _, e := range elems {
			enc, err := t.Elem.encodePacked(e)
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: type %s not supported in packed mode", ErrEncode, t)
	}
}
