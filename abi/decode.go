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
	"math/big"

	"github.com/ImL1s/web3go/common"
)

// Decode reads one head-tail parameter block. The buffer must not carry a
// leading function selector; callers strip it before decoding call data.
//
// Decoded values are returned as *big.Int (uintN/intN), common.Address, bool,
// []byte (bytes and bytesN), string, and []interface{} (arrays and tuples).
func Decode(types []Type, data []byte) ([]interface{}, error) {
	return decodeBlock(types, data)
}

// decodeBlock walks the head sequentially; dynamic elements are followed
// through their offset slot into the tail. Offsets are validated against the
// block bounds before any read.
func decodeBlock(types []Type, block []byte) ([]interface{}, error) {
	values := make([]interface{}, len(types))
	cursor := 0
	for i, t := range types {
		if t.IsDynamic() {
			offset, err := readLength(block, cursor, "offset")
			if err != nil {
				return nil, err
			}
			if offset > len(block) {
				return nil, fmt.Errorf("%w: offset %d outside block of %d bytes", ErrDecode, offset, len(block))
			}
			// inner offsets of the element are relative to its own tail start
			values[i], err = t.decodeValue(block[offset:])
			if err != nil {
				return nil, err
			}
		} else {
			if cursor+t.StaticSize() > len(block) {
				return nil, fmt.Errorf("%w: insufficient data for %s at offset %d", ErrDecode, t, cursor)
			}
			var err error
			values[i], err = t.decodeValue(block[cursor:])
			if err != nil {
				return nil, err
			}
		}
		cursor += t.StaticSize()
	}
	return values, nil
}

// decodeValue reads a single value whose encoding starts at data[0].
func (t Type) decodeValue(data []byte) (interface{}, error) {
	switch t.Kind {
	case KindUint, KindInt:
		word, err := readWord(data, 0, t)
		if err != nil {
			return nil, err
		}
		i := new(big.Int).SetBytes(word)
		if t.Kind == KindInt && i.Bit(255) == 1 {
			i.Sub(i, two256)
		}
		return i, nil

	case KindAddress:
		word, err := readWord(data, 0, t)
		if err != nil {
			return nil, err
		}
		return common.BytesToAddress(word[12:]), nil

	case KindBool:
		word, err := readWord(data, 0, t)
		if err != nil {
			return nil, err
		}
		for _, b := range word[:31] {
			if b != 0 {
				return nil, fmt.Errorf("%w: malformed bool word", ErrDecode)
			}
		}
		switch word[31] {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return nil, fmt.Errorf("%w: malformed bool word", ErrDecode)
		}

	case KindFixedBytes:
		word, err := readWord(data, 0, t)
		if err != nil {
			return nil, err
		}
		return common.CopyBytes(word[:t.Size]), nil

	case KindBytes, KindString:
		length, err := readLength(data, 0, "length")
		if err != nil {
			return nil, err
		}
		if 32+length > len(data) {
			return nil, fmt.Errorf("%w: insufficient data for %s of %d bytes", ErrDecode, t, length)
		}
		content := data[32 : 32+length]
		if t.Kind == KindString {
			return string(content), nil
		}
		return common.CopyBytes(content), nil

	case KindArray:
		n := t.Len
		block := data
		if t.Len < 0 {
			var err error
			n, err = readLength(data, 0, "array length")
			if err != nil {
				return nil, err
			}
			block = data[32:]
		}
		elemHead := t.Elem.StaticSize()
		if n > 0 && n*elemHead > len(block) {
			return nil, fmt.Errorf("%w: insufficient data for %d array elements", ErrDecode, n)
		}
		elemTypes := make([]Type, n)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		return decodeBlock(elemTypes, block)

	case KindTuple:
		return decodeBlock(t.Components, data)

	default:
		return nil, fmt.Errorf("%w: unhandled kind %d", ErrDecode, t.Kind)
	}
}

func readWord(data []byte, at int, t Type) ([]byte, error) {
	if at+32 > len(data) {
		return nil, fmt.Errorf("%w: insufficient data for %s at offset %d", ErrDecode, t, at)
	}
	return data[at : at+32], nil
}

// readLength reads a 32-byte word as a non-negative machine integer, failing
// on values that cannot address the buffer.
func readLength(data []byte, at int, what string) (int, error) {
	if at+32 > len(data) {
		return 0, fmt.Errorf("%w: insufficient data for %s at offset %d", ErrDecode, what, at)
	}
	i := new(big.Int).SetBytes(data[at : at+32])
	if i.BitLen() > 31 {
		return 0, fmt.Errorf("%w: %s out of range", ErrDecode, what)
	}
	return int(i.Int64()), nil
}
