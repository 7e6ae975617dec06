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
	"reflect"

	"github.com/holiman/uint256"

	"github.com/ImL1s/web3go/common"
)

// Encode head-tail-encodes the ordered (type, value) pairs into one parameter
// block, per the Solidity Contract ABI.
func Encode(types []Type, values []interface{}) ([]byte, error) {
	if len(types) != len(values) {
		return nil, fmt.Errorf("%w: %d types but %d values", ErrEncode, len(types), len(values))
	}
	return encodeBlock(types, values)
}

// encodeBlock lays out one head-tail block. Every element contributes its
// static size to the head; dynamic elements store an offset there, relative to
// the start of the block, pointing into the appended tail.
func encodeBlock(types []Type, values []interface{}) ([]byte, error) {
	headSize := 0
	for _, t := range types {
		headSize += t.StaticSize()
	}
	var head, tail []byte
	for i, t := range types {
		enc, err := t.encodeValue(values[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		if t.IsDynamic() {
			head = append(head, encodeLength(headSize+len(tail))...)
			tail = append(tail, enc...)
		} else {
			head = append(head, enc...)
		}
	}
	return append(head, tail...), nil
}

// encodeValue produces the standalone encoding of a single value: the inline
// 32-byte words for static types, or the tail content (with inner offsets
// relative to its own start) for dynamic types.
func (t Type) encodeValue(v interface{}) ([]byte, error) {
	switch t.Kind {
	case KindUint, KindInt:
		i, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		return t.encodeInteger(i)

	case KindAddress:
		a, err := toAddress(v)
		if err != nil {
			return nil, err
		}
		word := make([]byte, 32)
		copy(word[12:], a[:])
		return word, nil

	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: expected bool, got %T", ErrEncode, v)
		}
		word := make([]byte, 32)
		if b {
			word[31] = 1
		}
		return word, nil

	case KindFixedBytes:
		b, err := toFixedBytes(v, t.Size)
		if err != nil {
			return nil, err
		}
		// bytesN is right-padded, unlike integers
		word := make([]byte, 32)
		copy(word, b)
		return word, nil

	case KindBytes:
		b, ok := v.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: expected []byte, got %T", ErrEncode, v)
		}
		return encodeLengthPrefixed(b), nil

	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string, got %T", ErrEncode, v)
		}
		// The length word and the padding both count UTF-8 bytes, never
		// characters.
		return encodeLengthPrefixed([]byte(s)), nil

	case KindArray:
		elems, err := toSlice(v)
		if err != nil {
			return nil, err
		}
		if t.Len >= 0 && len(elems) != t.Len {
			return nil, fmt.Errorf("%w: expected %d array elements, got %d", ErrEncode, t.Len, len(elems))
		}
		elemTypes := make([]Type, len(elems))
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		block, err := encodeBlock(elemTypes, elems)
		if err != nil {
			return nil, err
		}
		if t.Len >= 0 {
			return block, nil
		}
		return append(encodeLength(len(elems)), block...), nil

	case KindTuple:
		elems, err := toSlice(v)
		if err != nil {
			return nil, err
		}
		if len(elems) != len(t.Components) {
			return nil, fmt.Errorf("%w: expected %d tuple components, got %d", ErrEncode, len(t.Components), len(elems))
		}
		return encodeBlock(t.Components, elems)

	default:
		return nil, fmt.Errorf("%w: unhandled kind %d", ErrEncode, t.Kind)
	}
}

var (
	two256 = new(big.Int).Lsh(big.NewInt(1), 256)
)

// encodeInteger range-checks i against the declared bit width and emits the
// left-padded 32-byte word, two's-complement for signed types. Out-of-range
// values are rejected, never wrapped.
func (t Type) encodeInteger(i *big.Int) ([]byte, error) {
	if t.Kind == KindUint {
		if i.Sign() < 0 {
			return nil, fmt.Errorf("%w: negative value for %s", ErrEncode, t)
		}
		if i.BitLen() > t.Bits {
			return nil, fmt.Errorf("%w: value out of range for %s", ErrEncode, t)
		}
		word := make([]byte, 32)
		i.FillBytes(word)
		return word, nil
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(t.Bits-1))
	if i.Sign() >= 0 {
		if i.Cmp(bound) >= 0 {
			return nil, fmt.Errorf("%w: value out of range for %s", ErrEncode, t)
		}
	} else if new(big.Int).Neg(i).Cmp(bound) > 0 {
		return nil, fmt.Errorf("%w: value out of range for %s", ErrEncode, t)
	}
	word := make([]byte, 32)
	if i.Sign() < 0 {
		new(big.Int).Add(two256, i).FillBytes(word)
	} else {
		i.FillBytes(word)
	}
	return word, nil
}

func encodeLength(n int) []byte {
	word := make([]byte, 32)
	big.NewInt(int64(n)).FillBytes(word)
	return word
}

func encodeLengthPrefixed(content []byte) []byte {
	out := encodeLength(len(content))
	out = append(out, content...)
	if pad := len(content) % 32; pad != 0 {
		out = append(out, make([]byte, 32-pad)...)
	}
	return out
}

func toBigInt(v interface{}) (*big.Int, error) {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrEncode)
		}
		return x, nil
	case *uint256.Int:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *uint256.Int", ErrEncode)
		}
		return x.ToBig(), nil
	case int:
		return big.NewInt(int64(x)), nil
	case int8:
		return big.NewInt(int64(x)), nil
	case int16:
		return big.NewInt(int64(x)), nil
	case int32:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	default:
		return nil, fmt.Errorf("%w: expected integer, got %T", ErrEncode, v)
	}
}

func toAddress(v interface{}) (common.Address, error) {
	switch x := v.(type) {
	case common.Address:
		return x, nil
	case [20]byte:
		return common.Address(x), nil
	case []byte:
		if len(x) != 20 {
			return common.Address{}, fmt.Errorf("%w: address needs 20 bytes, got %d", ErrEncode, len(x))
		}
		return common.BytesToAddress(x), nil
	case string:
		a, err := common.HexToAddress(x)
		if err != nil {
			return common.Address{}, fmt.Errorf("%w: %v", ErrEncode, err)
		}
		return a, nil
	default:
		return common.Address{}, fmt.Errorf("%w: expected address, got %T", ErrEncode, v)
	}
}

func toFixedBytes(v interface{}, size int) ([]byte, error) {
	if b, ok := v.([]byte); ok {
		if len(b) != size {
			return nil, fmt.Errorf("%w: expected %d fixed bytes, got %d", ErrEncode, size, len(b))
		}
		return b, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		if rv.Len() != size {
			return nil, fmt.Errorf("%w: expected %d fixed bytes, got %d", ErrEncode, size, rv.Len())
		}
		b := make([]byte, size)
		reflect.Copy(reflect.ValueOf(b), rv)
		return b, nil
	}
	return nil, fmt.Errorf("%w: expected %d-byte value, got %T", ErrEncode, size, v)
}

// toSlice flattens any slice or array value into []interface{} so array and
// tuple elements can be encoded uniformly.
func toSlice(v interface{}) ([]interface{}, error) {
	if s, ok := v.([]interface{}); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: expected slice or array, got %T", ErrEncode, v)
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
