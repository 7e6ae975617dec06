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

// Package rlp implements the Recursive Length Prefix serialization format.
//
// RLP has two data types: byte strings and lists of items. The package
// models them as an Item union and encodes integers as their minimal
// big-endian byte string, zero as the empty string.
package rlp

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

type Kind uint8

const (
	KindString Kind = iota
	KindList
)

// Item is one node of an RLP value: either a byte string or a list of items.
// The zero Item is the empty byte string.
type Item struct {
	kind Kind
	str  []byte
	list []Item
}

// Bytes returns a byte-string item. nil is the empty string.
func Bytes(b []byte) Item {
	return Item{kind: KindString, str: b}
}

// Uint returns a byte-string item holding the minimal big-endian encoding of u.
func Uint(u uint64) Item {
	if u == 0 {
		return Item{kind: KindString}
	}
	var b [8]byte
	n := 0
	for i := 7; i >= 0; i-- {
		b[i] = byte(u)
		u >>= 8
		n = 8 - i
		if u == 0 {
			break
		}
	}
	return Item{kind: KindString, str: append([]byte(nil), b[8-n:]...)}
}

// Uint256 returns a byte-string item holding the minimal big-endian encoding
// of i. nil encodes as zero.
func Uint256(i *uint256.Int) Item {
	if i == nil {
		return Item{kind: KindString}
	}
	return Item{kind: KindString, str: i.Bytes()}
}

// BigInt returns a byte-string item holding the minimal big-endian encoding
// of non-negative i. nil encodes as zero.
func BigInt(i *big.Int) Item {
	if i == nil || i.Sign() == 0 {
		return Item{kind: KindString}
	}
	return Item{kind: KindString, str: i.Bytes()}
}

// List returns a list item over the given children.
func List(items ...Item) Item {
	if items == nil {
		items = []Item{}
	}
	return Item{kind: KindList, list: items}
}

func (i Item) Kind() Kind { return i.kind }

func (i Item) IsList() bool { return i.kind == KindList }

// Str returns the byte-string payload. It is only meaningful for string items.
func (i Item) Str() []byte { return i.str }

// Items returns the children of a list item.
func (i Item) Items() []Item { return i.list }

// Uint64 interprets a string item as a canonical RLP integer.
func (i Item) Uint64() (uint64, error) {
	if i.kind != KindString {
		return 0, fmt.Errorf("%w: expected string item for integer", ErrDecode)
	}
	if len(i.str) > 8 {
		return 0, fmt.Errorf("%w: integer too large (%d bytes)", ErrDecode, len(i.str))
	}
	if len(i.str) > 0 && i.str[0] == 0 {
		return 0, fmt.Errorf("%w: integer with leading zero byte", ErrDecode)
	}
	var u uint64
	for _, b := range i.str {
		u = u<<8 | uint64(b)
	}
	return u, nil
}

// Uint256Value interprets a string item as a canonical RLP 256-bit integer.
func (i Item) Uint256Value() (*uint256.Int, error) {
	if i.kind != KindString {
		return nil, fmt.Errorf("%w: expected string item for integer", ErrDecode)
	}
	if len(i.str) > 32 {
		return nil, fmt.Errorf("%w: integer too large (%d bytes)", ErrDecode, len(i.str))
	}
	if len(i.str) > 0 && i.str[0] == 0 {
		return nil, fmt.Errorf("%w: integer with leading zero byte", ErrDecode)
	}
	return new(uint256.Int).SetBytes(i.str), nil
}
