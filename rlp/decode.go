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

package rlp

import (
	"errors"
	"fmt"
)

// ErrDecode is wrapped by every decoding failure in this package.
var ErrDecode = errors.New("rlp decode error")

// Token identifies the class of an RLP prefix byte.
type Token byte

const (
	TokenDecimal Token = iota
	TokenShortBlob
	TokenLongBlob
	TokenShortList
	TokenLongList
)

func identifyToken(prefix byte) Token {
	switch {
	case prefix < 0x80:
		return TokenDecimal
	case prefix <= 0xB7:
		return TokenShortBlob
	case prefix <= 0xBF:
		return TokenLongBlob
	case prefix <= 0xF7:
		return TokenShortList
	default:
		return TokenLongList
	}
}

// Decode parses data as a single RLP item, requiring the whole buffer to be
// consumed. Decoding is strict: non-minimal length prefixes, integers with
// leading zeros wrapped by callers, and truncated payloads fail with ErrDecode.
func Decode(data []byte) (Item, error) {
	it, rest, err := decodeItem(data)
	if err != nil {
		return Item{}, err
	}
	if len(rest) > 0 {
		return Item{}, fmt.Errorf("%w: %d trailing bytes after item", ErrDecode, len(rest))
	}
	return it, nil
}

// DecodePrefix parses the first RLP item of data and returns the remaining bytes.
func DecodePrefix(data []byte) (Item, []byte, error) {
	return decodeItem(data)
}

func decodeItem(data []byte) (Item, []byte, error) {
	if len(data) == 0 {
		return Item{}, nil, fmt.Errorf("%w: empty input", ErrDecode)
	}
	prefix := data[0]
	switch identifyToken(prefix) {
	case TokenDecimal:
		return Item{kind: KindString, str: data[:1]}, data[1:], nil

	case TokenShortBlob:
		sz := int(prefix - 0x80)
		if len(data) < 1+sz {
			return Item{}, nil, fmt.Errorf("%w: string payload truncated, need %d bytes", ErrDecode, sz)
		}
		if sz == 1 && data[1] < 0x80 {
			return Item{}, nil, fmt.Errorf("%w: non-canonical single byte 0x%02x", ErrDecode, data[1])
		}
		return Item{kind: KindString, str: data[1 : 1+sz]}, data[1+sz:], nil

	case TokenLongBlob:
		sz, lenSz, err := readLongLen(data, prefix-0xB7)
		if err != nil {
			return Item{}, nil, err
		}
		start := 1 + lenSz
		return Item{kind: KindString, str: data[start : start+sz]}, data[start+sz:], nil

	case TokenShortList:
		sz := int(prefix - 0xC0)
		if len(data) < 1+sz {
			return Item{}, nil, fmt.Errorf("%w: list payload truncated, need %d bytes", ErrDecode, sz)
		}
		items, err := decodeListPayload(data[1 : 1+sz])
		if err != nil {
			return Item{}, nil, err
		}
		return Item{kind: KindList, list: items}, data[1+sz:], nil

	default: // TokenLongList
		sz, lenSz, err := readLongLen(data, prefix-0xF7)
		if err != nil {
			return Item{}, nil, err
		}
		start := 1 + lenSz
		items, err := decodeListPayload(data[start : start+sz])
		if err != nil {
			return Item{}, nil, err
		}
		return Item{kind: KindList, list: items}, data[start+sz:], nil
	}
}

// readLongLen reads the big-endian length of a long-form string or list and
// validates its canonical form.
func readLongLen(data []byte, lenSz byte) (sz, n int, err error) {
	n = int(lenSz)
	if len(data) < 1+n {
		return 0, 0, fmt.Errorf("%w: length prefix truncated", ErrDecode)
	}
	if data[1] == 0 {
		return 0, 0, fmt.Errorf("%w: length with leading zero byte", ErrDecode)
	}
	if n > 8 {
		return 0, 0, fmt.Errorf("%w: length prefix too large (%d bytes)", ErrDecode, n)
	}
	for _, b := range data[1 : 1+n] {
		sz = sz<<8 | int(b)
	}
	if sz < 56 {
		return 0, 0, fmt.Errorf("%w: non-canonical length %d in long form", ErrDecode, sz)
	}
	if sz < 0 || len(data) < 1+n+sz {
		return 0, 0, fmt.Errorf("%w: payload truncated, need %d bytes", ErrDecode, sz)
	}
	return sz, n, nil
}

func decodeListPayload(payload []byte) ([]Item, error) {
	items := []Item{}
	for len(payload) > 0 {
		it, rest, err := decodeItem(payload)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		payload = rest
	}
	return items, nil
}
