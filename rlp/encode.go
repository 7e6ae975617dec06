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
	"math/bits"
)

// General design, following the size-first approach used across this package:
//   - sizes are computed up front so the output buffer is allocated exactly once
//   - functions to calculate prefix lengths are pure and cheap; it's ok to call
//     them multiple times during encoding of a large object for readability

// ListPrefixLen returns the length of the list prefix for a payload of dataLen bytes.
func ListPrefixLen(dataLen int) int {
	if dataLen >= 56 {
		return 1 + beIntLen(uint64(dataLen))
	}
	return 1
}

// StringLen returns the full encoded length of the byte string s, prefix included.
func StringLen(s []byte) int {
	switch {
	case len(s) >= 56:
		return 1 + beIntLen(uint64(len(s))) + len(s)
	case len(s) == 1 && s[0] < 0x80:
		return 1
	default:
		return 1 + len(s)
	}
}

func beIntLen(i uint64) int {
	return (bits.Len64(i) + 7) / 8
}

// EncodedSize returns the full encoded size of it, prefix included.
func EncodedSize(it Item) int {
	if it.kind == KindString {
		return StringLen(it.str)
	}
	payload := 0
	for _, child := range it.list {
		payload += EncodedSize(child)
	}
	return ListPrefixLen(payload) + payload
}

// Encode returns the RLP encoding of it.
func Encode(it Item) []byte {
	out := make([]byte, EncodedSize(it))
	encodeItem(it, out, 0)
	return out
}

// EncodeTo writes the RLP encoding of it into to, which must be at least
// EncodedSize(it) bytes, and returns the number of bytes written.
func EncodeTo(it Item, to []byte) int {
	return encodeItem(it, to, 0)
}

func encodeItem(it Item, to []byte, pos int) int {
	if it.kind == KindString {
		return pos + encodeString(it.str, to[pos:])
	}
	payload := 0
	for _, child := range it.list {
		payload += EncodedSize(child)
	}
	pos += encodeListPrefix(payload, to[pos:])
	for _, child := range it.list {
		pos = encodeItem(child, to, pos)
	}
	return pos
}

func encodeString(s, to []byte) int {
	switch {
	case len(s) >= 56:
		beLen := beIntLen(uint64(len(s)))
		to[0] = 0xB7 + byte(beLen)
		putBeInt(uint64(len(s)), to[1:1+beLen])
		copy(to[1+beLen:], s)
		return 1 + beLen + len(s)
	case len(s) == 1 && s[0] < 0x80:
		to[0] = s[0]
		return 1
	default:
		to[0] = 0x80 + byte(len(s))
		copy(to[1:], s)
		return 1 + len(s)
	}
}

func encodeListPrefix(dataLen int, to []byte) int {
	if dataLen >= 56 {
		beLen := beIntLen(uint64(dataLen))
		to[0] = 0xF7 + byte(beLen)
		putBeInt(uint64(dataLen), to[1:1+beLen])
		return 1 + beLen
	}
	to[0] = 0xC0 + byte(dataLen)
	return 1
}

func putBeInt(i uint64, to []byte) {
	for k := len(to) - 1; k >= 0; k-- {
		to[k] = byte(i)
		i >>= 8
	}
}
