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
	"bytes"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeIntegers(t *testing.T) {
	tests := []struct {
		in   uint64
		want []byte
	}{
		{0, []byte{0x80}},
		{1, []byte{0x01}},
		{15, []byte{0x0f}},
		{127, []byte{0x7f}},
		{128, []byte{0x81, 0x80}},
		{1024, []byte{0x82, 0x04, 0x00}},
		{0xFFFFFF, []byte{0x83, 0xff, 0xff, 0xff}},
		{0xFFFFFFFFFFFFFFFF, []byte{0x88, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Encode(Uint(tt.in)), "encode %d", tt.in)
	}
}

func TestEncodeStrings(t *testing.T) {
	tests := []struct {
		in   []byte
		want []byte
	}{
		{nil, []byte{0x80}},
		{[]byte{}, []byte{0x80}},
		{[]byte{0x00}, []byte{0x00}},
		{[]byte{0x7f}, []byte{0x7f}},
		{[]byte{0x80}, []byte{0x81, 0x80}},
		{[]byte("dog"), []byte{0x83, 'd', 'o', 'g'}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Encode(Bytes(tt.in)))
	}

	// 55 bytes: last length that fits the short form
	s55 := bytes.Repeat([]byte{0xAA}, 55)
	enc := Encode(Bytes(s55))
	require.Equal(t, byte(0x80+55), enc[0])
	require.Len(t, enc, 56)

	// 56 bytes: first length requiring the long form
	s56 := bytes.Repeat([]byte{0xAA}, 56)
	enc = Encode(Bytes(s56))
	require.Equal(t, byte(0xB8), enc[0])
	require.Equal(t, byte(56), enc[1])
	require.Len(t, enc, 58)

	// Lorem ipsum from the original RLP description
	lorem := []byte("Lorem ipsum dolor sit amet, consectetur adipisicing elit")
	enc = Encode(Bytes(lorem))
	require.Equal(t, []byte{0xB8, 0x38}, enc[:2])
	require.Equal(t, lorem, enc[2:])
}

func TestEncodeLists(t *testing.T) {
	// empty list
	assert.Equal(t, []byte{0xC0}, Encode(List()))

	// ["cat", "dog"]
	enc := Encode(List(Bytes([]byte("cat")), Bytes([]byte("dog"))))
	assert.Equal(t, []byte{0xC8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}, enc)

	// the set-theoretic representation of three: [ [], [[]], [ [], [[]] ] ]
	three := List(List(), List(List()), List(List(), List(List())))
	assert.Equal(t, []byte{0xC7, 0xC0, 0xC1, 0xC0, 0xC3, 0xC0, 0xC1, 0xC0}, Encode(three))

	// long list
	items := make([]Item, 20)
	for i := range items {
		items[i] = Bytes([]byte("aaa"))
	}
	enc = Encode(List(items...))
	require.Equal(t, byte(0xF8), enc[0])
	require.Equal(t, byte(80), enc[1])
}

func TestUint256Items(t *testing.T) {
	assert.Equal(t, []byte{0x80}, Encode(Uint256(nil)))
	assert.Equal(t, []byte{0x80}, Encode(Uint256(uint256.NewInt(0))))
	assert.Equal(t, []byte{0x82, 0x04, 0x00}, Encode(Uint256(uint256.NewInt(1024))))

	max := new(uint256.Int).SetAllOne()
	enc := Encode(Uint256(max))
	require.Equal(t, byte(0x80+32), enc[0])
	require.Equal(t, bytes.Repeat([]byte{0xff}, 32), enc[1:])
}

func TestRoundTrip(t *testing.T) {
	items := []Item{
		Bytes(nil),
		Bytes([]byte{0x42}),
		Bytes([]byte(strings.Repeat("x", 1000))),
		Uint(0),
		Uint(1024),
		List(),
		List(Bytes([]byte("cat")), List(Uint(7), Bytes(nil))),
		List(Uint256(uint256.NewInt(1).Lsh(uint256.NewInt(1), 200))),
	}
	for _, it := range items {
		enc := Encode(it)
		dec, err := Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, enc, Encode(dec))
	}
}

func TestDecodeIntegers(t *testing.T) {
	it, err := Decode([]byte{0x82, 0x04, 0x00})
	require.NoError(t, err)
	u, err := it.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1024), u)

	it, err = Decode([]byte{0x80})
	require.NoError(t, err)
	u, err = it.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), u)

	// integers with leading zeros are rejected at interpretation time
	it, err = Decode([]byte{0x82, 0x00, 0x01})
	require.NoError(t, err)
	_, err = it.Uint64()
	require.ErrorIs(t, err, ErrDecode)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty input", nil},
		{"truncated string", []byte{0x83, 'd', 'o'}},
		{"truncated list", []byte{0xC8, 0x83, 'c', 'a', 't'}},
		{"truncated long length", []byte{0xB8}},
		{"non-canonical single byte", []byte{0x81, 0x05}},
		{"non-canonical long string length", []byte{0xB8, 0x02, 0x01, 0x02}},
		{"length with leading zero", []byte{0xB9, 0x00, 0x38}},
		{"trailing bytes", []byte{0xC0, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			require.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestDecodePrefix(t *testing.T) {
	buf := append(Encode(Uint(7)), Encode(Bytes([]byte("dog")))...)
	it, rest, err := DecodePrefix(buf)
	require.NoError(t, err)
	u, err := it.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), u)
	it, rest, err = DecodePrefix(rest)
	require.NoError(t, err)
	assert.Equal(t, []byte("dog"), it.Str())
	assert.Empty(t, rest)
}
