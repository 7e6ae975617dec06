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

package common

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const (
	AddressLength = 20
	HashLength    = 32
)

// Address is the 20-byte address of an Ethereum account.
type Address [AddressLength]byte

// Hash is the 32-byte Keccak256 hash of arbitrary data.
type Hash [HashLength]byte

// BytesToAddress sets b to an Address, left-truncating if b is too long.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress parses s as a hex-encoded address. The "0x" prefix is optional.
func HexToAddress(s string) (Address, error) {
	b, err := FromHex(s)
	if err != nil {
		return Address{}, err
	}
	if len(b) != AddressLength {
		return Address{}, fmt.Errorf("invalid address length %d", len(b))
	}
	return BytesToAddress(b), nil
}

func (a *Address) SetBytes(b []byte) {
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

func (a Address) Bytes() []byte { return a[:] }

// IsZero reports whether a is the zero address, the EIP-7702 revocation sentinel.
func (a Address) IsZero() bool { return a == Address{} }

// Hex returns the EIP-55 mixed-case checksum encoding of the address.
func (a Address) Hex() string {
	unchecked := hex.EncodeToString(a[:])
	sha := sha3.NewLegacyKeccak256()
	sha.Write([]byte(unchecked))
	hash := sha.Sum(nil)
	result := []byte(unchecked)
	for i, c := range result {
		if c >= 'a' && c <= 'f' {
			nibble := hash[i/2]
			if i%2 == 0 {
				nibble >>= 4
			}
			if nibble&0x0f >= 8 {
				result[i] = c - 32
			}
		}
	}
	return "0x" + string(result)
}

func (a Address) String() string { return a.Hex() }

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	addr, err := HexToAddress(string(input))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// BytesToHash sets b to a Hash, left-truncating if b is too long.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash parses s as a hex-encoded 32-byte hash.
func HexToHash(s string) (Hash, error) {
	b, err := FromHex(s)
	if err != nil {
		return Hash{}, err
	}
	if len(b) != HashLength {
		return Hash{}, fmt.Errorf("invalid hash length %d", len(b))
	}
	return BytesToHash(b), nil
}

func (h *Hash) SetBytes(b []byte) {
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash) String() string { return h.Hex() }

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *Hash) UnmarshalText(input []byte) error {
	hash, err := HexToHash(string(input))
	if err != nil {
		return err
	}
	*h = hash
	return nil
}
