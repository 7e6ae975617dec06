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

// Package crypto provides the keccak256 and secp256k1 primitives consumed by
// the codec and signing packages. Ethereum uses the original Keccak-256, not
// the NIST-standardized SHA3-256.
package crypto

import (
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/ImL1s/web3go/common"
)

// keccakState wraps sha3.state. In addition to the usual hash methods, it also
// supports Read to get a variable amount of data from the hash state. Read is
// faster than Sum because it doesn't copy the internal state, but also modifies
// the internal state.
type keccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

var keccakPool = sync.Pool{
	New: func() any {
		return sha3.NewLegacyKeccak256().(keccakState)
	},
}

// Keccak256 computes the Keccak-256 hash of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	var buf [32]byte
	keccakInto(buf[:], data...)
	out := make([]byte, 32)
	copy(out, buf[:])
	return out
}

// Keccak256Hash computes the Keccak-256 hash of the concatenation of data,
// returning it as a Hash.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	keccakInto(h[:], data...)
	return h
}

func keccakInto(dst []byte, data ...[]byte) {
	sha := keccakPool.Get().(keccakState)
	sha.Reset()
	for _, d := range data {
		sha.Write(d)
	}
	sha.Read(dst)
	keccakPool.Put(sha)
}
