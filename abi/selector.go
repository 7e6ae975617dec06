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
	"github.com/ImL1s/web3go/common"
	"github.com/ImL1s/web3go/crypto"
)

// SelectorLength is the size of a function selector.
const SelectorLength = 4

// Selector derives the 4-byte function selector from a canonical signature,
// e.g. Selector("transfer(address,uint256)") == 0xa9059cbb.
func Selector(signature string) [SelectorLength]byte {
	var sel [SelectorLength]byte
	copy(sel[:], crypto.Keccak256([]byte(signature))[:SelectorLength])
	return sel
}

// EventTopic derives the 32-byte topic0 of an event from its canonical
// signature.
func EventTopic(signature string) common.Hash {
	return crypto.Keccak256Hash([]byte(signature))
}
