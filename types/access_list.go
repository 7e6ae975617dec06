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

package types

import (
	"fmt"

	"github.com/ImL1s/web3go/common"
	"github.com/ImL1s/web3go/rlp"
)

// AccessTuple is the element type of an access list.
type AccessTuple struct {
	Address     common.Address `json:"address"`
	StorageKeys []common.Hash  `json:"storageKeys"`
}

// AccessList is an EIP-2930 access list.
type AccessList []AccessTuple

// StorageKeys returns the total number of storage keys in the access list.
func (al AccessList) StorageKeys() int {
	sum := 0
	for _, tuple := range al {
		sum += len(tuple.StorageKeys)
	}
	return sum
}

func (al AccessList) copy() AccessList {
	if al == nil {
		return nil
	}
	cpy := make(AccessList, len(al))
	for i, tuple := range al {
		cpy[i] = AccessTuple{
			Address:     tuple.Address,
			StorageKeys: append([]common.Hash(nil), tuple.StorageKeys...),
		}
	}
	return cpy
}

// item renders the access list as the nested RLP structure embedded verbatim
// in every transaction type >= EIP-2930.
func (al AccessList) item() rlp.Item {
	tuples := make([]rlp.Item, len(al))
	for i, tuple := range al {
		tuples[i] = rlp.List(
			rlp.Bytes(tuple.Address.Bytes()),
			hashListItem(tuple.StorageKeys),
		)
	}
	return rlp.List(tuples...)
}

func decodeAccessListItem(it rlp.Item) (AccessList, error) {
	if !it.IsList() {
		return nil, fmt.Errorf("%w: accessList must be a list", ErrTxDecode)
	}
	al := AccessList{}
	for i, tupleItem := range it.Items() {
		fields, err := expectList(tupleItem, 2, "accessList tuple")
		if err != nil {
			return nil, err
		}
		addr, err := itemAddress(fields[0], "accessList address")
		if err != nil {
			return nil, err
		}
		if !fields[1].IsList() {
			return nil, fmt.Errorf("%w: storageKeys of tuple %d must be a list", ErrTxDecode, i)
		}
		keys := make([]common.Hash, 0, len(fields[1].Items()))
		for _, keyItem := range fields[1].Items() {
			key, err := itemHash(keyItem, "storageKey")
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
		}
		al = append(al, AccessTuple{Address: addr, StorageKeys: keys})
	}
	return al, nil
}
