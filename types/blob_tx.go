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

	"github.com/holiman/uint256"

	"github.com/ImL1s/web3go/common"
	"github.com/ImL1s/web3go/crypto"
	"github.com/ImL1s/web3go/rlp"
)

// BlobTx is the EIP-4844 transaction carrying blob commitments. The To
// field is mandatory: blob transactions cannot create contracts.
type BlobTx struct {
	DynamicFeeTx
	MaxFeePerBlobGas    *uint256.Int
	BlobVersionedHashes []common.Hash
}

func (tx *BlobTx) Type() byte { return BlobTxType }

func (tx *BlobTx) GetBlobHashes() []common.Hash { return tx.BlobVersionedHashes }

func (tx *BlobTx) copy() *BlobTx {
	cpy := &BlobTx{
		DynamicFeeTx:        *tx.DynamicFeeTx.copy(),
		MaxFeePerBlobGas:    new(uint256.Int),
		BlobVersionedHashes: make([]common.Hash, len(tx.BlobVersionedHashes)),
	}
	if tx.MaxFeePerBlobGas != nil {
		cpy.MaxFeePerBlobGas.Set(tx.MaxFeePerBlobGas)
	}
	copy(cpy.BlobVersionedHashes, tx.BlobVersionedHashes)
	return cpy
}

func (tx *BlobTx) signingFields(chainID *uint256.Int) []rlp.Item {
	return append(tx.DynamicFeeTx.signingFields(chainID),
		rlp.Uint256(tx.MaxFeePerBlobGas),
		hashListItem(tx.BlobVersionedHashes),
	)
}

func (tx *BlobTx) envelopeFields() []rlp.Item {
	return append(tx.signingFields(tx.ChainID),
		rlp.Uint256(&tx.V),
		rlp.Uint256(&tx.R),
		rlp.Uint256(&tx.S),
	)
}

func (tx *BlobTx) SigningHash(chainID *uint256.Int) common.Hash {
	return prefixedRlpHash(BlobTxType, tx.signingFields(chainID))
}

func (tx *BlobTx) Hash() common.Hash {
	return crypto.Keccak256Hash(tx.envelope())
}

func (tx *BlobTx) envelope() []byte {
	return typedEnvelope(BlobTxType, tx.envelopeFields())
}

func (tx *BlobTx) MarshalBinary() ([]byte, error) {
	if tx.To == nil {
		return nil, fmt.Errorf("%w: blob transaction without recipient", ErrTxDecode)
	}
	return tx.envelope(), nil
}

func (tx *BlobTx) withSignature(sig Signature, chainID *uint256.Int) (Transaction, error) {
	cpy := tx.copy()
	applyTypedSignature(&cpy.CommonTx, sig)
	if chainID != nil {
		cpy.ChainID.Set(chainID)
	}
	return cpy, nil
}

func decodeBlobTx(it rlp.Item) (*BlobTx, error) {
	fields, err := expectList(it, 14, "blob transaction")
	if err != nil {
		return nil, err
	}
	tx := &BlobTx{}
	if err = readDynamicFeeFields(fields[:9], &tx.DynamicFeeTx); err != nil {
		return nil, err
	}
	if tx.To == nil {
		return nil, fmt.Errorf("%w: blob transaction without recipient", ErrTxDecode)
	}
	if tx.MaxFeePerBlobGas, err = itemUint256(fields[9], "MaxFeePerBlobGas"); err != nil {
		return nil, err
	}
	hashItems, err := expectList(fields[10], -1, "BlobVersionedHashes")
	if err != nil {
		return nil, err
	}
	tx.BlobVersionedHashes = make([]common.Hash, len(hashItems))
	for i, h := range hashItems {
		if tx.BlobVersionedHashes[i], err = itemHash(h, "BlobVersionedHashes"); err != nil {
			return nil, err
		}
	}
	if err = readSignatureItems(fields[11:], &tx.CommonTx); err != nil {
		return nil, err
	}
	return tx, nil
}
