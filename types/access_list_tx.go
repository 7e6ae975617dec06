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
	"github.com/holiman/uint256"

	"github.com/ImL1s/web3go/common"
	"github.com/ImL1s/web3go/crypto"
	"github.com/ImL1s/web3go/rlp"
)

// AccessListTx is the EIP-2930 transaction: a legacy fee market plus an
// explicit chain id and a storage access list.
type AccessListTx struct {
	LegacyTx
	ChainID    *uint256.Int
	AccessList AccessList
}

func (tx *AccessListTx) Type() byte { return AccessListTxType }

func (tx *AccessListTx) GetChainID() *uint256.Int { return tx.ChainID }

func (tx *AccessListTx) GetAccessList() AccessList { return tx.AccessList }

func (tx *AccessListTx) copy() *AccessListTx {
	cpy := &AccessListTx{
		LegacyTx:   *tx.LegacyTx.copy(),
		ChainID:    new(uint256.Int),
		AccessList: tx.AccessList.copy(),
	}
	if tx.ChainID != nil {
		cpy.ChainID.Set(tx.ChainID)
	}
	return cpy
}

func (tx *AccessListTx) signingFields(chainID *uint256.Int) []rlp.Item {
	if chainID == nil {
		chainID = tx.ChainID
	}
	return []rlp.Item{
		rlp.Uint256(chainID),
		rlp.Uint(tx.Nonce),
		rlp.Uint256(tx.GasPrice),
		rlp.Uint(tx.GasLimit),
		addressItem(tx.To),
		rlp.Uint256(tx.Value),
		rlp.Bytes(tx.Data),
		tx.AccessList.item(),
	}
}

func (tx *AccessListTx) envelopeFields() []rlp.Item {
	return append(tx.signingFields(tx.ChainID),
		rlp.Uint256(&tx.V),
		rlp.Uint256(&tx.R),
		rlp.Uint256(&tx.S),
	)
}

func (tx *AccessListTx) SigningHash(chainID *uint256.Int) common.Hash {
	return prefixedRlpHash(AccessListTxType, tx.signingFields(chainID))
}

func (tx *AccessListTx) Hash() common.Hash {
	return crypto.Keccak256Hash(tx.envelope())
}

func (tx *AccessListTx) envelope() []byte {
	return typedEnvelope(AccessListTxType, tx.envelopeFields())
}

func (tx *AccessListTx) MarshalBinary() ([]byte, error) {
	return tx.envelope(), nil
}

func (tx *AccessListTx) withSignature(sig Signature, chainID *uint256.Int) (Transaction, error) {
	cpy := tx.copy()
	applyTypedSignature(&cpy.CommonTx, sig)
	if chainID != nil {
		cpy.ChainID.Set(chainID)
	}
	return cpy, nil
}

func decodeAccessListTx(it rlp.Item) (*AccessListTx, error) {
	fields, err := expectList(it, 11, "access list transaction")
	if err != nil {
		return nil, err
	}
	tx := &AccessListTx{}
	if tx.ChainID, err = itemUint256(fields[0], "ChainID"); err != nil {
		return nil, err
	}
	if tx.Nonce, err = itemUint64(fields[1], "Nonce"); err != nil {
		return nil, err
	}
	if tx.GasPrice, err = itemUint256(fields[2], "GasPrice"); err != nil {
		return nil, err
	}
	if tx.GasLimit, err = itemUint64(fields[3], "GasLimit"); err != nil {
		return nil, err
	}
	if tx.To, err = itemOptionalAddress(fields[4], "To"); err != nil {
		return nil, err
	}
	if tx.Value, err = itemUint256(fields[5], "Value"); err != nil {
		return nil, err
	}
	if tx.Data, err = itemBytes(fields[6], "Data"); err != nil {
		return nil, err
	}
	if tx.AccessList, err = decodeAccessListItem(fields[7]); err != nil {
		return nil, err
	}
	if err = readSignatureItems(fields[8:], &tx.CommonTx); err != nil {
		return nil, err
	}
	return tx, nil
}
