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

// SetCodeTx is the EIP-7702 transaction delegating EOA code via a list of
// signed authorizations.
type SetCodeTx struct {
	DynamicFeeTx
	Authorizations []Authorization
}

func (tx *SetCodeTx) Type() byte { return SetCodeTxType }

func (tx *SetCodeTx) GetAuthorizations() []Authorization { return tx.Authorizations }

func (tx *SetCodeTx) copy() *SetCodeTx {
	cpy := &SetCodeTx{
		DynamicFeeTx:   *tx.DynamicFeeTx.copy(),
		Authorizations: make([]Authorization, len(tx.Authorizations)),
	}
	for i := range tx.Authorizations {
		cpy.Authorizations[i] = tx.Authorizations[i].copy()
	}
	return cpy
}

func (tx *SetCodeTx) signingFields(chainID *uint256.Int) []rlp.Item {
	return append(tx.DynamicFeeTx.signingFields(chainID),
		authorizationListItem(tx.Authorizations),
	)
}

func (tx *SetCodeTx) envelopeFields() []rlp.Item {
	return append(tx.signingFields(tx.ChainID),
		rlp.Uint256(&tx.V),
		rlp.Uint256(&tx.R),
		rlp.Uint256(&tx.S),
	)
}

func (tx *SetCodeTx) SigningHash(chainID *uint256.Int) common.Hash {
	return prefixedRlpHash(SetCodeTxType, tx.signingFields(chainID))
}

func (tx *SetCodeTx) Hash() common.Hash {
	return crypto.Keccak256Hash(tx.envelope())
}

func (tx *SetCodeTx) envelope() []byte {
	return typedEnvelope(SetCodeTxType, tx.envelopeFields())
}

func (tx *SetCodeTx) MarshalBinary() ([]byte, error) {
	return tx.envelope(), nil
}

func (tx *SetCodeTx) withSignature(sig Signature, chainID *uint256.Int) (Transaction, error) {
	cpy := tx.copy()
	applyTypedSignature(&cpy.CommonTx, sig)
	if chainID != nil {
		cpy.ChainID.Set(chainID)
	}
	return cpy, nil
}

func decodeSetCodeTx(it rlp.Item) (*SetCodeTx, error) {
	fields, err := expectList(it, 13, "set code transaction")
	if err != nil {
		return nil, err
	}
	tx := &SetCodeTx{}
	if err = readDynamicFeeFields(fields[:9], &tx.DynamicFeeTx); err != nil {
		return nil, err
	}
	if tx.Authorizations, err = decodeAuthorizationListItem(fields[9]); err != nil {
		return nil, err
	}
	if err = readSignatureItems(fields[10:], &tx.CommonTx); err != nil {
		return nil, err
	}
	return tx, nil
}
