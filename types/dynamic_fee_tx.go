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

// DynamicFeeTx is the EIP-1559 transaction with a priority tip and an
// overall fee cap instead of a single gas price.
type DynamicFeeTx struct {
	CommonTx
	ChainID    *uint256.Int
	Tip        *uint256.Int // maxPriorityFeePerGas
	FeeCap     *uint256.Int // maxFeePerGas
	AccessList AccessList
}

func (tx *DynamicFeeTx) Type() byte { return DynamicFeeTxType }

func (tx *DynamicFeeTx) GetChainID() *uint256.Int  { return tx.ChainID }
func (tx *DynamicFeeTx) GetTip() *uint256.Int      { return tx.Tip }
func (tx *DynamicFeeTx) GetFeeCap() *uint256.Int   { return tx.FeeCap }
func (tx *DynamicFeeTx) GetAccessList() AccessList { return tx.AccessList }

func (tx *DynamicFeeTx) copy() *DynamicFeeTx {
	cpy := &DynamicFeeTx{
		CommonTx:   tx.copyCommon(),
		ChainID:    new(uint256.Int),
		Tip:        new(uint256.Int),
		FeeCap:     new(uint256.Int),
		AccessList: tx.AccessList.copy(),
	}
	if tx.ChainID != nil {
		cpy.ChainID.Set(tx.ChainID)
	}
	if tx.Tip != nil {
		cpy.Tip.Set(tx.Tip)
	}
	if tx.FeeCap != nil {
		cpy.FeeCap.Set(tx.FeeCap)
	}
	return cpy
}

func (tx *DynamicFeeTx) signingFields(chainID *uint256.Int) []rlp.Item {
	if chainID == nil {
		chainID = tx.ChainID
	}
	return []rlp.Item{
		rlp.Uint256(chainID),
		rlp.Uint(tx.Nonce),
		rlp.Uint256(tx.Tip),
		rlp.Uint256(tx.FeeCap),
		rlp.Uint(tx.GasLimit),
		addressItem(tx.To),
		rlp.Uint256(tx.Value),
		rlp.Bytes(tx.Data),
		tx.AccessList.item(),
	}
}

func (tx *DynamicFeeTx) envelopeFields() []rlp.Item {
	return append(tx.signingFields(tx.ChainID),
		rlp.Uint256(&tx.V),
		rlp.Uint256(&tx.R),
		rlp.Uint256(&tx.S),
	)
}

func (tx *DynamicFeeTx) SigningHash(chainID *uint256.Int) common.Hash {
	return prefixedRlpHash(DynamicFeeTxType, tx.signingFields(chainID))
}

func (tx *DynamicFeeTx) Hash() common.Hash {
	return crypto.Keccak256Hash(tx.envelope())
}

func (tx *DynamicFeeTx) envelope() []byte {
	return typedEnvelope(DynamicFeeTxType, tx.envelopeFields())
}

func (tx *DynamicFeeTx) MarshalBinary() ([]byte, error) {
	return tx.envelope(), nil
}

func (tx *DynamicFeeTx) withSignature(sig Signature, chainID *uint256.Int) (Transaction, error) {
	cpy := tx.copy()
	applyTypedSignature(&cpy.CommonTx, sig)
	if chainID != nil {
		cpy.ChainID.Set(chainID)
	}
	return cpy, nil
}

// readDynamicFeeFields fills the nine unsigned fields shared by the
// EIP-1559 payload and the envelopes that extend it.
func readDynamicFeeFields(fields []rlp.Item, tx *DynamicFeeTx) error {
	var err error
	if tx.ChainID, err = itemUint256(fields[0], "ChainID"); err != nil {
		return err
	}
	if tx.Nonce, err = itemUint64(fields[1], "Nonce"); err != nil {
		return err
	}
	if tx.Tip, err = itemUint256(fields[2], "MaxPriorityFeePerGas"); err != nil {
		return err
	}
	if tx.FeeCap, err = itemUint256(fields[3], "MaxFeePerGas"); err != nil {
		return err
	}
	if tx.GasLimit, err = itemUint64(fields[4], "GasLimit"); err != nil {
		return err
	}
	if tx.To, err = itemOptionalAddress(fields[5], "To"); err != nil {
		return err
	}
	if tx.Value, err = itemUint256(fields[6], "Value"); err != nil {
		return err
	}
	if tx.Data, err = itemBytes(fields[7], "Data"); err != nil {
		return err
	}
	if tx.AccessList, err = decodeAccessListItem(fields[8]); err != nil {
		return err
	}
	return nil
}

func decodeDynamicFeeTx(it rlp.Item) (*DynamicFeeTx, error) {
	fields, err := expectList(it, 12, "dynamic fee transaction")
	if err != nil {
		return nil, err
	}
	tx := &DynamicFeeTx{}
	if err = readDynamicFeeFields(fields[:9], tx); err != nil {
		return nil, err
	}
	if err = readSignatureItems(fields[9:], &tx.CommonTx); err != nil {
		return nil, err
	}
	return tx, nil
}
