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
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ImL1s/web3go/common"
)

// ErrConflictingFields marks a request mixing fields of incompatible
// transaction shapes, or fields contradicting an explicit Type.
var ErrConflictingFields = errors.New("conflicting transaction fields")

// TxRequest is a partially specified transaction. Every field is optional;
// Resolve picks the envelope shape from the fields that are set, or honors
// an explicit Type.
type TxRequest struct {
	Type *byte

	Nonce    uint64
	To       *common.Address
	Value    *uint256.Int
	Data     []byte
	GasLimit uint64
	ChainID  *uint256.Int

	GasPrice *uint256.Int // legacy and EIP-2930 only
	Tip      *uint256.Int // maxPriorityFeePerGas
	FeeCap   *uint256.Int // maxFeePerGas

	AccessList AccessList

	MaxFeePerBlobGas    *uint256.Int
	BlobVersionedHashes []common.Hash

	Authorizations []Authorization
}

func (r *TxRequest) hasBlobFields() bool {
	return r.MaxFeePerBlobGas != nil || len(r.BlobVersionedHashes) > 0
}

func (r *TxRequest) hasDynamicFees() bool {
	return r.Tip != nil || r.FeeCap != nil
}

// inferType picks the most specific shape the set fields demand.
func (r *TxRequest) inferType() (byte, error) {
	if r.Type != nil {
		if *r.Type > SetCodeTxType {
			return 0, fmt.Errorf("%w: 0x%02x", ErrUnsupportedTxType, *r.Type)
		}
		return *r.Type, nil
	}
	if r.hasBlobFields() && len(r.Authorizations) > 0 {
		return 0, fmt.Errorf("%w: blob fields and authorizations", ErrConflictingFields)
	}
	if r.GasPrice != nil && r.hasDynamicFees() {
		return 0, fmt.Errorf("%w: gas price and dynamic fees", ErrConflictingFields)
	}
	switch {
	case r.hasBlobFields():
		return BlobTxType, nil
	case len(r.Authorizations) > 0:
		return SetCodeTxType, nil
	case r.hasDynamicFees():
		return DynamicFeeTxType, nil
	case len(r.AccessList) > 0:
		return AccessListTxType, nil
	default:
		return LegacyTxType, nil
	}
}

// Resolve builds the unsigned transaction the request describes. It fails
// when fields of incompatible shapes are mixed, when an explicit Type
// contradicts the fields present, or when a typed shape lacks its
// mandatory fields.
func (r *TxRequest) Resolve() (Transaction, error) {
	txType, err := r.inferType()
	if err != nil {
		return nil, err
	}

	if txType != LegacyTxType && (r.ChainID == nil || r.ChainID.IsZero()) {
		return nil, fmt.Errorf("%w: typed transaction requires a chain id", ErrConflictingFields)
	}
	if txType >= DynamicFeeTxType && r.GasPrice != nil {
		return nil, fmt.Errorf("%w: gas price on a dynamic fee shape", ErrConflictingFields)
	}
	if txType <= AccessListTxType && r.hasDynamicFees() {
		return nil, fmt.Errorf("%w: dynamic fees on a gas price shape", ErrConflictingFields)
	}
	if txType != BlobTxType && r.hasBlobFields() {
		return nil, fmt.Errorf("%w: blob fields on type 0x%02x", ErrConflictingFields, txType)
	}
	if txType != SetCodeTxType && len(r.Authorizations) > 0 {
		return nil, fmt.Errorf("%w: authorizations on type 0x%02x", ErrConflictingFields, txType)
	}

	switch txType {
	case LegacyTxType:
		return r.buildLegacy(), nil
	case AccessListTxType:
		return r.buildAccessList(), nil
	case DynamicFeeTxType:
		return r.buildDynamicFee(), nil
	case BlobTxType:
		return r.buildBlob()
	default:
		return r.buildSetCode()
	}
}

func (r *TxRequest) buildCommon() CommonTx {
	return CommonTx{
		Nonce:    r.Nonce,
		GasLimit: r.GasLimit,
		To:       r.To,
		Value:    valueOrZero(r.Value),
		Data:     r.Data,
	}
}

func (r *TxRequest) buildLegacy() *LegacyTx {
	return &LegacyTx{
		CommonTx: r.buildCommon(),
		GasPrice: valueOrZero(r.GasPrice),
	}
}

func (r *TxRequest) buildAccessList() *AccessListTx {
	return &AccessListTx{
		LegacyTx:   *r.buildLegacy(),
		ChainID:    valueOrZero(r.ChainID),
		AccessList: r.AccessList,
	}
}

func (r *TxRequest) buildDynamicFee() *DynamicFeeTx {
	return &DynamicFeeTx{
		CommonTx:   r.buildCommon(),
		ChainID:    valueOrZero(r.ChainID),
		Tip:        valueOrZero(r.Tip),
		FeeCap:     valueOrZero(r.FeeCap),
		AccessList: r.AccessList,
	}
}

func (r *TxRequest) buildBlob() (*BlobTx, error) {
	if r.To == nil {
		return nil, fmt.Errorf("%w: blob transaction requires a recipient", ErrConflictingFields)
	}
	return &BlobTx{
		DynamicFeeTx:        *r.buildDynamicFee(),
		MaxFeePerBlobGas:    valueOrZero(r.MaxFeePerBlobGas),
		BlobVersionedHashes: r.BlobVersionedHashes,
	}, nil
}

func (r *TxRequest) buildSetCode() (*SetCodeTx, error) {
	if len(r.Authorizations) == 0 {
		return nil, fmt.Errorf("%w: set code transaction requires authorizations", ErrConflictingFields)
	}
	return &SetCodeTx{
		DynamicFeeTx:   *r.buildDynamicFee(),
		Authorizations: r.Authorizations,
	}, nil
}

func valueOrZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(v)
}
