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

// Package types models Ethereum transactions across the five envelope shapes
// (legacy, EIP-2930, EIP-1559, EIP-4844, EIP-7702) and implements their
// signing preimages and signed serialization.
package types

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ImL1s/web3go/common"
	"github.com/ImL1s/web3go/crypto"
	"github.com/ImL1s/web3go/rlp"
)

const (
	LegacyTxType     byte = 0x00
	AccessListTxType byte = 0x01 // EIP-2930
	DynamicFeeTxType byte = 0x02 // EIP-1559
	BlobTxType       byte = 0x03 // EIP-4844
	SetCodeTxType    byte = 0x04 // EIP-7702
)

var (
	// ErrUnsupportedTxType marks an explicit type tag outside the known set.
	ErrUnsupportedTxType = errors.New("unsupported transaction type")
	// ErrTxDecode is wrapped by structural failures while reading a raw transaction.
	ErrTxDecode = errors.New("transaction decode error")
	// ErrInvalidSig marks out-of-range v, r, s values.
	ErrInvalidSig = errors.New("invalid transaction v, r, s values")
)

// Transaction is one of the five envelope shapes. The set is closed: the
// unexported methods keep implementations inside this package, so the
// per-type signing table stays total.
type Transaction interface {
	Type() byte
	GetChainID() *uint256.Int
	GetNonce() uint64
	GetGasLimit() uint64
	GetTo() *common.Address
	GetValue() *uint256.Int
	GetData() []byte
	GetTip() *uint256.Int
	GetFeeCap() *uint256.Int
	GetAccessList() AccessList
	GetBlobHashes() []common.Hash
	GetAuthorizations() []Authorization
	RawSignatureValues() (v, r, s *uint256.Int)

	// SigningHash returns the digest the sender signs, bound to chainID.
	SigningHash(chainID *uint256.Int) common.Hash
	// Hash returns the transaction hash of the signed envelope.
	Hash() common.Hash
	// MarshalBinary returns the network encoding submitted via
	// eth_sendRawTransaction: the RLP list for legacy transactions, the
	// type byte followed by the RLP payload for typed ones.
	MarshalBinary() ([]byte, error)

	// signingFields is the unsigned RLP tuple hashed for signing.
	signingFields(chainID *uint256.Int) []rlp.Item
	// envelopeFields is the signed RLP tuple, signature fields appended.
	envelopeFields() []rlp.Item
	// withSignature returns a signed deep copy; receivers are never mutated.
	withSignature(sig Signature, chainID *uint256.Int) (Transaction, error)
}

// CommonTx holds the fields shared by every envelope shape.
type CommonTx struct {
	Nonce    uint64
	GasLimit uint64
	To       *common.Address // nil means contract creation
	Value    *uint256.Int
	Data     []byte
	V, R, S  uint256.Int // signature values
}

func (tx *CommonTx) GetNonce() uint64        { return tx.Nonce }
func (tx *CommonTx) GetGasLimit() uint64     { return tx.GasLimit }
func (tx *CommonTx) GetTo() *common.Address  { return tx.To }
func (tx *CommonTx) GetValue() *uint256.Int  { return tx.Value }
func (tx *CommonTx) GetData() []byte         { return tx.Data }
func (tx *CommonTx) GetBlobHashes() []common.Hash { return nil }
func (tx *CommonTx) GetAuthorizations() []Authorization { return nil }

func (tx *CommonTx) RawSignatureValues() (v, r, s *uint256.Int) {
	return &tx.V, &tx.R, &tx.S
}

func (tx *CommonTx) copyCommon() CommonTx {
	cpy := CommonTx{
		Nonce:    tx.Nonce,
		GasLimit: tx.GasLimit,
		Data:     common.CopyBytes(tx.Data),
		Value:    new(uint256.Int),
	}
	if tx.To != nil {
		to := *tx.To
		cpy.To = &to
	}
	if tx.Value != nil {
		cpy.Value.Set(tx.Value)
	}
	cpy.V.Set(&tx.V)
	cpy.R.Set(&tx.R)
	cpy.S.Set(&tx.S)
	return cpy
}

// rlpHash hashes the RLP encoding of a field list.
func rlpHash(items []rlp.Item) common.Hash {
	return crypto.Keccak256Hash(rlp.Encode(rlp.List(items...)))
}

// prefixedRlpHash hashes a type byte followed by the RLP encoding of a field
// list, the EIP-2718 typed-envelope preimage.
func prefixedRlpHash(prefix byte, items []rlp.Item) common.Hash {
	return crypto.Keccak256Hash([]byte{prefix}, rlp.Encode(rlp.List(items...)))
}

func addressItem(a *common.Address) rlp.Item {
	if a == nil {
		return rlp.Bytes(nil)
	}
	return rlp.Bytes(a[:])
}

func hashListItem(hashes []common.Hash) rlp.Item {
	items := make([]rlp.Item, len(hashes))
	for i, h := range hashes {
		items[i] = rlp.Bytes(h.Bytes())
	}
	return rlp.List(items...)
}

func itemOptionalAddress(it rlp.Item, what string) (*common.Address, error) {
	if it.IsList() {
		return nil, fmt.Errorf("%w: %s must be a byte string", ErrTxDecode, what)
	}
	b := it.Str()
	switch len(b) {
	case 0:
		return nil, nil
	case common.AddressLength:
		a := common.BytesToAddress(b)
		return &a, nil
	default:
		return nil, fmt.Errorf("%w: wrong size for %s: %d", ErrTxDecode, what, len(b))
	}
}

func itemAddress(it rlp.Item, what string) (common.Address, error) {
	a, err := itemOptionalAddress(it, what)
	if err != nil {
		return common.Address{}, err
	}
	if a == nil {
		return common.Address{}, fmt.Errorf("%w: empty %s", ErrTxDecode, what)
	}
	return *a, nil
}

func itemHash(it rlp.Item, what string) (common.Hash, error) {
	if it.IsList() || len(it.Str()) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: wrong size for %s", ErrTxDecode, what)
	}
	return common.BytesToHash(it.Str()), nil
}

func itemUint64(it rlp.Item, what string) (uint64, error) {
	u, err := it.Uint64()
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", what, err)
	}
	return u, nil
}

func itemUint256(it rlp.Item, what string) (*uint256.Int, error) {
	u, err := it.Uint256Value()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", what, err)
	}
	return u, nil
}

func itemBytes(it rlp.Item, what string) ([]byte, error) {
	if it.IsList() {
		return nil, fmt.Errorf("%w: %s must be a byte string", ErrTxDecode, what)
	}
	return common.CopyBytes(it.Str()), nil
}

// typedEnvelope renders typeByte || rlp(fields).
func typedEnvelope(typeByte byte, fields []rlp.Item) []byte {
	list := rlp.List(fields...)
	out := make([]byte, 1+rlp.EncodedSize(list))
	out[0] = typeByte
	rlp.EncodeTo(list, out[1:])
	return out
}

// DecodeTransaction parses the network encoding of a signed transaction of
// any of the five shapes.
func DecodeTransaction(data []byte) (Transaction, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrTxDecode)
	}
	if data[0] >= 0xC0 {
		// legacy: the whole input is one RLP list
		it, err := rlp.Decode(data)
		if err != nil {
			return nil, err
		}
		return decodeLegacyTx(it)
	}
	typeByte := data[0]
	if typeByte > SetCodeTxType {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnsupportedTxType, typeByte)
	}
	it, err := rlp.Decode(data[1:])
	if err != nil {
		return nil, err
	}
	switch typeByte {
	case AccessListTxType:
		return decodeAccessListTx(it)
	case DynamicFeeTxType:
		return decodeDynamicFeeTx(it)
	case BlobTxType:
		return decodeBlobTx(it)
	default:
		return decodeSetCodeTx(it)
	}
}

func expectList(it rlp.Item, arity int, what string) ([]rlp.Item, error) {
	if !it.IsList() {
		return nil, fmt.Errorf("%w: %s payload must be a list", ErrTxDecode, what)
	}
	if arity >= 0 && len(it.Items()) != arity {
		return nil, fmt.Errorf("%w: %s needs %d fields, got %d", ErrTxDecode, what, arity, len(it.Items()))
	}
	return it.Items(), nil
}
