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
	"github.com/ImL1s/web3go/rlp"
)

// LegacyTx is the original transaction shape. With a non-zero chain id the
// signature is bound to the chain per EIP-155; without one it uses the
// pre-155 six-field preimage.
type LegacyTx struct {
	CommonTx
	GasPrice *uint256.Int
}

func (tx *LegacyTx) Type() byte { return LegacyTxType }

// GetChainID derives the chain id from v for a signed EIP-155 transaction,
// nil for an unprotected one.
func (tx *LegacyTx) GetChainID() *uint256.Int {
	return deriveChainID(&tx.V)
}

func (tx *LegacyTx) GetTip() *uint256.Int    { return tx.GasPrice }
func (tx *LegacyTx) GetFeeCap() *uint256.Int { return tx.GasPrice }

func (tx *LegacyTx) GetAccessList() AccessList { return nil }

// Protected reports whether the signature is chain-bound per EIP-155.
func (tx *LegacyTx) Protected() bool {
	return !tx.V.IsZero() && tx.V.Uint64() != 27 && tx.V.Uint64() != 28
}

func (tx *LegacyTx) copy() *LegacyTx {
	cpy := &LegacyTx{
		CommonTx: tx.copyCommon(),
		GasPrice: new(uint256.Int),
	}
	if tx.GasPrice != nil {
		cpy.GasPrice.Set(tx.GasPrice)
	}
	return cpy
}

func (tx *LegacyTx) coreFields() []rlp.Item {
	return []rlp.Item{
		rlp.Uint(tx.Nonce),
		rlp.Uint256(tx.GasPrice),
		rlp.Uint(tx.GasLimit),
		addressItem(tx.To),
		rlp.Uint256(tx.Value),
		rlp.Bytes(tx.Data),
	}
}

// signingFields returns the EIP-155 nine-field preimage when a chain id is
// present, the six-field pre-155 preimage otherwise.
func (tx *LegacyTx) signingFields(chainID *uint256.Int) []rlp.Item {
	fields := tx.coreFields()
	if chainID != nil && !chainID.IsZero() {
		fields = append(fields, rlp.Uint256(chainID), rlp.Uint(0), rlp.Uint(0))
	}
	return fields
}

func (tx *LegacyTx) envelopeFields() []rlp.Item {
	return append(tx.coreFields(),
		rlp.Uint256(&tx.V),
		rlp.Uint256(&tx.R),
		rlp.Uint256(&tx.S),
	)
}

func (tx *LegacyTx) SigningHash(chainID *uint256.Int) common.Hash {
	return rlpHash(tx.signingFields(chainID))
}

func (tx *LegacyTx) Hash() common.Hash {
	return rlpHash(tx.envelopeFields())
}

func (tx *LegacyTx) MarshalBinary() ([]byte, error) {
	return rlp.Encode(rlp.List(tx.envelopeFields()...)), nil
}

// withSignature sets v per EIP-155 (chainID*2 + 35 + recovery id) when a
// chain id is present, 27 + recovery id otherwise.
func (tx *LegacyTx) withSignature(sig Signature, chainID *uint256.Int) (Transaction, error) {
	cpy := tx.copy()
	cpy.R.Set(&sig.R)
	cpy.S.Set(&sig.S)
	if chainID != nil && !chainID.IsZero() {
		cpy.V.Mul(chainID, u256Two)
		cpy.V.AddUint64(&cpy.V, 35+uint64(sig.RecoveryID))
	} else {
		cpy.V.SetUint64(27 + uint64(sig.RecoveryID))
	}
	return cpy, nil
}

var u256Two = uint256.NewInt(2)

// deriveChainID derives the chain id from a legacy v value, nil when the
// signature is unprotected or absent.
func deriveChainID(v *uint256.Int) *uint256.Int {
	if v.IsZero() {
		return nil
	}
	if u := v.Uint64(); v.IsUint64() && (u == 27 || u == 28) {
		return nil
	}
	chainID := new(uint256.Int).SubUint64(v, 35)
	return chainID.Div(chainID, u256Two)
}

func decodeLegacyTx(it rlp.Item) (*LegacyTx, error) {
	fields, err := expectList(it, 9, "legacy transaction")
	if err != nil {
		return nil, err
	}
	tx := &LegacyTx{}
	if tx.Nonce, err = itemUint64(fields[0], "Nonce"); err != nil {
		return nil, err
	}
	if tx.GasPrice, err = itemUint256(fields[1], "GasPrice"); err != nil {
		return nil, err
	}
	if tx.GasLimit, err = itemUint64(fields[2], "GasLimit"); err != nil {
		return nil, err
	}
	if tx.To, err = itemOptionalAddress(fields[3], "To"); err != nil {
		return nil, err
	}
	if tx.Value, err = itemUint256(fields[4], "Value"); err != nil {
		return nil, err
	}
	if tx.Data, err = itemBytes(fields[5], "Data"); err != nil {
		return nil, err
	}
	if err = readSignatureItems(fields[6:], &tx.CommonTx); err != nil {
		return nil, err
	}
	return tx, nil
}

// readSignatureItems reads the trailing v, r, s fields of a signed tuple.
func readSignatureItems(fields []rlp.Item, into *CommonTx) error {
	v, err := itemUint256(fields[0], "V")
	if err != nil {
		return err
	}
	into.V.Set(v)
	r, err := itemUint256(fields[1], "R")
	if err != nil {
		return err
	}
	into.R.Set(r)
	s, err := itemUint256(fields[2], "S")
	if err != nil {
		return err
	}
	into.S.Set(s)
	return nil
}
