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
	"context"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ImL1s/web3go/common"
	"github.com/ImL1s/web3go/crypto"
)

// Signature is a recoverable secp256k1 signature over a 32-byte digest.
// RecoveryID is 0 or 1; the per-type v encoding is applied when the
// signature is attached to an envelope.
type Signature struct {
	R, S       uint256.Int
	RecoveryID byte
}

// Signer produces signatures over 32-byte digests. Implementations may hold
// a raw key or front a remote signing service, hence the context.
type Signer interface {
	Sign(ctx context.Context, digest common.Hash) (Signature, error)
}

// SignTx computes the signing hash of txn bound to chainID, obtains a
// signature and returns a signed deep copy. txn is never mutated and signer
// errors are returned unchanged, with no partially signed result.
func SignTx(ctx context.Context, txn Transaction, chainID *uint256.Int, signer Signer) (Transaction, error) {
	if txn.Type() != LegacyTxType && (chainID == nil || chainID.IsZero()) {
		if chainID = txn.GetChainID(); chainID == nil || chainID.IsZero() {
			return nil, fmt.Errorf("%w: typed transaction requires a chain id", ErrInvalidSig)
		}
	}
	sig, err := signer.Sign(ctx, txn.SigningHash(chainID))
	if err != nil {
		return nil, err
	}
	if sig.RecoveryID > 1 || sig.R.IsZero() || sig.S.IsZero() {
		return nil, fmt.Errorf("%w: malformed signature from signer", ErrInvalidSig)
	}
	return txn.withSignature(sig, chainID)
}

// applyTypedSignature stores r, s and the raw y parity, the v convention of
// every typed envelope.
func applyTypedSignature(into *CommonTx, sig Signature) {
	into.V.SetUint64(uint64(sig.RecoveryID))
	into.R.Set(&sig.R)
	into.S.Set(&sig.S)
}

// Sender recovers the signing address of txn. For typed transactions v is
// the y parity directly; for legacy ones it carries the 27/28 or EIP-155
// offset and the recovery id is derived before the public key recovery.
func Sender(txn Transaction) (common.Address, error) {
	v, r, s := txn.RawSignatureValues()
	if r.IsZero() && s.IsZero() {
		return common.Address{}, fmt.Errorf("%w: transaction is unsigned", ErrInvalidSig)
	}

	var recoveryID byte
	if txn.Type() == LegacyTxType {
		recID := new(uint256.Int).Set(v)
		if chainID := txn.GetChainID(); chainID != nil {
			// EIP-155: v = chainID*2 + 35 + recid
			mul := new(uint256.Int).Mul(chainID, u256Two)
			recID.Sub(recID, mul)
			recID.SubUint64(recID, 35)
		} else {
			recID.SubUint64(recID, 27)
		}
		if !recID.IsUint64() || recID.Uint64() > 1 {
			return common.Address{}, fmt.Errorf("%w: v out of range", ErrInvalidSig)
		}
		recoveryID = byte(recID.Uint64())
	} else {
		if !v.IsUint64() || v.Uint64() > 1 {
			return common.Address{}, fmt.Errorf("%w: y parity out of range", ErrInvalidSig)
		}
		recoveryID = byte(v.Uint64())
	}
	if !crypto.ValidateSignatureValues(recoveryID, r, s, true) {
		return common.Address{}, ErrInvalidSig
	}

	sig := make([]byte, crypto.SignatureLength)
	r.WriteToSlice(sig[:32])
	s.WriteToSlice(sig[32:64])
	sig[64] = recoveryID
	digest := txn.SigningHash(txn.GetChainID())
	return crypto.RecoverAddress(digest[:], sig)
}
