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

// Package wallet provides in-memory signing keys, raw and derived from
// BIP-39 mnemonics.
package wallet

import (
	"context"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ImL1s/web3go/common"
	"github.com/ImL1s/web3go/crypto"
	"github.com/ImL1s/web3go/types"
)

// Key is an in-memory secp256k1 private key implementing types.Signer.
type Key struct {
	priv *secp256k1.PrivateKey
}

// NewKey wraps an existing private key.
func NewKey(priv *secp256k1.PrivateKey) *Key {
	return &Key{priv: priv}
}

// NewKeyFromHex parses a 32-byte hex private key, with or without the 0x
// prefix.
func NewKeyFromHex(s string) (*Key, error) {
	priv, err := crypto.HexToPrivateKey(s)
	if err != nil {
		return nil, err
	}
	return &Key{priv: priv}, nil
}

// NewKeyFromBytes parses a 32-byte private key.
func NewKeyFromBytes(b []byte) (*Key, error) {
	priv, err := crypto.PrivateKeyFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &Key{priv: priv}, nil
}

// Address returns the account address of the key.
func (k *Key) Address() common.Address {
	return crypto.PubkeyToAddress(k.priv.PubKey())
}

// Sign produces a recoverable signature over digest. The context is checked
// before signing so callers can bound batch signing.
func (k *Key) Sign(ctx context.Context, digest common.Hash) (types.Signature, error) {
	if err := ctx.Err(); err != nil {
		return types.Signature{}, err
	}
	raw, err := crypto.Sign(digest[:], k.priv)
	if err != nil {
		return types.Signature{}, err
	}
	var sig types.Signature
	sig.R.SetBytes(raw[:32])
	sig.S.SetBytes(raw[32:64])
	sig.RecoveryID = raw[64]
	return sig, nil
}
