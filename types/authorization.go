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
	"github.com/ImL1s/web3go/rlp"
)

// AuthorizationMagic is the EIP-7702 domain-separation byte prepended to the
// authorization signing preimage.
const AuthorizationMagic = 0x05

// Authorization is an EIP-7702 delegation authorization: the signing account
// delegates its code to Address, or revokes an existing delegation when
// Address is the zero address. A signed authorization is immutable; signing
// an unsigned one produces a new value.
type Authorization struct {
	ChainID uint256.Int
	Address common.Address
	Nonce   uint64
	YParity byte
	R, S    uint256.Int
}

// IsRevocation reports whether the authorization clears the delegation, per
// the zero-address sentinel.
func (a Authorization) IsRevocation() bool {
	return a.Address.IsZero()
}

// SigningHash returns keccak256(0x05 || rlp([chainId, address, nonce])).
func (a Authorization) SigningHash() common.Hash {
	return prefixedRlpHash(AuthorizationMagic, []rlp.Item{
		rlp.Uint256(&a.ChainID),
		rlp.Bytes(a.Address.Bytes()),
		rlp.Uint(a.Nonce),
	})
}

// Authority recovers the account that signed the authorization.
func (a Authorization) Authority() (common.Address, error) {
	if !crypto.ValidateSignatureValues(a.YParity, &a.R, &a.S, true) {
		return common.Address{}, ErrInvalidSig
	}
	sig := make([]byte, crypto.SignatureLength)
	a.R.WriteToSlice(sig[:32])
	a.S.WriteToSlice(sig[32:64])
	sig[64] = a.YParity
	digest := a.SigningHash()
	return crypto.RecoverAddress(digest[:], sig)
}

func (a *Authorization) copy() Authorization {
	cpy := Authorization{
		Address: a.Address,
		Nonce:   a.Nonce,
		YParity: a.YParity,
	}
	cpy.ChainID.Set(&a.ChainID)
	cpy.R.Set(&a.R)
	cpy.S.Set(&a.S)
	return cpy
}

// item renders the RLP 6-tuple embedded in an EIP-7702 transaction's
// authorization list.
func (a Authorization) item() rlp.Item {
	return rlp.List(
		rlp.Uint256(&a.ChainID),
		rlp.Bytes(a.Address.Bytes()),
		rlp.Uint(a.Nonce),
		rlp.Uint(uint64(a.YParity)),
		rlp.Uint256(&a.R),
		rlp.Uint256(&a.S),
	)
}

func authorizationListItem(auths []Authorization) rlp.Item {
	items := make([]rlp.Item, len(auths))
	for i := range auths {
		items[i] = auths[i].item()
	}
	return rlp.List(items...)
}

func decodeAuthorizationItem(it rlp.Item) (Authorization, error) {
	fields, err := expectList(it, 6, "authorization")
	if err != nil {
		return Authorization{}, err
	}
	var a Authorization
	chainID, err := itemUint256(fields[0], "authorization chainId")
	if err != nil {
		return Authorization{}, err
	}
	a.ChainID.Set(chainID)
	if a.Address, err = itemAddress(fields[1], "authorization address"); err != nil {
		return Authorization{}, err
	}
	if a.Nonce, err = itemUint64(fields[2], "authorization nonce"); err != nil {
		return Authorization{}, err
	}
	yParity, err := itemUint64(fields[3], "authorization yParity")
	if err != nil {
		return Authorization{}, err
	}
	if yParity > 1 {
		return Authorization{}, fmt.Errorf("%w: yParity must be 0 or 1", ErrTxDecode)
	}
	a.YParity = byte(yParity)
	r, err := itemUint256(fields[4], "authorization r")
	if err != nil {
		return Authorization{}, err
	}
	a.R.Set(r)
	s, err := itemUint256(fields[5], "authorization s")
	if err != nil {
		return Authorization{}, err
	}
	a.S.Set(s)
	return a, nil
}

func decodeAuthorizationListItem(it rlp.Item) ([]Authorization, error) {
	if !it.IsList() {
		return nil, fmt.Errorf("%w: authorizationList must be a list", ErrTxDecode)
	}
	auths := make([]Authorization, 0, len(it.Items()))
	for _, authItem := range it.Items() {
		a, err := decodeAuthorizationItem(authItem)
		if err != nil {
			return nil, err
		}
		auths = append(auths, a)
	}
	return auths, nil
}

// SignAuthorization signs an unsigned authorization with the delegating
// account's key and returns the signature-bearing value. The input is never
// mutated.
func SignAuthorization(ctx context.Context, auth Authorization, signer Signer) (Authorization, error) {
	sig, err := signer.Sign(ctx, auth.SigningHash())
	if err != nil {
		return Authorization{}, err
	}
	if sig.RecoveryID > 1 {
		return Authorization{}, fmt.Errorf("%w: recovery id %d", ErrInvalidSig, sig.RecoveryID)
	}
	signed := auth.copy()
	signed.YParity = sig.RecoveryID
	signed.R.Set(&sig.R)
	signed.S.Set(&sig.S)
	return signed, nil
}
