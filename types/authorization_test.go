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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImL1s/web3go/common"
)

func TestSignAuthorizationRecoversAuthority(t *testing.T) {
	signer := testSigner(t, "0x4646464646464646464646464646464646464646464646464646464646464646")

	auth := Authorization{
		Address: mustAddress(t, "0x1111111111111111111111111111111111111111"),
		Nonce:   5,
	}
	auth.ChainID.SetUint64(1)

	signed, err := SignAuthorization(context.Background(), auth, signer)
	require.NoError(t, err)

	// the input stays untouched
	assert.True(t, auth.R.IsZero())
	assert.True(t, auth.S.IsZero())

	authority, err := signed.Authority()
	require.NoError(t, err)
	assert.Equal(t, "0x9d8A62f656a8d1615C1294fd71e9CFb3E4855A4F", authority.Hex())
}

func TestAuthorizationChainBinding(t *testing.T) {
	signer := testSigner(t, "0x4646464646464646464646464646464646464646464646464646464646464646")

	a := Authorization{Address: mustAddress(t, "0x1111111111111111111111111111111111111111"), Nonce: 5}
	a.ChainID.SetUint64(1)
	b := a.copy()
	b.ChainID.SetUint64(5)

	signedA, err := SignAuthorization(context.Background(), a, signer)
	require.NoError(t, err)
	signedB, err := SignAuthorization(context.Background(), b, signer)
	require.NoError(t, err)

	assert.False(t, signedA.R.Eq(&signedB.R) && signedA.S.Eq(&signedB.S))
}

func TestAuthorizationRevocation(t *testing.T) {
	revoke := Authorization{Nonce: 9}
	revoke.ChainID.SetUint64(1)
	assert.True(t, revoke.IsRevocation())

	delegate := Authorization{Address: common.Address{0x01}}
	assert.False(t, delegate.IsRevocation())
}

func TestAuthorizationAuthorityRejectsBadSignature(t *testing.T) {
	a := Authorization{Address: common.Address{0x01}, YParity: 2}
	a.R.SetUint64(1)
	a.S.SetUint64(1)
	_, err := a.Authority()
	assert.Error(t, err)
}
