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

package wallet

import (
	"context"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImL1s/web3go/types"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestNewKeyFromHexAddress(t *testing.T) {
	key, err := NewKeyFromHex("0x4646464646464646464646464646464646464646464646464646464646464646")
	require.NoError(t, err)
	assert.Equal(t, "0x9d8A62f656a8d1615C1294fd71e9CFb3E4855A4F", key.Address().Hex())
}

func TestNewKeyFromHexRejectsBadInput(t *testing.T) {
	_, err := NewKeyFromHex("0x01")
	assert.Error(t, err)
	_, err = NewKeyFromHex("not hex")
	assert.Error(t, err)
	// zero is not a valid scalar
	_, err = NewKeyFromHex("0x0000000000000000000000000000000000000000000000000000000000000000")
	assert.Error(t, err)
}

func TestFromMnemonicDefaultPath(t *testing.T) {
	key, err := FromMnemonic(testMnemonic, "", "")
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", key.Address().Hex())
}

func TestFromMnemonicAccountIndex(t *testing.T) {
	key, err := FromMnemonic(testMnemonic, "", "m/44'/60'/0'/0/1")
	require.NoError(t, err)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", key.Address().Hex())
}

func TestFromMnemonicRejectsBadPhrase(t *testing.T) {
	_, err := FromMnemonic("definitely not a bip39 phrase", "", "")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestFromMnemonicPassphraseChangesKey(t *testing.T) {
	plain, err := FromMnemonic(testMnemonic, "", "")
	require.NoError(t, err)
	salted, err := FromMnemonic(testMnemonic, "hunter2", "")
	require.NoError(t, err)
	assert.NotEqual(t, plain.Address(), salted.Address())
}

func TestParseDerivationPath(t *testing.T) {
	path, err := ParseDerivationPath("m/44'/60'/0'/0/2")
	require.NoError(t, err)
	assert.Equal(t, "m/44'/60'/0'/0/2", path.String())

	_, err = ParseDerivationPath("44'/60'/0'/0/0")
	assert.Error(t, err)
	_, err = ParseDerivationPath("m/44'/x")
	assert.Error(t, err)
}

func TestKeySignsTransactions(t *testing.T) {
	key, err := NewKeyFromHex("0x4646464646464646464646464646464646464646464646464646464646464646")
	require.NoError(t, err)

	req := types.TxRequest{
		ChainID: uint256.NewInt(1),
		FeeCap:  uint256.NewInt(30000000000),
		Tip:     uint256.NewInt(1000000000),
	}
	tx, err := req.Resolve()
	require.NoError(t, err)

	signed, err := types.SignTx(context.Background(), tx, req.ChainID, key)
	require.NoError(t, err)

	from, err := types.Sender(signed)
	require.NoError(t, err)
	assert.Equal(t, key.Address(), from)
}

func TestKeySignHonorsContext(t *testing.T) {
	key, err := NewKeyFromHex("0x4646464646464646464646464646464646464646464646464646464646464646")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = key.Sign(ctx, [32]byte{0x01})
	assert.ErrorIs(t, err, context.Canceled)
}
