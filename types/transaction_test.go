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
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImL1s/web3go/common"
	"github.com/ImL1s/web3go/crypto"
)

// keySigner signs with an in-memory key, the simplest Signer.
type keySigner struct {
	key *secp256k1.PrivateKey
}

func (k keySigner) Sign(_ context.Context, digest common.Hash) (Signature, error) {
	raw, err := crypto.Sign(digest[:], k.key)
	if err != nil {
		return Signature{}, err
	}
	var sig Signature
	sig.R.SetBytes(raw[:32])
	sig.S.SetBytes(raw[32:64])
	sig.RecoveryID = raw[64]
	return sig, nil
}

func testSigner(t *testing.T, hexKey string) keySigner {
	t.Helper()
	key, err := crypto.HexToPrivateKey(hexKey)
	require.NoError(t, err)
	return keySigner{key: key}
}

func mustAddress(t *testing.T, s string) common.Address {
	t.Helper()
	a, err := common.HexToAddress(s)
	require.NoError(t, err)
	return a
}

// The reference vector from the chain id protection proposal: nonce 9,
// gas price 20 gwei, gas 21000, value 1 ether, chain id 1, key 0x4646...46.
func eip155Tx(t *testing.T) *LegacyTx {
	to := mustAddress(t, "0x3535353535353535353535353535353535353535")
	return &LegacyTx{
		CommonTx: CommonTx{
			Nonce:    9,
			GasLimit: 21000,
			To:       &to,
			Value:    uint256.NewInt(1000000000000000000),
		},
		GasPrice: uint256.NewInt(20000000000),
	}
}

func TestLegacySigningHashEIP155(t *testing.T) {
	tx := eip155Tx(t)
	h := tx.SigningHash(uint256.NewInt(1))
	assert.Equal(t, "daf5a779ae972f972197303d7b574746c7ef83eadac0f2791ad23db92e4c8e53",
		common.Bytes2Hex(h[:]))
}

func TestSignTxEIP155Vector(t *testing.T) {
	signer := testSigner(t, "0x4646464646464646464646464646464646464646464646464646464646464646")
	signed, err := SignTx(context.Background(), eip155Tx(t), uint256.NewInt(1), signer)
	require.NoError(t, err)

	v, r, s := signed.RawSignatureValues()
	assert.Equal(t, uint64(37), v.Uint64())
	assert.Equal(t, "28ef61340bd939bc2195fe537567866003e1a15d3c71ff63e1590620aa636276", r.Hex()[2:])
	assert.Equal(t, "67cbe9d8997f761aecb703304b3800ccf555c9f3dc64214b297fb1966a3b6d83", s.Hex()[2:])

	raw, err := signed.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t,
		"f86c098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a76400008025a028ef61340bd939bc2195fe537567866003e1a15d3c71ff63e1590620aa636276a067cbe9d8997f761aecb703304b3800ccf555c9f3dc64214b297fb1966a3b6d83",
		common.Bytes2Hex(raw))

	from, err := Sender(signed)
	require.NoError(t, err)
	assert.Equal(t, "0x9d8A62f656a8d1615C1294fd71e9CFb3E4855A4F", from.Hex())
}

func TestSignTxDeterministic(t *testing.T) {
	signer := testSigner(t, "0x4646464646464646464646464646464646464646464646464646464646464646")
	chainID := uint256.NewInt(1)
	a, err := SignTx(context.Background(), eip155Tx(t), chainID, signer)
	require.NoError(t, err)
	b, err := SignTx(context.Background(), eip155Tx(t), chainID, signer)
	require.NoError(t, err)
	rawA, _ := a.MarshalBinary()
	rawB, _ := b.MarshalBinary()
	assert.Equal(t, rawA, rawB)
}

func TestSignTxDoesNotMutateInput(t *testing.T) {
	signer := testSigner(t, "0x4646464646464646464646464646464646464646464646464646464646464646")
	tx := eip155Tx(t)
	_, err := SignTx(context.Background(), tx, uint256.NewInt(1), signer)
	require.NoError(t, err)
	v, r, s := tx.RawSignatureValues()
	assert.True(t, v.IsZero())
	assert.True(t, r.IsZero())
	assert.True(t, s.IsZero())
}

func TestSignTxUnprotectedLegacy(t *testing.T) {
	signer := testSigner(t, "0x4646464646464646464646464646464646464646464646464646464646464646")
	signed, err := SignTx(context.Background(), eip155Tx(t), nil, signer)
	require.NoError(t, err)
	v, _, _ := signed.RawSignatureValues()
	assert.Contains(t, []uint64{27, 28}, v.Uint64())
	assert.False(t, signed.(*LegacyTx).Protected())

	from, err := Sender(signed)
	require.NoError(t, err)
	assert.Equal(t, "0x9d8A62f656a8d1615C1294fd71e9CFb3E4855A4F", from.Hex())
}

type failingSigner struct{ err error }

func (f failingSigner) Sign(context.Context, common.Hash) (Signature, error) {
	return Signature{}, f.err
}

func TestSignTxPropagatesSignerError(t *testing.T) {
	boom := errors.New("hsm unavailable")
	_, err := SignTx(context.Background(), eip155Tx(t), uint256.NewInt(1), failingSigner{err: boom})
	assert.ErrorIs(t, err, boom)
}

func dynamicFeeTx(t *testing.T) *DynamicFeeTx {
	to := mustAddress(t, "0x000000000000000000000000000000000000dead")
	return &DynamicFeeTx{
		CommonTx: CommonTx{
			Nonce:    7,
			GasLimit: 90000,
			To:       &to,
			Value:    uint256.NewInt(42),
			Data:     []byte{0xca, 0xfe},
		},
		ChainID: uint256.NewInt(1),
		Tip:     uint256.NewInt(2000000000),
		FeeCap:  uint256.NewInt(30000000000),
		AccessList: AccessList{{
			Address:     mustAddress(t, "0x0000000000000000000000000000000000000001"),
			StorageKeys: []common.Hash{{0x01}},
		}},
	}
}

func TestSignatureCoversFeeFields(t *testing.T) {
	signer := testSigner(t, "0x4646464646464646464646464646464646464646464646464646464646464646")
	ctx := context.Background()

	base := dynamicFeeTx(t)
	bumped := dynamicFeeTx(t)
	bumped.FeeCap = uint256.NewInt(60000000000)

	signedBase, err := SignTx(ctx, base, base.ChainID, signer)
	require.NoError(t, err)
	signedBumped, err := SignTx(ctx, bumped, bumped.ChainID, signer)
	require.NoError(t, err)

	_, rA, sA := signedBase.RawSignatureValues()
	_, rB, sB := signedBumped.RawSignatureValues()
	assert.False(t, rA.Eq(rB) && sA.Eq(sB))
}

func TestTypedRoundTrips(t *testing.T) {
	signer := testSigner(t, "0x4646464646464646464646464646464646464646464646464646464646464646")
	ctx := context.Background()
	chainID := uint256.NewInt(1)
	to := mustAddress(t, "0x000000000000000000000000000000000000dead")

	auth := Authorization{
		Address: mustAddress(t, "0x00000000000000000000000000000000000000aa"),
		Nonce:   1,
	}
	auth.ChainID.SetUint64(1)
	signedAuth, err := SignAuthorization(ctx, auth, signer)
	require.NoError(t, err)

	txs := []Transaction{
		&AccessListTx{
			LegacyTx: LegacyTx{
				CommonTx: CommonTx{Nonce: 3, GasLimit: 21000, To: &to, Value: uint256.NewInt(5)},
				GasPrice: uint256.NewInt(1000000000),
			},
			ChainID: uint256.NewInt(1),
			AccessList: AccessList{{
				Address:     to,
				StorageKeys: []common.Hash{{0x02}, {0x03}},
			}},
		},
		dynamicFeeTx(t),
		&BlobTx{
			DynamicFeeTx:        *dynamicFeeTx(t),
			MaxFeePerBlobGas:    uint256.NewInt(100),
			BlobVersionedHashes: []common.Hash{{0x01, 0x02}},
		},
		&SetCodeTx{
			DynamicFeeTx:   *dynamicFeeTx(t),
			Authorizations: []Authorization{signedAuth},
		},
	}

	for _, tx := range txs {
		signed, err := SignTx(ctx, tx, chainID, signer)
		require.NoError(t, err)

		raw, err := signed.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, signed.Type(), raw[0])

		decoded, err := DecodeTransaction(raw)
		require.NoError(t, err)
		assert.Equal(t, signed.Type(), decoded.Type())
		assert.Equal(t, signed.Hash(), decoded.Hash())

		reencoded, err := decoded.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, raw, reencoded)

		from, err := Sender(decoded)
		require.NoError(t, err)
		assert.Equal(t, "0x9d8A62f656a8d1615C1294fd71e9CFb3E4855A4F", from.Hex())
	}
}

func TestLegacyRoundTrip(t *testing.T) {
	signer := testSigner(t, "0x4646464646464646464646464646464646464646464646464646464646464646")
	signed, err := SignTx(context.Background(), eip155Tx(t), uint256.NewInt(1), signer)
	require.NoError(t, err)

	raw, err := signed.MarshalBinary()
	require.NoError(t, err)
	decoded, err := DecodeTransaction(raw)
	require.NoError(t, err)

	assert.Equal(t, LegacyTxType, decoded.Type())
	assert.Equal(t, signed.Hash(), decoded.Hash())
	assert.Equal(t, uint64(1), decoded.GetChainID().Uint64())
}

func TestDecodeTransactionErrors(t *testing.T) {
	_, err := DecodeTransaction(nil)
	assert.ErrorIs(t, err, ErrTxDecode)

	_, err = DecodeTransaction([]byte{0x05, 0xc0})
	assert.ErrorIs(t, err, ErrUnsupportedTxType)

	// typed envelope whose payload is not a list
	_, err = DecodeTransaction([]byte{0x02, 0x80})
	assert.ErrorIs(t, err, ErrTxDecode)

	// legacy list with the wrong arity
	_, err = DecodeTransaction([]byte{0xc1, 0x80})
	assert.ErrorIs(t, err, ErrTxDecode)
}

func TestBlobTxRequiresRecipient(t *testing.T) {
	tx := &BlobTx{
		DynamicFeeTx:     *dynamicFeeTx(t),
		MaxFeePerBlobGas: uint256.NewInt(1),
	}
	tx.To = nil
	_, err := tx.MarshalBinary()
	assert.ErrorIs(t, err, ErrTxDecode)
}

func TestSenderRejectsUnsigned(t *testing.T) {
	_, err := Sender(eip155Tx(t))
	assert.ErrorIs(t, err, ErrInvalidSig)
}
