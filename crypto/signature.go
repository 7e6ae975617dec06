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

package crypto

import (
	"errors"
	"fmt"

	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/holiman/uint256"

	"github.com/ImL1s/web3go/common"
)

// SignatureLength is the byte length of a recoverable signature: 32-byte R,
// 32-byte S, 1-byte recovery id.
const SignatureLength = 65

// DigestLength is the byte length of hashes handed to Sign and Ecrecover.
const DigestLength = 32

var (
	ErrInvalidSig       = errors.New("invalid transaction v, r, s values")
	errInvalidPublicKey = errors.New("invalid secp256k1 public key")

	secp256k1N     = uint256.MustFromHex("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	secp256k1HalfN = new(uint256.Int).Rsh(secp256k1N, 1)
)

// Sign calculates a recoverable ECDSA signature over a 32-byte hash. The
// returned signature is in the [R || S || V] format where V is 0 or 1.
// Signing is deterministic (RFC 6979): the same hash and key always produce
// the same signature.
func Sign(digest []byte, key *secp256k1.PrivateKey) ([]byte, error) {
	if len(digest) != DigestLength {
		return nil, fmt.Errorf("digest is required to be exactly %d bytes (%d)", DigestLength, len(digest))
	}
	sig := secpecdsa.SignCompact(key, digest, false)
	// Convert from the [V || R || S] layout (V = 27 + recovery id) that
	// SignCompact produces.
	v := sig[0] - 27
	copy(sig, sig[1:])
	sig[SignatureLength-1] = v
	return sig, nil
}

// SigToPub recovers the public key that produced the given [R || S || V]
// signature over digest.
func SigToPub(digest, sig []byte) (*secp256k1.PublicKey, error) {
	if len(sig) != SignatureLength {
		return nil, ErrInvalidSig
	}
	// RecoverCompact expects the [V || R || S] layout.
	compact := make([]byte, SignatureLength)
	compact[0] = sig[SignatureLength-1] + 27
	copy(compact[1:], sig)
	pub, _, err := secpecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// Ecrecover recovers the uncompressed public key bytes from a signed digest.
func Ecrecover(digest, sig []byte) ([]byte, error) {
	pub, err := SigToPub(digest, sig)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

// PubkeyToAddress derives the Ethereum address from a secp256k1 public key:
// the last 20 bytes of the keccak256 of the 64-byte X||Y point encoding.
func PubkeyToAddress(pub *secp256k1.PublicKey) common.Address {
	uncompressed := pub.SerializeUncompressed()
	return common.BytesToAddress(Keccak256(uncompressed[1:])[12:])
}

// RecoverAddress recovers the signer address from a signed digest.
func RecoverAddress(digest, sig []byte) (common.Address, error) {
	pub, err := Ecrecover(digest, sig)
	if err != nil {
		return common.Address{}, err
	}
	if len(pub) == 0 || pub[0] != 4 {
		return common.Address{}, errInvalidPublicKey
	}
	return common.BytesToAddress(Keccak256(pub[1:])[12:]), nil
}

// ValidateSignatureValues verifies whether the signature values are valid with
// the given chain rules. The v value is assumed to be either 0 or 1.
func ValidateSignatureValues(v byte, r, s *uint256.Int, homestead bool) bool {
	if r.IsZero() || s.IsZero() {
		return false
	}
	// reject upper range of s values (ECDSA malleability)
	if homestead && s.Gt(secp256k1HalfN) {
		return false
	}
	return r.Lt(secp256k1N) && s.Lt(secp256k1N) && (v == 0 || v == 1)
}

// HexToPrivateKey parses a hex-encoded secp256k1 private key scalar.
func HexToPrivateKey(s string) (*secp256k1.PrivateKey, error) {
	b, err := common.FromHex(s)
	if err != nil {
		return nil, err
	}
	return PrivateKeyFromBytes(b)
}

// PrivateKeyFromBytes builds a private key from a 32-byte scalar, rejecting
// out-of-range and zero scalars.
func PrivateKeyFromBytes(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("invalid private key length %d", len(b))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow {
		return nil, errors.New("invalid private key: scalar out of range")
	}
	if scalar.IsZero() {
		return nil, errors.New("invalid private key: zero scalar")
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}
