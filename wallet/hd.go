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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
)

// DefaultDerivationPath is the first external account of the standard
// Ethereum BIP-44 tree.
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

// ErrInvalidMnemonic marks a phrase outside the BIP-39 word list or with a
// bad checksum.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// DerivationPath is a BIP-32 child index sequence. Hardened indexes carry
// the 0x80000000 offset.
type DerivationPath []uint32

// ParseDerivationPath parses "m/44'/60'/0'/0/0" style paths. An "h" suffix
// is accepted as an alternative hardening marker.
func ParseDerivationPath(s string) (DerivationPath, error) {
	parts := strings.Split(s, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("derivation path %q must start with m/", s)
	}
	path := make(DerivationPath, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := false
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") {
			hardened = true
			part = part[:len(part)-1]
		}
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("derivation path component %q: %w", part, err)
		}
		if idx >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("derivation path component %q out of range", part)
		}
		if hardened {
			idx += hdkeychain.HardenedKeyStart
		}
		path = append(path, uint32(idx))
	}
	return path, nil
}

func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range p {
		b.WriteString("/")
		if idx >= hdkeychain.HardenedKeyStart {
			b.WriteString(strconv.FormatUint(uint64(idx-hdkeychain.HardenedKeyStart), 10))
			b.WriteString("'")
		} else {
			b.WriteString(strconv.FormatUint(uint64(idx), 10))
		}
	}
	return b.String()
}

// FromMnemonic derives a key from a BIP-39 mnemonic at the given path. An
// empty path means DefaultDerivationPath.
func FromMnemonic(mnemonic, passphrase, path string) (*Key, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	if path == "" {
		path = DefaultDerivationPath
	}
	parsed, err := ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}
	seed := bip39.NewSeed(mnemonic, passphrase)
	return deriveKey(seed, parsed)
}

// FromSeed derives a key from a raw BIP-32 seed.
func FromSeed(seed []byte, path DerivationPath) (*Key, error) {
	return deriveKey(seed, path)
}

func deriveKey(seed []byte, path DerivationPath) (*Key, error) {
	// the network params only affect xprv serialization, which never
	// surfaces here
	node, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, err
	}
	for _, idx := range path {
		if node, err = node.Derive(idx); err != nil {
			return nil, err
		}
	}
	priv, err := node.ECPrivKey()
	if err != nil {
		return nil, err
	}
	return NewKey(priv), nil
}
