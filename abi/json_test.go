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

package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImL1s/web3go/common"
)

const erc20JSON = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"Transfer","anonymous":false,
	 "inputs":[{"name":"from","type":"address","indexed":true},
	           {"name":"to","type":"address","indexed":true},
	           {"name":"value","type":"uint256","indexed":false}]},
	{"type":"error","name":"InsufficientBalance",
	 "inputs":[{"name":"available","type":"uint256"},{"name":"required","type":"uint256"}]},
	{"type":"constructor","stateMutability":"nonpayable",
	 "inputs":[{"name":"supply","type":"uint256"}]},
	{"type":"fallback","stateMutability":"payable"}
]`

func TestParseJSON(t *testing.T) {
	a, err := ParseJSON([]byte(erc20JSON))
	require.NoError(t, err)

	transfer, ok := a.Methods["transfer"]
	require.True(t, ok)
	assert.Equal(t, "transfer(address,uint256)", transfer.Sig())
	assert.Equal(t, [4]byte{0xa9, 0x05, 0x9c, 0xbb}, transfer.ID())
	assert.False(t, transfer.IsReadOnly())

	balanceOf := a.Methods["balanceOf"]
	assert.True(t, balanceOf.IsReadOnly())

	ev, ok := a.Events["Transfer"]
	require.True(t, ok)
	// names and indexed flags never enter the canonical signature
	assert.Equal(t, "Transfer(address,address,uint256)", ev.Sig())
	assert.Equal(t,
		"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef",
		ev.ID().Hex())

	decl, ok := a.Errors["InsufficientBalance"]
	require.True(t, ok)
	assert.Equal(t, "InsufficientBalance(uint256,uint256)", decl.Sig())

	require.NotNil(t, a.Constructor)
	assert.Len(t, a.Constructor.Inputs, 1)
	assert.True(t, a.HasFallback)
	assert.False(t, a.HasReceive)
}

func TestABIPackUnpack(t *testing.T) {
	a, err := ParseJSON([]byte(erc20JSON))
	require.NoError(t, err)

	to, err := common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	require.NoError(t, err)
	calldata, err := a.Pack("transfer", to, big.NewInt(1_000_000))
	require.NoError(t, err)
	require.Len(t, calldata, 4+64)
	assert.Equal(t, []byte{0xa9, 0x05, 0x9c, 0xbb}, calldata[:4])

	// return data decoding: the selector is already gone
	ret, err := a.Unpack("balanceOf", encodeLength(42))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{big.NewInt(42)}, ret)

	// log data holds only the non-indexed event inputs
	logData, err := a.Events["Transfer"].Inputs.NonIndexed().Pack(big.NewInt(7))
	require.NoError(t, err)
	vals, err := a.UnpackLogData("Transfer", logData)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{big.NewInt(7)}, vals)
}

func TestParseJSONTuples(t *testing.T) {
	src := `[
		{"type":"function","name":"submit","stateMutability":"nonpayable",
		 "inputs":[{"name":"orders","type":"tuple[]","components":[
			{"name":"maker","type":"address"},
			{"name":"amounts","type":"uint256[2]"},
			{"name":"meta","type":"tuple","components":[
				{"name":"id","type":"uint256"},{"name":"note","type":"string"}]}
		 ]}],
		 "outputs":[]}
	]`
	a, err := ParseJSON([]byte(src))
	require.NoError(t, err)
	m := a.Methods["submit"]
	assert.Equal(t,
		"submit((address,uint256[2],(uint256,string))[])",
		m.Sig())
	require.Len(t, m.Inputs, 1)
	assert.True(t, m.Inputs[0].Type.IsDynamic())
}

func TestParseJSONErrors(t *testing.T) {
	// malformed type string inside an entry fails fast, naming the field
	_, err := ParseJSON([]byte(`[{"type":"function","name":"f","inputs":[{"name":"x","type":"uint7"}]}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = ParseJSON([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = ParseJSON([]byte(`[{"type":"widget"}]`))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestLegacyMutabilityFields(t *testing.T) {
	src := `[{"type":"function","name":"old","constant":true,"inputs":[],"outputs":[]}]`
	a, err := ParseJSON([]byte(src))
	require.NoError(t, err)
	assert.True(t, a.Methods["old"].IsReadOnly())
}
