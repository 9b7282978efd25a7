// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avm_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/blinklabs-io/goavalanche/internal/test"
	"github.com/blinklabs-io/goavalanche/ledger/avm"
	"github.com/blinklabs-io/goavalanche/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInitialStateOutputs() []avm.TransactionOutput {
	owner := []common.Address{testAddress(test.AddressHashHex)}
	other := []common.Address{testAddress(test.OtherAddressHashHex)}
	return []avm.TransactionOutput{
		avm.NewSECP256k1TransferOutput(500, 0, 1, owner),
		avm.NewSECP256k1MintOutput(0, 1, owner),
		avm.NewSECP256k1TransferOutput(100, 0, 1, other),
		avm.NewNFTMintOutput(1, 0, 1, owner),
		avm.NewNFTTransferOutput(1, []byte("nft"), 0, 1, owner),
	}
}

func assertSortedByEncoding(t *testing.T, outputs []avm.TransactionOutput) {
	t.Helper()
	for i := 1; i < len(outputs); i++ {
		prev := encode(outputs[i-1])
		cur := encode(outputs[i])
		if bytes.Compare(prev, cur) > 0 {
			t.Fatalf(
				"outputs not sorted at index %d\n     got: %x\n  before: %x",
				i,
				cur,
				prev,
			)
		}
	}
}

func TestInitialStateOrderIndependent(t *testing.T) {
	outputs := testInitialStateOutputs()
	reversed := slices.Clone(outputs)
	slices.Reverse(reversed)
	rotated := append(slices.Clone(outputs[2:]), outputs[:2]...)
	expected := encode(avm.NewInitialState(avm.FxIdSECP256k1, outputs))
	for _, variant := range [][]avm.TransactionOutput{reversed, rotated} {
		state := avm.NewInitialState(avm.FxIdSECP256k1, variant)
		assert.Equal(t, expected, encode(state))
		assertSortedByEncoding(t, state.Outputs())
	}
}

func TestInitialStateTagBytesOrdering(t *testing.T) {
	owner := []common.Address{testAddress(test.AddressHashHex)}
	// Both encodings start with 0x000000 and differ in the last tag byte, so the
	// transfer output (0x07) must sort after the mint output (0x06) even though it
	// is declared first
	transfer := avm.NewSECP256k1TransferOutput(0, 0, 1, owner)
	mint := avm.NewSECP256k1MintOutput(0, 1, owner)
	state := avm.NewInitialState(
		avm.FxIdSECP256k1,
		[]avm.TransactionOutput{transfer, mint},
	)
	outputs := state.Outputs()
	require.Len(t, outputs, 2)
	assert.Equal(t, uint32(avm.OutputTypeSECP256k1Mint), outputs[0].TypeID())
	assert.Equal(t, uint32(avm.OutputTypeSECP256k1Transfer), outputs[1].TypeID())
	// NFT mint (0x0a) and NFT transfer (0x0b) with the same group id
	nftTransfer := avm.NewNFTTransferOutput(7, nil, 0, 1, owner)
	nftMint := avm.NewNFTMintOutput(7, 0, 1, owner)
	state = avm.NewInitialState(
		avm.FxIdNFT,
		[]avm.TransactionOutput{nftTransfer, nftMint},
	)
	outputs = state.Outputs()
	assert.Equal(t, uint32(avm.OutputTypeNFTMint), outputs[0].TypeID())
	assert.Equal(t, uint32(avm.OutputTypeNFTTransfer), outputs[1].TypeID())
}

func TestInitialStateMutationKeepsOrder(t *testing.T) {
	outputs := testInitialStateOutputs()
	state := avm.NewInitialState(avm.FxIdSECP256k1, outputs[:2])
	for _, output := range outputs[2:] {
		state.AddOutput(output)
		assertSortedByEncoding(t, state.Outputs())
	}
	assert.Equal(
		t,
		encode(avm.NewInitialState(avm.FxIdSECP256k1, outputs)),
		encode(state),
	)
	reversed := slices.Clone(outputs)
	slices.Reverse(reversed)
	state.SetOutputs(reversed)
	assertSortedByEncoding(t, state.Outputs())
}

func TestInitialStateClone(t *testing.T) {
	state := avm.NewInitialState(avm.FxIdSECP256k1, testInitialStateOutputs())
	clone := state.Clone()
	assert.Equal(t, encode(state), encode(clone))
	clone.AddOutput(
		avm.NewSECP256k1MintOutput(
			99,
			1,
			[]common.Address{testAddress(test.AddressHashHex)},
		),
	)
	assert.Len(t, state.Outputs(), 5)
	assert.Len(t, clone.Outputs(), 6)
	assertSortedByEncoding(t, clone.Outputs())
}

func TestInitialStateEncode(t *testing.T) {
	owner := []common.Address{testAddress(test.AddressHashHex)}
	state := avm.NewInitialState(
		avm.FxIdSECP256k1,
		[]avm.TransactionOutput{
			avm.NewSECP256k1TransferOutput(1, 0, 1, owner),
		},
	)
	expected := test.DecodeHexString(`
		00000000
		00000001
		00000007
		0000000000000001
		0000000000000000
		00000001
		00000001
		` + test.AddressHashHex)
	assert.Equal(t, expected, encode(state))
}
