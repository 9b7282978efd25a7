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

package assembler_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/goavalanche/assembler"
	"github.com/blinklabs-io/goavalanche/description"
	"github.com/blinklabs-io/goavalanche/internal/test"
	"github.com/blinklabs-io/goavalanche/ledger/avm"
	"github.com/blinklabs-io/goavalanche/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testID(b byte) []byte {
	return test.RepeatByte(b, common.IDSize)
}

func testAddress(hashHex string) common.Address {
	return common.NewAddressFromHash(common.ShortID(test.DecodeHexString(hashHex)))
}

func secpTransferOutput(amount uint64, addrs ...[]byte) description.TransactionOutput {
	return description.TransactionOutput{
		SecpTransferOutput: &description.SecpTransferOutput{
			Amount:    amount,
			Threshold: 1,
			Addresses: addrs,
		},
	}
}

func secpTransferInput(txID byte, addrs ...[]byte) description.TransferableInput {
	return description.TransferableInput{
		TxID:               testID(txID),
		UTXOIndex:          2,
		AssetID:            testID(0xaa),
		SpendableAddresses: addrs,
		Input: description.TransactionInput{
			SecpTransferInput: &description.SecpTransferInput{
				Amount:         2000,
				AddressIndices: []uint32{0},
			},
		},
	}
}

func testBaseTxDescription() description.BaseTx {
	return description.BaseTx{
		TypeID:       avm.TxTypeBase,
		NetworkID:    1,
		BlockchainID: testID(0xbb),
		Outputs: []description.TransferableOutput{
			{
				AssetID: testID(0xaa),
				Output:  secpTransferOutput(1000, test.DecodeHexString(test.PublicKeyHex)),
			},
		},
		Inputs: []description.TransferableInput{
			secpTransferInput(0x11, test.DecodeHexString(test.PublicKeyHex)),
		},
		Memo: []byte{0x01, 0x02, 0x03},
	}
}

func assertUnsupported(t *testing.T, err error, kind string, index int) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedVariant)
	var variantErr common.UnsupportedVariantError
	require.True(t, errors.As(err, &variantErr), "error is not an UnsupportedVariantError: %s", err)
	assert.Equal(t, kind, variantErr.Kind)
	assert.Equal(t, index, variantErr.Index)
}

func TestAddress(t *testing.T) {
	testDefs := []struct {
		name        string
		data        []byte
		expected    string
		expectError bool
	}{
		{
			name:     "raw hash",
			data:     test.DecodeHexString(test.OtherAddressHashHex),
			expected: test.OtherAddressHashHex,
		},
		{
			name:     "compressed public key",
			data:     test.DecodeHexString(test.PublicKeyHex),
			expected: test.AddressHashHex,
		},
		{
			name:     "uncompressed public key",
			data:     test.DecodeHexString(test.UncompressedPublicKeyHex),
			expected: test.AddressHashHex,
		},
		{
			name:        "bad length",
			data:        test.RepeatByte(0x01, 10),
			expectError: true,
		},
		{
			name:        "bad public key prefix",
			data:        append([]byte{0x05}, test.RepeatByte(0x01, 32)...),
			expectError: true,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			addr, err := assembler.Address(testDef.data)
			if testDef.expectError {
				assert.ErrorIs(t, err, common.ErrUnsupportedVariant)
				return
			}
			require.NoError(t, err)
			if addr.Hash().String() != testDef.expected {
				t.Fatalf(
					"did not get expected address hash: got %s, wanted %s",
					addr.Hash().String(),
					testDef.expected,
				)
			}
		})
	}
}

func TestBaseTxMatchesModel(t *testing.T) {
	tx, err := assembler.BaseTx(testBaseTxDescription())
	require.NoError(t, err)
	owner := testAddress(test.AddressHashHex)
	expected := avm.BaseTx{
		TypeID:       avm.TxTypeBase,
		NetworkID:    1,
		BlockchainID: common.ID(testID(0xbb)),
		Outputs: []avm.TransferableOutput{
			{
				AssetID: common.ID(testID(0xaa)),
				Output: avm.NewSECP256k1TransferOutput(
					1000,
					0,
					1,
					[]common.Address{owner},
				),
			},
		},
		Inputs: []avm.TransferableInput{
			{
				TxID:      common.ID(testID(0x11)),
				UTXOIndex: 2,
				AssetID:   common.ID(testID(0xaa)),
				Input: avm.SECP256k1TransferInput{
					Amount:  2000,
					Indices: []uint32{0},
				},
				SpendableAddresses: []common.Address{owner},
			},
		},
		Memo: []byte{0x01, 0x02, 0x03},
	}
	assert.Equal(t, common.EncodeToBytes(&expected), common.EncodeToBytes(&tx))
	require.Len(t, tx.Inputs, 1)
	assert.True(t, tx.Inputs[0].SpendableAddresses[0].Equal(owner))
}

func TestInputsUnsetVariantDiscardsList(t *testing.T) {
	inputs := []description.TransferableInput{
		secpTransferInput(0x11, test.DecodeHexString(test.PublicKeyHex)),
		{
			TxID:    testID(0x22),
			AssetID: testID(0xaa),
		},
	}
	ret, err := assembler.Inputs(inputs)
	assert.Nil(t, ret)
	assertUnsupported(t, err, "input", 1)
}

func TestInputsInvalidFields(t *testing.T) {
	badTxID := secpTransferInput(0x11)
	badTxID.TxID = testID(0x11)[:31]
	ret, err := assembler.Inputs([]description.TransferableInput{badTxID})
	assert.Nil(t, ret)
	assertUnsupported(t, err, "input tx id", 0)

	badAddress := secpTransferInput(0x11, []byte{0x01, 0x02})
	ret, err = assembler.Inputs([]description.TransferableInput{badAddress})
	assert.Nil(t, ret)
	assert.ErrorIs(t, err, common.ErrUnsupportedVariant)
}

func TestOutputsUnknownVariantDiscardsList(t *testing.T) {
	outputs := []description.TransferableOutput{
		{
			AssetID: testID(0xaa),
			Output:  secpTransferOutput(1, test.DecodeHexString(test.AddressHashHex)),
		},
		{
			AssetID: testID(0xaa),
			// Two variants at once are not a valid choice
			Output: description.TransactionOutput{
				SecpMintOutput: &description.SecpMintOutput{},
				NftMintOutput:  &description.NftMintOutput{},
			},
		},
	}
	ret, err := assembler.Outputs(outputs)
	assert.Nil(t, ret)
	assertUnsupported(t, err, "output", 1)
}

func TestOutputVariants(t *testing.T) {
	addrs := [][]byte{
		test.DecodeHexString(test.OtherAddressHashHex),
		test.DecodeHexString(test.AddressHashHex),
	}
	testDefs := []struct {
		output description.TransactionOutput
		typeID uint32
	}{
		{
			output: secpTransferOutput(5, addrs...),
			typeID: avm.OutputTypeSECP256k1Transfer,
		},
		{
			output: description.TransactionOutput{
				SecpMintOutput: &description.SecpMintOutput{Threshold: 1, Addresses: addrs},
			},
			typeID: avm.OutputTypeSECP256k1Mint,
		},
		{
			output: description.TransactionOutput{
				NftTransferOutput: &description.NftTransferOutput{
					GroupID:   3,
					Payload:   []byte("nft"),
					Threshold: 1,
					Addresses: addrs,
				},
			},
			typeID: avm.OutputTypeNFTTransfer,
		},
		{
			output: description.TransactionOutput{
				NftMintOutput: &description.NftMintOutput{GroupID: 3, Threshold: 1, Addresses: addrs},
			},
			typeID: avm.OutputTypeNFTMint,
		},
	}
	for _, testDef := range testDefs {
		out, err := assembler.Output(testDef.output)
		require.NoError(t, err)
		if out.TypeID() != testDef.typeID {
			t.Fatalf(
				"did not get expected output type: got %d, wanted %d",
				out.TypeID(),
				testDef.typeID,
			)
		}
		// Owner addresses come out sorted
		owners := out.Owners()
		require.Len(t, owners.Addresses, 2)
		assert.Equal(t, test.AddressHashHex, owners.Addresses[0].Hash().String())
	}
	_, err := assembler.Output(description.TransactionOutput{})
	assertUnsupported(t, err, "output", 0)
}

func TestInitialStates(t *testing.T) {
	addr := test.DecodeHexString(test.AddressHashHex)
	states := []description.InitialState{
		{
			FxID: avm.FxIdSECP256k1,
			Outputs: []description.TransactionOutput{
				secpTransferOutput(10, addr),
				{SecpMintOutput: &description.SecpMintOutput{Threshold: 1, Addresses: [][]byte{addr}}},
			},
		},
		{
			FxID: avm.FxIdNFT,
			Outputs: []description.TransactionOutput{
				{NftMintOutput: &description.NftMintOutput{Threshold: 1, Addresses: [][]byte{addr}}},
			},
		},
	}
	ret, err := assembler.InitialStates(states)
	require.NoError(t, err)
	require.Len(t, ret, 2)
	assert.Equal(t, uint32(avm.FxIdSECP256k1), ret[0].FxID)
	assert.Equal(t, uint32(avm.FxIdNFT), ret[1].FxID)
	outputs := ret[0].Outputs()
	require.Len(t, outputs, 2)
	assert.Equal(t, uint32(avm.OutputTypeSECP256k1Mint), outputs[0].TypeID())
	assert.Equal(t, uint32(avm.OutputTypeSECP256k1Transfer), outputs[1].TypeID())

	states[1].FxID = 7
	ret, err = assembler.InitialStates(states)
	assert.Nil(t, ret)
	assertUnsupported(t, err, "fx", 1)

	states[1].FxID = avm.FxIdNFT
	states[1].Outputs = append(states[1].Outputs, description.TransactionOutput{})
	ret, err = assembler.InitialStates(states)
	assert.Nil(t, ret)
	assertUnsupported(t, err, "output", 1)
}

func TestOperations(t *testing.T) {
	addr := test.DecodeHexString(test.AddressHashHex)
	utxoIDs := []description.UTXOID{{TxID: testID(0x33), UTXOIndex: 1}}
	ops := []description.TransferableOp{
		{
			AssetID: testID(0xaa),
			UTXOIDs: utxoIDs,
			TransferOp: description.TransferOp{
				SecpMintOp: &description.SecpMintOp{
					AddressIndices: []uint32{0},
					MintOutput:     description.SecpMintOutput{Threshold: 1, Addresses: [][]byte{addr}},
					TransferOutput: description.SecpTransferOutput{
						Amount:    50,
						Threshold: 1,
						Addresses: [][]byte{addr},
					},
				},
			},
		},
		{
			AssetID: testID(0xaa),
			UTXOIDs: utxoIDs,
			TransferOp: description.TransferOp{
				NftMintOp: &description.NftMintOp{
					AddressIndices: []uint32{0},
					GroupID:        1,
					Payload:        []byte{0xca, 0xfe},
					Outputs: []description.OutputOwners{
						{Threshold: 1, Addresses: [][]byte{addr}},
					},
				},
			},
		},
		{
			AssetID: testID(0xaa),
			UTXOIDs: utxoIDs,
			TransferOp: description.TransferOp{
				NftTransferOp: &description.NftTransferOp{
					AddressIndices: []uint32{0},
					GroupID:        1,
					Threshold:      1,
					Addresses:      [][]byte{addr},
				},
			},
		},
	}
	ret, err := assembler.Operations(ops)
	require.NoError(t, err)
	require.Len(t, ret, 3)
	assert.Equal(t, uint32(avm.OperationTypeSECP256k1Mint), ret[0].Operation.TypeID())
	assert.Equal(t, uint32(avm.OperationTypeNFTMint), ret[1].Operation.TypeID())
	assert.Equal(t, uint32(avm.OperationTypeNFTTransfer), ret[2].Operation.TypeID())
	assert.Equal(t, common.ID(testID(0x33)), ret[0].UTXOIDs[0].TxID)
	assert.Equal(t, uint32(1), ret[0].UTXOIDs[0].OutputIndex)

	ops = append(ops, description.TransferableOp{AssetID: testID(0xaa)})
	ret, err = assembler.Operations(ops)
	assert.Nil(t, ret)
	assertUnsupported(t, err, "operation", 3)
}

func TestCreateAssetTxDenomination(t *testing.T) {
	desc := description.CreateAssetTx{
		BaseTx:       testBaseTxDescription(),
		Name:         "Test",
		Symbol:       "TST",
		Denomination: 9,
	}
	tx, err := assembler.CreateAssetTx(desc)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), tx.Denomination)

	desc.Denomination = 256
	tx, err = assembler.CreateAssetTx(desc)
	assert.Nil(t, tx)
	assertUnsupported(t, err, "denomination", 0)
}

func TestTransactionDispatch(t *testing.T) {
	base := testBaseTxDescription()
	importedInput := secpTransferInput(0x44, test.DecodeHexString(test.PublicKeyHex))
	testDefs := []struct {
		name     string
		desc     description.UnsignedTx
		expected any
	}{
		{
			name:     "base",
			desc:     description.UnsignedTx{BaseTx: &base},
			expected: &avm.BaseTx{},
		},
		{
			name: "create asset",
			desc: description.UnsignedTx{
				CreateAssetTx: &description.CreateAssetTx{BaseTx: base, Name: "A", Symbol: "A"},
			},
			expected: &avm.CreateAssetTx{},
		},
		{
			name: "export",
			desc: description.UnsignedTx{
				ExportTx: &description.ExportTx{BaseTx: base, DestinationChain: testID(0xcc)},
			},
			expected: &avm.ExportTx{},
		},
		{
			name: "import",
			desc: description.UnsignedTx{
				ImportTx: &description.ImportTx{
					BaseTx:      base,
					SourceChain: testID(0xdd),
					Ins:         []description.TransferableInput{importedInput},
				},
			},
			expected: &avm.ImportTx{},
		},
		{
			name:     "operation",
			desc:     description.UnsignedTx{OperationTx: &description.OperationTx{BaseTx: base}},
			expected: &avm.OperationTx{},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			tx, err := assembler.Transaction(testDef.desc)
			require.NoError(t, err)
			assert.IsType(t, testDef.expected, tx)
			assert.Equal(t, uint32(1), tx.Base().NetworkID)
		})
	}
}

func TestTransactionFailures(t *testing.T) {
	tx, err := assembler.Transaction(description.UnsignedTx{})
	assert.Nil(t, tx)
	assertUnsupported(t, err, "transaction", 0)

	// A failure below the dispatcher must not produce a typed nil transaction
	tx, err = assembler.Transaction(
		description.UnsignedTx{
			ExportTx: &description.ExportTx{
				BaseTx:           testBaseTxDescription(),
				DestinationChain: []byte{0x01},
			},
		},
	)
	assert.True(t, tx == nil)
	assertUnsupported(t, err, "destination chain", 0)
}
