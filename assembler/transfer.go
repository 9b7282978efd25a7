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

package assembler

import (
	"fmt"

	"github.com/blinklabs-io/goavalanche/description"
	"github.com/blinklabs-io/goavalanche/ledger/avm"
)

// Inputs maps described inputs in their given order
func Inputs(inputs []description.TransferableInput) ([]avm.TransferableInput, error) {
	ret := make([]avm.TransferableInput, 0, len(inputs))
	for idx, input := range inputs {
		if input.Input.Kind() != description.InputKindSecpTransfer {
			return nil, unsupported("input", idx)
		}
		txID, err := id("input tx id", idx, input.TxID)
		if err != nil {
			return nil, err
		}
		assetID, err := id("input asset id", idx, input.AssetID)
		if err != nil {
			return nil, err
		}
		spendable, err := Addresses(input.SpendableAddresses)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", idx, err)
		}
		secpInput := input.Input.SecpTransferInput
		ret = append(
			ret,
			avm.TransferableInput{
				TxID:      txID,
				UTXOIndex: input.UTXOIndex,
				AssetID:   assetID,
				Input: avm.SECP256k1TransferInput{
					Amount:  secpInput.Amount,
					Indices: append([]uint32(nil), secpInput.AddressIndices...),
				},
				SpendableAddresses: spendable,
			},
		)
	}
	return ret, nil
}

// Outputs maps described transferable outputs in their given order
func Outputs(outputs []description.TransferableOutput) ([]avm.TransferableOutput, error) {
	ret := make([]avm.TransferableOutput, 0, len(outputs))
	for idx, output := range outputs {
		assetID, err := id("output asset id", idx, output.AssetID)
		if err != nil {
			return nil, err
		}
		out, err := transactionOutput(output.Output, idx)
		if err != nil {
			return nil, err
		}
		ret = append(
			ret,
			avm.TransferableOutput{
				AssetID: assetID,
				Output:  out,
			},
		)
	}
	return ret, nil
}

// Output maps a single described output to its typed variant
func Output(output description.TransactionOutput) (avm.TransactionOutput, error) {
	return transactionOutput(output, 0)
}

func transactionOutput(
	output description.TransactionOutput,
	idx int,
) (avm.TransactionOutput, error) {
	switch output.Kind() {
	case description.OutputKindSecpTransfer:
		o := output.SecpTransferOutput
		addrs, err := Addresses(o.Addresses)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", idx, err)
		}
		return avm.NewSECP256k1TransferOutput(o.Amount, o.Locktime, o.Threshold, addrs), nil
	case description.OutputKindSecpMint:
		o := output.SecpMintOutput
		addrs, err := Addresses(o.Addresses)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", idx, err)
		}
		return avm.NewSECP256k1MintOutput(o.Locktime, o.Threshold, addrs), nil
	case description.OutputKindNftTransfer:
		o := output.NftTransferOutput
		addrs, err := Addresses(o.Addresses)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", idx, err)
		}
		return avm.NewNFTTransferOutput(
			o.GroupID,
			o.Payload,
			o.Locktime,
			o.Threshold,
			addrs,
		), nil
	case description.OutputKindNftMint:
		o := output.NftMintOutput
		addrs, err := Addresses(o.Addresses)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", idx, err)
		}
		return avm.NewNFTMintOutput(o.GroupID, o.Locktime, o.Threshold, addrs), nil
	default:
		return nil, unsupported("output", idx)
	}
}

// InitialStates maps described initial states. Each state keeps its outputs in canonical order.
func InitialStates(states []description.InitialState) ([]*avm.InitialState, error) {
	ret := make([]*avm.InitialState, 0, len(states))
	for idx, state := range states {
		var fxID uint32
		switch state.FxID {
		case avm.FxIdSECP256k1:
			fxID = avm.FxIdSECP256k1
		case avm.FxIdNFT:
			fxID = avm.FxIdNFT
		default:
			return nil, unsupported("fx", idx)
		}
		outputs := make([]avm.TransactionOutput, 0, len(state.Outputs))
		for outIdx, output := range state.Outputs {
			out, err := transactionOutput(output, outIdx)
			if err != nil {
				return nil, fmt.Errorf("initial state %d: %w", idx, err)
			}
			outputs = append(outputs, out)
		}
		ret = append(ret, avm.NewInitialState(fxID, outputs))
	}
	return ret, nil
}

// Operations maps described operations in their given order
func Operations(ops []description.TransferableOp) ([]avm.TransferableOp, error) {
	ret := make([]avm.TransferableOp, 0, len(ops))
	for idx, op := range ops {
		assetID, err := id("operation asset id", idx, op.AssetID)
		if err != nil {
			return nil, err
		}
		utxoIDs := make([]avm.UTXOID, 0, len(op.UTXOIDs))
		for _, utxoID := range op.UTXOIDs {
			txID, err := id("operation utxo id", idx, utxoID.TxID)
			if err != nil {
				return nil, err
			}
			utxoIDs = append(
				utxoIDs,
				avm.UTXOID{TxID: txID, OutputIndex: utxoID.UTXOIndex},
			)
		}
		transferOp, err := transferOperation(op.TransferOp, idx)
		if err != nil {
			return nil, err
		}
		ret = append(
			ret,
			avm.TransferableOp{
				AssetID:   assetID,
				UTXOIDs:   utxoIDs,
				Operation: transferOp,
			},
		)
	}
	return ret, nil
}

func transferOperation(
	op description.TransferOp,
	idx int,
) (avm.TransferOperation, error) {
	switch op.Kind() {
	case description.OperationKindSecpMint:
		o := op.SecpMintOp
		mintAddrs, err := Addresses(o.MintOutput.Addresses)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", idx, err)
		}
		transferAddrs, err := Addresses(o.TransferOutput.Addresses)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", idx, err)
		}
		return avm.SECP256k1MintOperation{
			Indices: append([]uint32(nil), o.AddressIndices...),
			MintOutput: avm.NewSECP256k1MintOutput(
				o.MintOutput.Locktime,
				o.MintOutput.Threshold,
				mintAddrs,
			),
			TransferOutput: avm.NewSECP256k1TransferOutput(
				o.TransferOutput.Amount,
				o.TransferOutput.Locktime,
				o.TransferOutput.Threshold,
				transferAddrs,
			),
		}, nil
	case description.OperationKindNftMint:
		o := op.NftMintOp
		owners := make([]avm.OutputOwners, 0, len(o.Outputs))
		for _, item := range o.Outputs {
			addrs, err := Addresses(item.Addresses)
			if err != nil {
				return nil, fmt.Errorf("operation %d: %w", idx, err)
			}
			owners = append(
				owners,
				avm.NewOutputOwners(item.Locktime, item.Threshold, addrs),
			)
		}
		return avm.NFTMintOperation{
			Indices: append([]uint32(nil), o.AddressIndices...),
			GroupID: o.GroupID,
			Payload: o.Payload,
			Outputs: owners,
		}, nil
	case description.OperationKindNftTransfer:
		o := op.NftTransferOp
		addrs, err := Addresses(o.Addresses)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", idx, err)
		}
		return avm.NFTTransferOperation{
			Indices: append([]uint32(nil), o.AddressIndices...),
			Output: avm.NewNFTTransferOutput(
				o.GroupID,
				o.Payload,
				o.Locktime,
				o.Threshold,
				addrs,
			),
		}, nil
	default:
		return nil, unsupported("operation", idx)
	}
}
