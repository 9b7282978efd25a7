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
	"math"

	"github.com/blinklabs-io/goavalanche/description"
	"github.com/blinklabs-io/goavalanche/ledger/avm"
)

// BaseTx maps the fields shared by every transaction kind
func BaseTx(desc description.BaseTx) (avm.BaseTx, error) {
	blockchainID, err := id("blockchain id", 0, desc.BlockchainID)
	if err != nil {
		return avm.BaseTx{}, err
	}
	outputs, err := Outputs(desc.Outputs)
	if err != nil {
		return avm.BaseTx{}, err
	}
	inputs, err := Inputs(desc.Inputs)
	if err != nil {
		return avm.BaseTx{}, err
	}
	return avm.BaseTx{
		TypeID:       desc.TypeID,
		NetworkID:    desc.NetworkID,
		BlockchainID: blockchainID,
		Inputs:       inputs,
		Outputs:      outputs,
		Memo:         desc.Memo,
	}, nil
}

func CreateAssetTx(desc description.CreateAssetTx) (*avm.CreateAssetTx, error) {
	base, err := BaseTx(desc.BaseTx)
	if err != nil {
		return nil, err
	}
	if desc.Denomination > math.MaxUint8 {
		return nil, fmt.Errorf(
			"%w: denomination %d",
			unsupported("denomination", 0),
			desc.Denomination,
		)
	}
	states, err := InitialStates(desc.InitialStates)
	if err != nil {
		return nil, err
	}
	return avm.NewCreateAssetTx(
		base,
		desc.Name,
		desc.Symbol,
		uint8(desc.Denomination), // #nosec G115
		states,
	), nil
}

func ExportTx(desc description.ExportTx) (*avm.ExportTx, error) {
	base, err := BaseTx(desc.BaseTx)
	if err != nil {
		return nil, err
	}
	destination, err := id("destination chain", 0, desc.DestinationChain)
	if err != nil {
		return nil, err
	}
	outs, err := Outputs(desc.Outs)
	if err != nil {
		return nil, fmt.Errorf("exported outputs: %w", err)
	}
	return &avm.ExportTx{
		BaseTx:           base,
		DestinationChain: destination,
		ExportedOutputs:  outs,
	}, nil
}

func ImportTx(desc description.ImportTx) (*avm.ImportTx, error) {
	base, err := BaseTx(desc.BaseTx)
	if err != nil {
		return nil, err
	}
	source, err := id("source chain", 0, desc.SourceChain)
	if err != nil {
		return nil, err
	}
	ins, err := Inputs(desc.Ins)
	if err != nil {
		return nil, fmt.Errorf("imported inputs: %w", err)
	}
	return &avm.ImportTx{
		BaseTx:         base,
		SourceChain:    source,
		ImportedInputs: ins,
	}, nil
}

func OperationTx(desc description.OperationTx) (*avm.OperationTx, error) {
	base, err := BaseTx(desc.BaseTx)
	if err != nil {
		return nil, err
	}
	ops, err := Operations(desc.Ops)
	if err != nil {
		return nil, err
	}
	return &avm.OperationTx{
		BaseTx:     base,
		Operations: ops,
	}, nil
}

// Transaction assembles the transaction kind selected in the description
func Transaction(desc description.UnsignedTx) (avm.UnsignedTx, error) {
	switch desc.Kind() {
	case description.TxKindBase:
		base, err := BaseTx(*desc.BaseTx)
		if err != nil {
			return nil, err
		}
		return &base, nil
	case description.TxKindCreateAsset:
		return nonNil(CreateAssetTx(*desc.CreateAssetTx))
	case description.TxKindExport:
		return nonNil(ExportTx(*desc.ExportTx))
	case description.TxKindImport:
		return nonNil(ImportTx(*desc.ImportTx))
	case description.TxKindOperation:
		return nonNil(OperationTx(*desc.OperationTx))
	default:
		return nil, unsupported("transaction", 0)
	}
}

// nonNil returns a nil interface rather than a typed nil pointer when err is set
func nonNil[T avm.UnsignedTx](tx T, err error) (avm.UnsignedTx, error) {
	if err != nil {
		return nil, err
	}
	return tx, nil
}
