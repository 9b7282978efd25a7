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

package avm

import (
	"slices"

	"github.com/blinklabs-io/goavalanche/codec"
	"github.com/blinklabs-io/goavalanche/ledger/common"
)

type BaseTx struct {
	TypeID       uint32
	NetworkID    uint32
	BlockchainID common.ID
	Inputs       []TransferableInput
	Outputs      []TransferableOutput
	Memo         []byte
}

func (t *BaseTx) Base() *BaseTx {
	return t
}

func (t *BaseTx) SpendableInputs() []TransferableInput {
	return t.Inputs
}

// Encode writes the base transaction fields. Outputs precede inputs on the wire.
func (t *BaseTx) Encode(p *codec.Packer) {
	p.PackInt(t.TypeID)
	p.PackInt(t.NetworkID)
	p.PackFixedBytes(t.BlockchainID.Bytes())
	encodeOutputs(p, t.Outputs)
	encodeInputs(p, t.Inputs)
	p.PackBytes(t.Memo)
}

type CreateAssetTx struct {
	BaseTx
	Name          string
	Symbol        string
	Denomination  uint8
	initialStates []*InitialState
}

// NewCreateAssetTx returns a CreateAssetTx holding copies of the provided initial states,
// ordered by their encoded bytes
func NewCreateAssetTx(
	base BaseTx,
	name string,
	symbol string,
	denomination uint8,
	initialStates []*InitialState,
) *CreateAssetTx {
	t := &CreateAssetTx{
		BaseTx:       base,
		Name:         name,
		Symbol:       symbol,
		Denomination: denomination,
	}
	t.SetInitialStates(initialStates)
	return t
}

func (t *CreateAssetTx) InitialStates() []*InitialState {
	return slices.Clone(t.initialStates)
}

func (t *CreateAssetTx) SetInitialStates(initialStates []*InitialState) {
	t.initialStates = make([]*InitialState, 0, len(initialStates))
	for _, state := range initialStates {
		t.initialStates = append(t.initialStates, state.Clone())
	}
	slices.SortStableFunc(t.initialStates, (*InitialState).Compare)
}

func (t *CreateAssetTx) Encode(p *codec.Packer) {
	t.BaseTx.Encode(p)
	p.PackStr(t.Name)
	p.PackStr(t.Symbol)
	p.PackByte(t.Denomination)
	p.PackInt(uint32(len(t.initialStates))) // #nosec G115
	for _, state := range t.initialStates {
		state.Encode(p)
	}
}

type ExportTx struct {
	BaseTx
	DestinationChain common.ID
	ExportedOutputs  []TransferableOutput
}

func (t *ExportTx) Encode(p *codec.Packer) {
	t.BaseTx.Encode(p)
	p.PackFixedBytes(t.DestinationChain.Bytes())
	encodeOutputs(p, t.ExportedOutputs)
}

type ImportTx struct {
	BaseTx
	SourceChain    common.ID
	ImportedInputs []TransferableInput
}

// SpendableInputs returns the base inputs followed by the imported inputs, which is the
// order credentials are expected in
func (t *ImportTx) SpendableInputs() []TransferableInput {
	ret := make([]TransferableInput, 0, len(t.Inputs)+len(t.ImportedInputs))
	ret = append(ret, t.Inputs...)
	ret = append(ret, t.ImportedInputs...)
	return ret
}

func (t *ImportTx) Encode(p *codec.Packer) {
	t.BaseTx.Encode(p)
	p.PackFixedBytes(t.SourceChain.Bytes())
	encodeInputs(p, t.ImportedInputs)
}

type OperationTx struct {
	BaseTx
	Operations []TransferableOp
}

func (t *OperationTx) Encode(p *codec.Packer) {
	t.BaseTx.Encode(p)
	p.PackInt(uint32(len(t.Operations))) // #nosec G115
	for _, op := range t.Operations {
		op.Encode(p)
	}
}
