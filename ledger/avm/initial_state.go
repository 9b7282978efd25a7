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

// InitialState is the set of outputs an asset starts with under one feature extension.
// The outputs are always held in the order of their encoded bytes; every path that
// builds or changes the list restores that order.
type InitialState struct {
	FxID    uint32
	outputs []TransactionOutput
}

func NewInitialState(fxID uint32, outputs []TransactionOutput) *InitialState {
	s := &InitialState{FxID: fxID}
	s.SetOutputs(outputs)
	return s
}

// Outputs returns a copy of the sorted outputs
func (s *InitialState) Outputs() []TransactionOutput {
	return slices.Clone(s.outputs)
}

func (s *InitialState) SetOutputs(outputs []TransactionOutput) {
	s.outputs = slices.Clone(outputs)
	s.sortOutputs()
}

func (s *InitialState) AddOutput(output TransactionOutput) {
	s.outputs = append(s.outputs, output)
	s.sortOutputs()
}

// Clone returns an independent copy of the initial state
func (s *InitialState) Clone() *InitialState {
	return NewInitialState(s.FxID, s.outputs)
}

func (s *InitialState) Encode(p *codec.Packer) {
	p.PackInt(s.FxID)
	p.PackInt(uint32(len(s.outputs))) // #nosec G115
	for _, output := range s.outputs {
		output.Encode(p)
	}
}

func (s *InitialState) Compare(other *InitialState) int {
	return common.CompareEncoded(s, other)
}

func (s *InitialState) sortOutputs() {
	slices.SortStableFunc(s.outputs, func(a, b TransactionOutput) int {
		return common.CompareEncoded(a, b)
	})
}
