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
	"fmt"
	"slices"

	"github.com/blinklabs-io/goavalanche/codec"
	"github.com/blinklabs-io/goavalanche/ledger/common"
)

type TransactionInput interface {
	common.Encoder
	TypeID() uint32
	AddressIndices() []uint32
	isTransactionInput()
}

type SECP256k1TransferInput struct {
	Amount uint64
	// Indices into the sorted spendable addresses of the enclosing input
	Indices []uint32
}

func (SECP256k1TransferInput) isTransactionInput() {}

func (SECP256k1TransferInput) TypeID() uint32 {
	return InputTypeSECP256k1Transfer
}

func (i SECP256k1TransferInput) AddressIndices() []uint32 {
	return i.Indices
}

func (i SECP256k1TransferInput) Encode(p *codec.Packer) {
	p.PackInt(i.TypeID())
	p.PackLong(i.Amount)
	packIndices(p, i.Indices)
}

// TransferableInput spends one UTXO. SpendableAddresses is not part of the encoding; it
// lists the owners of the consumed UTXO so that signer indices can be resolved.
type TransferableInput struct {
	TxID               common.ID
	UTXOIndex          uint32
	AssetID            common.ID
	Input              TransactionInput
	SpendableAddresses []common.Address
}

func (i TransferableInput) Encode(p *codec.Packer) {
	p.PackFixedBytes(i.TxID.Bytes())
	p.PackInt(i.UTXOIndex)
	p.PackFixedBytes(i.AssetID.Bytes())
	i.Input.Encode(p)
}

// SortedSpendableAddresses returns a copy of the spendable addresses ordered by key hash
func (i TransferableInput) SortedSpendableAddresses() []common.Address {
	ret := slices.Clone(i.SpendableAddresses)
	slices.SortStableFunc(ret, common.Address.Compare)
	return ret
}

func (i TransferableInput) String() string {
	return fmt.Sprintf("%s#%d", i.TxID.String(), i.UTXOIndex)
}

// SortInputs orders inputs by source transaction id and then output index
func SortInputs(inputs []TransferableInput) {
	slices.SortStableFunc(inputs, func(a, b TransferableInput) int {
		if c := a.TxID.Compare(b.TxID); c != 0 {
			return c
		}
		switch {
		case a.UTXOIndex < b.UTXOIndex:
			return -1
		case a.UTXOIndex > b.UTXOIndex:
			return 1
		}
		return 0
	})
}

func encodeInputs(p *codec.Packer, inputs []TransferableInput) {
	p.PackInt(uint32(len(inputs))) // #nosec G115
	for _, input := range inputs {
		input.Encode(p)
	}
}
