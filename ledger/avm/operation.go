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

	"github.com/blinklabs-io/goavalanche/codec"
	"github.com/blinklabs-io/goavalanche/ledger/common"
)

type TransferOperation interface {
	common.Encoder
	TypeID() uint32
	AddressIndices() []uint32
	isTransferOperation()
}

// SECP256k1MintOperation consumes a mint output and produces a new mint output along
// with the minted transfer output
type SECP256k1MintOperation struct {
	Indices        []uint32
	MintOutput     SECP256k1MintOutput
	TransferOutput SECP256k1TransferOutput
}

func (SECP256k1MintOperation) isTransferOperation() {}

func (SECP256k1MintOperation) TypeID() uint32 {
	return OperationTypeSECP256k1Mint
}

func (o SECP256k1MintOperation) AddressIndices() []uint32 {
	return o.Indices
}

func (o SECP256k1MintOperation) Encode(p *codec.Packer) {
	p.PackInt(o.TypeID())
	packIndices(p, o.Indices)
	o.MintOutput.EncodeBody(p)
	o.TransferOutput.EncodeBody(p)
}

type NFTMintOperation struct {
	Indices []uint32
	GroupID uint32
	Payload []byte
	Outputs []OutputOwners
}

func (NFTMintOperation) isTransferOperation() {}

func (NFTMintOperation) TypeID() uint32 {
	return OperationTypeNFTMint
}

func (o NFTMintOperation) AddressIndices() []uint32 {
	return o.Indices
}

func (o NFTMintOperation) Encode(p *codec.Packer) {
	p.PackInt(o.TypeID())
	packIndices(p, o.Indices)
	p.PackInt(o.GroupID)
	p.PackBytes(o.Payload)
	p.PackInt(uint32(len(o.Outputs))) // #nosec G115
	for _, owners := range o.Outputs {
		owners.encodeOwners(p)
	}
}

type NFTTransferOperation struct {
	Indices []uint32
	Output  NFTTransferOutput
}

func (NFTTransferOperation) isTransferOperation() {}

func (NFTTransferOperation) TypeID() uint32 {
	return OperationTypeNFTTransfer
}

func (o NFTTransferOperation) AddressIndices() []uint32 {
	return o.Indices
}

func (o NFTTransferOperation) Encode(p *codec.Packer) {
	p.PackInt(o.TypeID())
	packIndices(p, o.Indices)
	o.Output.EncodeBody(p)
}

// UTXOID references an output of a previous transaction
type UTXOID struct {
	TxID        common.ID
	OutputIndex uint32
}

func (u UTXOID) Encode(p *codec.Packer) {
	p.PackFixedBytes(u.TxID.Bytes())
	p.PackInt(u.OutputIndex)
}

func (u UTXOID) String() string {
	return fmt.Sprintf("%s#%d", u.TxID.String(), u.OutputIndex)
}

type TransferableOp struct {
	AssetID   common.ID
	UTXOIDs   []UTXOID
	Operation TransferOperation
}

func (o TransferableOp) Encode(p *codec.Packer) {
	p.PackFixedBytes(o.AssetID.Bytes())
	p.PackInt(uint32(len(o.UTXOIDs))) // #nosec G115
	for _, utxoID := range o.UTXOIDs {
		utxoID.Encode(p)
	}
	o.Operation.Encode(p)
}
