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

// TransactionOutput is implemented by the four output variants. Encode writes the type
// id followed by the body; EncodeBody writes the body alone, which is how outputs
// appear when embedded in an operation.
type TransactionOutput interface {
	common.Encoder
	TypeID() uint32
	EncodeBody(p *codec.Packer)
	Owners() OutputOwners
	isTransactionOutput()
}

// OutputOwners is the locktime, threshold and address set shared by every output
type OutputOwners struct {
	Locktime  uint64
	Threshold uint32
	Addresses []common.Address
}

// NewOutputOwners returns an OutputOwners with its addresses sorted by key hash
func NewOutputOwners(
	locktime uint64,
	threshold uint32,
	addresses []common.Address,
) OutputOwners {
	addrs := slices.Clone(addresses)
	slices.SortStableFunc(addrs, common.Address.Compare)
	return OutputOwners{
		Locktime:  locktime,
		Threshold: threshold,
		Addresses: addrs,
	}
}

func (o OutputOwners) Owners() OutputOwners {
	return o
}

func (o OutputOwners) encodeOwners(p *codec.Packer) {
	p.PackLong(o.Locktime)
	p.PackInt(o.Threshold)
	p.PackInt(uint32(len(o.Addresses))) // #nosec G115
	for _, addr := range o.Addresses {
		p.PackFixedBytes(addr.Bytes())
	}
}

type SECP256k1TransferOutput struct {
	Amount uint64
	OutputOwners
}

func NewSECP256k1TransferOutput(
	amount uint64,
	locktime uint64,
	threshold uint32,
	addresses []common.Address,
) SECP256k1TransferOutput {
	return SECP256k1TransferOutput{
		Amount:       amount,
		OutputOwners: NewOutputOwners(locktime, threshold, addresses),
	}
}

func (SECP256k1TransferOutput) isTransactionOutput() {}

func (SECP256k1TransferOutput) TypeID() uint32 {
	return OutputTypeSECP256k1Transfer
}

func (o SECP256k1TransferOutput) Encode(p *codec.Packer) {
	p.PackInt(o.TypeID())
	o.EncodeBody(p)
}

func (o SECP256k1TransferOutput) EncodeBody(p *codec.Packer) {
	p.PackLong(o.Amount)
	o.encodeOwners(p)
}

type SECP256k1MintOutput struct {
	OutputOwners
}

func NewSECP256k1MintOutput(
	locktime uint64,
	threshold uint32,
	addresses []common.Address,
) SECP256k1MintOutput {
	return SECP256k1MintOutput{
		OutputOwners: NewOutputOwners(locktime, threshold, addresses),
	}
}

func (SECP256k1MintOutput) isTransactionOutput() {}

func (SECP256k1MintOutput) TypeID() uint32 {
	return OutputTypeSECP256k1Mint
}

func (o SECP256k1MintOutput) Encode(p *codec.Packer) {
	p.PackInt(o.TypeID())
	o.EncodeBody(p)
}

func (o SECP256k1MintOutput) EncodeBody(p *codec.Packer) {
	o.encodeOwners(p)
}

type NFTTransferOutput struct {
	GroupID uint32
	Payload []byte
	OutputOwners
}

func NewNFTTransferOutput(
	groupID uint32,
	payload []byte,
	locktime uint64,
	threshold uint32,
	addresses []common.Address,
) NFTTransferOutput {
	return NFTTransferOutput{
		GroupID:      groupID,
		Payload:      payload,
		OutputOwners: NewOutputOwners(locktime, threshold, addresses),
	}
}

func (NFTTransferOutput) isTransactionOutput() {}

func (NFTTransferOutput) TypeID() uint32 {
	return OutputTypeNFTTransfer
}

func (o NFTTransferOutput) Encode(p *codec.Packer) {
	p.PackInt(o.TypeID())
	o.EncodeBody(p)
}

func (o NFTTransferOutput) EncodeBody(p *codec.Packer) {
	p.PackInt(o.GroupID)
	p.PackBytes(o.Payload)
	o.encodeOwners(p)
}

type NFTMintOutput struct {
	GroupID uint32
	OutputOwners
}

func NewNFTMintOutput(
	groupID uint32,
	locktime uint64,
	threshold uint32,
	addresses []common.Address,
) NFTMintOutput {
	return NFTMintOutput{
		GroupID:      groupID,
		OutputOwners: NewOutputOwners(locktime, threshold, addresses),
	}
}

func (NFTMintOutput) isTransactionOutput() {}

func (NFTMintOutput) TypeID() uint32 {
	return OutputTypeNFTMint
}

func (o NFTMintOutput) Encode(p *codec.Packer) {
	p.PackInt(o.TypeID())
	o.EncodeBody(p)
}

func (o NFTMintOutput) EncodeBody(p *codec.Packer) {
	p.PackInt(o.GroupID)
	o.encodeOwners(p)
}

type TransferableOutput struct {
	AssetID common.ID
	Output  TransactionOutput
}

func (o TransferableOutput) Encode(p *codec.Packer) {
	p.PackFixedBytes(o.AssetID.Bytes())
	o.Output.Encode(p)
}

// SortOutputs orders outputs by their encoded bytes
func SortOutputs(outputs []TransferableOutput) {
	slices.SortStableFunc(outputs, func(a, b TransferableOutput) int {
		return common.CompareEncoded(a, b)
	})
}

func encodeOutputs(p *codec.Packer, outputs []TransferableOutput) {
	p.PackInt(uint32(len(outputs))) // #nosec G115
	for _, output := range outputs {
		output.Encode(p)
	}
}
