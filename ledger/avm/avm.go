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

// Package avm implements the Avalanche X-chain transaction model and its canonical encoding
package avm

import (
	"crypto/sha256"

	"github.com/blinklabs-io/goavalanche/codec"
	"github.com/blinklabs-io/goavalanche/ledger/common"
)

// Transaction type ids
const (
	TxTypeBase        = 0
	TxTypeCreateAsset = 1
	TxTypeOperation   = 2
	TxTypeImport      = 3
	TxTypeExport      = 4
)

// Type ids for inputs, outputs, operations and credentials
const (
	InputTypeSECP256k1Transfer = 5

	OutputTypeSECP256k1Mint     = 6
	OutputTypeSECP256k1Transfer = 7
	OutputTypeNFTMint           = 10
	OutputTypeNFTTransfer       = 11

	OperationTypeSECP256k1Mint = 8
	OperationTypeNFTMint       = 12
	OperationTypeNFTTransfer   = 13

	CredentialTypeSECP256k1 = 9
	CredentialTypeNFT       = 14
)

// Feature extension ids used by initial states
const (
	FxIdSECP256k1 = 0
	FxIdNFT       = 1
)

// UnsignedTx is implemented by BaseTx and each of its specializations
type UnsignedTx interface {
	common.Encoder
	Base() *BaseTx
	// SpendableInputs returns the inputs that need a credential, in credential order
	SpendableInputs() []TransferableInput
}

// UnsignedBytes returns the codec id followed by the encoded transaction. This is the
// message that gets hashed for signing.
func UnsignedBytes(tx UnsignedTx) []byte {
	p := codec.NewPacker(256)
	p.PackCodecVersion()
	tx.Encode(p)
	return p.Bytes
}

// UnsignedHash returns the SHA-256 digest of the unsigned transaction bytes
func UnsignedHash(tx UnsignedTx) [32]byte {
	return sha256.Sum256(UnsignedBytes(tx))
}

func packIndices(p *codec.Packer, indices []uint32) {
	p.PackInt(uint32(len(indices))) // #nosec G115
	for _, idx := range indices {
		p.PackInt(idx)
	}
}
