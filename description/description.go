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

// Package description holds the externally supplied description of a transaction to sign.
//
// Variant families (transaction kind, input, output, operation) are modeled as structs
// with one pointer per variant, of which exactly one must be set. Addresses are given as
// public keys (33 or 65 bytes) or as raw 20-byte key hashes.
package description

import (
	"github.com/blinklabs-io/goavalanche/cbor"
)

type TxKind int

const (
	TxKindNotSet TxKind = iota
	TxKindBase
	TxKindCreateAsset
	TxKindExport
	TxKindImport
	TxKindOperation
)

func (k TxKind) String() string {
	switch k {
	case TxKindBase:
		return "base"
	case TxKindCreateAsset:
		return "create-asset"
	case TxKindExport:
		return "export"
	case TxKindImport:
		return "import"
	case TxKindOperation:
		return "operation"
	default:
		return "not-set"
	}
}

// SigningInput is a request to sign one transaction
type SigningInput struct {
	cbor.DecodeStoreCbor
	PrivateKeys [][]byte   `cbor:"private_keys,omitempty" mapstructure:"private_keys"`
	InputTx     UnsignedTx `cbor:"input_tx"               mapstructure:"input_tx"`
}

func (s *SigningInput) UnmarshalCBOR(cborData []byte) error {
	return s.UnmarshalCborGeneric(cborData, s)
}

// SigningOutput carries the signed transaction bytes, which are empty when signing failed
type SigningOutput struct {
	Encoded []byte `cbor:"encoded" mapstructure:"encoded"`
}

type UnsignedTx struct {
	BaseTx        *BaseTx        `cbor:"base_tx,omitempty"         mapstructure:"base_tx"`
	CreateAssetTx *CreateAssetTx `cbor:"create_asset_tx,omitempty" mapstructure:"create_asset_tx"`
	ExportTx      *ExportTx      `cbor:"export_tx,omitempty"       mapstructure:"export_tx"`
	ImportTx      *ImportTx      `cbor:"import_tx,omitempty"       mapstructure:"import_tx"`
	OperationTx   *OperationTx   `cbor:"operation_tx,omitempty"    mapstructure:"operation_tx"`
}

// Kind returns the transaction kind, or TxKindNotSet unless exactly one kind is set
func (u UnsignedTx) Kind() TxKind {
	ret := TxKindNotSet
	count := 0
	if u.BaseTx != nil {
		ret = TxKindBase
		count++
	}
	if u.CreateAssetTx != nil {
		ret = TxKindCreateAsset
		count++
	}
	if u.ExportTx != nil {
		ret = TxKindExport
		count++
	}
	if u.ImportTx != nil {
		ret = TxKindImport
		count++
	}
	if u.OperationTx != nil {
		ret = TxKindOperation
		count++
	}
	if count != 1 {
		return TxKindNotSet
	}
	return ret
}

type BaseTx struct {
	TypeID       uint32               `cbor:"typeid"                mapstructure:"typeid"`
	NetworkID    uint32               `cbor:"network_id"            mapstructure:"network_id"`
	BlockchainID []byte               `cbor:"blockchain_id"         mapstructure:"blockchain_id"`
	Outputs      []TransferableOutput `cbor:"outputs,omitempty"     mapstructure:"outputs"`
	Inputs       []TransferableInput  `cbor:"inputs,omitempty"      mapstructure:"inputs"`
	Memo         []byte               `cbor:"memo,omitempty"        mapstructure:"memo"`
}

type CreateAssetTx struct {
	BaseTx        BaseTx         `cbor:"base_tx"                  mapstructure:"base_tx"`
	Name          string         `cbor:"name"                     mapstructure:"name"`
	Symbol        string         `cbor:"symbol"                   mapstructure:"symbol"`
	Denomination  uint32         `cbor:"denomination"             mapstructure:"denomination"`
	InitialStates []InitialState `cbor:"initial_states,omitempty" mapstructure:"initial_states"`
}

type InitialState struct {
	FxID    uint32              `cbor:"fx_id"             mapstructure:"fx_id"`
	Outputs []TransactionOutput `cbor:"outputs,omitempty" mapstructure:"outputs"`
}

type ExportTx struct {
	BaseTx           BaseTx               `cbor:"base_tx"           mapstructure:"base_tx"`
	DestinationChain []byte               `cbor:"destination_chain" mapstructure:"destination_chain"`
	Outs             []TransferableOutput `cbor:"outs,omitempty"    mapstructure:"outs"`
}

type ImportTx struct {
	BaseTx      BaseTx              `cbor:"base_tx"        mapstructure:"base_tx"`
	SourceChain []byte              `cbor:"source_chain"   mapstructure:"source_chain"`
	Ins         []TransferableInput `cbor:"ins,omitempty"  mapstructure:"ins"`
}

type OperationTx struct {
	BaseTx BaseTx           `cbor:"base_tx"        mapstructure:"base_tx"`
	Ops    []TransferableOp `cbor:"ops,omitempty"  mapstructure:"ops"`
}
