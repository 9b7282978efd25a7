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

package description

type InputKind int

const (
	InputKindNotSet InputKind = iota
	InputKindSecpTransfer
)

type OutputKind int

const (
	OutputKindNotSet OutputKind = iota
	OutputKindSecpTransfer
	OutputKindSecpMint
	OutputKindNftTransfer
	OutputKindNftMint
)

type OperationKind int

const (
	OperationKindNotSet OperationKind = iota
	OperationKindSecpMint
	OperationKindNftMint
	OperationKindNftTransfer
)

type TransferableInput struct {
	TxID               []byte           `cbor:"tx_id"                         mapstructure:"tx_id"`
	UTXOIndex          uint32           `cbor:"utxo_index"                    mapstructure:"utxo_index"`
	AssetID            []byte           `cbor:"asset_id"                      mapstructure:"asset_id"`
	SpendableAddresses [][]byte         `cbor:"spendable_addresses,omitempty" mapstructure:"spendable_addresses"`
	Input              TransactionInput `cbor:"input"                         mapstructure:"input"`
}

type TransactionInput struct {
	SecpTransferInput *SecpTransferInput `cbor:"secp_transfer_input,omitempty" mapstructure:"secp_transfer_input"`
}

func (i TransactionInput) Kind() InputKind {
	if i.SecpTransferInput != nil {
		return InputKindSecpTransfer
	}
	return InputKindNotSet
}

type SecpTransferInput struct {
	Amount         uint64   `cbor:"amount"                    mapstructure:"amount"`
	AddressIndices []uint32 `cbor:"address_indices,omitempty" mapstructure:"address_indices"`
}

type TransferableOutput struct {
	AssetID []byte            `cbor:"asset_id" mapstructure:"asset_id"`
	Output  TransactionOutput `cbor:"output"   mapstructure:"output"`
}

type TransactionOutput struct {
	SecpTransferOutput *SecpTransferOutput `cbor:"secp_transfer_output,omitempty" mapstructure:"secp_transfer_output"`
	SecpMintOutput     *SecpMintOutput     `cbor:"secp_mint_output,omitempty"     mapstructure:"secp_mint_output"`
	NftTransferOutput  *NftTransferOutput  `cbor:"nft_transfer_output,omitempty"  mapstructure:"nft_transfer_output"`
	NftMintOutput      *NftMintOutput      `cbor:"nft_mint_output,omitempty"      mapstructure:"nft_mint_output"`
}

// Kind returns the output variant, or OutputKindNotSet unless exactly one variant is set
func (o TransactionOutput) Kind() OutputKind {
	ret := OutputKindNotSet
	count := 0
	if o.SecpTransferOutput != nil {
		ret = OutputKindSecpTransfer
		count++
	}
	if o.SecpMintOutput != nil {
		ret = OutputKindSecpMint
		count++
	}
	if o.NftTransferOutput != nil {
		ret = OutputKindNftTransfer
		count++
	}
	if o.NftMintOutput != nil {
		ret = OutputKindNftMint
		count++
	}
	if count != 1 {
		return OutputKindNotSet
	}
	return ret
}

type SecpTransferOutput struct {
	Amount    uint64   `cbor:"amount"              mapstructure:"amount"`
	Locktime  uint64   `cbor:"locktime"            mapstructure:"locktime"`
	Threshold uint32   `cbor:"threshold"           mapstructure:"threshold"`
	Addresses [][]byte `cbor:"addresses,omitempty" mapstructure:"addresses"`
}

type SecpMintOutput struct {
	Locktime  uint64   `cbor:"locktime"            mapstructure:"locktime"`
	Threshold uint32   `cbor:"threshold"           mapstructure:"threshold"`
	Addresses [][]byte `cbor:"addresses,omitempty" mapstructure:"addresses"`
}

type NftTransferOutput struct {
	GroupID   uint32   `cbor:"group_id"            mapstructure:"group_id"`
	Payload   []byte   `cbor:"payload,omitempty"   mapstructure:"payload"`
	Locktime  uint64   `cbor:"locktime"            mapstructure:"locktime"`
	Threshold uint32   `cbor:"threshold"           mapstructure:"threshold"`
	Addresses [][]byte `cbor:"addresses,omitempty" mapstructure:"addresses"`
}

type NftMintOutput struct {
	GroupID   uint32   `cbor:"group_id"            mapstructure:"group_id"`
	Locktime  uint64   `cbor:"locktime"            mapstructure:"locktime"`
	Threshold uint32   `cbor:"threshold"           mapstructure:"threshold"`
	Addresses [][]byte `cbor:"addresses,omitempty" mapstructure:"addresses"`
}

// OutputOwners is an output without amount or type, as minted by an NFT mint operation
type OutputOwners struct {
	Locktime  uint64   `cbor:"locktime"            mapstructure:"locktime"`
	Threshold uint32   `cbor:"threshold"           mapstructure:"threshold"`
	Addresses [][]byte `cbor:"addresses,omitempty" mapstructure:"addresses"`
}

type UTXOID struct {
	TxID      []byte `cbor:"tx_id"      mapstructure:"tx_id"`
	UTXOIndex uint32 `cbor:"utxo_index" mapstructure:"utxo_index"`
}

type TransferableOp struct {
	AssetID    []byte     `cbor:"asset_id"           mapstructure:"asset_id"`
	UTXOIDs    []UTXOID   `cbor:"utxo_ids,omitempty" mapstructure:"utxo_ids"`
	TransferOp TransferOp `cbor:"transfer_op"        mapstructure:"transfer_op"`
}

type TransferOp struct {
	SecpMintOp    *SecpMintOp    `cbor:"secp_mint_op,omitempty"    mapstructure:"secp_mint_op"`
	NftMintOp     *NftMintOp     `cbor:"nft_mint_op,omitempty"     mapstructure:"nft_mint_op"`
	NftTransferOp *NftTransferOp `cbor:"nft_transfer_op,omitempty" mapstructure:"nft_transfer_op"`
}

// Kind returns the operation variant, or OperationKindNotSet unless exactly one variant is set
func (o TransferOp) Kind() OperationKind {
	ret := OperationKindNotSet
	count := 0
	if o.SecpMintOp != nil {
		ret = OperationKindSecpMint
		count++
	}
	if o.NftMintOp != nil {
		ret = OperationKindNftMint
		count++
	}
	if o.NftTransferOp != nil {
		ret = OperationKindNftTransfer
		count++
	}
	if count != 1 {
		return OperationKindNotSet
	}
	return ret
}

type SecpMintOp struct {
	AddressIndices []uint32           `cbor:"address_indices,omitempty" mapstructure:"address_indices"`
	MintOutput     SecpMintOutput     `cbor:"mint_output"               mapstructure:"mint_output"`
	TransferOutput SecpTransferOutput `cbor:"transfer_output"           mapstructure:"transfer_output"`
}

type NftMintOp struct {
	AddressIndices []uint32       `cbor:"address_indices,omitempty" mapstructure:"address_indices"`
	GroupID        uint32         `cbor:"group_id"                  mapstructure:"group_id"`
	Payload        []byte         `cbor:"payload,omitempty"         mapstructure:"payload"`
	Outputs        []OutputOwners `cbor:"outputs,omitempty"         mapstructure:"outputs"`
}

type NftTransferOp struct {
	AddressIndices []uint32 `cbor:"address_indices,omitempty" mapstructure:"address_indices"`
	GroupID        uint32   `cbor:"group_id"                  mapstructure:"group_id"`
	Payload        []byte   `cbor:"payload,omitempty"         mapstructure:"payload"`
	Locktime       uint64   `cbor:"locktime"                  mapstructure:"locktime"`
	Threshold      uint32   `cbor:"threshold"                 mapstructure:"threshold"`
	Addresses      [][]byte `cbor:"addresses,omitempty"       mapstructure:"addresses"`
}
