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

// Package signer builds credentials for X-chain transactions and returns the signed bytes.
//
// Signing either produces a complete signed transaction or nothing. A request with an
// unsupported variant, an unusable key or an out of range signer index yields an empty
// result, and the reason is logged at debug level.
package signer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/goavalanche/assembler"
	"github.com/blinklabs-io/goavalanche/crypto/secp256k1"
	"github.com/blinklabs-io/goavalanche/description"
	"github.com/blinklabs-io/goavalanche/ledger/avm"
	"github.com/blinklabs-io/goavalanche/ledger/common"
)

// Signer is stateless apart from its configuration and is safe for concurrent use
type Signer struct {
	logger *slog.Logger
}

func New(options ...SignerOptionFunc) *Signer {
	s := &Signer{}
	for _, option := range options {
		option(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Sign converts the request's keys, assembles the described transaction and signs it.
// The output's Encoded field is empty if any step fails.
func (s *Signer) Sign(input *description.SigningInput) *description.SigningOutput {
	ret := &description.SigningOutput{}
	if input == nil {
		return ret
	}
	keys, err := PrivateKeys(input.PrivateKeys)
	if err != nil {
		s.logger.Debug(
			"failed to load private keys",
			"error", err,
		)
		return ret
	}
	tx, err := assembler.Transaction(input.InputTx)
	if err != nil {
		s.logger.Debug(
			"failed to assemble transaction",
			"kind", input.InputTx.Kind().String(),
			"error", err,
		)
		return ret
	}
	ret.Encoded = s.SignTransaction(keys, tx)
	return ret
}

// SignTransaction signs tx with the provided keys and returns the signed transaction
// bytes, or nil if the transaction cannot be signed
func (s *Signer) SignTransaction(keys []*secp256k1.PrivateKey, tx avm.UnsignedTx) []byte {
	ret, err := SignTransaction(keys, tx)
	if err != nil {
		attrs := []any{"error", err}
		var indexErr common.SignerIndexError
		if errors.As(err, &indexErr) {
			attrs = append(
				attrs,
				"input", indexErr.Input,
				"signer_index", indexErr.SignerIndex,
			)
		}
		var inputErr common.UnsupportedInputError
		if errors.As(err, &inputErr) {
			attrs = append(attrs, "input", inputErr.Index)
		}
		s.logger.Debug("failed to sign transaction", attrs...)
		return nil
	}
	return ret
}

// SignTransaction signs tx with the provided keys. Each spendable input gets one credential
// holding a signature from every key that controls one of the input's signer addresses.
// Keys that match no signer address are ignored.
func SignTransaction(keys []*secp256k1.PrivateKey, tx avm.UnsignedTx) ([]byte, error) {
	signedTx, err := SignedTransaction(keys, tx)
	if err != nil {
		return nil, err
	}
	return signedTx.Bytes(), nil
}

// SignedTransaction is like SignTransaction but returns the signed transaction itself
func SignedTransaction(keys []*secp256k1.PrivateKey, tx avm.UnsignedTx) (*avm.SignedTx, error) {
	if tx == nil {
		return nil, common.UnsupportedVariantError{Kind: "transaction"}
	}
	credentials, err := Credentials(keys, tx)
	if err != nil {
		return nil, err
	}
	return avm.NewSignedTx(tx, credentials), nil
}

// Credentials builds one SECP256k1 credential per spendable input of tx, in input order
func Credentials(keys []*secp256k1.PrivateKey, tx avm.UnsignedTx) ([]avm.Credential, error) {
	inputs := tx.SpendableInputs()
	secpInputs := make([]avm.SECP256k1TransferInput, len(inputs))
	for inputIdx, input := range inputs {
		secpInput, ok := input.Input.(avm.SECP256k1TransferInput)
		if !ok {
			var typeID uint32
			if input.Input != nil {
				typeID = input.Input.TypeID()
			}
			return nil, common.UnsupportedInputError{
				Index:  inputIdx,
				TypeID: typeID,
			}
		}
		secpInputs[inputIdx] = secpInput
	}
	// Inputs are checked first as an input without a variant cannot be encoded
	digest := avm.UnsignedHash(tx)
	keyAddrs := make([]common.Address, len(keys))
	for idx, key := range keys {
		keyAddrs[idx] = common.NewAddressFromPublicKey(key.PublicKey())
	}
	ret := make([]avm.Credential, 0, len(inputs))
	for inputIdx, input := range inputs {
		secpInput := secpInputs[inputIdx]
		addrs := input.SortedSpendableAddresses()
		var sigs [][]byte
		for _, signerIdx := range secpInput.AddressIndices() {
			if int(signerIdx) >= len(addrs) {
				return nil, common.SignerIndexError{
					Input:        inputIdx,
					SignerIndex:  signerIdx,
					AddressCount: len(addrs),
				}
			}
			target := addrs[signerIdx]
			for keyIdx, key := range keys {
				if !keyAddrs[keyIdx].Equal(target) {
					continue
				}
				sig, err := key.SignHash(digest[:])
				if err != nil {
					return nil, fmt.Errorf("sign input %d: %w", inputIdx, err)
				}
				sigs = append(sigs, sig)
			}
		}
		ret = append(ret, avm.NewSECP256k1Credential(sigs))
	}
	return ret, nil
}

// PrivateKeys parses raw 32-byte private keys
func PrivateKeys(data [][]byte) ([]*secp256k1.PrivateKey, error) {
	ret := make([]*secp256k1.PrivateKey, 0, len(data))
	for idx, item := range data {
		key, err := secp256k1.NewPrivateKey(item)
		if err != nil {
			return nil, fmt.Errorf("private key %d: %w", idx, err)
		}
		ret = append(ret, key)
	}
	return ret, nil
}
