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
	"crypto/sha256"

	"github.com/blinklabs-io/goavalanche/codec"
	"github.com/blinklabs-io/goavalanche/ledger/common"
)

// Credential holds the signatures for one input. Signatures are fixed-size and are
// written without a length prefix.
type Credential struct {
	TypeID     uint32
	Signatures [][]byte
}

func NewSECP256k1Credential(sigs [][]byte) Credential {
	return Credential{
		TypeID:     CredentialTypeSECP256k1,
		Signatures: sigs,
	}
}

func NewNFTCredential(sigs [][]byte) Credential {
	return Credential{
		TypeID:     CredentialTypeNFT,
		Signatures: sigs,
	}
}

func (c Credential) Encode(p *codec.Packer) {
	p.PackInt(c.TypeID)
	p.PackInt(uint32(len(c.Signatures))) // #nosec G115
	for _, sig := range c.Signatures {
		p.PackFixedBytes(sig)
	}
}

// SignedTx is an unsigned transaction plus one credential per spendable input
type SignedTx struct {
	Unsigned    UnsignedTx
	Credentials []Credential
}

func NewSignedTx(unsigned UnsignedTx, credentials []Credential) *SignedTx {
	return &SignedTx{
		Unsigned:    unsigned,
		Credentials: credentials,
	}
}

func (t *SignedTx) Encode(p *codec.Packer) {
	t.Unsigned.Encode(p)
	p.PackInt(uint32(len(t.Credentials))) // #nosec G115
	for _, cred := range t.Credentials {
		cred.Encode(p)
	}
}

// Bytes returns the codec id followed by the signed transaction
func (t *SignedTx) Bytes() []byte {
	p := codec.NewPacker(512)
	p.PackCodecVersion()
	t.Encode(p)
	return p.Bytes
}

// ID returns the transaction id, which is the SHA-256 hash of the signed bytes
func (t *SignedTx) ID() common.ID {
	return common.ID(sha256.Sum256(t.Bytes()))
}
