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

package common

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/goavalanche/codec"
)

const (
	IDSize      = 32
	ShortIDSize = 20
)

// ID identifies transactions, assets and blockchains
type ID [IDSize]byte

// NewID returns an ID from exactly IDSize bytes
func NewID(data []byte) (ID, error) {
	if len(data) != IDSize {
		return ID{}, fmt.Errorf("invalid ID length: %d", len(data))
	}
	return ID(data), nil
}

func (i ID) String() string {
	return hex.EncodeToString(i[:])
}

func (i ID) Bytes() []byte {
	return i[:]
}

func (i ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

func (i ID) Compare(other ID) int {
	return bytes.Compare(i[:], other[:])
}

// ShortID is the 20-byte hash behind an address
type ShortID [ShortIDSize]byte

// NewShortID returns a ShortID from exactly ShortIDSize bytes
func NewShortID(data []byte) (ShortID, error) {
	if len(data) != ShortIDSize {
		return ShortID{}, fmt.Errorf("invalid short ID length: %d", len(data))
	}
	return ShortID(data), nil
}

func (s ShortID) String() string {
	return hex.EncodeToString(s[:])
}

func (s ShortID) Bytes() []byte {
	return s[:]
}

func (s ShortID) Compare(other ShortID) int {
	return bytes.Compare(s[:], other[:])
}

// Encoder is implemented by every node of the transaction model
type Encoder interface {
	Encode(p *codec.Packer)
}

// EncodeToBytes returns the canonical encoding of e
func EncodeToBytes(e Encoder) []byte {
	p := codec.NewPacker(0)
	e.Encode(p)
	return p.Bytes
}

// CompareEncoded orders two nodes by the lexicographic order of their encodings.
// Type ids are part of the encoding, so they participate in the ordering.
func CompareEncoded(a, b Encoder) int {
	return bytes.Compare(EncodeToBytes(a), EncodeToBytes(b))
}
