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

package cbor_test

import (
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/blinklabs-io/goavalanche/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTestDefinition struct {
	CborHex   string
	Object    any
	BytesRead int
}

var decodeTests = []decodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{uint64(1), uint64(2), uint64(3)},
	},
	// Multiple CBOR objects
	{
		CborHex:   "81018102",
		Object:    []any{uint64(1)},
		BytesRead: 2,
	},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		var dest any
		bytesRead, err := cbor.Decode(cborData, &dest)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if test.BytesRead > 0 {
			if bytesRead != test.BytesRead {
				t.Fatalf("expected to read %d bytes, read %d instead", test.BytesRead, bytesRead)
			}
		}
		if !reflect.DeepEqual(dest, test.Object) {
			t.Fatalf("CBOR did not decode to expected object\n  got: %#v\n  wanted: %#v", dest, test.Object)
		}
	}
}

type storedRequest struct {
	cbor.DecodeStoreCbor
	Name   string `cbor:"name"`
	Amount uint64 `cbor:"amount"`
}

func (r *storedRequest) UnmarshalCBOR(cborData []byte) error {
	return r.UnmarshalCborGeneric(cborData, r)
}

func TestDecodeStoreCbor(t *testing.T) {
	// {"name": "a", "amount": 5}
	cborData, err := hex.DecodeString("a2646e616d65616166616d6f756e7405")
	require.NoError(t, err)
	var dest storedRequest
	_, err = cbor.Decode(cborData, &dest)
	require.NoError(t, err)
	assert.Equal(t, "a", dest.Name)
	assert.Equal(t, uint64(5), dest.Amount)
	assert.Equal(t, cborData, dest.Cbor())
	// The stored copy does not alias the input
	cborData[len(cborData)-1] = 0x06
	assert.Equal(t, byte(0x05), dest.Cbor()[len(cborData)-1])
}

func TestDecodeUnknownField(t *testing.T) {
	// {"bogus": 1}
	cborData, err := hex.DecodeString("a165626f67757301")
	require.NoError(t, err)
	var dest storedRequest
	_, err = cbor.Decode(cborData, &dest)
	require.Error(t, err)
}

type notStruct []byte

func (n notStruct) Cbor() []byte {
	return n
}

func TestUnmarshalCborGenericRequiresStructPointer(t *testing.T) {
	var store cbor.DecodeStoreCbor
	err := store.UnmarshalCborGeneric([]byte{0x01}, notStruct(nil))
	require.Error(t, err)
	assert.Nil(t, store.Cbor())
}
