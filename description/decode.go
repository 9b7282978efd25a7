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

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/blinklabs-io/goavalanche/cbor"
	"github.com/mitchellh/mapstructure"
)

// NewSigningInputFromCbor decodes a CBOR map into a SigningInput. The original CBOR is
// available from the result's Cbor() method.
func NewSigningInputFromCbor(data []byte) (*SigningInput, error) {
	var ret SigningInput
	if _, err := cbor.Decode(data, &ret); err != nil {
		return nil, fmt.Errorf("decode signing input: %w", err)
	}
	return &ret, nil
}

// NewSigningInputFromMap decodes a generic map, such as the result of unmarshaling JSON,
// into a SigningInput. Byte fields are given as hex strings with an optional 0x prefix.
func NewSigningInputFromMap(data map[string]any) (*SigningInput, error) {
	var ret SigningInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  hexStringToBytesHookFunc,
		ErrorUnused: true,
		Result:      &ret,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode signing input: %w", err)
	}
	return &ret, nil
}

// NewSigningInputFromJSON reads a JSON object and decodes it with NewSigningInputFromMap
func NewSigningInputFromJSON(r io.Reader) (*SigningInput, error) {
	dec := json.NewDecoder(r)
	// Keep full precision for 64-bit amounts
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode signing input: %w", err)
	}
	return NewSigningInputFromMap(data)
}

var bytesType = reflect.TypeOf([]byte(nil))

func hexStringToBytesHookFunc(
	from reflect.Type,
	to reflect.Type,
	data any,
) (any, error) {
	if from.Kind() != reflect.String || to != bytesType {
		return data, nil
	}
	str, _ := data.(string)
	ret, err := hex.DecodeString(strings.TrimPrefix(str, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex string %q: %w", str, err)
	}
	return ret, nil
}
