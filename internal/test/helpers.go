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

package test

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Keys and addresses shared by tests across packages
const (
	PrivateKeyHex  = "56289e99c94b6912bfc12adc093c9b51124f0dc54ac7a766b2bc5ccf558d8027"
	PublicKeyHex   = "0327448e78ffa8cdb24cf19be0204ad954b1bdb4db8c51183534c1eecf2ebd094e"
	AddressHashHex = "3cb7d3842e8cee6a0ebd09f1fe884f6861e1b29c"
	Address        = "X-avax18jma8ppw3nhx5r4ap8clazz0dps7rv5ukulre5"

	UncompressedPublicKeyHex = "0427448e78ffa8cdb24cf19be0204ad954b1bdb4db8c51183534c1eecf2ebd094e" +
		"28644a0982c69420f823dafe7a062dc9fd4d894be33d088fb02e63ab61710ccb"

	OtherPrivateKeyHex  = "98cb077f972feb0481f1d894f272c6a1e3c15e272a1658ff716444f465200070"
	OtherPublicKeyHex   = "02b33c917f2f6103448d7feb42614037d05928433cb25e78f01a825aa829bb3c27"
	OtherAddressHashHex = "e8777f38c88ca153a6fdc25942176d2bf5491b89"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline. Any whitespace in the string is ignored, so
// expected encodings can be laid out one field per line.
func DecodeHexString(hexData string) []byte {
	hexData = strings.Join(strings.Fields(hexData), "")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// RepeatByte returns a slice of n copies of b, handy for building fixed-size ids
func RepeatByte(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}
