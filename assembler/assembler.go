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

// Package assembler maps a transaction description onto the typed X-chain model.
//
// Every function is pure. A list containing an unset or unknown variant, a malformed id
// or an unusable address is discarded as a whole: the result is nil and the returned
// error wraps common.ErrUnsupportedVariant.
package assembler

import (
	"fmt"

	"github.com/blinklabs-io/goavalanche/crypto/secp256k1"
	"github.com/blinklabs-io/goavalanche/ledger/common"
)

// Public key lengths accepted in address fields
const (
	compressedPublicKeySize   = 33
	uncompressedPublicKeySize = 65
)

func unsupported(kind string, index int) error {
	return common.UnsupportedVariantError{Kind: kind, Index: index}
}

func id(kind string, index int, data []byte) (common.ID, error) {
	ret, err := common.NewID(data)
	if err != nil {
		return common.ID{}, fmt.Errorf("%w: %w", unsupported(kind, index), err)
	}
	return ret, nil
}

// Address converts a public key (33 or 65 bytes) or a raw 20-byte key hash into an address
func Address(data []byte) (common.Address, error) {
	switch len(data) {
	case common.ShortIDSize:
		return common.NewAddressFromHash(common.ShortID(data)), nil
	case compressedPublicKeySize, uncompressedPublicKeySize:
		pub, err := secp256k1.NewPublicKey(data)
		if err != nil {
			return common.Address{}, fmt.Errorf(
				"%w: %w",
				unsupported("address", 0),
				err,
			)
		}
		return common.NewAddressFromPublicKey(pub), nil
	default:
		return common.Address{}, fmt.Errorf(
			"%w: length %d",
			unsupported("address", 0),
			len(data),
		)
	}
}

// Addresses converts each entry with Address
func Addresses(data [][]byte) ([]common.Address, error) {
	ret := make([]common.Address, 0, len(data))
	for idx, item := range data {
		addr, err := Address(item)
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", idx, err)
		}
		ret = append(ret, addr)
	}
	return ret, nil
}
