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
	"fmt"
	"strings"

	"github.com/blinklabs-io/goavalanche/crypto/secp256k1"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	AddressHRP       = "avax"
	AddressSeparator = "-"

	ChainX = "X"
	ChainP = "P"
)

// Address is a chain-prefixed wrapper around a 20-byte key hash. The chain
// letter is only an annotation: equality and ordering use the hash alone.
type Address struct {
	chain string
	hash  ShortID
}

// NewAddress parses an address in "<chain>-<bech32>" form
func NewAddress(addr string) (Address, error) {
	sepIdx := strings.Index(addr, AddressSeparator)
	if sepIdx < 0 {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  "missing chain separator",
		}
	}
	if sepIdx == 0 {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  "empty chain identifier",
		}
	}
	chain := addr[:sepIdx]
	if chain != ChainX && chain != ChainP {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  "unsupported chain identifier " + chain,
		}
	}
	hrp, data, err := bech32.Decode(addr[sepIdx+1:])
	if err != nil {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  "bad bech32 payload",
			Err:     err,
		}
	}
	if hrp != AddressHRP {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  "unexpected human readable part " + hrp,
		}
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  "bad bech32 padding",
			Err:     err,
		}
	}
	hash, err := NewShortID(decoded)
	if err != nil {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  "bad key hash",
			Err:     err,
		}
	}
	return Address{chain: chain, hash: hash}, nil
}

// IsValidAddress reports whether addr can be parsed by NewAddress
func IsValidAddress(addr string) bool {
	_, err := NewAddress(addr)
	return err == nil
}

// NewAddressFromHash returns an X-chain address for the provided key hash
func NewAddressFromHash(hash ShortID) Address {
	return Address{chain: ChainX, hash: hash}
}

// NewAddressFromPublicKey returns the X-chain address controlled by the provided key
func NewAddressFromPublicKey(pub *secp256k1.PublicKey) Address {
	return NewAddressFromHash(ShortID(pub.AddressHash()))
}

func (a Address) Chain() string {
	if a.chain == "" {
		return ChainX
	}
	return a.chain
}

func (a Address) Hash() ShortID {
	return a.hash
}

// Bytes returns the raw key hash
func (a Address) Bytes() []byte {
	return a.hash.Bytes()
}

func (a Address) Equal(other Address) bool {
	return a.hash == other.hash
}

func (a Address) Compare(other Address) int {
	return a.hash.Compare(other.hash)
}

// String returns the address in "<chain>-<bech32>" form
func (a Address) String() string {
	convData, err := bech32.ConvertBits(a.hash[:], 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("unexpected error converting data to base32: %s", err))
	}
	encoded, err := bech32.Encode(AddressHRP, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return a.Chain() + AddressSeparator + encoded
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
