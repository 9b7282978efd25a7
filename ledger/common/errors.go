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
	"errors"
	"fmt"
)

var (
	ErrInvalidAddress = errors.New("invalid address")

	// ErrUnsupportedVariant indicates an unset or unknown variant in a transaction description
	ErrUnsupportedVariant = errors.New("unsupported variant")
)

// InvalidAddressError describes why an address string was rejected
type InvalidAddressError struct {
	Address string
	Reason  string
	Err     error
}

func (e InvalidAddressError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"invalid address %q: %s: %v",
			e.Address,
			e.Reason,
			e.Err,
		)
	}
	return fmt.Sprintf("invalid address %q: %s", e.Address, e.Reason)
}

func (e InvalidAddressError) Unwrap() error { return e.Err }

func (InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

// UnsupportedVariantError identifies where in a description an unsupported variant was found
type UnsupportedVariantError struct {
	Kind  string
	Index int
}

func (e UnsupportedVariantError) Error() string {
	return fmt.Sprintf("unsupported %s variant at index %d", e.Kind, e.Index)
}

func (UnsupportedVariantError) Is(target error) bool {
	return target == ErrUnsupportedVariant
}

// UnsupportedInputError indicates an input whose type cannot be signed
type UnsupportedInputError struct {
	Index  int
	TypeID uint32
}

func (e UnsupportedInputError) Error() string {
	return fmt.Sprintf(
		"unsupported input type %d at input %d",
		e.TypeID,
		e.Index,
	)
}

func (UnsupportedInputError) Is(target error) bool {
	return target == ErrUnsupportedVariant
}

// SignerIndexError indicates a signer index outside of an input's spendable addresses
type SignerIndexError struct {
	Input        int
	SignerIndex  uint32
	AddressCount int
}

func (e SignerIndexError) Error() string {
	return fmt.Sprintf(
		"signer index %d out of range for input %d with %d spendable addresses",
		e.SignerIndex,
		e.Input,
		e.AddressCount,
	)
}
