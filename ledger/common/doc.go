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

// Package common provides the types shared by the AVM transaction model and the signer.
//
// # Key Files by Purpose
//
//   - address.go: Address parsing ("X-avax1...") and derivation from public keys
//   - common.go: ID and ShortID fixed-size types, the Encoder interface and CompareEncoded
//   - errors.go: error types returned or logged by the assembler and signer
//
// # Ordering
//
// Addresses order by their raw 20-byte hash. Model nodes that need a deterministic
// order (InitialState outputs, create-asset initial states) order by CompareEncoded,
// which compares full encodings so that type ids take part in the comparison.
package common
