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

package signer

import (
	"log/slog"
)

// SignerOptionFunc is a type that represents functions that modify the Signer config
type SignerOptionFunc func(*Signer)

// WithLogger specifies the logger used to report why a request could not be signed
func WithLogger(logger *slog.Logger) SignerOptionFunc {
	return func(s *Signer) {
		s.logger = logger
	}
}
