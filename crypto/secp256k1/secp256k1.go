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

// Package secp256k1 provides the key handling and recoverable signatures used by
// Avalanche credentials
package secp256k1

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"golang.org/x/crypto/ripemd160" // #nosec G507
)

const (
	PrivateKeySize = 32
	SignatureSize  = 65
	HashSize       = 32
	AddressSize    = 20

	// compact signatures from btcec carry 27 + recovery id, plus 4 for compressed keys
	compactSigMagicOffset = 27
	compactSigCompPubKey  = 4
)

var (
	ErrInvalidPrivateKey = errors.New("invalid secp256k1 private key")
	ErrInvalidSignature  = errors.New("invalid secp256k1 signature")
)

type PrivateKey struct {
	key *btcec.PrivateKey
}

// NewPrivateKey returns a PrivateKey from its 32-byte scalar representation
func NewPrivateKey(keyBytes []byte) (*PrivateKey, error) {
	if len(keyBytes) != PrivateKeySize {
		return nil, fmt.Errorf(
			"%w: unexpected length %d",
			ErrInvalidPrivateKey,
			len(keyBytes),
		)
	}
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(keyBytes); overflow {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidPrivateKey)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidPrivateKey)
	}
	key, _ := btcec.PrivKeyFromBytes(keyBytes)
	return &PrivateKey{key: key}, nil
}

func (k *PrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: k.key.PubKey()}
}

// SignHash signs a 32-byte digest and returns the signature as r || s || v,
// where v is the recovery id
func (k *PrivateKey) SignHash(hash []byte) ([]byte, error) {
	if len(hash) != HashSize {
		return nil, fmt.Errorf("invalid hash length: %d", len(hash))
	}
	compact := ecdsa.SignCompact(k.key, hash, true)
	return compactToRecoverable(compact)
}

type PublicKey struct {
	key *btcec.PublicKey
}

// NewPublicKey parses a compressed or uncompressed public key
func NewPublicKey(keyBytes []byte) (*PublicKey, error) {
	key, err := btcec.ParsePubKey(keyBytes)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: key}, nil
}

// RecoverPublicKey recovers the signing key from an r || s || v signature over hash
func RecoverPublicKey(hash []byte, sig []byte) (*PublicKey, error) {
	compact, err := recoverableToCompact(sig)
	if err != nil {
		return nil, err
	}
	key, _, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return &PublicKey{key: key}, nil
}

// Bytes returns the compressed (33-byte) form of the key
func (k *PublicKey) Bytes() []byte {
	return k.key.SerializeCompressed()
}

func (k *PublicKey) Equal(other *PublicKey) bool {
	return k.key.IsEqual(other.key)
}

// AddressHash returns RIPEMD160(SHA256(compressed key)), the 20-byte address hash
func (k *PublicKey) AddressHash() [AddressSize]byte {
	return Hash160(k.Bytes())
}

func Hash160(data []byte) [AddressSize]byte {
	sha := sha256.Sum256(data)
	rip := ripemd160.New() // #nosec G406
	_, _ = rip.Write(sha[:])
	var ret [AddressSize]byte
	copy(ret[:], rip.Sum(nil))
	return ret
}

func compactToRecoverable(compact []byte) ([]byte, error) {
	if len(compact) != SignatureSize {
		return nil, fmt.Errorf(
			"%w: unexpected compact length %d",
			ErrInvalidSignature,
			len(compact),
		)
	}
	recID := compact[0] - compactSigMagicOffset - compactSigCompPubKey
	ret := make([]byte, SignatureSize)
	copy(ret, compact[1:])
	ret[SignatureSize-1] = recID
	return ret, nil
}

func recoverableToCompact(sig []byte) ([]byte, error) {
	if len(sig) != SignatureSize {
		return nil, fmt.Errorf(
			"%w: unexpected length %d",
			ErrInvalidSignature,
			len(sig),
		)
	}
	recID := sig[SignatureSize-1]
	if recID > 3 {
		return nil, fmt.Errorf(
			"%w: recovery id %d out of range",
			ErrInvalidSignature,
			recID,
		)
	}
	ret := make([]byte, SignatureSize)
	ret[0] = compactSigMagicOffset + compactSigCompPubKey + recID
	copy(ret[1:], sig[:SignatureSize-1])
	return ret, nil
}
