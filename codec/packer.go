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

// Package codec provides the big-endian primitive writers used by the AVM wire format
package codec

import (
	"encoding/binary"
)

const (
	// CodecVersion is the codec identifier that prefixes every serialized transaction
	CodecVersion uint16 = 0

	CodecVersionSize = 2
)

// Packer appends fixed-width big-endian values to a byte slice
type Packer struct {
	Bytes []byte
}

// NewPacker returns a Packer with the specified initial capacity
func NewPacker(size int) *Packer {
	return &Packer{
		Bytes: make([]byte, 0, size),
	}
}

func (p *Packer) PackByte(val byte) {
	p.Bytes = append(p.Bytes, val)
}

func (p *Packer) PackShort(val uint16) {
	p.Bytes = binary.BigEndian.AppendUint16(p.Bytes, val)
}

func (p *Packer) PackInt(val uint32) {
	p.Bytes = binary.BigEndian.AppendUint32(p.Bytes, val)
}

func (p *Packer) PackLong(val uint64) {
	p.Bytes = binary.BigEndian.AppendUint64(p.Bytes, val)
}

// PackFixedBytes appends the bytes with no length prefix
func (p *Packer) PackFixedBytes(val []byte) {
	p.Bytes = append(p.Bytes, val...)
}

// PackBytes appends a 4-byte length prefix followed by the bytes
func (p *Packer) PackBytes(val []byte) {
	p.PackInt(uint32(len(val))) // #nosec G115
	p.PackFixedBytes(val)
}

// PackStr appends a 2-byte length prefix followed by the string bytes
func (p *Packer) PackStr(val string) {
	p.PackShort(uint16(len(val))) // #nosec G115
	p.Bytes = append(p.Bytes, val...)
}

// PackCodecVersion appends the codec identifier
func (p *Packer) PackCodecVersion() {
	p.PackShort(CodecVersion)
}
