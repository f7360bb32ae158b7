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

package bcs

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Encoder writes BCS primitives to an in-memory buffer
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns a new empty Encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns a copy of the encoded output
func (e *Encoder) Bytes() []byte {
	ret := make([]byte, e.buf.Len())
	copy(ret, e.buf.Bytes())
	return ret
}

// Len returns the number of bytes written so far
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// WriteBool writes a boolean as a single 0x00 or 0x01 byte
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.buf.WriteByte(0x01)
	} else {
		e.buf.WriteByte(0x00)
	}
}

// WriteU8 writes an unsigned 8-bit integer
func (e *Encoder) WriteU8(v uint8) {
	e.buf.WriteByte(v)
}

// WriteU16 writes an unsigned 16-bit integer in little-endian byte order
func (e *Encoder) WriteU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	e.buf.Write(tmp[:])
}

// WriteU32 writes an unsigned 32-bit integer in little-endian byte order
func (e *Encoder) WriteU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	e.buf.Write(tmp[:])
}

// WriteU64 writes an unsigned 64-bit integer in little-endian byte order
func (e *Encoder) WriteU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	e.buf.Write(tmp[:])
}

// WriteUleb128 writes an unsigned integer in ULEB128 form. Values larger than
// the maximum 32-bit unsigned integer are rejected, matching the BCS limit
// for variable-length integers
func (e *Encoder) WriteUleb128(v uint64) error {
	if v > math.MaxUint32 {
		return Uleb128OverflowError{Value: v}
	}
	for v >= 0x80 {
		e.buf.WriteByte(byte(v&0x7f) | 0x80)
		v >>= 7
	}
	e.buf.WriteByte(byte(v))
	return nil
}

// WriteLen writes a sequence length prefix in ULEB128 form
func (e *Encoder) WriteLen(length int) error {
	if length < 0 || length > MaxSequenceLength {
		return SequenceTooLongError{Length: int64(length)}
	}
	return e.WriteUleb128(uint64(length))
}

// WriteFixedBytes writes raw bytes with no length prefix
func (e *Encoder) WriteFixedBytes(data []byte) {
	e.buf.Write(data)
}

// WriteBytes writes a ULEB128 length prefix followed by the raw bytes
func (e *Encoder) WriteBytes(data []byte) error {
	if err := e.WriteLen(len(data)); err != nil {
		return err
	}
	e.buf.Write(data)
	return nil
}

// WriteString writes a UTF-8 string as a length-prefixed byte sequence
func (e *Encoder) WriteString(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUtf8
	}
	return e.WriteBytes([]byte(s))
}
