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
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Decoder reads BCS primitives from a byte slice
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder returns a new Decoder over the provided bytes
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		data: data,
	}
}

// Remaining returns the number of unread bytes
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

// Done returns an error if any unread bytes remain
func (d *Decoder) Done() error {
	if d.Remaining() > 0 {
		return ErrTrailingData
	}
	return nil
}

func (d *Decoder) read(n int) ([]byte, error) {
	if d.Remaining() < n {
		return nil, ErrDataTruncated
	}
	ret := d.data[d.pos : d.pos+n]
	d.pos += n
	return ret, nil
}

// ReadBool reads a boolean. Any byte other than 0x00 or 0x01 is rejected,
// since BCS requires the canonical forms
func (d *Decoder) ReadBool() (bool, error) {
	tmp, err := d.read(1)
	if err != nil {
		return false, err
	}
	switch tmp[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, InvalidBoolError{Value: tmp[0]}
	}
}

// ReadU8 reads an unsigned 8-bit integer
func (d *Decoder) ReadU8() (uint8, error) {
	tmp, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return tmp[0], nil
}

// ReadU16 reads a little-endian unsigned 16-bit integer
func (d *Decoder) ReadU16() (uint16, error) {
	tmp, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(tmp), nil
}

// ReadU32 reads a little-endian unsigned 32-bit integer
func (d *Decoder) ReadU32() (uint32, error) {
	tmp, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(tmp), nil
}

// ReadU64 reads a little-endian unsigned 64-bit integer
func (d *Decoder) ReadU64() (uint64, error) {
	tmp, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(tmp), nil
}

// ReadUleb128 reads a ULEB128-encoded unsigned integer. The encoding must be
// minimal (no redundant trailing groups) and the value must fit in 32 bits
func (d *Decoder) ReadUleb128() (uint64, error) {
	var ret uint64
	var shift uint
	for {
		tmp, err := d.read(1)
		if err != nil {
			return 0, err
		}
		b := tmp[0]
		// A canonical final group is never zero unless it's the only group
		if b == 0 && shift > 0 {
			return 0, ErrNonCanonicalUleb128
		}
		ret |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
		if shift > 31 {
			return 0, Uleb128OverflowError{Value: ret}
		}
	}
	if ret > math.MaxUint32 {
		return 0, Uleb128OverflowError{Value: ret}
	}
	return ret, nil
}

// ReadLen reads a ULEB128 sequence length prefix
func (d *Decoder) ReadLen() (int, error) {
	tmp, err := d.ReadUleb128()
	if err != nil {
		return 0, err
	}
	if tmp > MaxSequenceLength {
		return 0, SequenceTooLongError{Length: int64(tmp)}
	}
	return int(tmp), nil
}

// ReadFixedBytes reads the specified number of raw bytes
func (d *Decoder) ReadFixedBytes(n int) ([]byte, error) {
	tmp, err := d.read(n)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, n)
	copy(ret, tmp)
	return ret, nil
}

// ReadBytes reads a ULEB128 length prefix followed by that many raw bytes
func (d *Decoder) ReadBytes() ([]byte, error) {
	length, err := d.ReadLen()
	if err != nil {
		return nil, err
	}
	return d.ReadFixedBytes(length)
}

// ReadString reads a length-prefixed byte sequence and validates it as UTF-8
func (d *Decoder) ReadString() (string, error) {
	tmp, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(tmp) {
		return "", ErrInvalidUtf8
	}
	return string(tmp), nil
}
