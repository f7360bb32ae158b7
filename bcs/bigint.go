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

	"github.com/holiman/uint256"
)

// WriteU128 writes an unsigned 128-bit integer as 16 little-endian bytes.
// Values that don't fit in 128 bits are rejected
func (e *Encoder) WriteU128(v *uint256.Int) error {
	if v[2] != 0 || v[3] != 0 {
		return IntegerWidthError{Value: v.String(), Bits: 128}
	}
	var tmp [16]byte
	binary.LittleEndian.PutUint64(tmp[0:8], v[0])
	binary.LittleEndian.PutUint64(tmp[8:16], v[1])
	e.buf.Write(tmp[:])
	return nil
}

// WriteU256 writes an unsigned 256-bit integer as 32 little-endian bytes
func (e *Encoder) WriteU256(v *uint256.Int) {
	var tmp [32]byte
	binary.LittleEndian.PutUint64(tmp[0:8], v[0])
	binary.LittleEndian.PutUint64(tmp[8:16], v[1])
	binary.LittleEndian.PutUint64(tmp[16:24], v[2])
	binary.LittleEndian.PutUint64(tmp[24:32], v[3])
	e.buf.Write(tmp[:])
}

// ReadU128 reads 16 little-endian bytes as an unsigned 128-bit integer
func (d *Decoder) ReadU128() (*uint256.Int, error) {
	tmp, err := d.read(16)
	if err != nil {
		return nil, err
	}
	ret := &uint256.Int{
		binary.LittleEndian.Uint64(tmp[0:8]),
		binary.LittleEndian.Uint64(tmp[8:16]),
		0,
		0,
	}
	return ret, nil
}

// ReadU256 reads 32 little-endian bytes as an unsigned 256-bit integer
func (d *Decoder) ReadU256() (*uint256.Int, error) {
	tmp, err := d.read(32)
	if err != nil {
		return nil, err
	}
	ret := &uint256.Int{
		binary.LittleEndian.Uint64(tmp[0:8]),
		binary.LittleEndian.Uint64(tmp[8:16]),
		binary.LittleEndian.Uint64(tmp[16:24]),
		binary.LittleEndian.Uint64(tmp[24:32]),
	}
	return ret, nil
}
