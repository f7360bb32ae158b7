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

// Package bcs implements the Binary Canonical Serialization (BCS) format used
// by MoveVM chains: little-endian fixed-width unsigned integers, ULEB128
// length-prefixed variable-length sequences, and depth-first field
// concatenation for structures. Encoding a given value always produces the
// same bytes, which makes the format suitable for signing and hashing.
package bcs

// Maximum number of elements in a BCS sequence
const MaxSequenceLength = (1 << 31) - 1

// Marshaler is implemented by types that can encode themselves to BCS
type Marshaler interface {
	MarshalBCS(*Encoder) error
}

// Unmarshaler is implemented by types that can decode themselves from BCS
type Unmarshaler interface {
	UnmarshalBCS(*Decoder) error
}

// Marshal encodes the provided value to BCS bytes
func Marshal(v Marshaler) ([]byte, error) {
	e := NewEncoder()
	if err := v.MarshalBCS(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes the provided BCS bytes into the destination value. It
// returns an error if any bytes remain after decoding, since a BCS value has
// exactly one canonical encoding
func Unmarshal(data []byte, v Unmarshaler) error {
	d := NewDecoder(data)
	if err := v.UnmarshalBCS(d); err != nil {
		return err
	}
	return d.Done()
}
