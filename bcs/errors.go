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
	"errors"
	"fmt"
)

var (
	// ErrDataTruncated indicates the input ended before a complete value was read
	ErrDataTruncated = errors.New("unexpected end of BCS data")

	// ErrTrailingData indicates extra bytes remained after decoding a complete value
	ErrTrailingData = errors.New("trailing bytes after BCS value")

	// ErrNonCanonicalUleb128 indicates a ULEB128 value encoded with redundant groups
	ErrNonCanonicalUleb128 = errors.New("non-canonical ULEB128 encoding")

	// ErrInvalidUtf8 indicates string content that is not valid UTF-8
	ErrInvalidUtf8 = errors.New("string is not valid UTF-8")
)

// InvalidBoolError indicates a boolean byte other than 0x00 or 0x01
type InvalidBoolError struct {
	Value byte
}

func (e InvalidBoolError) Error() string {
	return fmt.Sprintf("invalid BCS boolean byte 0x%02x", e.Value)
}

// Uleb128OverflowError indicates a ULEB128 value outside the 32-bit range
type Uleb128OverflowError struct {
	Value uint64
}

func (e Uleb128OverflowError) Error() string {
	return fmt.Sprintf("ULEB128 value %d exceeds 32 bits", e.Value)
}

// SequenceTooLongError indicates a sequence length outside the allowed range
type SequenceTooLongError struct {
	Length int64
}

func (e SequenceTooLongError) Error() string {
	return fmt.Sprintf(
		"sequence length %d outside range 0..%d",
		e.Length,
		int64(MaxSequenceLength),
	)
}

// IntegerWidthError indicates an integer too large for its declared bit width
type IntegerWidthError struct {
	Value string
	Bits  uint
}

func (e IntegerWidthError) Error() string {
	return fmt.Sprintf("value %s does not fit in %d bits", e.Value, e.Bits)
}
