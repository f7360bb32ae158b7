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

package bcs_test

import (
	"encoding/hex"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/blinklabs-io/gomove/bcs"

	"github.com/holiman/uint256"
)

type encodeTestDefinition struct {
	ExpectedHex string
	EncodeFunc  func(*bcs.Encoder)
}

var encodeTests = []encodeTestDefinition{
	// Booleans
	{
		ExpectedHex: "00",
		EncodeFunc:  func(e *bcs.Encoder) { e.WriteBool(false) },
	},
	{
		ExpectedHex: "01",
		EncodeFunc:  func(e *bcs.Encoder) { e.WriteBool(true) },
	},
	// Fixed-width integers are little-endian
	{
		ExpectedHex: "ff",
		EncodeFunc:  func(e *bcs.Encoder) { e.WriteU8(0xff) },
	},
	{
		ExpectedHex: "3412",
		EncodeFunc:  func(e *bcs.Encoder) { e.WriteU16(0x1234) },
	},
	{
		ExpectedHex: "78563412",
		EncodeFunc:  func(e *bcs.Encoder) { e.WriteU32(0x12345678) },
	},
	{
		ExpectedHex: "efcdab8967452301",
		EncodeFunc:  func(e *bcs.Encoder) { e.WriteU64(0x0123456789abcdef) },
	},
	{
		ExpectedHex: "0000000000000000",
		EncodeFunc:  func(e *bcs.Encoder) { e.WriteU64(0) },
	},
	// ULEB128
	{
		ExpectedHex: "00",
		EncodeFunc:  func(e *bcs.Encoder) { _ = e.WriteUleb128(0) },
	},
	{
		ExpectedHex: "7f",
		EncodeFunc:  func(e *bcs.Encoder) { _ = e.WriteUleb128(127) },
	},
	{
		ExpectedHex: "8001",
		EncodeFunc:  func(e *bcs.Encoder) { _ = e.WriteUleb128(128) },
	},
	{
		ExpectedHex: "e58e26",
		EncodeFunc:  func(e *bcs.Encoder) { _ = e.WriteUleb128(624485) },
	},
	{
		ExpectedHex: "ffffffff0f",
		EncodeFunc:  func(e *bcs.Encoder) { _ = e.WriteUleb128(math.MaxUint32) },
	},
	// Length-prefixed bytes and strings
	{
		ExpectedHex: "00",
		EncodeFunc:  func(e *bcs.Encoder) { _ = e.WriteBytes([]byte{}) },
	},
	{
		ExpectedHex: "03010203",
		EncodeFunc:  func(e *bcs.Encoder) { _ = e.WriteBytes([]byte{1, 2, 3}) },
	},
	{
		ExpectedHex: "0568656c6c6f",
		EncodeFunc:  func(e *bcs.Encoder) { _ = e.WriteString("hello") },
	},
	{
		ExpectedHex: "06e289a5e289a4",
		EncodeFunc:  func(e *bcs.Encoder) { _ = e.WriteString("≥≤") },
	},
	// Fixed bytes have no length prefix
	{
		ExpectedHex: "0102",
		EncodeFunc:  func(e *bcs.Encoder) { e.WriteFixedBytes([]byte{1, 2}) },
	},
	// Wide integers
	{
		ExpectedHex: "01000000000000000000000000000000",
		EncodeFunc: func(e *bcs.Encoder) {
			_ = e.WriteU128(uint256.NewInt(1))
		},
	},
	{
		ExpectedHex: "ffffffffffffffffffffffffffffffff",
		EncodeFunc: func(e *bcs.Encoder) {
			v := new(uint256.Int).Sub(
				new(uint256.Int).Lsh(uint256.NewInt(1), 128),
				uint256.NewInt(1),
			)
			_ = e.WriteU128(v)
		},
	},
	{
		ExpectedHex: "01000000000000000000000000000000" +
			"00000000000000000000000000000000",
		EncodeFunc: func(e *bcs.Encoder) {
			e.WriteU256(uint256.NewInt(1))
		},
	},
	{
		ExpectedHex: strings.Repeat("ff", 32),
		EncodeFunc: func(e *bcs.Encoder) {
			v := new(uint256.Int).Not(uint256.NewInt(0))
			e.WriteU256(v)
		},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		e := bcs.NewEncoder()
		test.EncodeFunc(e)
		encodedHex := hex.EncodeToString(e.Bytes())
		if encodedHex != test.ExpectedHex {
			t.Fatalf(
				"value did not encode to expected BCS\n  got: %s\n  wanted: %s",
				encodedHex,
				test.ExpectedHex,
			)
		}
	}
}

func TestEncodeUleb128Overflow(t *testing.T) {
	e := bcs.NewEncoder()
	err := e.WriteUleb128(uint64(math.MaxUint32) + 1)
	var overflowErr bcs.Uleb128OverflowError
	if !errors.As(err, &overflowErr) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
	if e.Len() != 0 {
		t.Fatalf("encoder wrote %d bytes after error, wanted none", e.Len())
	}
}

func TestEncodeNegativeLength(t *testing.T) {
	e := bcs.NewEncoder()
	err := e.WriteLen(-1)
	var seqErr bcs.SequenceTooLongError
	if !errors.As(err, &seqErr) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
}

func TestEncodeInvalidUtf8(t *testing.T) {
	e := bcs.NewEncoder()
	err := e.WriteString(string([]byte{0xff, 0xfe}))
	if !errors.Is(err, bcs.ErrInvalidUtf8) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
}

func TestEncodeU128Overflow(t *testing.T) {
	e := bcs.NewEncoder()
	v := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	err := e.WriteU128(v)
	var widthErr bcs.IntegerWidthError
	if !errors.As(err, &widthErr) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
	if widthErr.Bits != 128 {
		t.Fatalf("expected bit width 128 in error, got: %d", widthErr.Bits)
	}
}

func TestEncoderBytesIsCopy(t *testing.T) {
	e := bcs.NewEncoder()
	e.WriteU8(0x01)
	first := e.Bytes()
	e.WriteU8(0x02)
	if len(first) != 1 {
		t.Fatalf(
			"snapshot changed after later writes, got %d bytes, wanted 1",
			len(first),
		)
	}
}
