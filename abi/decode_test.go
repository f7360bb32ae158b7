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

package abi_test

import (
	"reflect"
	"testing"

	"github.com/blinklabs-io/gomove/abi"
	"github.com/blinklabs-io/gomove/bcs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripTestDefinition struct {
	Signature string
	Value     any
}

var roundTripTests = []roundTripTestDefinition{
	{Signature: "bool", Value: true},
	{Signature: "bool", Value: false},
	{Signature: "u8", Value: 200},
	{Signature: "u16", Value: "4660"},
	{Signature: "u32", Value: 305419896},
	{Signature: "u64", Value: "18446744073709551615"},
	{Signature: "u128", Value: "340282366920938463463374607431768211455"},
	{
		Signature: "u256",
		Value: "1157920892373161954235709850086879078532" +
			"69984665640564039457584007913129639935",
	},
	{Signature: "address", Value: "0xcafe"},
	{Signature: "vector<u8>", Value: []any{1, 2, 3}},
	{Signature: "vector<u8>", Value: []any{}},
	{Signature: "vector<u64>", Value: []any{1, 2, 3}},
	{Signature: "vector<address>", Value: []any{"0x1", "0x2"}},
	{Signature: "vector<vector<u8>>", Value: []any{[]any{1}, []any{2, 3}}},
	{Signature: "0x1::string::String", Value: "hello"},
	{Signature: "0x1::option::Option<u64>", Value: nil},
	{Signature: "0x1::option::Option<u64>", Value: 5},
	{Signature: "0x1::object::Object<0x1::dex::Pool>", Value: "0x2"},
	{Signature: "0x1::fixed_point32::FixedPoint32", Value: "1.5"},
	{Signature: "0x1::fixed_point64::FixedPoint64", Value: "2.25"},
	{Signature: "0x1::biguint::BigUint", Value: "256"},
	{Signature: "0x1::bigdecimal::BigDecimal", Value: "1.5"},
	{
		Signature: "0x1::dex::Config",
		Value:     map[string]any{"fee_rate": 30, "paused": true},
	},
}

// Every encodable value decodes back to its own normalized form
func TestRoundTrip(t *testing.T) {
	c := abi.NewCoercer(
		abi.WithStructSchema("0x1::dex::Config", abi.StructSchema{
			Fields: []abi.StructField{
				{Name: "fee_rate", Type: "u64"},
				{Name: "paused", Type: "bool"},
			},
		}),
	)
	for _, test := range roundTripTests {
		tag, err := abi.ParseTypeTag(test.Signature)
		if err != nil {
			t.Fatalf("unexpected parse error for %q: %s", test.Signature, err)
		}
		coerced, err := c.Coerce(tag, test.Value)
		if err != nil {
			t.Fatalf("unexpected coerce error for %q: %s", test.Signature, err)
		}
		encoded, err := c.Encode(tag, test.Value)
		if err != nil {
			t.Fatalf("unexpected encode error for %q: %s", test.Signature, err)
		}
		decoded, err := c.Decode(tag, encoded)
		if err != nil {
			t.Fatalf("unexpected decode error for %q: %s", test.Signature, err)
		}
		if !reflect.DeepEqual(decoded, coerced) {
			t.Fatalf(
				"did not round-trip %q\n  got:    %#v\n  wanted: %#v",
				test.Signature,
				decoded,
				coerced,
			)
		}
	}
}

func TestDecodeNoStructSchema(t *testing.T) {
	c := abi.NewCoercer()
	tag, err := abi.ParseTypeTag("0x9::unknown::Thing")
	require.NoError(t, err)
	_, err = c.Decode(tag, []byte{0x01})
	assert.ErrorIs(t, err, abi.ErrNoStructSchema)
}

func TestDecodeInvalidOptionTag(t *testing.T) {
	c := abi.NewCoercer()
	tag, err := abi.ParseTypeTag("0x1::option::Option<u64>")
	require.NoError(t, err)
	_, err = c.Decode(tag, []byte{0x02})
	var mismatchErr abi.TypeMismatchError
	require.ErrorAs(t, err, &mismatchErr)
}

func TestDecodeTrailingData(t *testing.T) {
	c := abi.NewCoercer()
	tag, err := abi.ParseTypeTag("u8")
	require.NoError(t, err)
	_, err = c.Decode(tag, []byte{0x01, 0x02})
	assert.ErrorIs(t, err, bcs.ErrTrailingData)
}

func TestDecodeTruncated(t *testing.T) {
	c := abi.NewCoercer()
	tag, err := abi.ParseTypeTag("u64")
	require.NoError(t, err)
	_, err = c.Decode(tag, []byte{0x01, 0x02})
	assert.ErrorIs(t, err, bcs.ErrDataTruncated)

	// A vector length prefix promising more elements than the data holds
	vecTag, err := abi.ParseTypeTag("vector<u64>")
	require.NoError(t, err)
	_, err = c.Decode(vecTag, []byte{0x02, 0x01})
	assert.ErrorIs(t, err, bcs.ErrDataTruncated)
}

func TestDecodeSigner(t *testing.T) {
	c := abi.NewCoercer()
	tag, err := abi.ParseTypeTag("signer")
	require.NoError(t, err)
	_, err = c.Decode(tag, []byte{0x01})
	var mismatchErr abi.TypeMismatchError
	require.ErrorAs(t, err, &mismatchErr)
}
