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

package bench

import (
	"testing"

	"github.com/blinklabs-io/gomove/abi"
)

// Signatures with increasing structural complexity
var parseSignatures = []struct {
	name      string
	signature string
}{
	{"primitive", "u64"},
	{"vector", "vector<vector<u8>>"},
	{"struct", "0x1::option::Option<0x1::string::String>"},
	{"generic_struct", "0x1::dex::Pair<0x1::object::Object<T0>>"},
}

func BenchmarkParseTypeTag(b *testing.B) {
	for _, s := range parseSignatures {
		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := abi.ParseTypeTag(s.signature); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

var coerceValues = []struct {
	name      string
	signature string
	value     any
}{
	{"u64", "u64", 100},
	{"u128_string", "u128", "340282366920938463463374607431768211455"},
	{"address", "address", "0xcafe"},
	{"vector_u64", "vector<u64>", []any{1, 2, 3, 4}},
	{"string", "0x1::string::String", "hello"},
	{
		"struct",
		"0x1::dex::Config",
		map[string]any{"fee_rate": 30, "paused": false},
	},
}

func BenchmarkCoerce(b *testing.B) {
	coercer := abi.NewCoercer(abi.WithModuleSchemas(LoadDexModuleABI()))
	for _, v := range coerceValues {
		tag, err := abi.ParseTypeTag(v.signature)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(v.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := coercer.Coerce(tag, v.value); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	coercer := abi.NewCoercer(abi.WithModuleSchemas(LoadDexModuleABI()))
	for _, v := range coerceValues {
		tag, err := abi.ParseTypeTag(v.signature)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(v.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := coercer.Encode(tag, v.value); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	coercer := abi.NewCoercer(abi.WithModuleSchemas(LoadDexModuleABI()))
	for _, v := range coerceValues {
		tag, err := abi.ParseTypeTag(v.signature)
		if err != nil {
			b.Fatal(err)
		}
		encoded, err := coercer.Encode(tag, v.value)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(v.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := coercer.Decode(tag, encoded); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkEncodeFunctionArgs covers the full pipeline: function resolution,
// type argument parsing, generic substitution and argument encoding
func BenchmarkEncodeFunctionArgs(b *testing.B) {
	mod := LoadDexModuleABI()
	typeArgs := SwapTypeArgs()
	args := SwapArgs()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := abi.EncodeFunctionArgs(mod, "swap", typeArgs, args); err != nil {
			b.Fatal(err)
		}
	}
}
