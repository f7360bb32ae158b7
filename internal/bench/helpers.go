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

// Package bench provides benchmark fixtures shared across the encoder
// benchmarks.
package bench

import (
	"fmt"

	"github.com/blinklabs-io/gomove/abi"
	"github.com/blinklabs-io/gomove/internal/testdata"
)

// LoadDexModuleABI returns the DEX module ABI fixture.
// It panics if the fixture fails to decode.
func LoadDexModuleABI() *abi.ModuleABI {
	mod, err := abi.DecodeModuleABI([]byte(testdata.DexModuleABIJson))
	if err != nil {
		panic(fmt.Sprintf("error decoding module ABI fixture: %s", err))
	}
	return mod
}

// SwapTypeArgs returns type arguments matching the swap fixture function's
// generic type parameter slots.
func SwapTypeArgs() []string {
	return []string{"0x1::dex::Config"}
}

// SwapArgs returns an argument list for the swap fixture function, one value
// per explicit parameter.
func SwapArgs() []any {
	return []any{"0xcafe", 100, nil}
}
