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

// Package testdata provides shared test fixtures for conformance tests and
// benchmarks.
package testdata

import (
	_ "embed"
)

// ABI document for a small DEX module covering entry functions with generic
// type parameters, a view function and struct declarations
//
//go:embed dex_module_abi.json
var DexModuleABIJson string

// Encoding conformance vectors: value-level cases pairing a type signature
// and an input value with the expected BCS bytes, and call-level cases
// encoding full argument lists against the DEX module ABI
//
//go:embed encode_vectors.json
var EncodeVectorsJson string
