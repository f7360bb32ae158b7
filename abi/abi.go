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

// Package abi implements ABI-directed argument encoding for MoveVM entry and
// view functions. It parses the textual type grammar used in published module
// ABIs into TypeTag trees, coerces loosely-typed caller values against those
// types, and serializes them into canonical BCS bytes ready for submission.
//
// The package is a pure computation over immutable inputs: it performs no
// I/O, and concurrent calls need no coordination. Fetching ABI documents from
// a chain is the client package's job; this package only consumes them.
package abi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/blinklabs-io/gomove/ledger"
)

// Function visibility values used in ABI documents
const (
	VisibilityPublic  = "public"
	VisibilityFriend  = "friend"
	VisibilityPrivate = "private"
)

// ModuleABI is the published interface description of a single on-chain
// module. It is built once from a decoded ABI document and treated as
// read-only afterwards
type ModuleABI struct {
	Address          ledger.AccAddress `json:"address"`
	Name             string            `json:"name"`
	Friends          []string          `json:"friends"`
	ExposedFunctions []ExposedFunction `json:"exposed_functions"`
	Structs          []StructDef       `json:"structs"`

	functionsOnce sync.Once
	functions     map[string]*ExposedFunction
}

// ExposedFunction describes a single callable function: its parameter type
// signatures in declaration order, its generic type parameter slots, and how
// it may be invoked
type ExposedFunction struct {
	Name              string             `json:"name"`
	Visibility        string             `json:"visibility"`
	IsEntry           bool               `json:"is_entry"`
	IsView            bool               `json:"is_view"`
	GenericTypeParams []GenericTypeParam `json:"generic_type_params"`
	Params            []string           `json:"params"`
	Return            []string           `json:"return"`
}

// GenericTypeParam describes one generic type parameter slot
type GenericTypeParam struct {
	Constraints []string `json:"constraints"`
}

// StructDef describes a struct declared by the module, including its field
// layout
type StructDef struct {
	Name              string             `json:"name"`
	IsNative          bool               `json:"is_native"`
	Abilities         []string           `json:"abilities"`
	GenericTypeParams []GenericTypeParam `json:"generic_type_params"`
	Fields            []StructField      `json:"fields"`
}

// StructField is a single named field with its type signature
type StructField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// DecodeModuleABI decodes a module ABI document. The REST API delivers the
// document as a JSON-encoded string inside the module record; both that
// wrapped form and the plain document are accepted
func DecodeModuleABI(data []byte) (*ModuleABI, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, fmt.Errorf("decode module ABI wrapper: %w", err)
		}
		trimmed = []byte(inner)
	}
	var ret ModuleABI
	if err := json.Unmarshal(trimmed, &ret); err != nil {
		return nil, fmt.Errorf("decode module ABI: %w", err)
	}
	return &ret, nil
}

// Id returns the module identifier in its short form, e.g. "0x1::coin"
func (m *ModuleABI) Id() string {
	return m.Address.ShortString() + "::" + m.Name
}

func (m *ModuleABI) function(name string) *ExposedFunction {
	m.functionsOnce.Do(func() {
		m.functions = make(
			map[string]*ExposedFunction,
			len(m.ExposedFunctions),
		)
		for i := range m.ExposedFunctions {
			fn := &m.ExposedFunctions[i]
			m.functions[fn.Name] = fn
		}
	})
	return m.functions[name]
}

// Resolve returns the named entry function. It fails with
// FunctionNotFoundError when the module has no function of that name or when
// the function is not callable as an entry point
func (m *ModuleABI) Resolve(name string) (*ExposedFunction, error) {
	fn := m.function(name)
	if fn == nil {
		return nil, FunctionNotFoundError{
			Module:   m.Id(),
			Function: name,
			Detail:   "not found",
		}
	}
	if !fn.IsEntry {
		return nil, FunctionNotFoundError{
			Module:   m.Id(),
			Function: name,
			Detail:   "not an entry function",
		}
	}
	return fn, nil
}

// ResolveView returns the named view function, applying the same rules as
// Resolve with the view flag in place of the entry flag
func (m *ModuleABI) ResolveView(name string) (*ExposedFunction, error) {
	fn := m.function(name)
	if fn == nil {
		return nil, FunctionNotFoundError{
			Module:   m.Id(),
			Function: name,
			Detail:   "not found",
		}
	}
	if !fn.IsView {
		return nil, FunctionNotFoundError{
			Module:   m.Id(),
			Function: name,
			Detail:   "not a view function",
		}
	}
	return fn, nil
}
