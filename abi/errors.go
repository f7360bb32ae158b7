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

package abi

import (
	"errors"
	"fmt"
)

var (
	// ErrNestingTooDeep indicates a value or type nested beyond the
	// supported depth
	ErrNestingTooDeep = errors.New("nesting depth limit exceeded")

	// ErrNoStructSchema indicates a decode attempt against a struct type
	// with no known field schema
	ErrNoStructSchema = errors.New("no field schema known for struct")
)

// TypeParseError indicates a malformed type signature string
type TypeParseError struct {
	Input    string
	Position int
	Message  string
}

func (e TypeParseError) Error() string {
	return fmt.Sprintf(
		"invalid type signature %q at offset %d: %s",
		e.Input,
		e.Position,
		e.Message,
	)
}

// FunctionNotFoundError indicates a function that is absent from the module
// or not callable in the requested way
type FunctionNotFoundError struct {
	Module   string
	Function string
	Detail   string
}

func (e FunctionNotFoundError) Error() string {
	return fmt.Sprintf(
		"function %q in module %s: %s",
		e.Function,
		e.Module,
		e.Detail,
	)
}

// ArityMismatchError indicates an argument list whose length does not match
// the function's explicit parameter count
type ArityMismatchError struct {
	Function string
	Expected int
	Actual   int
}

func (e ArityMismatchError) Error() string {
	return fmt.Sprintf(
		"function %q takes %d arguments, got %d",
		e.Function,
		e.Expected,
		e.Actual,
	)
}

// TypeMismatchError indicates a value whose shape is incompatible with the
// declared type
type TypeMismatchError struct {
	Type    string
	Value   any
	Message string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf(
		"value %v (%T) does not match type %s: %s",
		e.Value,
		e.Value,
		e.Type,
		e.Message,
	)
}

// IntegerOverflowError indicates a numeric value outside the representable
// range of the declared type
type IntegerOverflowError struct {
	Type  string
	Value string
}

func (e IntegerOverflowError) Error() string {
	return fmt.Sprintf("value %s outside the range of %s", e.Value, e.Type)
}

// UnresolvedGenericError indicates a generic type parameter with no concrete
// type argument supplied for its slot
type UnresolvedGenericError struct {
	Index int
}

func (e UnresolvedGenericError) Error() string {
	return fmt.Sprintf(
		"no type argument supplied for generic parameter T%d",
		e.Index,
	)
}

// ArgumentError wraps a coercion or encoding failure with the position and
// declared type of the argument that caused it
type ArgumentError struct {
	Index int
	Type  string
	Err   error
}

func (e ArgumentError) Error() string {
	return fmt.Sprintf("argument %d (%s): %s", e.Index, e.Type, e.Err)
}

func (e ArgumentError) Unwrap() error { return e.Err }
