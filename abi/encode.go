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
	"encoding/base64"
	"math/big"

	"github.com/blinklabs-io/gomove/bcs"
	"github.com/blinklabs-io/gomove/ledger"

	"github.com/holiman/uint256"
)

// Encode coerces a raw caller value against the given type and serializes it
// into canonical BCS bytes. Encoding is deterministic: the same type and
// value always produce byte-identical output
func (c *Coercer) Encode(tag *TypeTag, value any) ([]byte, error) {
	coerced, err := c.Coerce(tag, value)
	if err != nil {
		return nil, err
	}
	e := bcs.NewEncoder()
	if err := c.encodeCoerced(e, tag, coerced, 0); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// encodeCoerced serializes a value already normalized by coerceValue, so the
// type assertions below reflect that function's output contract
func (c *Coercer) encodeCoerced(
	e *bcs.Encoder,
	tag *TypeTag,
	value any,
	depth int,
) error {
	if depth >= MaxValueDepth {
		return ErrNestingTooDeep
	}
	mismatch := func() error {
		return TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "unexpected coerced value",
		}
	}
	switch tag.Kind {
	case TypeKindBool:
		v, ok := value.(bool)
		if !ok {
			return mismatch()
		}
		e.WriteBool(v)
	case TypeKindU8:
		v, ok := value.(uint8)
		if !ok {
			return mismatch()
		}
		e.WriteU8(v)
	case TypeKindU16:
		v, ok := value.(uint16)
		if !ok {
			return mismatch()
		}
		e.WriteU16(v)
	case TypeKindU32:
		v, ok := value.(uint32)
		if !ok {
			return mismatch()
		}
		e.WriteU32(v)
	case TypeKindU64:
		v, ok := value.(uint64)
		if !ok {
			return mismatch()
		}
		e.WriteU64(v)
	case TypeKindU128:
		v, ok := value.(*uint256.Int)
		if !ok {
			return mismatch()
		}
		return e.WriteU128(v)
	case TypeKindU256:
		v, ok := value.(*uint256.Int)
		if !ok {
			return mismatch()
		}
		e.WriteU256(v)
	case TypeKindAddress:
		v, ok := value.(ledger.AccAddress)
		if !ok {
			return mismatch()
		}
		return v.MarshalBCS(e)
	case TypeKindVector:
		return c.encodeVector(e, tag, value, depth)
	case TypeKindStruct:
		return c.encodeStruct(e, tag, value, depth)
	case TypeKindGeneric:
		return UnresolvedGenericError{Index: tag.Index}
	default:
		return mismatch()
	}
	return nil
}

func (c *Coercer) encodeVector(
	e *bcs.Encoder,
	tag *TypeTag,
	value any,
	depth int,
) error {
	if b, ok := value.([]byte); ok {
		return e.WriteBytes(b)
	}
	elems, ok := value.([]any)
	if !ok {
		return TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "unexpected coerced value",
		}
	}
	if err := e.WriteLen(len(elems)); err != nil {
		return err
	}
	for _, elem := range elems {
		if err := c.encodeCoerced(e, tag.Elem, elem, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (c *Coercer) encodeStruct(
	e *bcs.Encoder,
	tag *TypeTag,
	value any,
	depth int,
) error {
	mismatch := func() error {
		return TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "unexpected coerced value",
		}
	}
	switch tag.wellKnown() {
	case wellKnownString:
		v, ok := value.(string)
		if !ok {
			return mismatch()
		}
		return e.WriteString(v)
	case wellKnownOption:
		// Encoded as a vector of zero or one elements
		if value == nil {
			e.WriteU8(0)
			return nil
		}
		e.WriteU8(1)
		return c.encodeCoerced(e, &tag.TypeArgs[0], value, depth+1)
	case wellKnownObject:
		v, ok := value.(ledger.AccAddress)
		if !ok {
			return mismatch()
		}
		return v.MarshalBCS(e)
	case wellKnownFixedPoint32:
		v, ok := value.(uint64)
		if !ok {
			return mismatch()
		}
		e.WriteU64(v)
		return nil
	case wellKnownFixedPoint64:
		v, ok := value.(*uint256.Int)
		if !ok {
			return mismatch()
		}
		return e.WriteU128(v)
	case wellKnownBigUint, wellKnownBigDecimal:
		v, ok := value.(*big.Int)
		if !ok {
			return mismatch()
		}
		return e.WriteBytes(bigIntToLeBytes(v))
	}
	if schema, ok := c.schemas[tag.structKey()]; ok {
		fields, ok := value.(map[string]any)
		if !ok {
			return mismatch()
		}
		// Fields concatenate in declared order with no separators
		for _, field := range schema.Fields {
			fieldTag, err := c.fieldTag(tag, field)
			if err != nil {
				return err
			}
			if err := c.encodeCoerced(
				e,
				fieldTag,
				fields[field.Name],
				depth+1,
			); err != nil {
				return err
			}
		}
		return nil
	}
	// Opaque pass-through: caller-supplied bytes are emitted verbatim
	v, ok := value.([]byte)
	if !ok {
		return mismatch()
	}
	e.WriteFixedBytes(v)
	return nil
}

// bigIntToLeBytes returns the little-endian magnitude bytes of a
// non-negative integer, with no trailing zero bytes. Zero encodes as an
// empty slice
func bigIntToLeBytes(v *big.Int) []byte {
	be := v.Bytes()
	ret := make([]byte, len(be))
	for i, b := range be {
		ret[len(be)-1-i] = b
	}
	return ret
}

// EncodeFunctionArgs encodes the raw arguments for a call to an entry
// function of the given module. Leading signer parameters are dropped from
// the parameter list before arguments are aligned positionally, and typeArgs
// are substituted into any generic parameter slots. The call is
// all-or-nothing: the returned list always has exactly one encoded argument
// per explicit parameter, and any single argument's failure aborts the whole
// call with that argument's error
func EncodeFunctionArgs(
	mod *ModuleABI,
	function string,
	typeArgs []string,
	args []any,
	options ...CoercerOptionFunc,
) ([][]byte, error) {
	fn, err := mod.Resolve(function)
	if err != nil {
		return nil, err
	}
	return encodeArgs(mod, fn, typeArgs, args, options)
}

// EncodeViewFunctionArgs encodes the raw arguments for a call to a view
// function, applying the same rules as EncodeFunctionArgs
func EncodeViewFunctionArgs(
	mod *ModuleABI,
	function string,
	typeArgs []string,
	args []any,
	options ...CoercerOptionFunc,
) ([][]byte, error) {
	fn, err := mod.ResolveView(function)
	if err != nil {
		return nil, err
	}
	return encodeArgs(mod, fn, typeArgs, args, options)
}

func encodeArgs(
	mod *ModuleABI,
	fn *ExposedFunction,
	typeArgs []string,
	args []any,
	options []CoercerOptionFunc,
) ([][]byte, error) {
	parsedTypeArgs := make([]TypeTag, 0, len(typeArgs))
	for _, sig := range typeArgs {
		tag, err := ParseTypeTag(sig)
		if err != nil {
			return nil, err
		}
		parsedTypeArgs = append(parsedTypeArgs, *tag)
	}
	paramTags := make([]*TypeTag, 0, len(fn.Params))
	for _, sig := range fn.Params {
		tag, err := ParseTypeTag(sig)
		if err != nil {
			return nil, err
		}
		paramTags = append(paramTags, tag)
	}
	// The caller never supplies the leading signer parameters
	for len(paramTags) > 0 && paramTags[0].isSigner() {
		paramTags = paramTags[1:]
	}
	if len(paramTags) != len(args) {
		return nil, ArityMismatchError{
			Function: fn.Name,
			Expected: len(paramTags),
			Actual:   len(args),
		}
	}
	coercer := NewCoercer(
		append([]CoercerOptionFunc{WithModuleSchemas(mod)}, options...)...,
	)
	ret := make([][]byte, 0, len(paramTags))
	for i, tag := range paramTags {
		if err := tag.substituteGenerics(parsedTypeArgs); err != nil {
			return nil, ArgumentError{Index: i, Type: tag.String(), Err: err}
		}
		encoded, err := coercer.Encode(tag, args[i])
		if err != nil {
			return nil, ArgumentError{Index: i, Type: tag.String(), Err: err}
		}
		ret = append(ret, encoded)
	}
	return ret, nil
}

// EncodeFunctionArgsBase64 encodes entry function arguments and returns them
// in the base64 transmission form used by execute messages
func EncodeFunctionArgsBase64(
	mod *ModuleABI,
	function string,
	typeArgs []string,
	args []any,
	options ...CoercerOptionFunc,
) ([]string, error) {
	encoded, err := EncodeFunctionArgs(mod, function, typeArgs, args, options...)
	if err != nil {
		return nil, err
	}
	return encodeBase64(encoded), nil
}

// EncodeViewFunctionArgsBase64 encodes view function arguments and returns
// them in the base64 transmission form used by view requests
func EncodeViewFunctionArgsBase64(
	mod *ModuleABI,
	function string,
	typeArgs []string,
	args []any,
	options ...CoercerOptionFunc,
) ([]string, error) {
	encoded, err := EncodeViewFunctionArgs(
		mod,
		function,
		typeArgs,
		args,
		options...,
	)
	if err != nil {
		return nil, err
	}
	return encodeBase64(encoded), nil
}

func encodeBase64(encoded [][]byte) []string {
	ret := make([]string, len(encoded))
	for i, data := range encoded {
		ret[i] = base64.StdEncoding.EncodeToString(data)
	}
	return ret
}
