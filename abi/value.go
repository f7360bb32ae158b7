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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/blinklabs-io/gomove/ledger"

	"github.com/holiman/uint256"
)

// MaxValueDepth is the maximum nesting depth of a value during coercion,
// encoding, and decoding. Struct field schemas can reference other struct
// types, so value depth is not bounded by MaxTypeDepth alone
const MaxValueDepth = 128

// StructSchema is the declared field layout of a struct, used to coerce a
// keyed mapping into fields in canonical order
type StructSchema struct {
	Fields []StructField
}

// Coercer validates raw caller values against TypeTags and converts them to
// and from canonical BCS bytes. The zero configuration knows the framework
// wrapper structs; additional struct field schemas can be supplied via
// options. A Coercer is safe for concurrent use once constructed
type Coercer struct {
	schemas map[string]StructSchema
}

type CoercerOptionFunc func(*Coercer)

// NewCoercer returns a Coercer with the provided options applied
func NewCoercer(options ...CoercerOptionFunc) *Coercer {
	c := &Coercer{
		schemas: map[string]StructSchema{},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// WithStructSchema registers a field schema for the struct with the given
// short-form name, e.g. "0x2::pool::PoolInfo"
func WithStructSchema(name string, schema StructSchema) CoercerOptionFunc {
	return func(c *Coercer) {
		c.schemas[name] = schema
	}
}

// WithStructSchemas registers multiple field schemas at once
func WithStructSchemas(schemas map[string]StructSchema) CoercerOptionFunc {
	return func(c *Coercer) {
		for name, schema := range schemas {
			c.schemas[name] = schema
		}
	}
}

// WithModuleSchemas registers field schemas for every struct declared by the
// given module's ABI
func WithModuleSchemas(mod *ModuleABI) CoercerOptionFunc {
	return func(c *Coercer) {
		prefix := mod.Address.ShortString() + "::" + mod.Name + "::"
		for _, def := range mod.Structs {
			c.schemas[prefix+def.Name] = StructSchema{Fields: def.Fields}
		}
	}
}

// Framework structs with special coercion rules
type wellKnownStruct int

const (
	wellKnownNone wellKnownStruct = iota
	wellKnownString
	wellKnownOption
	wellKnownObject
	wellKnownFixedPoint32
	wellKnownFixedPoint64
	wellKnownBigUint
	wellKnownBigDecimal
)

func (t *TypeTag) wellKnown() wellKnownStruct {
	if t.Kind != TypeKindStruct || t.Address != ledger.StdAddress {
		return wellKnownNone
	}
	switch t.Module + "::" + t.Name {
	case "string::String":
		return wellKnownString
	case "option::Option":
		return wellKnownOption
	case "object::Object":
		return wellKnownObject
	case "fixed_point32::FixedPoint32":
		return wellKnownFixedPoint32
	case "fixed_point64::FixedPoint64":
		return wellKnownFixedPoint64
	case "biguint::BigUint":
		return wellKnownBigUint
	case "bigdecimal::BigDecimal":
		return wellKnownBigDecimal
	}
	return wellKnownNone
}

// Coerce validates a raw caller value against the given type and returns its
// normalized form:
//
//   - bool for bool
//   - uint8/uint16/uint32/uint64 for u8..u64, *uint256.Int for u128/u256
//   - ledger.AccAddress for address and 0x1::object::Object
//   - string for 0x1::string::String
//   - []byte for vector<u8> and for opaque struct pass-through
//   - []any for other vectors
//   - map[string]any for structs with a known field schema
//   - nil or the wrapped value for 0x1::option::Option
//   - uint64 / *uint256.Int raw values for the fixed-point wrappers
//   - *big.Int for 0x1::biguint::BigUint and 0x1::bigdecimal::BigDecimal
//
// Coercion of a signer, reference, or unresolved generic parameter always
// fails: those never appear as explicit arguments
func (c *Coercer) Coerce(tag *TypeTag, value any) (any, error) {
	return c.coerceValue(tag, value, 0)
}

func (c *Coercer) coerceValue(
	tag *TypeTag,
	value any,
	depth int,
) (any, error) {
	if depth >= MaxValueDepth {
		return nil, ErrNestingTooDeep
	}
	switch tag.Kind {
	case TypeKindBool:
		return coerceBool(value)
	case TypeKindU8, TypeKindU16, TypeKindU32, TypeKindU64,
		TypeKindU128, TypeKindU256:
		return coerceUint(tag, value)
	case TypeKindAddress:
		return coerceAddress(tag, value)
	case TypeKindVector:
		return c.coerceVector(tag, value, depth)
	case TypeKindStruct:
		return c.coerceStruct(tag, value, depth)
	case TypeKindGeneric:
		return nil, UnresolvedGenericError{Index: tag.Index}
	case TypeKindSigner, TypeKindReference:
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "cannot be supplied as an argument",
		}
	}
	return nil, TypeMismatchError{
		Type:    tag.String(),
		Value:   value,
		Message: "unsupported type",
	}
}

func coerceBool(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		if v == "true" {
			return true, nil
		}
		if v == "false" {
			return false, nil
		}
	}
	return nil, TypeMismatchError{
		Type:    "bool",
		Value:   value,
		Message: "expected a boolean or \"true\"/\"false\"",
	}
}

func uintBits(kind TypeKind) uint {
	switch kind {
	case TypeKindU8:
		return 8
	case TypeKindU16:
		return 16
	case TypeKindU32:
		return 32
	case TypeKindU64:
		return 64
	case TypeKindU128:
		return 128
	}
	return 256
}

func coerceUint(tag *TypeTag, value any) (any, error) {
	parsed, err := parseUintValue(tag, value)
	if err != nil {
		return nil, err
	}
	bits := uintBits(tag.Kind)
	if uint(parsed.BitLen()) > bits {
		return nil, IntegerOverflowError{
			Type:  tag.String(),
			Value: parsed.String(),
		}
	}
	switch tag.Kind {
	case TypeKindU8:
		return uint8(parsed.Uint64()), nil
	case TypeKindU16:
		return uint16(parsed.Uint64()), nil
	case TypeKindU32:
		return uint32(parsed.Uint64()), nil
	case TypeKindU64:
		return parsed.Uint64(), nil
	}
	return parsed, nil
}

// parseUintValue converts the accepted numeric input forms to an unsigned
// 256-bit integer, rejecting negatives and non-integers
func parseUintValue(tag *TypeTag, value any) (*uint256.Int, error) {
	switch v := value.(type) {
	case int:
		if v < 0 {
			return nil, IntegerOverflowError{
				Type:  tag.String(),
				Value: fmt.Sprintf("%d", v),
			}
		}
		return uint256.NewInt(uint64(v)), nil
	case int32:
		if v < 0 {
			return nil, IntegerOverflowError{
				Type:  tag.String(),
				Value: fmt.Sprintf("%d", v),
			}
		}
		return uint256.NewInt(uint64(v)), nil
	case int64:
		if v < 0 {
			return nil, IntegerOverflowError{
				Type:  tag.String(),
				Value: fmt.Sprintf("%d", v),
			}
		}
		return uint256.NewInt(uint64(v)), nil
	case uint:
		return uint256.NewInt(uint64(v)), nil
	case uint8:
		return uint256.NewInt(uint64(v)), nil
	case uint16:
		return uint256.NewInt(uint64(v)), nil
	case uint32:
		return uint256.NewInt(uint64(v)), nil
	case uint64:
		return uint256.NewInt(v), nil
	case float64:
		if v != math.Trunc(v) {
			return nil, TypeMismatchError{
				Type:    tag.String(),
				Value:   value,
				Message: "expected an integer",
			}
		}
		if v < 0 {
			return nil, IntegerOverflowError{
				Type:  tag.String(),
				Value: fmt.Sprintf("%v", v),
			}
		}
		if v >= float64(1<<63)*2 {
			return nil, TypeMismatchError{
				Type:    tag.String(),
				Value:   value,
				Message: "numeric literal too large; pass a decimal string",
			}
		}
		return uint256.NewInt(uint64(v)), nil
	case json.Number:
		return parseUintString(tag, v.String())
	case string:
		return parseUintString(tag, v)
	case *uint256.Int:
		return new(uint256.Int).Set(v), nil
	case *big.Int:
		if v.Sign() < 0 {
			return nil, IntegerOverflowError{
				Type:  tag.String(),
				Value: v.String(),
			}
		}
		ret, overflow := uint256.FromBig(v)
		if overflow {
			return nil, IntegerOverflowError{
				Type:  tag.String(),
				Value: v.String(),
			}
		}
		return ret, nil
	}
	return nil, TypeMismatchError{
		Type:    tag.String(),
		Value:   value,
		Message: "expected a number or numeric string",
	}
}

func parseUintString(tag *TypeTag, s string) (*uint256.Int, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "-") {
		return nil, IntegerOverflowError{Type: tag.String(), Value: trimmed}
	}
	if trimmed == "" {
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   s,
			Message: "expected a decimal integer",
		}
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < '0' || trimmed[i] > '9' {
			return nil, TypeMismatchError{
				Type:    tag.String(),
				Value:   s,
				Message: "expected a decimal integer",
			}
		}
	}
	ret, err := uint256.FromDecimal(trimmed)
	if err != nil {
		// Charset was checked above, so this can only be a 256-bit overflow
		return nil, IntegerOverflowError{Type: tag.String(), Value: trimmed}
	}
	return ret, nil
}

func coerceAddress(tag *TypeTag, value any) (any, error) {
	switch v := value.(type) {
	case ledger.AccAddress:
		return v, nil
	case string:
		addr, err := ledger.NewAccAddress(v)
		if err != nil {
			return nil, err
		}
		return addr, nil
	case []byte:
		addr, err := ledger.NewAccAddressFromBytes(v)
		if err != nil {
			return nil, err
		}
		return addr, nil
	}
	return nil, TypeMismatchError{
		Type:    tag.String(),
		Value:   value,
		Message: "expected an address string or raw bytes",
	}
}

func (c *Coercer) coerceVector(
	tag *TypeTag,
	value any,
	depth int,
) (any, error) {
	if tag.Elem == nil {
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "vector missing element type",
		}
	}
	if tag.Elem.Kind == TypeKindU8 {
		if b, ok := value.([]byte); ok {
			ret := make([]byte, len(b))
			copy(ret, b)
			return ret, nil
		}
	}
	if value == nil {
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "expected a sequence",
		}
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "expected a sequence",
		}
	}
	if tag.Elem.Kind == TypeKindU8 {
		ret := make([]byte, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem, err := c.coerceValue(
				tag.Elem,
				rv.Index(i).Interface(),
				depth+1,
			)
			if err != nil {
				return nil, err
			}
			ret = append(ret, elem.(uint8))
		}
		return ret, nil
	}
	ret := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem, err := c.coerceValue(tag.Elem, rv.Index(i).Interface(), depth+1)
		if err != nil {
			return nil, err
		}
		ret = append(ret, elem)
	}
	return ret, nil
}

func (c *Coercer) coerceStruct(
	tag *TypeTag,
	value any,
	depth int,
) (any, error) {
	switch tag.wellKnown() {
	case wellKnownString:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "expected a string",
		}
	case wellKnownOption:
		if len(tag.TypeArgs) != 1 {
			return nil, TypeMismatchError{
				Type:    tag.String(),
				Value:   value,
				Message: "option requires exactly one type argument",
			}
		}
		if value == nil {
			return nil, nil
		}
		return c.coerceValue(&tag.TypeArgs[0], value, depth+1)
	case wellKnownObject:
		return coerceAddress(tag, value)
	case wellKnownFixedPoint32:
		return coerceFixedPoint(tag, value, 32)
	case wellKnownFixedPoint64:
		return coerceFixedPoint(tag, value, 64)
	case wellKnownBigUint:
		return coerceBigUint(tag, value)
	case wellKnownBigDecimal:
		return coerceBigDecimal(tag, value)
	}
	if schema, ok := c.schemas[tag.structKey()]; ok {
		return c.coerceSchemaStruct(tag, schema, value, depth)
	}
	return coerceOpaqueStruct(tag, value)
}

func (c *Coercer) coerceSchemaStruct(
	tag *TypeTag,
	schema StructSchema,
	value any,
	depth int,
) (any, error) {
	fields, ok := value.(map[string]any)
	if !ok {
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "expected a field mapping",
		}
	}
	ret := make(map[string]any, len(schema.Fields))
	for _, field := range schema.Fields {
		raw, ok := fields[field.Name]
		if !ok {
			return nil, TypeMismatchError{
				Type:    tag.String(),
				Value:   value,
				Message: fmt.Sprintf("missing field %q", field.Name),
			}
		}
		fieldTag, err := c.fieldTag(tag, field)
		if err != nil {
			return nil, err
		}
		coerced, err := c.coerceValue(fieldTag, raw, depth+1)
		if err != nil {
			return nil, err
		}
		ret[field.Name] = coerced
	}
	if len(fields) != len(schema.Fields) {
		for name := range fields {
			if !schema.hasField(name) {
				return nil, TypeMismatchError{
					Type:    tag.String(),
					Value:   value,
					Message: fmt.Sprintf("unknown field %q", name),
				}
			}
		}
	}
	return ret, nil
}

func (s StructSchema) hasField(name string) bool {
	for _, field := range s.Fields {
		if field.Name == name {
			return true
		}
	}
	return false
}

// fieldTag parses a schema field's type signature and substitutes the
// enclosing struct's type arguments into any generic placeholders
func (c *Coercer) fieldTag(
	structTag *TypeTag,
	field StructField,
) (*TypeTag, error) {
	tag, err := ParseTypeTag(field.Type)
	if err != nil {
		return nil, err
	}
	if err := tag.substituteGenerics(structTag.TypeArgs); err != nil {
		return nil, err
	}
	return tag, nil
}

// coerceOpaqueStruct handles structs with no known field schema: the caller
// supplies the BCS bytes directly and they pass through verbatim
func coerceOpaqueStruct(tag *TypeTag, value any) (any, error) {
	switch v := value.(type) {
	case []byte:
		ret := make([]byte, len(v))
		copy(ret, v)
		return ret, nil
	case string:
		if strings.HasPrefix(v, "0x") {
			decoded, err := hex.DecodeString(v[2:])
			if err == nil {
				return decoded, nil
			}
		} else if decoded, err := base64.StdEncoding.DecodeString(v); err == nil {
			return decoded, nil
		}
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "pre-encoded bytes are not valid hex or base64",
		}
	}
	return nil, TypeMismatchError{
		Type:    tag.String(),
		Value:   value,
		Message: "no field schema known; supply pre-encoded bytes",
	}
}

func coerceFixedPoint(
	tag *TypeTag,
	value any,
	fractionalBits uint,
) (any, error) {
	r, ok := ratFromValue(value)
	if !ok {
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "expected a decimal number",
		}
	}
	if r.Sign() < 0 {
		return nil, IntegerOverflowError{
			Type:  tag.String(),
			Value: r.RatString(),
		}
	}
	scaled := new(big.Int).Quo(
		new(big.Int).Lsh(r.Num(), fractionalBits),
		r.Denom(),
	)
	if fractionalBits == 32 {
		if scaled.BitLen() > 64 {
			return nil, IntegerOverflowError{
				Type:  tag.String(),
				Value: r.RatString(),
			}
		}
		return scaled.Uint64(), nil
	}
	if scaled.BitLen() > 128 {
		return nil, IntegerOverflowError{
			Type:  tag.String(),
			Value: r.RatString(),
		}
	}
	ret, _ := uint256.FromBig(scaled)
	return ret, nil
}

func coerceBigUint(tag *TypeTag, value any) (any, error) {
	switch v := value.(type) {
	case *big.Int:
		if v.Sign() < 0 {
			return nil, IntegerOverflowError{
				Type:  tag.String(),
				Value: v.String(),
			}
		}
		return new(big.Int).Set(v), nil
	case *uint256.Int:
		return v.ToBig(), nil
	case int, int32, int64, uint, uint8, uint16, uint32, uint64, float64,
		json.Number, string:
		// Route through the u256 parser for uniform validation, then widen
		tmp, err := parseUintValue(tag, v)
		if err == nil {
			return tmp.ToBig(), nil
		}
		// Values beyond 256 bits are still valid here
		if s, ok := stringFromValue(v); ok {
			ret, valid := new(big.Int).SetString(s, 10)
			if valid && ret.Sign() >= 0 {
				return ret, nil
			}
		}
		return nil, err
	}
	return nil, TypeMismatchError{
		Type:    tag.String(),
		Value:   value,
		Message: "expected a number or numeric string",
	}
}

func coerceBigDecimal(tag *TypeTag, value any) (any, error) {
	r, ok := ratFromValue(value)
	if !ok {
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   value,
			Message: "expected a decimal number",
		}
	}
	if r.Sign() < 0 {
		return nil, IntegerOverflowError{
			Type:  tag.String(),
			Value: r.RatString(),
		}
	}
	// Scaled by 10^18, matching the on-chain representation
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	return new(big.Int).Quo(
		new(big.Int).Mul(r.Num(), scale),
		r.Denom(),
	), nil
}

func ratFromValue(value any) (*big.Rat, bool) {
	switch v := value.(type) {
	case string:
		return new(big.Rat).SetString(strings.TrimSpace(v))
	case json.Number:
		return new(big.Rat).SetString(v.String())
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		return new(big.Rat).SetFloat64(v), true
	case int:
		return new(big.Rat).SetInt64(int64(v)), true
	case int32:
		return new(big.Rat).SetInt64(int64(v)), true
	case int64:
		return new(big.Rat).SetInt64(v), true
	case uint:
		return new(big.Rat).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Rat).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Rat).SetUint64(v), true
	case *big.Int:
		return new(big.Rat).SetInt(v), true
	}
	return nil, false
}

func stringFromValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}
