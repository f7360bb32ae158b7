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
	"fmt"
	"math/big"

	"github.com/blinklabs-io/gomove/bcs"
	"github.com/blinklabs-io/gomove/ledger"
)

// Decode deserializes canonical BCS bytes into the normalized value form
// produced by Coerce, so that encoding and decoding round-trip. The whole
// input must be consumed: trailing bytes are an error. Structs with no known
// field schema cannot be decoded, since their layout is unknown
func (c *Coercer) Decode(tag *TypeTag, data []byte) (any, error) {
	d := bcs.NewDecoder(data)
	ret, err := c.decodeValue(d, tag, 0)
	if err != nil {
		return nil, err
	}
	if err := d.Done(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Coercer) decodeValue(
	d *bcs.Decoder,
	tag *TypeTag,
	depth int,
) (any, error) {
	if depth >= MaxValueDepth {
		return nil, ErrNestingTooDeep
	}
	switch tag.Kind {
	case TypeKindBool:
		return d.ReadBool()
	case TypeKindU8:
		return d.ReadU8()
	case TypeKindU16:
		return d.ReadU16()
	case TypeKindU32:
		return d.ReadU32()
	case TypeKindU64:
		return d.ReadU64()
	case TypeKindU128:
		return d.ReadU128()
	case TypeKindU256:
		return d.ReadU256()
	case TypeKindAddress:
		var addr ledger.AccAddress
		if err := addr.UnmarshalBCS(d); err != nil {
			return nil, err
		}
		return addr, nil
	case TypeKindVector:
		return c.decodeVector(d, tag, depth)
	case TypeKindStruct:
		return c.decodeStruct(d, tag, depth)
	case TypeKindGeneric:
		return nil, UnresolvedGenericError{Index: tag.Index}
	}
	return nil, TypeMismatchError{
		Type:    tag.String(),
		Message: "type cannot be decoded",
	}
}

func (c *Coercer) decodeVector(
	d *bcs.Decoder,
	tag *TypeTag,
	depth int,
) (any, error) {
	if tag.Elem == nil {
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Message: "vector missing element type",
		}
	}
	if tag.Elem.Kind == TypeKindU8 {
		return d.ReadBytes()
	}
	length, err := d.ReadLen()
	if err != nil {
		return nil, err
	}
	ret := make([]any, 0, length)
	for i := 0; i < length; i++ {
		elem, err := c.decodeValue(d, tag.Elem, depth+1)
		if err != nil {
			return nil, err
		}
		ret = append(ret, elem)
	}
	return ret, nil
}

func (c *Coercer) decodeStruct(
	d *bcs.Decoder,
	tag *TypeTag,
	depth int,
) (any, error) {
	switch tag.wellKnown() {
	case wellKnownString:
		return d.ReadString()
	case wellKnownOption:
		if len(tag.TypeArgs) != 1 {
			return nil, TypeMismatchError{
				Type:    tag.String(),
				Message: "option requires exactly one type argument",
			}
		}
		present, err := d.ReadU8()
		if err != nil {
			return nil, err
		}
		switch present {
		case 0:
			return nil, nil
		case 1:
			return c.decodeValue(d, &tag.TypeArgs[0], depth+1)
		}
		return nil, TypeMismatchError{
			Type:    tag.String(),
			Value:   present,
			Message: "invalid option tag byte",
		}
	case wellKnownObject:
		var addr ledger.AccAddress
		if err := addr.UnmarshalBCS(d); err != nil {
			return nil, err
		}
		return addr, nil
	case wellKnownFixedPoint32:
		return d.ReadU64()
	case wellKnownFixedPoint64:
		return d.ReadU128()
	case wellKnownBigUint, wellKnownBigDecimal:
		le, err := d.ReadBytes()
		if err != nil {
			return nil, err
		}
		return leBytesToBigInt(le), nil
	}
	if schema, ok := c.schemas[tag.structKey()]; ok {
		ret := make(map[string]any, len(schema.Fields))
		for _, field := range schema.Fields {
			fieldTag, err := c.fieldTag(tag, field)
			if err != nil {
				return nil, err
			}
			value, err := c.decodeValue(d, fieldTag, depth+1)
			if err != nil {
				return nil, err
			}
			ret[field.Name] = value
		}
		return ret, nil
	}
	return nil, fmt.Errorf("%s: %w", tag, ErrNoStructSchema)
}

func leBytesToBigInt(le []byte) *big.Int {
	be := make([]byte, len(le))
	for i, b := range le {
		be[len(le)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}
