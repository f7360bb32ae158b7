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
	"strings"

	"github.com/blinklabs-io/gomove/ledger"

	"github.com/jinzhu/copier"
)

// TypeKind identifies the variant held by a TypeTag
type TypeKind uint8

const (
	TypeKindInvalid TypeKind = iota
	TypeKindBool
	TypeKindU8
	TypeKindU16
	TypeKindU32
	TypeKindU64
	TypeKindU128
	TypeKindU256
	TypeKindAddress
	TypeKindSigner
	TypeKindVector
	TypeKindStruct
	TypeKindGeneric
	TypeKindReference
)

// TypeTag is a parsed MoveVM type signature. Which fields are meaningful
// depends on Kind: Elem for vectors and references, Mutable for references,
// Address/Module/Name/TypeArgs for structs, and Index for generic type
// parameters. A TypeTag tree is owned exclusively by the caller that parsed
// it and is never shared between calls
type TypeTag struct {
	Kind     TypeKind
	Elem     *TypeTag
	Mutable  bool
	Address  ledger.AccAddress
	Module   string
	Name     string
	TypeArgs []TypeTag
	Index    int
}

// String returns the type signature in its canonical textual form
func (t *TypeTag) String() string {
	switch t.Kind {
	case TypeKindBool:
		return "bool"
	case TypeKindU8:
		return "u8"
	case TypeKindU16:
		return "u16"
	case TypeKindU32:
		return "u32"
	case TypeKindU64:
		return "u64"
	case TypeKindU128:
		return "u128"
	case TypeKindU256:
		return "u256"
	case TypeKindAddress:
		return "address"
	case TypeKindSigner:
		return "signer"
	case TypeKindVector:
		return "vector<" + t.Elem.String() + ">"
	case TypeKindStruct:
		ret := t.Address.ShortString() + "::" + t.Module + "::" + t.Name
		if len(t.TypeArgs) > 0 {
			parts := make([]string, len(t.TypeArgs))
			for i := range t.TypeArgs {
				parts[i] = t.TypeArgs[i].String()
			}
			ret += "<" + strings.Join(parts, ", ") + ">"
		}
		return ret
	case TypeKindGeneric:
		return fmt.Sprintf("T%d", t.Index)
	case TypeKindReference:
		if t.Mutable {
			return "&mut " + t.Elem.String()
		}
		return "&" + t.Elem.String()
	}
	return "invalid"
}

// clone returns a deep copy of the tag tree
func (t *TypeTag) clone() (*TypeTag, error) {
	var ret TypeTag
	if err := copier.CopyWithOption(
		&ret,
		t,
		copier.Option{DeepCopy: true},
	); err != nil {
		return nil, err
	}
	return &ret, nil
}

// isSigner reports whether the tag is a signer parameter, directly or behind
// a reference
func (t *TypeTag) isSigner() bool {
	if t.Kind == TypeKindSigner {
		return true
	}
	return t.Kind == TypeKindReference && t.Elem != nil &&
		t.Elem.Kind == TypeKindSigner
}

// structKey returns the schema lookup key for a struct tag, without type
// arguments
func (t *TypeTag) structKey() string {
	return t.Address.ShortString() + "::" + t.Module + "::" + t.Name
}

// substituteGenerics replaces generic parameter placeholders in the tag tree
// with the concrete types supplied by the caller, in place
func (t *TypeTag) substituteGenerics(typeArgs []TypeTag) error {
	switch t.Kind {
	case TypeKindGeneric:
		if t.Index < 0 || t.Index >= len(typeArgs) {
			return UnresolvedGenericError{Index: t.Index}
		}
		tmp, err := typeArgs[t.Index].clone()
		if err != nil {
			return err
		}
		*t = *tmp
	case TypeKindVector, TypeKindReference:
		if t.Elem != nil {
			return t.Elem.substituteGenerics(typeArgs)
		}
	case TypeKindStruct:
		for i := range t.TypeArgs {
			if err := t.TypeArgs[i].substituteGenerics(typeArgs); err != nil {
				return err
			}
		}
	}
	return nil
}
