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
	"strconv"
	"sync"

	"github.com/blinklabs-io/gomove/ledger"
)

// MaxTypeDepth is the maximum nesting depth of a type signature, matching
// the MoveVM limit on type tag nesting
const MaxTypeDepth = 8

var primitiveTypes = map[string]TypeKind{
	"bool":    TypeKindBool,
	"u8":      TypeKindU8,
	"u16":     TypeKindU16,
	"u32":     TypeKindU32,
	"u64":     TypeKindU64,
	"u128":    TypeKindU128,
	"u256":    TypeKindU256,
	"address": TypeKindAddress,
	"signer":  TypeKindSigner,
}

var (
	parseTypeCacheMutex sync.RWMutex
	parseTypeCache      = map[string]*TypeTag{}
)

// ParseTypeTag parses a type signature string such as "vector<u64>",
// "0x1::option::Option<address>", or "&signer" into a TypeTag tree. Parsed
// signatures are cached, and each call returns a private copy of the tree
// that the caller owns exclusively
func ParseTypeTag(sig string) (*TypeTag, error) {
	parseTypeCacheMutex.RLock()
	cached, ok := parseTypeCache[sig]
	parseTypeCacheMutex.RUnlock()
	if !ok {
		p := &typeParser{input: sig}
		parsed, err := p.parseTag(0)
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if p.pos < len(p.input) {
			return nil, TypeParseError{
				Input:    sig,
				Position: p.pos,
				Message:  "unexpected trailing characters",
			}
		}
		cached = parsed
		parseTypeCacheMutex.Lock()
		parseTypeCache[sig] = cached
		parseTypeCacheMutex.Unlock()
	}
	return cached.clone()
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) errorf(format string, args ...any) error {
	return TypeParseError{
		Input:    p.input,
		Position: p.pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (p *typeParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *typeParser) expect(c byte) error {
	p.skipSpaces()
	if p.peek() != c {
		return p.errorf("expected %q", string(c))
	}
	p.pos++
	return nil
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_'
}

func (p *typeParser) ident() string {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

// genericIndex matches a positional generic placeholder of the form T0..Tn
func genericIndex(name string) (int, bool) {
	if len(name) < 2 || name[0] != 'T' {
		return 0, false
	}
	idx, err := strconv.Atoi(name[1:])
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

func (p *typeParser) parseTag(depth int) (*TypeTag, error) {
	if depth >= MaxTypeDepth {
		return nil, p.errorf("maximum type nesting depth exceeded")
	}
	p.skipSpaces()
	if p.peek() == '&' {
		p.pos++
		mutable := false
		save := p.pos
		if p.ident() == "mut" {
			mutable = true
		} else {
			p.pos = save
		}
		inner, err := p.parseTag(depth + 1)
		if err != nil {
			return nil, err
		}
		return &TypeTag{
			Kind:    TypeKindReference,
			Elem:    inner,
			Mutable: mutable,
		}, nil
	}
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected a type")
	}
	if kind, ok := primitiveTypes[name]; ok {
		return &TypeTag{Kind: kind}, nil
	}
	if name == "vector" {
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		elem, err := p.parseTag(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return &TypeTag{Kind: TypeKindVector, Elem: elem}, nil
	}
	if idx, ok := genericIndex(name); ok {
		return &TypeTag{Kind: TypeKindGeneric, Index: idx}, nil
	}
	// Anything else must be a qualified struct path
	return p.parseStructTag(name, depth)
}

func (p *typeParser) parseStructTag(
	addrPart string,
	depth int,
) (*TypeTag, error) {
	addr, err := ledger.NewAccAddressFromHex(addrPart)
	if err != nil {
		return nil, p.errorf("unknown type %q", addrPart)
	}
	if err := p.expectSeparator(); err != nil {
		return nil, err
	}
	moduleName := p.ident()
	if moduleName == "" {
		return nil, p.errorf("expected a module name")
	}
	if err := p.expectSeparator(); err != nil {
		return nil, err
	}
	structName := p.ident()
	if structName == "" {
		return nil, p.errorf("expected a struct name")
	}
	ret := &TypeTag{
		Kind:    TypeKindStruct,
		Address: addr,
		Module:  moduleName,
		Name:    structName,
	}
	p.skipSpaces()
	if p.peek() != '<' {
		return ret, nil
	}
	p.pos++
	for {
		arg, err := p.parseTag(depth + 1)
		if err != nil {
			return nil, err
		}
		ret.TypeArgs = append(ret.TypeArgs, *arg)
		p.skipSpaces()
		switch p.peek() {
		case ',':
			p.pos++
		case '>':
			p.pos++
			return ret, nil
		default:
			return nil, p.errorf("expected ',' or '>'")
		}
	}
}

func (p *typeParser) expectSeparator() error {
	p.skipSpaces()
	if p.pos+1 >= len(p.input) || p.input[p.pos] != ':' ||
		p.input[p.pos+1] != ':' {
		return p.errorf("expected '::'")
	}
	p.pos += 2
	return nil
}
