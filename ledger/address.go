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

// Package ledger provides the on-chain data types shared across the library:
// account addresses in their hex and bech32 forms, module and account records
// returned by the REST API, and the message containers used to submit encoded
// arguments.
package ledger

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/blinklabs-io/gomove/bcs"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/sha3"
)

const (
	// AccAddressLength is the canonical MoveVM address width in bytes
	AccAddressLength = 32

	// Bech32PrefixAccAddr is the human-readable prefix for account addresses
	Bech32PrefixAccAddr = "init"

	// Address derivation schemes appended to the hash input
	DeriveSchemeObjectFromSeed  = 0xFE
	DeriveSchemeResourceAccount = 0xFF
)

// AccAddress is a canonical 32-byte MoveVM account address. Cosmos-style
// 20-byte account addresses are carried in the low-order bytes with the
// high-order bytes zero
type AccAddress [AccAddressLength]byte

var (
	// ZeroAddress is the all-zero address 0x0
	ZeroAddress = AccAddress{}

	// StdAddress is 0x1, home of the framework modules
	StdAddress = AccAddress{AccAddressLength - 1: 0x01}
)

// NewAccAddress returns an AccAddress from either encoding: a hex string with
// or without a 0x prefix, or a bech32 string with the account prefix
func NewAccAddress(addr string) (AccAddress, error) {
	if strings.HasPrefix(addr, Bech32PrefixAccAddr+"1") {
		return NewAccAddressFromBech32(addr)
	}
	return NewAccAddressFromHex(addr)
}

// NewAccAddressFromHex returns an AccAddress from a hex string with or
// without a 0x prefix. Short forms such as "0x1" are accepted and left-padded
// to the canonical width
func NewAccAddressFromHex(addr string) (AccAddress, error) {
	hexPart := strings.TrimPrefix(strings.TrimPrefix(addr, "0x"), "0X")
	if hexPart == "" {
		return AccAddress{}, InvalidAddressError{
			Address: addr,
			Message: "empty hex string",
		}
	}
	if len(hexPart) > 2*AccAddressLength {
		return AccAddress{}, InvalidAddressError{
			Address: addr,
			Message: "hex string longer than 32 bytes",
		}
	}
	if len(hexPart)%2 != 0 {
		hexPart = "0" + hexPart
	}
	decoded, err := hex.DecodeString(hexPart)
	if err != nil {
		return AccAddress{}, InvalidAddressError{
			Address: addr,
			Message: "invalid hex character",
		}
	}
	var ret AccAddress
	copy(ret[AccAddressLength-len(decoded):], decoded)
	return ret, nil
}

// NewAccAddressFromBech32 returns an AccAddress from a bech32 account
// address. Both 20-byte and 32-byte payloads are accepted; the shorter form
// is zero-extended to the canonical width
func NewAccAddressFromBech32(addr string) (AccAddress, error) {
	hrp, data, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return AccAddress{}, InvalidAddressError{
			Address: addr,
			Message: err.Error(),
		}
	}
	if hrp != Bech32PrefixAccAddr {
		return AccAddress{}, InvalidAddressError{
			Address: addr,
			Message: "unexpected bech32 prefix " + hrp,
		}
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return AccAddress{}, InvalidAddressError{
			Address: addr,
			Message: err.Error(),
		}
	}
	if len(decoded) != 20 && len(decoded) != AccAddressLength {
		return AccAddress{}, InvalidAddressError{
			Address: addr,
			Message: "unexpected payload length",
		}
	}
	var ret AccAddress
	copy(ret[AccAddressLength-len(decoded):], decoded)
	return ret, nil
}

// NewAccAddressFromBytes returns an AccAddress from a raw 20-byte or 32-byte
// payload, zero-extending the shorter form
func NewAccAddressFromBytes(data []byte) (AccAddress, error) {
	if len(data) != 20 && len(data) != AccAddressLength {
		return AccAddress{}, InvalidAddressError{
			Address: hex.EncodeToString(data),
			Message: "unexpected payload length",
		}
	}
	var ret AccAddress
	copy(ret[AccAddressLength-len(data):], data)
	return ret, nil
}

// Bytes returns a copy of the address bytes
func (a AccAddress) Bytes() []byte {
	ret := make([]byte, AccAddressLength)
	copy(ret, a[:])
	return ret
}

// String returns the canonical fixed-width hex form with a 0x prefix
func (a AccAddress) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ShortString returns the hex form with leading zeros trimmed, e.g. "0x1"
func (a AccAddress) ShortString() string {
	trimmed := strings.TrimLeft(hex.EncodeToString(a[:]), "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return "0x" + trimmed
}

// Bech32 returns the bech32 account form. Addresses whose high-order twelve
// bytes are zero encode their 20-byte account payload; anything else encodes
// the full 32 bytes
func (a AccAddress) Bech32() (string, error) {
	payload := a[:]
	isAccountForm := true
	for _, b := range a[:AccAddressLength-20] {
		if b != 0 {
			isAccountForm = false
			break
		}
	}
	if isAccountForm {
		payload = a[AccAddressLength-20:]
	}
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(Bech32PrefixAccAddr, converted)
}

// MarshalBCS writes the address as 32 raw bytes with no length prefix
func (a AccAddress) MarshalBCS(e *bcs.Encoder) error {
	e.WriteFixedBytes(a[:])
	return nil
}

// UnmarshalBCS reads the address as 32 raw bytes
func (a *AccAddress) UnmarshalBCS(d *bcs.Decoder) error {
	tmp, err := d.ReadFixedBytes(AccAddressLength)
	if err != nil {
		return err
	}
	copy(a[:], tmp)
	return nil
}

func (a AccAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ShortString())
}

func (a *AccAddress) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	addr, err := NewAccAddress(tmp)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

func deriveAddress(source AccAddress, seed []byte, scheme byte) AccAddress {
	input := make([]byte, 0, AccAddressLength+len(seed)+1)
	input = append(input, source[:]...)
	input = append(input, seed...)
	input = append(input, scheme)
	return AccAddress(sha3.Sum256(input))
}

// ObjectAddressFromSeed returns the address of the object created by the
// source account with the given seed
func ObjectAddressFromSeed(source AccAddress, seed []byte) AccAddress {
	return deriveAddress(source, seed, DeriveSchemeObjectFromSeed)
}

// ResourceAddress returns the address of the resource account derived from
// the source account with the given seed
func ResourceAddress(source AccAddress, seed []byte) AccAddress {
	return deriveAddress(source, seed, DeriveSchemeResourceAccount)
}

// CoinMetadataAddress returns the address of the fungible asset metadata
// object for the given creator and symbol
func CoinMetadataAddress(creator AccAddress, symbol string) AccAddress {
	return ObjectAddressFromSeed(creator, []byte(symbol))
}
