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

// Package keys provides secp256k1 signing keys for submitting execute
// messages: raw private keys and BIP39 mnemonic keys derived along the
// Cosmos BIP44 path. Signatures are 64-byte r||s compact signatures over the
// SHA-256 digest of the message.
package keys

import (
	"crypto/sha256"

	"github.com/blinklabs-io/gomove/ledger"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// SignatureLength is the length of a compact r||s signature
const SignatureLength = 64

// Key is a secp256k1 signing key
type Key interface {
	// PubKey returns the compressed 33-byte public key
	PubKey() []byte
	// AccAddress returns the account address derived from the public key
	AccAddress() ledger.AccAddress
	// Bech32Address returns the bech32 account form of the address
	Bech32Address() (string, error)
	// Sign returns the compact signature over the SHA-256 digest of the
	// message
	Sign(message []byte) ([]byte, error)
}

// pubKeyAccAddress derives the Cosmos-style account address from a
// compressed public key: ripemd160(sha256(pubkey)), zero-extended to the
// canonical width
func pubKeyAccAddress(pubKey []byte) (ledger.AccAddress, error) {
	return ledger.NewAccAddressFromBytes(btcutil.Hash160(pubKey))
}

func signCompact(priv *btcec.PrivateKey, message []byte) []byte {
	digest := sha256.Sum256(message)
	// Drop the recovery header; verifiers get the public key out of band
	compact := btcecdsa.SignCompact(priv, digest[:], true)
	return compact[1:]
}

// Verify reports whether signature is a valid compact signature of message
// under the given compressed public key
func Verify(pubKey []byte, message []byte, signature []byte) bool {
	if len(signature) != SignatureLength {
		return false
	}
	parsedPubKey, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(signature[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(signature[32:]); overflow {
		return false
	}
	digest := sha256.Sum256(message)
	return ecdsa.NewSignature(&r, &s).Verify(digest[:], parsedPubKey)
}
