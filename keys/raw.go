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

package keys

import (
	"github.com/blinklabs-io/gomove/ledger"

	"github.com/btcsuite/btcd/btcec/v2"
)

// RawKey wraps a bare secp256k1 private key
type RawKey struct {
	priv *btcec.PrivateKey
}

// NewRawKey returns a RawKey from a 32-byte private key scalar
func NewRawKey(privKey []byte) (*RawKey, error) {
	if len(privKey) != btcec.PrivKeyBytesLen {
		return nil, InvalidPrivateKeyError{Length: len(privKey)}
	}
	priv, _ := btcec.PrivKeyFromBytes(privKey)
	return &RawKey{
		priv: priv,
	}, nil
}

// GenerateRawKey returns a RawKey with a freshly generated private key
func GenerateRawKey() (*RawKey, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return &RawKey{
		priv: priv,
	}, nil
}

// Bytes returns the 32-byte private key scalar
func (k *RawKey) Bytes() []byte {
	return k.priv.Serialize()
}

func (k *RawKey) PubKey() []byte {
	return k.priv.PubKey().SerializeCompressed()
}

func (k *RawKey) AccAddress() ledger.AccAddress {
	// Cannot fail for a 20-byte hash payload
	addr, _ := pubKeyAccAddress(k.PubKey())
	return addr
}

func (k *RawKey) Bech32Address() (string, error) {
	return k.AccAddress().Bech32()
}

func (k *RawKey) Sign(message []byte) ([]byte, error) {
	return signCompact(k.priv, message), nil
}
