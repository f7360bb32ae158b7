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
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
)

const (
	// Bip44Purpose is the BIP44 purpose field
	Bip44Purpose = 44

	// CoinType is the registered Cosmos coin type
	CoinType = 118
)

// MnemonicKey is a key derived from a BIP39 mnemonic along the Cosmos BIP44
// path m/44'/118'/account'/0/index
type MnemonicKey struct {
	RawKey
	mnemonic string
	account  uint32
	index    uint32
	coinType uint32
}

type MnemonicKeyOptionFunc func(*MnemonicKey)

// WithAccount specifies the BIP44 account field (default 0)
func WithAccount(account uint32) MnemonicKeyOptionFunc {
	return func(k *MnemonicKey) {
		k.account = account
	}
}

// WithIndex specifies the BIP44 address index field (default 0)
func WithIndex(index uint32) MnemonicKeyOptionFunc {
	return func(k *MnemonicKey) {
		k.index = index
	}
}

// WithCoinType specifies the BIP44 coin type field (default 118)
func WithCoinType(coinType uint32) MnemonicKeyOptionFunc {
	return func(k *MnemonicKey) {
		k.coinType = coinType
	}
}

// NewMnemonicKey derives a key from the provided BIP39 mnemonic with the
// provided options applied
func NewMnemonicKey(
	mnemonic string,
	options ...MnemonicKeyOptionFunc,
) (*MnemonicKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	k := &MnemonicKey{
		mnemonic: mnemonic,
		coinType: CoinType,
	}
	for _, option := range options {
		option(k)
	}
	seed := bip39.NewSeed(mnemonic, "")
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, err
	}
	for _, step := range []uint32{
		hdkeychain.HardenedKeyStart + Bip44Purpose,
		hdkeychain.HardenedKeyStart + k.coinType,
		hdkeychain.HardenedKeyStart + k.account,
		0,
		k.index,
	} {
		key, err = key.Derive(step)
		if err != nil {
			return nil, err
		}
	}
	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, err
	}
	k.priv = priv
	return k, nil
}

// GenerateMnemonic returns a fresh 24-word BIP39 mnemonic
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// Mnemonic returns the mnemonic the key was derived from
func (k *MnemonicKey) Mnemonic() string {
	return k.mnemonic
}
