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
	"errors"
	"fmt"
)

// ErrInvalidMnemonic indicates a mnemonic that fails BIP39 validation
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// InvalidPrivateKeyError indicates a private key with a bad length
type InvalidPrivateKeyError struct {
	Length int
}

func (e InvalidPrivateKeyError) Error() string {
	return fmt.Sprintf(
		"invalid private key length %d, expected %d",
		e.Length,
		32,
	)
}
