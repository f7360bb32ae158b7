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

package ledger

import (
	"errors"
	"fmt"
)

// InvalidAddressError indicates an account address with a bad length, charset,
// or encoding
type InvalidAddressError struct {
	Address string
	Message string
}

func (e InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid account address %q: %s", e.Address, e.Message)
}

// Sentinel error for address failures so callers can use errors.Is
var ErrInvalidAddress = errors.New("invalid account address")

func (InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}
