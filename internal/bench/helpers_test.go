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

package bench

import (
	"testing"

	"github.com/blinklabs-io/gomove/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDexModuleABI(t *testing.T) {
	mod := LoadDexModuleABI()
	require.NotNil(t, mod)
	assert.Equal(t, "0x1::dex", mod.Id())
	fn, err := mod.Resolve("swap")
	require.NoError(t, err)
	assert.Len(t, fn.Params, 4)
}

func TestSwapArgsEncode(t *testing.T) {
	mod := LoadDexModuleABI()
	encoded, err := abi.EncodeFunctionArgs(
		mod,
		"swap",
		SwapTypeArgs(),
		SwapArgs(),
	)
	require.NoError(t, err)
	// One encoded argument per explicit parameter
	assert.Len(t, encoded, 3)
}
