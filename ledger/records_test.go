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
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/blinklabs-io/gomove/bcs"
)

func TestModuleIdBcs(t *testing.T) {
	id := NewModuleId(StdAddress, "dex")
	if id.String() != "0x1::dex" {
		t.Fatalf("did not get expected module id: %s", id.String())
	}
	encoded, err := bcs.Marshal(id)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expectedHex := "00000000000000000000000000000000" +
		"0000000000000000000000000000000103646578"
	if hex.EncodeToString(encoded) != expectedHex {
		t.Fatalf(
			"did not get expected encoding\n  got:    %s\n  wanted: %s",
			hex.EncodeToString(encoded),
			expectedHex,
		)
	}
	var decoded ModuleId
	if err := bcs.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if decoded != id {
		t.Fatalf("BCS round trip mismatch: got %s", decoded.String())
	}
}

func TestModuleInfoJson(t *testing.T) {
	data := `{
	  "address": "0x1",
	  "module_name": "dex",
	  "abi": "{\"address\":\"0x1\",\"name\":\"dex\"}",
	  "raw_bytes": "3q0=",
	  "upgrade_policy": "COMPATIBLE"
	}`
	var info ModuleInfo
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if info.Address != StdAddress {
		t.Fatalf("did not get expected address: %s", info.Address.String())
	}
	if info.Id().String() != "0x1::dex" {
		t.Fatalf("did not get expected module id: %s", info.Id().String())
	}
	// base64 []byte decoding comes with encoding/json
	if len(info.RawBytes) != 2 || info.RawBytes[0] != 0xde {
		t.Fatalf("did not get expected raw bytes: %x", info.RawBytes)
	}
	if info.UpgradePolicy != UpgradePolicyCompatible {
		t.Fatalf("did not get expected upgrade policy: %s", info.UpgradePolicy)
	}
}

func TestNewMsgExecute(t *testing.T) {
	msg := NewMsgExecute(
		"init1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqpqr5e3d",
		StdAddress,
		"dex",
		"swap",
		nil,
		[][]byte{{0x01}, {0xde, 0xad}},
	)
	if msg.Type != MsgExecuteTypeUrl {
		t.Fatalf("did not get expected type url: %s", msg.Type)
	}
	if msg.ModuleAddress != "0x1" {
		t.Fatalf("did not get expected module address: %s", msg.ModuleAddress)
	}
	if len(msg.Args) != 2 || msg.Args[0] != "AQ==" || msg.Args[1] != "3q0=" {
		t.Fatalf("did not get expected encoded args: %v", msg.Args)
	}
	// nil typeArgs serialize as an empty list, not null
	encoded, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, ok := decoded["type_args"].([]any); !ok {
		t.Fatalf("type_args did not serialize as a list: %s", encoded)
	}
}
