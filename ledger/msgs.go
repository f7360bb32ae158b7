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
	"encoding/base64"
)

const MsgExecuteTypeUrl = "/initia.move.v1.MsgExecute"

// MsgExecute is the transaction message that invokes an entry function. Args
// carry the BCS-encoded argument values in base64, one per explicit
// parameter, in declaration order
type MsgExecute struct {
	Type          string   `json:"@type"`
	Sender        string   `json:"sender"`
	ModuleAddress string   `json:"module_address"`
	ModuleName    string   `json:"module_name"`
	FunctionName  string   `json:"function_name"`
	TypeArgs      []string `json:"type_args"`
	Args          []string `json:"args"`
}

// NewMsgExecute builds an execute message from already-encoded argument
// bytes, converting each to its base64 transmission form
func NewMsgExecute(
	sender string,
	moduleAddress AccAddress,
	moduleName string,
	functionName string,
	typeArgs []string,
	args [][]byte,
) *MsgExecute {
	encodedArgs := make([]string, len(args))
	for i, arg := range args {
		encodedArgs[i] = base64.StdEncoding.EncodeToString(arg)
	}
	if typeArgs == nil {
		typeArgs = []string{}
	}
	return &MsgExecute{
		Type:          MsgExecuteTypeUrl,
		Sender:        sender,
		ModuleAddress: moduleAddress.ShortString(),
		ModuleName:    moduleName,
		FunctionName:  functionName,
		TypeArgs:      typeArgs,
		Args:          encodedArgs,
	}
}
