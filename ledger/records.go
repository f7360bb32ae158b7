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
	"github.com/blinklabs-io/gomove/bcs"
)

// Module upgrade policies as reported by the node
const (
	UpgradePolicyUnspecified = "UNSPECIFIED"
	UpgradePolicyCompatible  = "COMPATIBLE"
	UpgradePolicyImmutable   = "IMMUTABLE"
)

// ModuleId identifies a published module by owner address and name
type ModuleId struct {
	Address AccAddress
	Name    string
}

func NewModuleId(address AccAddress, name string) ModuleId {
	return ModuleId{
		Address: address,
		Name:    name,
	}
}

func (m ModuleId) String() string {
	return m.Address.ShortString() + "::" + m.Name
}

// MarshalBCS writes the address bytes followed by the length-prefixed name
func (m ModuleId) MarshalBCS(e *bcs.Encoder) error {
	if err := m.Address.MarshalBCS(e); err != nil {
		return err
	}
	return e.WriteString(m.Name)
}

// UnmarshalBCS reads the address bytes followed by the length-prefixed name
func (m *ModuleId) UnmarshalBCS(d *bcs.Decoder) error {
	if err := m.Address.UnmarshalBCS(d); err != nil {
		return err
	}
	name, err := d.ReadString()
	if err != nil {
		return err
	}
	m.Name = name
	return nil
}

// ModuleInfo is a published module record as returned by the REST API. The
// Abi field holds the module's ABI as a JSON document string
type ModuleInfo struct {
	Address       AccAddress `json:"address"`
	ModuleName    string     `json:"module_name"`
	Abi           string     `json:"abi"`
	RawBytes      []byte     `json:"raw_bytes"`
	UpgradePolicy string     `json:"upgrade_policy"`
}

func (m ModuleInfo) Id() ModuleId {
	return NewModuleId(m.Address, m.ModuleName)
}

// AccountInfo is the account record from the Cosmos auth endpoint
type AccountInfo struct {
	Address       string `json:"address"`
	PubKey        any    `json:"pub_key"`
	AccountNumber string `json:"account_number"`
	Sequence      string `json:"sequence"`
}

// Coin is a denominated token amount. Amounts are decimal strings since they
// can exceed 64 bits
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Pagination carries the Cosmos-style page cursor returned by list endpoints
type Pagination struct {
	NextKey []byte `json:"next_key"`
	Total   string `json:"total"`
}

// ViewRequest is the request body for executing a view function. Args are
// BCS-encoded argument values in base64, one per explicit parameter
type ViewRequest struct {
	Address      string   `json:"address"`
	ModuleName   string   `json:"module_name"`
	FunctionName string   `json:"function_name"`
	TypeArgs     []string `json:"type_args"`
	Args         []string `json:"args"`
}

// ViewResponse is the result of a view function execution. Data holds the
// function's return value as a JSON document string
type ViewResponse struct {
	Data    string      `json:"data"`
	Events  []ViewEvent `json:"events"`
	GasUsed string      `json:"gas_used"`
}

type ViewEvent struct {
	TypeTag string `json:"type_tag"`
	Data    string `json:"data"`
}
