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

package gomove

// Network definitions
var (
	NetworkMainnet = Network{
		Name:    "mainnet",
		ChainId: "interwoven-1",
		ApiUrl:  "https://rest.initia.xyz",
	}
	NetworkTestnet = Network{
		Name:    "testnet",
		ChainId: "initiation-2",
		ApiUrl:  "https://rest.testnet.initia.xyz",
	}
	NetworkLocal = Network{
		Name:    "local",
		ChainId: "localinitia",
		ApiUrl:  "http://localhost:1317",
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkLocal,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByChainId returns a predefined network by chain ID
func NetworkByChainId(chainId string) Network {
	for _, network := range networks {
		if network.ChainId == chainId {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents an Initia network
type Network struct {
	Name    string
	ChainId string
	ApiUrl  string // base URL for the chain REST API
}

func (n Network) String() string {
	return n.Name
}
