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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gomove/ledger"
)

type addressFlags struct {
	flagset      *flag.FlagSet
	objectSeed   string
	resourceSeed string
}

func newAddressFlags() *addressFlags {
	f := &addressFlags{
		flagset: flag.NewFlagSet("address", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.objectSeed,
		"object-seed",
		"",
		"derive the object address for the given seed before printing",
	)
	f.flagset.StringVar(
		&f.resourceSeed,
		"resource-seed",
		"",
		"derive the resource account address for the given seed before printing",
	)
	return f
}

func runAddress(f *globalFlags) {
	addressFlags := newAddressFlags()
	err := addressFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(addressFlags.flagset.Args()) < 1 {
		fmt.Printf(
			"ERROR: you must specify an address in hex or bech32 form\n",
		)
		os.Exit(1)
	}
	address, err := ledger.NewAccAddress(addressFlags.flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if addressFlags.objectSeed != "" {
		address = ledger.ObjectAddressFromSeed(
			address,
			[]byte(addressFlags.objectSeed),
		)
	}
	if addressFlags.resourceSeed != "" {
		address = ledger.ResourceAddress(
			address,
			[]byte(addressFlags.resourceSeed),
		)
	}
	bech32Address, err := address.Bech32()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Hex:    %s\n", address.String())
	fmt.Printf("Short:  %s\n", address.ShortString())
	fmt.Printf("Bech32: %s\n", bech32Address)
}
