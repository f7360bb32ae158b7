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
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/gomove/ledger"
)

type moduleFlags struct {
	flagset *flag.FlagSet
	rawAbi  bool
}

func newModuleFlags() *moduleFlags {
	f := &moduleFlags{
		flagset: flag.NewFlagSet("module", flag.ExitOnError),
	}
	f.flagset.BoolVar(
		&f.rawAbi,
		"raw-abi",
		false,
		"print the raw ABI JSON document",
	)
	return f
}

func runModule(f *globalFlags) {
	moduleFlags := newModuleFlags()
	err := moduleFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(moduleFlags.flagset.Args()) < 2 {
		fmt.Printf(
			"ERROR: you must specify an account address and a module name\n",
		)
		os.Exit(1)
	}
	address, err := ledger.NewAccAddress(moduleFlags.flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	moduleName := moduleFlags.flagset.Arg(1)

	client := createClient(f)
	if moduleFlags.rawAbi {
		module, err := client.AccountModule(
			context.Background(),
			address,
			moduleName,
		)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(module.Abi)
		return
	}
	mod, err := client.ModuleABI(context.Background(), address, moduleName)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Module %s\n", mod.Id())
	if len(mod.ExposedFunctions) > 0 {
		fmt.Printf("\nFunctions:\n")
		for _, fn := range mod.ExposedFunctions {
			kind := fn.Visibility
			if fn.IsEntry {
				kind = kind + " entry"
			}
			if fn.IsView {
				kind = kind + " view"
			}
			generics := ""
			if len(fn.GenericTypeParams) > 0 {
				generics = fmt.Sprintf("<%d>", len(fn.GenericTypeParams))
			}
			fmt.Printf(
				"  [%s] %s%s(%s)\n",
				kind,
				fn.Name,
				generics,
				strings.Join(fn.Params, ", "),
			)
		}
	}
	if len(mod.Structs) > 0 {
		fmt.Printf("\nStructs:\n")
		for _, structDef := range mod.Structs {
			fmt.Printf("  %s\n", structDef.Name)
			for _, field := range structDef.Fields {
				fmt.Printf("    %s: %s\n", field.Name, field.Type)
			}
		}
	}
}
