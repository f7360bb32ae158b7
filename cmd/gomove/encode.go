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
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/gomove/abi"
	"github.com/blinklabs-io/gomove/ledger"
)

type encodeFlags struct {
	flagset   *flag.FlagSet
	abiFile   string
	typeArgs  string
	view      bool
	useBase64 bool
}

func newEncodeFlags() *encodeFlags {
	f := &encodeFlags{
		flagset: flag.NewFlagSet("encode", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.abiFile,
		"abi-file",
		"",
		"path to a module ABI JSON document to encode against instead of fetching one",
	)
	f.flagset.StringVar(
		&f.typeArgs,
		"type-args",
		"",
		"comma-separated type arguments for the function's generic type parameters",
	)
	f.flagset.BoolVar(
		&f.view,
		"view",
		false,
		"encode for a view function rather than an entry function",
	)
	f.flagset.BoolVar(
		&f.useBase64,
		"base64",
		false,
		"print base64 rather than hex",
	)
	return f
}

func runEncode(f *globalFlags) {
	encodeFlags := newEncodeFlags()
	err := encodeFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	args := encodeFlags.flagset.Args()

	var mod *abi.ModuleABI
	if encodeFlags.abiFile != "" {
		if len(args) < 1 {
			fmt.Printf("ERROR: you must specify a function name\n")
			os.Exit(1)
		}
		data, err := os.ReadFile(encodeFlags.abiFile)
		if err != nil {
			fmt.Printf("ERROR: failed to read ABI file: %s\n", err)
			os.Exit(1)
		}
		mod, err = abi.DecodeModuleABI(data)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	} else {
		if len(args) < 3 {
			fmt.Printf(
				"ERROR: you must specify an account address, a module name and a function name\n",
			)
			os.Exit(1)
		}
		address, err := ledger.NewAccAddress(args[0])
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		client := createClient(f)
		mod, err = client.ModuleABI(context.Background(), address, args[1])
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		args = args[2:]
	}
	functionName := args[0]
	functionArgs := []any{}
	if len(args) > 1 {
		// Numbers stay as json.Number to preserve full 64-bit and wider
		// integer values
		decoder := json.NewDecoder(strings.NewReader(args[1]))
		decoder.UseNumber()
		if err := decoder.Decode(&functionArgs); err != nil {
			fmt.Printf("ERROR: failed to parse JSON arguments: %s\n", err)
			os.Exit(1)
		}
	}
	var typeArgs []string
	if encodeFlags.typeArgs != "" {
		typeArgs = strings.Split(encodeFlags.typeArgs, ",")
	}

	var encoded [][]byte
	if encodeFlags.view {
		encoded, err = abi.EncodeViewFunctionArgs(
			mod,
			functionName,
			typeArgs,
			functionArgs,
		)
	} else {
		encoded, err = abi.EncodeFunctionArgs(
			mod,
			functionName,
			typeArgs,
			functionArgs,
		)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	for _, arg := range encoded {
		if encodeFlags.useBase64 {
			fmt.Printf("%s\n", base64.StdEncoding.EncodeToString(arg))
		} else {
			fmt.Printf("%x\n", arg)
		}
	}
}
