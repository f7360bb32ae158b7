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
	"time"

	gomove "github.com/blinklabs-io/gomove"
)

type globalFlags struct {
	flagset *flag.FlagSet
	url     string
	network string
	timeout time.Duration
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.url,
		"url",
		"",
		"base URL of the node REST API. this overrides the -network option",
	)
	f.flagset.StringVar(
		&f.network,
		"network",
		"mainnet",
		"specifies network to query",
	)
	f.flagset.DurationVar(
		&f.timeout,
		"timeout",
		30*time.Second,
		"per-request timeout",
	)
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "module":
			runModule(f)
		case "encode":
			runEncode(f)
		case "address":
			runAddress(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf("You must specify a subcommand (module, encode or address)\n")
		os.Exit(1)
	}
}

func createClient(f *globalFlags) *gomove.Client {
	options := []gomove.ClientOptionFunc{
		gomove.WithTimeout(f.timeout),
	}
	if f.url != "" {
		options = append(options, gomove.WithUrl(f.url))
	} else {
		network := gomove.NetworkByName(f.network)
		if network == gomove.NetworkInvalid {
			fmt.Printf("Invalid network specified: %s\n", f.network)
			os.Exit(1)
		}
		options = append(options, gomove.WithNetwork(network))
	}
	return gomove.NewClient(options...)
}
