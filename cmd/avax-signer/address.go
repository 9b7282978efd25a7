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
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/goavalanche/crypto/secp256k1"
	"github.com/blinklabs-io/goavalanche/ledger/common"
)

type addressFlags struct {
	flagset *flag.FlagSet
	key     string
}

func newAddressFlags() *addressFlags {
	f := &addressFlags{
		flagset: flag.NewFlagSet("address", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.key,
		"key",
		"",
		"hex encoded private key",
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
	keyBytes, err := hex.DecodeString(addressFlags.key)
	if err != nil {
		fmt.Printf("ERROR: invalid key hex: %s\n", err)
		os.Exit(1)
	}
	key, err := secp256k1.NewPrivateKey(keyBytes)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	pub := key.PublicKey()
	addr := common.NewAddressFromPublicKey(pub)
	fmt.Printf("public key: %x\n", pub.Bytes())
	fmt.Printf("address: %s\n", addr.String())
}

func runParseAddress(f *globalFlags) {
	if len(f.flagset.Args()) < 2 {
		fmt.Printf("ERROR: you must specify an address\n")
		os.Exit(1)
	}
	addr, err := common.NewAddress(f.flagset.Arg(1))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("chain: %s\n", addr.Chain())
	fmt.Printf("hash: %s\n", addr.Hash().String())
}
