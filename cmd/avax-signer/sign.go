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
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/goavalanche/assembler"
	"github.com/blinklabs-io/goavalanche/description"
	"github.com/blinklabs-io/goavalanche/ledger/avm"
	"github.com/blinklabs-io/goavalanche/signer"
)

type signFlags struct {
	flagset *flag.FlagSet
	input   string
	format  string
	sort    bool
}

func newSignFlags() *signFlags {
	f := &signFlags{
		flagset: flag.NewFlagSet("sign", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.input,
		"input",
		"",
		"path to the signing request",
	)
	f.flagset.StringVar(
		&f.format,
		"format",
		"json",
		"format of the signing request (json or cbor)",
	)
	f.flagset.BoolVar(
		&f.sort,
		"sort",
		false,
		"sort inputs and outputs into canonical order before signing",
	)
	return f
}

func runSign(f *globalFlags, logger *slog.Logger) {
	signFlags := newSignFlags()
	err := signFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if signFlags.input == "" {
		fmt.Printf("ERROR: you must specify -input\n")
		os.Exit(1)
	}
	data, err := os.ReadFile(signFlags.input)
	if err != nil {
		fmt.Printf("ERROR: failed to read input: %s\n", err)
		os.Exit(1)
	}
	var input *description.SigningInput
	switch signFlags.format {
	case "json":
		input, err = description.NewSigningInputFromJSON(bytes.NewReader(data))
	case "cbor":
		input, err = description.NewSigningInputFromCbor(data)
	default:
		fmt.Printf("ERROR: unknown input format: %s\n", signFlags.format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	keys, err := signer.PrivateKeys(input.PrivateKeys)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	tx, err := assembler.Transaction(input.InputTx)
	if err != nil {
		logger.Debug(
			"failed to assemble transaction",
			"kind", input.InputTx.Kind().String(),
			"error", err,
		)
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if signFlags.sort {
		sortTransaction(tx)
	}
	signedTx, err := signer.SignedTransaction(keys, tx)
	if err != nil {
		logger.Debug("failed to sign transaction", "error", err)
		fmt.Printf("ERROR: transaction could not be signed: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("id: %s\n", signedTx.ID().String())
	fmt.Printf("tx: %s\n", hex.EncodeToString(signedTx.Bytes()))
}

// sortTransaction puts the inputs and outputs of tx into canonical order
func sortTransaction(tx avm.UnsignedTx) {
	base := tx.Base()
	avm.SortInputs(base.Inputs)
	avm.SortOutputs(base.Outputs)
	switch t := tx.(type) {
	case *avm.ExportTx:
		avm.SortOutputs(t.ExportedOutputs)
	case *avm.ImportTx:
		avm.SortInputs(t.ImportedInputs)
	}
}
