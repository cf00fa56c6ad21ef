/*
Copyright 2025 The Emerald Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/emeraldlang/emerald/go/rt/encoding"
	"github.com/emeraldlang/emerald/go/rt/log"
)

var (
	compatOptLeftContent  string
	compatOptRightContent string
)

func mustLookup(r *encoding.Registry, name string) *encoding.Encoding {
	enc := r.LookupByName(name)
	if enc == nil {
		log.Exitf("unknown encoding %q", name)
	}
	return enc
}

func runCompat(cmd *cobra.Command, args []string) {
	r := encoding.NewRegistry()
	left := mustLookup(r, args[0])
	right := mustLookup(r, args[1])

	var result *encoding.Encoding
	var err error
	if cmd.Flags().Changed("left-content") || cmd.Flags().Changed("right-content") {
		// With content, classification participates in the decision.
		a := encoding.NewValue([]byte(compatOptLeftContent), left)
		b := encoding.NewValue([]byte(compatOptRightContent), right)
		result, err = r.CheckCompatible(a, b)
	} else {
		result, err = r.CheckCompatibleEncodings(left, right)
	}
	if err != nil {
		log.Exitf("%v", err)
	}
	fmt.Println(result.Name())
}

func Compat() *cobra.Command {
	compatCmd := &cobra.Command{
		Use:   "compat <encoding> <encoding>",
		Short: "Resolves the encoding two operands would combine under, failing if they are incompatible",
		Args:  cobra.ExactArgs(2),
		Run:   runCompat,
	}

	compatCmd.Flags().StringVarP(
		&compatOptLeftContent,
		"left-content", "l",
		"",
		"Bytes carried by the first operand; without content the operand is treated as a bare encoding")
	compatCmd.Flags().StringVarP(
		&compatOptRightContent,
		"right-content", "r",
		"",
		"Bytes carried by the second operand; without content the operand is treated as a bare encoding")

	return compatCmd
}

var classifyOptEncoding string

func runClassify(cmd *cobra.Command, args []string) {
	r := encoding.NewRegistry()
	enc := mustLookup(r, classifyOptEncoding)

	var content []byte
	var err error
	if len(args) == 1 {
		content, err = os.ReadFile(args[0])
	} else {
		content, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Exitf("reading content: %v", err)
	}

	v := encoding.NewValue(content, enc)
	fmt.Println(v.CodeRange())
	if v.CodeRange() == encoding.CodeRangeBroken {
		os.Exit(1)
	}
}

func Classify() *cobra.Command {
	classifyCmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classifies content read from a file or stdin against an encoding",
		Long: "Classifies content read from a file or stdin against an encoding. " +
			"Prints 7-bit, valid, or broken, and exits nonzero for broken content.",
		Args: cobra.MaximumNArgs(1),
		Run:  runClassify,
	}

	classifyCmd.Flags().StringVarP(
		&classifyOptEncoding,
		"encoding", "e",
		"UTF-8",
		"The encoding to classify the content against")

	return classifyCmd
}
