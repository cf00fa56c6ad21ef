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

// Package cmd holds the subcommands of encodingsctl, a command line tool
// for inspecting the runtime's character encoding table and probing its
// compatibility rules.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/emeraldlang/emerald/go/rt/encoding"
	"github.com/emeraldlang/emerald/go/rt/log"
)

func Main() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:  "encodingsctl",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(cmd.Flags())
		},
		Run: func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}

	log.RegisterFlags(rootCmd.PersistentFlags())
	encoding.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(List())
	rootCmd.AddCommand(Aliases())
	rootCmd.AddCommand(Defaults())
	rootCmd.AddCommand(Compat())
	rootCmd.AddCommand(Classify())

	return rootCmd
}
