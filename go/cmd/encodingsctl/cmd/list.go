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
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/emeraldlang/emerald/go/rt/encoding"
)

func runList(cmd *cobra.Command, args []string) {
	r := encoding.NewRegistry()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Index", "Name", "ASCII-compatible", "Dummy"})
	table.SetAutoFormatHeaders(false)
	for _, enc := range r.List() {
		table.Append([]string{
			fmt.Sprintf("%d", enc.Index()),
			enc.Name(),
			fmt.Sprintf("%v", enc.IsASCIICompatible()),
			fmt.Sprintf("%v", enc.IsDummy()),
		})
	}
	table.Render()
}

func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists all known encodings in index order",
		Args:  cobra.NoArgs,
		Run:   runList,
	}
}

func runAliases(cmd *cobra.Command, args []string) {
	r := encoding.NewRegistry()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Alias", "Encoding"})
	table.SetAutoFormatHeaders(false)
	r.EachAlias(func(alias string, target *encoding.Encoding) bool {
		table.Append([]string{alias, target.Name()})
		return true
	})
	table.Render()
}

func Aliases() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "Lists all encoding aliases and the encodings they resolve to",
		Args:  cobra.NoArgs,
		Run:   runAliases,
	}
}

func runDefaults(cmd *cobra.Command, args []string) {
	r := encoding.NewRegistry()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Slot", "Encoding"})
	table.SetAutoFormatHeaders(false)
	for _, slot := range []string{"external", "internal", "locale", "filesystem"} {
		enc, err := r.DefaultByName(slot)
		name := "(unset)"
		if err == nil && enc != nil {
			name = enc.Name()
		}
		table.Append([]string{slot, name})
	}
	table.Render()
}

func Defaults() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Shows the default encoding slots",
		Args:  cobra.NoArgs,
		Run:   runDefaults,
	}
}
