/*
Copyright (c) Facebook, Inc. and its affiliates.

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

package main

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lekuruu/chio-go/bancho"
)

func init() {
	RootCmd.AddCommand(listBuildsCmd)
}

var listBuildsCmd = &cobra.Command{
	Use:   "list-builds",
	Short: "List every client build this tool can decode/encode",
	Run: func(cmd *cobra.Command, args []string) {
		ConfigureVerbosity()
		reg := bancho.NewRegistry()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Build", "Envelope", "Slot Size"})
		for _, b := range reg.Builds() {
			codec := reg.Select(b)
			envelope := "modern"
			if codec.Envelope == bancho.EnvelopeLegacy {
				envelope = "legacy"
			}
			table.Append([]string{strconv.Itoa(b), envelope, strconv.Itoa(codec.SlotSize)})
		}
		table.Render()
	},
}
