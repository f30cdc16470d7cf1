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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lekuruu/chio-go/bancho"
)

var decodeAllFlag bool

func init() {
	RootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVar(&decodeAllFlag, "all", false, "keep decoding packets until the buffer is exhausted")
}

var decodeCmd = &cobra.Command{
	Use:   "decode <hex|file>",
	Short: "Decode one or more framed packets for --build",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ConfigureVerbosity()

		data, err := readHexOrFile(args[0])
		if err != nil {
			log.Fatalf("reading input: %v", err)
		}

		reg := bancho.NewRegistry()
		codec := reg.Select(rootBuildFlag)
		stream := bancho.NewMemoryStream(data)

		for {
			kind, value, err := codec.ReadPacket(stream)
			if err != nil {
				errLabel := colorize(color.New(color.FgRed), "decode error")
				fmt.Printf("%s: %v (code %d)\n", errLabel, err, bancho.Code(err))
				return
			}
			kindLabel := colorize(color.New(color.FgCyan, color.Bold), kind.String())
			fmt.Printf("%s\n%s\n", kindLabel, spew.Sdump(value))

			if !decodeAllFlag || stream.Remaining() == 0 {
				return
			}
		}
	},
}

func readHexOrFile(arg string) ([]byte, error) {
	if data, err := os.ReadFile(arg); err == nil {
		return data, nil
	}
	return hex.DecodeString(arg)
}
