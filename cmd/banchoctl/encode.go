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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lekuruu/chio-go/bancho"
)

func init() {
	RootCmd.AddCommand(encodeCmd)
	encodeCmd.AddCommand(encodePingCmd)
	encodeCmd.AddCommand(encodeMessageCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build a framed packet for --build and print it as hex",
}

var encodePingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Encode a BanchoPing packet",
	Run: func(cmd *cobra.Command, args []string) {
		ConfigureVerbosity()
		emit(bancho.BanchoPing, nil)
	},
}

var (
	encodeMessageSender  string
	encodeMessageContent string
	encodeMessageTarget  string
)

var encodeMessageCmd = &cobra.Command{
	Use:   "message",
	Short: "Encode a BanchoMessage packet",
	Run: func(cmd *cobra.Command, args []string) {
		ConfigureVerbosity()
		emit(bancho.BanchoMessage, bancho.Message{
			Sender:  encodeMessageSender,
			Content: encodeMessageContent,
			Target:  encodeMessageTarget,
		})
	},
}

func init() {
	encodeMessageCmd.Flags().StringVar(&encodeMessageSender, "sender", "", "sender username")
	encodeMessageCmd.Flags().StringVar(&encodeMessageContent, "content", "", "message text")
	encodeMessageCmd.Flags().StringVar(&encodeMessageTarget, "target", "#osu", "channel name or recipient username")
}

func emit(kind bancho.PacketKind, value any) {
	reg := bancho.NewRegistry()
	codec := reg.Select(rootBuildFlag)

	stream := bancho.NewMemoryStream(nil)
	if err := codec.WritePacket(stream, kind, value); err != nil {
		log.Fatalf("encoding %s for build %d: %v", kind, rootBuildFlag, err)
	}
	fmt.Println(hex.EncodeToString(stream.Bytes()))
}
