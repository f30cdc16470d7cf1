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

// Command banchosniff reassembles the Bancho TCP conversations in a pcap
// capture (or live interface) and decodes every packet with the codec
// for a chosen client build.
package main

import (
	"flag"
	"net/http"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/google/gopacket/tcpassembly"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	configFlag   = flag.String("config", "", "optional YAML file of flag defaults (overridden by any flag passed explicitly)")
	inputFlag    = flag.String("input", "", "pcap file to read; if empty, sniff -iface live")
	ifaceFlag    = flag.String("iface", "", "network interface to sniff live, when -input is empty")
	buildFlag    = flag.Int("build", 1817, "client build to decode packets against")
	portFlag     = flag.Int("port", 13381, "Bancho server TCP port")
	metricsFlag  = flag.String("metrics", ":9091", "address to serve /metrics on")
	verboseFlag  = flag.Bool("verbose", false, "verbose output")
	snapshotSize = 65535
)

func applyConfig() {
	if *configFlag == "" {
		return
	}
	cfg, err := readConfig(*configFlag)
	if err != nil {
		log.Fatalf("reading config %s: %v", *configFlag, err)
	}
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if !explicit["input"] && cfg.Input != "" {
		*inputFlag = cfg.Input
	}
	if !explicit["iface"] && cfg.Iface != "" {
		*ifaceFlag = cfg.Iface
	}
	if !explicit["build"] && cfg.Build != 0 {
		*buildFlag = cfg.Build
	}
	if !explicit["port"] && cfg.Port != 0 {
		*portFlag = cfg.Port
	}
	if !explicit["metrics"] && cfg.Metrics != "" {
		*metricsFlag = cfg.Metrics
	}
	if !explicit["verbose"] && cfg.Verbose {
		*verboseFlag = cfg.Verbose
	}
}

func main() {
	flag.Parse()
	applyConfig()
	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	go func() {
		http.Handle("/metrics", promhttp.Handler())
		log.Infof("serving metrics on %s", *metricsFlag)
		log.Warning(http.ListenAndServe(*metricsFlag, nil))
	}()

	handle, err := openHandle()
	if err != nil {
		log.Fatalf("opening capture: %v", err)
	}
	defer handle.Close()

	if err := handle.SetBPFFilter("tcp"); err != nil {
		log.Fatalf("setting BPF filter: %v", err)
	}

	streams := newStreamFactory(*buildFlag)
	pool := tcpassembly.NewStreamPool(streams)
	assembler := tcpassembly.NewAssembler(pool)

	packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
	for packet := range packetSource.Packets() {
		tcpLayer := packet.Layer(layers.LayerTypeTCP)
		if tcpLayer == nil {
			continue
		}
		tcp, _ := tcpLayer.(*layers.TCP)
		if int(tcp.SrcPort) != *portFlag && int(tcp.DstPort) != *portFlag {
			continue
		}
		assembler.AssembleWithTimestamp(packet.NetworkLayer().NetworkFlow(), tcp, packet.Metadata().Timestamp)
	}
	assembler.FlushAll()
	streams.wait()
}

func openHandle() (*pcap.Handle, error) {
	if *inputFlag != "" {
		return pcap.OpenOffline(*inputFlag)
	}
	return pcap.OpenLive(*ifaceFlag, int32(snapshotSize), true, pcap.BlockForever)
}
