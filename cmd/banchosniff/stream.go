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
	"errors"
	"io"

	"github.com/eclesh/welford"
	"github.com/google/gopacket"
	"github.com/google/gopacket/tcpassembly"
	"github.com/google/gopacket/tcpassembly/tcpreader"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lekuruu/chio-go/bancho"
)

// streamFactory hands out one banchoStream per direction of every TCP
// connection tcpassembly sees, and tracks a running mean/variance of
// decoded payload sizes the way the teacher's c4u/clock package tracks
// clock offsets with the same welford accumulator.
type streamFactory struct {
	build int
	eg    errgroup.Group
	sizes *welford.Stats
}

func newStreamFactory(build int) *streamFactory {
	return &streamFactory{build: build, sizes: welford.New()}
}

func (f *streamFactory) New(netFlow, tcpFlow gopacket.Flow) tcpassembly.Stream {
	r := tcpreader.NewReaderStream()
	f.eg.Go(func() error {
		f.drain(netFlow, tcpFlow, &r)
		return nil
	})
	return &r
}

func (f *streamFactory) wait() {
	if err := f.eg.Wait(); err != nil {
		log.Warningf("stream factory: %v", err)
	}
}

func (f *streamFactory) drain(netFlow, tcpFlow gopacket.Flow, r io.Reader) {
	reg := bancho.NewRegistry()
	codec := reg.Select(f.build)
	stream := &readerStream{r: r}
	log.Debugf("%v -> %v: build %d implements %d packet kinds", netFlow, tcpFlow, f.build, len(reg.KnownKinds(f.build)))

	for {
		before := stream.read
		kind, _, err := codec.ReadPacket(stream)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			log.Debugf("%v -> %v: %v", netFlow, tcpFlow, err)
			continue
		}
		packetsDecoded.WithLabelValues(kind.String()).Inc()
		f.sizes.Add(float64(stream.read - before))
		log.Infof("%v -> %v: %s", netFlow, tcpFlow, kind)
	}
}

// readerStream adapts an io.Reader (tcpreader.ReaderStream) to the
// codec's Stream interface, counting bytes consumed so drain can feed
// per-packet wire sizes into the running mean/variance. Writes never
// happen on a capture-derived stream; Write is unused but required to
// satisfy the interface.
type readerStream struct {
	r    io.Reader
	read int
}

func (s *readerStream) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, err
	}
	s.read += n
	return buf, nil
}

func (s *readerStream) Write([]byte) error {
	return nil
}
