package bancho

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/slices"
)

// Registry holds every registered build's Codec, sorted by build number,
// and answers the "pick a codec for this build" question the same way
// chio.py's select_client does: an exact match wins outright; otherwise
// fall back to the nearest registered build not newer than the requested
// one, or the oldest registered build if the request predates all of
// them.
type Registry struct {
	builds     []int
	codecs     map[int]*Codec
	knownKinds map[uint64][]PacketKind
}

// NewRegistry returns a Registry seeded with every build this package
// knows how to decode. Each call builds a fresh set of codecs from the
// derivation chain in registry_init.go.
func NewRegistry() *Registry {
	r := &Registry{codecs: make(map[int]*Codec), knownKinds: make(map[uint64][]PacketKind)}
	for _, b := range allBuilds() {
		r.register(b.build, b.codec)
	}
	return r
}

func (r *Registry) register(build int, codec *Codec) {
	if _, exists := r.codecs[build]; !exists {
		r.builds = append(r.builds, build)
	}
	r.codecs[build] = codec
	sort.Ints(r.builds)
}

// Select returns the Codec this registry considers correct for build,
// per the nearest-registered-predecessor rule. It never returns nil: a
// Registry built via NewRegistry always has at least one entry.
func (r *Registry) Select(build int) *Codec {
	if codec, ok := r.codecs[build]; ok {
		return codec
	}
	// slices.BinarySearch finds the insertion point for build in the
	// sorted list; builds[i-1] is then the nearest registered build
	// below the requested one, if any.
	i, _ := slices.BinarySearch(r.builds, build)
	switch {
	case i == 0:
		return r.codecs[r.builds[0]]
	default:
		return r.codecs[r.builds[i-1]]
	}
}

// SetProtocolVersion mutates the registered codec for build in place,
// seeding its ProtocolVersion after a BanchoProtocolNegotiation exchange
// (chio.py's set_protocol_version). It applies to any registered build,
// including builds before b487 that never receive such a reply; for an
// unregistered build number it is a no-op.
func (r *Registry) SetProtocolVersion(build int, version int) {
	if codec, ok := r.codecs[build]; ok {
		codec.ProtocolVersion = version
	}
}

// codecIdentity is a cheap stand-in for "which table did clone() produce":
// it hashes the codec's build number, envelope and table size, so every
// lookup that Select resolves to the same registered codec (an
// unregistered alias build such as b320 resolves to b296) shares one
// cached slice.
func codecIdentity(c *Codec) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%d:%d:%d", c.Build, c.Envelope, len(c.table)))
}

// KnownKinds returns every PacketKind build's codec has a table entry for,
// ascending by numeric value. The result is memoized by codec identity so
// repeated lookups against the same build on one Registry skip rebuilding
// the slice.
func (r *Registry) KnownKinds(build int) []PacketKind {
	codec := r.Select(build)
	key := codecIdentity(codec)
	if kinds, ok := r.knownKinds[key]; ok {
		return kinds
	}
	kinds := make([]PacketKind, 0, len(codec.table))
	for kind := range codec.table {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	r.knownKinds[key] = kinds
	return kinds
}

// Builds returns every registered build number, ascending.
func (r *Registry) Builds() []int {
	out := make([]int, len(r.builds))
	copy(out, r.builds)
	return out
}
