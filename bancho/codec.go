package bancho

import (
	"fmt"
)

// KindOps is one PacketKind's read and write functions for a particular
// build. A nil field means this build's table doesn't carry that side:
// ReadPacket on a kind with a nil Read is ErrInvalidPacket (a client
// packet this build never learned to parse), while WritePacket on a kind
// with a nil Write is a silent no-op (a server packet this build simply
// never emits, matching write_packet's "packet_writer is None: return"
// behavior in every client*.py file).
type KindOps struct {
	Read  func(s Stream) (any, error)
	Write func(s Stream, value any) ([]byte, error)
}

// Table maps every PacketKind a build implements to its codec functions.
// A build's Table is built by cloning its predecessor's Table and
// overriding only the entries that changed, never by Go-level struct
// embedding: the derivation chain described by the protocol is a table of
// function tables, not a class hierarchy.
type Table map[PacketKind]KindOps

// clone returns a shallow copy of t, safe to mutate without affecting t.
func (t Table) clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// OpcodeMap remaps between a PacketKind and its build-specific numeric
// wire opcode. Builds before b20121224 renumber opcodes relative to the
// canonical modern table (see the IrcJoin/MatchChangeBeatmap handling in
// each version file); modern builds use the identity map.
type OpcodeMap struct {
	ToWire  func(PacketKind) uint16
	ToKind  func(uint16) (PacketKind, bool)
}

func identityOpcodeMap() OpcodeMap {
	return OpcodeMap{
		ToWire: func(k PacketKind) uint16 { return uint16(k) },
		ToKind: func(op uint16) (PacketKind, bool) {
			k := PacketKind(op)
			return k, knownPacketKind(k)
		},
	}
}

// Codec encodes and decodes packets for exactly one client build.
// ProtocolVersion and SlotSize are the only fields a caller mutates after
// construction: ProtocolVersion is seeded by a BanchoProtocolNegotiation
// reply (builds >= b487) and changes a handful of later builds' wire
// shapes (match scoring/team bytes at protocol_version 3/4, and b20140528's
// 16-slot matches at protocol_version 19 via matchSlotCount, which leaves
// SlotSize at 8). Every other field
// is fixed at registration time and safe to share across connections.
type Codec struct {
	Build    int
	Envelope EnvelopeKind
	Opcodes  OpcodeMap
	table    Table

	ProtocolVersion int
	SlotSize        int

	// MaxBodySize caps a decoded packet body; 0 disables the cap.
	MaxBodySize uint32

	// CompressWrites controls the modern envelope's compression_flag on
	// encode. Legacy-envelope builds ignore this (they always compress).
	// b1800 turns it off for good; builds 323-1799 default it on.
	CompressWrites bool

	// presenceWriter overrides how a full UserInfo becomes one or more
	// BanchoUserStats packets. b323 through b634 emit two back-to-back
	// (newstats=true then false) to seed a client that has never seen the
	// user before; b1150 and b1700 emit one; b1788 onward emits one
	// BanchoUserPresence plus one BanchoUserStats. nil means "emit one packet via
	// the table's ordinary BanchoUserStats writer".
	presenceWriter func(c *Codec, s Stream, info UserInfo) error
}

// newCodec constructs a Codec for build, wiring its table and envelope
// kind. Per-build constructors (buildBXXX) call this each time
// NewRegistry walks the derivation chain.
func newCodec(build int, envelope EnvelopeKind, opcodes OpcodeMap, table Table, slotSize int) *Codec {
	return &Codec{
		Build:          build,
		Envelope:       envelope,
		Opcodes:        opcodes,
		table:          table,
		SlotSize:       slotSize,
		CompressWrites: envelope == EnvelopeModern,
	}
}

// ReadPacket decodes exactly one packet from s: envelope, opcode remap,
// per-kind body decode. An opcode this build doesn't map to any
// PacketKind, or a PacketKind whose table entry has no Read function, is
// ErrInvalidPacket.
func (c *Codec) ReadPacket(s Stream) (PacketKind, any, error) {
	h, err := readHeader(s, c.Envelope)
	if err != nil {
		return 0, nil, err
	}
	kind, ok := c.Opcodes.ToKind(h.opcode)
	if !ok {
		return 0, nil, fmt.Errorf("%w: unknown opcode %d for build %d", ErrInvalidPacket, h.opcode, c.Build)
	}
	if !kind.IsClientPacket() {
		return 0, nil, fmt.Errorf("%w: packet %s is not a client packet", ErrInvalidPacket, kind)
	}
	ops, ok := c.table[kind]
	if !ok || ops.Read == nil {
		return 0, nil, fmt.Errorf("%w: build %d does not implement %s", ErrInvalidPacket, c.Build, kind)
	}
	body, err := readBody(s, h.bodyLength, h.compressed, c.MaxBodySize)
	if err != nil {
		return 0, nil, err
	}
	value, err := ops.Read(NewMemoryStream(body))
	if err != nil {
		return 0, nil, err
	}
	return kind, value, nil
}

// WritePacket encodes one packet to s. Writing a kind this build's table
// has no Write function for is a silent no-op, mirroring every client's
// write_packet: "if not packet_writer: return". Writing a kind that isn't
// a server packet is ErrInvalidPacket.
func (c *Codec) WritePacket(s Stream, kind PacketKind, value any) error {
	if !kind.IsServerPacket() {
		return fmt.Errorf("%w: packet %s is not a server packet", ErrInvalidPacket, kind)
	}
	ops, ok := c.table[kind]
	if !ok || ops.Write == nil {
		return nil
	}
	body, err := ops.Write(NewMemoryStream(nil), value)
	if err != nil {
		return err
	}
	opcode := c.Opcodes.ToWire(kind)
	compressed := c.Envelope == EnvelopeLegacy || c.CompressWrites
	return writeBody(s, c.Envelope, opcode, body, compressed)
}

// matchSlotCount is the number of slots a Match packet carries for this
// codec's current ProtocolVersion. b20140528 doubles SlotSize from 8 to
// 16 once protocol_version reaches 19; every earlier build's fixed
// SlotSize already covers its own case via the plain fallthrough.
func (c *Codec) matchSlotCount() int {
	if c.ProtocolVersion >= 19 {
		return 16
	}
	return c.SlotSize
}

// WriteUserPresence writes info as whatever number of BanchoUserStats
// packets this build expects a presence to be split across.
func (c *Codec) WriteUserPresence(s Stream, info UserInfo) error {
	if c.presenceWriter != nil {
		return c.presenceWriter(c, s, info)
	}
	return c.WritePacket(s, BanchoUserStats, info)
}
