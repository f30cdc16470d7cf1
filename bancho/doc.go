// Package bancho implements a versioned codec for the Bancho client/server
// protocol: the wire format historical osu! clients and servers exchange.
//
// The package is organized the way protocol/ptp/protocol mirrors IEEE 1588:
// primitives and the domain model are hand-rolled against encoding/binary
// equivalents (here: little-endian fixed-width values, ULEB128, and
// length-prefixed strings), and each historical client build gets its own
// Codec built by layering small deltas over its predecessor's Table.
//
// The package never logs, never retries, and holds no state beyond a
// Codec's ProtocolVersion and SlotSize fields. Transport, authentication,
// and persistence are the caller's concern.
package bancho
