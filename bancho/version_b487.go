package bancho

import "fmt"

func writeProtocolNegotiationB487(s Stream, value any) ([]byte, error) {
	n, ok := value.(ProtocolNegotiation)
	if !ok {
		return nil, fmt.Errorf("%w: expected ProtocolNegotiation, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteS32(ms, n.Version); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

// buildB487 introduces ProtocolNegotiation; the codec's ProtocolVersion
// field is seeded by a Registry.SetProtocolVersion call driven by the
// value this packet carries, never by decoding it directly here (the
// value only has meaning after the caller observes the server's reply).
func buildB487(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoProtocolNegotiation] = KindOps{Write: writeProtocolNegotiationB487}

	codec := newCodec(487, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter
	return codec
}
