package bancho

import "fmt"

// b470 appends a per-match mode byte at the tail of the payload, after
// the freemod block.
func readMatchB470(c *Codec) func(Stream) (any, error) {
	base := readMatchB388(c)
	return func(s Stream) (any, error) {
		raw, err := base(s)
		if err != nil {
			return nil, err
		}
		m := raw.(Match)
		mode, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		m.Mode = Mode(mode)
		return m, nil
	}
}

func writeMatchB470(c *Codec) func(Stream, any) ([]byte, error) {
	base := writeMatchB388(c)
	return func(s Stream, value any) ([]byte, error) {
		m, ok := value.(Match)
		if !ok {
			return nil, fmt.Errorf("%w: expected Match, got %T", ErrInvalidPacket, value)
		}
		body, err := base(s, m)
		if err != nil {
			return nil, err
		}
		ms := NewMemoryStream(body)
		if err := WriteU8(ms, uint8(m.Mode)); err != nil {
			return nil, err
		}
		return ms.Bytes(), nil
	}
}

func buildB470(prev *Codec) *Codec {
	table := prev.table.clone()
	codec := newCodec(470, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter

	table[OsuMatchCreate] = KindOps{Read: readMatchB470(codec)}
	table[BanchoMatchNew] = KindOps{Write: writeMatchB470(codec)}
	table[BanchoMatchUpdate] = KindOps{Write: writeMatchB470(codec)}
	codec.table = table
	return codec
}
