package bancho

import "fmt"

// b388 adds freemod: a bool after the host id, followed by a
// per-slot i32 mods list when set.
func readMatchB388(c *Codec) func(Stream) (any, error) {
	base := readMatchB334(c)
	return func(s Stream) (any, error) {
		raw, err := base(s)
		if err != nil {
			return nil, err
		}
		m := raw.(Match)
		freemod, err := ReadBool(s)
		if err != nil {
			return nil, err
		}
		m.FreeMod = freemod
		if freemod {
			for i := range m.Slots {
				mods, err := ReadS32(s)
				if err != nil {
					return nil, err
				}
				m.Slots[i].Mods = Mods(mods)
			}
		}
		return m, nil
	}
}

func writeMatchB388(c *Codec) func(Stream, any) ([]byte, error) {
	base := writeMatchB334(c)
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
		if err := WriteBool(ms, m.FreeMod); err != nil {
			return nil, err
		}
		if m.FreeMod {
			slots := matchSlotsPadded(m.Slots, c.SlotSize)
			for _, slot := range slots {
				if err := WriteS32(ms, int32(slot.Mods)); err != nil {
					return nil, err
				}
			}
		}
		return ms.Bytes(), nil
	}
}

func buildB388(prev *Codec) *Codec {
	table := prev.table.clone()
	codec := newCodec(388, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter

	table[OsuMatchCreate] = KindOps{Read: readMatchB388(codec)}
	table[BanchoMatchNew] = KindOps{Write: writeMatchB388(codec)}
	table[BanchoMatchUpdate] = KindOps{Write: writeMatchB388(codec)}
	codec.table = table
	return codec
}
