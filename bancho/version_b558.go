package bancho

import "fmt"

// b558 inserts a per-slot team byte block between the slot-status block
// and the player-id block once ProtocolVersion reaches 4.
func readMatchB558(c *Codec) func(Stream) (any, error) {
	return func(s Stream) (any, error) {
		id, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		inProgress, err := ReadBool(s)
		if err != nil {
			return nil, err
		}
		matchType, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		mods, err := ReadU16(s)
		if err != nil {
			return nil, err
		}
		name, err := ReadString(s)
		if err != nil {
			return nil, err
		}
		password, err := ReadString(s)
		if err != nil {
			return nil, err
		}
		beatmapText, err := ReadString(s)
		if err != nil {
			return nil, err
		}
		beatmapID, err := ReadS32(s)
		if err != nil {
			return nil, err
		}
		beatmapChecksum, err := ReadString(s)
		if err != nil {
			return nil, err
		}
		slotSize := c.SlotSize
		statuses := make([]SlotStatus, slotSize)
		for i := range statuses {
			v, err := ReadU8(s)
			if err != nil {
				return nil, err
			}
			statuses[i] = SlotStatus(v)
		}
		slots := make([]MatchSlot, slotSize)
		for i, st := range statuses {
			slots[i].Status = st
		}
		if c.ProtocolVersion >= 4 {
			for i := range slots {
				team, err := ReadU8(s)
				if err != nil {
					return nil, err
				}
				slots[i].Team = SlotTeam(team)
			}
		}
		for i := range slots {
			if !slots[i].Status.HasPlayer() {
				continue
			}
			pid, err := ReadS32(s)
			if err != nil {
				return nil, err
			}
			slots[i].PlayerID = pid
		}
		hostID, err := ReadS32(s)
		if err != nil {
			return nil, err
		}
		m := Match{
			ID: uint16(id), InProgress: inProgress, Type: MatchType(matchType), Mods: Mods(mods),
			Name: name, Password: password, BeatmapText: beatmapText, BeatmapID: beatmapID,
			BeatmapChecksum: beatmapChecksum, Slots: slots, HostID: hostID,
		}
		freemod, err := ReadBool(s)
		if err != nil {
			return nil, err
		}
		m.FreeMod = freemod
		if freemod {
			for i := range m.Slots {
				v, err := ReadS32(s)
				if err != nil {
					return nil, err
				}
				m.Slots[i].Mods = Mods(v)
			}
		}
		mode, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		m.Mode = Mode(mode)
		if c.ProtocolVersion >= 3 {
			scoring, err := ReadU8(s)
			if err != nil {
				return nil, err
			}
			team, err := ReadU8(s)
			if err != nil {
				return nil, err
			}
			m.ScoringType = ScoringType(scoring)
			m.TeamType = TeamType(team)
		}
		return m, nil
	}
}

func writeMatchB558(c *Codec) func(Stream, any) ([]byte, error) {
	return func(s Stream, value any) ([]byte, error) {
		m, ok := value.(Match)
		if !ok {
			return nil, fmt.Errorf("%w: expected Match, got %T", ErrInvalidPacket, value)
		}
		ms := NewMemoryStream(nil)
		if err := WriteU8(ms, uint8(m.ID)); err != nil {
			return nil, err
		}
		if err := WriteBool(ms, m.InProgress); err != nil {
			return nil, err
		}
		if err := WriteU8(ms, uint8(m.Type)); err != nil {
			return nil, err
		}
		if err := WriteU16(ms, uint16(m.Mods)); err != nil {
			return nil, err
		}
		if err := WriteString(ms, m.Name); err != nil {
			return nil, err
		}
		if err := WriteString(ms, m.Password); err != nil {
			return nil, err
		}
		if err := WriteString(ms, m.BeatmapText); err != nil {
			return nil, err
		}
		if err := WriteS32(ms, m.BeatmapID); err != nil {
			return nil, err
		}
		if err := WriteString(ms, m.BeatmapChecksum); err != nil {
			return nil, err
		}
		slots := matchSlotsPadded(m.Slots, c.SlotSize)
		for _, slot := range slots {
			if err := WriteU8(ms, uint8(slot.Status)); err != nil {
				return nil, err
			}
		}
		if c.ProtocolVersion >= 4 {
			for _, slot := range slots {
				if err := WriteU8(ms, uint8(slot.Team)); err != nil {
					return nil, err
				}
			}
		}
		for _, slot := range slots {
			if !slot.Status.HasPlayer() {
				continue
			}
			if err := WriteS32(ms, slot.PlayerID); err != nil {
				return nil, err
			}
		}
		if err := WriteS32(ms, m.HostID); err != nil {
			return nil, err
		}
		if err := WriteBool(ms, m.FreeMod); err != nil {
			return nil, err
		}
		if m.FreeMod {
			for _, slot := range slots {
				if err := WriteS32(ms, int32(slot.Mods)); err != nil {
					return nil, err
				}
			}
		}
		if err := WriteU8(ms, uint8(m.Mode)); err != nil {
			return nil, err
		}
		if c.ProtocolVersion >= 3 {
			if err := WriteU8(ms, uint8(m.ScoringType)); err != nil {
				return nil, err
			}
			if err := WriteU8(ms, uint8(m.TeamType)); err != nil {
				return nil, err
			}
		}
		return ms.Bytes(), nil
	}
}

func buildB558(prev *Codec) *Codec {
	table := prev.table.clone()
	codec := newCodec(558, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter

	table[OsuMatchCreate] = KindOps{Read: readMatchB558(codec)}
	table[BanchoMatchNew] = KindOps{Write: writeMatchB558(codec)}
	table[BanchoMatchUpdate] = KindOps{Write: writeMatchB558(codec)}
	codec.table = table
	return codec
}
