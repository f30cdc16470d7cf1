package bancho

import "fmt"

// b323OpcodeMap drops the blanket ">50 shift by one" rule b282 used: from
// this build the only two special slots are IrcJoin at wire 11 and the
// newly introduced MatchChangeBeatmap at wire 50; everything else in
// 12..45 still shifts by one to make room for IrcJoin, but nothing above
// 45 shifts anymore (chio/clients/b323.py's convert_input_packet /
// convert_output_packet).
func b323OpcodeMap() OpcodeMap {
	toWire := func(k PacketKind) uint16 {
		if k == BanchoIrcJoin {
			return 11
		}
		if k == OsuMatchChangeBeatmap {
			return 50
		}
		v := uint16(k)
		if v >= 11 && v < 45 {
			return v + 1
		}
		return v
	}
	toKind := func(op uint16) (PacketKind, bool) {
		if op == 11 {
			return BanchoIrcJoin, true
		}
		if op == 50 {
			return OsuMatchChangeBeatmap, true
		}
		if op > 11 && op <= 45 {
			k := PacketKind(op - 1)
			return k, knownPacketKind(k)
		}
		k := PacketKind(op)
		return k, knownPacketKind(k)
	}
	return OpcodeMap{ToWire: toWire, ToKind: toKind}
}

// writeUserStatsB323 is the "presence optional + status always" shape:
// u32 id, bool newstats, and if true the name+stats+avatar+timezone+city
// block, followed unconditionally by the status update.
func writeUserStatsB323(s Stream, value any) ([]byte, error) {
	return writeUserStatsB323WithFlag(value, true)
}

func writeUserStatsB323WithFlag(value any, newstats bool) ([]byte, error) {
	u, ok := value.(UserInfo)
	if !ok {
		return nil, fmt.Errorf("%w: expected UserInfo, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteU32(ms, uint32(u.ID)); err != nil {
		return nil, err
	}
	if err := WriteBool(ms, newstats); err != nil {
		return nil, err
	}
	if newstats {
		if err := WriteString(ms, u.Name); err != nil {
			return nil, err
		}
		stats := UserStats{}
		if u.Stats != nil {
			stats = *u.Stats
		}
		if err := WriteU64(ms, uint64(stats.RankedScore)); err != nil {
			return nil, err
		}
		if err := WriteF64(ms, float64(stats.Accuracy)); err != nil {
			return nil, err
		}
		if err := WriteU32(ms, uint32(stats.Playcount)); err != nil {
			return nil, err
		}
		if err := WriteU64(ms, uint64(stats.TotalScore)); err != nil {
			return nil, err
		}
		if err := WriteU32(ms, stats.Rank); err != nil {
			return nil, err
		}
		if err := WriteString(ms, u.AvatarFilename(true)); err != nil {
			return nil, err
		}
		timezone := int8(0)
		city := ""
		if u.Presence != nil {
			timezone = u.Presence.Timezone
			city = u.Presence.City
		}
		if err := WriteU8(ms, uint8(timezone+24)); err != nil {
			return nil, err
		}
		if err := WriteString(ms, city); err != nil {
			return nil, err
		}
	}
	status := UserStatus{Action: StatusUnknown}
	if u.Status != nil {
		status = *u.Status
	}
	if err := writeStatusB282(ms, status); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

func readUserStatsB323(s Stream) (any, error) {
	id, err := ReadU32(s)
	if err != nil {
		return nil, err
	}
	newstats, err := ReadBool(s)
	if err != nil {
		return nil, err
	}
	info := UserInfo{ID: int32(id)}
	if newstats {
		name, err := ReadString(s)
		if err != nil {
			return nil, err
		}
		info.Name = name
		stats := &UserStats{}
		if stats.RankedScore, err = read64AsInt64(s); err != nil {
			return nil, err
		}
		acc, err := ReadF64(s)
		if err != nil {
			return nil, err
		}
		stats.Accuracy = float32(acc)
		pc, err := ReadU32(s)
		if err != nil {
			return nil, err
		}
		stats.Playcount = int32(pc)
		if stats.TotalScore, err = read64AsInt64(s); err != nil {
			return nil, err
		}
		if stats.Rank, err = ReadU32(s); err != nil {
			return nil, err
		}
		if _, err = ReadString(s); err != nil { // avatar_filename, derived not stored
			return nil, err
		}
		tz, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		city, err := ReadString(s)
		if err != nil {
			return nil, err
		}
		info.Stats = stats
		info.Presence = &UserPresence{Timezone: int8(tz) - 24, City: city}
	}
	status, err := readStatusB282(s)
	if err != nil {
		return nil, err
	}
	info.Status = &status
	return info, nil
}

func read64AsInt64(s Stream) (int64, error) {
	v, err := ReadU64(s)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// writeUserPresenceB323 emits two back-to-back BanchoUserStats packets:
// newstats=true then newstats=false, the trick b323 uses to seed a client
// that has never seen this user before.
func writeUserPresenceB323(c *Codec, s Stream, info UserInfo) error {
	for _, newstats := range []bool{true, false} {
		body, err := writeUserStatsB323WithFlag(info, newstats)
		if err != nil {
			return err
		}
		opcode := c.Opcodes.ToWire(BanchoUserStats)
		if err := writeBody(s, c.Envelope, opcode, body, c.CompressWrites); err != nil {
			return err
		}
	}
	return nil
}

func readMatchChangeBeatmapB323(s Stream) (any, error) {
	return ReadString(s)
}

// buildB323 also switches the envelope: from this build the body
// compression flag is explicit per-packet rather than the legacy
// always-gzip framing.
func buildB323(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoUserStats] = KindOps{Read: readUserStatsB323, Write: writeUserStatsB323}
	table[OsuMatchChangeBeatmap] = KindOps{Read: readMatchChangeBeatmapB323}

	codec := newCodec(323, EnvelopeModern, b323OpcodeMap(), table, prev.SlotSize)
	codec.presenceWriter = writeUserPresenceB323
	return codec
}
