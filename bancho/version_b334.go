package bancho

import "fmt"

// b334 status layout: same shape as b282's, since Paused/StatsUpdate is a
// role carried by the action byte itself (aliased in enums.go), not a
// distinct wire encoding.

// readReplayFrameB334 switches from two booleans to the raw ButtonState
// byte plus legacy_byte (formerly the left-mouse boolean, now vestigial).
func readReplayFrameB334(s Stream) (ReplayFrame, error) {
	buttons, err := ReadU8(s)
	if err != nil {
		return ReplayFrame{}, err
	}
	legacy, err := ReadU8(s)
	if err != nil {
		return ReplayFrame{}, err
	}
	x, err := ReadF32(s)
	if err != nil {
		return ReplayFrame{}, err
	}
	y, err := ReadF32(s)
	if err != nil {
		return ReplayFrame{}, err
	}
	t, err := ReadS32(s)
	if err != nil {
		return ReplayFrame{}, err
	}
	return ReplayFrame{ButtonState: ButtonState(buttons), LegacyByte: legacy, MouseX: x, MouseY: y, Time: t}, nil
}

func writeReplayFrameB334(s Stream, f ReplayFrame) error {
	if err := WriteU8(s, uint8(f.ButtonState)); err != nil {
		return err
	}
	if err := WriteU8(s, f.LegacyByte); err != nil {
		return err
	}
	if err := WriteF32(s, f.MouseX); err != nil {
		return err
	}
	if err := WriteF32(s, f.MouseY); err != nil {
		return err
	}
	return WriteS32(s, f.Time)
}

func readSpectateFramesB334(s Stream) (any, error) {
	count, err := ReadU16(s)
	if err != nil {
		return nil, err
	}
	frames := make([]ReplayFrame, count)
	for i := range frames {
		if frames[i], err = readReplayFrameB334(s); err != nil {
			return nil, err
		}
	}
	action, err := ReadU8(s)
	if err != nil {
		return nil, err
	}
	bundle := ReplayFrameBundle{Action: ReplayAction(action), Frames: frames}
	if counter, ok := s.(ByteCounter); ok && counter.Remaining() > 0 {
		frame, err := readScoreFrameB294(s)
		if err != nil {
			return nil, err
		}
		bundle.ScoreFrame = &frame
	}
	return bundle, nil
}

func writeSpectateFramesB334(s Stream, value any) ([]byte, error) {
	b, ok := value.(ReplayFrameBundle)
	if !ok {
		return nil, fmt.Errorf("%w: expected ReplayFrameBundle, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteU16(ms, uint16(len(b.Frames))); err != nil {
		return nil, err
	}
	for _, f := range b.Frames {
		if err := writeReplayFrameB334(ms, f); err != nil {
			return nil, err
		}
	}
	if err := WriteU8(ms, uint8(b.Action)); err != nil {
		return nil, err
	}
	if b.ScoreFrame != nil {
		if err := writeScoreFrameB294(ms, *b.ScoreFrame); err != nil {
			return nil, err
		}
	}
	return ms.Bytes(), nil
}

// clampRankU16 applies the b334 rank clamp: a rank that doesn't fit a u16
// saturates at 65535 instead of wrapping.
func clampRankU16(rank uint32) uint16 {
	if rank > 65535 {
		return 65535
	}
	return uint16(rank)
}

// readMatchB334 and writeMatchB334 implement the first real Match codec:
// fixed id/mods widths, and the "slot statuses, then player ids for
// occupied slots" layout every later build keeps extending.
func readMatchB334(c *Codec) func(Stream) (any, error) {
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
			if !st.HasPlayer() {
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
		return Match{
			ID:              uint16(id),
			InProgress:      inProgress,
			Type:            MatchType(matchType),
			Mods:            Mods(mods),
			Name:            name,
			Password:        password,
			BeatmapText:     beatmapText,
			BeatmapID:       beatmapID,
			BeatmapChecksum: beatmapChecksum,
			Slots:           slots,
			HostID:          hostID,
		}, nil
	}
}

func writeMatchB334(c *Codec) func(Stream, any) ([]byte, error) {
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
		return ms.Bytes(), nil
	}
}

// matchSlotsPadded returns exactly n slots, truncating or padding with
// closed (status 0) slots as needed, so a caller's Match is never
// malformed merely by carrying the wrong slot count.
func matchSlotsPadded(slots []MatchSlot, n int) []MatchSlot {
	if len(slots) == n {
		return slots
	}
	out := make([]MatchSlot, n)
	copy(out, slots)
	return out
}

// writeUserStatsB334 narrows the rank field from u32 to u16, clamping
// rather than truncating so an overflowing rank reads back as the
// largest value the wire can carry instead of wrapping.
func writeUserStatsB334(s Stream, value any) ([]byte, error) {
	return writeUserStatsB334WithFlag(value, true)
}

func writeUserStatsB334WithFlag(value any, newstats bool) ([]byte, error) {
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
		if err := WriteU16(ms, clampRankU16(stats.Rank)); err != nil {
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

func readUserStatsB334(s Stream) (any, error) {
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
		rank, err := ReadU16(s)
		if err != nil {
			return nil, err
		}
		stats.Rank = uint32(rank)
		if _, err = ReadString(s); err != nil {
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

// writeUserPresenceB334 emits the same two-packet newstats=true/false
// sequence as b323, but through the rank-narrowed b334 field writer.
func writeUserPresenceB334(c *Codec, s Stream, info UserInfo) error {
	for _, newstats := range []bool{true, false} {
		body, err := writeUserStatsB334WithFlag(info, newstats)
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

func buildB334(prev *Codec) *Codec {
	table := prev.table.clone()
	table[OsuSpectateFrames] = KindOps{Read: readSpectateFramesB334}
	table[BanchoSpectateFrames] = KindOps{Write: writeSpectateFramesB334}
	table[BanchoUserStats] = KindOps{Read: readUserStatsB334, Write: writeUserStatsB334}

	codec := newCodec(334, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = writeUserPresenceB334

	readMatch := readMatchB334(codec)
	writeMatch := writeMatchB334(codec)
	table[OsuMatchCreate] = KindOps{Read: readMatch}
	table[BanchoMatchNew] = KindOps{Write: writeMatch}
	table[BanchoMatchUpdate] = KindOps{Write: writeMatch}
	codec.table = table
	return codec
}
