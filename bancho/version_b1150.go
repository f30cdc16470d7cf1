package bancho

import "fmt"

// UserPresenceUpdate is the wire-level envelope b1150 introduces around a
// UserInfo: one BanchoUserStats packet now always states which slice of
// fields it carries via a leading Completeness byte, rather than always
// sending everything.
type UserPresenceUpdate struct {
	Info         UserInfo
	Completeness Completeness
}

func writeStatusB1150(s Stream, st UserStatus) error {
	hasBeatmap := st.Action != StatusUnknown && st.BeatmapID != 0
	if err := WriteU8(s, uint8(st.Action)); err != nil {
		return err
	}
	if err := WriteString(s, st.Text); err != nil {
		return err
	}
	if err := WriteU16(s, uint16(st.Mods)); err != nil {
		return err
	}
	if err := WriteBool(s, hasBeatmap); err != nil {
		return err
	}
	if !hasBeatmap {
		return nil
	}
	if err := WriteString(s, st.BeatmapChecksum); err != nil {
		return err
	}
	if err := WriteU8(s, uint8(st.Mode)); err != nil {
		return err
	}
	return WriteS32(s, st.BeatmapID)
}

func readStatusB1150(s Stream) (UserStatus, error) {
	action, err := ReadU8(s)
	if err != nil {
		return UserStatus{}, err
	}
	st := UserStatus{Action: Status(action)}
	if st.Text, err = ReadString(s); err != nil {
		return UserStatus{}, err
	}
	mods, err := ReadU16(s)
	if err != nil {
		return UserStatus{}, err
	}
	st.Mods = Mods(mods)
	hasBeatmap, err := ReadBool(s)
	if err != nil {
		return UserStatus{}, err
	}
	if !hasBeatmap {
		return st, nil
	}
	if st.BeatmapChecksum, err = ReadString(s); err != nil {
		return UserStatus{}, err
	}
	mode, err := ReadU8(s)
	if err != nil {
		return UserStatus{}, err
	}
	st.Mode = Mode(mode)
	if st.BeatmapID, err = ReadS32(s); err != nil {
		return UserStatus{}, err
	}
	return st, nil
}

func writeUserStatsB1150(s Stream, value any) ([]byte, error) {
	u, ok := value.(UserPresenceUpdate)
	if !ok {
		info, isInfo := value.(UserInfo)
		if !isInfo {
			return nil, fmt.Errorf("%w: expected UserPresenceUpdate, got %T", ErrInvalidPacket, value)
		}
		u = UserPresenceUpdate{Info: info, Completeness: CompletenessFull}
	}
	ms := NewMemoryStream(nil)
	if err := WriteU32(ms, uint32(u.Info.ID)); err != nil {
		return nil, err
	}
	if err := WriteU8(ms, uint8(u.Completeness)); err != nil {
		return nil, err
	}
	if u.Completeness != CompletenessStatusOnly {
		if err := WriteString(ms, u.Info.Name); err != nil {
			return nil, err
		}
		stats := UserStats{}
		if u.Info.Stats != nil {
			stats = *u.Info.Stats
		}
		if err := WriteU64(ms, uint64(stats.RankedScore)); err != nil {
			return nil, err
		}
		if err := WriteF32(ms, stats.Accuracy); err != nil {
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
	}
	if u.Completeness == CompletenessFull {
		presence := UserPresence{}
		if u.Info.Presence != nil {
			presence = *u.Info.Presence
		}
		if err := WriteU8(ms, uint8(presence.Timezone+24)); err != nil {
			return nil, err
		}
		if err := WriteU8(ms, presence.CountryIndex); err != nil {
			return nil, err
		}
		if err := WriteU8(ms, uint8(presence.Permissions)); err != nil {
			return nil, err
		}
		if err := WriteString(ms, presence.City); err != nil {
			return nil, err
		}
		// b1150 drops the legacy "_000.png" suffix: a bare id is the
		// avatar filename from this build on.
		if err := WriteString(ms, u.Info.AvatarFilename(false)); err != nil {
			return nil, err
		}
	}
	if u.Completeness != CompletenessStatistics {
		status := UserStatus{Action: StatusUnknown}
		if u.Info.Status != nil {
			status = *u.Info.Status
		}
		if err := writeStatusB1150(ms, status); err != nil {
			return nil, err
		}
	}
	return ms.Bytes(), nil
}

func readUserStatsB1150(s Stream) (any, error) {
	id, err := ReadU32(s)
	if err != nil {
		return nil, err
	}
	completeness, err := ReadU8(s)
	if err != nil {
		return nil, err
	}
	info := UserInfo{ID: int32(id)}
	comp := Completeness(completeness)
	if comp != CompletenessStatusOnly {
		name, err := ReadString(s)
		if err != nil {
			return nil, err
		}
		info.Name = name
		stats := &UserStats{}
		if stats.RankedScore, err = read64AsInt64(s); err != nil {
			return nil, err
		}
		if stats.Accuracy, err = ReadF32(s); err != nil {
			return nil, err
		}
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
		info.Stats = stats
	}
	if comp == CompletenessFull {
		tz, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		country, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		perms, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		city, err := ReadString(s)
		if err != nil {
			return nil, err
		}
		if _, err = ReadString(s); err != nil { // avatar_filename, derived
			return nil, err
		}
		info.Presence = &UserPresence{Timezone: int8(tz) - 24, CountryIndex: country, Permissions: Permissions(perms), City: city}
	}
	if comp != CompletenessStatistics {
		status, err := readStatusB1150(s)
		if err != nil {
			return nil, err
		}
		info.Status = &status
	}
	return UserPresenceUpdate{Info: info, Completeness: comp}, nil
}

func writeUserPresenceB1150(c *Codec, s Stream, info UserInfo) error {
	body, err := writeUserStatsB1150(NewMemoryStream(nil), UserPresenceUpdate{Info: info, Completeness: CompletenessFull})
	if err != nil {
		return err
	}
	opcode := c.Opcodes.ToWire(BanchoUserStats)
	return writeBody(s, c.Envelope, opcode, body, c.CompressWrites)
}

func buildB1150(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoUserStats] = KindOps{Read: readUserStatsB1150, Write: writeUserStatsB1150}
	table[OsuUserStatus] = KindOps{Read: func(s Stream) (any, error) { return readStatusB1150(s) }}

	codec := newCodec(1150, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = writeUserPresenceB1150
	return codec
}
