package bancho

import "fmt"

// writeUserStatsB1700 adds longitude/latitude f32 fields into the Full
// presence block, right after permissions and before city.
func writeUserStatsB1700(s Stream, value any) ([]byte, error) {
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
		if err := WriteF32(ms, presence.Longitude); err != nil {
			return nil, err
		}
		if err := WriteF32(ms, presence.Latitude); err != nil {
			return nil, err
		}
		if err := WriteString(ms, presence.City); err != nil {
			return nil, err
		}
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

func readUserStatsB1700(s Stream) (any, error) {
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
		longitude, err := ReadF32(s)
		if err != nil {
			return nil, err
		}
		latitude, err := ReadF32(s)
		if err != nil {
			return nil, err
		}
		city, err := ReadString(s)
		if err != nil {
			return nil, err
		}
		if _, err = ReadString(s); err != nil {
			return nil, err
		}
		info.Presence = &UserPresence{
			Timezone: int8(tz) - 24, CountryIndex: country, Permissions: Permissions(perms),
			Longitude: longitude, Latitude: latitude, City: city,
		}
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

func writeUserPresenceB1700(c *Codec, s Stream, info UserInfo) error {
	body, err := writeUserStatsB1700(NewMemoryStream(nil), UserPresenceUpdate{Info: info, Completeness: CompletenessFull})
	if err != nil {
		return err
	}
	opcode := c.Opcodes.ToWire(BanchoUserStats)
	return writeBody(s, c.Envelope, opcode, body, c.CompressWrites)
}

func buildB1700(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoUserStats] = KindOps{Read: readUserStatsB1700, Write: writeUserStatsB1700}

	codec := newCodec(1700, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = writeUserPresenceB1700
	return codec
}
