package bancho

import "fmt"

// encodeUserID negates a user id to signal an IRC-bridge user, the
// scheme that replaces the legacy dedicated IrcJoin packet from this
// build on.
func encodeUserID(id int32, isIRC bool) int32 {
	if isIRC {
		return -id
	}
	return id
}

func decodeUserID(wire int32) (id int32, isIRC bool) {
	if wire < 0 {
		return -wire, true
	}
	return wire, false
}

// writeUserStatsB1788 is the stats-only packet this build splits out of
// the combined presence+stats shape.
func writeUserStatsB1788(s Stream, value any) ([]byte, error) {
	u, ok := value.(UserInfo)
	if !ok {
		return nil, fmt.Errorf("%w: expected UserInfo, got %T", ErrInvalidPacket, value)
	}
	isIRC := u.Presence != nil && u.Presence.IsIRC
	ms := NewMemoryStream(nil)
	if err := WriteS32(ms, encodeUserID(u.ID, isIRC)); err != nil {
		return nil, err
	}
	stats := UserStats{}
	if u.Stats != nil {
		stats = *u.Stats
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
	return ms.Bytes(), nil
}

func readUserStatsB1788(s Stream) (any, error) {
	wireID, err := ReadS32(s)
	if err != nil {
		return nil, err
	}
	id, isIRC := decodeUserID(wireID)
	info := UserInfo{ID: id, Presence: &UserPresence{IsIRC: isIRC}}
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
	return info, nil
}

// writeUserPresenceOnlyB1788 is the presence-only packet, independent of
// stats from now on.
func writeUserPresenceOnlyB1788(s Stream, value any) ([]byte, error) {
	u, ok := value.(UserInfo)
	if !ok {
		return nil, fmt.Errorf("%w: expected UserInfo, got %T", ErrInvalidPacket, value)
	}
	presence := UserPresence{}
	if u.Presence != nil {
		presence = *u.Presence
	}
	ms := NewMemoryStream(nil)
	if err := WriteS32(ms, encodeUserID(u.ID, presence.IsIRC)); err != nil {
		return nil, err
	}
	if err := WriteString(ms, u.Name); err != nil {
		return nil, err
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
	return ms.Bytes(), nil
}

func readUserPresenceOnlyB1788(s Stream) (any, error) {
	wireID, err := ReadS32(s)
	if err != nil {
		return nil, err
	}
	id, isIRC := decodeUserID(wireID)
	name, err := ReadString(s)
	if err != nil {
		return nil, err
	}
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
	return UserInfo{
		ID:   id,
		Name: name,
		Presence: &UserPresence{
			IsIRC: isIRC, Timezone: int8(tz) - 24, CountryIndex: country,
			Permissions: Permissions(perms), Longitude: longitude, Latitude: latitude, City: city,
		},
	}, nil
}

// readUserStatsRequestB1788 decodes an i16-length-prefixed list of user
// ids a client wants fresh stats for, now that the server no longer
// pushes them proactively.
func readUserStatsRequestB1788(s Stream) (any, error) {
	return readIntList(s, 2)
}

func writeFriendsListB1788(s Stream, value any) ([]byte, error) {
	ids, ok := value.([]int32)
	if !ok {
		return nil, fmt.Errorf("%w: expected []int32, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := writeIntList(ms, 2, ids); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

func writeRestartB1788(s Stream, value any) ([]byte, error) {
	r, ok := value.(Restart)
	if !ok {
		return nil, fmt.Errorf("%w: expected Restart, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteU32(ms, uint32(r.RetryAfterMs)); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

// writeUserPresenceB1788 now writes exactly one BanchoUserPresence packet
// plus one BanchoUserStats packet, replacing the completeness-gated
// single-packet scheme of b1150/b1700.
func writeUserPresenceB1788(c *Codec, s Stream, info UserInfo) error {
	presenceBody, err := writeUserPresenceOnlyB1788(NewMemoryStream(nil), info)
	if err != nil {
		return err
	}
	if err := writeBody(s, c.Envelope, c.Opcodes.ToWire(BanchoUserPresence), presenceBody, c.CompressWrites); err != nil {
		return err
	}
	statsBody, err := writeUserStatsB1788(NewMemoryStream(nil), info)
	if err != nil {
		return err
	}
	return writeBody(s, c.Envelope, c.Opcodes.ToWire(BanchoUserStats), statsBody, c.CompressWrites)
}

func buildB1788(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoUserStats] = KindOps{Read: readUserStatsB1788, Write: writeUserStatsB1788}
	table[BanchoUserPresence] = KindOps{Read: readUserPresenceOnlyB1788, Write: writeUserPresenceOnlyB1788}
	table[OsuUserStatsRequest] = KindOps{Read: readUserStatsRequestB1788}
	table[BanchoFriendsList] = KindOps{Write: writeFriendsListB1788}
	table[BanchoRestart] = KindOps{Write: writeRestartB1788}
	delete(table, BanchoIrcJoin)

	codec := newCodec(1788, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = writeUserPresenceB1788
	return codec
}
