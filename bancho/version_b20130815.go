package bancho

import "fmt"

// writeUserPresenceOnlyB20130815 packs the play mode into the high bits
// of the permissions byte (permissions | mode<<5) instead of carrying it
// only inside the separate status packet, so a client can render a
// mode icon next to a presence it hasn't seen a status update for yet.
func writeUserPresenceOnlyB20130815(s Stream, value any) ([]byte, error) {
	u, ok := value.(UserInfo)
	if !ok {
		return nil, fmt.Errorf("%w: expected UserInfo, got %T", ErrInvalidPacket, value)
	}
	presence := UserPresence{}
	if u.Presence != nil {
		presence = *u.Presence
	}
	mode := Mode(0)
	if u.Status != nil {
		mode = u.Status.Mode
	}
	permByte := uint8(presence.Permissions) | uint8(mode)<<5
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
	if err := WriteU8(ms, permByte); err != nil {
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

func readUserPresenceOnlyB20130815(s Stream) (any, error) {
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
	permByte, err := ReadU8(s)
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
	mode := Mode(permByte >> 5)
	return UserInfo{
		ID:   id,
		Name: name,
		Presence: &UserPresence{
			IsIRC: isIRC, Timezone: int8(tz) - 24, CountryIndex: country,
			Permissions: Permissions(permByte & 0x1f), Longitude: longitude, Latitude: latitude, City: city,
		},
		Status: &UserStatus{Mode: mode},
	}, nil
}

func writeUserPresenceB20130815(c *Codec, s Stream, info UserInfo) error {
	presenceBody, err := writeUserPresenceOnlyB20130815(NewMemoryStream(nil), info)
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

func buildB20130815(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoUserPresence] = KindOps{Read: readUserPresenceOnlyB20130815, Write: writeUserPresenceOnlyB20130815}

	codec := newCodec(20130815, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = writeUserPresenceB20130815
	return codec
}
