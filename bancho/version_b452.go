package bancho

import "fmt"

// writeUserStatsB452WithFlag adds a permission byte to the newstats
// packet, appended after b334's trailing status block, still sharing
// b334's u16 rank.
func writeUserStatsB452WithFlag(value any, newstats bool) ([]byte, error) {
	u, ok := value.(UserInfo)
	if !ok {
		return nil, fmt.Errorf("%w: expected UserInfo, got %T", ErrInvalidPacket, value)
	}
	body, err := writeUserStatsB334WithFlag(value, newstats)
	if err != nil {
		return nil, err
	}
	if !newstats {
		return body, nil
	}
	perms := PermissionsNone
	if u.Presence != nil {
		perms = u.Presence.Permissions
	}
	ms := NewMemoryStream(body)
	if err := WriteU8(ms, uint8(perms)); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

func writeUserStatsB452(s Stream, value any) ([]byte, error) {
	return writeUserStatsB452WithFlag(value, true)
}

func readUserStatsB452(s Stream) (any, error) {
	raw, err := readUserStatsB334(s)
	if err != nil {
		return nil, err
	}
	info := raw.(UserInfo)
	if info.Presence == nil {
		return info, nil
	}
	perms, err := ReadU8(s)
	if err != nil {
		return nil, err
	}
	info.Presence.Permissions = Permissions(perms)
	return info, nil
}

func writeUserPresenceB452(c *Codec, s Stream, info UserInfo) error {
	for _, newstats := range []bool{true, false} {
		body, err := writeUserStatsB452WithFlag(info, newstats)
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

// readFriendsAddRemoveB452 decodes the single i32 user id these packets
// carry.
func readFriendsAddRemoveB452(s Stream) (any, error) {
	return ReadS32(s)
}

// writeFriendsListB452 frames the friend id list with a u32 length
// prefix, matching readIntList/writeIntList's lengthWidth=4 variant.
func writeFriendsListB452(s Stream, value any) ([]byte, error) {
	ids, ok := value.([]int32)
	if !ok {
		return nil, fmt.Errorf("%w: expected []int32, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := writeIntList(ms, 4, ids); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

func buildB452(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoUserStats] = KindOps{Read: readUserStatsB452, Write: writeUserStatsB452}
	table[OsuFriendsAdd] = KindOps{Read: readFriendsAddRemoveB452}
	table[OsuFriendsRemove] = KindOps{Read: readFriendsAddRemoveB452}
	table[BanchoFriendsList] = KindOps{Write: writeFriendsListB452}

	codec := newCodec(452, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = writeUserPresenceB452
	return codec
}
