package bancho

import "fmt"

func writeLoginPermissionsB591(s Stream, value any) ([]byte, error) {
	p, ok := value.(Permissions)
	if !ok {
		return nil, fmt.Errorf("%w: expected Permissions, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteU32(ms, uint32(p)); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

func writeTitleUpdateB591(s Stream, value any) ([]byte, error) {
	t, ok := value.(TitleUpdate)
	if !ok {
		return nil, fmt.Errorf("%w: expected TitleUpdate, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteString(ms, t.ImageURL); err != nil {
		return nil, err
	}
	if err := WriteString(ms, t.RedirectURL); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

func readChangeFriendOnlyDMsB591(s Stream) (any, error) {
	return ReadBool(s)
}

func writeSilenceInfoB591(s Stream, value any) ([]byte, error) {
	seconds, ok := value.(int32)
	if !ok {
		return nil, fmt.Errorf("%w: expected int32, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteS32(ms, seconds); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

func buildB591(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoLoginPermissions] = KindOps{Write: writeLoginPermissionsB591}
	table[BanchoTitleUpdate] = KindOps{Write: writeTitleUpdateB591}
	table[OsuChangeFriendOnlyDMs] = KindOps{Read: readChangeFriendOnlyDMsB591}
	table[BanchoSilenceInfo] = KindOps{Write: writeSilenceInfoB591}
	table[BanchoUserSilenced] = KindOps{Write: s32Write}

	codec := newCodec(591, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter
	return codec
}
