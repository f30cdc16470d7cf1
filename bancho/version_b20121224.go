package bancho

import "fmt"

// writeUserQuitB20121224 folds BanchoIrcQuit into BanchoUserQuit: one
// packet now carries both the negatable (encodeUserID) id and an
// explicit quit-state byte, instead of a bare id meaning "gone for
// good" and a second opcode meaning "IRC user left".
func writeUserQuitB20121224(s Stream, value any) ([]byte, error) {
	q, ok := value.(UserQuit)
	if !ok {
		return nil, fmt.Errorf("%w: expected UserQuit, got %T", ErrInvalidPacket, value)
	}
	var id int32
	isIRC := false
	if q.Info != nil {
		id = q.Info.ID
		isIRC = q.Info.Presence != nil && q.Info.Presence.IsIRC
	}
	ms := NewMemoryStream(nil)
	if err := WriteS32(ms, encodeUserID(id, isIRC)); err != nil {
		return nil, err
	}
	if err := WriteU8(ms, uint8(q.QuitState)); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

func readUserQuitB20121224(s Stream) (any, error) {
	wireID, err := ReadS32(s)
	if err != nil {
		return nil, err
	}
	id, isIRC := decodeUserID(wireID)
	state, err := ReadU8(s)
	if err != nil {
		return nil, err
	}
	return UserQuit{
		Info:      &UserInfo{ID: id, Presence: &UserPresence{IsIRC: isIRC}},
		QuitState: QuitState(state),
	}, nil
}

func buildB20121224(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoUserQuit] = KindOps{Read: readUserQuitB20121224, Write: writeUserQuitB20121224}
	delete(table, BanchoIrcQuit)

	codec := newCodec(20121224, prev.Envelope, identityOpcodeMap(), table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter
	return codec
}
