package bancho

import "fmt"

// readScoreFrameB294 decodes the b294 ScoreFrame layout: a leading
// checksum string (unused on read, recomputed by callers that care) then
// the judgment/score/combo/perfect/hp fields, matching chio/types.py's
// ScoreFrame field order.
func readScoreFrameB294(s Stream) (ScoreFrame, error) {
	if _, err := ReadString(s); err != nil {
		return ScoreFrame{}, err
	}
	var f ScoreFrame
	var err error
	if f.Time, err = ReadS32(s); err != nil {
		return ScoreFrame{}, err
	}
	id, err := ReadU8(s)
	if err != nil {
		return ScoreFrame{}, err
	}
	f.ID = id
	for _, field := range []*uint16{&f.Count300, &f.Count100, &f.Count50, &f.CountGeki, &f.CountKatu, &f.CountMiss} {
		v, err := ReadU16(s)
		if err != nil {
			return ScoreFrame{}, err
		}
		*field = v
	}
	if f.TotalScore, err = ReadS32(s); err != nil {
		return ScoreFrame{}, err
	}
	if f.MaxCombo, err = ReadU16(s); err != nil {
		return ScoreFrame{}, err
	}
	if f.CurrentCombo, err = ReadU16(s); err != nil {
		return ScoreFrame{}, err
	}
	if f.Perfect, err = ReadBool(s); err != nil {
		return ScoreFrame{}, err
	}
	hp, err := ReadU8(s)
	if err != nil {
		return ScoreFrame{}, err
	}
	f.HP = hp
	return f, nil
}

func writeScoreFrameB294(s Stream, f ScoreFrame) error {
	if err := WriteString(s, f.Checksum()); err != nil {
		return err
	}
	if err := WriteS32(s, f.Time); err != nil {
		return err
	}
	if err := WriteU8(s, f.ID); err != nil {
		return err
	}
	for _, v := range []uint16{f.Count300, f.Count100, f.Count50, f.CountGeki, f.CountKatu, f.CountMiss} {
		if err := WriteU16(s, v); err != nil {
			return err
		}
	}
	if err := WriteS32(s, f.TotalScore); err != nil {
		return err
	}
	if err := WriteU16(s, f.MaxCombo); err != nil {
		return err
	}
	if err := WriteU16(s, f.CurrentCombo); err != nil {
		return err
	}
	if err := WriteBool(s, f.Perfect); err != nil {
		return err
	}
	return WriteU8(s, f.HP)
}

func readSpectateFramesB294(s Stream) (any, error) {
	raw, err := readSpectateFramesB282(s)
	if err != nil {
		return nil, err
	}
	bundle := raw.(ReplayFrameBundle)
	if counter, ok := s.(ByteCounter); ok && counter.Remaining() > 0 {
		frame, err := readScoreFrameB294(s)
		if err != nil {
			return nil, err
		}
		bundle.ScoreFrame = &frame
	}
	return bundle, nil
}

func writeSpectateFramesB294(s Stream, value any) ([]byte, error) {
	b, ok := value.(ReplayFrameBundle)
	if !ok {
		return nil, fmt.Errorf("%w: expected ReplayFrameBundle, got %T", ErrInvalidPacket, value)
	}
	body, err := writeSpectateFramesB282(NewMemoryStream(nil), b)
	if err != nil {
		return nil, err
	}
	ms := NewMemoryStream(body)
	if b.ScoreFrame != nil {
		if err := writeScoreFrameB294(ms, *b.ScoreFrame); err != nil {
			return nil, err
		}
	}
	return ms.Bytes(), nil
}

// readPrivateMessageB294 decodes sender/content/target plus the trailing
// is_direct_message flag this build introduces; the flag must be true,
// since this opcode only ever carries private messages.
func readPrivateMessageB294(s Stream) (any, error) {
	sender, err := ReadString(s)
	if err != nil {
		return nil, err
	}
	content, err := ReadString(s)
	if err != nil {
		return nil, err
	}
	target, err := ReadString(s)
	if err != nil {
		return nil, err
	}
	isDirect, err := ReadBool(s)
	if err != nil {
		return nil, err
	}
	if !isDirect {
		return nil, fmt.Errorf("%w: private message flag was false", ErrMalformedPayload)
	}
	return Message{Sender: sender, Content: content, Target: target}, nil
}

func writePrivateMessageB294(s Stream, value any) ([]byte, error) {
	m, ok := value.(Message)
	if !ok {
		return nil, fmt.Errorf("%w: expected Message, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteString(ms, m.Sender); err != nil {
		return nil, err
	}
	if err := WriteString(ms, m.Content); err != nil {
		return nil, err
	}
	if err := WriteString(ms, m.Target); err != nil {
		return nil, err
	}
	if err := WriteBool(ms, m.IsDirectMessage()); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

// buildB294 layers in private messages and the score-frame-bearing
// spectator bundle described in spec.md's b294 delta.
func buildB294(prev *Codec) *Codec {
	table := prev.table.clone()
	table[OsuPrivateMessage] = KindOps{Read: readPrivateMessageB294}
	table[BanchoSpectateFrames] = KindOps{Write: writeSpectateFramesB294}
	table[OsuSpectateFrames] = KindOps{Read: readSpectateFramesB294}

	return newCodec(294, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
}
