package bancho

import "fmt"

// readSpectateFramesB1817 adds a leading extra int32 ahead of the frame
// count, a field chio's later bundle uses for sequencing; everything
// after it keeps b334's shape.
func readSpectateFramesB1817(s Stream) (any, error) {
	extra, err := ReadS32(s)
	if err != nil {
		return nil, err
	}
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
	bundle := ReplayFrameBundle{Extra: extra, Action: ReplayAction(action), Frames: frames}
	if counter, ok := s.(ByteCounter); ok && counter.Remaining() > 0 {
		frame, err := readScoreFrameB294(s)
		if err != nil {
			return nil, err
		}
		bundle.ScoreFrame = &frame
	}
	return bundle, nil
}

func writeSpectateFramesB1817(s Stream, value any) ([]byte, error) {
	b, ok := value.(ReplayFrameBundle)
	if !ok {
		return nil, fmt.Errorf("%w: expected ReplayFrameBundle, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteS32(ms, b.Extra); err != nil {
		return nil, err
	}
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

// readMessageB1817/writeMessageB1817 generalize b282's "#osu"-only
// message to any channel or private target, and add the trailing
// sender_id the client now needs to resolve avatars without a lookup.
func readMessageB1817(s Stream) (any, error) {
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
	senderID, err := ReadS32(s)
	if err != nil {
		return nil, err
	}
	return Message{Sender: sender, SenderID: senderID, Content: content, Target: target}, nil
}

func writeMessageB1817(s Stream, value any) ([]byte, error) {
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
	if err := WriteS32(ms, m.SenderID); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

// writeBeatmapInfoB1817 adds the three grade fields chio's BeatmapInfo
// gains alongside osu!'s other rulesets.
func writeBeatmapInfoB1817(s Stream, info BeatmapInfo) error {
	if err := WriteS16(s, info.Index); err != nil {
		return err
	}
	if err := WriteS32(s, info.BeatmapID); err != nil {
		return err
	}
	if err := WriteS32(s, info.BeatmapSetID); err != nil {
		return err
	}
	if err := WriteS32(s, info.ThreadID); err != nil {
		return err
	}
	if err := WriteS8(s, int8(info.RankedStatus)); err != nil {
		return err
	}
	if err := WriteU8(s, uint8(info.OsuRank)); err != nil {
		return err
	}
	if err := WriteU8(s, uint8(info.TaikoRank)); err != nil {
		return err
	}
	if err := WriteU8(s, uint8(info.FruitsRank)); err != nil {
		return err
	}
	if err := WriteU8(s, uint8(info.ManiaRank)); err != nil {
		return err
	}
	return WriteString(s, info.Checksum)
}

func writeBeatmapInfoReplyB1817(s Stream, value any) ([]byte, error) {
	reply, ok := value.(BeatmapInfoReply)
	if !ok {
		return nil, fmt.Errorf("%w: expected BeatmapInfoReply, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteS32(ms, int32(len(reply.Beatmaps))); err != nil {
		return nil, err
	}
	for _, b := range reply.Beatmaps {
		if err := writeBeatmapInfoB1817(ms, b); err != nil {
			return nil, err
		}
	}
	return ms.Bytes(), nil
}

// readMatchB1817/writeMatchB1817 widen Match.ID to u16 and the top-level
// mods field to u32. The per-slot team block and the scoring/team type
// bytes are always present here, whatever the ProtocolVersion, and a
// trailing i32 seed follows the team type.
func readMatchB1817(c *Codec) func(Stream) (any, error) {
	return func(s Stream) (any, error) {
		id, err := ReadU16(s)
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
		mods, err := ReadU32(s)
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
		}
		for i := range slots {
			team, err := ReadU8(s)
			if err != nil {
				return nil, err
			}
			slots[i].Team = SlotTeam(team)
		}
		for i := range slots {
			if !slots[i].Status.HasPlayer() {
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
		m := Match{
			ID: id, InProgress: inProgress, Type: MatchType(matchType), Mods: Mods(mods),
			Name: name, Password: password, BeatmapText: beatmapText, BeatmapID: beatmapID,
			BeatmapChecksum: beatmapChecksum, Slots: slots, HostID: hostID,
		}
		freemod, err := ReadBool(s)
		if err != nil {
			return nil, err
		}
		m.FreeMod = freemod
		if freemod {
			for i := range m.Slots {
				v, err := ReadS32(s)
				if err != nil {
					return nil, err
				}
				m.Slots[i].Mods = Mods(v)
			}
		}
		mode, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		m.Mode = Mode(mode)
		scoring, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		team, err := ReadU8(s)
		if err != nil {
			return nil, err
		}
		m.ScoringType = ScoringType(scoring)
		m.TeamType = TeamType(team)
		seed, err := ReadS32(s)
		if err != nil {
			return nil, err
		}
		m.Seed = seed
		return m, nil
	}
}

func writeMatchB1817(c *Codec) func(Stream, any) ([]byte, error) {
	return func(s Stream, value any) ([]byte, error) {
		m, ok := value.(Match)
		if !ok {
			return nil, fmt.Errorf("%w: expected Match, got %T", ErrInvalidPacket, value)
		}
		ms := NewMemoryStream(nil)
		if err := WriteU16(ms, m.ID); err != nil {
			return nil, err
		}
		if err := WriteBool(ms, m.InProgress); err != nil {
			return nil, err
		}
		if err := WriteU8(ms, uint8(m.Type)); err != nil {
			return nil, err
		}
		if err := WriteU32(ms, uint32(m.Mods)); err != nil {
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
			if err := WriteU8(ms, uint8(slot.Team)); err != nil {
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
		if err := WriteBool(ms, m.FreeMod); err != nil {
			return nil, err
		}
		if m.FreeMod {
			for _, slot := range slots {
				if err := WriteS32(ms, int32(slot.Mods)); err != nil {
					return nil, err
				}
			}
		}
		if err := WriteU8(ms, uint8(m.Mode)); err != nil {
			return nil, err
		}
		if err := WriteU8(ms, uint8(m.ScoringType)); err != nil {
			return nil, err
		}
		if err := WriteU8(ms, uint8(m.TeamType)); err != nil {
			return nil, err
		}
		if err := WriteS32(ms, m.Seed); err != nil {
			return nil, err
		}
		return ms.Bytes(), nil
	}
}

func buildB1817(prev *Codec) *Codec {
	table := prev.table.clone()
	table[OsuSpectateFrames] = KindOps{Read: readSpectateFramesB1817}
	table[BanchoSpectateFrames] = KindOps{Write: writeSpectateFramesB1817}
	table[OsuMessage] = KindOps{Read: readMessageB1817}
	table[OsuPrivateMessage] = KindOps{Read: readMessageB1817}
	table[BanchoMessage] = KindOps{Write: writeMessageB1817}
	table[BanchoBeatmapInfoReply] = KindOps{Write: writeBeatmapInfoReplyB1817}

	codec := newCodec(1817, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter

	table[OsuMatchCreate] = KindOps{Read: readMatchB1817(codec)}
	table[BanchoMatchNew] = KindOps{Write: writeMatchB1817(codec)}
	table[BanchoMatchUpdate] = KindOps{Write: writeMatchB1817(codec)}
	codec.table = table
	return codec
}
