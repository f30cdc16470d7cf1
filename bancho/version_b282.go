package bancho

import "fmt"

// b282 opcode remap: wire 11 is the legacy IrcJoin packet; wire 12..45 and
// everything above 50 sit one higher than the logical table to make room
// for it (see chio/clients/b282.py's convert_input_packet/
// convert_output_packet).
func b282OpcodeMap() OpcodeMap {
	toWire := func(k PacketKind) uint16 {
		if k == BanchoIrcJoin {
			return 11
		}
		v := uint16(k)
		if v >= 11 && v < 45 {
			return v + 1
		}
		if v > 50 {
			return v + 1
		}
		return v
	}
	toKind := func(op uint16) (PacketKind, bool) {
		if op == 11 {
			return BanchoIrcJoin, true
		}
		if op > 11 && op <= 45 {
			k := PacketKind(op - 1)
			return k, knownPacketKind(k)
		}
		if op > 50 {
			k := PacketKind(op - 1)
			return k, knownPacketKind(k)
		}
		k := PacketKind(op)
		return k, knownPacketKind(k)
	}
	return OpcodeMap{ToWire: toWire, ToKind: toKind}
}

// noArgRead/noArgWrite implement the handful of packets whose payload is
// empty on every build (OsuExit, OsuPong, BanchoPing, and similar control
// signals): read returns struct{}{}, write ignores its value and emits no
// bytes.
func noArgRead(s Stream) (any, error) {
	return struct{}{}, nil
}

func noArgWrite(s Stream, value any) ([]byte, error) {
	return nil, nil
}

func stringRead(s Stream) (any, error) {
	return ReadString(s)
}

func stringWrite(s Stream, value any) ([]byte, error) {
	text, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string, got %T", ErrInvalidPacket, value)
	}
	if err := WriteString(s, text); err != nil {
		return nil, err
	}
	return s.(*MemoryStream).Bytes(), nil
}

func s32Read(s Stream) (any, error) {
	return ReadS32(s)
}

func s32Write(s Stream, value any) ([]byte, error) {
	v, ok := value.(int32)
	if !ok {
		return nil, fmt.Errorf("%w: expected int32, got %T", ErrInvalidPacket, value)
	}
	if err := WriteS32(s, v); err != nil {
		return nil, err
	}
	return s.(*MemoryStream).Bytes(), nil
}

func readStatusB282(s Stream) (UserStatus, error) {
	action, err := ReadU8(s)
	if err != nil {
		return UserStatus{}, err
	}
	st := UserStatus{Action: Status(action)}
	if st.Action == StatusUnknown {
		return st, nil
	}
	if st.Text, err = ReadString(s); err != nil {
		return UserStatus{}, err
	}
	if st.BeatmapChecksum, err = ReadString(s); err != nil {
		return UserStatus{}, err
	}
	mods, err := ReadU16(s)
	if err != nil {
		return UserStatus{}, err
	}
	st.Mods = Mods(mods)
	return st, nil
}

func writeStatusB282(s Stream, st UserStatus) error {
	if err := WriteU8(s, uint8(st.Action)); err != nil {
		return err
	}
	if st.Action == StatusUnknown {
		return nil
	}
	if err := WriteString(s, st.Text); err != nil {
		return err
	}
	if err := WriteString(s, st.BeatmapChecksum); err != nil {
		return err
	}
	return WriteU16(s, uint16(st.Mods))
}

func readMessageB282(s Stream) (any, error) {
	sender, err := ReadString(s)
	if err != nil {
		return nil, err
	}
	content, err := ReadString(s)
	if err != nil {
		return nil, err
	}
	// b282 has no channel concept: every message lands in "#osu".
	return Message{Sender: sender, Content: content, Target: "#osu"}, nil
}

func writeMessageB282(s Stream, value any) ([]byte, error) {
	m, ok := value.(Message)
	if !ok {
		return nil, fmt.Errorf("%w: expected Message, got %T", ErrInvalidPacket, value)
	}
	if m.Target != "#osu" {
		// b282's channel limitation: anything not "#osu" silently drops,
		// matching write_packet's "no writer output -> no packet" rule.
		return nil, nil
	}
	ms := NewMemoryStream(nil)
	if err := WriteString(ms, m.Sender); err != nil {
		return nil, err
	}
	if err := WriteString(ms, m.Content); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

// writeUserStatsB282 implements the b282 "combined presence + stats"
// shape: an IRC user is demoted to a bare IrcJoin{name}; a game client
// gets the full block inline with a trailing status.
func writeUserStatsB282(s Stream, value any) ([]byte, error) {
	u, ok := value.(UserInfo)
	if !ok {
		return nil, fmt.Errorf("%w: expected UserInfo, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if u.Presence != nil && u.Presence.IsIRC {
		if err := WriteString(ms, u.Name); err != nil {
			return nil, err
		}
		return ms.Bytes(), nil
	}
	if err := WriteU32(ms, uint32(u.ID)); err != nil {
		return nil, err
	}
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
	if err := WriteU32(ms, stats.Rank); err != nil {
		return nil, err
	}
	if err := WriteString(ms, u.AvatarFilename(true)); err != nil {
		return nil, err
	}
	if u.Status != nil {
		if err := writeStatusB282(ms, *u.Status); err != nil {
			return nil, err
		}
	} else {
		if err := writeStatusB282(ms, UserStatus{Action: StatusUnknown}); err != nil {
			return nil, err
		}
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
	return ms.Bytes(), nil
}

// readUserQuitB282 decodes the bare u32 user id that b282's quit notice
// carries.
func readUserQuitB282(s Stream) (any, error) {
	id, err := ReadU32(s)
	if err != nil {
		return nil, err
	}
	return UserQuit{Info: &UserInfo{ID: int32(id)}, QuitState: QuitStateGone}, nil
}

func writeUserQuitB282(s Stream, value any) ([]byte, error) {
	q, ok := value.(UserQuit)
	if !ok {
		return nil, fmt.Errorf("%w: expected UserQuit, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	id := int32(0)
	if q.Info != nil {
		id = q.Info.ID
	}
	if err := WriteU32(ms, uint32(id)); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

// readSpectateFramesB282 decodes the b282 bundle shape: a frame count,
// frames stored as two booleans (left/right) plus x/y/time, then a
// trailing action byte.
func readSpectateFramesB282(s Stream) (any, error) {
	count, err := ReadU16(s)
	if err != nil {
		return nil, err
	}
	frames := make([]ReplayFrame, count)
	for i := range frames {
		left, err := ReadBool(s)
		if err != nil {
			return nil, err
		}
		right, err := ReadBool(s)
		if err != nil {
			return nil, err
		}
		x, err := ReadF32(s)
		if err != nil {
			return nil, err
		}
		y, err := ReadF32(s)
		if err != nil {
			return nil, err
		}
		t, err := ReadS32(s)
		if err != nil {
			return nil, err
		}
		buttons := ButtonState(0)
		if left {
			buttons |= ButtonStateLeft1
		}
		if right {
			buttons |= ButtonStateRight1
		}
		frames[i] = ReplayFrame{ButtonState: buttons, MouseX: x, MouseY: y, Time: t}
	}
	action, err := ReadU8(s)
	if err != nil {
		return nil, err
	}
	return ReplayFrameBundle{Action: ReplayAction(action), Frames: frames}, nil
}

func writeSpectateFramesB282(s Stream, value any) ([]byte, error) {
	b, ok := value.(ReplayFrameBundle)
	if !ok {
		return nil, fmt.Errorf("%w: expected ReplayFrameBundle, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteU16(ms, uint16(len(b.Frames))); err != nil {
		return nil, err
	}
	for _, f := range b.Frames {
		if err := WriteBool(ms, f.ButtonState&ButtonStateLeft1 != 0); err != nil {
			return nil, err
		}
		if err := WriteBool(ms, f.ButtonState&ButtonStateRight1 != 0); err != nil {
			return nil, err
		}
		if err := WriteF32(ms, f.MouseX); err != nil {
			return nil, err
		}
		if err := WriteF32(ms, f.MouseY); err != nil {
			return nil, err
		}
		if err := WriteS32(ms, f.Time); err != nil {
			return nil, err
		}
	}
	if err := WriteU8(ms, uint8(b.Action)); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

func readUserStatusB282(s Stream) (any, error) {
	return readStatusB282(s)
}

func writeUserStatusB282(s Stream, value any) ([]byte, error) {
	st, ok := value.(UserStatus)
	if !ok {
		return nil, fmt.Errorf("%w: expected UserStatus, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := writeStatusB282(ms, st); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

// buildB282 constructs the baseline table every later build derives from.
func buildB282() *Codec {
	table := Table{
		OsuUserStatus: {Read: readUserStatusB282},
		OsuMessage:    {Read: readMessageB282},
		OsuExit:       {Read: noArgRead},
		OsuPong:       {Read: noArgRead},

		BanchoLoginReply: {Write: s32Write},
		BanchoPing:       {Write: noArgWrite},
		BanchoMessage:    {Write: writeMessageB282},
		BanchoUserStats:  {Write: writeUserStatsB282},
		BanchoUserQuit:   {Read: readUserQuitB282, Write: writeUserQuitB282},

		OsuStartSpectating: {Read: s32Read},
		OsuStopSpectating:  {Read: noArgRead},
		OsuSpectateFrames:  {Read: readSpectateFramesB282},
		OsuCantSpectate:    {Read: noArgRead},

		BanchoSpectatorJoined:       {Write: s32Write},
		BanchoSpectatorLeft:         {Write: s32Write},
		BanchoSpectateFrames:        {Write: writeSpectateFramesB282},
		BanchoSpectatorCantSpectate: {Write: s32Write},

		OsuLobbyPart: {Read: noArgRead},
		OsuLobbyJoin: {Read: noArgRead},
		OsuMatchCreate: {Read: noArgRead},
		OsuMatchJoin:   {Read: s32Read},
		OsuMatchPart:   {Read: noArgRead},
		OsuMatchStart:  {Read: noArgRead},

		BanchoLobbyJoin: {Write: s32Write},
		BanchoLobbyPart: {Write: s32Write},

		OsuMatchChangeSlot:     {Read: s32Read},
		OsuMatchReady:          {Read: noArgRead},
		OsuMatchLock:           {Read: s32Read},
		OsuMatchChangeSettings: {Read: noArgRead},
		OsuMatchChangeMods:     {Read: s32Read},
		OsuMatchLoadComplete:   {Read: noArgRead},
		OsuMatchNoBeatmap:      {Read: noArgRead},
		OsuMatchNotReady:       {Read: noArgRead},
		OsuMatchFailed:         {Read: noArgRead},
		OsuMatchHasBeatmap:     {Read: noArgRead},

		OsuErrorReport:       {Read: stringRead},
		OsuSetIrcAwayMessage: {Read: stringRead},
	}
	opcodes := b282OpcodeMap()
	codec := newCodec(282, EnvelopeLegacy, opcodes, table, 8)
	return codec
}
