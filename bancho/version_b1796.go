package bancho

// writeStatusB1796 widens the status mods field from u16 to u32; every
// other field keeps the b1150 beatmap_update shape.
func writeStatusB1796(s Stream, st UserStatus) error {
	hasBeatmap := st.Action != StatusUnknown && st.BeatmapID != 0
	if err := WriteU8(s, uint8(st.Action)); err != nil {
		return err
	}
	if err := WriteString(s, st.Text); err != nil {
		return err
	}
	if err := WriteU32(s, uint32(st.Mods)); err != nil {
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

func readStatusB1796(s Stream) (UserStatus, error) {
	action, err := ReadU8(s)
	if err != nil {
		return UserStatus{}, err
	}
	st := UserStatus{Action: Status(action)}
	if st.Text, err = ReadString(s); err != nil {
		return UserStatus{}, err
	}
	mods, err := ReadU32(s)
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

func readUserStatusB1796(s Stream) (any, error) {
	return readStatusB1796(s)
}

// buildB1796 also serves b1797, which carries no further delta of its
// own.
func buildB1796(prev *Codec) *Codec {
	table := prev.table.clone()
	table[OsuUserStatus] = KindOps{Read: readUserStatusB1796}

	codec := newCodec(1796, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter
	return codec
}
