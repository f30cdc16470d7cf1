package bancho

import "fmt"

func writeChannelAvailableAutojoinB489(s Stream, value any) ([]byte, error) {
	ch, ok := value.(Channel)
	if !ok {
		return nil, fmt.Errorf("%w: expected Channel, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteString(ms, ch.Name); err != nil {
		return nil, err
	}
	if err := WriteString(ms, ch.Topic); err != nil {
		return nil, err
	}
	if err := WriteU16(ms, uint16(ch.UserCount)); err != nil {
		return nil, err
	}
	return ms.Bytes(), nil
}

func readBeatmapInfoRequestB489(s Stream) (any, error) {
	filenameCount, err := ReadS32(s)
	if err != nil {
		return nil, err
	}
	filenames := make([]string, filenameCount)
	for i := range filenames {
		if filenames[i], err = ReadString(s); err != nil {
			return nil, err
		}
	}
	ids, err := readIntList(s, 4)
	if err != nil {
		return nil, err
	}
	return BeatmapInfoRequest{Filenames: filenames, IDs: ids}, nil
}

func writeBeatmapInfoB489(s Stream, info BeatmapInfo) error {
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
	return WriteString(s, info.Checksum)
}

func writeBeatmapInfoReplyB489(s Stream, value any) ([]byte, error) {
	reply, ok := value.(BeatmapInfoReply)
	if !ok {
		return nil, fmt.Errorf("%w: expected BeatmapInfoReply, got %T", ErrInvalidPacket, value)
	}
	ms := NewMemoryStream(nil)
	if err := WriteS32(ms, int32(len(reply.Beatmaps))); err != nil {
		return nil, err
	}
	for _, b := range reply.Beatmaps {
		if err := writeBeatmapInfoB489(ms, b); err != nil {
			return nil, err
		}
	}
	return ms.Bytes(), nil
}

func readMatchSkipRequestB489(s Stream) (any, error) {
	return noArgRead(s)
}

func buildB489(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoChannelAvailableAutojoin] = KindOps{Write: writeChannelAvailableAutojoinB489}
	table[OsuBeatmapInfoRequest] = KindOps{Read: readBeatmapInfoRequestB489}
	table[BanchoBeatmapInfoReply] = KindOps{Write: writeBeatmapInfoReplyB489}
	table[OsuMatchSkipRequest] = KindOps{Read: readMatchSkipRequestB489}
	table[BanchoMatchSkip] = KindOps{Write: s32Write}
	table[OsuMatchTransferHost] = KindOps{Read: s32Read}
	table[BanchoMatchTransferHost] = KindOps{Write: s32Write}

	codec := newCodec(489, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter
	return codec
}
