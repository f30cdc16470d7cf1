package bancho

// buildB634 adds the Monitor packet, a no-payload server nudge telling
// the client it's being watched by an admin tool.
func buildB634(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoMonitor] = KindOps{Write: noArgWrite}

	codec := newCodec(634, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter
	return codec
}
