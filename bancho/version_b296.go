package bancho

// buildB296 covers b296 through b319: the source collapses IrcJoin's
// opcode-11 special case into a plain named slot instead of a runtime
// remap exception, which is an implementation detail of the original
// class hierarchy, not a wire-format change — the bytes produced by
// b282OpcodeMap are already identical, so nothing here needs to differ.
// b320 is therefore a pure alias of this table and isn't given its own
// registry entry.
func buildB296(prev *Codec) *Codec {
	table := prev.table.clone()
	return newCodec(296, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
}
