package bancho

// buildB291 adds GetAttention (no payload, just a client-side beep) and
// Announce (a broadcast string), per spec.md's b291 delta. Every other
// entry is inherited unchanged from b282.
func buildB291(prev *Codec) *Codec {
	table := prev.table.clone()
	table[BanchoGetAttention] = KindOps{Write: noArgWrite}
	table[BanchoAnnounce] = KindOps{Write: stringWrite}

	return newCodec(291, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
}
