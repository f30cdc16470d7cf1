package bancho

// buildB1800 deprecates per-packet gzip for good: compression_flag is
// always written false from here on and bodies are always raw. Reads
// still honor whatever flag the other side sets (readBody branches on
// h.compressed), but this build's own writes never set it.
func buildB1800(prev *Codec) *Codec {
	codec := newCodec(1800, prev.Envelope, prev.Opcodes, prev.table.clone(), prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter
	codec.CompressWrites = false
	return codec
}
