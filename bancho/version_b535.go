package bancho

import "fmt"

// b535 appends u8 scoring_type, u8 team_type to match payloads once the
// codec's negotiated ProtocolVersion reaches 3; earlier negotiated values
// (or no negotiation at all) keep the b470 shape so an old client isn't
// sent fields it can't parse.
func readMatchB535(c *Codec) func(Stream) (any, error) {
	base := readMatchB470(c)
	return func(s Stream) (any, error) {
		raw, err := base(s)
		if err != nil {
			return nil, err
		}
		m := raw.(Match)
		if c.ProtocolVersion < 3 {
			return m, nil
		}
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
		return m, nil
	}
}

func writeMatchB535(c *Codec) func(Stream, any) ([]byte, error) {
	base := writeMatchB470(c)
	return func(s Stream, value any) ([]byte, error) {
		m, ok := value.(Match)
		if !ok {
			return nil, fmt.Errorf("%w: expected Match, got %T", ErrInvalidPacket, value)
		}
		body, err := base(s, m)
		if err != nil {
			return nil, err
		}
		if c.ProtocolVersion < 3 {
			return body, nil
		}
		ms := NewMemoryStream(body)
		if err := WriteU8(ms, uint8(m.ScoringType)); err != nil {
			return nil, err
		}
		if err := WriteU8(ms, uint8(m.TeamType)); err != nil {
			return nil, err
		}
		return ms.Bytes(), nil
	}
}

func buildB535(prev *Codec) *Codec {
	table := prev.table.clone()
	codec := newCodec(535, prev.Envelope, prev.Opcodes, table, prev.SlotSize)
	codec.presenceWriter = prev.presenceWriter

	table[OsuMatchCreate] = KindOps{Read: readMatchB535(codec)}
	table[BanchoMatchNew] = KindOps{Write: writeMatchB535(codec)}
	table[BanchoMatchUpdate] = KindOps{Write: writeMatchB535(codec)}
	codec.table = table
	return codec
}
