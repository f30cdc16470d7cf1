package bancho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePacketRejectsClientDirectionKind(t *testing.T) {
	reg := NewRegistry()
	codec := reg.Select(282)

	// OsuMatchSkipRequest is a client->server packet; WritePacket must
	// reject it regardless of whether this build's table has an entry.
	err := codec.WritePacket(NewMemoryStream(nil), OsuMatchSkipRequest, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPacket)
}

func TestWritePacketSilentNoopWhenTableHasNoWriter(t *testing.T) {
	reg := NewRegistry()
	codec := reg.Select(282)

	// BanchoBeatmapInfoReply is a server packet, but b282's table has no
	// writer for it (introduced at b489): WritePacket must be a silent
	// no-op, matching every client's write_packet "packet_writer is None"
	// behavior.
	err := codec.WritePacket(NewMemoryStream(nil), BanchoBeatmapInfoReply, nil)
	require.NoError(t, err)
}

func TestWritePacketCompressionFlag(t *testing.T) {
	cases := []struct {
		build      int
		compressed bool
	}{
		{282, true},       // legacy envelope always gzips
		{323, true},       // modern envelope, CompressWrites defaults on
		{1796, true},      // still pre-b1800
		{1800, false},     // b1800 turns compression off for good
		{20140528, false}, // stays off downstream
	}

	reg := NewRegistry()
	for _, c := range cases {
		codec := reg.Select(c.build)
		s := NewMemoryStream(nil)
		require.NoError(t, codec.WritePacket(s, BanchoPing, nil))

		h, err := readHeader(NewMemoryStream(s.Bytes()), codec.Envelope)
		require.NoError(t, err)
		assert.Equalf(t, c.compressed, h.compressed, "build %d", c.build)
	}
}

func TestWriteUserPresenceSplitsAcrossBuilds(t *testing.T) {
	reg := NewRegistry()
	info := UserInfo{
		ID:       7,
		Name:     "cho",
		Presence: &UserPresence{CountryIndex: 1, Permissions: PermissionsSupporter},
		Status:   &UserStatus{Action: StatusIdle},
		Stats:    &UserStats{Rank: 1, RankedScore: 100, TotalScore: 200, Accuracy: 99.5, Playcount: 10},
	}

	// b323 (through b634) emits two BanchoUserStats packets back to back.
	codec := reg.Select(323)
	s := NewMemoryStream(nil)
	require.NoError(t, codec.WriteUserPresence(s, info))
	count := 0
	stream := NewMemoryStream(s.Bytes())
	for stream.Remaining() > 0 {
		h, err := readHeader(stream, codec.Envelope)
		require.NoError(t, err)
		assert.Equal(t, codec.Opcodes.ToWire(BanchoUserStats), h.opcode)
		_, err = readBody(stream, h.bodyLength, h.compressed, 0)
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 2, count)

	// b1788 onward emits one BanchoUserPresence and one BanchoUserStats.
	codec = reg.Select(1788)
	s = NewMemoryStream(nil)
	require.NoError(t, codec.WriteUserPresence(s, info))
	stream = NewMemoryStream(s.Bytes())
	h1, err := readHeader(stream, codec.Envelope)
	require.NoError(t, err)
	assert.Equal(t, codec.Opcodes.ToWire(BanchoUserPresence), h1.opcode)
	_, err = readBody(stream, h1.bodyLength, h1.compressed, 0)
	require.NoError(t, err)

	h2, err := readHeader(stream, codec.Envelope)
	require.NoError(t, err)
	assert.Equal(t, codec.Opcodes.ToWire(BanchoUserStats), h2.opcode)
	assert.Equal(t, 0, stream.Remaining()-int(h2.bodyLength))
}

func TestMatchSlotCountWidensAtProtocol19(t *testing.T) {
	reg := NewRegistry()
	codec := reg.Select(20140528)

	assert.Equal(t, 8, codec.matchSlotCount())
	codec.ProtocolVersion = 19
	assert.Equal(t, 16, codec.matchSlotCount())
}
