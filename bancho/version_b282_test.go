package bancho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestB282MessageRoundTrip(t *testing.T) {
	codec := buildB282()

	ms := NewMemoryStream(nil)
	require.NoError(t, WriteString(ms, "cho"))
	require.NoError(t, WriteString(ms, "hello"))
	body := ms.Bytes()

	value, err := codec.table[OsuMessage].Read(NewMemoryStream(body))
	require.NoError(t, err)
	msg := value.(Message)
	assert.Equal(t, "cho", msg.Sender)
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, "#osu", msg.Target)
}

func TestB282MessageWriteDropsNonOsuChannel(t *testing.T) {
	codec := buildB282()
	body, err := codec.table[BanchoMessage].Write(NewMemoryStream(nil), Message{Sender: "cho", Content: "hi", Target: "#english"})
	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestB282OpcodeRemap(t *testing.T) {
	codec := buildB282()

	kind, ok := codec.Opcodes.ToKind(11)
	require.True(t, ok)
	assert.Equal(t, BanchoIrcJoin, kind)

	// Kinds numbered 11..44 shift up by one to make room for IrcJoin at 11.
	assert.Equal(t, uint16(BanchoUserQuit)+1, codec.Opcodes.ToWire(BanchoUserQuit))

	// Kinds numbered above 50 shift up by one too.
	assert.Equal(t, uint16(BanchoMatchAllPlayersLoaded)+1, codec.Opcodes.ToWire(BanchoMatchAllPlayersLoaded))

	// Kinds numbered exactly 45..50 are untouched.
	assert.Equal(t, uint16(BanchoMatchTransferHost), codec.Opcodes.ToWire(BanchoMatchTransferHost))
}
