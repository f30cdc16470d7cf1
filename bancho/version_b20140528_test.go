package bancho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestB20140528MatchSlotWidening(t *testing.T) {
	reg := NewRegistry()
	codec := reg.Select(20140528)

	m := Match{ID: 1, Slots: []MatchSlot{{Status: SlotStatusNotReady, PlayerID: 9}}}

	write := codec.table[BanchoMatchNew].Write
	read := codec.table[OsuMatchCreate].Read

	// Below protocol_version 19: 8 slots.
	body, err := write(NewMemoryStream(nil), m)
	require.NoError(t, err)
	value, err := read(NewMemoryStream(body))
	require.NoError(t, err)
	assert.Len(t, value.(Match).Slots, 8)

	// At protocol_version 19: 16 slots.
	codec.ProtocolVersion = 19
	body, err = write(NewMemoryStream(nil), m)
	require.NoError(t, err)
	value, err = read(NewMemoryStream(body))
	require.NoError(t, err)
	assert.Len(t, value.(Match).Slots, 16)
}
