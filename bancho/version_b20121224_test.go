package bancho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestB20121224UserQuitRoundTrip(t *testing.T) {
	q := UserQuit{
		Info:      &UserInfo{ID: 5, Presence: &UserPresence{IsIRC: true}},
		QuitState: QuitStateGone,
	}
	body, err := writeUserQuitB20121224(NewMemoryStream(nil), q)
	require.NoError(t, err)

	value, err := readUserQuitB20121224(NewMemoryStream(body))
	require.NoError(t, err)
	got := value.(UserQuit)
	assert.Equal(t, int32(5), got.Info.ID)
	assert.True(t, got.Info.Presence.IsIRC)
	assert.Equal(t, QuitStateGone, got.QuitState)
}

func TestB20121224DropsIrcQuit(t *testing.T) {
	reg := NewRegistry()
	codec := reg.Select(20121224)
	_, ok := codec.table[BanchoIrcQuit]
	assert.False(t, ok)
}
