package bancho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestB20130815PresenceEncodesModeInPermissionsByte(t *testing.T) {
	info := UserInfo{
		ID:       3,
		Name:     "cho",
		Presence: &UserPresence{Permissions: PermissionsRegular | PermissionsBAT},
		Status:   &UserStatus{Mode: ModeTaiko},
	}

	body, err := writeUserPresenceOnlyB20130815(NewMemoryStream(nil), info)
	require.NoError(t, err)

	value, err := readUserPresenceOnlyB20130815(NewMemoryStream(body))
	require.NoError(t, err)
	got := value.(UserInfo)
	assert.Equal(t, PermissionsRegular|PermissionsBAT, got.Presence.Permissions)
	assert.Equal(t, ModeTaiko, got.Status.Mode)
}
