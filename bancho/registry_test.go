package bancho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySelectExactAndNearest(t *testing.T) {
	reg := NewRegistry()

	c282 := reg.Select(282)
	require.NotNil(t, c282)
	assert.Equal(t, 282, c282.Build)

	// b283 isn't registered; nearest registered predecessor is b282.
	c283 := reg.Select(283)
	assert.Equal(t, 282, c283.Build)

	// A build older than every registered one falls back to the oldest.
	cAncient := reg.Select(1)
	assert.Equal(t, 282, cAncient.Build)

	// A build newer than every registered one falls back to the newest.
	cFuture := reg.Select(999999999)
	assert.Equal(t, 20140528, cFuture.Build)
}

func TestRegistryBuildsAscending(t *testing.T) {
	reg := NewRegistry()
	builds := reg.Builds()
	require.Len(t, builds, 24)
	for i := 1; i < len(builds); i++ {
		assert.Less(t, builds[i-1], builds[i])
	}
}

func TestRegistryKnownKinds(t *testing.T) {
	reg := NewRegistry()

	kinds := reg.KnownKinds(282)
	require.NotEmpty(t, kinds)
	assert.Contains(t, kinds, OsuExit)
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, kinds[i-1], kinds[i])
	}

	// Repeated lookups against the same build return an equal slice
	// (exercising the memoized path, not just the first computation).
	again := reg.KnownKinds(282)
	assert.Equal(t, kinds, again)
}

func TestRegistrySetProtocolVersion(t *testing.T) {
	reg := NewRegistry()
	reg.SetProtocolVersion(558, 4)
	assert.Equal(t, 4, reg.Select(558).ProtocolVersion)

	// Unregistered build number is a no-op, not a panic.
	reg.SetProtocolVersion(12345, 4)
}
