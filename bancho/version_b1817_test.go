package bancho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestB1817MessageRoundTrip(t *testing.T) {
	body, err := writeMessageB1817(NewMemoryStream(nil), Message{
		Sender: "cho", SenderID: 2, Content: "hi", Target: "#english",
	})
	require.NoError(t, err)

	value, err := readMessageB1817(NewMemoryStream(body))
	require.NoError(t, err)
	msg := value.(Message)
	assert.Equal(t, "cho", msg.Sender)
	assert.Equal(t, int32(2), msg.SenderID)
	assert.Equal(t, "hi", msg.Content)
	assert.Equal(t, "#english", msg.Target)
}

func TestB1817BeatmapInfoGrades(t *testing.T) {
	reply := BeatmapInfoReply{Beatmaps: []BeatmapInfo{{
		Index: 0, BeatmapID: 100, BeatmapSetID: 10, ThreadID: 1,
		RankedStatus: RankedStatusRanked, OsuRank: RankS, TaikoRank: RankA, FruitsRank: RankSH, ManiaRank: RankA,
		Checksum: "abc",
	}}}
	body, err := writeBeatmapInfoReplyB1817(NewMemoryStream(nil), reply)
	require.NoError(t, err)

	// count(4) + index(2) + 3xs32(4 each) + rankedStatus(1), then 4 rank bytes.
	base := 4 + 2 + 4 + 4 + 4 + 1
	assert.Equal(t, uint8(RankS), body[base])
	assert.Equal(t, uint8(RankA), body[base+1])
	assert.Equal(t, uint8(RankSH), body[base+2])
	assert.Equal(t, uint8(RankA), body[base+3])
}

func TestB1817MatchRoundTrip(t *testing.T) {
	codec := buildB1817(buildB1800(buildB1796Chain()))
	codec.ProtocolVersion = 4

	m := Match{
		ID: 500, InProgress: false, Type: 0, Mods: 1 << 20,
		Name: "room", Password: "", BeatmapText: "song", BeatmapID: 42,
		BeatmapChecksum: "chk", HostID: 7, Mode: 0,
		ScoringType: ScoringTypeScoreV2, TeamType: TeamTypeTeamVs, Seed: 1234,
		Slots: []MatchSlot{{PlayerID: 7, Status: SlotStatusNotReady, Team: SlotTeamRed}},
	}

	write := codec.table[BanchoMatchNew].Write
	read := codec.table[OsuMatchCreate].Read

	body, err := write(NewMemoryStream(nil), m)
	require.NoError(t, err)

	value, err := read(NewMemoryStream(body))
	require.NoError(t, err)
	got := value.(Match)
	assert.Equal(t, uint16(500), got.ID)
	assert.Equal(t, Mods(1<<20), got.Mods)
	assert.Equal(t, int32(1234), got.Seed)
	assert.Equal(t, int32(7), got.HostID)
	assert.Equal(t, ScoringTypeScoreV2, got.ScoringType)
	assert.Equal(t, TeamTypeTeamVs, got.TeamType)
}

// buildB1796Chain builds the full derivation chain up to b1796 so tests
// that need a realistic prev codec don't hand-assemble one from scratch.
func buildB1796Chain() *Codec {
	b282 := buildB282()
	b291 := buildB291(b282)
	b294 := buildB294(b291)
	b296 := buildB296(b294)
	b323 := buildB323(b296)
	b334 := buildB334(b323)
	b388 := buildB388(b334)
	b452 := buildB452(b388)
	b470 := buildB470(b452)
	b487 := buildB487(b470)
	b489 := buildB489(b487)
	b535 := buildB535(b489)
	b558 := buildB558(b535)
	b591 := buildB591(b558)
	b634 := buildB634(b591)
	b1150 := buildB1150(b634)
	b1700 := buildB1700(b1150)
	b1788 := buildB1788(b1700)
	return buildB1796(b1788)
}
