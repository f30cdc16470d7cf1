package bancho

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// UserStatus is a client's self-reported activity, read from OsuUserStatus
// and written inside a BanchoUserPresence/BanchoUserStats packet.
type UserStatus struct {
	Action          Status
	Text            string
	BeatmapChecksum string
	Mods            Mods
	Mode            Mode
	BeatmapID       int32

	// UpdateStats marks a status as StatusStatsUpdate rather than
	// StatusPaused; the two share wire byte 10. No codec in this package
	// reads or writes the flag: encoding sends only the action byte, and a
	// decoded status always has UpdateStats false.
	UpdateStats bool
}

// UserPresence is the slower-changing half of a user's public profile:
// location and account flags, split from UserStats at b1788.
type UserPresence struct {
	IsIRC        bool
	Timezone     int8
	CountryIndex uint8
	Permissions  Permissions
	Longitude    float32
	Latitude     float32
	City         string
}

// NewUserPresence builds a UserPresence with timezone and country index
// clamped to the ranges every build's wire format can actually carry,
// rather than letting an out-of-range value silently wrap on encode.
func NewUserPresence(isIRC bool, timezone int, countryIndex int, permissions Permissions, longitude, latitude float32, city string) UserPresence {
	if timezone < -24 {
		timezone = -24
	}
	if timezone > 24 {
		timezone = 24
	}
	if countryIndex < 0 {
		countryIndex = 0
	}
	if countryIndex > 255 {
		countryIndex = 255
	}
	return UserPresence{
		IsIRC:        isIRC,
		Timezone:     int8(timezone),
		CountryIndex: uint8(countryIndex),
		Permissions:  permissions,
		Longitude:    longitude,
		Latitude:     latitude,
		City:         city,
	}
}

// UserStats is the faster-changing half of a user's public profile: rank
// and play statistics.
type UserStats struct {
	Rank      uint32
	RankedScore int64
	TotalScore  int64
	Accuracy    float32
	Playcount   int32
	PP          int32
}

// UserInfo is one user's full public picture: identity plus whichever of
// Presence/Status/Stats the current Completeness carries. A nil field
// means that part wasn't included in the packet this came from.
type UserInfo struct {
	ID       int32
	Name     string
	Presence *UserPresence
	Status   *UserStatus
	Stats    *UserStats
}

// AvatarFilename is the cached-avatar path osu! derives from a user id.
// Builds before b1150 append a fixed "_000.png" suffix (see
// chio/types.py's UserInfo.avatar_filename); b1150 onward uses the bare
// id, with no extension appended.
func (u UserInfo) AvatarFilename(legacy bool) string {
	if legacy {
		return fmt.Sprintf("%d_000.png", u.ID)
	}
	return fmt.Sprintf("%d", u.ID)
}

// UserQuit reports a user leaving, with however much of their UserInfo
// the sending build still had on hand.
type UserQuit struct {
	Info      *UserInfo
	QuitState QuitState
}

// Message is a chat line, for both public channels and private messages.
// IsDirectMessage is derived from Target rather than stored: it's true
// when Target doesn't start with '#', matching how every build's
// encoder/decoder tells an IRC-style channel name from a username. b294's
// private-message layout also carries it as a trailing bool.
type Message struct {
	Sender   string
	SenderID int32
	Content  string
	Target   string
}

// IsDirectMessage reports whether Target names a user rather than a
// channel.
func (m Message) IsDirectMessage() bool {
	return len(m.Target) == 0 || m.Target[0] != '#'
}

// Channel describes one joinable chat channel.
type Channel struct {
	Name      string
	Topic     string
	Owner     string
	UserCount int32
}

// BeatmapInfo is one beatmap's ranked/grade summary, as returned in a
// BanchoBeatmapInfoReply.
type BeatmapInfo struct {
	Index         int16
	BeatmapID     int32
	BeatmapSetID  int32
	ThreadID      int32
	RankedStatus  RankedStatus
	OsuRank       Rank
	TaikoRank     Rank
	FruitsRank    Rank
	ManiaRank     Rank
	Checksum      string
}

// IsRanked reports whether the beatmap counts for ranked score.
func (b BeatmapInfo) IsRanked() bool {
	return b.RankedStatus == RankedStatusRanked || b.RankedStatus == RankedStatusApproved
}

// BeatmapInfoRequest is a client's bulk lookup by filename and/or id.
type BeatmapInfoRequest struct {
	Filenames []string
	IDs       []int32
}

// BeatmapInfoReply answers a BeatmapInfoRequest.
type BeatmapInfoReply struct {
	Beatmaps []BeatmapInfo
}

// ReplayFrame is one sampled instant of gameplay input.
//
// LegacyByte originally carried whether the left mouse key was pressed;
// from b334 onward it is vestigial, kept only for wire-layout
// compatibility; the codec reads and writes it as a raw byte, unchanged.
type ReplayFrame struct {
	ButtonState ButtonState
	LegacyByte  uint8
	MouseX      float32
	MouseY      float32
	Time        int32
}

// ScoreFrame is a point-in-time score snapshot attached to a spectator
// frame bundle.
type ScoreFrame struct {
	Time          int32
	ID            uint8
	Count300      uint16
	Count100      uint16
	Count50       uint16
	CountGeki     uint16
	CountKatu     uint16
	CountMiss     uint16
	TotalScore    int32
	MaxCombo      uint16
	CurrentCombo  uint16
	Perfect       bool
	HP            uint8
	TagByte       uint8
}

// Checksum reproduces the b323 score-frame integrity hash, an MD5 over a
// fixed field ordering with a literal "false" standing in for a pass flag
// that was never wired up client-side (see chio/types.py's ScoreFrame).
func (f ScoreFrame) Checksum() string {
	data := fmt.Sprintf("%dfalse%d%d%d%d%d%d%d%d",
		f.Time, f.Count300, f.Count50, f.CountGeki, f.CountKatu, f.CountMiss,
		f.CurrentCombo, f.MaxCombo, f.HP)
	sum := md5.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}

// ReplayFrameBundle is a batch of spectator frames sent between
// OsuSpectateFrames/BanchoSpectateFrames, with an optional trailing
// ScoreFrame that newer builds detect via the stream's remaining byte
// count rather than a presence flag.
type ReplayFrameBundle struct {
	Extra      int32
	Action     ReplayAction
	Frames     []ReplayFrame
	ScoreFrame *ScoreFrame
}

// MatchSlot is one seat in a multiplayer match.
type MatchSlot struct {
	PlayerID int32
	Status   SlotStatus
	Team     SlotTeam
	Mods     Mods
}

// Match is a multiplayer lobby's full state.
type Match struct {
	ID              uint16
	InProgress      bool
	Type            MatchType
	Mods            Mods
	Name            string
	Password        string
	BeatmapText     string
	BeatmapID       int32
	BeatmapChecksum string
	Slots           []MatchSlot
	HostID          int32
	Mode            Mode
	ScoringType     ScoringType
	TeamType        TeamType
	FreeMod         bool
	Seed            int32
}

// MatchJoin is a client's request to join a match by id and password.
type MatchJoin struct {
	MatchID  uint16
	Password string
}

// TitleUpdate carries the main-menu banner image and its click-through
// URL.
type TitleUpdate struct {
	ImageURL    string
	RedirectURL string
}

// Restart tells the client to reconnect after a delay, a feature added at
// b1788 (chio/versions/b1788 introduces a dedicated restart packet in
// place of overloading a disconnect reply).
type Restart struct {
	RetryAfterMs int32
}

// ProtocolNegotiation is the server's reply to a client's handshake that
// seeds a Codec's negotiated protocol version, introduced at b487.
type ProtocolNegotiation struct {
	Version int32
}
