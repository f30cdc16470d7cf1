package bancho

// Status is the action a user's client reports itself as doing. Values
// match the wire constants for modern (>= b20121224) clients; earlier
// builds translate their own narrower action sets onto this one.
type Status uint8

const (
	StatusIdle Status = iota
	StatusAfk
	StatusPlaying
	StatusEditing
	StatusModding
	StatusMultiplayer
	StatusWatching
	StatusUnknown
	StatusTesting
	StatusSubmitting
	StatusPaused
	StatusLobby
	StatusMultiplaying
	StatusOsuDirect

	// StatusStatsUpdate shares Paused's wire byte (10) on very old builds;
	// the byte itself does not tell the two roles apart, and the codecs in
	// this package encode and decode only that byte.
	StatusStatsUpdate = StatusPaused
)

// Mode is the game mode a beatmap or status refers to.
type Mode uint8

const (
	ModeOsu Mode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

// LoginError is a negative BanchoLoginReply value.
type LoginError int32

const (
	LoginErrorInvalidLogin          LoginError = -1
	LoginErrorInvalidVersion        LoginError = -2
	LoginErrorUserBanned            LoginError = -3
	LoginErrorUserInactive          LoginError = -4
	LoginErrorServerError           LoginError = -5
	LoginErrorUnauthorizedTestBuild LoginError = -6
)

// Permissions is a bitmask of account privileges.
type Permissions uint8

const (
	PermissionsNone       Permissions = 0
	PermissionsRegular    Permissions = 1 << 0
	PermissionsBAT        Permissions = 1 << 1
	PermissionsSupporter  Permissions = 1 << 2
	PermissionsFriend     Permissions = 1 << 3
	PermissionsPeppy      Permissions = 1 << 4
	PermissionsTournament Permissions = 1 << 5
)

// QuitState distinguishes a full disconnect from a user still lingering
// in an IRC or legacy osu! session.
type QuitState uint8

const (
	QuitStateGone QuitState = iota
	QuitStateOsuRemaining
	QuitStateIrcRemaining
)

// AvatarExtension names the image format of a cached avatar.
type AvatarExtension uint8

const (
	AvatarExtensionEmpty AvatarExtension = iota
	AvatarExtensionPng
	AvatarExtensionJpg
)

// PresenceFilter controls which other users a client wants presence
// updates for.
type PresenceFilter uint8

const (
	PresenceFilterNoPlayers PresenceFilter = iota
	PresenceFilterAll
	PresenceFilterFriends
)

// Completeness selects how much of a user's presence a packet carries,
// introduced at b1150/b1700.
type Completeness uint8

const (
	CompletenessStatusOnly Completeness = iota
	CompletenessStatistics
	CompletenessFull
)

// ReplayAction is the action tag trailing a spectator frame bundle.
type ReplayAction uint8

const (
	ReplayActionStandard ReplayAction = iota
	ReplayActionNewSong
	ReplayActionSkip
	ReplayActionCompletion
	ReplayActionFail
	ReplayActionPause
	ReplayActionUnpause
	ReplayActionSongSelect
	ReplayActionWatchingOther
)

// ButtonState is a bitmask of pressed replay-frame buttons.
type ButtonState uint8

const (
	ButtonStateNone   ButtonState = 0
	ButtonStateLeft1  ButtonState = 1 << 0
	ButtonStateRight1 ButtonState = 1 << 1
	ButtonStateLeft2  ButtonState = 1 << 2
	ButtonStateRight2 ButtonState = 1 << 3
	ButtonStateSmoke  ButtonState = 1 << 4
)

// Rank is a beatmap/score letter grade.
type Rank uint8

const (
	RankXH Rank = iota
	RankSH
	RankX
	RankS
	RankA
	RankB
	RankC
	RankD
	RankF
	RankN
)

// Mods is a bitfield of gameplay modifiers.
type Mods uint32

const (
	ModsNoMod       Mods = 0
	ModsNoFail      Mods = 1 << 0
	ModsEasy        Mods = 1 << 1
	ModsNoVideo     Mods = 1 << 2
	ModsHidden      Mods = 1 << 3
	ModsHardRock    Mods = 1 << 4
	ModsSuddenDeath Mods = 1 << 5
	ModsDoubleTime  Mods = 1 << 6
	ModsRelax       Mods = 1 << 7
	ModsHalfTime    Mods = 1 << 8
	ModsNightcore   Mods = 1 << 9
	ModsFlashlight  Mods = 1 << 10
	ModsAutoplay    Mods = 1 << 11
	ModsSpunOut     Mods = 1 << 12
	ModsAutopilot   Mods = 1 << 13
	ModsPerfect     Mods = 1 << 14
	ModsKey4        Mods = 1 << 15
	ModsKey5        Mods = 1 << 16
	ModsKey6        Mods = 1 << 17
	ModsKey7        Mods = 1 << 18
	ModsKey8        Mods = 1 << 19
	ModsFadeIn      Mods = 1 << 20
	ModsRandom      Mods = 1 << 21
	ModsCinema      Mods = 1 << 22
	ModsTarget      Mods = 1 << 23
	ModsKey9        Mods = 1 << 24
	ModsKeyCoop     Mods = 1 << 25
	ModsKey1        Mods = 1 << 26
	ModsKey3        Mods = 1 << 27
	ModsKey2        Mods = 1 << 28
	ModsScoreV2     Mods = 1 << 29
	ModsMirror      Mods = 1 << 30
)

// MatchType distinguishes a standard match from a "powerplay" one.
type MatchType uint8

const (
	MatchTypeStandard MatchType = iota
	MatchTypePowerplay
)

// ScoringType selects how a match ranks its players mid-game.
type ScoringType uint8

const (
	ScoringTypeScore ScoringType = iota
	ScoringTypeAccuracy
	ScoringTypeCombo
	ScoringTypeScoreV2
)

// TeamType selects a match's team mode.
type TeamType uint8

const (
	TeamTypeHeadToHead TeamType = iota
	TeamTypeTagCoop
	TeamTypeTeamVs
	TeamTypeTagTeam
)

// SlotStatus is a bitmask describing one multiplayer slot's state.
type SlotStatus uint8

const (
	SlotStatusOpen     SlotStatus = 1 << 0
	SlotStatusLocked   SlotStatus = 1 << 1
	SlotStatusNotReady SlotStatus = 1 << 2
	SlotStatusReady    SlotStatus = 1 << 3
	SlotStatusNoMap    SlotStatus = 1 << 4
	SlotStatusPlaying  SlotStatus = 1 << 5
	SlotStatusComplete SlotStatus = 1 << 6
	SlotStatusQuit     SlotStatus = 1 << 7

	SlotStatusHasPlayer = SlotStatusNotReady | SlotStatusReady | SlotStatusNoMap |
		SlotStatusPlaying | SlotStatusComplete
)

// HasPlayer reports whether the slot is occupied, under any of the
// "has a player in it" statuses.
func (s SlotStatus) HasPlayer() bool {
	return s&SlotStatusHasPlayer != 0
}

// SlotTeam is the team color assigned to a multiplayer slot.
type SlotTeam uint8

const (
	SlotTeamNeutral SlotTeam = iota
	SlotTeamBlue
	SlotTeamRed
)

// RankedStatus is a beatmap's ranked state.
type RankedStatus int8

const (
	RankedStatusPending RankedStatus = iota
	RankedStatusRanked
	RankedStatusApproved
	RankedStatusQualified
)
