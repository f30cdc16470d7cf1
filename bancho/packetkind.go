package bancho

import "fmt"

// PacketKind is a closed set of logical packet identities, independent of
// any build's numeric wire opcode. Numeric values below match the modern
// (>= b20121224) wire opcode table bit-for-bit; the two legacy-only kinds
// (IrcJoin, MatchChangeBeatmap) carry sentinel values no modern opcode
// uses, since modern builds don't wire them at all.
type PacketKind int32

// Direction tells which side of the connection sends a PacketKind.
type Direction uint8

const (
	// DirectionClientToServer packets are named Osu* in the original
	// protocol and are only ever read by a server-side codec.
	DirectionClientToServer Direction = iota
	// DirectionServerToClient packets are named Bancho* and are only ever
	// written by a server-side codec.
	DirectionServerToClient
)

const (
	OsuUserStatus          PacketKind = 0
	OsuMessage             PacketKind = 1
	OsuExit                PacketKind = 2
	OsuStatusUpdateRequest PacketKind = 3
	OsuPong                PacketKind = 4

	BanchoLoginReply PacketKind = 5
	BanchoCommandError PacketKind = 6
	BanchoMessage      PacketKind = 7
	BanchoPing         PacketKind = 8

	BanchoIrcChangeUsername PacketKind = 9
	BanchoIrcQuit           PacketKind = 10
	BanchoUserStats         PacketKind = 11
	BanchoUserQuit          PacketKind = 12
	BanchoSpectatorJoined   PacketKind = 13
	BanchoSpectatorLeft     PacketKind = 14
	BanchoSpectateFrames    PacketKind = 15

	OsuStartSpectating PacketKind = 16
	OsuStopSpectating  PacketKind = 17
	OsuSpectateFrames  PacketKind = 18

	BanchoVersionUpdate PacketKind = 19

	OsuErrorReport PacketKind = 20
	OsuCantSpectate PacketKind = 21

	BanchoSpectatorCantSpectate PacketKind = 22
	BanchoGetAttention          PacketKind = 23
	BanchoAnnounce              PacketKind = 24

	OsuPrivateMessage PacketKind = 25

	BanchoMatchUpdate  PacketKind = 26
	BanchoMatchNew     PacketKind = 27
	BanchoMatchDisband PacketKind = 28

	OsuLobbyPart    PacketKind = 29
	OsuLobbyJoin    PacketKind = 30
	OsuMatchCreate  PacketKind = 31
	OsuMatchJoin    PacketKind = 32
	OsuMatchPart    PacketKind = 33

	BanchoLobbyJoin        PacketKind = 34
	BanchoLobbyPart        PacketKind = 35
	BanchoMatchJoinSuccess PacketKind = 36
	BanchoMatchJoinFail    PacketKind = 37

	OsuMatchChangeSlot     PacketKind = 38
	OsuMatchReady          PacketKind = 39
	OsuMatchLock           PacketKind = 40
	OsuMatchChangeSettings PacketKind = 41

	BanchoFellowSpectatorJoined PacketKind = 42
	BanchoFellowSpectatorLeft   PacketKind = 43

	OsuMatchStart PacketKind = 44

	BanchoMatchStart PacketKind = 46

	OsuMatchScoreUpdate PacketKind = 47

	BanchoMatchScoreUpdate PacketKind = 48

	OsuMatchComplete PacketKind = 49

	BanchoMatchTransferHost PacketKind = 50

	OsuMatchChangeMods   PacketKind = 51
	OsuMatchLoadComplete PacketKind = 52

	BanchoMatchAllPlayersLoaded PacketKind = 53

	OsuMatchNoBeatmap PacketKind = 54
	OsuMatchNotReady  PacketKind = 55
	OsuMatchFailed    PacketKind = 56

	BanchoMatchPlayerFailed PacketKind = 57
	BanchoMatchComplete     PacketKind = 58

	OsuMatchHasBeatmap  PacketKind = 59
	OsuMatchSkipRequest PacketKind = 60

	BanchoMatchSkip    PacketKind = 61
	BanchoUnauthorized PacketKind = 62

	OsuChannelJoin PacketKind = 63

	BanchoChannelJoinSuccess       PacketKind = 64
	BanchoChannelAvailable         PacketKind = 65
	BanchoChannelRevoked           PacketKind = 66
	BanchoChannelAvailableAutojoin PacketKind = 67

	OsuBeatmapInfoRequest PacketKind = 68

	BanchoBeatmapInfoReply PacketKind = 69

	OsuMatchTransferHost PacketKind = 70

	BanchoLoginPermissions PacketKind = 71
	BanchoFriendsList      PacketKind = 72

	OsuFriendsAdd    PacketKind = 73
	OsuFriendsRemove PacketKind = 74

	BanchoProtocolNegotiation PacketKind = 75
	BanchoTitleUpdate         PacketKind = 76

	OsuMatchChangeTeam PacketKind = 77
	OsuChannelLeave    PacketKind = 78
	OsuReceiveUpdates  PacketKind = 79

	BanchoMonitor                PacketKind = 80
	BanchoMatchPlayerSkipped     PacketKind = 81

	OsuSetIrcAwayMessage PacketKind = 82

	BanchoUserPresence PacketKind = 83

	OsuUserStatsRequest PacketKind = 85

	BanchoRestart PacketKind = 86

	OsuInvite PacketKind = 87

	BanchoInvite                PacketKind = 88
	BanchoChannelInfoComplete   PacketKind = 89

	OsuMatchChangePassword PacketKind = 90

	BanchoMatchChangePassword PacketKind = 91
	BanchoSilenceInfo         PacketKind = 92

	OsuTournamentMatchInfo PacketKind = 93

	BanchoUserSilenced       PacketKind = 94
	BanchoUserPresenceSingle PacketKind = 95
	BanchoUserPresenceBundle PacketKind = 96

	OsuPresenceRequest     PacketKind = 97
	OsuPresenceRequestAll  PacketKind = 98
	OsuChangeFriendOnlyDMs PacketKind = 99

	BanchoUserDMsBlocked          PacketKind = 100
	BanchoTargetIsSilenced        PacketKind = 101
	BanchoVersionUpdateForced     PacketKind = 102
	BanchoSwitchServer            PacketKind = 103
	BanchoAccountRestricted       PacketKind = 104
	BanchoRTX                     PacketKind = 105
	BanchoMatchAbort              PacketKind = 106
	BanchoSwitchTournamentServer  PacketKind = 107

	OsuTournamentJoinMatchChannel  PacketKind = 108
	OsuTournamentLeaveMatchChannel PacketKind = 109

	// BanchoIrcJoin and OsuMatchChangeBeatmap are legacy-only: no modern
	// opcode carries them, so they get sentinel values outside the 0-109
	// modern range rather than colliding with a real opcode.
	BanchoIrcJoin         PacketKind = 0x7fff0000 + 0xffff
	OsuMatchChangeBeatmap PacketKind = 0x7fff0000 + 0xfffe
)

type packetInfo struct {
	name      string
	direction Direction
}

var packetInfoTable = map[PacketKind]packetInfo{
	OsuUserStatus:          {"OsuUserStatus", DirectionClientToServer},
	OsuMessage:             {"OsuMessage", DirectionClientToServer},
	OsuExit:                {"OsuExit", DirectionClientToServer},
	OsuStatusUpdateRequest: {"OsuStatusUpdateRequest", DirectionClientToServer},
	OsuPong:                {"OsuPong", DirectionClientToServer},

	BanchoLoginReply:   {"BanchoLoginReply", DirectionServerToClient},
	BanchoCommandError: {"BanchoCommandError", DirectionServerToClient},
	BanchoMessage:      {"BanchoMessage", DirectionServerToClient},
	BanchoPing:         {"BanchoPing", DirectionServerToClient},

	BanchoIrcChangeUsername: {"BanchoIrcChangeUsername", DirectionServerToClient},
	BanchoIrcQuit:           {"BanchoIrcQuit", DirectionServerToClient},
	BanchoUserStats:         {"BanchoUserStats", DirectionServerToClient},
	BanchoUserQuit:          {"BanchoUserQuit", DirectionServerToClient},
	BanchoSpectatorJoined:   {"BanchoSpectatorJoined", DirectionServerToClient},
	BanchoSpectatorLeft:     {"BanchoSpectatorLeft", DirectionServerToClient},
	BanchoSpectateFrames:    {"BanchoSpectateFrames", DirectionServerToClient},

	OsuStartSpectating: {"OsuStartSpectating", DirectionClientToServer},
	OsuStopSpectating:  {"OsuStopSpectating", DirectionClientToServer},
	OsuSpectateFrames:  {"OsuSpectateFrames", DirectionClientToServer},

	BanchoVersionUpdate: {"BanchoVersionUpdate", DirectionServerToClient},

	OsuErrorReport:  {"OsuErrorReport", DirectionClientToServer},
	OsuCantSpectate: {"OsuCantSpectate", DirectionClientToServer},

	BanchoSpectatorCantSpectate: {"BanchoSpectatorCantSpectate", DirectionServerToClient},
	BanchoGetAttention:          {"BanchoGetAttention", DirectionServerToClient},
	BanchoAnnounce:              {"BanchoAnnounce", DirectionServerToClient},

	OsuPrivateMessage: {"OsuPrivateMessage", DirectionClientToServer},

	BanchoMatchUpdate:  {"BanchoMatchUpdate", DirectionServerToClient},
	BanchoMatchNew:     {"BanchoMatchNew", DirectionServerToClient},
	BanchoMatchDisband: {"BanchoMatchDisband", DirectionServerToClient},

	OsuLobbyPart:   {"OsuLobbyPart", DirectionClientToServer},
	OsuLobbyJoin:   {"OsuLobbyJoin", DirectionClientToServer},
	OsuMatchCreate: {"OsuMatchCreate", DirectionClientToServer},
	OsuMatchJoin:   {"OsuMatchJoin", DirectionClientToServer},
	OsuMatchPart:   {"OsuMatchPart", DirectionClientToServer},

	BanchoLobbyJoin:        {"BanchoLobbyJoin", DirectionServerToClient},
	BanchoLobbyPart:        {"BanchoLobbyPart", DirectionServerToClient},
	BanchoMatchJoinSuccess: {"BanchoMatchJoinSuccess", DirectionServerToClient},
	BanchoMatchJoinFail:    {"BanchoMatchJoinFail", DirectionServerToClient},

	OsuMatchChangeSlot:     {"OsuMatchChangeSlot", DirectionClientToServer},
	OsuMatchReady:          {"OsuMatchReady", DirectionClientToServer},
	OsuMatchLock:           {"OsuMatchLock", DirectionClientToServer},
	OsuMatchChangeSettings: {"OsuMatchChangeSettings", DirectionClientToServer},

	BanchoFellowSpectatorJoined: {"BanchoFellowSpectatorJoined", DirectionServerToClient},
	BanchoFellowSpectatorLeft:   {"BanchoFellowSpectatorLeft", DirectionServerToClient},

	OsuMatchStart: {"OsuMatchStart", DirectionClientToServer},

	BanchoMatchStart: {"BanchoMatchStart", DirectionServerToClient},

	OsuMatchScoreUpdate: {"OsuMatchScoreUpdate", DirectionClientToServer},

	BanchoMatchScoreUpdate: {"BanchoMatchScoreUpdate", DirectionServerToClient},

	OsuMatchComplete: {"OsuMatchComplete", DirectionClientToServer},

	BanchoMatchTransferHost: {"BanchoMatchTransferHost", DirectionServerToClient},

	OsuMatchChangeMods:   {"OsuMatchChangeMods", DirectionClientToServer},
	OsuMatchLoadComplete: {"OsuMatchLoadComplete", DirectionClientToServer},

	BanchoMatchAllPlayersLoaded: {"BanchoMatchAllPlayersLoaded", DirectionServerToClient},

	OsuMatchNoBeatmap: {"OsuMatchNoBeatmap", DirectionClientToServer},
	OsuMatchNotReady:  {"OsuMatchNotReady", DirectionClientToServer},
	OsuMatchFailed:    {"OsuMatchFailed", DirectionClientToServer},

	BanchoMatchPlayerFailed: {"BanchoMatchPlayerFailed", DirectionServerToClient},
	BanchoMatchComplete:     {"BanchoMatchComplete", DirectionServerToClient},

	OsuMatchHasBeatmap:  {"OsuMatchHasBeatmap", DirectionClientToServer},
	OsuMatchSkipRequest: {"OsuMatchSkipRequest", DirectionClientToServer},

	BanchoMatchSkip:    {"BanchoMatchSkip", DirectionServerToClient},
	BanchoUnauthorized: {"BanchoUnauthorized", DirectionServerToClient},

	OsuChannelJoin: {"OsuChannelJoin", DirectionClientToServer},

	BanchoChannelJoinSuccess:       {"BanchoChannelJoinSuccess", DirectionServerToClient},
	BanchoChannelAvailable:         {"BanchoChannelAvailable", DirectionServerToClient},
	BanchoChannelRevoked:           {"BanchoChannelRevoked", DirectionServerToClient},
	BanchoChannelAvailableAutojoin: {"BanchoChannelAvailableAutojoin", DirectionServerToClient},

	OsuBeatmapInfoRequest: {"OsuBeatmapInfoRequest", DirectionClientToServer},

	BanchoBeatmapInfoReply: {"BanchoBeatmapInfoReply", DirectionServerToClient},

	OsuMatchTransferHost: {"OsuMatchTransferHost", DirectionClientToServer},

	BanchoLoginPermissions: {"BanchoLoginPermissions", DirectionServerToClient},
	BanchoFriendsList:      {"BanchoFriendsList", DirectionServerToClient},

	OsuFriendsAdd:    {"OsuFriendsAdd", DirectionClientToServer},
	OsuFriendsRemove: {"OsuFriendsRemove", DirectionClientToServer},

	BanchoProtocolNegotiation: {"BanchoProtocolNegotiation", DirectionServerToClient},
	BanchoTitleUpdate:         {"BanchoTitleUpdate", DirectionServerToClient},

	OsuMatchChangeTeam: {"OsuMatchChangeTeam", DirectionClientToServer},
	OsuChannelLeave:    {"OsuChannelLeave", DirectionClientToServer},
	OsuReceiveUpdates:  {"OsuReceiveUpdates", DirectionClientToServer},

	BanchoMonitor:            {"BanchoMonitor", DirectionServerToClient},
	BanchoMatchPlayerSkipped: {"BanchoMatchPlayerSkipped", DirectionServerToClient},

	OsuSetIrcAwayMessage: {"OsuSetIrcAwayMessage", DirectionClientToServer},

	BanchoUserPresence: {"BanchoUserPresence", DirectionServerToClient},

	OsuUserStatsRequest: {"OsuUserStatsRequest", DirectionClientToServer},

	BanchoRestart: {"BanchoRestart", DirectionServerToClient},

	OsuInvite: {"OsuInvite", DirectionClientToServer},

	BanchoInvite:              {"BanchoInvite", DirectionServerToClient},
	BanchoChannelInfoComplete: {"BanchoChannelInfoComplete", DirectionServerToClient},

	OsuMatchChangePassword: {"OsuMatchChangePassword", DirectionClientToServer},

	BanchoMatchChangePassword: {"BanchoMatchChangePassword", DirectionServerToClient},
	BanchoSilenceInfo:         {"BanchoSilenceInfo", DirectionServerToClient},

	OsuTournamentMatchInfo: {"OsuTournamentMatchInfo", DirectionClientToServer},

	BanchoUserSilenced:       {"BanchoUserSilenced", DirectionServerToClient},
	BanchoUserPresenceSingle: {"BanchoUserPresenceSingle", DirectionServerToClient},
	BanchoUserPresenceBundle: {"BanchoUserPresenceBundle", DirectionServerToClient},

	OsuPresenceRequest:     {"OsuPresenceRequest", DirectionClientToServer},
	OsuPresenceRequestAll:  {"OsuPresenceRequestAll", DirectionClientToServer},
	OsuChangeFriendOnlyDMs: {"OsuChangeFriendOnlyDMs", DirectionClientToServer},

	BanchoUserDMsBlocked:         {"BanchoUserDMsBlocked", DirectionServerToClient},
	BanchoTargetIsSilenced:       {"BanchoTargetIsSilenced", DirectionServerToClient},
	BanchoVersionUpdateForced:    {"BanchoVersionUpdateForced", DirectionServerToClient},
	BanchoSwitchServer:           {"BanchoSwitchServer", DirectionServerToClient},
	BanchoAccountRestricted:      {"BanchoAccountRestricted", DirectionServerToClient},
	BanchoRTX:                    {"BanchoRTX", DirectionServerToClient},
	BanchoMatchAbort:             {"BanchoMatchAbort", DirectionServerToClient},
	BanchoSwitchTournamentServer: {"BanchoSwitchTournamentServer", DirectionServerToClient},

	OsuTournamentJoinMatchChannel:  {"OsuTournamentJoinMatchChannel", DirectionClientToServer},
	OsuTournamentLeaveMatchChannel: {"OsuTournamentLeaveMatchChannel", DirectionClientToServer},

	BanchoIrcJoin:         {"BanchoIrcJoin", DirectionServerToClient},
	OsuMatchChangeBeatmap: {"OsuMatchChangeBeatmap", DirectionClientToServer},
}

// String implements fmt.Stringer for readable error messages and CLI
// output; it does not participate in wire encoding.
func (k PacketKind) String() string {
	if info, ok := packetInfoTable[k]; ok {
		return info.name
	}
	return fmt.Sprintf("PacketKind(%d)", int32(k))
}

// IsClientPacket reports whether the wire only ever carries k from client
// to server (an "Osu*" packet in the original naming).
func (k PacketKind) IsClientPacket() bool {
	info, ok := packetInfoTable[k]
	return ok && info.direction == DirectionClientToServer
}

// IsServerPacket reports whether the wire only ever carries k from server
// to client (a "Bancho*" packet in the original naming).
func (k PacketKind) IsServerPacket() bool {
	info, ok := packetInfoTable[k]
	return ok && info.direction == DirectionServerToClient
}

// knownPacketKind reports whether k is part of the closed PacketKind set
// at all (used to reject a decoded opcode that maps to nothing).
func knownPacketKind(k PacketKind) bool {
	_, ok := packetInfoTable[k]
	return ok
}
