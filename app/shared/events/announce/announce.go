// Package announceevents defines the announcement topic consumed by the
// gateway's card compositor. The backend only emits the raw ingredients;
// rendering is entirely the gateway's concern.
package announceevents

import (
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

const TransactionAnnouncementV1 = "announce.transaction.v1"

// Kind of roster transaction being announced.
const (
	KindSigned   = "signed"
	KindReleased = "released"
	KindDemanded = "demanded"
	KindTransfer = "transferred"
	KindPromoted = "promoted"
)

// TransactionAnnouncementPayloadV1 carries everything the compositor needs:
// the player, the team's logo (URL or emoji) and optional custom background,
// and the destination channel.
type TransactionAnnouncementPayloadV1 struct {
	GuildID    sharedtypes.GuildID   `json:"guild_id"`
	ChannelID  sharedtypes.ChannelID `json:"channel_id"`
	Kind       string                `json:"kind"`
	PlayerID   sharedtypes.UserID    `json:"player_id"`
	TeamRole   sharedtypes.RoleID    `json:"team_role"`
	Logo       string                `json:"logo"`
	Background string                `json:"background,omitempty"`
	Caption    string                `json:"caption"`
}
