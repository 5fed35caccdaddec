// Package freeagentevents defines topics and payloads for the free-agent board.
package freeagentevents

import (
	"time"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

const (
	FreeAgentListRequestedV1 = "freeagent.list.requested.v1"
	FreeAgentListedV1        = "freeagent.listed.v1"
	FreeAgentListFailedV1    = "freeagent.list.failed.v1"

	FreeAgentWithdrawRequestedV1 = "freeagent.withdraw.requested.v1"
	FreeAgentWithdrawnV1         = "freeagent.withdrawn.v1"
	FreeAgentWithdrawFailedV1    = "freeagent.withdraw.failed.v1"

	FreeAgentBrowseRequestedV1 = "freeagent.browse.requested.v1"
	FreeAgentBrowsedV1         = "freeagent.browsed.v1"
	FreeAgentBrowseFailedV1    = "freeagent.browse.failed.v1"
)

// FreeAgentListRequestedPayloadV1 carries the looking_for_team command.
type FreeAgentListRequestedPayloadV1 struct {
	GuildID     sharedtypes.GuildID  `json:"guild_id"`
	UserID      sharedtypes.UserID   `json:"user_id"`
	Region      sharedtypes.Region   `json:"region"`
	Position    sharedtypes.Position `json:"position"`
	Description string               `json:"description"`
}

// ListingView is the wire representation of one listing.
type ListingView struct {
	UserID      sharedtypes.UserID   `json:"user_id"`
	Region      sharedtypes.Region   `json:"region"`
	Position    sharedtypes.Position `json:"position"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"created_at"`
}

// FreeAgentListedPayloadV1 confirms a stored listing.
type FreeAgentListedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Listing ListingView         `json:"listing"`
}

// FreeAgentListFailedPayloadV1 reports a rejected listing.
type FreeAgentListFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
	Reason  string              `json:"reason"`
}

// FreeAgentWithdrawRequestedPayloadV1 delists the invoking user.
type FreeAgentWithdrawRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
}

// FreeAgentWithdrawnPayloadV1 confirms a removed listing.
type FreeAgentWithdrawnPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
}

// FreeAgentWithdrawFailedPayloadV1 reports a rejected withdrawal.
type FreeAgentWithdrawFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
	Reason  string              `json:"reason"`
}

// FreeAgentBrowseRequestedPayloadV1 carries the free_agents command.
type FreeAgentBrowseRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

// FreeAgentBrowsedPayloadV1 returns the first page of current listings.
// Truncated signals the display cap was hit; nothing is deleted.
type FreeAgentBrowsedPayloadV1 struct {
	GuildID   sharedtypes.GuildID `json:"guild_id"`
	Listings  []ListingView       `json:"listings"`
	Truncated bool                `json:"truncated"`
}

// FreeAgentBrowseFailedPayloadV1 reports a failed browse.
type FreeAgentBrowseFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}
