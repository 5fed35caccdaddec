// Package rosterevents defines topics and payloads for roster transactions.
package rosterevents

import (
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

const (
	SignRequestedV1 = "roster.sign.requested.v1"
	SignedV1        = "roster.signed.v1"
	SignFailedV1    = "roster.sign.failed.v1"

	ReleaseRequestedV1 = "roster.release.requested.v1"
	ReleasedV1         = "roster.released.v1"
	ReleaseFailedV1    = "roster.release.failed.v1"

	DemandRequestedV1 = "roster.demand.requested.v1"
	DemandedV1        = "roster.demanded.v1"
	DemandFailedV1    = "roster.demand.failed.v1"

	PromoteRequestedV1 = "roster.promote.requested.v1"
	PromotedV1         = "roster.promoted.v1"
	PromoteFailedV1    = "roster.promote.failed.v1"
)

// SignRequestedPayloadV1 carries the sign command.
type SignRequestedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
}

// SignedPayloadV1 confirms a completed signing.
type SignedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
	TeamRole sharedtypes.RoleID  `json:"team_role"`
}

// SignFailedPayloadV1 reports a rejected signing. Reason is one of the
// transaction rejection reasons (window_closed, not_authorized, ...).
type SignFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
	Reason   string              `json:"reason"`
}

// ReleaseRequestedPayloadV1 carries the release command.
type ReleaseRequestedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
}

// ReleasedPayloadV1 confirms a completed release.
type ReleasedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
	TeamRole sharedtypes.RoleID  `json:"team_role"`
}

// ReleaseFailedPayloadV1 reports a rejected release.
type ReleaseFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
	Reason   string              `json:"reason"`
}

// DemandRequestedPayloadV1 carries the demand command (voluntary departure).
type DemandRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	ActorID sharedtypes.UserID  `json:"actor_id"`
}

// DemandedPayloadV1 confirms a completed departure. NotifiedManagers lists
// the managers and assistants who received the departure notice.
type DemandedPayloadV1 struct {
	GuildID          sharedtypes.GuildID  `json:"guild_id"`
	ActorID          sharedtypes.UserID   `json:"actor_id"`
	TeamRole         sharedtypes.RoleID   `json:"team_role"`
	NotifiedManagers []sharedtypes.UserID `json:"notified_managers"`
}

// DemandFailedPayloadV1 reports a rejected departure.
type DemandFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	ActorID sharedtypes.UserID  `json:"actor_id"`
	Reason  string              `json:"reason"`
}

// PromoteRequestedPayloadV1 carries the promote command.
type PromoteRequestedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
}

// PromotedPayloadV1 confirms a granted assistant role.
type PromotedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
}

// PromoteFailedPayloadV1 reports a rejected promotion.
type PromoteFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
	Reason   string              `json:"reason"`
}
