package rosterservice

import (
	"context"

	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// ResolvedTeam is the team a user currently belongs to, derived from their
// platform roles. Membership is never stored; the role set is the truth.
type ResolvedTeam struct {
	RoleID      sharedtypes.RoleID
	Logo        string
	RosterLimit int
	Background  string
}

// Managers splits a team's leadership by authority. A user holding both
// guild roles counts as a head manager only.
type Managers struct {
	Heads      []sharedtypes.UserID
	Assistants []sharedtypes.UserID
}

// SignOutcome carries everything the handler needs to confirm and
// announce a completed signing.
type SignOutcome struct {
	PlayerID    sharedtypes.UserID
	TeamRole    sharedtypes.RoleID
	Logo        string
	Background  string
	ChannelID   sharedtypes.ChannelID
	DMDelivered bool
}

// ReleaseOutcome carries a completed release.
type ReleaseOutcome struct {
	PlayerID    sharedtypes.UserID
	TeamRole    sharedtypes.RoleID
	Logo        string
	Background  string
	ChannelID   sharedtypes.ChannelID
	DMDelivered bool
}

// DemandOutcome carries a completed voluntary departure.
type DemandOutcome struct {
	ActorID          sharedtypes.UserID
	TeamRole         sharedtypes.RoleID
	Logo             string
	Background       string
	ChannelID        sharedtypes.ChannelID
	NotifiedManagers []sharedtypes.UserID
}

// PromoteOutcome carries a granted assistant role.
type PromoteOutcome struct {
	PlayerID   sharedtypes.UserID
	TeamRole   sharedtypes.RoleID
	Logo       string
	Background string
	ChannelID  sharedtypes.ChannelID
}

// Result aliases to reduce generic verbosity.
type (
	SignResult    = results.OperationResult[SignOutcome, error]
	ReleaseResult = results.OperationResult[ReleaseOutcome, error]
	DemandResult  = results.OperationResult[DemandOutcome, error]
	PromoteResult = results.OperationResult[PromoteOutcome, error]
)

// Service defines the membership resolver and the roster transaction
// engine. ResolveTeam and ResolveManagers are exported for the transfer
// module, which negotiates on top of the same derived membership.
type Service interface {
	ResolveTeam(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*ResolvedTeam, error)
	ResolveManagers(ctx context.Context, guildID sharedtypes.GuildID, teamRole sharedtypes.RoleID) (Managers, error)
	Sign(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (SignResult, error)
	Release(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (ReleaseResult, error)
	Demand(ctx context.Context, guildID sharedtypes.GuildID, actorID sharedtypes.UserID) (DemandResult, error)
	Promote(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (PromoteResult, error)
}
