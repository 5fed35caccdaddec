package freeagentservice

import (
	"context"

	freeagentevents "github.com/Harbour-City-League/roster-bot/app/shared/events/freeagent"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// BrowsePage is the first page of current listings. Truncated signals the
// display cap was hit; nothing is deleted.
type BrowsePage struct {
	Listings  []freeagentevents.ListingView
	Truncated bool
}

// Result aliases to reduce generic verbosity.
type (
	ListingResult  = results.OperationResult[freeagentevents.ListingView, error]
	WithdrawResult = results.OperationResult[sharedtypes.UserID, error]
	BrowseResult   = results.OperationResult[BrowsePage, error]
)

// Service defines free-agent board operations. RemoveOnSign is the
// cross-module hook the transaction engine calls after a successful
// sign or transfer accept.
type Service interface {
	ListYourself(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, region sharedtypes.Region, position sharedtypes.Position, description string) (ListingResult, error)
	Withdraw(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (WithdrawResult, error)
	BrowseFreeAgents(ctx context.Context, guildID sharedtypes.GuildID) (BrowseResult, error)
	RemoveOnSign(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error
}
