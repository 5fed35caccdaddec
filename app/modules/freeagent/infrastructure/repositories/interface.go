package freeagentdb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Repository is the data-access contract for the free-agent board.
type Repository interface {
	GetListing(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*FreeAgentListing, error)
	SaveListing(ctx context.Context, db bun.IDB, listing *FreeAgentListing) error
	DeleteListing(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error
	ListListings(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]FreeAgentListing, error)
}
