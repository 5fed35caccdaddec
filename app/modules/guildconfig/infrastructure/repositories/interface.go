package guildconfigdb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Repository is the data-access contract for guild configuration.
type Repository interface {
	GetConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*GuildConfig, error)
	SaveConfig(ctx context.Context, db bun.IDB, config *GuildConfig) error
	SetTransferWindow(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, open bool) error
}
