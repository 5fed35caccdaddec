package teamdb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Repository is the data-access contract for the team registry.
type Repository interface {
	GetTeam(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (*Team, error)
	SaveTeam(ctx context.Context, db bun.IDB, team *Team) error
	DeleteTeam(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error
	SetBackground(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID, background *string) error
	ListTeams(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]Team, error)
}
