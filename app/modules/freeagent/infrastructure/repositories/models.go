package freeagentdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// FreeAgentListing is one user's advert on the free-agent board. One row
// per user, replaced wholesale when they list again.
type FreeAgentListing struct {
	bun.BaseModel `bun:"table:free_agent_listings,alias:fal"`

	UserID      sharedtypes.UserID   `bun:"user_id,pk,notnull,type:varchar(20)"`
	GuildID     sharedtypes.GuildID  `bun:"guild_id,notnull,type:varchar(20)"`
	Region      sharedtypes.Region   `bun:"region,notnull,type:varchar(4)"`
	Position    sharedtypes.Position `bun:"position,notnull,type:varchar(8)"`
	Description string               `bun:"description,notnull"`
	CreatedAt   time.Time            `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
