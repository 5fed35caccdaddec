package teamdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Team is one registered team. The platform role ID is the identity: team
// name and member list live with the platform, the registry only carries
// the roster-bot extras. A roster limit of zero or below disables the cap.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	RoleID                 sharedtypes.RoleID  `bun:"role_id,pk,notnull,type:varchar(20)"`
	GuildID                sharedtypes.GuildID `bun:"guild_id,notnull,type:varchar(20)"`
	Logo                   string              `bun:"logo,notnull"`
	RosterLimit            int                 `bun:"roster_limit,notnull,default:20"`
	AnnouncementBackground *string             `bun:"announcement_background,nullzero"`
	CreatedAt              time.Time           `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt              time.Time           `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
