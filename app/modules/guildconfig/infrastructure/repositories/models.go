package guildconfigdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// GuildConfig is one guild's roster-bot configuration. One row per guild,
// replaced wholesale by the admin setup command; the transfer-window flag
// survives a replace.
type GuildConfig struct {
	bun.BaseModel `bun:"table:guild_configs,alias:gc"`

	GuildID               sharedtypes.GuildID   `bun:"guild_id,pk,notnull,type:varchar(20)"`
	ManagerRoleID         sharedtypes.RoleID    `bun:"manager_role_id,notnull,type:varchar(20)"`
	AssistantRoleID       sharedtypes.RoleID    `bun:"assistant_role_id,notnull,type:varchar(20)"`
	FreeAgentRoleID       sharedtypes.RoleID    `bun:"free_agent_role_id,nullzero,type:varchar(20)"`
	AnnouncementChannelID sharedtypes.ChannelID `bun:"announcement_channel_id,notnull,type:varchar(20)"`
	TransferWindowOpen    bool                  `bun:"transfer_window_open,notnull,default:true"`
	CreatedAt             time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt             time.Time             `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
