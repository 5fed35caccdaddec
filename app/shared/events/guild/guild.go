// Package guildevents defines topics and payloads for guild configuration.
package guildevents

import (
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Topics consumed and produced by the guildconfig module.
const (
	GuildSetupRequestedV1 = "guild.setup.requested.v1"
	GuildSetupSuccessV1   = "guild.setup.success.v1"
	GuildSetupFailedV1    = "guild.setup.failed.v1"

	GuildConfigRetrievalRequestedV1 = "guild.config.retrieval.requested.v1"
	GuildConfigRetrievedV1          = "guild.config.retrieved.v1"
	GuildConfigRetrievalFailedV1    = "guild.config.retrieval.failed.v1"

	TransferWindowSetRequestedV1 = "guild.window.set.requested.v1"
	TransferWindowSetV1          = "guild.window.set.v1"
	TransferWindowSetFailedV1    = "guild.window.set.failed.v1"
)

// GuildSetupRequestedPayloadV1 carries the admin setup_global command.
type GuildSetupRequestedPayloadV1 struct {
	GuildID               sharedtypes.GuildID   `json:"guild_id"`
	ManagerRoleID         sharedtypes.RoleID    `json:"manager_role_id"`
	AssistantRoleID       sharedtypes.RoleID    `json:"assistant_role_id"`
	FreeAgentRoleID       sharedtypes.RoleID    `json:"free_agent_role_id"`
	AnnouncementChannelID sharedtypes.ChannelID `json:"announcement_channel_id"`
}

// GuildConfigView is the wire representation of a guild's configuration.
type GuildConfigView struct {
	GuildID               sharedtypes.GuildID   `json:"guild_id"`
	ManagerRoleID         sharedtypes.RoleID    `json:"manager_role_id"`
	AssistantRoleID       sharedtypes.RoleID    `json:"assistant_role_id"`
	FreeAgentRoleID       sharedtypes.RoleID    `json:"free_agent_role_id"`
	AnnouncementChannelID sharedtypes.ChannelID `json:"announcement_channel_id"`
	TransferWindowOpen    bool                  `json:"transfer_window_open"`
}

// GuildSetupSuccessPayloadV1 confirms the stored configuration.
type GuildSetupSuccessPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Config  GuildConfigView     `json:"config"`
}

// GuildSetupFailedPayloadV1 reports a rejected setup.
type GuildSetupFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

// GuildConfigRetrievalRequestedPayloadV1 asks for the current configuration.
type GuildConfigRetrievalRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

// GuildConfigRetrievedPayloadV1 returns the current configuration.
type GuildConfigRetrievedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Config  GuildConfigView     `json:"config"`
}

// GuildConfigRetrievalFailedPayloadV1 reports a failed retrieval.
type GuildConfigRetrievalFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

// TransferWindowSetRequestedPayloadV1 carries the admin window command.
type TransferWindowSetRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Open    bool                `json:"open"`
}

// TransferWindowSetPayloadV1 confirms the new window state.
type TransferWindowSetPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Open    bool                `json:"open"`
}

// TransferWindowSetFailedPayloadV1 reports a rejected window change.
type TransferWindowSetFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}
