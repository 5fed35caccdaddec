package guildconfigservice

import (
	"context"

	guildevents "github.com/Harbour-City-League/roster-bot/app/shared/events/guild"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// ConfigResult is a type alias to reduce generic verbosity.
type ConfigResult = results.OperationResult[guildevents.GuildConfigView, error]

// WindowResult carries the new window state on success.
type WindowResult = results.OperationResult[bool, error]

// Service defines guild configuration operations.
type Service interface {
	SetupGuild(ctx context.Context, config guildevents.GuildConfigView) (ConfigResult, error)
	GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (ConfigResult, error)
	SetTransferWindow(ctx context.Context, guildID sharedtypes.GuildID, open bool) (WindowResult, error)
}
