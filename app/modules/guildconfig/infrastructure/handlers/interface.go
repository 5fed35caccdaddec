package guildconfighandlers

import (
	"context"

	guildevents "github.com/Harbour-City-League/roster-bot/app/shared/events/guild"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// Handlers defines the typed event handlers for the guildconfig module.
type Handlers interface {
	HandleGuildSetup(ctx context.Context, payload *guildevents.GuildSetupRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRetrieveGuildConfig(ctx context.Context, payload *guildevents.GuildConfigRetrievalRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleSetTransferWindow(ctx context.Context, payload *guildevents.TransferWindowSetRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*GuildConfigHandlers)(nil)
