// Package guildconfigrouter wires guildconfig handlers onto the shared
// watermill router.
package guildconfigrouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	guildconfighandlers "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/handlers"
	guildevents "github.com/Harbour-City-League/roster-bot/app/shared/events/guild"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// GuildConfigRouter registers the guildconfig module's event handlers.
type GuildConfigRouter struct {
	logger     *slog.Logger
	router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	tracer     trace.Tracer
}

// NewGuildConfigRouter creates a new GuildConfigRouter.
func NewGuildConfigRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	tracer trace.Tracer,
) *GuildConfigRouter {
	return &GuildConfigRouter{
		logger:     logger,
		router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers every guildconfig handler on the shared router.
func (r *GuildConfigRouter) Configure(handlers guildconfighandlers.Handlers) error {
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"guildconfig", guildevents.GuildSetupRequestedV1, handlers.HandleGuildSetup)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"guildconfig", guildevents.GuildConfigRetrievalRequestedV1, handlers.HandleRetrieveGuildConfig)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"guildconfig", guildevents.TransferWindowSetRequestedV1, handlers.HandleSetTransferWindow)
	return nil
}
