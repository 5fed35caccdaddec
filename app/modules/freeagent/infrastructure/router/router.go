// Package freeagentrouter wires freeagent handlers onto the shared
// watermill router.
package freeagentrouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	freeagenthandlers "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/handlers"
	freeagentevents "github.com/Harbour-City-League/roster-bot/app/shared/events/freeagent"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// FreeAgentRouter registers the freeagent module's event handlers.
type FreeAgentRouter struct {
	logger     *slog.Logger
	router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	tracer     trace.Tracer
}

// NewFreeAgentRouter creates a new FreeAgentRouter.
func NewFreeAgentRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	tracer trace.Tracer,
) *FreeAgentRouter {
	return &FreeAgentRouter{
		logger:     logger,
		router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers every freeagent handler on the shared router.
func (r *FreeAgentRouter) Configure(handlers freeagenthandlers.Handlers) error {
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"freeagent", freeagentevents.FreeAgentListRequestedV1, handlers.HandleFreeAgentList)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"freeagent", freeagentevents.FreeAgentWithdrawRequestedV1, handlers.HandleFreeAgentWithdraw)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"freeagent", freeagentevents.FreeAgentBrowseRequestedV1, handlers.HandleFreeAgentBrowse)
	return nil
}
