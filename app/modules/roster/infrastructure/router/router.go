// Package rosterrouter wires roster handlers onto the shared watermill
// router.
package rosterrouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	rosterhandlers "github.com/Harbour-City-League/roster-bot/app/modules/roster/infrastructure/handlers"
	rosterevents "github.com/Harbour-City-League/roster-bot/app/shared/events/roster"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// RosterRouter registers the roster module's event handlers.
type RosterRouter struct {
	logger     *slog.Logger
	router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	tracer     trace.Tracer
}

// NewRosterRouter creates a new RosterRouter.
func NewRosterRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	tracer trace.Tracer,
) *RosterRouter {
	return &RosterRouter{
		logger:     logger,
		router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers every roster handler on the shared router.
func (r *RosterRouter) Configure(handlers rosterhandlers.Handlers) error {
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"roster", rosterevents.SignRequestedV1, handlers.HandleSign)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"roster", rosterevents.ReleaseRequestedV1, handlers.HandleRelease)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"roster", rosterevents.DemandRequestedV1, handlers.HandleDemand)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"roster", rosterevents.PromoteRequestedV1, handlers.HandlePromote)
	return nil
}
