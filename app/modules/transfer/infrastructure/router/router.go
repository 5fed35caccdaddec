// Package transferrouter wires transfer handlers onto the shared
// watermill router.
package transferrouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	transferhandlers "github.com/Harbour-City-League/roster-bot/app/modules/transfer/infrastructure/handlers"
	transferevents "github.com/Harbour-City-League/roster-bot/app/shared/events/transfer"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// TransferRouter registers the transfer module's event handlers.
type TransferRouter struct {
	logger     *slog.Logger
	router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	tracer     trace.Tracer
}

// NewTransferRouter creates a new TransferRouter.
func NewTransferRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	tracer trace.Tracer,
) *TransferRouter {
	return &TransferRouter{
		logger:     logger,
		router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers every transfer handler on the shared router.
func (r *TransferRouter) Configure(handlers transferhandlers.Handlers) error {
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"transfer", transferevents.TransferProposeRequestedV1, handlers.HandlePropose)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"transfer", transferevents.TransferAcceptRequestedV1, handlers.HandleAccept)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"transfer", transferevents.TransferDeclineRequestedV1, handlers.HandleDecline)
	return nil
}
