// Package teamrouter wires team handlers onto the shared watermill router.
package teamrouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	teamhandlers "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/handlers"
	teamevents "github.com/Harbour-City-League/roster-bot/app/shared/events/team"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// TeamRouter registers the team module's event handlers.
type TeamRouter struct {
	logger     *slog.Logger
	router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	tracer     trace.Tracer
}

// NewTeamRouter creates a new TeamRouter.
func NewTeamRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	tracer trace.Tracer,
) *TeamRouter {
	return &TeamRouter{
		logger:     logger,
		router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers every team handler on the shared router.
func (r *TeamRouter) Configure(handlers teamhandlers.Handlers) error {
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"team", teamevents.TeamRegisterRequestedV1, handlers.HandleTeamRegister)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"team", teamevents.TeamDeleteRequestedV1, handlers.HandleTeamDelete)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"team", teamevents.TeamBackgroundSetRequestedV1, handlers.HandleBackgroundSet)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"team", teamevents.TeamListRequestedV1, handlers.HandleTeamList)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"team", teamevents.TeamViewRequestedV1, handlers.HandleTeamView)
	handlerwrapper.Register(r.router, r.subscriber, r.publisher, r.logger, r.tracer,
		"team", teamevents.RosterExportRequestedV1, handlers.HandleRosterExport)
	return nil
}
