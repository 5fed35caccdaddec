package teamhandlers

import (
	"context"

	teamevents "github.com/Harbour-City-League/roster-bot/app/shared/events/team"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// Handlers defines the typed event handlers for the team module.
type Handlers interface {
	HandleTeamRegister(ctx context.Context, payload *teamevents.TeamRegisterRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleTeamDelete(ctx context.Context, payload *teamevents.TeamDeleteRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleBackgroundSet(ctx context.Context, payload *teamevents.TeamBackgroundSetRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleTeamList(ctx context.Context, payload *teamevents.TeamListRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleTeamView(ctx context.Context, payload *teamevents.TeamViewRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRosterExport(ctx context.Context, payload *teamevents.RosterExportRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*TeamHandlers)(nil)
