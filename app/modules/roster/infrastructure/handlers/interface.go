package rosterhandlers

import (
	"context"

	rosterevents "github.com/Harbour-City-League/roster-bot/app/shared/events/roster"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// Handlers defines the typed event handlers for the roster module.
type Handlers interface {
	HandleSign(ctx context.Context, payload *rosterevents.SignRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRelease(ctx context.Context, payload *rosterevents.ReleaseRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleDemand(ctx context.Context, payload *rosterevents.DemandRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandlePromote(ctx context.Context, payload *rosterevents.PromoteRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*RosterHandlers)(nil)
