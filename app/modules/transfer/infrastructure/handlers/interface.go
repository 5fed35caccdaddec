package transferhandlers

import (
	"context"

	transferevents "github.com/Harbour-City-League/roster-bot/app/shared/events/transfer"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// Handlers defines the typed event handlers for the transfer module.
type Handlers interface {
	HandlePropose(ctx context.Context, payload *transferevents.TransferProposeRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleAccept(ctx context.Context, payload *transferevents.TransferAcceptRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleDecline(ctx context.Context, payload *transferevents.TransferDeclineRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*TransferHandlers)(nil)
