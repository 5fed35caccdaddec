package freeagenthandlers

import (
	"context"

	freeagentevents "github.com/Harbour-City-League/roster-bot/app/shared/events/freeagent"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// Handlers defines the typed event handlers for the freeagent module.
type Handlers interface {
	HandleFreeAgentList(ctx context.Context, payload *freeagentevents.FreeAgentListRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleFreeAgentWithdraw(ctx context.Context, payload *freeagentevents.FreeAgentWithdrawRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleFreeAgentBrowse(ctx context.Context, payload *freeagentevents.FreeAgentBrowseRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*FreeAgentHandlers)(nil)
