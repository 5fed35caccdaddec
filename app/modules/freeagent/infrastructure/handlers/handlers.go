package freeagenthandlers

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	freeagentservice "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/application"
	freeagentevents "github.com/Harbour-City-League/roster-bot/app/shared/events/freeagent"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// FreeAgentHandlers implements the Handlers interface.
type FreeAgentHandlers struct {
	service freeagentservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewFreeAgentHandlers creates a new FreeAgentHandlers instance.
func NewFreeAgentHandlers(service freeagentservice.Service, logger *slog.Logger, tracer trace.Tracer) *FreeAgentHandlers {
	return &FreeAgentHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleFreeAgentList handles the looking_for_team command.
func (h *FreeAgentHandlers) HandleFreeAgentList(ctx context.Context, payload *freeagentevents.FreeAgentListRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ListYourself(ctx, payload.GuildID, payload.UserID, payload.Region, payload.Position, payload.Description)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: freeagentevents.FreeAgentListFailedV1,
			Payload: &freeagentevents.FreeAgentListFailedPayloadV1{
				GuildID: payload.GuildID,
				UserID:  payload.UserID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	return []handlerwrapper.Result{{
		Topic: freeagentevents.FreeAgentListedV1,
		Payload: &freeagentevents.FreeAgentListedPayloadV1{
			GuildID: payload.GuildID,
			Listing: *result.Success,
		},
	}}, nil
}

// HandleFreeAgentWithdraw handles explicit delisting.
func (h *FreeAgentHandlers) HandleFreeAgentWithdraw(ctx context.Context, payload *freeagentevents.FreeAgentWithdrawRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Withdraw(ctx, payload.GuildID, payload.UserID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: freeagentevents.FreeAgentWithdrawFailedV1,
			Payload: &freeagentevents.FreeAgentWithdrawFailedPayloadV1{
				GuildID: payload.GuildID,
				UserID:  payload.UserID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	return []handlerwrapper.Result{{
		Topic: freeagentevents.FreeAgentWithdrawnV1,
		Payload: &freeagentevents.FreeAgentWithdrawnPayloadV1{
			GuildID: payload.GuildID,
			UserID:  *result.Success,
		},
	}}, nil
}

// HandleFreeAgentBrowse handles the free_agents query. A dynamic reply
// topic from the gateway takes precedence over the static one.
func (h *FreeAgentHandlers) HandleFreeAgentBrowse(ctx context.Context, payload *freeagentevents.FreeAgentBrowseRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.BrowseFreeAgents(ctx, payload.GuildID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: freeagentevents.FreeAgentBrowseFailedV1,
			Payload: &freeagentevents.FreeAgentBrowseFailedPayloadV1{
				GuildID: payload.GuildID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	replyTopic := freeagentevents.FreeAgentBrowsedV1
	if rt := handlerwrapper.ReplyTo(ctx); rt != "" {
		replyTopic = rt
	}

	page := *result.Success
	return []handlerwrapper.Result{{
		Topic: replyTopic,
		Payload: &freeagentevents.FreeAgentBrowsedPayloadV1{
			GuildID:   payload.GuildID,
			Listings:  page.Listings,
			Truncated: page.Truncated,
		},
	}}, nil
}
