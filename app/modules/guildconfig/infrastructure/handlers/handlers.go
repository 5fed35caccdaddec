package guildconfighandlers

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	guildconfigservice "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/application"
	guildevents "github.com/Harbour-City-League/roster-bot/app/shared/events/guild"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// GuildConfigHandlers implements the Handlers interface.
type GuildConfigHandlers struct {
	service guildconfigservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewGuildConfigHandlers creates a new GuildConfigHandlers instance.
func NewGuildConfigHandlers(service guildconfigservice.Service, logger *slog.Logger, tracer trace.Tracer) *GuildConfigHandlers {
	return &GuildConfigHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleGuildSetup handles the setup_global admin command.
func (h *GuildConfigHandlers) HandleGuildSetup(ctx context.Context, payload *guildevents.GuildSetupRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetupGuild(ctx, guildevents.GuildConfigView{
		GuildID:               payload.GuildID,
		ManagerRoleID:         payload.ManagerRoleID,
		AssistantRoleID:       payload.AssistantRoleID,
		FreeAgentRoleID:       payload.FreeAgentRoleID,
		AnnouncementChannelID: payload.AnnouncementChannelID,
	})
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: guildevents.GuildSetupFailedV1,
			Payload: &guildevents.GuildSetupFailedPayloadV1{
				GuildID: payload.GuildID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	return []handlerwrapper.Result{{
		Topic: guildevents.GuildSetupSuccessV1,
		Payload: &guildevents.GuildSetupSuccessPayloadV1{
			GuildID: payload.GuildID,
			Config:  *result.Success,
		},
	}}, nil
}

// HandleRetrieveGuildConfig handles configuration retrieval. A dynamic
// reply topic from the gateway takes precedence over the static one.
func (h *GuildConfigHandlers) HandleRetrieveGuildConfig(ctx context.Context, payload *guildevents.GuildConfigRetrievalRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.GetGuildConfig(ctx, payload.GuildID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: guildevents.GuildConfigRetrievalFailedV1,
			Payload: &guildevents.GuildConfigRetrievalFailedPayloadV1{
				GuildID: payload.GuildID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	replyTopic := guildevents.GuildConfigRetrievedV1
	if rt := handlerwrapper.ReplyTo(ctx); rt != "" {
		replyTopic = rt
	}

	return []handlerwrapper.Result{{
		Topic: replyTopic,
		Payload: &guildevents.GuildConfigRetrievedPayloadV1{
			GuildID: payload.GuildID,
			Config:  *result.Success,
		},
	}}, nil
}

// HandleSetTransferWindow handles the window admin command.
func (h *GuildConfigHandlers) HandleSetTransferWindow(ctx context.Context, payload *guildevents.TransferWindowSetRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetTransferWindow(ctx, payload.GuildID, payload.Open)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: guildevents.TransferWindowSetFailedV1,
			Payload: &guildevents.TransferWindowSetFailedPayloadV1{
				GuildID: payload.GuildID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	return []handlerwrapper.Result{{
		Topic: guildevents.TransferWindowSetV1,
		Payload: &guildevents.TransferWindowSetPayloadV1{
			GuildID: payload.GuildID,
			Open:    *result.Success,
		},
	}}, nil
}
