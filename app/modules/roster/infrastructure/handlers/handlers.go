package rosterhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	rosterservice "github.com/Harbour-City-League/roster-bot/app/modules/roster/application"
	announceevents "github.com/Harbour-City-League/roster-bot/app/shared/events/announce"
	rosterevents "github.com/Harbour-City-League/roster-bot/app/shared/events/roster"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// RosterHandlers implements the Handlers interface. Every successful
// transaction publishes its confirmation plus an announcement for the
// gateway's card compositor.
type RosterHandlers struct {
	service rosterservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewRosterHandlers creates a new RosterHandlers instance.
func NewRosterHandlers(service rosterservice.Service, logger *slog.Logger, tracer trace.Tracer) *RosterHandlers {
	return &RosterHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func announcement(guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, kind string, playerID sharedtypes.UserID, teamRole sharedtypes.RoleID, logo, background, caption string) handlerwrapper.Result {
	return handlerwrapper.Result{
		Topic: announceevents.TransactionAnnouncementV1,
		Payload: &announceevents.TransactionAnnouncementPayloadV1{
			GuildID:    guildID,
			ChannelID:  channelID,
			Kind:       kind,
			PlayerID:   playerID,
			TeamRole:   teamRole,
			Logo:       logo,
			Background: background,
			Caption:    caption,
		},
	}
}

// HandleSign handles the sign command.
func (h *RosterHandlers) HandleSign(ctx context.Context, payload *rosterevents.SignRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Sign(ctx, payload.GuildID, payload.ActorID, payload.PlayerID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: rosterevents.SignFailedV1,
			Payload: &rosterevents.SignFailedPayloadV1{
				GuildID:  payload.GuildID,
				ActorID:  payload.ActorID,
				PlayerID: payload.PlayerID,
				Reason:   (*result.Failure).Error(),
			},
		}}, nil
	}

	outcome := *result.Success
	return []handlerwrapper.Result{
		{
			Topic: rosterevents.SignedV1,
			Payload: &rosterevents.SignedPayloadV1{
				GuildID:  payload.GuildID,
				ActorID:  payload.ActorID,
				PlayerID: outcome.PlayerID,
				TeamRole: outcome.TeamRole,
			},
		},
		announcement(payload.GuildID, outcome.ChannelID, announceevents.KindSigned,
			outcome.PlayerID, outcome.TeamRole, outcome.Logo, outcome.Background,
			fmt.Sprintf("<@%s> signs for <@&%s>!", outcome.PlayerID, outcome.TeamRole)),
	}, nil
}

// HandleRelease handles the release command.
func (h *RosterHandlers) HandleRelease(ctx context.Context, payload *rosterevents.ReleaseRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Release(ctx, payload.GuildID, payload.ActorID, payload.PlayerID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: rosterevents.ReleaseFailedV1,
			Payload: &rosterevents.ReleaseFailedPayloadV1{
				GuildID:  payload.GuildID,
				ActorID:  payload.ActorID,
				PlayerID: payload.PlayerID,
				Reason:   (*result.Failure).Error(),
			},
		}}, nil
	}

	outcome := *result.Success
	return []handlerwrapper.Result{
		{
			Topic: rosterevents.ReleasedV1,
			Payload: &rosterevents.ReleasedPayloadV1{
				GuildID:  payload.GuildID,
				ActorID:  payload.ActorID,
				PlayerID: outcome.PlayerID,
				TeamRole: outcome.TeamRole,
			},
		},
		announcement(payload.GuildID, outcome.ChannelID, announceevents.KindReleased,
			outcome.PlayerID, outcome.TeamRole, outcome.Logo, outcome.Background,
			fmt.Sprintf("<@%s> has been released by <@&%s>.", outcome.PlayerID, outcome.TeamRole)),
	}, nil
}

// HandleDemand handles the demand command.
func (h *RosterHandlers) HandleDemand(ctx context.Context, payload *rosterevents.DemandRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Demand(ctx, payload.GuildID, payload.ActorID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: rosterevents.DemandFailedV1,
			Payload: &rosterevents.DemandFailedPayloadV1{
				GuildID: payload.GuildID,
				ActorID: payload.ActorID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	outcome := *result.Success
	return []handlerwrapper.Result{
		{
			Topic: rosterevents.DemandedV1,
			Payload: &rosterevents.DemandedPayloadV1{
				GuildID:          payload.GuildID,
				ActorID:          outcome.ActorID,
				TeamRole:         outcome.TeamRole,
				NotifiedManagers: outcome.NotifiedManagers,
			},
		},
		announcement(payload.GuildID, outcome.ChannelID, announceevents.KindDemanded,
			outcome.ActorID, outcome.TeamRole, outcome.Logo, outcome.Background,
			fmt.Sprintf("<@%s> leaves <@&%s>.", outcome.ActorID, outcome.TeamRole)),
	}, nil
}

// HandlePromote handles the promote command.
func (h *RosterHandlers) HandlePromote(ctx context.Context, payload *rosterevents.PromoteRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Promote(ctx, payload.GuildID, payload.ActorID, payload.PlayerID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: rosterevents.PromoteFailedV1,
			Payload: &rosterevents.PromoteFailedPayloadV1{
				GuildID:  payload.GuildID,
				ActorID:  payload.ActorID,
				PlayerID: payload.PlayerID,
				Reason:   (*result.Failure).Error(),
			},
		}}, nil
	}

	outcome := *result.Success
	return []handlerwrapper.Result{
		{
			Topic: rosterevents.PromotedV1,
			Payload: &rosterevents.PromotedPayloadV1{
				GuildID:  payload.GuildID,
				ActorID:  payload.ActorID,
				PlayerID: outcome.PlayerID,
			},
		},
		announcement(payload.GuildID, outcome.ChannelID, announceevents.KindPromoted,
			outcome.PlayerID, outcome.TeamRole, outcome.Logo, outcome.Background,
			fmt.Sprintf("<@%s> is now an assistant manager of <@&%s>.", outcome.PlayerID, outcome.TeamRole)),
	}, nil
}
