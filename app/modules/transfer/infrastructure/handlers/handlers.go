package transferhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	transferservice "github.com/Harbour-City-League/roster-bot/app/modules/transfer/application"
	transferdomain "github.com/Harbour-City-League/roster-bot/app/modules/transfer/domain"
	announceevents "github.com/Harbour-City-League/roster-bot/app/shared/events/announce"
	transferevents "github.com/Harbour-City-League/roster-bot/app/shared/events/transfer"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// TransferHandlers implements the Handlers interface.
type TransferHandlers struct {
	service transferservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewTransferHandlers creates a new TransferHandlers instance.
func NewTransferHandlers(service transferservice.Service, logger *slog.Logger, tracer trace.Tracer) *TransferHandlers {
	return &TransferHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandlePropose handles the transfer command.
func (h *TransferHandlers) HandlePropose(ctx context.Context, payload *transferevents.TransferProposeRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Propose(ctx, payload.GuildID, payload.ActorID, payload.PlayerID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: transferevents.TransferProposeFailedV1,
			Payload: &transferevents.TransferProposeFailedPayloadV1{
				GuildID:  payload.GuildID,
				ActorID:  payload.ActorID,
				PlayerID: payload.PlayerID,
				Reason:   (*result.Failure).Error(),
			},
		}}, nil
	}

	offer := result.Success.Offer
	return []handlerwrapper.Result{{
		Topic: transferevents.TransferProposedV1,
		Payload: &transferevents.TransferProposedPayloadV1{
			GuildID:    payload.GuildID,
			OfferID:    offer.ID,
			ActorID:    offer.RequesterID,
			PlayerID:   offer.PlayerID,
			FromTeam:   offer.FromTeam,
			ToTeam:     offer.ToTeam,
			ApproverID: offer.ApproverID,
			ExpiresAt:  offer.Deadline,
		},
	}}, nil
}

// HandleAccept handles the approver's accept press. A completed move is
// announced like a signing, attributed to the destination team.
func (h *TransferHandlers) HandleAccept(ctx context.Context, payload *transferevents.TransferAcceptRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Accept(ctx, payload.GuildID, payload.OfferID, payload.ApproverID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: transferevents.TransferResolveFailedV1,
			Payload: &transferevents.TransferResolveFailedPayloadV1{
				GuildID: payload.GuildID,
				OfferID: payload.OfferID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	outcome := *result.Success
	offer := outcome.Offer
	return []handlerwrapper.Result{
		{
			Topic:   transferevents.TransferResolvedV1,
			Payload: resolvedPayload(payload.GuildID, offer),
		},
		{
			Topic: announceevents.TransactionAnnouncementV1,
			Payload: &announceevents.TransactionAnnouncementPayloadV1{
				GuildID:    payload.GuildID,
				ChannelID:  outcome.ChannelID,
				Kind:       announceevents.KindTransfer,
				PlayerID:   offer.PlayerID,
				TeamRole:   offer.ToTeam,
				Logo:       outcome.Logo,
				Background: outcome.Background,
				Caption:    fmt.Sprintf("<@%s> transfers from <@&%s> to <@&%s>!", offer.PlayerID, offer.FromTeam, offer.ToTeam),
			},
		},
	}, nil
}

// HandleDecline handles the approver's decline press.
func (h *TransferHandlers) HandleDecline(ctx context.Context, payload *transferevents.TransferDeclineRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Decline(ctx, payload.GuildID, payload.OfferID, payload.ApproverID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: transferevents.TransferResolveFailedV1,
			Payload: &transferevents.TransferResolveFailedPayloadV1{
				GuildID: payload.GuildID,
				OfferID: payload.OfferID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	return []handlerwrapper.Result{{
		Topic:   transferevents.TransferResolvedV1,
		Payload: resolvedPayload(payload.GuildID, result.Success.Offer),
	}}, nil
}

func resolvedPayload(guildID sharedtypes.GuildID, offer transferdomain.Offer) *transferevents.TransferResolvedPayloadV1 {
	return &transferevents.TransferResolvedPayloadV1{
		GuildID:  guildID,
		OfferID:  offer.ID,
		Outcome:  string(offer.State),
		ActorID:  offer.RequesterID,
		PlayerID: offer.PlayerID,
		FromTeam: offer.FromTeam,
		ToTeam:   offer.ToTeam,
	}
}
