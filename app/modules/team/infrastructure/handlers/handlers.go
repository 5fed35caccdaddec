package teamhandlers

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	teamservice "github.com/Harbour-City-League/roster-bot/app/modules/team/application"
	teamevents "github.com/Harbour-City-League/roster-bot/app/shared/events/team"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
)

// TeamHandlers implements the Handlers interface.
type TeamHandlers struct {
	service teamservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewTeamHandlers creates a new TeamHandlers instance.
func NewTeamHandlers(service teamservice.Service, logger *slog.Logger, tracer trace.Tracer) *TeamHandlers {
	return &TeamHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleTeamRegister handles the setup_team admin command.
func (h *TeamHandlers) HandleTeamRegister(ctx context.Context, payload *teamevents.TeamRegisterRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RegisterTeam(ctx, teamevents.TeamView{
		GuildID:     payload.GuildID,
		RoleID:      payload.RoleID,
		Logo:        payload.Logo,
		RosterLimit: payload.RosterLimit,
	})
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: teamevents.TeamRegisterFailedV1,
			Payload: &teamevents.TeamRegisterFailedPayloadV1{
				GuildID: payload.GuildID,
				RoleID:  payload.RoleID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	return []handlerwrapper.Result{{
		Topic: teamevents.TeamRegisteredV1,
		Payload: &teamevents.TeamRegisteredPayloadV1{
			GuildID: payload.GuildID,
			Team:    *result.Success,
		},
	}}, nil
}

// HandleTeamDelete handles the team_delete admin command.
func (h *TeamHandlers) HandleTeamDelete(ctx context.Context, payload *teamevents.TeamDeleteRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.DeleteTeam(ctx, payload.GuildID, payload.RoleID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: teamevents.TeamDeleteFailedV1,
			Payload: &teamevents.TeamDeleteFailedPayloadV1{
				GuildID: payload.GuildID,
				RoleID:  payload.RoleID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	return []handlerwrapper.Result{{
		Topic: teamevents.TeamDeletedV1,
		Payload: &teamevents.TeamDeletedPayloadV1{
			GuildID: payload.GuildID,
			RoleID:  *result.Success,
		},
	}}, nil
}

// HandleBackgroundSet handles the set_embed admin command.
func (h *TeamHandlers) HandleBackgroundSet(ctx context.Context, payload *teamevents.TeamBackgroundSetRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetAnnouncementBackground(ctx, payload.GuildID, payload.RoleID, payload.Background)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: teamevents.TeamBackgroundSetFailedV1,
			Payload: &teamevents.TeamBackgroundSetFailedPayloadV1{
				GuildID: payload.GuildID,
				RoleID:  payload.RoleID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	return []handlerwrapper.Result{{
		Topic: teamevents.TeamBackgroundSetV1,
		Payload: &teamevents.TeamBackgroundSetPayloadV1{
			GuildID:    payload.GuildID,
			RoleID:     payload.RoleID,
			Background: *result.Success,
		},
	}}, nil
}

// HandleTeamList handles the team_list query. A dynamic reply topic from
// the gateway takes precedence over the static one.
func (h *TeamHandlers) HandleTeamList(ctx context.Context, payload *teamevents.TeamListRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ListTeams(ctx, payload.GuildID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: teamevents.TeamListFailedV1,
			Payload: &teamevents.TeamListFailedPayloadV1{
				GuildID: payload.GuildID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	replyTopic := teamevents.TeamListedV1
	if rt := handlerwrapper.ReplyTo(ctx); rt != "" {
		replyTopic = rt
	}

	return []handlerwrapper.Result{{
		Topic: replyTopic,
		Payload: &teamevents.TeamListedPayloadV1{
			GuildID: payload.GuildID,
			Teams:   *result.Success,
		},
	}}, nil
}

// HandleTeamView handles the team_view query.
func (h *TeamHandlers) HandleTeamView(ctx context.Context, payload *teamevents.TeamViewRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.GetTeamView(ctx, payload.GuildID, payload.RoleID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: teamevents.TeamViewFailedV1,
			Payload: &teamevents.TeamViewFailedPayloadV1{
				GuildID: payload.GuildID,
				RoleID:  payload.RoleID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	replyTopic := teamevents.TeamViewedV1
	if rt := handlerwrapper.ReplyTo(ctx); rt != "" {
		replyTopic = rt
	}

	detail := *result.Success
	return []handlerwrapper.Result{{
		Topic: replyTopic,
		Payload: &teamevents.TeamViewedPayloadV1{
			GuildID:     payload.GuildID,
			Team:        detail.Team,
			Members:     detail.Members,
			MemberCount: detail.MemberCount,
		},
	}}, nil
}

// HandleRosterExport handles the roster export admin command.
func (h *TeamHandlers) HandleRosterExport(ctx context.Context, payload *teamevents.RosterExportRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ExportRoster(ctx, payload.GuildID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: teamevents.RosterExportFailedV1,
			Payload: &teamevents.RosterExportFailedPayloadV1{
				GuildID: payload.GuildID,
				Reason:  (*result.Failure).Error(),
			},
		}}, nil
	}

	replyTopic := teamevents.RosterExportedV1
	if rt := handlerwrapper.ReplyTo(ctx); rt != "" {
		replyTopic = rt
	}

	file := *result.Success
	return []handlerwrapper.Result{{
		Topic: replyTopic,
		Payload: &teamevents.RosterExportedPayloadV1{
			GuildID:  payload.GuildID,
			FileName: file.FileName,
			FileData: file.Data,
		},
	}}, nil
}
