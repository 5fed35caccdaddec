package guildconfighandlers

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	guildconfigservice "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/application"
	guildevents "github.com/Harbour-City-League/roster-bot/app/shared/events/guild"
	"github.com/Harbour-City-League/roster-bot/app/shared/handlerwrapper"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// FakeService is a hand-rolled fake for the guildconfig service.
type FakeService struct {
	SetupGuildFunc        func(ctx context.Context, config guildevents.GuildConfigView) (guildconfigservice.ConfigResult, error)
	GetGuildConfigFunc    func(ctx context.Context, guildID sharedtypes.GuildID) (guildconfigservice.ConfigResult, error)
	SetTransferWindowFunc func(ctx context.Context, guildID sharedtypes.GuildID, open bool) (guildconfigservice.WindowResult, error)
}

func (f *FakeService) SetupGuild(ctx context.Context, config guildevents.GuildConfigView) (guildconfigservice.ConfigResult, error) {
	if f.SetupGuildFunc != nil {
		return f.SetupGuildFunc(ctx, config)
	}
	return results.SuccessResult[guildevents.GuildConfigView, error](config), nil
}

func (f *FakeService) GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (guildconfigservice.ConfigResult, error) {
	if f.GetGuildConfigFunc != nil {
		return f.GetGuildConfigFunc(ctx, guildID)
	}
	return results.SuccessResult[guildevents.GuildConfigView, error](guildevents.GuildConfigView{GuildID: guildID}), nil
}

func (f *FakeService) SetTransferWindow(ctx context.Context, guildID sharedtypes.GuildID, open bool) (guildconfigservice.WindowResult, error) {
	if f.SetTransferWindowFunc != nil {
		return f.SetTransferWindowFunc(ctx, guildID, open)
	}
	return results.SuccessResult[bool, error](open), nil
}

var _ guildconfigservice.Service = (*FakeService)(nil)

func newTestHandlers(service *FakeService) *GuildConfigHandlers {
	return NewGuildConfigHandlers(service, slog.New(slog.DiscardHandler), noop.NewTracerProvider().Tracer("test"))
}

func TestHandleGuildSetup(t *testing.T) {
	t.Run("success publishes config", func(t *testing.T) {
		h := newTestHandlers(&FakeService{})

		out, err := h.HandleGuildSetup(context.Background(), &guildevents.GuildSetupRequestedPayloadV1{
			GuildID:               "guild-1",
			ManagerRoleID:         "role-manager",
			AssistantRoleID:       "role-assistant",
			AnnouncementChannelID: "chan-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].Topic != guildevents.GuildSetupSuccessV1 {
			t.Fatalf("out = %+v, want one success event", out)
		}
		payload := out[0].Payload.(*guildevents.GuildSetupSuccessPayloadV1)
		if payload.Config.ManagerRoleID != "role-manager" {
			t.Errorf("config not echoed back: %+v", payload.Config)
		}
	})

	t.Run("domain failure publishes failure event", func(t *testing.T) {
		h := newTestHandlers(&FakeService{
			SetupGuildFunc: func(ctx context.Context, config guildevents.GuildConfigView) (guildconfigservice.ConfigResult, error) {
				return results.FailureResult[guildevents.GuildConfigView, error](guildconfigservice.ErrMissingRole), nil
			},
		})

		out, err := h.HandleGuildSetup(context.Background(), &guildevents.GuildSetupRequestedPayloadV1{GuildID: "guild-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].Topic != guildevents.GuildSetupFailedV1 {
			t.Fatalf("out = %+v, want one failure event", out)
		}
		payload := out[0].Payload.(*guildevents.GuildSetupFailedPayloadV1)
		if payload.Reason != guildconfigservice.ErrMissingRole.Error() {
			t.Errorf("reason = %q, want %q", payload.Reason, guildconfigservice.ErrMissingRole.Error())
		}
	})

	t.Run("infrastructure error propagates", func(t *testing.T) {
		h := newTestHandlers(&FakeService{
			SetupGuildFunc: func(ctx context.Context, config guildevents.GuildConfigView) (guildconfigservice.ConfigResult, error) {
				return guildconfigservice.ConfigResult{}, errors.New("db down")
			},
		})

		if _, err := h.HandleGuildSetup(context.Background(), &guildevents.GuildSetupRequestedPayloadV1{GuildID: "guild-1"}); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})

	t.Run("nil payload", func(t *testing.T) {
		h := newTestHandlers(&FakeService{})
		if _, err := h.HandleGuildSetup(context.Background(), nil); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestHandleRetrieveGuildConfigReplyTo(t *testing.T) {
	h := newTestHandlers(&FakeService{})
	ctx := context.WithValue(context.Background(), handlerwrapper.CtxKeyReplyTo, "reply.abc123")

	out, err := h.HandleRetrieveGuildConfig(ctx, &guildevents.GuildConfigRetrievalRequestedPayloadV1{GuildID: "guild-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Topic != "reply.abc123" {
		t.Errorf("out = %+v, want reply on dynamic topic", out)
	}
}

func TestHandleSetTransferWindow(t *testing.T) {
	h := newTestHandlers(&FakeService{})

	out, err := h.HandleSetTransferWindow(context.Background(), &guildevents.TransferWindowSetRequestedPayloadV1{
		GuildID: "guild-1",
		Open:    false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Topic != guildevents.TransferWindowSetV1 {
		t.Fatalf("out = %+v, want one window event", out)
	}
	payload := out[0].Payload.(*guildevents.TransferWindowSetPayloadV1)
	if payload.Open {
		t.Errorf("open = true, want false")
	}
}
