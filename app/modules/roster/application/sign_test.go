package rosterservice

import (
	"context"
	"errors"
	"testing"

	"github.com/Harbour-City-League/roster-bot/app/shared/rejections"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

func TestSign(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*harness)
		wantSuccess bool
		failReason  error
	}{
		{
			name: "manager signs a teamless player",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-manager", "role-team-a")
				h.addMember("player-1")
			},
			wantSuccess: true,
		},
		{
			name: "assistant can sign too",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-assistant", "role-team-a")
				h.addMember("player-1")
			},
			wantSuccess: true,
		},
		{
			name: "guild not set up",
			setup: func(h *harness) {
				h.config = nil
			},
			failReason: rejections.ErrNotConfigured,
		},
		{
			name: "window closed",
			setup: func(h *harness) {
				h.config.TransferWindowOpen = false
				h.addMember("manager-1", "role-manager", "role-team-a")
				h.addMember("player-1")
			},
			failReason: rejections.ErrWindowClosed,
		},
		{
			name: "actor left the guild",
			setup: func(h *harness) {
				h.addMember("player-1")
			},
			failReason: rejections.ErrMemberGone,
		},
		{
			name: "actor without leadership role",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-team-a")
				h.addMember("player-1")
			},
			failReason: rejections.ErrNotAuthorized,
		},
		{
			name: "actor leads no registered team",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-manager")
				h.addMember("player-1")
			},
			failReason: rejections.ErrNoTeamRole,
		},
		{
			name: "player left the guild",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-manager", "role-team-a")
			},
			failReason: rejections.ErrMemberGone,
		},
		{
			name: "player already on the team",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-manager", "role-team-a")
				h.addMember("player-1", "role-team-a")
			},
			failReason: rejections.ErrAlreadySigned,
		},
		{
			name: "player on another team needs a transfer",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-manager", "role-team-a")
				h.addMember("player-1", "role-team-b")
			},
			failReason: rejections.ErrIllegalMove,
		},
		{
			name: "roster at its cap",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-manager", "role-team-a")
				h.addMember("bench-1", "role-team-a")
				h.addMember("bench-2", "role-team-a")
				h.addMember("player-1")
			},
			failReason: rejections.ErrRosterFull,
		},
		{
			name: "negative limit disables the cap",
			setup: func(h *harness) {
				h.teams[0].RosterLimit = -1
				h.addMember("manager-1", "role-manager", "role-team-a")
				h.addMember("bench-1", "role-team-a")
				h.addMember("bench-2", "role-team-a")
				h.addMember("player-1")
			},
			wantSuccess: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			tt.setup(h)

			result, err := h.service.Sign(context.Background(), "guild-1", "manager-1", "player-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantSuccess {
				if result.Success == nil {
					t.Fatalf("expected success, got failure: %v", result.Failure)
				}
				outcome := *result.Success
				if outcome.TeamRole != "role-team-a" {
					t.Errorf("team role = %s, want role-team-a", outcome.TeamRole)
				}
				if !h.holds("player-1", "role-team-a") {
					t.Errorf("player did not receive the team role")
				}
				if !outcome.DMDelivered {
					t.Errorf("expected DM delivered")
				}
				cleared := false
				for _, step := range h.agents.Trace() {
					if step == "RemoveOnSign player-1" {
						cleared = true
					}
				}
				if !cleared {
					t.Errorf("free agent listing was not cleared")
				}
				return
			}
			if result.Failure == nil {
				t.Fatalf("expected failure, got success: %+v", result.Success)
			}
			if !errors.Is(*result.Failure, tt.failReason) {
				t.Errorf("failure = %v, want %v", *result.Failure, tt.failReason)
			}
			if h.holds("player-1", "role-team-a") {
				t.Errorf("rejected sign still granted the team role")
			}
		})
	}
}

func TestSignLeadershipDoesNotFillRoster(t *testing.T) {
	h := newHarness()
	h.addMember("manager-1", "role-manager", "role-team-a")
	h.addMember("assistant-1", "role-assistant", "role-team-a")
	h.addMember("player-1")
	h.addMember("player-2")
	h.addMember("player-3")

	for _, player := range []sharedtypes.UserID{"player-1", "player-2"} {
		result, err := h.service.Sign(context.Background(), "guild-1", "manager-1", player)
		if err != nil {
			t.Fatalf("sign %s: unexpected error: %v", player, err)
		}
		if result.Success == nil {
			t.Fatalf("sign %s: expected success, got failure: %v", player, result.Failure)
		}
	}

	result, err := h.service.Sign(context.Background(), "guild-1", "manager-1", "player-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failure == nil || !errors.Is(*result.Failure, rejections.ErrRosterFull) {
		t.Errorf("failure = %v, want ErrRosterFull", result.Failure)
	}
	if h.holds("player-3", "role-team-a") {
		t.Errorf("rejected sign still granted the team role")
	}
}

func TestSignDMFailureIsSoft(t *testing.T) {
	h := newHarness()
	h.addMember("manager-1", "role-manager", "role-team-a")
	h.addMember("player-1")
	h.client.DirectMessageFunc = func(ctx context.Context, userID sharedtypes.UserID, content string) (bool, error) {
		return false, nil
	}

	result, err := h.service.Sign(context.Background(), "guild-1", "manager-1", "player-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success == nil {
		t.Fatalf("expected success, got failure: %v", result.Failure)
	}
	if result.Success.DMDelivered {
		t.Errorf("expected DMDelivered false")
	}
}
