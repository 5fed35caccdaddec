package rosterservice

import (
	"context"
	"errors"
	"testing"

	"github.com/Harbour-City-League/roster-bot/app/shared/rejections"
)

func TestRelease(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*harness)
		wantSuccess bool
		failReason  error
	}{
		{
			name: "manager releases a player",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-manager", "role-team-a")
				h.addMember("player-1", "role-team-a")
			},
			wantSuccess: true,
		},
		{
			name: "window closed",
			setup: func(h *harness) {
				h.config.TransferWindowOpen = false
				h.addMember("manager-1", "role-manager", "role-team-a")
				h.addMember("player-1", "role-team-a")
			},
			failReason: rejections.ErrWindowClosed,
		},
		{
			name: "actor without leadership role",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-team-a")
				h.addMember("player-1", "role-team-a")
			},
			failReason: rejections.ErrNotAuthorized,
		},
		{
			name: "player not on the actor's team",
			setup: func(h *harness) {
				h.addMember("manager-1", "role-manager", "role-team-a")
				h.addMember("player-1", "role-team-b")
			},
			failReason: rejections.ErrNotOnTeam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			tt.setup(h)

			result, err := h.service.Release(context.Background(), "guild-1", "manager-1", "player-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantSuccess {
				if result.Success == nil {
					t.Fatalf("expected success, got failure: %v", result.Failure)
				}
				if h.holds("player-1", "role-team-a") {
					t.Errorf("player still holds the team role")
				}
				return
			}
			if result.Failure == nil {
				t.Fatalf("expected failure, got success: %+v", result.Success)
			}
			if !errors.Is(*result.Failure, tt.failReason) {
				t.Errorf("failure = %v, want %v", *result.Failure, tt.failReason)
			}
		})
	}
}

func TestReleaseStripsAssistantRole(t *testing.T) {
	h := newHarness()
	h.addMember("manager-1", "role-manager", "role-team-a")
	h.addMember("player-1", "role-team-a", "role-assistant")

	result, err := h.service.Release(context.Background(), "guild-1", "manager-1", "player-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success == nil {
		t.Fatalf("expected success, got failure: %v", result.Failure)
	}
	if h.holds("player-1", "role-assistant") {
		t.Errorf("released assistant kept the assistant role")
	}
}
