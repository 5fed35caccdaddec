package rosterservice

import (
	"context"
	"testing"

	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

func TestResolveFromRoles(t *testing.T) {
	teams := []teamdb.Team{
		{RoleID: "role-300", Logo: "c.png"},
		{RoleID: "role-100", Logo: "a.png"},
		{RoleID: "role-200", Logo: "b.png"},
	}

	tests := []struct {
		name  string
		roles []sharedtypes.RoleID
		want  sharedtypes.RoleID
	}{
		{
			name:  "single team role",
			roles: []sharedtypes.RoleID{"role-other", "role-200"},
			want:  "role-200",
		},
		{
			name:  "several team roles resolve to the lowest ID",
			roles: []sharedtypes.RoleID{"role-300", "role-100", "role-200"},
			want:  "role-100",
		},
		{
			name:  "no registered team role",
			roles: []sharedtypes.RoleID{"role-other"},
			want:  "",
		},
		{
			name:  "empty role set",
			roles: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveFromRoles(tt.roles, teams)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("resolved = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("resolved = nil, want %s", tt.want)
			}
			if got.RoleID != tt.want {
				t.Errorf("resolved = %s, want %s", got.RoleID, tt.want)
			}
		})
	}
}

func TestResolveTeam(t *testing.T) {
	t.Run("member on a team", func(t *testing.T) {
		h := newHarness()
		h.addMember("player-1", "role-team-b")

		resolved, err := h.service.ResolveTeam(context.Background(), "guild-1", "player-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved == nil || resolved.RoleID != "role-team-b" {
			t.Errorf("resolved = %+v, want role-team-b", resolved)
		}
	})

	t.Run("departed member resolves to nil", func(t *testing.T) {
		h := newHarness()

		resolved, err := h.service.ResolveTeam(context.Background(), "guild-1", "ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved != nil {
			t.Errorf("resolved = %+v, want nil", resolved)
		}
	})
}

func TestResolveManagers(t *testing.T) {
	h := newHarness()
	h.addMember("head-1", "role-manager", "role-team-a")
	h.addMember("both-1", "role-manager", "role-assistant", "role-team-a")
	h.addMember("assistant-1", "role-assistant", "role-team-a")
	h.addMember("player-1", "role-team-a")

	managers, err := h.service.ResolveManagers(context.Background(), "guild-1", "role-team-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(managers.Heads) != 2 {
		t.Errorf("heads = %v, want both-1 and head-1", managers.Heads)
	}
	// Holding both guild roles counts as a head manager only.
	for _, a := range managers.Assistants {
		if a == "both-1" {
			t.Errorf("both-1 counted as assistant")
		}
	}
	if len(managers.Assistants) != 1 || managers.Assistants[0] != "assistant-1" {
		t.Errorf("assistants = %v, want assistant-1", managers.Assistants)
	}
}
