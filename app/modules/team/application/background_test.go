package teamservice

import (
	"context"
	"errors"
	"testing"

	"github.com/uptrace/bun"

	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

func TestSetAnnouncementBackground(t *testing.T) {
	tests := []struct {
		name        string
		background  string
		mockSetup   func(*FakeTeamRepository)
		wantSuccess bool
		wantFailure bool
		failReason  error
		wantStored  string
	}{
		{
			name:        "set custom background",
			background:  "https://cdn.example/bg.png",
			wantSuccess: true,
			wantStored:  "https://cdn.example/bg.png",
		},
		{
			name:        "reset clears override",
			background:  BackgroundReset,
			wantSuccess: true,
			wantStored:  "",
		},
		{
			name:        "empty also clears",
			background:  "",
			wantSuccess: true,
			wantStored:  "",
		},
		{
			name:       "unknown team",
			background: "https://cdn.example/bg.png",
			mockSetup: func(repo *FakeTeamRepository) {
				repo.SetBackgroundFunc = func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID, background *string) error {
					return teamdb.ErrNotFound
				}
			},
			wantFailure: true,
			failReason:  ErrTeamNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeTeamRepository()
			var captured *string
			repo.SetBackgroundFunc = func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID, background *string) error {
				captured = background
				return nil
			}
			if tt.mockSetup != nil {
				tt.mockSetup(repo)
			}
			s := newTestService(repo, nil, nil)

			result, err := s.SetAnnouncementBackground(context.Background(), "guild-1", "role-team-a", tt.background)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantSuccess {
				if result.Success == nil {
					t.Fatalf("expected success, got failure: %v", result.Failure)
				}
				if *result.Success != tt.wantStored {
					t.Errorf("stored value = %q, want %q", *result.Success, tt.wantStored)
				}
				if tt.wantStored == "" && captured != nil {
					t.Errorf("expected nil background passed to repo, got %q", *captured)
				}
				if tt.wantStored != "" && (captured == nil || *captured != tt.wantStored) {
					t.Errorf("repo background = %v, want %q", captured, tt.wantStored)
				}
			}
			if tt.wantFailure {
				if result.Failure == nil {
					t.Fatalf("expected failure, got success: %+v", result.Success)
				}
				if !errors.Is(*result.Failure, tt.failReason) {
					t.Errorf("failure = %v, want %v", *result.Failure, tt.failReason)
				}
			}
		})
	}
}
