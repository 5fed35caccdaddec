package guildconfigservice

import (
	"context"
	"errors"
	"testing"

	"github.com/uptrace/bun"

	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

func TestSetTransferWindow(t *testing.T) {
	tests := []struct {
		name        string
		mockSetup   func(*FakeRepository)
		guildID     sharedtypes.GuildID
		open        bool
		wantSuccess bool
		wantFailure bool
		wantErr     bool
		failReason  error
	}{
		{
			name:        "close window",
			guildID:     "guild-1",
			open:        false,
			wantSuccess: true,
		},
		{
			name:        "open window",
			guildID:     "guild-1",
			open:        true,
			wantSuccess: true,
		},
		{
			name: "guild not set up",
			mockSetup: func(repo *FakeRepository) {
				repo.SetTransferWindowFunc = func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, open bool) error {
					return guildconfigdb.ErrNotFound
				}
			},
			guildID:     "guild-1",
			open:        true,
			wantFailure: true,
			failReason:  ErrConfigNotFound,
		},
		{
			name:        "empty guild ID",
			guildID:     "",
			wantFailure: true,
			failReason:  ErrInvalidGuildID,
		},
		{
			name: "update error",
			mockSetup: func(repo *FakeRepository) {
				repo.SetTransferWindowFunc = func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, open bool) error {
					return errors.New("connection refused")
				}
			},
			guildID: "guild-1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeRepository()
			if tt.mockSetup != nil {
				tt.mockSetup(repo)
			}
			s := newTestService(repo)

			result, err := s.SetTransferWindow(context.Background(), tt.guildID, tt.open)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantSuccess {
				if result.Success == nil {
					t.Fatalf("expected success, got failure: %v", result.Failure)
				}
				if *result.Success != tt.open {
					t.Errorf("window state = %v, want %v", *result.Success, tt.open)
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
