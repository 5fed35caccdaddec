package freeagentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/uptrace/bun"

	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/platform/platformtest"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

func TestWithdraw(t *testing.T) {
	t.Run("listed user withdrawn and role revoked", func(t *testing.T) {
		repo := NewFakeListingRepository()
		client := platformtest.NewFakeClient()
		s := newTestService(repo, configWithFreeAgentRole("role-fa"), client)

		result, err := s.Withdraw(context.Background(), "guild-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Success == nil {
			t.Fatalf("expected success, got failure: %v", result.Failure)
		}
		revoked := false
		for _, step := range client.Trace() {
			if step == "RevokeRole user-1 role-fa" {
				revoked = true
			}
		}
		if !revoked {
			t.Errorf("expected free agent role revoked, trace %v", client.Trace())
		}
	})

	t.Run("not listed", func(t *testing.T) {
		repo := NewFakeListingRepository()
		repo.DeleteListingFunc = func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error {
			return freeagentdb.ErrNotFound
		}
		s := newTestService(repo, nil, nil)

		result, err := s.Withdraw(context.Background(), "guild-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Failure == nil {
			t.Fatalf("expected failure, got success: %+v", result.Success)
		}
		if !errors.Is(*result.Failure, ErrNotListed) {
			t.Errorf("failure = %v, want ErrNotListed", *result.Failure)
		}
	})

	t.Run("delete error surfaces", func(t *testing.T) {
		repo := NewFakeListingRepository()
		repo.DeleteListingFunc = func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error {
			return errors.New("connection refused")
		}
		s := newTestService(repo, nil, nil)

		if _, err := s.Withdraw(context.Background(), "guild-1", "user-1"); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}
