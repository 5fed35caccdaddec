package freeagentservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Withdraw takes the invoking user off the free-agent board and revokes
// the free-agent role when the guild has one configured.
func (s *FreeAgentService) Withdraw(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (WithdrawResult, error) {
	if ctx == nil {
		return WithdrawResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "Withdraw", string(guildID),
		func(ctx context.Context) (WithdrawResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (WithdrawResult, error) {
				if guildID == "" {
					return results.FailureResult[sharedtypes.UserID, error](ErrInvalidGuildID), nil
				}
				if userID == "" {
					return results.FailureResult[sharedtypes.UserID, error](ErrInvalidUserID), nil
				}

				if err := s.repo.DeleteListing(ctx, db, guildID, userID); err != nil {
					if errors.Is(err, freeagentdb.ErrNotFound) {
						return results.FailureResult[sharedtypes.UserID, error](ErrNotListed), nil
					}
					return WithdrawResult{}, err
				}

				config, err := s.configs.GetConfig(ctx, db, guildID)
				if err != nil && !errors.Is(err, guildconfigdb.ErrNotFound) {
					return WithdrawResult{}, fmt.Errorf("failed to read guild config: %w", err)
				}
				if config != nil && config.FreeAgentRoleID != "" {
					if err := s.roles.RevokeRole(ctx, guildID, userID, config.FreeAgentRoleID); err != nil {
						return WithdrawResult{}, fmt.Errorf("failed to revoke free agent role: %w", err)
					}
				}

				return results.SuccessResult[sharedtypes.UserID, error](userID), nil
			})
		})
}
