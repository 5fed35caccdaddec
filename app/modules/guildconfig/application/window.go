package guildconfigservice

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// SetTransferWindow opens or closes the guild-wide transfer window. The
// gate applies to sign, release and transfer-accept; demand is exempt.
func (s *GuildConfigService) SetTransferWindow(ctx context.Context, guildID sharedtypes.GuildID, open bool) (WindowResult, error) {
	if ctx == nil {
		return WindowResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "SetTransferWindow", string(guildID),
		func(ctx context.Context) (WindowResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (WindowResult, error) {
				if guildID == "" {
					return results.FailureResult[bool, error](ErrInvalidGuildID), nil
				}
				if err := s.repo.SetTransferWindow(ctx, db, guildID, open); err != nil {
					if errors.Is(err, guildconfigdb.ErrNotFound) {
						return results.FailureResult[bool, error](ErrConfigNotFound), nil
					}
					return WindowResult{}, err
				}
				return results.SuccessResult[bool, error](open), nil
			})
		})
}
