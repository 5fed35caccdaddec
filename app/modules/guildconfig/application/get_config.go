package guildconfigservice

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	guildevents "github.com/Harbour-City-League/roster-bot/app/shared/events/guild"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// GetGuildConfig retrieves a guild's current configuration.
func (s *GuildConfigService) GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (ConfigResult, error) {
	if ctx == nil {
		return ConfigResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "GetGuildConfig", string(guildID),
		func(ctx context.Context) (ConfigResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (ConfigResult, error) {
				if guildID == "" {
					return results.FailureResult[guildevents.GuildConfigView, error](ErrInvalidGuildID), nil
				}
				config, err := s.repo.GetConfig(ctx, db, guildID)
				if err != nil {
					if errors.Is(err, guildconfigdb.ErrNotFound) {
						return results.FailureResult[guildevents.GuildConfigView, error](ErrConfigNotFound), nil
					}
					return ConfigResult{}, err
				}
				return results.SuccessResult[guildevents.GuildConfigView, error](toView(config)), nil
			})
		})
}
