package teamservice

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// DeleteTeam removes a team from the registry. Members keep the platform
// role; they simply stop resolving to a team.
func (s *TeamService) DeleteTeam(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (DeleteResult, error) {
	if ctx == nil {
		return DeleteResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "DeleteTeam", string(guildID),
		func(ctx context.Context) (DeleteResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (DeleteResult, error) {
				if guildID == "" {
					return results.FailureResult[sharedtypes.RoleID, error](ErrInvalidGuildID), nil
				}
				if roleID == "" {
					return results.FailureResult[sharedtypes.RoleID, error](ErrInvalidRoleID), nil
				}
				if err := s.repo.DeleteTeam(ctx, db, guildID, roleID); err != nil {
					if errors.Is(err, teamdb.ErrNotFound) {
						return results.FailureResult[sharedtypes.RoleID, error](ErrTeamNotFound), nil
					}
					return DeleteResult{}, err
				}
				return results.SuccessResult[sharedtypes.RoleID, error](roleID), nil
			})
		})
}
