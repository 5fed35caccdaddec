package teamservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// GetTeamView returns one team with its current members resolved from the
// platform directory. Membership is never stored; the role holders at the
// moment of the call are the roster.
func (s *TeamService) GetTeamView(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (ViewResult, error) {
	if ctx == nil {
		return ViewResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "GetTeamView", string(guildID),
		func(ctx context.Context) (ViewResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (ViewResult, error) {
				if guildID == "" {
					return results.FailureResult[TeamDetail, error](ErrInvalidGuildID), nil
				}
				if roleID == "" {
					return results.FailureResult[TeamDetail, error](ErrInvalidRoleID), nil
				}

				team, err := s.repo.GetTeam(ctx, db, guildID, roleID)
				if err != nil {
					if errors.Is(err, teamdb.ErrNotFound) {
						return results.FailureResult[TeamDetail, error](ErrTeamNotFound), nil
					}
					return ViewResult{}, err
				}

				members, err := s.directory.MembersWithRole(ctx, guildID, roleID)
				if err != nil {
					return ViewResult{}, fmt.Errorf("failed to resolve members: %w", err)
				}

				return results.SuccessResult[TeamDetail, error](TeamDetail{
					Team:        toView(team),
					Members:     members,
					MemberCount: len(members),
				}), nil
			})
		})
}
