package teamservice

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	teamevents "github.com/Harbour-City-League/roster-bot/app/shared/events/team"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
)

// RegisterTeam registers or re-registers a platform role as a team. A zero
// roster limit takes the default; negative values disable the cap. The
// announcement background survives a re-register.
func (s *TeamService) RegisterTeam(ctx context.Context, team teamevents.TeamView) (TeamResult, error) {
	if ctx == nil {
		return TeamResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "RegisterTeam", string(team.GuildID),
		func(ctx context.Context) (TeamResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (TeamResult, error) {
				if team.GuildID == "" {
					return results.FailureResult[teamevents.TeamView, error](ErrInvalidGuildID), nil
				}
				if team.RoleID == "" {
					return results.FailureResult[teamevents.TeamView, error](ErrInvalidRoleID), nil
				}
				if team.Logo == "" {
					return results.FailureResult[teamevents.TeamView, error](ErrMissingLogo), nil
				}

				limit := team.RosterLimit
				if limit == 0 {
					limit = DefaultRosterLimit
				}

				row := &teamdb.Team{
					RoleID:      team.RoleID,
					GuildID:     team.GuildID,
					Logo:        team.Logo,
					RosterLimit: limit,
				}
				if err := s.repo.SaveTeam(ctx, db, row); err != nil {
					return TeamResult{}, fmt.Errorf("failed to save team: %w", err)
				}

				return results.SuccessResult[teamevents.TeamView, error](toView(row)), nil
			})
		})
}
