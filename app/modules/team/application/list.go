package teamservice

import (
	"context"

	"github.com/uptrace/bun"

	teamevents "github.com/Harbour-City-League/roster-bot/app/shared/events/team"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// ListTeams returns every registered team in the guild.
func (s *TeamService) ListTeams(ctx context.Context, guildID sharedtypes.GuildID) (ListResult, error) {
	if ctx == nil {
		return ListResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "ListTeams", string(guildID),
		func(ctx context.Context) (ListResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (ListResult, error) {
				if guildID == "" {
					return results.FailureResult[[]teamevents.TeamView, error](ErrInvalidGuildID), nil
				}
				teams, err := s.repo.ListTeams(ctx, db, guildID)
				if err != nil {
					return ListResult{}, err
				}
				views := make([]teamevents.TeamView, 0, len(teams))
				for i := range teams {
					views = append(views, toView(&teams[i]))
				}
				return results.SuccessResult[[]teamevents.TeamView, error](views), nil
			})
		})
}
