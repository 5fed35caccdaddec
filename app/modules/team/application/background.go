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

// BackgroundReset is the sentinel value that clears a custom background.
const BackgroundReset = "reset"

// SetAnnouncementBackground stores a custom announcement-card background
// for a team. Passing "reset" clears the override and the team falls back
// to the default card. Success carries the stored value, empty on reset.
func (s *TeamService) SetAnnouncementBackground(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID, background string) (BackgroundResult, error) {
	if ctx == nil {
		return BackgroundResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "SetAnnouncementBackground", string(guildID),
		func(ctx context.Context) (BackgroundResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (BackgroundResult, error) {
				if guildID == "" {
					return results.FailureResult[string, error](ErrInvalidGuildID), nil
				}
				if roleID == "" {
					return results.FailureResult[string, error](ErrInvalidRoleID), nil
				}

				var value *string
				stored := ""
				if background != "" && background != BackgroundReset {
					value = &background
					stored = background
				}

				if err := s.repo.SetBackground(ctx, db, guildID, roleID, value); err != nil {
					if errors.Is(err, teamdb.ErrNotFound) {
						return results.FailureResult[string, error](ErrTeamNotFound), nil
					}
					return BackgroundResult{}, err
				}
				return results.SuccessResult[string, error](stored), nil
			})
		})
}
