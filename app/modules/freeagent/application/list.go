package freeagentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	freeagentevents "github.com/Harbour-City-League/roster-bot/app/shared/events/freeagent"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// ListYourself puts the invoking user on the free-agent board. Listing
// again replaces the previous advert. The free-agent role is granted when
// the guild has one configured. No transfer-window dependency.
func (s *FreeAgentService) ListYourself(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, region sharedtypes.Region, position sharedtypes.Position, description string) (ListingResult, error) {
	if ctx == nil {
		return ListingResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "ListYourself", string(guildID),
		func(ctx context.Context) (ListingResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (ListingResult, error) {
				if guildID == "" {
					return results.FailureResult[freeagentevents.ListingView, error](ErrInvalidGuildID), nil
				}
				if userID == "" {
					return results.FailureResult[freeagentevents.ListingView, error](ErrInvalidUserID), nil
				}
				if !region.Valid() {
					return results.FailureResult[freeagentevents.ListingView, error](ErrInvalidRegion), nil
				}
				if !position.Valid() {
					return results.FailureResult[freeagentevents.ListingView, error](ErrInvalidPosition), nil
				}

				listing := &freeagentdb.FreeAgentListing{
					UserID:      userID,
					GuildID:     guildID,
					Region:      region,
					Position:    position,
					Description: description,
					CreatedAt:   time.Now(),
				}
				if err := s.repo.SaveListing(ctx, db, listing); err != nil {
					return ListingResult{}, fmt.Errorf("failed to save listing: %w", err)
				}

				config, err := s.configs.GetConfig(ctx, db, guildID)
				if err != nil && !errors.Is(err, guildconfigdb.ErrNotFound) {
					return ListingResult{}, fmt.Errorf("failed to read guild config: %w", err)
				}
				if config != nil && config.FreeAgentRoleID != "" {
					if err := s.roles.GrantRole(ctx, guildID, userID, config.FreeAgentRoleID); err != nil {
						return ListingResult{}, fmt.Errorf("failed to grant free agent role: %w", err)
					}
				}

				return results.SuccessResult[freeagentevents.ListingView, error](toView(listing)), nil
			})
		})
}
