package freeagentservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/Harbour-City-League/roster-bot/app/platform"
	freeagentevents "github.com/Harbour-City-League/roster-bot/app/shared/events/freeagent"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// BrowseFreeAgents returns the first page of current listings, newest
// first. Users who left the guild are skipped silently; their rows stay
// on the board until they relist or get signed. Capped at BrowseCap with
// a truncation flag, display only.
func (s *FreeAgentService) BrowseFreeAgents(ctx context.Context, guildID sharedtypes.GuildID) (BrowseResult, error) {
	if ctx == nil {
		return BrowseResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "BrowseFreeAgents", string(guildID),
		func(ctx context.Context) (BrowseResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (BrowseResult, error) {
				if guildID == "" {
					return results.FailureResult[BrowsePage, error](ErrInvalidGuildID), nil
				}

				listings, err := s.repo.ListListings(ctx, db, guildID)
				if err != nil {
					return BrowseResult{}, err
				}

				page := BrowsePage{Listings: make([]freeagentevents.ListingView, 0, BrowseCap)}
				for i := range listings {
					present, err := s.directory.MemberPresent(ctx, guildID, listings[i].UserID)
					if err != nil {
						if errors.Is(err, platform.ErrMemberNotFound) {
							continue
						}
						return BrowseResult{}, fmt.Errorf("failed to check member presence: %w", err)
					}
					if !present {
						continue
					}
					if len(page.Listings) == BrowseCap {
						page.Truncated = true
						break
					}
					page.Listings = append(page.Listings, toView(&listings[i]))
				}

				return results.SuccessResult[BrowsePage, error](page), nil
			})
		})
}
