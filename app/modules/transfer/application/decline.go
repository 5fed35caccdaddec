package transferservice

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	transferdomain "github.com/Harbour-City-League/roster-bot/app/modules/transfer/domain"
	"github.com/Harbour-City-League/roster-bot/app/shared/rejections"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Decline resolves a pending offer against the move. Nothing mutates; the
// requester is told.
func (s *TransferService) Decline(ctx context.Context, guildID sharedtypes.GuildID, offerID string, approverID sharedtypes.UserID) (ResolveResult, error) {
	if ctx == nil {
		return ResolveResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "Decline", string(guildID),
		func(ctx context.Context) (ResolveResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (ResolveResult, error) {
				return s.declineLogic(ctx, guildID, offerID, approverID)
			})
		})
}

func (s *TransferService) declineLogic(ctx context.Context, guildID sharedtypes.GuildID, offerID string, approverID sharedtypes.UserID) (ResolveResult, error) {
	reject := func(reason error) ResolveResult {
		return results.FailureResult[ResolveOutcome, error](reason)
	}

	now := s.now()
	offer, ok := s.board.Get(offerID, now)
	if !ok || offer.GuildID != guildID {
		return reject(ErrOfferNotFound), nil
	}
	if offer.State == transferdomain.StateExpired {
		return reject(ErrOfferExpired), nil
	}
	if offer.State.Terminal() {
		return reject(ErrOfferResolved), nil
	}
	if offer.ApproverID != approverID {
		return reject(rejections.ErrNotAuthorized), nil
	}

	declined, err := s.board.Resolve(offer.ID, transferdomain.StateDeclined, s.now())
	if err != nil {
		return reject(boardError(err)), nil
	}

	s.notifyRequester(ctx, declined,
		fmt.Sprintf("Your transfer offer for <@%s> was declined.", offer.PlayerID))

	return results.SuccessResult[ResolveOutcome, error](ResolveOutcome{Offer: declined}), nil
}
