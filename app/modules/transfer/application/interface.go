package transferservice

import (
	"context"
	"time"

	transferdomain "github.com/Harbour-City-League/roster-bot/app/modules/transfer/domain"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// ProposeOutcome carries a registered proposal.
type ProposeOutcome struct {
	Offer transferdomain.Offer
}

// ResolveOutcome carries a terminal offer together with the announcement
// ingredients when membership changed.
type ResolveOutcome struct {
	Offer      transferdomain.Offer
	Logo       string
	Background string
	ChannelID  sharedtypes.ChannelID
}

// Result aliases to reduce generic verbosity.
type (
	ProposeResult = results.OperationResult[ProposeOutcome, error]
	ResolveResult = results.OperationResult[ResolveOutcome, error]
)

// Service defines the transfer negotiation workflow.
type Service interface {
	Propose(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (ProposeResult, error)
	Accept(ctx context.Context, guildID sharedtypes.GuildID, offerID string, approverID sharedtypes.UserID) (ResolveResult, error)
	Decline(ctx context.Context, guildID sharedtypes.GuildID, offerID string, approverID sharedtypes.UserID) (ResolveResult, error)
	SweepExpired(now time.Time) int
}
