package transferservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	transferdomain "github.com/Harbour-City-League/roster-bot/app/modules/transfer/domain"
	transferboard "github.com/Harbour-City-League/roster-bot/app/modules/transfer/infrastructure/board"
	"github.com/Harbour-City-League/roster-bot/app/platform"
	"github.com/Harbour-City-League/roster-bot/app/shared/attr"
	"github.com/Harbour-City-League/roster-bot/app/shared/rejections"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Accept resolves a pending offer in favour of the move. The window and
// the destination roster's capacity are re-checked at press time; either
// failing declines the offer by policy with no membership change, and the
// requester is told. On success the player swaps team roles, any
// free-agent listing is cleared and the move is announced.
func (s *TransferService) Accept(ctx context.Context, guildID sharedtypes.GuildID, offerID string, approverID sharedtypes.UserID) (ResolveResult, error) {
	if ctx == nil {
		return ResolveResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "Accept", string(guildID),
		func(ctx context.Context) (ResolveResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (ResolveResult, error) {
				return s.acceptLogic(ctx, db, guildID, offerID, approverID)
			})
		})
}

func (s *TransferService) acceptLogic(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, offerID string, approverID sharedtypes.UserID) (ResolveResult, error) {
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

	config, err := s.getConfig(ctx, db, guildID)
	if err != nil {
		if errors.Is(err, rejections.ErrNotConfigured) {
			return reject(err), nil
		}
		return ResolveResult{}, err
	}
	if !config.TransferWindowOpen {
		// Closed since the proposal: declined by policy, nobody moves.
		return s.declineByPolicy(ctx, offer, rejections.ErrWindowClosed)
	}

	team, err := s.teams.GetTeam(ctx, db, guildID, offer.ToTeam)
	if err != nil {
		if errors.Is(err, teamdb.ErrNotFound) {
			// Destination unregistered mid-negotiation.
			return s.declineByPolicy(ctx, offer, rejections.ErrNoTeamRole)
		}
		return ResolveResult{}, err
	}
	if team.RosterLimit > 0 {
		count, err := s.playerCount(ctx, guildID, config, offer.ToTeam)
		if err != nil {
			return ResolveResult{}, err
		}
		if count >= team.RosterLimit {
			return s.declineByPolicy(ctx, offer, rejections.ErrRosterFull)
		}
	}

	claimed, err := s.board.Resolve(offer.ID, transferdomain.StateAccepted, now)
	if err != nil {
		return reject(boardError(err)), nil
	}

	// A platform failure past this point must not consume the offer: the
	// claim is handed back so the approver can press again.
	if err := s.client.RevokeRole(ctx, guildID, offer.PlayerID, offer.FromTeam); err != nil {
		s.board.Reopen(offer.ID)
		return ResolveResult{}, fmt.Errorf("failed to revoke old team role: %w", err)
	}
	if err := s.client.GrantRole(ctx, guildID, offer.PlayerID, offer.ToTeam); err != nil {
		s.board.Reopen(offer.ID)
		return ResolveResult{}, fmt.Errorf("failed to grant new team role: %w", err)
	}
	if err := s.agents.RemoveOnSign(ctx, guildID, offer.PlayerID); err != nil {
		s.board.Reopen(offer.ID)
		return ResolveResult{}, err
	}

	s.notifyRequester(ctx, claimed,
		fmt.Sprintf("Your transfer offer for <@%s> was accepted.", offer.PlayerID))

	outcome := ResolveOutcome{
		Offer:     claimed,
		Logo:      team.Logo,
		ChannelID: config.AnnouncementChannelID,
	}
	if team.AnnouncementBackground != nil {
		outcome.Background = *team.AnnouncementBackground
	}
	return results.SuccessResult[ResolveOutcome, error](outcome), nil
}

// playerCount counts the destination roster against its cap the same way
// sign does: holders of the guild leadership roles do not fill a slot.
func (s *TransferService) playerCount(ctx context.Context, guildID sharedtypes.GuildID, config *guildconfigdb.GuildConfig, teamRole sharedtypes.RoleID) (int, error) {
	members, err := s.client.MembersWithRole(ctx, guildID, teamRole)
	if err != nil {
		return 0, fmt.Errorf("failed to count roster: %w", err)
	}
	count := 0
	for _, member := range members {
		roles, err := s.client.MemberRoles(ctx, guildID, member)
		if err != nil {
			if errors.Is(err, platform.ErrMemberNotFound) {
				continue
			}
			return 0, fmt.Errorf("failed to read member roles: %w", err)
		}
		leadership := false
		for _, role := range roles {
			if role == config.ManagerRoleID || role == config.AssistantRoleID {
				leadership = true
				break
			}
		}
		if leadership {
			continue
		}
		count++
	}
	return count, nil
}

// declineByPolicy moves an offer to Declined without any membership
// change and tells the requester why.
func (s *TransferService) declineByPolicy(ctx context.Context, offer transferdomain.Offer, reason error) (ResolveResult, error) {
	declined, err := s.board.Resolve(offer.ID, transferdomain.StateDeclined, s.now())
	if err != nil {
		return results.FailureResult[ResolveOutcome, error](boardError(err)), nil
	}
	s.notifyRequester(ctx, declined,
		fmt.Sprintf("Your transfer offer for <@%s> was declined: %s.", offer.PlayerID, reason))
	return results.FailureResult[ResolveOutcome, error](reason), nil
}

func (s *TransferService) notifyRequester(ctx context.Context, offer transferdomain.Offer, content string) {
	if _, err := s.client.DirectMessage(ctx, offer.RequesterID, content); err != nil {
		s.deps.Logger.WarnContext(ctx, "Requester DM failed",
			attr.String("offer_id", offer.ID), attr.Error(err))
	}
}

func boardError(err error) error {
	switch {
	case errors.Is(err, transferboard.ErrExpired):
		return ErrOfferExpired
	case errors.Is(err, transferboard.ErrResolved):
		return ErrOfferResolved
	default:
		return ErrOfferNotFound
	}
}
