package transferservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	transferdomain "github.com/Harbour-City-League/roster-bot/app/modules/transfer/domain"
	"github.com/Harbour-City-League/roster-bot/app/platform"
	"github.com/Harbour-City-League/roster-bot/app/shared/rejections"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Propose opens a transfer negotiation: the acting manager of team A asks
// for a player currently on team B. B's head manager approves, or the
// first assistant when no head manager exists. The offer enters the board
// only after the approval prompt is delivered; a prompt that never arrives
// abandons the proposal.
func (s *TransferService) Propose(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (ProposeResult, error) {
	if ctx == nil {
		return ProposeResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "Propose", string(guildID),
		func(ctx context.Context) (ProposeResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (ProposeResult, error) {
				return s.proposeLogic(ctx, db, guildID, actorID, playerID)
			})
		})
}

func (s *TransferService) proposeLogic(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (ProposeResult, error) {
	reject := func(reason error) ProposeResult {
		return results.FailureResult[ProposeOutcome, error](reason)
	}

	config, err := s.getConfig(ctx, db, guildID)
	if err != nil {
		if errors.Is(err, rejections.ErrNotConfigured) {
			return reject(err), nil
		}
		return ProposeResult{}, err
	}
	if !config.TransferWindowOpen {
		return reject(rejections.ErrWindowClosed), nil
	}

	actorRoles, err := s.client.MemberRoles(ctx, guildID, actorID)
	if err != nil {
		if errors.Is(err, platform.ErrMemberNotFound) {
			return reject(rejections.ErrMemberGone), nil
		}
		return ProposeResult{}, fmt.Errorf("failed to read actor roles: %w", err)
	}
	leadership := false
	for _, role := range actorRoles {
		if role == config.ManagerRoleID || role == config.AssistantRoleID {
			leadership = true
			break
		}
	}
	if !leadership {
		return reject(rejections.ErrNotAuthorized), nil
	}

	toTeam, err := s.roster.ResolveTeam(ctx, guildID, actorID)
	if err != nil {
		return ProposeResult{}, err
	}
	if toTeam == nil {
		return reject(rejections.ErrNoTeamRole), nil
	}

	fromTeam, err := s.roster.ResolveTeam(ctx, guildID, playerID)
	if err != nil {
		return ProposeResult{}, err
	}
	if fromTeam == nil {
		// A teamless player is signed, not transferred.
		return reject(rejections.ErrNotInTeam), nil
	}
	if fromTeam.RoleID == toTeam.RoleID {
		return reject(rejections.ErrAlreadySigned), nil
	}

	managers, err := s.roster.ResolveManagers(ctx, guildID, fromTeam.RoleID)
	if err != nil {
		return ProposeResult{}, err
	}
	var approver sharedtypes.UserID
	switch {
	case len(managers.Heads) > 0:
		approver = managers.Heads[0]
	case len(managers.Assistants) > 0:
		approver = managers.Assistants[0]
	default:
		return reject(rejections.ErrNoApprover), nil
	}

	now := s.now()
	offer := &transferdomain.Offer{
		ID:          uuid.New().String(),
		GuildID:     guildID,
		RequesterID: actorID,
		PlayerID:    playerID,
		FromTeam:    fromTeam.RoleID,
		ToTeam:      toTeam.RoleID,
		ApproverID:  approver,
		CreatedAt:   now,
		Deadline:    now.Add(s.offerTTL),
		State:       transferdomain.StateProposed,
	}

	if err := s.client.DeliverApproval(ctx, platform.ApprovalRequest{
		OfferID:     offer.ID,
		GuildID:     guildID,
		ApproverID:  approver,
		RequesterID: actorID,
		PlayerID:    playerID,
		FromTeam:    offer.FromTeam,
		ToTeam:      offer.ToTeam,
		ExpiresAt:   offer.Deadline,
	}); err != nil {
		// The approver never saw it, so the offer never existed.
		return reject(rejections.ErrDeliveryFailed), nil
	}

	s.board.Add(offer)
	return results.SuccessResult[ProposeOutcome, error](ProposeOutcome{Offer: *offer}), nil
}
