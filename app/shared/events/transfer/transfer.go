// Package transferevents defines topics and payloads for transfer negotiations.
package transferevents

import (
	"time"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

const (
	TransferProposeRequestedV1 = "transfer.propose.requested.v1"
	TransferProposedV1         = "transfer.proposed.v1"
	TransferProposeFailedV1    = "transfer.propose.failed.v1"

	TransferAcceptRequestedV1  = "transfer.offer.accept.requested.v1"
	TransferDeclineRequestedV1 = "transfer.offer.decline.requested.v1"
	TransferResolvedV1         = "transfer.resolved.v1"
	TransferResolveFailedV1    = "transfer.resolve.failed.v1"
)

// TransferProposeRequestedPayloadV1 carries the transfer command.
type TransferProposeRequestedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
}

// TransferProposedPayloadV1 confirms a delivered proposal.
type TransferProposedPayloadV1 struct {
	GuildID    sharedtypes.GuildID `json:"guild_id"`
	OfferID    string              `json:"offer_id"`
	ActorID    sharedtypes.UserID  `json:"actor_id"`
	PlayerID   sharedtypes.UserID  `json:"player_id"`
	FromTeam   sharedtypes.RoleID  `json:"from_team"`
	ToTeam     sharedtypes.RoleID  `json:"to_team"`
	ApproverID sharedtypes.UserID  `json:"approver_id"`
	ExpiresAt  time.Time           `json:"expires_at"`
}

// TransferProposeFailedPayloadV1 reports an abandoned proposal.
type TransferProposeFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
	Reason   string              `json:"reason"`
}

// TransferAcceptRequestedPayloadV1 is sent when the approver presses accept.
type TransferAcceptRequestedPayloadV1 struct {
	GuildID    sharedtypes.GuildID `json:"guild_id"`
	OfferID    string              `json:"offer_id"`
	ApproverID sharedtypes.UserID  `json:"approver_id"`
}

// TransferDeclineRequestedPayloadV1 is sent when the approver presses decline.
type TransferDeclineRequestedPayloadV1 struct {
	GuildID    sharedtypes.GuildID `json:"guild_id"`
	OfferID    string              `json:"offer_id"`
	ApproverID sharedtypes.UserID  `json:"approver_id"`
}

// TransferResolvedPayloadV1 reports a terminal offer. Outcome is the
// terminal state name (accepted or declined).
type TransferResolvedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	OfferID  string              `json:"offer_id"`
	Outcome  string              `json:"outcome"`
	ActorID  sharedtypes.UserID  `json:"actor_id"`
	PlayerID sharedtypes.UserID  `json:"player_id"`
	FromTeam sharedtypes.RoleID  `json:"from_team"`
	ToTeam   sharedtypes.RoleID  `json:"to_team"`
}

// TransferResolveFailedPayloadV1 reports a rejected accept/decline press.
type TransferResolveFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	OfferID string              `json:"offer_id"`
	Reason  string              `json:"reason"`
}
