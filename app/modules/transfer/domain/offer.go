// Package transferdomain models a transfer negotiation. An offer is
// ephemeral coordination state: it lives in memory only and does not
// survive a restart. Pending offers simply vanish then, which is the
// accepted cost of keeping the negotiation table out of the database.
package transferdomain

import (
	"time"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// State is an offer's lifecycle position. Proposed is the only live
// state; the rest are terminal.
type State string

const (
	StateProposed State = "proposed"
	StateAccepted State = "accepted"
	StateDeclined State = "declined"
	StateExpired  State = "expired"
)

// Terminal reports whether the state admits no further transition.
func (s State) Terminal() bool {
	return s != StateProposed
}

// Offer is one pending transfer: the requesting manager of ToTeam wants
// the player currently on FromTeam, and FromTeam's approver decides.
type Offer struct {
	ID          string
	GuildID     sharedtypes.GuildID
	RequesterID sharedtypes.UserID
	PlayerID    sharedtypes.UserID
	FromTeam    sharedtypes.RoleID
	ToTeam      sharedtypes.RoleID
	ApproverID  sharedtypes.UserID
	CreatedAt   time.Time
	Deadline    time.Time
	State       State
}

// ExpiredAt reports whether the deadline has passed. Expiry is observed
// lazily; nothing fires at the deadline itself.
func (o *Offer) ExpiredAt(now time.Time) bool {
	return now.After(o.Deadline)
}
