// Package rejections holds the transaction rejection reasons shared by the
// roster and transfer modules. The error text is the machine-readable
// reason carried on failed events; the gateway maps it to display copy.
// Rejections never mutate state and are surfaced only to the invoking actor.
package rejections

import "errors"

var (
	// ErrNotConfigured covers commands in a guild that never ran setup.
	ErrNotConfigured = errors.New("not_configured")
	// ErrWindowClosed rejects sign, release and transfer while the
	// transfer window is closed. Demand is exempt.
	ErrWindowClosed = errors.New("window_closed")
	// ErrNotAuthorized rejects actors without the required authority.
	ErrNotAuthorized = errors.New("not_authorized")
	// ErrNoTeamRole rejects actors who resolve to no registered team.
	ErrNoTeamRole = errors.New("no_team_role")
	// ErrAlreadySigned rejects signing a player already on the team.
	ErrAlreadySigned = errors.New("already_signed")
	// ErrIllegalMove rejects signing a player on another registered team.
	ErrIllegalMove = errors.New("illegal_move")
	// ErrRosterFull rejects joining a team at its roster limit.
	ErrRosterFull = errors.New("roster_full")
	// ErrNotOnTeam rejects releasing a player not on the actor's team.
	ErrNotOnTeam = errors.New("not_on_team")
	// ErrNotInTeam rejects a demand from a user on no team.
	ErrNotInTeam = errors.New("not_in_team")
	// ErrNoApprover rejects a transfer when the target team has nobody
	// to approve it.
	ErrNoApprover = errors.New("no_approver")
	// ErrDeliveryFailed rejects a transfer whose approval prompt never
	// reached the approver.
	ErrDeliveryFailed = errors.New("delivery_failed")
	// ErrMemberGone covers actors or players who left the guild.
	ErrMemberGone = errors.New("member_gone")
)
