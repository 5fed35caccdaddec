package platform

import "errors"

// ErrMemberNotFound indicates the user is no longer a guild member.
var ErrMemberNotFound = errors.New("member not found in guild")
