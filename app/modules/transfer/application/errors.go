package transferservice

import "errors"

// Offer-control errors, surfaced as resolve-failed reasons. The shared
// transaction rejections cover the rest of the taxonomy.
var (
	ErrOfferNotFound = errors.New("offer_not_found")
	ErrOfferExpired  = errors.New("offer_expired")
	ErrOfferResolved = errors.New("offer_resolved")
	ErrNilContext    = errors.New("context cannot be nil")
)
