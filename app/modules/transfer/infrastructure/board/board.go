// Package transferboard holds pending transfer offers in memory, keyed by
// offer ID. All access goes through the mutex; the single-use guarantee of
// accept and decline controls rests on Resolve being the only transition.
package transferboard

import (
	"errors"
	"sync"
	"time"

	transferdomain "github.com/Harbour-City-League/roster-bot/app/modules/transfer/domain"
)

var (
	// ErrNotFound is returned for unknown or already pruned offers.
	ErrNotFound = errors.New("offer not found")
	// ErrExpired is returned when the deadline passed before the press.
	ErrExpired = errors.New("offer expired")
	// ErrResolved is returned when the offer is already terminal.
	ErrResolved = errors.New("offer already resolved")
)

// Board is the in-memory offer table.
type Board struct {
	mu     sync.Mutex
	offers map[string]*transferdomain.Offer
}

// New creates an empty board.
func New() *Board {
	return &Board{offers: make(map[string]*transferdomain.Offer)}
}

// Add registers a freshly proposed offer.
func (b *Board) Add(offer *transferdomain.Offer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.offers[offer.ID] = offer
}

// Get returns a snapshot of the offer. An offer past its deadline is
// observed as expired regardless of the sweep loop.
func (b *Board) Get(id string, now time.Time) (transferdomain.Offer, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	offer, ok := b.offers[id]
	if !ok {
		return transferdomain.Offer{}, false
	}
	if offer.State == transferdomain.StateProposed && offer.ExpiredAt(now) {
		offer.State = transferdomain.StateExpired
	}
	return *offer, true
}

// Resolve transitions a live offer to a terminal state. It is the single
// gate for accept and decline: exactly one caller wins, everyone else
// gets ErrResolved or ErrExpired.
func (b *Board) Resolve(id string, to transferdomain.State, now time.Time) (transferdomain.Offer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	offer, ok := b.offers[id]
	if !ok {
		return transferdomain.Offer{}, ErrNotFound
	}
	if offer.State == transferdomain.StateProposed && offer.ExpiredAt(now) {
		offer.State = transferdomain.StateExpired
	}
	if offer.State == transferdomain.StateExpired {
		return *offer, ErrExpired
	}
	if offer.State.Terminal() {
		return *offer, ErrResolved
	}
	offer.State = to
	return *offer, nil
}

// Reopen hands a claimed offer back to Proposed. Used when the side
// effects of an accepted claim fail, so the approver's control keeps
// working instead of consuming the offer with nothing changed.
func (b *Board) Reopen(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	offer, ok := b.offers[id]
	if !ok {
		return
	}
	if offer.State == transferdomain.StateAccepted {
		offer.State = transferdomain.StateProposed
	}
}

// Sweep prunes terminal and expired offers and returns how many were
// dropped. Nobody is notified; expiry is silent.
func (b *Board) Sweep(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	dropped := 0
	for id, offer := range b.offers {
		if offer.State == transferdomain.StateProposed && !offer.ExpiredAt(now) {
			continue
		}
		delete(b.offers, id)
		dropped++
	}
	return dropped
}

// Len reports how many offers are on the board, live or not yet swept.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.offers)
}
