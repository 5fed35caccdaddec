package transferservice

import (
	"context"
	"errors"
	"testing"
	"time"

	transferdomain "github.com/Harbour-City-League/roster-bot/app/modules/transfer/domain"
	"github.com/Harbour-City-League/roster-bot/app/shared/rejections"
)

func TestDecline(t *testing.T) {
	t.Run("approver declines and nobody moves", func(t *testing.T) {
		h := newHarness()
		offer := h.pendingOffer("offer-1")

		result, err := h.service.Decline(context.Background(), "guild-1", offer.ID, "manager-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Success == nil {
			t.Fatalf("expected success, got failure: %v", result.Failure)
		}
		if result.Success.Offer.State != transferdomain.StateDeclined {
			t.Errorf("state = %s, want declined", result.Success.Offer.State)
		}
		for _, step := range h.client.Trace() {
			switch step {
			case "RevokeRole player-1 role-team-b", "GrantRole player-1 role-team-a":
				t.Errorf("decline mutated membership: %s", step)
			}
		}
		notified := false
		for _, step := range h.client.Trace() {
			if step == "DirectMessage manager-1" {
				notified = true
			}
		}
		if !notified {
			t.Errorf("requester was not told, trace %v", h.client.Trace())
		}
	})

	t.Run("wrong approver", func(t *testing.T) {
		h := newHarness()
		offer := h.pendingOffer("offer-1")

		result, err := h.service.Decline(context.Background(), "guild-1", offer.ID, "impostor")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Failure == nil || !errors.Is(*result.Failure, rejections.ErrNotAuthorized) {
			t.Errorf("failure = %v, want ErrNotAuthorized", result.Failure)
		}
		stored, _ := h.board.Get(offer.ID, h.clock)
		if stored.State != transferdomain.StateProposed {
			t.Errorf("offer state = %s, want still proposed", stored.State)
		}
	})

	t.Run("second press loses the race", func(t *testing.T) {
		h := newHarness()
		offer := h.pendingOffer("offer-1")

		first, err := h.service.Decline(context.Background(), "guild-1", offer.ID, "manager-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Success == nil {
			t.Fatalf("first press failed: %v", first.Failure)
		}

		second, err := h.service.Decline(context.Background(), "guild-1", offer.ID, "manager-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Failure == nil || !errors.Is(*second.Failure, ErrOfferResolved) {
			t.Errorf("failure = %v, want ErrOfferResolved", second.Failure)
		}
	})
}

func TestSweepExpired(t *testing.T) {
	h := newHarness()
	h.pendingOffer("offer-live")
	stale := h.pendingOffer("offer-stale")
	stale.Deadline = h.clock.Add(-time.Minute)

	dropped := h.service.SweepExpired(h.clock)
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if h.board.Len() != 1 {
		t.Errorf("len = %d, want 1", h.board.Len())
	}
}
