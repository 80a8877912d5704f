package entity

import "testing"

// TestOrderTransitionTable pins the shared state machine for all order flows
func TestOrderTransitionTable(t *testing.T) {
	allowed := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusProcessing},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusProcessing, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("expected %s → %s to be allowed", tr.from, tr.to)
		}
	}

	rejected := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusPending, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusCancelled},
		{OrderStatusDelivered, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusPending},
		// repeating the current status is not a transition
		{OrderStatusPending, OrderStatusPending},
		{OrderStatusShipped, OrderStatusShipped},
	}
	for _, tr := range rejected {
		if CanTransition(tr.from, tr.to) {
			t.Errorf("expected %s → %s to be rejected", tr.from, tr.to)
		}
	}

	// Terminal states have no outgoing edges
	for _, terminal := range []string{OrderStatusDelivered, OrderStatusCancelled} {
		if targets := ValidOrderTransitions[terminal]; len(targets) != 0 {
			t.Errorf("expected %s to be terminal, has targets %v", terminal, targets)
		}
	}
}
