package models

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusConfirmed, OrderStatusProcessing},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusDelivered},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusDelivered, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusConfirmed, OrderStatusPending},
		{OrderStatusDelivered, OrderStatusDelivered},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestPriorityFor(t *testing.T) {
	cases := []struct {
		total    float64
		priority string
	}{
		{500, OrderPriorityNormal},
		{10000, OrderPriorityNormal},
		{10001, OrderPriorityMedium},
		{25000, OrderPriorityMedium},
		{25001, OrderPriorityHigh},
	}
	for _, tc := range cases {
		if got := PriorityFor(tc.total); got != tc.priority {
			t.Errorf("PriorityFor(%v) = %s, want %s", tc.total, got, tc.priority)
		}
	}
}
