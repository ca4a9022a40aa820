package domain

import "testing"

func TestCanTransition_LinearChain(t *testing.T) {
	legal := [][2]OrderStatus{
		{OrderStatusReceived, OrderStatusAccepted},
		{OrderStatusAccepted, OrderStatusPacked},
		{OrderStatusPacked, OrderStatusOutForDelivery},
		{OrderStatusOutForDelivery, OrderStatusDelivered},
	}
	for _, pair := range legal {
		if !CanTransition(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be legal", pair[0], pair[1])
		}
	}
}

func TestCanTransition_NoSkipping(t *testing.T) {
	illegal := [][2]OrderStatus{
		{OrderStatusReceived, OrderStatusPacked},
		{OrderStatusReceived, OrderStatusDelivered},
		{OrderStatusAccepted, OrderStatusOutForDelivery},
		{OrderStatusPacked, OrderStatusDelivered},
	}
	for _, pair := range illegal {
		if CanTransition(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be rejected", pair[0], pair[1])
		}
	}
}

func TestCanTransition_NoGoingBack(t *testing.T) {
	if CanTransition(OrderStatusPacked, OrderStatusAccepted) {
		t.Error("expected packed -> accepted to be rejected")
	}
	if CanTransition(OrderStatusAccepted, OrderStatusReceived) {
		t.Error("expected accepted -> received to be rejected")
	}
}

func TestCanTransition_Cancellation(t *testing.T) {
	if !CanTransition(OrderStatusReceived, OrderStatusCancelled) {
		t.Error("expected received -> cancelled to be legal")
	}
	if !CanTransition(OrderStatusAccepted, OrderStatusCancelled) {
		t.Error("expected accepted -> cancelled to be legal")
	}
	if CanTransition(OrderStatusPacked, OrderStatusCancelled) {
		t.Error("expected packed -> cancelled to be rejected")
	}
	if CanTransition(OrderStatusOutForDelivery, OrderStatusCancelled) {
		t.Error("expected out-for-delivery -> cancelled to be rejected")
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	for _, from := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		if !Terminal(from) {
			t.Errorf("expected %s to be terminal", from)
		}
		for _, to := range []OrderStatus{
			OrderStatusReceived, OrderStatusAccepted, OrderStatusPacked,
			OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
		} {
			if CanTransition(from, to) {
				t.Errorf("expected no transition out of %s, got %s allowed", from, to)
			}
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusReceived, OrderStatusAccepted, OrderStatusPacked,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
	} {
		if !ValidStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ValidStatus("preparing") {
		t.Error("expected unknown status to be invalid")
	}
}

func TestItemsTotalFromLines(t *testing.T) {
	o := Order{
		Items: []LineItem{
			{Name: "Tea", Quantity: 2, UnitPrice: 1000, LineTotal: 2000},
			{Name: "Coffee", Quantity: 1, UnitPrice: 2000, LineTotal: 2000},
		},
		ItemsTotal: 4000,
	}
	if got := o.ItemsTotalFromLines(); got != o.ItemsTotal {
		t.Errorf("recomputed items total %d != stored %d", got, o.ItemsTotal)
	}
}
