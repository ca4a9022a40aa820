package service

import (
	"context"
	"strings"
	"testing"

	"github.com/zync/orderline/internal/core/domain"
)

func newChatFixture(t *testing.T) (*ChatService, *mockDB, *domain.Shop, *mockNotifier) {
	t.Helper()
	db := newMockDB()
	shop := fixtureShop(db)
	notifier := &mockNotifier{}
	orders := NewOrderService(db, &mockSeq{}, notifier)
	return NewChatService(db, orders), db, shop, notifier
}

func TestHandleMessage_Menu(t *testing.T) {
	chat, _, shop, _ := newChatFixture(t)

	reply := chat.HandleMessage(context.Background(), "whatsapp:+919812345678", "menu "+shop.Phone)

	for _, want := range []string{"Chai Point", "A. Tea — ₹10", "B. Coffee — ₹20", "order " + shop.Phone} {
		if !strings.Contains(reply, want) {
			t.Errorf("menu reply missing %q:\n%s", want, reply)
		}
	}
}

func TestHandleMessage_MenuShopNotFound(t *testing.T) {
	chat, _, _, _ := newChatFixture(t)

	reply := chat.HandleMessage(context.Background(), "whatsapp:+919812345678", "menu +910000000000")
	if !strings.Contains(reply, "not found") {
		t.Errorf("expected shop-not-found reply, got %q", reply)
	}
}

func TestHandleMessage_MenuEmpty(t *testing.T) {
	chat, db, shop, _ := newChatFixture(t)
	db.items[shop.ID] = nil

	reply := chat.HandleMessage(context.Background(), "whatsapp:+919812345678", "menu "+shop.Phone)
	if !strings.Contains(reply, "No items found for Chai Point") {
		t.Errorf("expected empty-menu reply, got %q", reply)
	}
}

func TestHandleMessage_OrderPlacesOrder(t *testing.T) {
	chat, db, shop, notifier := newChatFixture(t)

	reply := chat.HandleMessage(context.Background(), "whatsapp:+919812345678",
		"order "+shop.Phone+" A 2 B")

	if !strings.Contains(reply, "Order placed: #000001") {
		t.Fatalf("expected confirmation, got %q", reply)
	}
	if !strings.Contains(reply, "Tea ×2 — ₹10 = ₹20") {
		t.Errorf("expected Tea line, got %q", reply)
	}
	if !strings.Contains(reply, "Coffee ×1 — ₹20 = ₹20") {
		t.Errorf("expected Coffee line (trailing token qty 1), got %q", reply)
	}
	if !strings.Contains(reply, "Total: ₹40") {
		t.Errorf("expected total 40, got %q", reply)
	}

	if len(db.orders) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(db.orders))
	}
	for _, o := range db.orders {
		if o.ItemsTotal != 4000 || o.GrandTotal != 4000 {
			t.Errorf("expected totals 4000, got items=%d grand=%d", o.ItemsTotal, o.GrandTotal)
		}
		if o.Phone != "+919812345678" {
			t.Errorf("expected normalized sender phone, got %q", o.Phone)
		}
		if o.DeliveryFee != 0 {
			t.Errorf("chat orders carry no delivery fee, got %d", o.DeliveryFee)
		}
		if o.Status != domain.OrderStatusReceived {
			t.Errorf("expected received, got %s", o.Status)
		}
	}
	if created, _ := notifier.counts(); created != 1 {
		t.Errorf("expected 1 creation notification, got %d", created)
	}
}

func TestHandleMessage_OrderUnresolvableTokensCreateNothing(t *testing.T) {
	chat, db, shop, notifier := newChatFixture(t)

	reply := chat.HandleMessage(context.Background(), "whatsapp:+919812345678",
		"order "+shop.Phone+" A 2 Z 1 XX 3")

	if !strings.Contains(reply, "Item(s) not found: Z, XX") {
		t.Fatalf("expected failing tokens named, got %q", reply)
	}
	if len(db.orders) != 0 {
		t.Errorf("expected no order, got %d", len(db.orders))
	}
	if created, _ := notifier.counts(); created != 0 {
		t.Errorf("expected no notifications, got %d", created)
	}
}

func TestHandleMessage_OrderShopNotFound(t *testing.T) {
	chat, db, _, _ := newChatFixture(t)

	reply := chat.HandleMessage(context.Background(), "whatsapp:+919812345678", "order +910000000000 A 1")
	if !strings.Contains(reply, "Shop +910000000000 not found") {
		t.Errorf("expected shop-not-found reply, got %q", reply)
	}
	if len(db.orders) != 0 {
		t.Errorf("expected no order, got %d", len(db.orders))
	}
}

func TestHandleMessage_Status(t *testing.T) {
	chat, db, shop, _ := newChatFixture(t)
	chat.HandleMessage(context.Background(), "whatsapp:+919812345678", "order "+shop.Phone+" A 1")

	reply := chat.HandleMessage(context.Background(), "whatsapp:+919812345678", "status 1")
	if !strings.Contains(reply, "Order #000001 status: received") {
		t.Errorf("expected status reply, got %q", reply)
	}

	_ = db
	reply = chat.HandleMessage(context.Background(), "whatsapp:+919812345678", "status 424242")
	if !strings.Contains(reply, "not found") {
		t.Errorf("expected not-found reply, got %q", reply)
	}
}

func TestHandleMessage_UnknownGetsHelp(t *testing.T) {
	chat, _, _, _ := newChatFixture(t)

	reply := chat.HandleMessage(context.Background(), "whatsapp:+919812345678", "hello there")
	for _, want := range []string{"menu <shopPhone>", "order <shopPhone>", "status <orderNumber>"} {
		if !strings.Contains(reply, want) {
			t.Errorf("help reply missing %q:\n%s", want, reply)
		}
	}
}

func TestChatSenderPhone(t *testing.T) {
	cases := map[string]string{
		"whatsapp:+919812345678": "+919812345678",
		"whatsapp:9812345678":    "+919812345678",
		"+919812345678":          "+919812345678",
		"9812345678":             "+919812345678",
	}
	for in, want := range cases {
		if got := ChatSenderPhone(in); got != want {
			t.Errorf("ChatSenderPhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"9812345678", "+919812345678", true},
		{"09812345678", "+919812345678", true},
		{"919812345678", "+919812345678", true},
		{"+1 415 555 0100", "+14155550100", true},
		{"98-1234-5678", "+919812345678", true},
		{"12345", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizePhone(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("NormalizePhone(%q) = %q,%v want %q,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}
