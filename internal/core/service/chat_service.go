package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/zync/orderline/internal/core/command"
	"github.com/zync/orderline/internal/core/domain"
	"github.com/zync/orderline/internal/core/menu"
	"github.com/zync/orderline/internal/port"
)

// ChatService drives the conversational path: one inbound message in,
// one reply out. All order placement goes through the same
// orchestrator as the web path.
type ChatService struct {
	db     port.DatabaseRepository
	orders *OrderService
}

func NewChatService(db port.DatabaseRepository, orders *OrderService) *ChatService {
	return &ChatService{db: db, orders: orders}
}

// HandleMessage interprets one chat line from a sender and returns the
// reply text. It never returns an error to the transport: every
// failure mode has a user-facing reply.
func (s *ChatService) HandleMessage(ctx context.Context, from, body string) string {
	cmd := command.Parse(body)

	switch cmd.Kind {
	case command.KindMenu:
		return s.handleMenu(ctx, cmd.ShopContact)
	case command.KindOrder:
		return s.handleOrder(ctx, from, cmd)
	case command.KindStatus:
		return s.handleStatus(ctx, cmd.OrderRef)
	default:
		return command.HelpText()
	}
}

func (s *ChatService) handleMenu(ctx context.Context, shopContact string) string {
	shop, err := s.db.FindShopByContact(ctx, shopContact)
	if err != nil {
		log.Printf("chat: find shop %s: %v", shopContact, err)
		return "Server error."
	}
	if shop == nil {
		return fmt.Sprintf("Shop %s not found.", shopContact)
	}

	items, err := s.db.ListAvailableItems(ctx, shop.ID)
	if err != nil {
		log.Printf("chat: list items for %s: %v", shop.ID, err)
		return "Server error."
	}
	if len(items) == 0 {
		return fmt.Sprintf("No items found for %s.", shop.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Menu for %s:\n\n", shop.Name)
	for i, it := range items {
		fmt.Fprintf(&b, "%s. %s — %s\n", menu.Letter(i), it.Name, FormatPaise(it.Price))
	}
	fmt.Fprintf(&b, "\nTo order: order %s <letter|itemCode> <qty> [<letter|itemCode> <qty> ...]", shop.Phone)
	fmt.Fprintf(&b, "\nExample: order %s A 2 B 1", shop.Phone)
	return b.String()
}

func (s *ChatService) handleOrder(ctx context.Context, from string, cmd command.Command) string {
	shop, err := s.db.FindShopByContact(ctx, cmd.ShopContact)
	if err != nil {
		log.Printf("chat: find shop %s: %v", cmd.ShopContact, err)
		return "Server error."
	}
	if shop == nil {
		return fmt.Sprintf("Shop %s not found.", cmd.ShopContact)
	}

	items, err := s.db.ListAvailableItems(ctx, shop.ID)
	if err != nil {
		log.Printf("chat: list items for %s: %v", shop.ID, err)
		return "Server error."
	}

	// All-or-nothing: either every token resolves or no order exists.
	var lines []Line
	var missing []string
	for _, p := range cmd.Pairs {
		item, ok := menu.Resolve(p.Token, items)
		if !ok {
			missing = append(missing, p.Token)
			continue
		}
		lines = append(lines, Line{Item: *item, Qty: p.Qty})
	}
	if len(missing) > 0 {
		return fmt.Sprintf("Item(s) not found: %s. Check the menu and use the letter or item code shown.",
			strings.Join(missing, ", "))
	}

	phone := ChatSenderPhone(from)
	order, err := s.orders.PlaceOrder(ctx, OrderDraft{
		ShopID:       shop.ID,
		CustomerName: "WhatsApp:" + phone,
		Phone:        phone,
		Address: domain.Address{
			Label:   "WhatsApp",
			Address: "WhatsApp order from " + phone,
			Phone:   phone,
		},
		Lines: lines,
	})
	if err != nil {
		log.Printf("chat: place order for %s: %v", phone, err)
		return "Server error."
	}

	return fmt.Sprintf("✅ Order placed: %s\n\n%s\n\nTotal: %s\nYou will receive updates here.",
		DisplayNumber(*order), itemLines(order.Items), FormatPaise(order.GrandTotal))
}

func (s *ChatService) handleStatus(ctx context.Context, ref string) string {
	order, err := s.orders.LookupOrder(ctx, ref)
	if errors.Is(err, ErrOrderNotFound) {
		return fmt.Sprintf("Order %s not found.", ref)
	}
	if err != nil {
		log.Printf("chat: lookup order %s: %v", ref, err)
		return "Server error."
	}
	return fmt.Sprintf("Order %s status: %s", DisplayNumber(*order), order.Status)
}

// ChatSenderPhone strips the transport prefix from a webhook sender
// address and normalizes it.
func ChatSenderPhone(from string) string {
	raw := strings.TrimSpace(from)
	if i := strings.IndexByte(raw, ':'); i >= 0 && strings.EqualFold(raw[:i], "whatsapp") {
		raw = raw[i+1:]
	}
	if normalized, ok := NormalizePhone(raw); ok {
		return normalized
	}
	return raw
}

// NormalizePhone coerces phone input to E.164, defaulting bare
// 10-digit numbers to +91.
func NormalizePhone(phone string) (string, bool) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case len(d) == 10:
		return "+91" + d, true
	case len(d) == 11 && d[0] == '0':
		return "+91" + d[1:], true
	case len(d) == 12 && strings.HasPrefix(d, "91"):
		return "+" + d, true
	case strings.HasPrefix(strings.TrimSpace(phone), "+") && len(d) >= 7:
		return "+" + d, true
	}
	return "", false
}
