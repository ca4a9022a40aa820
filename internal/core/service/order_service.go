package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zync/orderline/internal/core/domain"
	"github.com/zync/orderline/internal/port"
)

// orderCounter is the global numbering space shared by every shop.
const orderCounter = "orderNumber"

var (
	ErrNoItems         = errors.New("order has no items")
	ErrShopNotFound    = errors.New("shop not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPincodeMismatch = errors.New("shop does not deliver to this pincode")
	ErrStaleStatus     = errors.New("order status changed concurrently")
)

// InvalidTransitionError reports a status move the state machine
// forbids, naming current and requested states for the caller.
type InvalidTransitionError struct {
	From domain.OrderStatus
	To   domain.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.From, e.To)
}

// Line is one resolved (catalog item, quantity) pair entering the
// aggregator.
type Line struct {
	Item domain.MenuItem
	Qty  int
}

// OrderDraft carries everything needed to create an order. Lines must
// already be resolved; the orchestrator rejects an empty draft rather
// than guessing.
type OrderDraft struct {
	ShopID       string
	CustomerID   string
	CustomerName string
	Phone        string
	Address      domain.Address
	Lines        []Line
	DeliveryFee  int64 // paise; zero for chat orders
}

type OrderService struct {
	db       port.DatabaseRepository
	seq      port.SequenceRepository
	notifier Notifier
}

func NewOrderService(db port.DatabaseRepository, seq port.SequenceRepository, notifier Notifier) *OrderService {
	return &OrderService{db: db, seq: seq, notifier: notifier}
}

// PlaceOrder runs the creation sequence: validate, number, persist
// with status received, then fan out. Persistence failure surfaces to
// the caller and nothing is notified.
func (s *OrderService) PlaceOrder(ctx context.Context, draft OrderDraft) (*domain.Order, error) {
	if len(draft.Lines) == 0 {
		return nil, ErrNoItems
	}

	shop, err := s.db.GetShop(ctx, draft.ShopID)
	if err != nil {
		return nil, fmt.Errorf("load shop: %w", err)
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	if draft.Address.Pincode != "" && strings.TrimSpace(draft.Address.Pincode) != strings.TrimSpace(shop.Pincode) {
		return nil, ErrPincodeMismatch
	}

	items, itemsTotal := buildLineItems(draft.Lines)
	number, source, err := s.nextOrderNumber(ctx, draft.ShopID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := domain.Order{
		ID:           uuid.NewString(),
		OrderNumber:  number,
		NumberSource: source,
		ShopID:       draft.ShopID,
		CustomerID:   draft.CustomerID,
		CustomerName: draft.CustomerName,
		Phone:        draft.Phone,
		Address:      draft.Address,
		Items:        items,
		ItemsTotal:   itemsTotal,
		DeliveryFee:  draft.DeliveryFee,
		GrandTotal:   itemsTotal + draft.DeliveryFee,
		Status:       domain.OrderStatusReceived,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.db.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	s.notifier.NotifyCreated(order, shop.Phone)
	return &order, nil
}

// Transition moves an order one step along the pipeline (or cancels
// it). The persisted update is conditioned on the status the decision
// was made against, so a request computed from a stale status loses
// and is rejected rather than overwriting a newer one.
func (s *OrderService) Transition(ctx context.Context, orderID string, target domain.OrderStatus) (*domain.Order, error) {
	order, err := s.db.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !domain.ValidStatus(target) || !domain.CanTransition(order.Status, target) {
		return nil, &InvalidTransitionError{From: order.Status, To: target}
	}

	applied, err := s.db.UpdateOrderStatus(ctx, orderID, order.Status, target)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if !applied {
		return nil, ErrStaleStatus
	}

	order.Status = target
	order.UpdatedAt = time.Now()

	s.notifier.NotifyStatus(*order)
	return order, nil
}

// LookupOrder accepts either a customer-visible order number or an
// internal order id.
func (s *OrderService) LookupOrder(ctx context.Context, ref string) (*domain.Order, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.ParseInt(strings.TrimPrefix(ref, "#"), 10, 64); err == nil && n > 0 {
		order, err := s.db.GetOrderByNumber(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("load order: %w", err)
		}
		if order != nil {
			return order, nil
		}
	}
	order, err := s.db.GetOrder(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// nextOrderNumber tries the global counter first and degrades to the
// shop-local sequence when it is unreachable. The two spaces never
// interleave consistently; the source tag keeps the degradation
// visible.
func (s *OrderService) nextOrderNumber(ctx context.Context, shopID string) (int64, domain.NumberSource, error) {
	number, err := s.seq.Next(ctx, orderCounter)
	if err == nil {
		return number, domain.NumberSourceGlobal, nil
	}
	log.Printf("global counter unavailable, falling back to shop sequence for %s: %v", shopID, err)

	number, ferr := s.db.IncrementShopSequence(ctx, shopID)
	if ferr != nil {
		return 0, "", fmt.Errorf("order numbering failed (counter: %v): %w", err, ferr)
	}
	return number, domain.NumberSourceShop, nil
}

// buildLineItems freezes the drafted lines into priced snapshots.
func buildLineItems(lines []Line) ([]domain.LineItem, int64) {
	items := make([]domain.LineItem, 0, len(lines))
	var total int64
	for _, l := range lines {
		qty := l.Qty
		if qty < 1 {
			qty = 1
		}
		lineTotal := l.Item.Price * int64(qty)
		items = append(items, domain.LineItem{
			Name:      l.Item.Name,
			Quantity:  qty,
			UnitPrice: l.Item.Price,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}
	return items, total
}
