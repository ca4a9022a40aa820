package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/zync/orderline/internal/core/domain"
)

// Mock DatabaseRepository
type mockDB struct {
	mu       sync.Mutex
	shops    map[string]*domain.Shop
	items    map[string][]domain.MenuItem
	orders   map[string]*domain.Order
	shopSeq  map[string]int64
	failCRUD error // returned by CreateOrder / UpdateOrderStatus when set
	failSeq  error // returned by IncrementShopSequence when set
}

func newMockDB() *mockDB {
	return &mockDB{
		shops:   make(map[string]*domain.Shop),
		items:   make(map[string][]domain.MenuItem),
		orders:  make(map[string]*domain.Order),
		shopSeq: make(map[string]int64),
	}
}

func (m *mockDB) FindShopByContact(ctx context.Context, contact string) (*domain.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.shops {
		if s.Phone == contact {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockDB) GetShop(ctx context.Context, shopID string) (*domain.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.shops[shopID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *mockDB) ListAvailableItems(ctx context.Context, shopID string) ([]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.MenuItem(nil), m.items[shopID]...), nil
}

func (m *mockDB) CreateOrder(ctx context.Context, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCRUD != nil {
		return m.failCRUD
	}
	cp := order
	m.orders[order.ID] = &cp
	return nil
}

func (m *mockDB) UpdateOrderStatus(ctx context.Context, orderID string, expected, next domain.OrderStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCRUD != nil {
		return false, m.failCRUD
	}
	o, ok := m.orders[orderID]
	if !ok || o.Status != expected {
		return false, nil
	}
	o.Status = next
	return true, nil
}

func (m *mockDB) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *mockDB) GetOrderByNumber(ctx context.Context, number int64) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.OrderNumber == number {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockDB) ListShopOrders(ctx context.Context, shopID string, limit int) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, o := range m.orders {
		if o.ShopID == shopID && len(out) < limit {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockDB) IncrementShopSequence(ctx context.Context, shopID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSeq != nil {
		return 0, m.failSeq
	}
	m.shopSeq[shopID]++
	return m.shopSeq[shopID], nil
}

// Mock SequenceRepository
type mockSeq struct {
	mu   sync.Mutex
	seq  int64
	fail error
}

func (m *mockSeq) Next(ctx context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return 0, m.fail
	}
	m.seq++
	return m.seq, nil
}

// Mock Notifier
type mockNotifier struct {
	mu      sync.Mutex
	created []domain.Order
	status  []domain.Order
}

func (m *mockNotifier) NotifyCreated(order domain.Order, shopPhone string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, order)
}

func (m *mockNotifier) NotifyStatus(order domain.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = append(m.status, order)
}

func (m *mockNotifier) counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created), len(m.status)
}

func fixtureShop(db *mockDB) *domain.Shop {
	shop := &domain.Shop{ID: "shop-1", Name: "Chai Point", Phone: "+919800000001", Pincode: "560001", Online: true}
	db.shops[shop.ID] = shop
	db.items[shop.ID] = []domain.MenuItem{
		{ID: "i1", ShopID: shop.ID, Name: "Tea", Price: 1000, Available: true, ExternalID: "T1"},
		{ID: "i2", ShopID: shop.ID, Name: "Coffee", Price: 2000, Available: true, ExternalID: "C1"},
	}
	return shop
}

func draftFor(db *mockDB, shop *domain.Shop) OrderDraft {
	items := db.items[shop.ID]
	return OrderDraft{
		ShopID:       shop.ID,
		CustomerName: "Asha",
		Phone:        "+919812345678",
		Lines: []Line{
			{Item: items[0], Qty: 2},
			{Item: items[1], Qty: 1},
		},
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	seq := &mockSeq{}
	notifier := &mockNotifier{}
	svc := NewOrderService(db, seq, notifier)

	order, err := svc.PlaceOrder(context.Background(), draftFor(db, shop))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if order.OrderNumber != 1 {
		t.Errorf("expected order number 1, got %d", order.OrderNumber)
	}
	if order.NumberSource != domain.NumberSourceGlobal {
		t.Errorf("expected global number source, got %s", order.NumberSource)
	}
	if order.Status != domain.OrderStatusReceived {
		t.Errorf("expected received status, got %s", order.Status)
	}
	if order.ItemsTotal != 4000 {
		t.Errorf("expected items total 4000, got %d", order.ItemsTotal)
	}
	if order.GrandTotal != 4000 {
		t.Errorf("expected grand total 4000, got %d", order.GrandTotal)
	}
	if got := order.ItemsTotalFromLines(); got != order.ItemsTotal {
		t.Errorf("line totals %d do not add up to items total %d", got, order.ItemsTotal)
	}

	if db.orders[order.ID] == nil {
		t.Error("expected order to be persisted")
	}
	created, _ := notifier.counts()
	if created != 1 {
		t.Errorf("expected 1 creation notification, got %d", created)
	}
}

func TestPlaceOrder_DeliveryFee(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	svc := NewOrderService(db, &mockSeq{}, &mockNotifier{})

	draft := draftFor(db, shop)
	draft.DeliveryFee = 1500

	order, err := svc.PlaceOrder(context.Background(), draft)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if order.GrandTotal != order.ItemsTotal+1500 {
		t.Errorf("expected grand total %d, got %d", order.ItemsTotal+1500, order.GrandTotal)
	}
}

func TestPlaceOrder_NoItems(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	svc := NewOrderService(db, &mockSeq{}, &mockNotifier{})

	draft := draftFor(db, shop)
	draft.Lines = nil

	if _, err := svc.PlaceOrder(context.Background(), draft); !errors.Is(err, ErrNoItems) {
		t.Errorf("expected ErrNoItems, got %v", err)
	}
}

func TestPlaceOrder_ShopNotFound(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	svc := NewOrderService(db, &mockSeq{}, &mockNotifier{})

	draft := draftFor(db, shop)
	draft.ShopID = "no-such-shop"

	if _, err := svc.PlaceOrder(context.Background(), draft); !errors.Is(err, ErrShopNotFound) {
		t.Errorf("expected ErrShopNotFound, got %v", err)
	}
}

func TestPlaceOrder_PincodeMismatch(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	svc := NewOrderService(db, &mockSeq{}, &mockNotifier{})

	draft := draftFor(db, shop)
	draft.Address = domain.Address{Address: "12 MG Road", Pincode: "110001"}

	if _, err := svc.PlaceOrder(context.Background(), draft); !errors.Is(err, ErrPincodeMismatch) {
		t.Errorf("expected ErrPincodeMismatch, got %v", err)
	}
}

func TestPlaceOrder_CounterFallbackUsesShopSequence(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	seq := &mockSeq{fail: errors.New("redis down")}
	svc := NewOrderService(db, seq, &mockNotifier{})

	order, err := svc.PlaceOrder(context.Background(), draftFor(db, shop))
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if order.NumberSource != domain.NumberSourceShop {
		t.Errorf("expected shop number source, got %s", order.NumberSource)
	}
	if order.OrderNumber != 1 {
		t.Errorf("expected shop sequence 1, got %d", order.OrderNumber)
	}
}

func TestPlaceOrder_BothSequencesDownFails(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	db.failSeq = errors.New("mysql down")
	seq := &mockSeq{fail: errors.New("redis down")}
	notifier := &mockNotifier{}
	svc := NewOrderService(db, seq, notifier)

	if _, err := svc.PlaceOrder(context.Background(), draftFor(db, shop)); err == nil {
		t.Fatal("expected numbering failure")
	}
	if created, _ := notifier.counts(); created != 0 {
		t.Errorf("expected no notification, got %d", created)
	}
}

func TestPlaceOrder_PersistFailureSendsNothing(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	db.failCRUD = errors.New("mysql down")
	notifier := &mockNotifier{}
	svc := NewOrderService(db, &mockSeq{}, notifier)

	if _, err := svc.PlaceOrder(context.Background(), draftFor(db, shop)); err == nil {
		t.Fatal("expected persistence error")
	}
	if created, status := notifier.counts(); created != 0 || status != 0 {
		t.Errorf("expected no notifications, got created=%d status=%d", created, status)
	}
}

func placeTestOrder(t *testing.T, svc *OrderService, db *mockDB, shop *domain.Shop) *domain.Order {
	t.Helper()
	order, err := svc.PlaceOrder(context.Background(), draftFor(db, shop))
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return order
}

func TestTransition_Legal(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	notifier := &mockNotifier{}
	svc := NewOrderService(db, &mockSeq{}, notifier)
	order := placeTestOrder(t, svc, db, shop)

	updated, err := svc.Transition(context.Background(), order.ID, domain.OrderStatusAccepted)
	if err != nil {
		t.Fatalf("expected transition to succeed, got %v", err)
	}
	if updated.Status != domain.OrderStatusAccepted {
		t.Errorf("expected accepted, got %s", updated.Status)
	}
	if db.orders[order.ID].Status != domain.OrderStatusAccepted {
		t.Errorf("expected persisted accepted, got %s", db.orders[order.ID].Status)
	}
	if _, status := notifier.counts(); status != 1 {
		t.Errorf("expected 1 status notification, got %d", status)
	}
}

func TestTransition_SkipRejectedAndOrderUntouched(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	svc := NewOrderService(db, &mockSeq{}, &mockNotifier{})
	order := placeTestOrder(t, svc, db, shop)

	_, err := svc.Transition(context.Background(), order.ID, domain.OrderStatusPacked)
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if ite.From != domain.OrderStatusReceived || ite.To != domain.OrderStatusPacked {
		t.Errorf("expected received->packed in error, got %s->%s", ite.From, ite.To)
	}
	if db.orders[order.ID].Status != domain.OrderStatusReceived {
		t.Errorf("expected order untouched, got %s", db.orders[order.ID].Status)
	}
}

func TestTransition_TerminalRejected(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	svc := NewOrderService(db, &mockSeq{}, &mockNotifier{})
	order := placeTestOrder(t, svc, db, shop)

	if _, err := svc.Transition(context.Background(), order.ID, domain.OrderStatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	var ite *InvalidTransitionError
	if _, err := svc.Transition(context.Background(), order.ID, domain.OrderStatusAccepted); !errors.As(err, &ite) {
		t.Errorf("expected InvalidTransitionError out of cancelled, got %v", err)
	}
}

func TestTransition_UnknownTarget(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	svc := NewOrderService(db, &mockSeq{}, &mockNotifier{})
	order := placeTestOrder(t, svc, db, shop)

	var ite *InvalidTransitionError
	if _, err := svc.Transition(context.Background(), order.ID, "preparing"); !errors.As(err, &ite) {
		t.Errorf("expected InvalidTransitionError for unknown status, got %v", err)
	}
}

func TestTransition_NotFound(t *testing.T) {
	db := newMockDB()
	fixtureShop(db)
	svc := NewOrderService(db, &mockSeq{}, &mockNotifier{})

	if _, err := svc.Transition(context.Background(), "missing", domain.OrderStatusAccepted); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestTransition_ConcurrentOnlyOneWins(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	svc := NewOrderService(db, &mockSeq{}, &mockNotifier{})
	order := placeTestOrder(t, svc, db, shop)

	if _, err := svc.Transition(context.Background(), order.ID, domain.OrderStatusAccepted); err != nil {
		t.Fatalf("accept: %v", err)
	}

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Transition(context.Background(), order.ID, domain.OrderStatusPacked)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, stale int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrStaleStatus):
			stale++
		default:
			var ite *InvalidTransitionError
			if !errors.As(err, &ite) {
				t.Errorf("unexpected error: %v", err)
			}
		}
	}
	if wins != 1 {
		t.Errorf("expected exactly one winning transition, got %d", wins)
	}
	if db.orders[order.ID].Status != domain.OrderStatusPacked {
		t.Errorf("expected packed, got %s", db.orders[order.ID].Status)
	}
}

func TestLookupOrder(t *testing.T) {
	db := newMockDB()
	shop := fixtureShop(db)
	svc := NewOrderService(db, &mockSeq{}, &mockNotifier{})
	order := placeTestOrder(t, svc, db, shop)

	byNumber, err := svc.LookupOrder(context.Background(), "1")
	if err != nil || byNumber.ID != order.ID {
		t.Errorf("lookup by number: got %v, %v", byNumber, err)
	}

	padded, err := svc.LookupOrder(context.Background(), "#000001")
	if err != nil || padded.ID != order.ID {
		t.Errorf("lookup by padded number: got %v, %v", padded, err)
	}

	byID, err := svc.LookupOrder(context.Background(), order.ID)
	if err != nil || byID.ID != order.ID {
		t.Errorf("lookup by id: got %v, %v", byID, err)
	}

	if _, err := svc.LookupOrder(context.Background(), "999999"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}
