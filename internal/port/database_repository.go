package port

import (
	"context"

	"github.com/zync/orderline/internal/core/domain"
)

type DatabaseRepository interface {
	// FindShopByContact looks a shop up by its chat contact address.
	FindShopByContact(ctx context.Context, contact string) (*domain.Shop, error)

	// GetShop retrieves a shop by id.
	GetShop(ctx context.Context, shopID string) (*domain.Shop, error)

	// ListAvailableItems returns a shop's available menu items in
	// listing order. Listing order is the letter contract: index 0 is
	// menu letter A.
	ListAvailableItems(ctx context.Context, shopID string) ([]domain.MenuItem, error)

	// CreateOrder persists a fully priced order draft.
	CreateOrder(ctx context.Context, order domain.Order) error

	// UpdateOrderStatus moves an order to next only if its current
	// status still equals expected, and reports whether the
	// conditional write applied. A false return means the caller
	// raced a newer transition.
	UpdateOrderStatus(ctx context.Context, orderID string, expected, next domain.OrderStatus) (bool, error)

	// GetOrder retrieves an order by internal id; nil if absent.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// GetOrderByNumber retrieves an order by its customer-visible
	// number; nil if absent.
	GetOrderByNumber(ctx context.Context, number int64) (*domain.Order, error)

	// ListShopOrders returns a shop's most recent orders, newest
	// first, capped at limit.
	ListShopOrders(ctx context.Context, shopID string, limit int) ([]domain.Order, error)

	// IncrementShopSequence atomically bumps and returns the shop's
	// local order sequence. Fallback numbering path only.
	IncrementShopSequence(ctx context.Context, shopID string) (int64, error)
}
