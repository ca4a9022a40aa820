package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zync/orderline/internal/core/domain"
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) FindShopByContact(ctx context.Context, contact string) (*domain.Shop, error) {
	return m.scanShop(m.db.QueryRowContext(ctx, `
		SELECT id, name, phone, pincode, online
		FROM shops WHERE phone = ?`, contact))
}

func (m *MySQLAdapter) GetShop(ctx context.Context, shopID string) (*domain.Shop, error) {
	return m.scanShop(m.db.QueryRowContext(ctx, `
		SELECT id, name, phone, pincode, online
		FROM shops WHERE id = ?`, shopID))
}

func (m *MySQLAdapter) scanShop(row *sql.Row) (*domain.Shop, error) {
	var shop domain.Shop
	err := row.Scan(&shop.ID, &shop.Name, &shop.Phone, &shop.Pincode, &shop.Online)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query shop: %w", err)
	}
	return &shop, nil
}

// ListAvailableItems returns available items in listing order
// (creation order), which fixes the A/B/C letter mapping customers see
// on the printed menu.
func (m *MySQLAdapter) ListAvailableItems(ctx context.Context, shopID string) ([]domain.MenuItem, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, shop_id, name, price, available, external_id, created_at
		FROM menu_items
		WHERE shop_id = ? AND available = 1
		ORDER BY created_at, id`, shopID)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	index := make(map[string]int)
	for rows.Next() {
		var it domain.MenuItem
		if err := rows.Scan(&it.ID, &it.ShopID, &it.Name, &it.Price, &it.Available, &it.ExternalID, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		index[it.ID] = len(items)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}
	if len(items) == 0 {
		return items, nil
	}

	vrows, err := m.db.QueryContext(ctx, `
		SELECT v.item_id, v.code, v.label, v.price, v.available
		FROM menu_variants v
		JOIN menu_items i ON i.id = v.item_id
		WHERE i.shop_id = ? AND i.available = 1
		ORDER BY v.item_id, v.position`, shopID)
	if err != nil {
		return nil, fmt.Errorf("query menu variants: %w", err)
	}
	defer vrows.Close()

	for vrows.Next() {
		var itemID string
		var v domain.Variant
		if err := vrows.Scan(&itemID, &v.Code, &v.Label, &v.Price, &v.Available); err != nil {
			return nil, fmt.Errorf("scan menu variant: %w", err)
		}
		if i, ok := index[itemID]; ok {
			items[i].Variants = append(items[i].Variants, v)
		}
	}
	if err := vrows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu variants: %w", err)
	}
	return items, nil
}

func (m *MySQLAdapter) CreateOrder(ctx context.Context, order domain.Order) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	customerID := sql.NullString{String: order.CustomerID, Valid: order.CustomerID != ""}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, order_number, number_source, shop_id, customer_id,
			customer_name, phone, addr_label, addr_address, addr_phone, addr_pincode,
			items_total, delivery_fee, grand_total, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.OrderNumber, order.NumberSource, order.ShopID, customerID,
		order.CustomerName, order.Phone, order.Address.Label, order.Address.Address,
		order.Address.Phone, order.Address.Pincode,
		order.ItemsTotal, order.DeliveryFee, order.GrandTotal, order.Status,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i, it := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, name, qty, unit_price, line_total)
			VALUES (?, ?, ?, ?, ?, ?)`,
			order.ID, i, it.Name, it.Quantity, it.UnitPrice, it.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

// UpdateOrderStatus is the optimistic conditional write serializing
// concurrent transitions: the row moves only if its status is still
// what the caller decided against.
func (m *MySQLAdapter) UpdateOrderStatus(ctx context.Context, orderID string, expected, next domain.OrderStatus) (bool, error) {
	result, err := m.db.ExecContext(ctx, `
		UPDATE orders
		SET status = ?, updated_at = NOW()
		WHERE id = ? AND status = ?`,
		next, orderID, expected,
	)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (m *MySQLAdapter) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return m.queryOrder(ctx, `WHERE id = ?`, orderID)
}

// GetOrderByNumber resolves a customer-visible number. Fallback-space
// numbers can collide across shops; the most recent order wins.
func (m *MySQLAdapter) GetOrderByNumber(ctx context.Context, number int64) (*domain.Order, error) {
	return m.queryOrder(ctx, `WHERE order_number = ? ORDER BY created_at DESC LIMIT 1`, number)
}

func (m *MySQLAdapter) queryOrder(ctx context.Context, where string, arg any) (*domain.Order, error) {
	row := m.db.QueryRowContext(ctx, `
		SELECT id, order_number, number_source, shop_id, customer_id,
			customer_name, phone, addr_label, addr_address, addr_phone, addr_pincode,
			items_total, delivery_fee, grand_total, status, created_at, updated_at
		FROM orders `+where, arg)
	order, err := scanOrder(row.Scan)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if err := m.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (m *MySQLAdapter) ListShopOrders(ctx context.Context, shopID string, limit int) ([]domain.Order, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, order_number, number_source, shop_id, customer_id,
			customer_name, phone, addr_label, addr_address, addr_phone, addr_pincode,
			items_total, delivery_fee, grand_total, status, created_at, updated_at
		FROM orders
		WHERE shop_id = ?
		ORDER BY created_at DESC
		LIMIT ?`, shopID, limit)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	for i := range orders {
		if err := m.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func scanOrder(scan func(dest ...any) error) (*domain.Order, error) {
	var order domain.Order
	var customerID sql.NullString
	err := scan(
		&order.ID, &order.OrderNumber, &order.NumberSource, &order.ShopID, &customerID,
		&order.CustomerName, &order.Phone, &order.Address.Label, &order.Address.Address,
		&order.Address.Phone, &order.Address.Pincode,
		&order.ItemsTotal, &order.DeliveryFee, &order.GrandTotal, &order.Status,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}
	order.CustomerID = customerID.String
	return &order, nil
}

func (m *MySQLAdapter) loadItems(ctx context.Context, order *domain.Order) error {
	rows, err := m.db.QueryContext(ctx, `
		SELECT name, qty, unit_price, line_total
		FROM order_items
		WHERE order_id = ?
		ORDER BY position`, order.ID)
	if err != nil {
		return fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.LineItem
		if err := rows.Scan(&it.Name, &it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		order.Items = append(order.Items, it)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate order items: %w", err)
	}
	return nil
}

// IncrementShopSequence bumps the shop-local numbering column in one
// atomic statement. The LAST_INSERT_ID wrapping makes the new value
// readable on this connection without a racy read-back.
func (m *MySQLAdapter) IncrementShopSequence(ctx context.Context, shopID string) (int64, error) {
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire conn: %w", err)
	}
	defer conn.Close()

	result, err := conn.ExecContext(ctx, `
		UPDATE shops
		SET last_order_number = LAST_INSERT_ID(last_order_number + 1)
		WHERE id = ?`, shopID)
	if err != nil {
		return 0, fmt.Errorf("increment shop sequence: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return 0, fmt.Errorf("increment shop sequence: shop %s not found", shopID)
	}

	var seq int64
	if err := conn.QueryRowContext(ctx, `SELECT LAST_INSERT_ID()`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("read shop sequence: %w", err)
	}
	return seq, nil
}
