package domain

import "time"

type OrderStatus string

const (
	OrderStatusReceived       OrderStatus = "received"
	OrderStatusAccepted       OrderStatus = "accepted"
	OrderStatusPacked         OrderStatus = "packed"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// statusChain is the linear fulfillment pipeline; cancellation branches
// off the first two states only.
var statusChain = []OrderStatus{
	OrderStatusReceived,
	OrderStatusAccepted,
	OrderStatusPacked,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// ValidStatus reports whether s is one of the known wire values.
func ValidStatus(s OrderStatus) bool {
	if s == OrderStatusCancelled {
		return true
	}
	for _, st := range statusChain {
		if st == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether an order currently in from may move to
// to. Legal moves are the immediate successor in the chain, or
// cancellation while the order is still received or accepted.
// delivered and cancelled are terminal.
func CanTransition(from, to OrderStatus) bool {
	if to == OrderStatusCancelled {
		return from == OrderStatusReceived || from == OrderStatusAccepted
	}
	for i, st := range statusChain {
		if st == from {
			return i+1 < len(statusChain) && statusChain[i+1] == to
		}
	}
	return false
}

// Terminal reports whether no further transitions are permitted from s.
func Terminal(s OrderStatus) bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// NumberSource tags which sequence space produced an order number, so
// degraded shop-local numbering is visible to operators.
type NumberSource string

const (
	NumberSourceGlobal NumberSource = "global"
	NumberSourceShop   NumberSource = "shop"
)

// LineItem is a frozen snapshot of a catalog item at order time.
// Catalog edits never touch placed orders.
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice int64 // paise
	LineTotal int64 // paise
}

// Address is the delivery address snapshot captured at order time,
// decoupled from later profile edits.
type Address struct {
	Label   string
	Address string
	Phone   string
	Pincode string
}

type Order struct {
	ID           string
	OrderNumber  int64
	NumberSource NumberSource
	ShopID       string
	CustomerID   string // empty for unregistered chat customers
	CustomerName string
	Phone        string
	Address      Address
	Items        []LineItem
	ItemsTotal   int64
	DeliveryFee  int64
	GrandTotal   int64
	Status       OrderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ItemsTotalFromLines recomputes the items total from the line
// snapshots. Stored ItemsTotal must always equal this sum.
func (o *Order) ItemsTotalFromLines() int64 {
	var sum int64
	for _, it := range o.Items {
		sum += it.LineTotal
	}
	return sum
}
