package domain

import "time"

// OrderEvent is published on an order's realtime topic at creation and
// on every legal status transition. The JSON field names are a wire
// contract with dashboard subscribers.
type OrderEvent struct {
	OrderID     string      `json:"orderId"`
	OrderNumber int64       `json:"orderNumber"`
	Status      OrderStatus `json:"status"`
	At          time.Time   `json:"at"`
}
