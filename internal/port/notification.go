package port

import (
	"context"

	"github.com/zync/orderline/internal/core/domain"
)

type Messenger interface {
	// SendMessage attempts one delivery of text to a chat contact.
	// Callers treat failure as best-effort: log and move on.
	SendMessage(ctx context.Context, to, text string) error
}

type EventBus interface {
	// Publish emits an event on the order's realtime topic. Zero
	// subscribers is a no-op, not an error.
	Publish(ctx context.Context, topic string, event domain.OrderEvent) error

	// Subscribe delivers topic events to handler until the returned
	// unsubscribe func is called.
	Subscribe(ctx context.Context, topic string, handler func(domain.OrderEvent)) (func(), error)
}
