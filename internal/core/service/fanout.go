package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/zync/orderline/internal/core/domain"
	"github.com/zync/orderline/internal/port"
)

// Notifier is what the orchestrator needs from the fan-out: both calls
// are fire-and-forget and must never fail the triggering operation.
type Notifier interface {
	NotifyCreated(order domain.Order, shopPhone string)
	NotifyStatus(order domain.Order)
}

type outboundMessage struct {
	to   string
	text string
}

// Fanout distributes order events to two failure-isolated sinks: the
// realtime channel (dashboard subscribers, keyed by order id) and
// best-effort chat messages drained by a worker pool. Every attempt is
// bounded by attemptTimeout; failures are logged and swallowed.
type Fanout struct {
	bus            port.EventBus
	messenger      port.Messenger
	queue          chan outboundMessage
	attemptTimeout time.Duration
	wg             sync.WaitGroup
}

func NewFanout(bus port.EventBus, messenger port.Messenger, queueSize int, attemptTimeout time.Duration) *Fanout {
	return &Fanout{
		bus:            bus,
		messenger:      messenger,
		queue:          make(chan outboundMessage, queueSize),
		attemptTimeout: attemptTimeout,
	}
}

// Start launches the outbound message workers.
func (f *Fanout) Start(workers int) {
	for i := 0; i < workers; i++ {
		f.wg.Add(1)
		go func(id int) {
			defer f.wg.Done()
			f.workerLoop(id)
		}(i)
	}
}

// Close stops accepting messages and waits for in-flight sends.
func (f *Fanout) Close() {
	close(f.queue)
	f.wg.Wait()
}

func (f *Fanout) workerLoop(id int) {
	for msg := range f.queue {
		ctx, cancel := context.WithTimeout(context.Background(), f.attemptTimeout)
		if err := f.messenger.SendMessage(ctx, msg.to, msg.text); err != nil {
			log.Printf("fanout worker %d: send to %s failed: %v", id, msg.to, err)
		}
		cancel()
	}
}

func (f *Fanout) NotifyCreated(order domain.Order, shopPhone string) {
	f.publish(order)

	lines := itemLines(order.Items)
	display := DisplayNumber(order)

	f.enqueue(order.Phone, fmt.Sprintf(
		"✅ Order placed: %s\n\n%s\n\nTotal: %s\nYou will receive updates here.",
		display, lines, FormatPaise(order.GrandTotal)))

	if shopPhone != "" {
		f.enqueue(shopPhone, fmt.Sprintf(
			"📥 New order %s from %s\n\n%s\n\nTotal: %s",
			display, order.Phone, lines, FormatPaise(order.GrandTotal)))
	}
}

func (f *Fanout) NotifyStatus(order domain.Order) {
	f.publish(order)
	f.enqueue(order.Phone, fmt.Sprintf(
		"Order %s status updated: %s", DisplayNumber(order), order.Status))
}

func (f *Fanout) publish(order domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), f.attemptTimeout)
	defer cancel()

	event := domain.OrderEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		At:          order.UpdatedAt,
	}
	if err := f.bus.Publish(ctx, OrderTopic(order.ID), event); err != nil {
		log.Printf("fanout: publish for order %s failed: %v", order.ID, err)
	}
}

func (f *Fanout) enqueue(to, text string) {
	if to == "" {
		return
	}
	select {
	case f.queue <- outboundMessage{to: to, text: text}:
	default:
		// Best-effort channel: dropping beats blocking the caller.
		log.Printf("fanout: queue full, dropping message to %s", to)
	}
}

// OrderTopic is the realtime topic for one order's status events.
func OrderTopic(orderID string) string {
	return "order:" + orderID
}

func itemLines(items []domain.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s ×%d — %s = %s",
			it.Name, it.Quantity, FormatPaise(it.UnitPrice), FormatPaise(it.LineTotal)))
	}
	return strings.Join(parts, "\n")
}

// FormatPaise renders an amount held in paise as rupees, dropping the
// fraction when it is whole.
func FormatPaise(p int64) string {
	if p%100 == 0 {
		return fmt.Sprintf("₹%d", p/100)
	}
	return fmt.Sprintf("₹%d.%02d", p/100, p%100)
}

// DisplayNumber is the customer-facing order reference: the padded
// order number when one was assigned, the internal id otherwise.
func DisplayNumber(order domain.Order) string {
	if order.OrderNumber > 0 {
		return fmt.Sprintf("#%06d", order.OrderNumber)
	}
	return order.ID
}
