package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/zync/orderline/internal/core/domain"
)

const seqKeyPrefix = "seq:"

// ErrCounterUnavailable means the global counter could not produce a
// number: empty counter name, or Redis unreachable after a retry.
// Callers fall back to the per-shop sequence.
var ErrCounterUnavailable = errors.New("counter unavailable")

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

// Next returns the next value of the named counter via INCR, which is
// atomic across every process sharing the Redis instance. The key is
// created at 0 on first use, so the first value handed out is 1.
// A lost INCR response burns a number on retry; gaps are fine,
// duplicates are not.
func (r *RedisAdapter) Next(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: empty counter name", ErrCounterUnavailable)
	}
	key := seqKeyPrefix + name

	val, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		val, err = r.client.Incr(ctx, key).Result()
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}
	return val, nil
}

// Publish emits one order event on its topic. Redis pub/sub delivers
// to whoever is subscribed right now; nobody listening is a no-op.
func (r *RedisAdapter) Publish(ctx context.Context, topic string, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return r.client.Publish(ctx, topic, payload).Err()
}

// Subscribe delivers topic events to handler until the returned func
// is called. Payloads that do not decode are logged and skipped.
func (r *RedisAdapter) Subscribe(ctx context.Context, topic string, handler func(domain.OrderEvent)) (func(), error) {
	sub := r.client.Subscribe(ctx, topic)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", topic, err)
	}

	ch := sub.Channel()
	done := make(chan struct{})
	go func() {
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event domain.OrderEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("subscribe %s: bad payload: %v", topic, err)
					continue
				}
				handler(event)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			sub.Close()
		})
	}, nil
}
