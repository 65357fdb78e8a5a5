package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

// DefaultCartTTL is how long an untouched cart survives.
const DefaultCartTTL = 7 * 24 * time.Hour

const maxTxRetries = 5

// RedisStore keeps each cart as one JSON document under cart:{cartID}.
// Writes run inside WATCH transactions and refresh the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	clock  clock.Clock
}

// NewRedisStore creates a Redis-backed CartStore. A non-positive ttl uses DefaultCartTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration, clk clock.Clock) contracts.CartStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
		clock:  clk,
	}
}

func (s *RedisStore) Lines(ctx context.Context, cartID string) ([]*domain.CartLine, error) {
	doc, err := s.load(ctx, s.client, cartID)
	if err != nil {
		return nil, err
	}
	return doc.Lines, nil
}

func (s *RedisStore) Get(ctx context.Context, cartID, productID string) (*domain.CartLine, error) {
	doc, err := s.load(ctx, s.client, cartID)
	if err != nil {
		return nil, err
	}
	i := doc.index(productID)
	if i < 0 {
		return nil, domain.ErrCartLineNotFound
	}
	return doc.Lines[i], nil
}

func (s *RedisStore) Put(ctx context.Context, cartID string, line *domain.CartLine) error {
	return s.update(ctx, cartID, func(doc *cartDocument) error {
		doc.put(line)
		return nil
	})
}

func (s *RedisStore) Remove(ctx context.Context, cartID, productID string) error {
	return s.update(ctx, cartID, func(doc *cartDocument) error {
		if !doc.remove(productID) {
			return domain.ErrCartLineNotFound
		}
		return nil
	})
}

func (s *RedisStore) Clear(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// update applies fn to the stored document under WATCH and retries when
// another writer changed the cart in between.
func (s *RedisStore) update(ctx context.Context, cartID string, fn func(doc *cartDocument) error) error {
	key := cartKey(cartID)

	txf := func(tx *redis.Tx) error {
		doc, err := s.load(ctx, tx, cartID)
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}

		if len(doc.Lines) == 0 {
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, key)
				return nil
			})
			return err
		}

		doc.UpdatedAt = s.clock.Now().UTC()
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal cart failed: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, domain.ErrCartLineNotFound) {
			return fmt.Errorf("redis cart update failed: %w", err)
		}
		return err
	}

	return fmt.Errorf("redis cart update failed: %w", redis.TxFailedErr)
}

func (s *RedisStore) load(ctx context.Context, c stringGetter, cartID string) (*cartDocument, error) {
	data, err := c.Get(ctx, cartKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &cartDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var doc cartDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return &doc, nil
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func cartKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}
