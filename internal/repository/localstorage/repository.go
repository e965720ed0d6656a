// Package localstorage implements repository.Repository on top of a
// kvstore.Store: each collection lives as one JSON array under a fixed key.
package localstorage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/members-ledger/internal/kvstore"
	"github.com/carson-networks/members-ledger/internal/repository"
)

// Repository persists a collection of T under key. It holds no lock: callers
// sharing a store must serialize Set themselves.
type Repository[T repository.Entity] struct {
	store  kvstore.Store
	key    string
	logger *logrus.Logger
}

// New reads the collection under key and writes seed there when nothing
// usable is stored yet.
func New[T repository.Entity](ctx context.Context, store kvstore.Store, key string, seed []T, logger *logrus.Logger) (*Repository[T], error) {
	r := &Repository[T]{
		store:  store,
		key:    key,
		logger: logger,
	}

	existing, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return r, nil
	}

	if seed == nil {
		seed = []T{}
	}
	if err := r.write(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed %q: %w", key, err)
	}
	logger.WithFields(logrus.Fields{
		"key":   key,
		"count": len(seed),
	}).Info("localstorage.New.seeded")

	return r, nil
}

// ReadAll synchronously reads the collection. A missing or undecodable value
// reads as an empty collection; only store failures are returned.
func (r *Repository[T]) ReadAll(ctx context.Context) ([]T, error) {
	raw, ok, err := r.store.GetItem(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", r.key, err)
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.logger.WithError(err).WithField("key", r.key).Warn("localstorage.ReadAll.decode")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Repository[T]) GetAll(ctx context.Context) *repository.Single[[]T] {
	return repository.Defer(r.ReadAll)
}

func (r *Repository[T]) Set(ctx context.Context, entity T) *repository.Single[T] {
	items, err := r.ReadAll(ctx)
	if err != nil {
		return repository.Fail[T](err)
	}

	items = upsert(items, entity)
	if err := r.write(ctx, items); err != nil {
		return repository.Fail[T](err)
	}
	return repository.Just(entity)
}

func (r *Repository[T]) write(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %q: %w", r.key, err)
	}
	if err := r.store.SetItem(ctx, r.key, string(raw)); err != nil {
		return fmt.Errorf("write %q: %w", r.key, err)
	}
	return nil
}

// upsert replaces the item sharing entity's identifier in place, or appends.
func upsert[T repository.Entity](items []T, entity T) []T {
	for i := range items {
		if items[i].Identifier() == entity.Identifier() {
			items[i] = entity
			return items
		}
	}
	return append(items, entity)
}
