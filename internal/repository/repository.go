// Package repository defines the persistence contract shared by every entity
// collection, independent of where the collection is stored.
package repository

import "context"

// Entity is a persisted record identified by an integer unique within its
// collection.
type Entity interface {
	Identifier() int
}

// Repository reads and upserts a whole collection of T.
type Repository[T Entity] interface {
	// GetAll returns the full collection in insertion order. Nothing is read
	// until the result is subscribed to.
	GetAll(ctx context.Context) *Single[[]T]
	// Set inserts entity, or replaces the record with the same identifier,
	// persists the full collection and yields the persisted entity.
	Set(ctx context.Context, entity T) *Single[T]
}
