package store

import (
	"context"
	"errors"
)

// Document kinds. Each kind maps to its own collection in the backing store.
const (
	KindAirline  = "airline"
	KindAirport  = "airport"
	KindRoute    = "route"
	KindHotel    = "hotel"
	KindUser     = "user"
	KindPost     = "post"
	KindDocument = "document"
)

var (
	// ErrNotFound is returned when no document exists under the given key.
	ErrNotFound = errors.New("document not found")
	// ErrExists is returned by Insert when the key is already taken.
	ErrExists = errors.New("document already exists")
)

// Store is a key-value document store with a predicate query executor.
// Implementations provide at most per-key atomicity; a full-document
// replace is last-writer-wins.
type Store interface {
	// Get decodes the document stored under (kind, id) into out.
	Get(ctx context.Context, kind, id string, out any) error

	// Insert writes a new document under (kind, id) and fails with
	// ErrExists when the key is already present.
	Insert(ctx context.Context, kind, id string, doc any) error

	// Upsert writes doc under (kind, id), replacing any existing document.
	Upsert(ctx context.Context, kind, id string, doc any) error

	// Delete removes the document under (kind, id), returning ErrNotFound
	// when there is nothing to remove.
	Delete(ctx context.Context, kind, id string) error

	// Query decodes into out (a pointer to a slice) every document of the
	// given kind whose top-level fields equal the filter values, applying
	// offset then limit. A limit of 0 means no limit. Ordering beyond
	// whatever the store returns is not guaranteed.
	Query(ctx context.Context, kind string, filter map[string]any, limit, offset int, out any) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
