// Package store defines the transaction store boundary and its in-memory
// implementation. The store performs no field validation of its own beyond id
// matching; amount positivity and completeness are enforced by the caller.
package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"paisa/internal/core"
)

// Store is the single owned mutable transaction collection, injected into
// whichever components need it.
type Store interface {
	// List returns all transactions, newest first.
	List(ctx context.Context) ([]core.Transaction, error)
	// Add assigns a fresh unique id to the draft (its ID field is ignored),
	// prepends it to the list and returns the id.
	Add(ctx context.Context, draft core.Transaction) (string, error)
	// Remove deletes a transaction by id. Absent ids are a no-op.
	Remove(ctx context.Context, id string) error
	// Replace swaps the data of an existing transaction, keeping its id.
	// Absent ids are a no-op.
	Replace(ctx context.Context, id string, draft core.Transaction) error
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a time-derived id string, strictly monotonic within the
// process so that rapid submissions never collide.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
