package reconcile

import "context"

// Store is the persistence collaborator of the engine.
type Store interface {
	// Lookup returns the stored record for key.
	// It must return an untyped nil Record (and a nil error) when none exists.
	Lookup(ctx context.Context, key string) (Record, error)

	// Insert persists candidate as a new record and returns it as stored
	// (with any store-assigned identifier populated).
	Insert(ctx context.Context, candidate Record) (Record, error)

	// Update overwrites every business field of existing with candidate's,
	// keeping existing's identity, and returns the stored result.
	Update(ctx context.Context, existing, candidate Record) (Record, error)
}

// Transactor is implemented by stores that can run the lookup-decide-write
// sequence of a single reconciliation atomically. The Store passed to fn is
// bound to the transaction and must be used instead of the outer store.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(Store) error) error
}
