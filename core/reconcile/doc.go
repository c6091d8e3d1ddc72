// Package reconcile decides how an incoming record affects the persisted
// inventory when both carry the same business key.
//
// The decision is a total ordering over four outcomes, driven by each record's
// version marker (a calendar date):
//
//   - insert: no stored record has the key
//   - update: the candidate is strictly newer; it fully overwrites the stored fields
//   - reject_stale: the candidate is older; the stored record stays authoritative
//   - noop_duplicate: same version; treated as a redundant resubmission, not an error
//
// # Architecture
//
// 1. Decide: a pure function of (candidate, existing). It carries all the
// branching logic and needs no store.
//
// 2. Store: the persistence collaborator (Lookup, Insert, Update). Stores that
// also implement Transactor get each read-decide-write wrapped in a transaction.
//
// 3. Engine: binds a Store and applies decisions. In dry-run mode it keeps an
// in-memory overlay so a batch still sees its own earlier rows.
//
// # Concurrency
//
// The engine is designed for a single caller. It does a read followed by a
// conditional write and holds no lock; only a Transactor store makes that
// sequence atomic.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(store, reconcile.Options{})
//	decision, err := engine.Reconcile(ctx, candidate)
//	if err != nil {
//	    return err
//	}
//	summary.Add(decision.Outcome)
package reconcile
