package reconcile

import (
	"context"
	"fmt"
	"time"
)

// Decide compares a candidate against the stored record with the same key.
// It is a pure function; existing must be nil when no record is stored.
func Decide(candidate, existing Record) Decision {
	d := Decision{
		Key:       candidate.Key(),
		Candidate: candidate,
		Existing:  existing,
	}

	if existing == nil {
		d.Outcome = OutcomeInsert
		return d
	}

	switch CompareVersions(candidate.Version(), existing.Version()) {
	case 1:
		d.Outcome = OutcomeUpdate
	case -1:
		d.Outcome = OutcomeRejectStale
	default:
		d.Outcome = OutcomeNoopDuplicate
	}
	return d
}

// CompareVersions compares two version markers by calendar day only.
// It returns -1 when a is before b, 1 when a is after b and 0 when equal.
func CompareVersions(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Engine reconciles candidate records against a Store.
//
// Engine is not safe for concurrent use. Each reconciliation reads the stored
// record and then conditionally writes; when the store implements Transactor
// both steps run inside one transaction, otherwise the caller must guarantee
// there are no concurrent writers.
type Engine struct {
	store Store
	opts  Options

	// pending holds dry-run results by key so a batch stays cumulative
	// without touching the store.
	pending map[string]Record
}

// NewEngine creates an engine bound to store.
func NewEngine(store Store, opts Options) *Engine {
	return &Engine{
		store:   store,
		opts:    opts,
		pending: make(map[string]Record),
	}
}

// DryRun reports whether the engine is in dry-run mode.
func (e *Engine) DryRun() bool {
	return e.opts.DryRun
}

// Reconcile decides the effect of candidate and applies it.
// Only insert and update outcomes mutate the store.
func (e *Engine) Reconcile(ctx context.Context, candidate Record) (Decision, error) {
	if candidate == nil {
		return Decision{}, fmt.Errorf("reconcile: nil candidate")
	}

	if e.opts.DryRun {
		return e.plan(ctx, candidate)
	}

	var decision Decision
	run := func(s Store) error {
		d, err := apply(ctx, s, candidate)
		decision = d
		return err
	}

	var err error
	if tx, ok := e.store.(Transactor); ok {
		err = tx.WithinTx(ctx, run)
	} else {
		err = run(e.store)
	}
	if err != nil {
		return Decision{}, err
	}
	return decision, nil
}

// apply runs lookup, decision and write against s.
func apply(ctx context.Context, s Store, candidate Record) (Decision, error) {
	key := candidate.Key()

	existing, err := s.Lookup(ctx, key)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to look up %q: %w", key, err)
	}

	d := Decide(candidate, existing)
	switch d.Outcome {
	case OutcomeInsert:
		stored, err := s.Insert(ctx, candidate)
		if err != nil {
			return Decision{}, fmt.Errorf("failed to insert %q: %w", key, err)
		}
		d.Result = stored
	case OutcomeUpdate:
		stored, err := s.Update(ctx, existing, candidate)
		if err != nil {
			return Decision{}, fmt.Errorf("failed to update %q: %w", key, err)
		}
		d.Result = stored
	default:
		d.Result = existing
	}
	return d, nil
}

// plan computes a decision without writing, recording mutating results in the overlay.
func (e *Engine) plan(ctx context.Context, candidate Record) (Decision, error) {
	key := candidate.Key()

	existing, ok := e.pending[key]
	if !ok {
		var err error
		existing, err = e.store.Lookup(ctx, key)
		if err != nil {
			return Decision{}, fmt.Errorf("failed to look up %q: %w", key, err)
		}
	}

	d := Decide(candidate, existing)
	if d.Outcome.Mutates() {
		e.pending[key] = candidate
		d.Result = candidate
	} else {
		d.Result = existing
	}
	return d, nil
}
