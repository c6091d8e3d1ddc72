package reconcile

import "time"

// Record is a versioned entity that can be reconciled against a store.
// Key is the business key (at most one stored record per key) and Version is
// the authoritative version marker compared by calendar day.
type Record interface {
	Key() string
	Version() time.Time
}

// Outcome is the effect a candidate record has on the store.
type Outcome string

const (
	// OutcomeInsert stores a candidate whose key is not present yet.
	OutcomeInsert Outcome = "insert"
	// OutcomeUpdate overwrites the stored record with a strictly newer candidate.
	OutcomeUpdate Outcome = "update"
	// OutcomeRejectStale ignores a candidate older than the stored record.
	OutcomeRejectStale Outcome = "reject_stale"
	// OutcomeNoopDuplicate ignores a candidate with the same version as the stored record.
	OutcomeNoopDuplicate Outcome = "noop_duplicate"
)

// Mutates reports whether the outcome writes to the store.
func (o Outcome) Mutates() bool {
	return o == OutcomeInsert || o == OutcomeUpdate
}

// Describe returns a short human readable explanation of the outcome.
func (o Outcome) Describe() string {
	switch o {
	case OutcomeInsert:
		return "record added"
	case OutcomeUpdate:
		return "record updated"
	case OutcomeRejectStale:
		return "candidate older than stored record"
	case OutcomeNoopDuplicate:
		return "candidate matches stored record"
	default:
		return "unknown outcome"
	}
}

// Decision is the result of reconciling one candidate.
type Decision struct {
	// Outcome is the chosen effect.
	Outcome Outcome `json:"outcome"`

	// Key is the business key of the candidate.
	Key string `json:"key"`

	// Candidate is the record that was proposed.
	Candidate Record `json:"-"`

	// Existing is the stored record with the same key, nil for inserts.
	Existing Record `json:"-"`

	// Result is the record as stored after the decision was applied.
	// For non-mutating outcomes it is the untouched existing record.
	// In dry-run mode it is the record that would have been stored.
	Result Record `json:"-"`
}

// Options controls engine behavior.
type Options struct {
	// DryRun prevents any mutation of the store. Decisions are still computed
	// against an in-memory overlay so later candidates see earlier ones.
	DryRun bool
}
