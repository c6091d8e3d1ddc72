package reconcile

// Summary provides aggregate counts for a batch of reconciliations.
type Summary struct {
	// Total is the number of rows seen, including skipped ones.
	Total int `json:"total"`

	// Inserted counts insert outcomes.
	Inserted int `json:"inserted"`

	// Updated counts update outcomes.
	Updated int `json:"updated"`

	// Stale counts reject_stale outcomes.
	Stale int `json:"stale"`

	// Duplicates counts noop_duplicate outcomes.
	Duplicates int `json:"duplicates"`

	// Skipped counts rows that never became candidates (parse or validation failures).
	Skipped int `json:"skipped"`
}

// Add records one decision outcome.
func (s *Summary) Add(o Outcome) {
	s.Total++
	switch o {
	case OutcomeInsert:
		s.Inserted++
	case OutcomeUpdate:
		s.Updated++
	case OutcomeRejectStale:
		s.Stale++
	case OutcomeNoopDuplicate:
		s.Duplicates++
	}
}

// Skip records a row that could not be reconciled.
func (s *Summary) Skip() {
	s.Total++
	s.Skipped++
}

// Mutations returns the number of outcomes that wrote to the store.
func (s Summary) Mutations() int {
	return s.Inserted + s.Updated
}
