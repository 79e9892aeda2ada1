package entities

// OutcomeStatus is the final state of one file in a batch.
type OutcomeStatus string

const (
	OutcomeReverted OutcomeStatus = "reverted"
	OutcomeStashed  OutcomeStatus = "stashed"
	OutcomeSkipped  OutcomeStatus = "skipped"
	OutcomeFailed   OutcomeStatus = "failed"
)

// FileOutcome records what happened to a single file of a batch.
type FileOutcome struct {
	Path   string
	Status OutcomeStatus
	Err    error // Set only when Status is OutcomeFailed
}

// BatchResult holds the outcomes of a batch in the order the files were given.
type BatchResult struct {
	Outcomes []FileOutcome
}

// Add appends an outcome to the result.
func (r *BatchResult) Add(outcome FileOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
}

// Count returns how many outcomes have the given status.
func (r *BatchResult) Count(status OutcomeStatus) int {
	total := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == status {
			total++
		}
	}
	return total
}

// Processed returns the number of files that were reverted or stashed.
func (r *BatchResult) Processed() int {
	return r.Count(OutcomeReverted) + r.Count(OutcomeStashed)
}

// HasFailures reports whether at least one file failed.
func (r *BatchResult) HasFailures() bool {
	return r.Count(OutcomeFailed) > 0
}

// Failures returns the failed outcomes only.
func (r *BatchResult) Failures() []FileOutcome {
	var failed []FileOutcome
	for _, outcome := range r.Outcomes {
		if outcome.Status == OutcomeFailed {
			failed = append(failed, outcome)
		}
	}
	return failed
}
