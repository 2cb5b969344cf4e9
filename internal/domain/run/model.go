package run

import (
	"strings"
	"time"
)

// TimeLayout is the canonical timestamp format used everywhere a run
// timestamp is persisted or rendered: ISO-8601, UTC, second precision.
const TimeLayout = "2006-01-02T15:04:05Z"

// Outcome is the verdict recorded for one checklist item within one run
type Outcome string

const (
	OutcomePass Outcome = "PASS"
	OutcomeFail Outcome = "FAIL"
	OutcomeSkip Outcome = "SKIP"
)

// ParseOutcome normalizes case-insensitive input to a valid Outcome.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(strings.ToUpper(strings.TrimSpace(s))) {
	case OutcomePass:
		return OutcomePass, nil
	case OutcomeFail:
		return OutcomeFail, nil
	case OutcomeSkip:
		return OutcomeSkip, nil
	default:
		return "", ErrInvalidOutcome
	}
}

// Run represents one timed execution attempt of a project's checklist
type Run struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"project_id"`
	Name      string     `json:"name"`
	Operator  string     `json:"operator,omitempty"`
	StartedAt time.Time  `json:"started_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// Result is the latest recorded outcome for a (run, checklist item) pair.
// A checklist item with no Result in a run has simply not been executed yet.
type Result struct {
	Outcome   Outcome   `json:"outcome"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
