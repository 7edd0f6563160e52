package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status is the state of a single test result.
type Status string

const (
	// StatusPending is the initial state of every result. It is never persisted.
	StatusPending Status = "PENDING"
	// StatusManual marks a case that needs a human to verify it in the target.
	StatusManual Status = "MANUAL"
	// StatusSkip marks a case that could not be attempted because its file is missing.
	StatusSkip Status = "SKIP"
)

// TerminalStatuses returns the statuses a recorded result can end up in.
func TerminalStatuses() []Status {
	return []Status{StatusManual, StatusSkip}
}

// Terminal reports whether s is a final state for a run.
func (s Status) Terminal() bool {
	return s == StatusManual || s == StatusSkip
}

// Symbol returns a short marker used when listing results.
func (s Status) Symbol() string {
	switch s {
	case StatusManual:
		return "[~]"
	case StatusSkip:
		return "[s]"
	case StatusPending:
		return "[ ]"
	default:
		return "[?]"
	}
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalText rejects statuses outside the closed set.
func (s *Status) UnmarshalText(text []byte) error {
	parsed := Status(text)
	if !parsed.Terminal() {
		return fmt.Errorf("invalid status %q", string(text))
	}

	*s = parsed

	return nil
}

// MarshalText refuses to persist a non-terminal status.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Terminal() {
		return nil, fmt.Errorf("invalid status %q", string(s))
	}

	return []byte(s), nil
}

// Messages attached to recorded results.
const (
	MessageFileMissing  = "file does not exist"
	MessageManualReview = "requires manual verification in the interactive interface"
)

// TestResult is the record produced for one TestCase during a run.
type TestResult struct {
	CaseID     string    `json:"id"`
	File       Path      `json:"file"`
	Category   Category  `json:"category"`
	SourceText string    `json:"code"`
	Status     Status    `json:"status"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Report is the immutable snapshot of one run.
type Report struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Target      Path           `json:"target"`
	CorpusDir   Path           `json:"corpus_dir"`
	Total       int            `json:"total"`
	Counts      map[Status]int `json:"counts"`
	Results     []TestResult   `json:"results"`
}

// Count returns the number of results with the given status.
func (r Report) Count(status Status) int {
	return r.Counts[status]
}

// Validate checks that counts, total and results agree and that every status
// and case id is valid.
func (r Report) Validate() error {
	if r.Total != len(r.Results) {
		return fmt.Errorf("total %d does not match %d results", r.Total, len(r.Results))
	}

	sum := 0
	for status, n := range r.Counts {
		if !status.Terminal() {
			return fmt.Errorf("invalid status %q in counts", status)
		}

		sum += n
	}

	if sum != r.Total {
		return fmt.Errorf("status counts sum to %d, want %d", sum, r.Total)
	}

	seen := make(map[string]struct{}, len(r.Results))
	tally := make(map[Status]int, len(r.Counts))

	for _, result := range r.Results {
		if !result.Status.Terminal() {
			return fmt.Errorf("result %q has invalid status %q", result.CaseID, result.Status)
		}

		if _, dup := seen[result.CaseID]; dup {
			return fmt.Errorf("duplicate result for %q", result.CaseID)
		}

		seen[result.CaseID] = struct{}{}
		tally[result.Status]++
	}

	for _, status := range TerminalStatuses() {
		if r.Counts[status] != tally[status] {
			return fmt.Errorf("count for %s is %d, results have %d", status, r.Counts[status], tally[status])
		}
	}

	return nil
}

// reportJSON has no methods so decoding into it does not recurse.
type reportJSON Report

// UnmarshalJSON decodes a report and validates it.
func (r *Report) UnmarshalJSON(data []byte) error {
	var raw reportJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoded := Report(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}

	*r = decoded

	return nil
}
