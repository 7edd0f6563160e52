package domain

import (
	"errors"
	"fmt"
)

// ErrTargetUnavailable is returned when the target executable is missing or
// cannot be executed.
var ErrTargetUnavailable = errors.New("target executable is not available")

// Exit codes returned by the CLI.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitTargetUnavailable = 3
)

// Phase names a step of the pipeline. It prefixes every error surfaced to the
// operator.
type Phase string

// Pipeline phases.
const (
	PhaseAvailability Phase = "availability check"
	PhaseCorpusLoad   Phase = "corpus loading"
	PhaseMaterialize  Phase = "corpus materialization"
	PhaseRecord       Phase = "result recording"
	PhaseReport       Phase = "report generation"
	PhaseGuide        Phase = "guide rendering"
	PhaseView         Phase = "report viewing"
)

// PhaseError ties an error to the pipeline phase that produced it.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Phase, e.Err)
}

// Unwrap returns the underlying error.
func (e *PhaseError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for this error.
func (e *PhaseError) ExitCode() int {
	if errors.Is(e.Err, ErrTargetUnavailable) {
		return ExitTargetUnavailable
	}

	return ExitFailure
}

// ExitCode maps an error returned by a workflow into a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var phaseErr *PhaseError
	if errors.As(err, &phaseErr) {
		return phaseErr.ExitCode()
	}

	return ExitFailure
}

func phaseError(phase Phase, err error) error {
	if err == nil {
		return nil
	}

	return &PhaseError{Phase: phase, Err: err}
}
