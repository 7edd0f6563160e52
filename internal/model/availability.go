package model

// AvailabilityState describes the outcome of checking the target executable.
type AvailabilityState string

const (
	// TargetAvailable means the file exists and the process may execute it.
	TargetAvailable AvailabilityState = "available"
	// TargetMissing means no file exists at the configured path.
	TargetMissing AvailabilityState = "missing"
	// TargetNotExecutable means the file exists but cannot be executed.
	TargetNotExecutable AvailabilityState = "not-executable"
	// TargetUnknown means the path could not even be queried.
	TargetUnknown AvailabilityState = "unknown"
)

// Availability is the result of checking the target executable.
type Availability struct {
	Path  Path
	State AvailabilityState
	Err   error
}

// OK reports whether the pipeline may proceed.
func (a Availability) OK() bool {
	return a.State == TargetAvailable
}
