package network

import "fmt"

// ReferenceError reports a code in the raw dataset that does not resolve
// against the registries built so far. The build aborts rather than producing
// a partially linked model.
type ReferenceError struct {
	Kind string // "stop" or "journey pattern"
	Code string // the missing code
	In   string // the entity that referenced it
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("unknown %s code %q referenced by %q", e.Kind, e.Code, e.In)
}

// InvalidScheduleError reports a time or distance sequence that is not
// monotonic, or mismatched sequence lengths. Rejected at build time so
// interpolation never has to cope with it.
type InvalidScheduleError struct {
	Code   string // journey pattern or vehicle journey code
	Reason string
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("invalid schedule for %q: %s", e.Code, e.Reason)
}
