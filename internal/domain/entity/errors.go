package entity

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownApplication is returned when an application ID is not in the registry.
	ErrUnknownApplication = errors.New("unknown application")
	// ErrStaleTarget marks a per-window intent whose window is no longer open.
	ErrStaleTarget = errors.New("stale target window")
)

// InvariantViolation reports session states that no reduction may produce.
// It signals a reducer defect, not a runtime condition.
type InvariantViolation struct {
	Intent     IntentKind
	Violations []string
}

func (e *InvariantViolation) Error() string {
	var b strings.Builder
	b.WriteString("session invariant violated")
	if e.Intent != "" {
		b.WriteString(" after ")
		b.WriteString(string(e.Intent))
	}
	b.WriteString(": ")
	b.WriteString(strings.Join(e.Violations, "; "))
	return b.String()
}
