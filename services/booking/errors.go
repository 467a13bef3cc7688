package booking

import "fmt"

// Kind classifies booking engine failures. The handler layer maps each
// kind to exactly one HTTP status; the engine itself never touches
// transport codes.
type Kind int

const (
	// KindInvalid marks malformed or out-of-constraint input.
	KindInvalid Kind = iota
	// KindConflict marks an overlapping slot.
	KindConflict
	// KindNotFound marks an unknown booking id.
	KindNotFound
	// KindForbidden marks a caller who is neither client nor provider.
	KindForbidden
	// KindInvalidTransition marks a status not reachable from the current one.
	KindInvalidTransition
	// KindUnavailable marks a store transaction that could not complete.
	// Safe to retry; never indicates partial success.
	KindUnavailable
)

// Error is the tagged failure variant surfaced by the booking engine.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
