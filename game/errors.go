package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned when a move is rejected by the rules.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInvalidLayout is returned when a layout breaks the slot tables or the army quota.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrMalformed is returned when a serialized payload cannot be decoded.
	ErrMalformed = errors.New("malformed payload")
)

// InvariantViolation is the panic value raised when the engine reaches a state
// that no sequence of valid calls can produce. It signals a bug upstream, never
// a user mistake.
type InvariantViolation struct {
	Reason string
}

func (v InvariantViolation) Error() string {
	return "invariant violation: " + v.Reason
}

func invariant(format string, args ...any) {
	panic(InvariantViolation{Reason: fmt.Sprintf(format, args...)})
}

// AsInvariantViolation reports whether a recovered panic value is an InvariantViolation.
func AsInvariantViolation(recovered any) (InvariantViolation, bool) {
	v, ok := recovered.(InvariantViolation)
	return v, ok
}
