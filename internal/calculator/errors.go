package calculator

import "fmt"

// ValidationError reports an input that fails a precondition. Computation
// aborts before any formula runs and no partial result is produced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DomainError reports inputs that are individually valid but combine to a
// degenerate outcome, such as a margin/ticket pair that yields no profit or a
// card rate that consumes the entire price. The refusal is surfaced as-is,
// never clamped to a default.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}
