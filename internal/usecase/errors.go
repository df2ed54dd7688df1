package usecase

import "errors"

// Error classes raised at the use-case boundary. Storage adapters never
// raise these; they surface engine errors verbatim.
var (
	// ErrInvalidInput marks malformed requests: out-of-range paging, day
	// windows, limits, non-positive quantities, empty item lists. Reported
	// before any persistence or timing work begins.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDomainViolation marks a write referencing an unknown customer or
	// product. The write is never attempted.
	ErrDomainViolation = errors.New("domain violation")

	// ErrNotFound marks a read for a nonexistent order. It is a valid query
	// outcome, distinct from a malformed request.
	ErrNotFound = errors.New("not found")
)
