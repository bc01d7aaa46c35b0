package service

import "errors"

// Error taxonomy surfaced to callers. Handlers match these with errors.Is to
// pick a status code without inspecting error text.
var (
	// ErrInvalidPayload marks a malformed or contradictory submission, e.g.
	// duplicate child ids or an id-bearing occupant under a new vehicle.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrNotFound marks an update or reference that targets a non-existent id.
	ErrNotFound = errors.New("not found")

	// ErrTransaction marks a commit or rollback failure at the storage boundary.
	ErrTransaction = errors.New("transaction failed")
)
