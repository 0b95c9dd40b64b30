package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Services wrap
// them with context via fmt.Errorf("%w: ...").
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
