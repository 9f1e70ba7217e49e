package gym

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference is returned when a row points to a missing member, trainer, session...
	ErrInvalidReference = errors.New("invalid reference")
	// ErrNotAssigned is returned when a member is not a client of the trainer.
	ErrNotAssigned = errors.New("client not assigned to this trainer")
	// ErrInvalidValue is returned when the store rejects a value, e.g. NULL in a required column.
	ErrInvalidValue = errors.New("invalid value")
	ErrDuplicate    = errors.New("already exists")
)
