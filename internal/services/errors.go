package services

import "errors"

// Domain errors. The HTTP layer maps all four onto the same not-found status;
// anything else surfaces as an internal error.
var (
	ErrInvalidID        = errors.New("invalid id")
	ErrNotFound         = errors.New("not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrDeleteFailed     = errors.New("nothing was deleted")
)
