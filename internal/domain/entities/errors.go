package entities

import "errors"

// Domain errors
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidStatus  = errors.New("invalid task status")
)
