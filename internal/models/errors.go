package models

import "errors"

// Custom errors
var (
	ErrInvalidParameters = errors.New("invalid match parameters")
	ErrInvalidOdds       = errors.New("invalid market odds")
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key violation")
	ErrInvalidID         = errors.New("invalid ID format")
)
