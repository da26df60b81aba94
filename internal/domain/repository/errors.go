package repository

import "errors"

var (
	// ErrNotFound is returned by lookups that match nothing. It is an expected outcome.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness conflict.
	ErrAlreadyExists = errors.New("record already exists")
)
