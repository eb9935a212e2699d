package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrStorageError is returned for unexpected durable-store errors.
	// It can be used to wrap more specific I/O errors.
	ErrStorageError = errors.New("storage error")
)
