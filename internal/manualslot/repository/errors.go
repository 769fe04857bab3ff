package repository

import "errors"

// Repository-level errors, mapped to domain errors by the use case.
var (
	ErrNotFound       = errors.New("record not found")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrFailedToQuery  = errors.New("failed to query records")
)
