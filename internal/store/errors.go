package store

import "errors"

var (
	// ErrRecordNotFound is returned by lookups of an unknown report id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a report id is stored twice.
	ErrDuplicateKey = errors.New("already exists")

	ErrNoTransaction = errors.New("no transaction in progress")
)
