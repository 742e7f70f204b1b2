// Package apperr defines the error kinds the HTTP layer maps onto statuses.
// Lower layers wrap these with %w so controllers can classify with errors.Is.
package apperr

import "errors"

var (
	// ErrInvalidInput marks malformed caller input caught before any store access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup of an absent document.
	ErrNotFound = errors.New("not found")

	// ErrIngestionFailed marks a failed fetch-stamp-insert sequence.
	ErrIngestionFailed = errors.New("ingestion failed")

	// ErrQueryFailed marks a store-level read failure.
	ErrQueryFailed = errors.New("query failed")
)
