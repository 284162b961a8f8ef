package services

import "errors"

var (
	// ErrPaymentWrite marks a failure to persist the authoritative payment
	// record. When this is returned no side effects have been applied.
	ErrPaymentWrite = errors.New("payment write failed")

	// ErrRecordNotFound marks a missing record where the operation requires
	// one to exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidInput marks a request that failed validation before any
	// store call was made.
	ErrInvalidInput = errors.New("invalid input")
)
