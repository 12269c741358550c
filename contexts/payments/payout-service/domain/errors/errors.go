package errors

import "errors"

var (
	ErrIdempotencyKeyMissing = errors.New("idempotency key required")
	ErrIdempotencyConflict   = errors.New("idempotency key reused with different payload")
	ErrInvalidBatchInput     = errors.New("invalid payout batch input")
	ErrContentNotFound       = errors.New("content item not found")
)
