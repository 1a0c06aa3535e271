package db

import "errors"

// Error taxonomy for store operations. Every manager method wraps its
// failure in one of these sentinels so callers can branch with errors.Is
// instead of parsing messages.
var (
	// ErrStoreWrite means a persist failed; the durable store is unchanged.
	ErrStoreWrite = errors.New("store write failed")
	// ErrStoreRead means a query failed; no partial results are returned.
	ErrStoreRead = errors.New("store read failed")
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous means a reference matched more than one record.
	ErrAmbiguous = errors.New("ambiguous reference")
	// ErrInvalidInput means the caller supplied an unusable value.
	ErrInvalidInput = errors.New("invalid input")
)
