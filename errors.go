package chainmap

import "errors"

var (
	// Returned by Search and Delete when the key is not in its bucket.
	ErrKeyNotFound = errors.New("key not found")

	// Returned by New when the bucket count is not positive.
	ErrInvalidSize = errors.New("invalid table size")
)
