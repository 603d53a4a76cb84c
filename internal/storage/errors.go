package storage

import dErrors "lifebank/pkg/domain-errors"

var (
	// ErrNotFound keeps storage-specific misses consistent across in-memory
	// and Redis implementations. Domain stores translate it into entity-level
	// not-found errors before it reaches callers.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "key not found")
)
