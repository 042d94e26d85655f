package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned by Begin when called on a handle that is
	// already bound to a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on a handle that is not
	// bound to a transaction.
	ErrNotInTx = errors.New("not in tx")
)
