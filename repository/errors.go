package repository

import "errors"

// Expected conditions cross the repository boundary as sentinel values, not
// as raw store errors. Anything else means the operation failed even after
// the single reconnect-and-retry.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("day meal already exists")
	ErrUserExists = errors.New("user already exists")
)
