package repository

import "errors"

// ErrNotFound is returned (wrapped with the entity name) when a row does not exist.
var ErrNotFound = errors.New("not found")
