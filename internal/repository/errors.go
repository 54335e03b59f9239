package repository

import "errors"

// ErrNotFound is returned when a lookup or mutation targets an id with no
// matching record. Callers branch on it with errors.Is; every other error
// is a store fault.
var ErrNotFound = errors.New("record not found")
