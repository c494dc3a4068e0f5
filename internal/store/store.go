// Package store holds the error contract shared by the in-memory
// repositories. All state in this system lives in process memory and is
// lost on restart; durability is explicitly out of scope.
package store

import "errors"

// ErrNotFound is returned by a repository when no record matches the
// requested identifier. Callers distinguish it with errors.Is.
var ErrNotFound = errors.New("record not found")
