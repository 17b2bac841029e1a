package domain

import (
	"errors"
	"fmt"
)

// ErrNotAvailableOffline is returned when a resource is absent from both the
// network and the local cache.
var ErrNotAvailableOffline = errors.New("not available offline")

// ErrArticleNotFound maps the backend's 404 on article fetch.
var ErrArticleNotFound = errors.New("article not found")

// StorageError wraps a local store I/O failure. Missing keys are not
// storage errors; reads report them as absent results.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// NetworkError wraps a transport failure or a non-2xx response from the
// backend. StatusCode is zero when no response was received.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network: %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("network: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
