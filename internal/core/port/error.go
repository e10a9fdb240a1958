package port

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWorker = errors.New("invalid worker")
)

// StorageError reports a failure of the underlying database while
// executing a store operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("could not %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{
		Op:  op,
		Err: err,
	}
}
