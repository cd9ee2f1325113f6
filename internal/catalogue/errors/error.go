// Package errors provides custom error types for catalogue operations.
package errors

import (
	"errors"
	"fmt"
)

var ErrBadBatch = errors.New("bad batch")
var ErrInvalidProduct = errors.New("invalid product")

// BadBatchError is returned when a batch carries IDs that are already in the catalogue.
// IDs are listed in batch order.
type BadBatchError[K comparable] struct {
	IDs []K
}

func (e *BadBatchError[K]) Error() string {
	return fmt.Sprintf("%s: ids already in catalogue: %v", ErrBadBatch, e.IDs)
}

// Unwrap lets errors.Is match ErrBadBatch.
func (e *BadBatchError[K]) Unwrap() error {
	return ErrBadBatch
}
