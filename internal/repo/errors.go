package repo

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a product id is absent from the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidQuantity is returned when a movement quantity is zero or negative.
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// DuplicateNameError is returned when a product name collides
// case-insensitively with another product.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a product with the name %q already exists", e.Name)
}

// InsufficientStockError is returned when a removal exceeds the available
// stock. Available reports how much could still be removed.
type InsufficientStockError struct {
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock: requested %d, only %d available", e.Requested, e.Available)
}

// EncodingError wraps a malformed stored blob.
type EncodingError struct {
	Key string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("decode %s blob: %v", e.Key, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// PersistenceError wraps a storage read/write failure. The in-memory
// collection keeps the applied change; the caller decides how to report it.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
