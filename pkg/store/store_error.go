package store

import "fmt"

// StoreError is fatal: the destination could not be opened/created or the
// rebuild transaction failed. No partial writes are left behind.
type StoreError struct {
	Path  string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure at %s: %v", e.Path, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
