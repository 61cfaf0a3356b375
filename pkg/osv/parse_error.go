package osv

import "fmt"

// ParseError is a per-document failure: the document at Path could not be
// turned into an Advisory. It is recoverable at the run level (the document
// is skipped).
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
