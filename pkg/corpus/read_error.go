package corpus

import "fmt"

// ReadError indicates a document file that could not be read. The document is
// skipped; the run continues.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
