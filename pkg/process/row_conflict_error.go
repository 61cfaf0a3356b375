package process

import "fmt"

// RowConflictError indicates a second document carrying an advisory ID that
// was already written earlier in the run. The first document wins; the later
// one is reported and skipped.
type RowConflictError struct {
	Path string
	GHSA string
}

func (e *RowConflictError) Error() string {
	return fmt.Sprintf("duplicate advisory %s: already written from an earlier document", e.GHSA)
}
