package ghsa

import "fmt"

// MappingError indicates an invariant violated while flattening an advisory
// into rows. It is treated as a parser bug: the offending document is skipped
// and the run continues.
type MappingError struct {
	GHSA   string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("unable to map advisory %s: %s", e.GHSA, e.Reason)
}
