package data

// Failure names one skipped document and why it was skipped.
type Failure struct {
	Path string
	Err  error
}

// Report summarizes a whole import run. A non-empty failure list does not
// make the run unsuccessful; the store is still usable.
type Report struct {
	DocumentsSeen int64
	RowsWritten   int64
	Failures      []Failure
}
