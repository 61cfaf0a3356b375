package data

// Writer accepts stage rows and persists all of them as one atomic unit on
// Close. Implementations support exactly one writer per destination.
type Writer interface {
	Write(entries ...Entry) error
	Close() error
}
