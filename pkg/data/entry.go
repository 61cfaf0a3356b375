package data

// Entry represents one row ready to be written to the DB. The underlying
// type is one of the store row models; the writer is responsible for
// dispatching on it.
type Entry struct {
	Data interface{}
}

func NewEntries(rows ...interface{}) []Entry {
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = Entry{Data: row}
	}
	return entries
}
