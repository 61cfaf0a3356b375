package data

import "github.com/ghsa-tools/ghsa-db/pkg/osv"

// Transformer is a function that knows how to reshape one parsed advisory
// into data.Entry objects that are writable by a data.Writer. Transformers
// are dependency-injected into the pipeline so that the classification and
// mapping policy stays decoupled from the document plumbing.
type Transformer func(advisory osv.Advisory) ([]Entry, error)
