package process

import (
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/ghsa-tools/ghsa-db/internal/log"
	"github.com/ghsa-tools/ghsa-db/pkg/corpus"
	"github.com/ghsa-tools/ghsa-db/pkg/data"
	"github.com/ghsa-tools/ghsa-db/pkg/osv"
	"github.com/ghsa-tools/ghsa-db/pkg/process/refs"
	"github.com/ghsa-tools/ghsa-db/pkg/process/transformers/ghsa"
	"github.com/ghsa-tools/ghsa-db/pkg/store"
)

type ImportConfig struct {
	Source  string
	DBPath  string
	Workers int
}

// docResult carries everything one worker produced for one document. Workers
// never touch shared state; each writes only its own slot.
type docResult struct {
	path    string
	ghsa    string
	entries []data.Entry
	err     error
}

// Import runs the whole pipeline: enumerate the corpus, parse+classify+map
// every document across a worker pool, then perform one bulk rebuild of the
// destination store. Per-document failures are collected into the report and
// never abort the run; only store-level failures propagate as an error.
func Import(cfg ImportConfig) (*data.Report, error) {
	log.WithFields("source", cfg.Source, "db", cfg.DBPath).Info("importing advisory corpus")

	openers, count, err := corpus.Openers(afero.NewOsFs(), cfg.Source)
	if err != nil {
		return nil, err
	}

	writer, err := store.NewWriter(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	transformer := ghsa.NewTransformer(refs.NewClassifier())

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log.WithFields("documents", humanize.Comma(count), "workers", workers).Debug("processing documents")

	// results are indexed by dispatch order, which follows the loader's
	// lexical path order, so collection below is deterministic.
	results := make([]docResult, count)
	var g errgroup.Group
	g.SetLimit(workers)
	var idx int
	for opener := range openers {
		i := idx
		idx++
		o := opener
		g.Go(func() error {
			results[i] = processDocument(o, transformer)
			return nil
		})
	}
	// workers carry failures per document instead of returning errors
	_ = g.Wait()

	report := &data.Report{DocumentsSeen: count}
	entries := collect(results, report)

	if err := writer.Write(entries...); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	report.RowsWritten = int64(len(entries))

	logReport(report)

	return report, nil
}

func processDocument(opener corpus.Opener, transformer data.Transformer) docResult {
	result := docResult{path: opener.String()}

	reader, err := opener.Open()
	if err != nil {
		result.err = err
		return result
	}
	defer reader.Close()

	advisory, err := osv.AdvisoryEntry(reader)
	if err != nil {
		result.err = &osv.ParseError{Path: opener.String(), Cause: err}
		return result
	}

	entries, err := transformer(advisory)
	if err != nil {
		result.err = err
		return result
	}

	result.ghsa = advisory.ID
	result.entries = entries
	return result
}

// collect walks the per-document results in corpus order, keeping the first
// document seen for each advisory ID and reporting later ones as row
// conflicts.
func collect(results []docResult, report *data.Report) []data.Entry {
	seen := make(map[string]struct{}, len(results))
	var entries []data.Entry
	for _, result := range results {
		if result.err != nil {
			report.Failures = append(report.Failures, data.Failure{Path: result.path, Err: result.err})
			continue
		}
		if _, ok := seen[result.ghsa]; ok {
			report.Failures = append(report.Failures, data.Failure{
				Path: result.path,
				Err:  &RowConflictError{Path: result.path, GHSA: result.ghsa},
			})
			continue
		}
		seen[result.ghsa] = struct{}{}
		entries = append(entries, result.entries...)
	}
	return entries
}

func logReport(report *data.Report) {
	for _, failure := range report.Failures {
		log.WithFields("path", failure.Path).Warnf("skipped document: %v", failure.Err)
	}
	log.WithFields(
		"documents", humanize.Comma(report.DocumentsSeen),
		"rows", humanize.Comma(report.RowsWritten),
		"skipped", humanize.Comma(int64(len(report.Failures))),
	).Info("import complete")
}
