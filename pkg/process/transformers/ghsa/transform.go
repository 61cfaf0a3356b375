package ghsa

import (
	"encoding/json"
	"sort"

	"github.com/scylladb/go-set/strset"

	"github.com/ghsa-tools/ghsa-db/pkg/data"
	"github.com/ghsa-tools/ghsa-db/pkg/osv"
	"github.com/ghsa-tools/ghsa-db/pkg/process/refs"
	"github.com/ghsa-tools/ghsa-db/pkg/store"
)

// NewTransformer binds a reference classifier into a data.Transformer.
func NewTransformer(classifier refs.Classifier) data.Transformer {
	return func(advisory osv.Advisory) ([]data.Entry, error) {
		return Transform(advisory, classifier.Classify(advisory.References))
	}
}

// Transform flattens one parsed advisory into exactly one advisory row plus
// zero or more affected-package rows. Structured values are serialized at
// this boundary only; empty and absent both map to NULL, uniformly for every
// serialized-array column.
func Transform(advisory osv.Advisory, classified refs.Classified) ([]data.Entry, error) {
	row := store.Advisory{
		GHSA:      advisory.ID,
		Modified:  advisory.Modified,
		Published: advisory.Published,
		Withdrawn: advisory.Withdrawn,
		CVE:       advisory.CVE(),
		Summary:   advisory.Summary,
		Details:   advisory.Details,
	}

	if advisory.SchemaVersion != "" {
		row.SchemaVersion = &advisory.SchemaVersion
	}

	ecosystems, err := getEcosystems(advisory)
	if err != nil {
		return nil, err
	}
	row.Ecosystems = ecosystems

	severity, err := getSeverity(advisory)
	if err != nil {
		return nil, err
	}
	row.Severity = severity

	if ds := advisory.DatabaseSpecific; ds != nil {
		if len(ds.CWEIDs) > 0 {
			cwes, err := encode(advisory.ID, ds.CWEIDs)
			if err != nil {
				return nil, err
			}
			row.CWEs = cwes
		}
		row.GithubReviewed = ds.GithubReviewed
		row.GithubReviewedAt = ds.GithubReviewedAt
		row.NVDPublishedAt = ds.NVDPublishedAt
	}

	if len(classified.Commits) > 0 {
		commits, err := encode(advisory.ID, classified.Commits)
		if err != nil {
			return nil, err
		}
		row.RefCommits = commits
	}
	if len(classified.PullRequests) > 0 {
		pulls, err := encode(advisory.ID, classified.PullRequests)
		if err != nil {
			return nil, err
		}
		row.RefPullRequests = pulls
	}

	rows := []interface{}{row}
	for _, affected := range advisory.Affected {
		pkgRow, err := getAffectedPackage(advisory.ID, affected)
		if err != nil {
			return nil, err
		}
		rows = append(rows, pkgRow)
	}

	return data.NewEntries(rows...), nil
}

// getEcosystems collects the distinct ecosystem names across all affected
// entries, sorted for stable output.
func getEcosystems(advisory osv.Advisory) (*string, error) {
	ecosystems := strset.New()
	for _, affected := range advisory.Affected {
		if affected.Package.Ecosystem != "" {
			ecosystems.Add(affected.Package.Ecosystem)
		}
	}
	if ecosystems.Size() == 0 {
		return nil, nil
	}
	names := ecosystems.List()
	sort.Strings(names)
	return encode(advisory.ID, names)
}

// getSeverity prefers the OSV severity entries (serialized structure); GHSA
// records that only carry the curated severity label store that verbatim.
func getSeverity(advisory osv.Advisory) (*string, error) {
	if len(advisory.Severity) > 0 {
		return encode(advisory.ID, advisory.Severity)
	}
	if ds := advisory.DatabaseSpecific; ds != nil && ds.Severity != "" {
		label := ds.Severity
		return &label, nil
	}
	return nil, nil
}

func getAffectedPackage(ghsa string, affected osv.Affected) (store.AffectedPackage, error) {
	if affected.Package.Name == "" || affected.Package.Ecosystem == "" {
		return store.AffectedPackage{}, &MappingError{
			GHSA:   ghsa,
			Reason: "affected entry is missing the package name or ecosystem",
		}
	}

	row := store.AffectedPackage{
		GHSA:      ghsa,
		Name:      affected.Package.Name,
		Ecosystem: affected.Package.Ecosystem,
	}

	if len(affected.Ranges) > 0 {
		ranges, err := encode(ghsa, affected.Ranges)
		if err != nil {
			return store.AffectedPackage{}, err
		}
		row.Ranges = ranges
	}
	if len(affected.Versions) > 0 {
		versions, err := encode(ghsa, affected.Versions)
		if err != nil {
			return store.AffectedPackage{}, err
		}
		row.Versions = versions
	}

	return row, nil
}

func encode(ghsa string, value interface{}) (*string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, &MappingError{GHSA: ghsa, Reason: err.Error()}
	}
	s := string(raw)
	return &s, nil
}
