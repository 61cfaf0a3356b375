package osv

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Advisory is a single OSV-schema GitHub security advisory document. Optional
// scalar fields are pointers so that an absent field is distinguishable from
// an empty one all the way to the DB.
type Advisory struct {
	SchemaVersion    string            `json:"schema_version,omitempty"`
	ID               string            `json:"id"`
	Modified         string            `json:"modified"`
	Published        *string           `json:"published,omitempty"`
	Withdrawn        *string           `json:"withdrawn,omitempty"`
	Aliases          []string          `json:"aliases,omitempty"`
	Related          []string          `json:"related,omitempty"`
	Summary          *string           `json:"summary,omitempty"`
	Details          *string           `json:"details,omitempty"`
	Severity         []Severity        `json:"severity,omitempty"`
	Affected         []Affected        `json:"affected,omitempty"`
	References       []Reference       `json:"references,omitempty"`
	DatabaseSpecific *DatabaseSpecific `json:"database_specific,omitempty"`
}

type Severity struct {
	Type  string `json:"type"`
	Score string `json:"score"`
}

type Affected struct {
	Package           Package         `json:"package"`
	Ranges            []Range         `json:"ranges,omitempty"`
	Versions          []string        `json:"versions,omitempty"`
	EcosystemSpecific json.RawMessage `json:"ecosystem_specific,omitempty"`
	DatabaseSpecific  json.RawMessage `json:"database_specific,omitempty"`
}

type Package struct {
	Ecosystem string `json:"ecosystem"`
	Name      string `json:"name"`
	Purl      string `json:"purl,omitempty"`
}

type Range struct {
	Type   string  `json:"type"`
	Repo   string  `json:"repo,omitempty"`
	Events []Event `json:"events,omitempty"`
}

type Event struct {
	Introduced   string `json:"introduced,omitempty"`
	Fixed        string `json:"fixed,omitempty"`
	LastAffected string `json:"last_affected,omitempty"`
	Limit        string `json:"limit,omitempty"`
}

type Reference struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// DatabaseSpecific holds the GitHub-curated fields attached to every GHSA
// record.
type DatabaseSpecific struct {
	CWEIDs           []string `json:"cwe_ids,omitempty"`
	Severity         string   `json:"severity,omitempty"`
	GithubReviewed   *bool    `json:"github_reviewed,omitempty"`
	GithubReviewedAt *string  `json:"github_reviewed_at,omitempty"`
	NVDPublishedAt   *string  `json:"nvd_published_at,omitempty"`
}

func (a Advisory) IsEmpty() bool {
	return a.ID == ""
}

// CVE returns the first CVE alias of the advisory, if it has one.
func (a Advisory) CVE() *string {
	for _, alias := range a.Aliases {
		if strings.HasPrefix(alias, "CVE-") {
			cve := alias
			return &cve
		}
	}
	return nil
}

// AdvisoryEntry parses a single advisory document. The id and modified
// timestamp are the only required fields; documents without them are
// malformed and rejected rather than defaulted.
func AdvisoryEntry(reader io.Reader) (Advisory, error) {
	var advisory Advisory
	if err := json.NewDecoder(reader).Decode(&advisory); err != nil {
		return Advisory{}, fmt.Errorf("malformed advisory document: %w", err)
	}
	if advisory.IsEmpty() {
		return Advisory{}, errors.New("advisory document has no id")
	}
	if advisory.Modified == "" {
		return Advisory{}, fmt.Errorf("advisory %s has no modified timestamp", advisory.ID)
	}
	return advisory, nil
}
