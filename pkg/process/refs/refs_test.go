package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghsa-tools/ghsa-db/pkg/osv"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		references []osv.Reference
		want       Classified
	}{
		{
			name: "commit URL under a generic tag",
			references: []osv.Reference{
				{Type: "ADVISORY", URL: "https://github.com/o/r/commit/abc123"},
			},
			want: Classified{
				Commits: []string{"https://github.com/o/r/commit/abc123"},
			},
		},
		{
			name: "pull request URL via path-shape fallback",
			references: []osv.Reference{
				{Type: "WEB", URL: "https://github.com/o/r/pull/42"},
			},
			want: Classified{
				PullRequests: []string{"https://github.com/o/r/pull/42"},
			},
		},
		{
			name: "full length hash on a commits path",
			references: []osv.Reference{
				{Type: "WEB", URL: "https://gitlab.com/o/r/-/commits/0123456789abcdef0123456789abcdef01234567"},
			},
			want: Classified{
				Commits: []string{"https://gitlab.com/o/r/-/commits/0123456789abcdef0123456789abcdef01234567"},
			},
		},
		{
			name: "branch name is not a hash",
			references: []osv.Reference{
				{Type: "WEB", URL: "https://github.com/o/r/commit/main"},
			},
			want: Classified{},
		},
		{
			name: "hash shorter than an abbreviation",
			references: []osv.Reference{
				{Type: "WEB", URL: "https://github.com/o/r/commit/abc12"},
			},
			want: Classified{},
		},
		{
			name: "pull request with a commits suffix stays a pull request",
			references: []osv.Reference{
				{Type: "WEB", URL: "https://github.com/o/r/pull/42/commits/0123456789abcdef0123456789abcdef01234567"},
			},
			want: Classified{
				PullRequests: []string{"https://github.com/o/r/pull/42/commits/0123456789abcdef0123456789abcdef01234567"},
			},
		},
		{
			name: "pull request files view",
			references: []osv.Reference{
				{Type: "WEB", URL: "https://github.com/o/r/pull/42/files"},
			},
			want: Classified{
				PullRequests: []string{"https://github.com/o/r/pull/42/files"},
			},
		},
		{
			name: "explicit tags win over the URL shape",
			references: []osv.Reference{
				{Type: "COMMIT", URL: "https://example.com/change/1234"},
				{Type: "PULL_REQUEST", URL: "https://example.com/change/5678"},
			},
			want: Classified{
				Commits:      []string{"https://example.com/change/1234"},
				PullRequests: []string{"https://example.com/change/5678"},
			},
		},
		{
			name: "pulls and merge request spellings",
			references: []osv.Reference{
				{Type: "WEB", URL: "https://github.com/o/r/pulls/7"},
				{Type: "MERGE_REQUEST", URL: "https://gitlab.com/o/r/-/merge_requests/12"},
			},
			want: Classified{
				PullRequests: []string{
					"https://github.com/o/r/pulls/7",
					"https://gitlab.com/o/r/-/merge_requests/12",
				},
			},
		},
		{
			name: "unmatched URLs are dropped",
			references: []osv.Reference{
				{Type: "ADVISORY", URL: "https://github.com/o/r/security/advisories/GHSA-xxxx"},
				{Type: "WEB", URL: "https://nvd.nist.gov/vuln/detail/CVE-2021-21421"},
				{Type: "PACKAGE", URL: "https://github.com/o/r"},
			},
			want: Classified{},
		},
		{
			name: "order and duplicates are preserved",
			references: []osv.Reference{
				{Type: "WEB", URL: "https://github.com/o/r/commit/bbbbbb"},
				{Type: "WEB", URL: "https://github.com/o/r/commit/aaaaaa"},
				{Type: "WEB", URL: "https://github.com/o/r/commit/bbbbbb"},
			},
			want: Classified{
				Commits: []string{
					"https://github.com/o/r/commit/bbbbbb",
					"https://github.com/o/r/commit/aaaaaa",
					"https://github.com/o/r/commit/bbbbbb",
				},
			},
		},
		{
			name: "empty URL is ignored",
			references: []osv.Reference{
				{Type: "COMMIT", URL: ""},
			},
			want: Classified{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NewClassifier().Classify(test.references)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestClassifyCustomRules(t *testing.T) {
	onlyGerrit := Rule{
		Kind: Commit,
		Match: func(ref osv.Reference) bool {
			return len(ref.URL) > 0 && ref.Type == "GERRIT"
		},
	}

	classifier := NewClassifier(onlyGerrit)
	got := classifier.Classify([]osv.Reference{
		{Type: "GERRIT", URL: "https://review.example.org/c/project/+/1234"},
		{Type: "WEB", URL: "https://github.com/o/r/commit/abc1234"},
	})

	assert.Equal(t, Classified{
		Commits: []string{"https://review.example.org/c/project/+/1234"},
	}, got)
}
