package osv

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strRef(s string) *string {
	return &s
}

func boolRef(b bool) *bool {
	return &b
}

func TestAdvisoryEntry(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     Advisory
		wantErr  string
	}{
		{
			name: "full document",
			document: `{
				"schema_version": "1.4.0",
				"id": "GHSA-vh2m-22xx-q94f",
				"modified": "2023-02-08T22:24:45Z",
				"published": "2021-04-06T17:29:34Z",
				"aliases": ["CVE-2021-21421"],
				"summary": "Improper access control",
				"details": "node-etsy-client before 0.2.0 leaks the api key",
				"severity": [
					{"type": "CVSS_V3", "score": "CVSS:3.1/AV:N/AC:H/PR:N/UI:R/S:U/C:L/I:N/A:N"}
				],
				"affected": [
					{
						"package": {"ecosystem": "npm", "name": "node-etsy-client"},
						"ranges": [
							{"type": "SEMVER", "events": [{"introduced": "0"}, {"fixed": "0.2.0"}]}
						]
					}
				],
				"references": [
					{"type": "WEB", "url": "https://github.com/creharmony/node-etsy-client/pull/18"}
				],
				"database_specific": {
					"cwe_ids": ["CWE-284", "CWE-668"],
					"severity": "LOW",
					"github_reviewed": true,
					"github_reviewed_at": "2021-04-06T17:29:28Z",
					"nvd_published_at": "2021-04-23T18:15:00Z"
				}
			}`,
			want: Advisory{
				SchemaVersion: "1.4.0",
				ID:            "GHSA-vh2m-22xx-q94f",
				Modified:      "2023-02-08T22:24:45Z",
				Published:     strRef("2021-04-06T17:29:34Z"),
				Aliases:       []string{"CVE-2021-21421"},
				Summary:       strRef("Improper access control"),
				Details:       strRef("node-etsy-client before 0.2.0 leaks the api key"),
				Severity: []Severity{
					{Type: "CVSS_V3", Score: "CVSS:3.1/AV:N/AC:H/PR:N/UI:R/S:U/C:L/I:N/A:N"},
				},
				Affected: []Affected{
					{
						Package: Package{Ecosystem: "npm", Name: "node-etsy-client"},
						Ranges: []Range{
							{Type: "SEMVER", Events: []Event{{Introduced: "0"}, {Fixed: "0.2.0"}}},
						},
					},
				},
				References: []Reference{
					{Type: "WEB", URL: "https://github.com/creharmony/node-etsy-client/pull/18"},
				},
				DatabaseSpecific: &DatabaseSpecific{
					CWEIDs:           []string{"CWE-284", "CWE-668"},
					Severity:         "LOW",
					GithubReviewed:   boolRef(true),
					GithubReviewedAt: strRef("2021-04-06T17:29:28Z"),
					NVDPublishedAt:   strRef("2021-04-23T18:15:00Z"),
				},
			},
		},
		{
			name:     "minimal document",
			document: `{"id": "GHSA-aaaa-bbbb-cccc", "modified": "2023-01-01T00:00:00Z"}`,
			want: Advisory{
				ID:       "GHSA-aaaa-bbbb-cccc",
				Modified: "2023-01-01T00:00:00Z",
			},
		},
		{
			name:     "absent optional fields stay nil",
			document: `{"id": "GHSA-aaaa-bbbb-cccc", "modified": "2023-01-01T00:00:00Z", "summary": ""}`,
			want: Advisory{
				ID:       "GHSA-aaaa-bbbb-cccc",
				Modified: "2023-01-01T00:00:00Z",
				Summary:  strRef(""),
			},
		},
		{
			name:     "missing modified",
			document: `{"id": "GHSA-aaaa-bbbb-cccc"}`,
			wantErr:  "no modified timestamp",
		},
		{
			name:     "missing id",
			document: `{"modified": "2023-01-01T00:00:00Z"}`,
			wantErr:  "no id",
		},
		{
			name:     "malformed json",
			document: `{"id": "GHSA-aaaa-`,
			wantErr:  "malformed advisory document",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := AdvisoryEntry(strings.NewReader(test.document))
			if test.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("unexpected advisory (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdvisoryCVE(t *testing.T) {
	tests := []struct {
		name     string
		advisory Advisory
		want     *string
	}{
		{
			name:     "no aliases",
			advisory: Advisory{},
			want:     nil,
		},
		{
			name:     "no CVE alias",
			advisory: Advisory{Aliases: []string{"PYSEC-2021-123"}},
			want:     nil,
		},
		{
			name:     "first CVE alias wins",
			advisory: Advisory{Aliases: []string{"PYSEC-2021-123", "CVE-2021-21421", "CVE-2021-99999"}},
			want:     strRef("CVE-2021-21421"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.advisory.CVE())
		})
	}
}
