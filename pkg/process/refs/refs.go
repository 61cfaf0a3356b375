package refs

import (
	"strings"

	"github.com/ghsa-tools/ghsa-db/pkg/osv"
)

// Kind buckets a reference URL by the artifact it points to.
type Kind string

const (
	Commit      Kind = "commit"
	PullRequest Kind = "pull-request"
)

// git accepts abbreviated hashes; anything shorter than 6 hex chars is too
// ambiguous to treat as a commit reference.
const (
	minHashLen = 6
	maxHashLen = 40
)

// Rule matches one kind of reference. Rules are evaluated in order and the
// first match wins, so more specific rules (pull requests) come first.
type Rule struct {
	Kind  Kind
	Match func(ref osv.Reference) bool
}

// Classified holds the partitioned reference URLs of one advisory, in the
// advisory's original reference order. URLs matching no rule are dropped;
// duplicates are kept as-is (this is a filter, not a canonicalizer).
type Classified struct {
	Commits      []string
	PullRequests []string
}

type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier from the given rules, falling back to
// DefaultRules when none are provided.
func NewClassifier(rules ...Rule) Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return Classifier{rules: rules}
}

func (c Classifier) Classify(references []osv.Reference) Classified {
	var out Classified
	for _, ref := range references {
		if ref.URL == "" {
			continue
		}
		for _, rule := range c.rules {
			if !rule.Match(ref) {
				continue
			}
			switch rule.Kind {
			case Commit:
				out.Commits = append(out.Commits, ref.URL)
			case PullRequest:
				out.PullRequests = append(out.PullRequests, ref.URL)
			}
			break
		}
	}
	return out
}

// DefaultRules prefers the explicit reference type tag when it unambiguously
// names a commit or pull request, and falls back to the URL path shapes used
// by the common hosting platforms for generic tags (WEB, ADVISORY, FIX, ...).
func DefaultRules() []Rule {
	return []Rule{
		{Kind: PullRequest, Match: isPullRequest},
		{Kind: Commit, Match: isCommit},
	}
}

func isPullRequest(ref osv.Reference) bool {
	switch strings.ToUpper(ref.Type) {
	case "PULL_REQUEST", "PULL", "MERGE_REQUEST":
		return true
	}
	return hasPullRequestPath(ref.URL)
}

func isCommit(ref osv.Reference) bool {
	if strings.ToUpper(ref.Type) == "COMMIT" {
		return true
	}
	// a PR URL may carry a /commits/<hash> suffix; it is still a PR reference
	if strings.Contains(ref.URL, "/pull/") || strings.Contains(ref.URL, "/pulls/") {
		return false
	}
	return hasCommitPath(ref.URL)
}

// hasCommitPath reports whether the URL contains /commit/<hash> or
// /commits/<hash> with a plausible abbreviated-to-full git hash.
func hasCommitPath(url string) bool {
	idx := strings.Index(url, "/commit")
	if idx < 0 {
		return false
	}
	rest := url[idx:]
	var hash string
	switch {
	case strings.HasPrefix(rest, "/commits/"):
		hash = rest[len("/commits/"):]
	case strings.HasPrefix(rest, "/commit/"):
		hash = rest[len("/commit/"):]
	default:
		return false
	}

	n := 0
	for _, c := range hash {
		if !isHexDigit(c) {
			break
		}
		n++
	}
	return n >= minHashLen && n <= maxHashLen
}

// hasPullRequestPath reports whether the URL contains /pull/<number> or
// /pulls/<number>.
func hasPullRequestPath(url string) bool {
	idx := strings.Index(url, "/pull")
	if idx < 0 {
		return false
	}
	rest := url[idx:]
	var number string
	switch {
	case strings.HasPrefix(rest, "/pulls/"):
		number = rest[len("/pulls/"):]
	case strings.HasPrefix(rest, "/pull/"):
		number = rest[len("/pull/"):]
	default:
		return false
	}

	n := 0
	for _, c := range number {
		if c < '0' || c > '9' {
			break
		}
		n++
	}
	return n > 0
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
