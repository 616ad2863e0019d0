package reconcile

import "fmt"

const (
	// DefaultPrefixLength is the number of runes compared by the prefix pass.
	DefaultPrefixLength = 20
	// DefaultFuzzyThreshold is the minimum token-sort similarity accepted by the fuzzy pass.
	DefaultFuzzyThreshold = 85
)

// Rule identifies which pass produced a MatchResult.
type Rule string

const (
	// RuleExact means the normalized titles are identical.
	RuleExact Rule = "exact"
	// RulePrefix means the normalized titles share the configured prefix.
	RulePrefix Rule = "prefix"
	// RuleFuzzy means the similarity score reached the threshold.
	RuleFuzzy Rule = "fuzzy"
	// RuleNone means no pass produced a hit.
	RuleNone Rule = "none"
)

// Candidate is a catalog entry the query is compared against.
type Candidate struct {
	// ID is the catalog video identifier.
	ID string

	// Title is the raw catalog title.
	Title string
}

// MatchResult is the outcome of a single reconciliation attempt.
// It is consumed immediately by the caller and never persisted.
type MatchResult struct {
	// Rule is the pass that produced the result.
	Rule Rule `json:"rule"`

	// VideoID is the matched candidate id. Empty for RuleNone.
	VideoID string `json:"video_id,omitempty"`

	// CandidateTitle is the raw title of the matched candidate.
	CandidateTitle string `json:"candidate_title,omitempty"`

	// Score is the similarity score of a fuzzy hit (0-100).
	Score int `json:"score,omitempty"`
}

// Matched reports whether a candidate was selected.
func (r MatchResult) Matched() bool {
	return r.Rule != RuleNone && r.Rule != "" && r.VideoID != ""
}

// Policy holds the tunable constants of the matching rules.
type Policy struct {
	// PrefixLength is the number of runes compared by the prefix pass.
	PrefixLength int

	// FuzzyThreshold is the inclusive minimum score for a fuzzy hit.
	FuzzyThreshold int
}

// DefaultPolicy returns the policy with the documented defaults.
func DefaultPolicy() Policy {
	return Policy{
		PrefixLength:   DefaultPrefixLength,
		FuzzyThreshold: DefaultFuzzyThreshold,
	}
}

// Validate checks that the policy values are usable.
func (p Policy) Validate() error {
	if p.PrefixLength <= 0 {
		return fmt.Errorf("prefix length must be positive, got %d", p.PrefixLength)
	}
	if p.FuzzyThreshold < 0 || p.FuzzyThreshold > 100 {
		return fmt.Errorf("fuzzy threshold must be within 0-100, got %d", p.FuzzyThreshold)
	}
	return nil
}
