package reconcile

import "fmt"

// Config holds the operator-tunable matching constants.
type Config struct {
	// FuzzyThreshold is the inclusive minimum token-sort score (0-100) for a fuzzy hit.
	FuzzyThreshold int `mapstructure:"fuzzy_threshold" default:"85"`
	// PrefixLength is the number of normalized runes compared by the prefix pass.
	PrefixLength int `mapstructure:"prefix_length" default:"20"`
	// CandidateLimit is the number of catalog candidates requested per asset (K).
	CandidateLimit int `mapstructure:"candidate_limit" default:"10"`
}

// Policy returns the matching policy described by the configuration.
func (c Config) Policy() Policy {
	return Policy{PrefixLength: c.PrefixLength, FuzzyThreshold: c.FuzzyThreshold}
}

// Validate checks the policy and the candidate limit.
func (c Config) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return err
	}
	if c.CandidateLimit < 1 || c.CandidateLimit > 50 {
		return fmt.Errorf("candidate limit must be within 1-50, got %d", c.CandidateLimit)
	}
	return nil
}
