package sync

import (
	"asset-sync/core/mapping"
	"asset-sync/core/reconcile"
)

// Outcome is the result of one asset in a run.
type Outcome string

const (
	// OutcomeMatched means the asset was matched (and, outside dry-run, uploaded and recorded).
	OutcomeMatched Outcome = "matched"
	// OutcomeUnmatched means no video was accepted, or the lookup failed.
	OutcomeUnmatched Outcome = "unmatched"
	// OutcomeFailed means a video was matched but the upload failed.
	OutcomeFailed Outcome = "failed"
)

// ItemReport describes what happened to one asset.
type ItemReport struct {
	Kind           mapping.AssetKind `json:"kind"`
	Title          string            `json:"title"`
	Path           string            `json:"path"`
	Outcome        Outcome           `json:"outcome"`
	Rule           reconcile.Rule    `json:"rule"`
	VideoID        string            `json:"videoId,omitempty"`
	CandidateTitle string            `json:"candidateTitle,omitempty"`
	Score          int               `json:"score,omitempty"`
	Reference      string            `json:"reference,omitempty"`
	// Replaced is set when the reference overwrote an earlier one.
	Replaced bool `json:"replaced,omitempty"`
	// Err is the lookup or upload error, if any.
	Err error `json:"-"`
}

// Summary aggregates a run. Exact, Prefix and Fuzzy count match decisions,
// including those whose upload failed.
type Summary struct {
	Total        int `json:"total"`
	Matched      int `json:"matched"`
	Unmatched    int `json:"unmatched"`
	Failed       int `json:"failed"`
	Exact        int `json:"exact"`
	Prefix       int `json:"prefix"`
	Fuzzy        int `json:"fuzzy"`
	Replaced     int `json:"replaced"`
	LookupErrors int `json:"lookupErrors"`
}

// Report is the outcome of Runner.Run.
type Report struct {
	RunID   string       `json:"runId"`
	DryRun  bool         `json:"dryRun"`
	Items   []ItemReport `json:"items"`
	Summary Summary      `json:"summary"`
}

// Unmatched returns the items no video was found for, in run order.
func (r *Report) Unmatched() []ItemReport {
	var out []ItemReport
	for _, item := range r.Items {
		if item.Outcome == OutcomeUnmatched {
			out = append(out, item)
		}
	}
	return out
}

func (r *Report) add(item ItemReport) {
	r.Items = append(r.Items, item)
	r.Summary.Total++

	switch item.Outcome {
	case OutcomeMatched:
		r.Summary.Matched++
		if item.Replaced {
			r.Summary.Replaced++
		}
	case OutcomeUnmatched:
		r.Summary.Unmatched++
		if item.Err != nil {
			r.Summary.LookupErrors++
		}
	case OutcomeFailed:
		r.Summary.Failed++
	}

	if item.Outcome == OutcomeMatched || item.Outcome == OutcomeFailed {
		switch item.Rule {
		case reconcile.RuleExact:
			r.Summary.Exact++
		case reconcile.RulePrefix:
			r.Summary.Prefix++
		case reconcile.RuleFuzzy:
			r.Summary.Fuzzy++
		}
	}
}
