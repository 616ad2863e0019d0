package reconcile

import (
	"asset-sync/core/textnorm"

	"go.uber.org/zap"
)

// nearMissMargin widens the fuzzy threshold for debug logging of close candidates.
const nearMissMargin = 15

// Engine applies the exact, prefix and fuzzy passes to a candidate list.
type Engine struct {
	policy Policy
	logger *zap.Logger
}

// NewEngine creates an engine. A nil logger disables decision logging.
func NewEngine(policy Policy, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{policy: policy, logger: logger}
}

// Policy returns the policy the engine was built with.
func (e *Engine) Policy() Policy {
	return e.policy
}

type normalizedCandidate struct {
	Candidate
	norm string
}

// Match returns the first candidate accepted by the earliest pass, or RuleNone.
func (e *Engine) Match(query string, candidates []Candidate) MatchResult {
	normQuery := textnorm.Normalize(query)
	l := e.logger.With(
		zap.String("query", query),
		zap.String("normalized_query", normQuery),
		zap.Int("candidates", len(candidates)),
	)

	normalized := make([]normalizedCandidate, len(candidates))
	for i, c := range candidates {
		normalized[i] = normalizedCandidate{Candidate: c, norm: textnorm.Normalize(c.Title)}
	}

	if result, ok := e.exactPass(normQuery, normalized); ok {
		logDecision(l, result)
		return result
	}

	if result, ok := e.prefixPass(normQuery, normalized); ok {
		logDecision(l, result)
		return result
	}

	if result, ok := e.fuzzyPass(l, normQuery, normalized); ok {
		logDecision(l, result)
		return result
	}

	l.Warn("No match found (tried exact, prefix and fuzzy passes)",
		zap.Int("fuzzy_threshold", e.policy.FuzzyThreshold),
	)
	return MatchResult{Rule: RuleNone}
}

func (e *Engine) exactPass(normQuery string, candidates []normalizedCandidate) (MatchResult, bool) {
	for _, c := range candidates {
		if c.norm == normQuery {
			return MatchResult{Rule: RuleExact, VideoID: c.ID, CandidateTitle: c.Title}, true
		}
	}
	return MatchResult{}, false
}

func (e *Engine) prefixPass(normQuery string, candidates []normalizedCandidate) (MatchResult, bool) {
	prefix := textnorm.Prefix(normQuery, e.policy.PrefixLength)
	for _, c := range candidates {
		if textnorm.Prefix(c.norm, e.policy.PrefixLength) == prefix {
			return MatchResult{Rule: RulePrefix, VideoID: c.ID, CandidateTitle: c.Title}, true
		}
	}
	return MatchResult{}, false
}

func (e *Engine) fuzzyPass(l *zap.Logger, normQuery string, candidates []normalizedCandidate) (MatchResult, bool) {
	for _, c := range candidates {
		score := TokenSortRatio(normQuery, c.norm)
		if score >= e.policy.FuzzyThreshold {
			return MatchResult{Rule: RuleFuzzy, VideoID: c.ID, CandidateTitle: c.Title, Score: score}, true
		}
		if score >= e.policy.FuzzyThreshold-nearMissMargin {
			l.Debug("Fuzzy candidate below threshold",
				zap.String("candidate_id", c.ID),
				zap.String("candidate_title", c.Title),
				zap.Int("score", score),
			)
		}
	}
	return MatchResult{}, false
}

func logDecision(l *zap.Logger, result MatchResult) {
	fields := []zap.Field{
		zap.String("rule", string(result.Rule)),
		zap.String("video_id", result.VideoID),
		zap.String("candidate_title", result.CandidateTitle),
	}
	if result.Rule == RuleFuzzy {
		fields = append(fields, zap.Int("score", result.Score))
	}
	l.Info("Match found", fields...)
}
