// Package reconcile decides whether a local asset title refers to a catalog video.
//
// The engine evaluates an ordered candidate list with three passes and returns on the
// first hit:
//
//  1. Exact: the normalized query equals the normalized candidate title.
//  2. Prefix: the first PrefixLength runes of both normalized titles are equal.
//  3. Fuzzy: the token-sort similarity of both normalized titles is at least
//     FuzzyThreshold. The first candidate crossing the threshold wins, not the best one.
//
// Candidate order is significant and is never changed. A pass that hits on an earlier
// rule takes precedence over any later rule, even for a different candidate.
//
// Every decision is logged with the pass, the candidate and its score.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(reconcile.DefaultPolicy(), logger)
//	result := engine.Match("The Five Pillars of Stoicism", []reconcile.Candidate{
//	    {ID: "v1", Title: "The Five Pillars of Stoicism"},
//	})
//	if result.Matched() {
//	    fmt.Println(result.VideoID, result.Rule)
//	}
package reconcile
