package reconcile

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// TokenSortRatio scores two normalized titles on a 0-100 scale, ignoring token order.
// Tokens of each side are sorted and rejoined, then compared with the LCS-based
// indel similarity 2*LCS/(len(a)+len(b)), rounded half to even.
func TokenSortRatio(a, b string) int {
	return ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func ratio(a, b string) int {
	if a == b {
		return 100
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if a == "" || b == "" || total == 0 {
		return 0
	}
	lcs := edlib.LCS(a, b)
	return int(math.RoundToEven(100 * float64(2*lcs) / float64(total)))
}
