package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSortRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"Identical", "five pillars", "five pillars", 100},
		{"BothEmpty", "", "", 100},
		{"OneEmpty", "five pillars", "", 0},
		{"TokenOrderIgnored", "hello world", "world hello", 100},
		{"SingleSubstitution", "abcd", "abce", 75},
		{"RoundsUp", "ab", "ab c", 67},
		{"MissingToken", "meditations of marcus aurelius", "marcus aurelius meditations", 95},
		{"Typo", "stoicism the five pilars", "the five pillars of stoicism", 92},
		{"ThresholdExactly", "abcdefghijklmnopqrst", "xyzdefghijklmnopqrst", 85},
		{"BelowThreshold", "abcdefghijklmnopqrstuvwxy", "1234efghijklmnopqrstuvwxy", 84},
		{"Unrelated", "unrelated topic", "the five pillars of stoicism", 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenSortRatio(tt.a, tt.b))
			assert.Equal(t, tt.want, TokenSortRatio(tt.b, tt.a), "ratio must be symmetric")
		})
	}
}
