package textnorm_test

import (
	"testing"

	"asset-sync/core/textnorm"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"WhitespaceOnly", " \t\n ", ""},
		{"Lowercase", "The Five Pillars of Stoicism", "the five pillars of stoicism"},
		{"HTMLApostrophe", "Marcus Aurelius&#39; Meditations", "marcus aurelius meditations"},
		{"PlainApostrophe", "Marcus Aurelius' Meditations", "marcus aurelius meditations"},
		{"Punctuation", "F1 2026: Engine Rules -- EXPLAINED!?", "f1 2026 engine rules explained"},
		{"Symbols", "AI Factory: $10,000/Mo (100% Automated)", "ai factory 10000mo 100 automated"},
		{"CollapseWhitespace", "  five   pillars\t\tof\nstoicism  ", "five pillars of stoicism"},
		{"SeparatorControlsAreWhitespace", "a\x1cb\x1d\x1ec\x1f", "a b c"},
		{"UnderscoreIsWordChar", "snake_case title", "snake_case title"},
		{"UnicodeLetters", "Café&#39;s Day!", "cafés day"},
		{"UnicodeUppercase", "ÉCOLE d'Été", "école dété"},
		{"Digits", "Episode ٣ Part 2", "episode ٣ part 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"The Five Pillars of Stoicism (Summary)",
		"Café&#39;s   Day!!",
		"İstanbul Guide",
		"  ---  ",
		"Stoicism: The Five Pilars",
	}

	for _, in := range inputs {
		once := textnorm.Normalize(in)
		assert.Equal(t, once, textnorm.Normalize(once), "input %q", in)
	}
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	assert.Equal(t, textnorm.Normalize("café's day"), textnorm.Normalize("CAFÉ&#39;S DAY!"))
	assert.Equal(t, textnorm.Normalize("cafes day"), textnorm.Normalize("Cafe's Day!"))
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"Longer", "the five pillars of stoicism", 20, "the five pillars of "},
		{"Shorter", "stoicism", 20, "stoicism"},
		{"Exact", "abcde", 5, "abcde"},
		{"Empty", "", 20, ""},
		{"Zero", "abc", 0, ""},
		{"Runes", "éééé", 2, "éé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Prefix(tt.in, tt.n))
		})
	}
}
