// Package textnorm canonicalizes titles before they are compared.
//
// Two titles are considered equal only through their normalized forms. Normalize
// lowercases the input, unescapes the HTML apostrophe entity the catalog API returns,
// strips every rune that is neither a word character nor whitespace, and collapses
// whitespace runs to a single space.
//
// # Usage
//
//	norm := textnorm.Normalize("The Five Pillars of Stoicism!")
//	// norm == "the five pillars of stoicism"
//	head := textnorm.Prefix(norm, 20)
package textnorm
