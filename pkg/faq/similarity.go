package faq

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Ratio is the difflib SequenceMatcher similarity of two strings compared
// rune by rune: 2*M/T, where M is the size of matching blocks and T the
// total rune count. Popular runes of long strings are treated as junk,
// as difflib does by default.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Tokens splits lowercased text on whitespace and drops repeats, keeping
// first-seen order.
func Tokens(lower string) []string {
	fields := strings.Fields(lower)
	seen := make(map[string]struct{}, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
