package profile

import (
	"strings"
)

// Kind tells which branch of classification produced a Match.
type Kind int

const (
	KindDetermined Kind = iota
	KindGeneralDeveloper
	KindUndetermined
)

func (k Kind) String() string {
	switch k {
	case KindDetermined:
		return "determined"
	case KindGeneralDeveloper:
		return "general_developer"
	default:
		return "undetermined"
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Score is the diagnostic result for one registered archetype.
type Score struct {
	Key             string   `json:"key"`
	Raw             int      `json:"raw"`
	Adjusted        float64  `json:"adjusted"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// Match is the outcome of classifying a biography.
type Match struct {
	Kind            Kind      `json:"kind"`
	Archetype       Archetype `json:"archetype"`
	MatchedKeywords []string  `json:"matched_keywords"`
	Scores          []Score   `json:"scores"`
}

func (m Match) Preferences() []string { return m.Archetype.Preferences }
func (m Match) Description() string   { return m.Archetype.Description }

// AdjustedScore rewards many distinct hits over a single one.
func AdjustedScore(raw int) float64 {
	if raw <= 0 {
		return 0
	}
	r := float64(raw)
	return r * (1 + 0.1*r)
}

// Classify scores text against every archetype of reg and picks the one
// with the strictly highest adjusted score; ties keep the earlier entry.
// Without any hit it falls back to GeneralDeveloper or Undetermined.
func Classify(text string, reg Registry) Match {
	lower := strings.ToLower(text)
	scores := make([]Score, 0, len(reg.archetypes))
	best, bestScore := -1, 0.0
	for i, a := range reg.archetypes {
		matched := make([]string, 0)
		for _, kw := range a.Keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, kw)
			}
		}
		s := Score{Key: a.Key, Raw: len(matched), Adjusted: AdjustedScore(len(matched)), MatchedKeywords: matched}
		scores = append(scores, s)
		if s.Adjusted > bestScore {
			best, bestScore = i, s.Adjusted
		}
	}
	if best >= 0 {
		return Match{
			Kind:            KindDetermined,
			Archetype:       reg.archetypes[best].clone(),
			MatchedKeywords: scores[best].MatchedKeywords,
			Scores:          scores,
		}
	}
	for _, term := range developerTerms {
		if strings.Contains(lower, term) {
			return Match{Kind: KindGeneralDeveloper, Archetype: GeneralDeveloper.clone(), MatchedKeywords: []string{}, Scores: scores}
		}
	}
	return Match{Kind: KindUndetermined, Archetype: Undetermined.clone(), MatchedKeywords: []string{}, Scores: scores}
}
