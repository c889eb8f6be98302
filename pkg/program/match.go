package program

import "strings"

const baseMatch = 50

var (
	developerWords = []string{"программист", "разработчик", "python", "код"}
	productWords   = []string{"менеджер", "продукт", "product", "бизнес"}
	systemsWords   = []string{"системы", "архитектура", "highload", "нагрузка"}
)

// MatchScore estimates in percent how well a program fits a background.
// Only the first background group that applies is considered.
func MatchScore(background string, p Program) int {
	bg := strings.ToLower(background)
	title := strings.ToLower(p.Title)
	score := baseMatch

	switch {
	case containsAny(bg, developerWords):
		switch {
		case strings.Contains(title, "искусственный интеллект"):
			score += 35
		case strings.Contains(title, "программное обеспечение"):
			score += 30
		case strings.Contains(title, "продукт"):
			score -= 5
		}
	case containsAny(bg, productWords):
		switch {
		case strings.Contains(title, "продукт"):
			score += 35
		case strings.Contains(title, "искусственный интеллект"):
			score -= 5
		}
	case containsAny(bg, systemsWords):
		if strings.Contains(title, "высоконагруженные") {
			score += 40
		}
	}
	return min(100, max(0, score))
}

// Comparison is one row of a program comparison. Match is nil when no
// background was given.
type Comparison struct {
	Summary
	Match *int `json:"match,omitempty"`
}

// Compare summarizes every program in catalog order and, for a non-empty
// background, scores each of them.
func (c *Catalog) Compare(background string) []Comparison {
	personal := strings.TrimSpace(background) != ""
	out := make([]Comparison, 0, len(c.programs))
	for _, p := range c.programs {
		row := Comparison{Summary: p.Summary()}
		if personal {
			score := MatchScore(background, p)
			row.Match = &score
		}
		out = append(out, row)
	}
	return out
}

// Best returns the program with the highest match, the first one on ties.
func (c *Catalog) Best(background string) (Program, int, bool) {
	if len(c.programs) == 0 {
		return Program{}, 0, false
	}
	best, bestScore := c.programs[0], MatchScore(background, c.programs[0])
	for _, p := range c.programs[1:] {
		if s := MatchScore(background, p); s > bestScore {
			best, bestScore = p, s
		}
	}
	return best, bestScore, true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
