// Package recommend ranks elective courses for a classified profile.
package recommend

import (
	"cmp"
	"slices"

	"github.com/artem13815/advisor/pkg/category"
	"github.com/artem13815/advisor/pkg/curriculum"
	"github.com/artem13815/advisor/pkg/profile"
)

const (
	// MaxRecommendations bounds the ranked list.
	MaxRecommendations = 10
	// maxPreferences is how many preferred categories feed the pool.
	maxPreferences = 3
	// topAreaPicks is how many courses the first preference contributes.
	topAreaPicks = 4

	reasonPrefix   = "Рекомендовано для "
	reasonTopArea  = " (приоритетная область)"
	reasonBaseline = "Базовая рекомендация"
)

// Recommendation is a course picked for the user.
type Recommendation struct {
	curriculum.Course
	Category string `json:"category"`
	Reason   string `json:"reason"`
	Priority int    `json:"priority"`
}

// Analysis holds aggregate curriculum counts.
type Analysis struct {
	TotalCourses    int `json:"total_courses"`
	ElectiveCourses int `json:"elective_courses"`
	CategoriesFound int `json:"categories_found"`
}

// Result is the full recommendation response.
type Result struct {
	Profile              profile.Match    `json:"profile"`
	Recommendations      []Recommendation `json:"recommendations"`
	CategoryDistribution []category.Count `json:"category_distribution"`
	Analysis             Analysis         `json:"analysis"`
}

// picksFor returns how many electives the preference at position i keeps.
func picksFor(i int) int { return max(1, topAreaPicks-i) }

func reasonFor(m profile.Match, i int) string {
	if m.Kind == profile.KindUndetermined {
		return reasonBaseline
	}
	r := reasonPrefix + m.Description()
	if i == 0 {
		r += reasonTopArea
	}
	return r
}

// Recommend picks the best-credited electives from each preferred category
// of m, ranks them by (priority, credits) descending and keeps at most
// MaxRecommendations. Empty inputs give an empty list.
func Recommend(m profile.Match, buckets category.Buckets, cur curriculum.Curriculum) Result {
	prefs := m.Preferences()
	if len(prefs) > maxPreferences {
		prefs = prefs[:maxPreferences]
	}

	pool := make([]Recommendation, 0, MaxRecommendations)
	for i, key := range prefs {
		electives := buckets.Electives(key)
		slices.SortStableFunc(electives, func(a, b curriculum.Course) int {
			return cmp.Compare(b.Credits, a.Credits)
		})
		n := min(picksFor(i), len(electives))
		for _, c := range electives[:n] {
			pool = append(pool, Recommendation{
				Course:   c,
				Category: key,
				Reason:   reasonFor(m, i),
				Priority: len(prefs) - i,
			})
		}
	}

	slices.SortStableFunc(pool, func(a, b Recommendation) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(b.Credits, a.Credits)
	})
	if len(pool) > MaxRecommendations {
		pool = pool[:MaxRecommendations]
	}

	return Result{
		Profile:              m,
		Recommendations:      pool,
		CategoryDistribution: buckets.Counts(),
		Analysis: Analysis{
			TotalCourses:    len(cur.AllCourses),
			ElectiveCourses: len(cur.ElectiveCourses),
			CategoriesFound: buckets.NonEmpty(),
		},
	}
}
