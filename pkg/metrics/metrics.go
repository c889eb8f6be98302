// Package metrics holds the Prometheus collectors of the advisor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FAQAnswers counts answered questions.
	// Labels:
	//   - outcome: "matched", "no_match", "out_of_domain"
	FAQAnswers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_faq_answers_total",
			Help: "Total number of FAQ questions by outcome",
		},
		[]string{"outcome"},
	)

	// FAQScore observes the score of matched answers.
	FAQScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "advisor_faq_match_score",
			Help:    "Composite score of matched FAQ entries",
			Buckets: []float64{0.2, 0.3, 0.4, 0.5, 0.6, 0.8, 1, 1.5},
		},
	)

	// Classifications counts profile classifications.
	// Labels:
	//   - kind: "determined", "general_developer", "undetermined"
	//   - archetype: winning archetype key
	Classifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_profile_classifications_total",
			Help: "Total number of biography classifications",
		},
		[]string{"kind", "archetype"},
	)

	// Recommendations observes how many courses a recommendation returned.
	Recommendations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "advisor_recommendations_size",
			Help:    "Number of courses per recommendation",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)

	// CurriculumParses counts study plan extractions.
	// Labels:
	//   - source: "pdf", "docx", "txt", "other", "text", "url"
	//   - outcome: "ok", "empty", "error"
	CurriculumParses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_curriculum_parses_total",
			Help: "Total number of study plan extractions",
		},
		[]string{"source", "outcome"},
	)
)
