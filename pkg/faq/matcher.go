// Package faq answers free-form questions from a corpus of program FAQs.
package faq

import (
	"strings"
)

// Score weights and thresholds.
const (
	weightSimilarity = 0.4
	weightOverlap    = 0.3
	weightAnswerHits = 0.2

	importantWordBonus = 0.2
	questionTypeBonus  = 0.15

	// MinScore is the floor a candidate must exceed to be returned.
	MinScore = 0.2
)

var importantWords = []string{"содержание", "программа", "количество", "места", "стоимость", "поступление", "экзамен"}

// questionTypes group synonyms of a question kind: what, how many, how, when.
var questionTypes = [][]string{
	{"что", "какое", "какая", "какие"},
	{"сколько", "количество"},
	{"как", "каким образом"},
	{"когда", "срок", "время"},
}

// Entry is a single question/answer pair of a program.
type Entry struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Program  string `json:"program"`
}

// Group is the FAQ of one program.
type Group struct {
	Program string
	Entries []Entry
}

// Outcome tells how a question was resolved.
type Outcome int

const (
	OutcomeMatched Outcome = iota
	OutcomeNoMatch
	OutcomeOutOfDomain
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeNoMatch:
		return "no_match"
	default:
		return "out_of_domain"
	}
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Match is the best scoring entry.
type Match struct {
	Entry        Entry     `json:"entry"`
	Program      string    `json:"program"`
	Score        float64   `json:"score"`
	MatchedWords []string  `json:"matched_words"`
	Breakdown    Breakdown `json:"breakdown"`
}

// Result of answering a question. Match is set only for OutcomeMatched.
// Scanned is the number of entries scored; zero when the gate rejected the
// question.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Match   *Match  `json:"match,omitempty"`
	Scanned int     `json:"scanned"`
}

// Breakdown lists the signals of a composite score.
type Breakdown struct {
	Similarity float64 `json:"similarity"`
	Overlap    float64 `json:"overlap"`
	AnswerHits float64 `json:"answer_hits"`
	Bonus      float64 `json:"bonus"`
	Total      float64 `json:"total"`
}

// Matcher scores questions against FAQ groups.
type Matcher struct {
	gate Gate
}

func NewMatcher(gate Gate) *Matcher { return &Matcher{gate: gate} }

// Relevant exposes the gate decision alone.
func (m *Matcher) Relevant(question string) bool { return m.gate.Relevant(question) }

// Answer scores every entry of every group in order and returns the best
// one scoring above MinScore. Equal scores keep the first entry seen.
func (m *Matcher) Answer(question string, groups []Group) Result {
	if !m.gate.Relevant(question) {
		return Result{Outcome: OutcomeOutOfDomain}
	}
	q := newQuery(question)

	var (
		best      *Match
		bestScore float64
		scanned   int
	)
	for _, g := range groups {
		for _, e := range g.Entries {
			scanned++
			b, matched := q.score(e)
			if b.Total > bestScore && b.Total > MinScore {
				bestScore = b.Total
				entry := e
				entry.Program = g.Program
				best = &Match{
					Entry:        entry,
					Program:      g.Program,
					Score:        b.Total,
					MatchedWords: matched,
					Breakdown:    b,
				}
			}
		}
	}
	if best == nil {
		return Result{Outcome: OutcomeNoMatch, Scanned: scanned}
	}
	return Result{Outcome: OutcomeMatched, Match: best, Scanned: scanned}
}

// Score computes the composite score of question against one entry without
// the gate.
func Score(question string, e Entry) Breakdown {
	b, _ := newQuery(question).score(e)
	return b
}

type query struct {
	lower  string
	tokens []string
}

func newQuery(question string) query {
	lower := strings.ToLower(question)
	return query{lower: lower, tokens: Tokens(lower)}
}

// score returns the breakdown and the question tokens shared with the FAQ
// question, in question order.
func (q query) score(e Entry) (Breakdown, []string) {
	fq := strings.ToLower(e.Question)
	fa := strings.ToLower(e.Answer)
	faqTokens := tokenSet(Tokens(fq))
	denom := float64(max(len(q.tokens), 1))

	common := make([]string, 0)
	answerHits := 0
	for _, w := range q.tokens {
		if _, ok := faqTokens[w]; ok {
			common = append(common, w)
		}
		if strings.Contains(fa, w) {
			answerHits++
		}
	}

	var bonus float64
	for _, w := range importantWords {
		if strings.Contains(q.lower, w) && strings.Contains(fq, w) {
			bonus += importantWordBonus
		}
	}
	for _, variants := range questionTypes {
		if containsAny(q.lower, variants) && containsAny(fq, variants) {
			bonus += questionTypeBonus
		}
	}

	b := Breakdown{
		Similarity: Ratio(q.lower, fq),
		Overlap:    float64(len(common)) / denom,
		AnswerHits: float64(answerHits) / denom,
		Bonus:      bonus,
	}
	b.Total = weightSimilarity*b.Similarity + weightOverlap*b.Overlap + weightAnswerHits*b.AnswerHits + b.Bonus
	return b, common
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
