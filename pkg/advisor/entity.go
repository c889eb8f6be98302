package advisor

import (
	"context"
	"errors"

	"github.com/artem13815/advisor/pkg/category"
	"github.com/artem13815/advisor/pkg/curriculum"
	"github.com/artem13815/advisor/pkg/program"
	"github.com/artem13815/advisor/pkg/recommend"
)

var (
	// ErrProfileMissing is returned when a user has not described their
	// background yet.
	ErrProfileMissing = errors.New("profile background is not set")

	// ErrNoCurriculum is returned when no loaded program has parsed courses.
	ErrNoCurriculum = errors.New("no program with a parsed curriculum")

	ErrUnknownProgram = errors.New("unknown program")
	ErrEmptyQuestion  = errors.New("question is empty")
	ErrEmptyText      = errors.New("text is empty")
)

// ProfileInput — данные, которые пользователь сообщает о себе.
type ProfileInput struct {
	Background       string   `json:"background" validate:"max=4000"`
	Interests        []string `json:"interests" validate:"max=20,dive,max=100"`
	ExperienceLevel  string   `json:"experienceLevel" validate:"omitempty,oneof=junior middle senior lead student"`
	PreferredProgram string   `json:"preferredProgram" validate:"max=200"`
}

// Recommendation is the personal course list together with the program it
// was built from.
type Recommendation struct {
	Program string `json:"program"`
	recommend.Result
}

// Comparison lists every program, with match percentages when the user has
// a background.
type Comparison struct {
	Personalized bool                 `json:"personalized"`
	Programs     []program.Comparison `json:"programs"`
	Best         string               `json:"best,omitempty"`
}

// ParsedPlan is a study plan extracted from a document or raw text.
type ParsedPlan struct {
	Curriculum curriculum.Curriculum `json:"curriculum"`
	Categories category.Buckets      `json:"categories"`
	Pages      int                   `json:"pages"`
	TextLength int                   `json:"text_length"`
}

// DocumentFetcher downloads a document by URL.
type DocumentFetcher interface {
	Fetch(ctx context.Context, rawURL string) (curriculum.Document, error)
}
