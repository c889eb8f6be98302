// Package advisor wires the text-analysis core to programs, user profiles
// and documents.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/artem13815/advisor/pkg/category"
	"github.com/artem13815/advisor/pkg/faq"
	"github.com/artem13815/advisor/pkg/metrics"
	"github.com/artem13815/advisor/pkg/profile"
	"github.com/artem13815/advisor/pkg/program"
	"github.com/artem13815/advisor/pkg/recommend"
	"github.com/artem13815/advisor/pkg/validation"
)

// Service is the advisor use case. It is safe for concurrent use.
type Service struct {
	catalog    *program.Catalog
	profiles   profile.Repository
	categories category.Registry
	archetypes profile.Registry
	matcher    *faq.Matcher
	fetcher    DocumentFetcher
	logger     *log.Logger
	locks      *userLocks
}

type Deps struct {
	Catalog    *program.Catalog
	Profiles   profile.Repository
	Categories category.Registry
	Archetypes profile.Registry
	Gate       faq.Gate
	Fetcher    DocumentFetcher
	Logger     *log.Logger
}

func NewService(d Deps) *Service {
	return &Service{
		catalog:    d.Catalog,
		profiles:   d.Profiles,
		categories: d.Categories,
		archetypes: d.Archetypes,
		matcher:    faq.NewMatcher(d.Gate),
		fetcher:    d.Fetcher,
		logger:     d.Logger,
		locks:      newUserLocks(),
	}
}

// Programs returns program summaries in catalog order.
func (s *Service) Programs() []program.Summary {
	programs := s.catalog.Programs()
	out := make([]program.Summary, 0, len(programs))
	for _, p := range programs {
		out = append(out, p.Summary())
	}
	return out
}

// Ask answers a free-form question from the FAQ of every program.
func (s *Service) Ask(question string) (faq.Result, error) {
	if strings.TrimSpace(question) == "" {
		return faq.Result{}, ErrEmptyQuestion
	}
	res := s.matcher.Answer(question, s.catalog.FAQGroups())
	metrics.FAQAnswers.WithLabelValues(res.Outcome.String()).Inc()
	if res.Match != nil {
		metrics.FAQScore.Observe(res.Match.Score)
	}
	s.logger.Debug("faq answered", "outcome", res.Outcome, "scanned", res.Scanned)
	return res, nil
}

// Classify maps a biography to an archetype without storing anything.
func (s *Service) Classify(text string) profile.Match {
	m := profile.Classify(text, s.archetypes)
	metrics.Classifications.WithLabelValues(m.Kind.String(), m.Archetype.Key).Inc()
	return m
}

func (s *Service) Examples() profile.Examples {
	return profile.ExampleBiographies(s.archetypes)
}

// UpdateProfile replaces the stored profile of a user.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (profile.UserProfile, error) {
	in.Background = strings.TrimSpace(in.Background)
	in.PreferredProgram = strings.TrimSpace(in.PreferredProgram)
	if err := validation.Struct(in); err != nil {
		return profile.UserProfile{}, err
	}
	if in.PreferredProgram != "" {
		if _, err := s.catalog.Get(in.PreferredProgram); err != nil {
			return profile.UserProfile{}, fmt.Errorf("%w: %q", ErrUnknownProgram, in.PreferredProgram)
		}
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	p := profile.UserProfile{
		UserID:           userID,
		Background:       in.Background,
		Interests:        in.Interests,
		ExperienceLevel:  in.ExperienceLevel,
		PreferredProgram: in.PreferredProgram,
		UpdatedAt:        time.Now().UTC(),
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return profile.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}
	s.logger.Info("profile updated", "user", userID)
	return p, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (profile.UserProfile, error) {
	unlock := s.locks.lock(userID)
	defer unlock()
	return s.profiles.Get(ctx, userID)
}

// background returns the stored background or "" when there is none.
func (s *Service) background(ctx context.Context, userID uuid.UUID) (string, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load profile: %w", err)
	}
	return p.Background, nil
}

// Compare lists programs with match percentages for the user's background.
func (s *Service) Compare(ctx context.Context, userID uuid.UUID) (Comparison, error) {
	bg, err := s.background(ctx, userID)
	if err != nil {
		return Comparison{}, err
	}
	c := Comparison{
		Personalized: bg != "",
		Programs:     s.catalog.Compare(bg),
	}
	if c.Personalized {
		if best, _, ok := s.catalog.Best(bg); ok {
			c.Best = best.Name
		}
	}
	return c, nil
}

// Recommend classifies the user's background and ranks the electives of the
// first program that has a parsed curriculum.
func (s *Service) Recommend(ctx context.Context, userID uuid.UUID) (Recommendation, error) {
	bg, err := s.background(ctx, userID)
	if err != nil {
		return Recommendation{}, err
	}
	if bg == "" {
		return Recommendation{}, ErrProfileMissing
	}
	prog, ok := s.catalog.FirstWithCurriculum()
	if !ok {
		return Recommendation{}, ErrNoCurriculum
	}

	match := s.Classify(bg)
	buckets := category.Categorize(prog.Curriculum.AllCourses, s.categories)
	res := recommend.Recommend(match, buckets, *prog.Curriculum)
	metrics.Recommendations.Observe(float64(len(res.Recommendations)))
	s.logger.Info("recommendations built",
		"user", userID,
		"program", prog.Name,
		"archetype", match.Archetype.Key,
		"count", len(res.Recommendations),
	)
	return Recommendation{Program: prog.Name, Result: res}, nil
}
