package advisor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/artem13815/advisor/pkg/category"
	"github.com/artem13815/advisor/pkg/curriculum"
	"github.com/artem13815/advisor/pkg/metrics"
)

// ParseText extracts a study plan from already extracted text.
func (s *Service) ParseText(text string) (ParsedPlan, error) {
	if strings.TrimSpace(text) == "" {
		metrics.CurriculumParses.WithLabelValues("text", "error").Inc()
		return ParsedPlan{}, ErrEmptyText
	}
	return s.plan("text", curriculum.Document{Text: text}), nil
}

// ParseDocument reads an uploaded PDF, DOCX or text file and extracts its
// study plan.
func (s *Service) ParseDocument(filename string, data []byte) (ParsedPlan, error) {
	source := sourceOf(filename)
	doc, err := curriculum.ReadDocument(filename, data)
	if err != nil {
		metrics.CurriculumParses.WithLabelValues(source, "error").Inc()
		return ParsedPlan{}, err
	}
	return s.plan(source, doc), nil
}

// ParseURL downloads a document and extracts its study plan.
func (s *Service) ParseURL(ctx context.Context, rawURL string) (ParsedPlan, error) {
	if s.fetcher == nil {
		return ParsedPlan{}, errors.New("document fetching is not configured")
	}
	doc, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		metrics.CurriculumParses.WithLabelValues("url", "error").Inc()
		return ParsedPlan{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	return s.plan("url", doc), nil
}

func (s *Service) plan(source string, doc curriculum.Document) ParsedPlan {
	cur := curriculum.Extract(doc.Text)
	outcome := "ok"
	if cur.Empty() {
		outcome = "empty"
	}
	metrics.CurriculumParses.WithLabelValues(source, outcome).Inc()
	s.logger.Info("study plan parsed",
		"source", source,
		"program", cur.ProgramName,
		"courses", len(cur.AllCourses),
		"pages", doc.Pages,
	)
	return ParsedPlan{
		Curriculum: cur,
		Categories: category.Categorize(cur.AllCourses, s.categories),
		Pages:      doc.Pages,
		TextLength: len([]rune(doc.Text)),
	}
}

func sourceOf(filename string) string {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf", ".docx", ".txt":
		return ext[1:]
	case "":
		return "txt"
	default:
		return "other"
	}
}
