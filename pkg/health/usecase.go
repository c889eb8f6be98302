package health

import (
	"context"
	"fmt"
	"time"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Status — результат одной проверки.
type Status struct {
	Name      string `json:"name"`
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latencyMs"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
	Report(ctx context.Context) ([]Status, error)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

// Ready runs checkers in order and reports the first failure by name.
func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}

// Report runs every checker and returns all statuses along with the first
// failure, if any.
func (s *service) Report(ctx context.Context) ([]Status, error) {
	out := make([]Status, 0, len(s.checkers))
	var first error
	for _, ch := range s.checkers {
		start := time.Now()
		err := ch.Check(ctx)
		st := Status{Name: ch.Name(), OK: err == nil, LatencyMS: time.Since(start).Milliseconds()}
		if err != nil {
			st.Error = err.Error()
			if first == nil {
				first = fmt.Errorf("%s: %w", ch.Name(), err)
			}
		}
		out = append(out, st)
	}
	return out, first
}
