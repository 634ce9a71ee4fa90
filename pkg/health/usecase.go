package health

import (
	"context"
	"fmt"
)

// Checker is one dependency probe.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Status of a single dependency; Error is empty when it is up.
type Status struct {
	Name  string `json:"name"`
	Up    bool   `json:"up"`
	Error string `json:"error,omitempty"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	// Ready fails on the first unavailable dependency.
	Ready(ctx context.Context) error
	// Report probes every dependency.
	Report(ctx context.Context) []Status
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

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}

func (s *service) Report(ctx context.Context) []Status {
	out := make([]Status, 0, len(s.checkers))
	for _, ch := range s.checkers {
		st := Status{Name: ch.Name(), Up: true}
		if err := ch.Check(ctx); err != nil {
			st.Up = false
			st.Error = err.Error()
		}
		out = append(out, st)
	}
	return out
}
