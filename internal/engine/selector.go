package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/episim/episim/internal/sir"
)

// Selector tries engines in priority order. The first success wins;
// unavailable engines are skipped; when every engine fails, the
// collected failures are returned joined.
type Selector struct {
	engines []Engine
}

func NewSelector(engines ...Engine) *Selector {
	return &Selector{engines: engines}
}

func (s *Selector) Engines() []Engine { return s.engines }

func (s *Selector) Name() string { return "selector" }

// Available reports whether any of the configured engines is available.
func (s *Selector) Available() bool {
	_, err := s.Pick()
	return err == nil
}

// Pick returns the first available engine without running anything.
func (s *Selector) Pick() (Engine, error) {
	for _, e := range s.engines {
		if e.Available() {
			return e, nil
		}
	}
	return nil, ErrNoEngine
}

func (s *Selector) Simulate(ctx context.Context, p sir.Parameters) (sir.TimeSeries, error) {
	return attempt(s.engines, func(e Engine) (sir.TimeSeries, error) {
		return e.Simulate(ctx, p)
	})
}

func (s *Selector) SimulateIntervention(ctx context.Context, p sir.InterventionParameters) (sir.TimeSeries, error) {
	return attempt(s.engines, func(e Engine) (sir.TimeSeries, error) {
		return e.SimulateIntervention(ctx, p)
	})
}

func attempt(engines []Engine, run func(Engine) (sir.TimeSeries, error)) (sir.TimeSeries, error) {
	if len(engines) == 0 {
		return nil, fmt.Errorf("%w: none configured", ErrNoEngine)
	}

	var errs []error
	for _, e := range engines {
		if !e.Available() {
			errs = append(errs, fmt.Errorf("%s: not available", e.Name()))
			continue
		}
		ts, err := run(e)
		if err == nil {
			return ts, nil
		}
		logrus.Warnf("engine %s failed, trying next: %v", e.Name(), err)
		errs = append(errs, fmt.Errorf("%s: %w", e.Name(), err))
	}
	return nil, errors.Join(errs...)
}
