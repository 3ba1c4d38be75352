// Package engine abstracts over interchangeable SIR solvers. The native
// engine computes in process; the external engine delegates to a solver
// binary. A Selector tries engines in priority order and falls back on
// failure, and a Cache memoizes runs by their parameter serialization.
package engine

import (
	"context"
	"errors"

	"github.com/episim/episim/internal/sir"
)

// ErrNoEngine indicates that no configured engine is available to run.
var ErrNoEngine = errors.New("engine: no engine available")

type Engine interface {
	Name() string
	Available() bool
	Simulate(ctx context.Context, p sir.Parameters) (sir.TimeSeries, error)
	SimulateIntervention(ctx context.Context, p sir.InterventionParameters) (sir.TimeSeries, error)
}
