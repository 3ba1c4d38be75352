package engine

import (
	"context"

	"github.com/episim/episim/internal/sir"
)

// Native runs the in-process solver. It is always available.
type Native struct{}

func NewNative() *Native { return &Native{} }

func (n *Native) Name() string    { return "native" }
func (n *Native) Available() bool { return true }

func (n *Native) Simulate(ctx context.Context, p sir.Parameters) (sir.TimeSeries, error) {
	return sir.Simulate(p)
}

func (n *Native) SimulateIntervention(ctx context.Context, p sir.InterventionParameters) (sir.TimeSeries, error) {
	return sir.SimulateWithIntervention(p)
}
