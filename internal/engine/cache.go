package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/episim/episim/internal/sir"
)

// Cache wraps an engine with run memoization. Results are pure functions
// of their parameters, so entries never expire. Stored and returned
// series are copied so callers cannot mutate cached data.
type Cache struct {
	inner Engine

	mu   sync.Mutex
	runs map[string]sir.TimeSeries
}

func NewCache(inner Engine) *Cache {
	return &Cache{inner: inner, runs: make(map[string]sir.TimeSeries)}
}

func (c *Cache) Name() string    { return c.inner.Name() }
func (c *Cache) Available() bool { return c.inner.Available() }

// Len reports the number of memoized runs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.runs)
}

func (c *Cache) Simulate(ctx context.Context, p sir.Parameters) (sir.TimeSeries, error) {
	return c.lookup(plainKey(p), func() (sir.TimeSeries, error) {
		return c.inner.Simulate(ctx, p)
	})
}

func (c *Cache) SimulateIntervention(ctx context.Context, p sir.InterventionParameters) (sir.TimeSeries, error) {
	return c.lookup(interventionKey(p), func() (sir.TimeSeries, error) {
		return c.inner.SimulateIntervention(ctx, p)
	})
}

func (c *Cache) lookup(key string, run func() (sir.TimeSeries, error)) (sir.TimeSeries, error) {
	c.mu.Lock()
	if ts, ok := c.runs[key]; ok {
		c.mu.Unlock()
		return ts.Clone(), nil
	}
	c.mu.Unlock()

	ts, err := run()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.runs[key] = ts.Clone()
	c.mu.Unlock()
	return ts, nil
}

func plainKey(p sir.Parameters) string {
	return fmt.Sprintf("sir|n=%g|i0=%g|r0=%g|beta=%g|gamma=%g|steps=%d",
		p.Population, p.InitialInfectious, p.InitialRecovered,
		p.TransmissionRate, p.RecoveryRate, p.Timesteps)
}

func interventionKey(p sir.InterventionParameters) string {
	return fmt.Sprintf("sir-intervention|n=%g|i0=%g|r0=%g|before=%g|after=%g|gamma=%g|at=%d|steps=%d",
		p.Population, p.InitialInfectious, p.InitialRecovered,
		p.TransmissionBefore, p.TransmissionAfter, p.RecoveryRate,
		p.InterventionTime, p.Timesteps)
}
