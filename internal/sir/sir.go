package sir

import "fmt"

// Simulate advances the three compartments over p.Timesteps unit steps
// and returns one record per step, time-labeled 1..Timesteps.
func Simulate(p Parameters) (TimeSeries, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return integrate(p, func(int) float64 { return p.TransmissionRate }), nil
}

// SimulateWithIntervention runs the same scheme with a transmission rate
// that switches at InterventionTime. An intervention time at or below 0
// puts the whole run on the after rate; one at or beyond Timesteps-1
// leaves the whole run on the before rate.
func SimulateWithIntervention(p InterventionParameters) (TimeSeries, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return integrate(p.Baseline(), func(t int) float64 {
		if t < p.InterventionTime {
			return p.TransmissionBefore
		}
		return p.TransmissionAfter
	}), nil
}

// integrate is the shared forward-Euler loop. betaAt supplies the
// transmission rate for each internal step index.
func integrate(p Parameters, betaAt func(t int) float64) TimeSeries {
	n := p.Timesteps
	s := make([]float64, n)
	i := make([]float64, n)
	r := make([]float64, n)

	s[0] = p.Population - p.InitialInfectious - p.InitialRecovered
	i[0] = p.InitialInfectious
	r[0] = p.InitialRecovered

	for t := 0; t < n-1; t++ {
		newInfections := betaAt(t) * s[t] * i[t] / p.Population
		newRecoveries := p.RecoveryRate * i[t]

		s[t+1] = s[t] - newInfections
		i[t+1] = i[t] + newInfections - newRecoveries
		r[t+1] = r[t] + newRecoveries
	}

	ts := make(TimeSeries, n)
	for t := 0; t < n; t++ {
		ts[t] = Point{Time: t + 1, Susceptible: s[t], Infectious: i[t], Recovered: r[t]}
	}
	return ts
}

// Validate rejects parameter sets that cannot produce a meaningful run.
// A non-positive population is deliberately not rejected; see the
// package documentation.
func (p Parameters) Validate() error {
	if p.Timesteps < 1 {
		return fmt.Errorf("%w: timesteps must be at least 1, got %d", ErrInvalidParameters, p.Timesteps)
	}
	if p.TransmissionRate < 0 {
		return fmt.Errorf("%w: transmission rate must be non-negative, got %f", ErrInvalidParameters, p.TransmissionRate)
	}
	if p.RecoveryRate < 0 {
		return fmt.Errorf("%w: recovery rate must be non-negative, got %f", ErrInvalidParameters, p.RecoveryRate)
	}
	if p.InitialInfectious < 0 {
		return fmt.Errorf("%w: initial infectious must be non-negative, got %f", ErrInvalidParameters, p.InitialInfectious)
	}
	if p.InitialRecovered < 0 {
		return fmt.Errorf("%w: initial recovered must be non-negative, got %f", ErrInvalidParameters, p.InitialRecovered)
	}
	if p.Population > 0 {
		if p.InitialInfectious > p.Population {
			return fmt.Errorf("%w: initial infectious %f exceeds population %f", ErrInvalidParameters, p.InitialInfectious, p.Population)
		}
		if p.InitialRecovered > p.Population {
			return fmt.Errorf("%w: initial recovered %f exceeds population %f", ErrInvalidParameters, p.InitialRecovered, p.Population)
		}
	}
	return nil
}

func (p InterventionParameters) Validate() error {
	if err := p.Baseline().Validate(); err != nil {
		return err
	}
	if p.TransmissionAfter < 0 {
		return fmt.Errorf("%w: post-intervention transmission rate must be non-negative, got %f", ErrInvalidParameters, p.TransmissionAfter)
	}
	return nil
}
