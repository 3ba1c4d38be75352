package sir

// Parameters describes a single-regime run. The derived initial
// susceptible count is Population - InitialInfectious - InitialRecovered.
type Parameters struct {
	Population        float64
	InitialInfectious float64
	InitialRecovered  float64
	TransmissionRate  float64
	RecoveryRate      float64
	Timesteps         int
}

// InterventionParameters describes a run whose transmission rate switches
// from TransmissionBefore to TransmissionAfter at step InterventionTime.
type InterventionParameters struct {
	Population         float64
	InitialInfectious  float64
	InitialRecovered   float64
	TransmissionBefore float64
	TransmissionAfter  float64
	RecoveryRate       float64
	InterventionTime   int
	Timesteps          int
}

// Baseline returns the equivalent no-intervention parameter set, running
// on the pre-intervention rate throughout.
func (p InterventionParameters) Baseline() Parameters {
	return Parameters{
		Population:        p.Population,
		InitialInfectious: p.InitialInfectious,
		InitialRecovered:  p.InitialRecovered,
		TransmissionRate:  p.TransmissionBefore,
		RecoveryRate:      p.RecoveryRate,
		Timesteps:         p.Timesteps,
	}
}

// Point is one record of a trajectory. Time labels start at 1; the first
// record carries the initial state.
type Point struct {
	Time        int     `json:"time"`
	Susceptible float64 `json:"susceptible"`
	Infectious  float64 `json:"infectious"`
	Recovered   float64 `json:"recovered"`
}

type TimeSeries []Point

func (ts TimeSeries) Clone() TimeSeries {
	c := make(TimeSeries, len(ts))
	copy(c, ts)
	return c
}

func (ts TimeSeries) Susceptible() []float64 {
	vals := make([]float64, len(ts))
	for i, p := range ts {
		vals[i] = p.Susceptible
	}
	return vals
}

func (ts TimeSeries) Infectious() []float64 {
	vals := make([]float64, len(ts))
	for i, p := range ts {
		vals[i] = p.Infectious
	}
	return vals
}

func (ts TimeSeries) Recovered() []float64 {
	vals := make([]float64, len(ts))
	for i, p := range ts {
		vals[i] = p.Recovered
	}
	return vals
}
