package scenario

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/episim/episim/internal/config"
	"github.com/episim/episim/internal/engine"
	"github.com/episim/episim/internal/sir"
	"github.com/episim/episim/internal/store"
)

// Scenario defines a scripted batch of simulation runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Runs        []Run  `yaml:"runs"`
}

// Run is a single labeled run in a scenario.
type Run struct {
	Label             string                    `yaml:"label"`
	Population        float64                   `yaml:"population"`
	InitialInfectious float64                   `yaml:"initial_infectious"`
	InitialRecovered  float64                   `yaml:"initial_recovered"`
	TransmissionRate  float64                   `yaml:"transmission_rate"`
	RecoveryRate      float64                   `yaml:"recovery_rate"`
	Timesteps         int                       `yaml:"timesteps"`
	Intervention      config.InterventionConfig `yaml:"intervention"`
}

func (r Run) config() *config.Config {
	return &config.Config{
		Population:        r.Population,
		InitialInfectious: r.InitialInfectious,
		InitialRecovered:  r.InitialRecovered,
		TransmissionRate:  r.TransmissionRate,
		RecoveryRate:      r.RecoveryRate,
		Timesteps:         r.Timesteps,
		Intervention:      r.Intervention,
	}
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if len(sc.Runs) == 0 {
		return nil, fmt.Errorf("scenario has no runs: %s", path)
	}

	return &sc, nil
}

// Result holds the outcome of one scenario run.
type Result struct {
	Label   string
	RunID   string
	Series  sir.TimeSeries
	Summary sir.Summary
}

// RunScenario executes all runs in order. When st is non-nil each run is
// saved under its label and the returned results carry run ids.
func RunScenario(ctx context.Context, sc *Scenario, eng engine.Engine, st *store.Store) ([]Result, error) {
	results := make([]Result, 0, len(sc.Runs))

	for i, run := range sc.Runs {
		label := run.Label
		if label == "" {
			label = fmt.Sprintf("run%d", i+1)
		}
		logrus.Infof("scenario run %d/%d: %s", i+1, len(sc.Runs), label)

		cfg := run.config()
		if err := cfg.Validate(); err != nil {
			return results, fmt.Errorf("run %d (%s): %w", i+1, label, err)
		}

		series, err := simulate(ctx, eng, cfg)
		if err != nil {
			return results, fmt.Errorf("run %d (%s): %w", i+1, label, err)
		}

		res := Result{
			Label:   label,
			Series:  series,
			Summary: sir.Summarize(series, cfg.Population),
		}

		if st != nil {
			runID, err := st.Save(label, storeParams(cfg), res.Summary, series)
			if err != nil {
				return results, fmt.Errorf("run %d (%s): save: %w", i+1, label, err)
			}
			res.RunID = runID
		}

		results = append(results, res)
	}

	return results, nil
}

// ParameterSweep runs simulations across an evenly spaced range of one
// parameter, holding the rest of the base configuration fixed.
type ParameterSweep struct {
	Param  string
	Min    float64
	Max    float64
	Points int
	Base   config.Config
}

// SweepPoint holds the summary for one swept value.
type SweepPoint struct {
	Value   float64
	Summary sir.Summary
}

// RunSweep executes the sweep, one simulation per point. Points run
// concurrently; the first failure aborts the whole sweep.
func RunSweep(ctx context.Context, sweep *ParameterSweep, eng engine.Engine) ([]SweepPoint, error) {
	if sweep.Points < 1 {
		return nil, fmt.Errorf("sweep needs at least one point, got %d", sweep.Points)
	}

	points := make([]SweepPoint, sweep.Points)
	errs := make([]error, sweep.Points)

	var wg sync.WaitGroup
	for i := 0; i < sweep.Points; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			value := sweep.Min
			if sweep.Points > 1 {
				value += (sweep.Max - sweep.Min) * float64(idx) / float64(sweep.Points-1)
			}

			cfg := sweep.Base
			if err := applyParam(&cfg, sweep.Param, value); err != nil {
				errs[idx] = err
				return
			}
			if err := cfg.Validate(); err != nil {
				errs[idx] = fmt.Errorf("%s=%g: %w", sweep.Param, value, err)
				return
			}

			series, err := simulate(ctx, eng, &cfg)
			if err != nil {
				errs[idx] = fmt.Errorf("%s=%g: %w", sweep.Param, value, err)
				return
			}
			points[idx] = SweepPoint{Value: value, Summary: sir.Summarize(series, cfg.Population)}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return points, nil
}

func simulate(ctx context.Context, eng engine.Engine, cfg *config.Config) (sir.TimeSeries, error) {
	if cfg.Intervention.Enabled {
		return eng.SimulateIntervention(ctx, cfg.InterventionParameters())
	}
	return eng.Simulate(ctx, cfg.Parameters())
}

func applyParam(cfg *config.Config, name string, value float64) error {
	switch name {
	case "beta":
		cfg.TransmissionRate = value
	case "gamma":
		cfg.RecoveryRate = value
	case "beta-after":
		cfg.Intervention.TransmissionAfter = value
	case "day":
		cfg.Intervention.Time = int(value)
	case "infectious":
		cfg.InitialInfectious = value
	case "population":
		cfg.Population = value
	default:
		return fmt.Errorf("unknown sweep parameter: %s (available: beta, gamma, beta-after, day, infectious, population)", name)
	}
	return nil
}

func storeParams(cfg *config.Config) store.RunParams {
	return store.RunParams{
		Population:        cfg.Population,
		InitialInfectious: cfg.InitialInfectious,
		InitialRecovered:  cfg.InitialRecovered,
		TransmissionRate:  cfg.TransmissionRate,
		RecoveryRate:      cfg.RecoveryRate,
		Timesteps:         cfg.Timesteps,
		Intervention:      cfg.Intervention.Enabled,
		InterventionTime:  cfg.Intervention.Time,
		TransmissionAfter: cfg.Intervention.TransmissionAfter,
	}
}
