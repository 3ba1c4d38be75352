package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/episim/episim/internal/sir"
)

const (
	DefaultPopulation        = 1000.0
	DefaultInitialInfectious = 1.0
	DefaultInitialRecovered  = 0.0
	DefaultTransmissionRate  = 0.3
	DefaultRecoveryRate      = 0.1
	DefaultTimesteps         = 160
	DefaultInterventionTime  = 40
	DefaultTransmissionAfter = 0.15
)

type Config struct {
	Population        float64            `yaml:"population"`
	InitialInfectious float64            `yaml:"initial_infectious"`
	InitialRecovered  float64            `yaml:"initial_recovered"`
	TransmissionRate  float64            `yaml:"transmission_rate"`
	RecoveryRate      float64            `yaml:"recovery_rate"`
	Timesteps         int                `yaml:"timesteps"`
	Intervention      InterventionConfig `yaml:"intervention"`
	Engine            EngineConfig       `yaml:"engine"`
}

type InterventionConfig struct {
	Enabled           bool    `yaml:"enabled"`
	Time              int     `yaml:"time"`
	TransmissionAfter float64 `yaml:"transmission_after"`
}

type EngineConfig struct {
	Order  []string `yaml:"order"`
	Solver string   `yaml:"solver"`
}

func DefaultConfig() *Config {
	return &Config{
		Population:        DefaultPopulation,
		InitialInfectious: DefaultInitialInfectious,
		InitialRecovered:  DefaultInitialRecovered,
		TransmissionRate:  DefaultTransmissionRate,
		RecoveryRate:      DefaultRecoveryRate,
		Timesteps:         DefaultTimesteps,
		Intervention: InterventionConfig{
			Time:              DefaultInterventionTime,
			TransmissionAfter: DefaultTransmissionAfter,
		},
		Engine: EngineConfig{
			Order:  []string{"native"},
			Solver: "episim-solver",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate enforces the dashboard's sanity bounds. These are stricter
// than what the solver itself accepts; they keep interactive runs in the
// regime the unit-step scheme handles well.
func (c *Config) Validate() error {
	if c.Population < 100 || c.Population > 10000 {
		return fmt.Errorf("population must be in [100, 10000], got %g", c.Population)
	}
	if c.InitialInfectious < 1 || c.InitialInfectious > 100 {
		return fmt.Errorf("initial infectious must be in [1, 100], got %g", c.InitialInfectious)
	}
	if c.InitialRecovered < 0 || c.InitialRecovered > 100 {
		return fmt.Errorf("initial recovered must be in [0, 100], got %g", c.InitialRecovered)
	}
	if c.TransmissionRate < 0 || c.TransmissionRate > 1 {
		return fmt.Errorf("transmission rate must be in [0, 1], got %g", c.TransmissionRate)
	}
	if c.RecoveryRate < 0 || c.RecoveryRate > 1 {
		return fmt.Errorf("recovery rate must be in [0, 1], got %g", c.RecoveryRate)
	}
	if c.Timesteps < 50 || c.Timesteps > 300 {
		return fmt.Errorf("timesteps must be in [50, 300], got %d", c.Timesteps)
	}
	if c.Intervention.Enabled {
		if c.Intervention.Time < 1 || c.Intervention.Time > c.Timesteps-1 {
			return fmt.Errorf("intervention time must be in [1, %d], got %d", c.Timesteps-1, c.Intervention.Time)
		}
		if c.Intervention.TransmissionAfter < 0 || c.Intervention.TransmissionAfter > 1 {
			return fmt.Errorf("post-intervention transmission rate must be in [0, 1], got %g", c.Intervention.TransmissionAfter)
		}
	}
	return nil
}

func (c *Config) Parameters() sir.Parameters {
	return sir.Parameters{
		Population:        c.Population,
		InitialInfectious: c.InitialInfectious,
		InitialRecovered:  c.InitialRecovered,
		TransmissionRate:  c.TransmissionRate,
		RecoveryRate:      c.RecoveryRate,
		Timesteps:         c.Timesteps,
	}
}

func (c *Config) InterventionParameters() sir.InterventionParameters {
	return sir.InterventionParameters{
		Population:         c.Population,
		InitialInfectious:  c.InitialInfectious,
		InitialRecovered:   c.InitialRecovered,
		TransmissionBefore: c.TransmissionRate,
		TransmissionAfter:  c.Intervention.TransmissionAfter,
		RecoveryRate:       c.RecoveryRate,
		InterventionTime:   c.Intervention.Time,
		Timesteps:          c.Timesteps,
	}
}
