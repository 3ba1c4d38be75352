package scenario

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/episim/episim/internal/config"
	"github.com/episim/episim/internal/engine"
	"github.com/episim/episim/internal/store"
)

const scenarioYAML = `name: distancing study
description: baseline vs early distancing
runs:
  - label: baseline
    population: 1000
    initial_infectious: 1
    transmission_rate: 0.3
    recovery_rate: 0.1
    timesteps: 160
  - label: distancing
    population: 1000
    initial_infectious: 1
    transmission_rate: 0.3
    recovery_rate: 0.1
    timesteps: 160
    intervention:
      enabled: true
      time: 30
      transmission_after: 0.05
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t))
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}

	if sc.Name != "distancing study" {
		t.Errorf("Name = %q, want %q", sc.Name, "distancing study")
	}
	if len(sc.Runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(sc.Runs))
	}
	if sc.Runs[0].Intervention.Enabled {
		t.Error("baseline run should not have intervention enabled")
	}
	if !sc.Runs[1].Intervention.Enabled {
		t.Error("distancing run should have intervention enabled")
	}
	if sc.Runs[1].Intervention.Time != 30 {
		t.Errorf("intervention time = %d, want 30", sc.Runs[1].Intervention.Time)
	}
}

func TestLoadScenarioMissing(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadScenarioEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("name: hollow\n"), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	if _, err := LoadScenario(path); err == nil {
		t.Error("expected error for scenario without runs")
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t))
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}

	results, err := RunScenario(context.Background(), sc, engine.NewNative(), nil)
	if err != nil {
		t.Fatalf("RunScenario failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	for _, res := range results {
		if len(res.Series) != 160 {
			t.Errorf("%s: series length = %d, want 160", res.Label, len(res.Series))
		}
		if res.RunID != "" {
			t.Errorf("%s: run id set without a store", res.Label)
		}
	}

	// Early distancing should blunt the peak.
	if results[1].Summary.PeakInfectious >= results[0].Summary.PeakInfectious {
		t.Errorf("distancing peak %.2f not below baseline peak %.2f",
			results[1].Summary.PeakInfectious, results[0].Summary.PeakInfectious)
	}
}

func TestRunScenarioDefaultLabel(t *testing.T) {
	sc := &Scenario{Runs: []Run{{
		Population:        1000,
		InitialInfectious: 1,
		TransmissionRate:  0.3,
		RecoveryRate:      0.1,
		Timesteps:         50,
	}}}

	results, err := RunScenario(context.Background(), sc, engine.NewNative(), nil)
	if err != nil {
		t.Fatalf("RunScenario failed: %v", err)
	}
	if results[0].Label != "run1" {
		t.Errorf("Label = %q, want %q", results[0].Label, "run1")
	}
}

func TestRunScenarioSaves(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t))
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}

	st := store.New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	results, err := RunScenario(context.Background(), sc, engine.NewNative(), st)
	if err != nil {
		t.Fatalf("RunScenario failed: %v", err)
	}
	for _, res := range results {
		if res.RunID == "" {
			t.Errorf("%s: missing run id", res.Label)
		}
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("store holds %d runs, want 2", len(runs))
	}
}

func TestRunScenarioInvalid(t *testing.T) {
	sc := &Scenario{Runs: []Run{{
		Label:             "tiny",
		Population:        5,
		InitialInfectious: 1,
		TransmissionRate:  0.3,
		RecoveryRate:      0.1,
		Timesteps:         50,
	}}}

	_, err := RunScenario(context.Background(), sc, engine.NewNative(), nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "tiny") {
		t.Errorf("error %q does not name the failing run", err)
	}
}

func TestSweep(t *testing.T) {
	sweep := &ParameterSweep{
		Param:  "beta",
		Min:    0.2,
		Max:    0.4,
		Points: 3,
		Base:   *config.DefaultConfig(),
	}

	points, err := RunSweep(context.Background(), sweep, engine.NewNative())
	if err != nil {
		t.Fatalf("RunSweep failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}

	want := []float64{0.2, 0.3, 0.4}
	for i, p := range points {
		if math.Abs(p.Value-want[i]) > 1e-12 {
			t.Errorf("point %d value = %g, want %g", i, p.Value, want[i])
		}
	}

	// Higher transmission means a taller peak.
	if points[2].Summary.PeakInfectious <= points[0].Summary.PeakInfectious {
		t.Errorf("peak at beta=0.4 (%.2f) not above peak at beta=0.2 (%.2f)",
			points[2].Summary.PeakInfectious, points[0].Summary.PeakInfectious)
	}
}

func TestSweepSinglePoint(t *testing.T) {
	sweep := &ParameterSweep{
		Param:  "gamma",
		Min:    0.1,
		Max:    0.5,
		Points: 1,
		Base:   *config.DefaultConfig(),
	}

	points, err := RunSweep(context.Background(), sweep, engine.NewNative())
	if err != nil {
		t.Fatalf("RunSweep failed: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if points[0].Value != 0.1 {
		t.Errorf("single point value = %g, want 0.1", points[0].Value)
	}
}

func TestSweepUnknownParam(t *testing.T) {
	sweep := &ParameterSweep{
		Param:  "humidity",
		Min:    0,
		Max:    1,
		Points: 2,
		Base:   *config.DefaultConfig(),
	}

	if _, err := RunSweep(context.Background(), sweep, engine.NewNative()); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestSweepOutOfBounds(t *testing.T) {
	sweep := &ParameterSweep{
		Param:  "beta",
		Min:    0.5,
		Max:    1.5,
		Points: 3,
		Base:   *config.DefaultConfig(),
	}

	if _, err := RunSweep(context.Background(), sweep, engine.NewNative()); err == nil {
		t.Error("expected validation error for beta above 1")
	}
}

func TestSweepNoPoints(t *testing.T) {
	sweep := &ParameterSweep{Param: "beta", Min: 0.1, Max: 0.5, Base: *config.DefaultConfig()}
	if _, err := RunSweep(context.Background(), sweep, engine.NewNative()); err == nil {
		t.Error("expected error for zero points")
	}
}
