package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/episim/episim/internal/export"
	"github.com/episim/episim/internal/sir"
)

// DefaultSolver is the command name probed for on PATH when no explicit
// solver is configured.
const DefaultSolver = "episim-solver"

// External delegates a run to a solver process. The parameter record is
// written to the solver's stdin as JSON and the trajectory is read back
// from its stdout in the CSV format of [export.ReadCSV].
type External struct {
	command string
}

func NewExternal(command string) *External {
	if command == "" {
		command = DefaultSolver
	}
	return &External{command: command}
}

func (e *External) Name() string { return "external" }

func (e *External) Available() bool {
	_, err := exec.LookPath(e.command)
	return err == nil
}

type plainRequest struct {
	Op                string  `json:"op"`
	Population        float64 `json:"population"`
	InitialInfectious float64 `json:"initial_infectious"`
	InitialRecovered  float64 `json:"initial_recovered"`
	TransmissionRate  float64 `json:"transmission_rate"`
	RecoveryRate      float64 `json:"recovery_rate"`
	Timesteps         int     `json:"timesteps"`
}

type interventionRequest struct {
	Op                 string  `json:"op"`
	Population         float64 `json:"population"`
	InitialInfectious  float64 `json:"initial_infectious"`
	InitialRecovered   float64 `json:"initial_recovered"`
	TransmissionBefore float64 `json:"transmission_before"`
	TransmissionAfter  float64 `json:"transmission_after"`
	RecoveryRate       float64 `json:"recovery_rate"`
	InterventionTime   int     `json:"intervention_time"`
	Timesteps          int     `json:"timesteps"`
}

func (e *External) Simulate(ctx context.Context, p sir.Parameters) (sir.TimeSeries, error) {
	return e.run(ctx, plainRequest{
		Op:                "simulate",
		Population:        p.Population,
		InitialInfectious: p.InitialInfectious,
		InitialRecovered:  p.InitialRecovered,
		TransmissionRate:  p.TransmissionRate,
		RecoveryRate:      p.RecoveryRate,
		Timesteps:         p.Timesteps,
	}, p.Timesteps)
}

func (e *External) SimulateIntervention(ctx context.Context, p sir.InterventionParameters) (sir.TimeSeries, error) {
	return e.run(ctx, interventionRequest{
		Op:                 "simulate_intervention",
		Population:         p.Population,
		InitialInfectious:  p.InitialInfectious,
		InitialRecovered:   p.InitialRecovered,
		TransmissionBefore: p.TransmissionBefore,
		TransmissionAfter:  p.TransmissionAfter,
		RecoveryRate:       p.RecoveryRate,
		InterventionTime:   p.InterventionTime,
		Timesteps:          p.Timesteps,
	}, p.Timesteps)
}

func (e *External) run(ctx context.Context, req any, wantSteps int) (sir.TimeSeries, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, e.command)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", e.command, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", e.command, err)
	}

	ts, err := export.ReadCSV(&stdout)
	if err != nil {
		return nil, fmt.Errorf("%s output: %w", e.command, err)
	}
	if len(ts) != wantSteps {
		return nil, fmt.Errorf("%s output: %d records, want %d", e.command, len(ts), wantSteps)
	}
	return ts, nil
}
