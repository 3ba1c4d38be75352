package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/episim/episim/internal/export"
	"github.com/episim/episim/internal/sir"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	Timestamp time.Time   `json:"timestamp"`
	Params    RunParams   `json:"params"`
	Summary   sir.Summary `json:"summary"`
}

// RunParams records the inputs of a saved run. TransmissionAfter and
// InterventionTime only carry meaning when Intervention is true.
type RunParams struct {
	Population        float64 `json:"population"`
	InitialInfectious float64 `json:"initial_infectious"`
	InitialRecovered  float64 `json:"initial_recovered"`
	TransmissionRate  float64 `json:"transmission_rate"`
	RecoveryRate      float64 `json:"recovery_rate"`
	Timesteps         int     `json:"timesteps"`
	Intervention      bool    `json:"intervention"`
	InterventionTime  int     `json:"intervention_time"`
	TransmissionAfter float64 `json:"transmission_after"`
}

func (s *Store) Save(label string, params RunParams, summary sir.Summary, series sir.TimeSeries) (string, error) {
	runID := fmt.Sprintf("%s_%d", label, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Label:     label,
		Timestamp: time.Now(),
		Params:    params,
		Summary:   summary,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := export.WriteCSV(csvFile, series); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(runID string) (sir.TimeSeries, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return export.ReadCSV(file)
}
