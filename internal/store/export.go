package store

import (
	"encoding/json"
	"io"

	"github.com/episim/episim/internal/sir"
)

// ExportData is the self-contained JSON document for a saved run,
// suitable for loading into notebooks or plotting tools.
type ExportData struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Params  RunParams      `json:"params"`
	Summary sir.Summary    `json:"summary"`
	Steps   int            `json:"steps"`
	Series  sir.TimeSeries `json:"series"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, series sir.TimeSeries) error {
	data := ExportData{
		ID:      meta.ID,
		Label:   meta.Label,
		Params:  meta.Params,
		Summary: meta.Summary,
		Steps:   len(series),
		Series:  series,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (s *Store) Export(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}
	return ExportJSON(w, meta, series)
}
