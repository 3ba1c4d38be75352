package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/episim/episim/internal/sir"
)

var columns = []string{"time", "susceptible", "infectious", "recovered"}

// WriteCSV emits a trajectory as one header row plus one row per time
// step, suitable for spreadsheets and for the external solver protocol.
func WriteCSV(w io.Writer, ts sir.TimeSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, p := range ts {
		row := []string{
			strconv.Itoa(p.Time),
			strconv.FormatFloat(p.Susceptible, 'f', 6, 64),
			strconv.FormatFloat(p.Infectious, 'f', 6, 64),
			strconv.FormatFloat(p.Recovered, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the format produced by WriteCSV. The header must match
// exactly; every row must parse.
func ReadCSV(r io.Reader) (sir.TimeSeries, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header := records[0]
	if len(header) != len(columns) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(columns), len(header))
	}
	for i, name := range columns {
		if header[i] != name {
			return nil, fmt.Errorf("column %d is %q, want %q", i, header[i], name)
		}
	}

	ts := make(sir.TimeSeries, 0, len(records)-1)
	for i, rec := range records[1:] {
		tv, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad time %q", i+1, rec[0])
		}
		vals := make([]float64, 3)
		for j := range vals {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad %s value %q", i+1, columns[j+1], rec[j+1])
			}
			vals[j] = v
		}
		ts = append(ts, sir.Point{
			Time:        int(tv),
			Susceptible: vals[0],
			Infectious:  vals[1],
			Recovered:   vals[2],
		})
	}
	return ts, nil
}
