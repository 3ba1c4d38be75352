package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/episim/episim/internal/sir"
)

func sampleSeries() sir.TimeSeries {
	return sir.TimeSeries{
		{Time: 1, Susceptible: 990, Infectious: 10, Recovered: 0},
		{Time: 2, Susceptible: 987.03, Infectious: 11.97, Recovered: 1},
		{Time: 3, Susceptible: 983.5, Infectious: 14.3, Recovered: 2.2},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleSeries()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "time,susceptible,infectious,recovered" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "1,990.000000,10.000000,0.000000" {
		t.Errorf("unexpected first row: %s", lines[1])
	}
}

func TestReadCSVRoundTrip(t *testing.T) {
	ts := sampleSeries()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ts); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if len(got) != len(ts) {
		t.Fatalf("expected %d records, got %d", len(ts), len(got))
	}
	for i := range got {
		if got[i].Time != ts[i].Time {
			t.Errorf("record %d: time %d, want %d", i, got[i].Time, ts[i].Time)
		}
		if got[i].Infectious != ts[i].Infectious {
			t.Errorf("record %d: infectious %f, want %f", i, got[i].Infectious, ts[i].Infectious)
		}
	}
}

func TestReadCSVRejectsMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "t,s,i,r\n1,990,10,0\n"},
		{"missing column", "time,susceptible,infectious\n1,990,10\n"},
		{"bad value", "time,susceptible,infectious,recovered\n1,abc,10,0\n"},
		{"ragged row", "time,susceptible,infectious,recovered\n1,990,10\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tc.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestChartSVG(t *testing.T) {
	svg := ChartSVG(sampleSeries(), 640, 360, 0)

	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("missing XML prolog")
	}
	for _, color := range []string{"#1f77b4", "#d62728", "#2ca02c"} {
		if strings.Count(svg, color) != 2 {
			t.Errorf("expected path and legend entry for %s", color)
		}
	}
	if strings.Contains(svg, "stroke-dasharray") {
		t.Error("unexpected intervention marker")
	}
}

func TestChartSVGInterventionMarker(t *testing.T) {
	svg := ChartSVG(sampleSeries(), 640, 360, 2)
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("expected dashed intervention marker")
	}

	svg = ChartSVG(sampleSeries(), 640, 360, 99)
	if strings.Contains(svg, "stroke-dasharray") {
		t.Error("marker outside the time range should be omitted")
	}
}

func TestChartSVGShortSeries(t *testing.T) {
	if got := ChartSVG(sir.TimeSeries{{Time: 1}}, 640, 360, 0); got != "" {
		t.Errorf("expected empty output for single-point series, got %d bytes", len(got))
	}
}
