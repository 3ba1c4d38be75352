package export

import (
	"fmt"
	"strings"

	"github.com/episim/episim/internal/sir"
)

var chartSeries = []struct {
	label  string
	color  string
	values func(sir.TimeSeries) []float64
}{
	{"susceptible", "#1f77b4", sir.TimeSeries.Susceptible},
	{"infectious", "#d62728", sir.TimeSeries.Infectious},
	{"recovered", "#2ca02c", sir.TimeSeries.Recovered},
}

// ChartSVG renders the three compartment curves as an SVG line chart on
// a shared y scale. A markTime inside the run's time range is drawn as a
// dashed vertical line (the intervention day); pass 0 for none.
func ChartSVG(ts sir.TimeSeries, width, height, markTime int) string {
	if len(ts) < 2 {
		return ""
	}

	minY, maxY := ts[0].Susceptible, ts[0].Susceptible
	for _, series := range chartSeries {
		for _, v := range series.values(ts) {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	minX := float64(ts[0].Time)
	rangeX := float64(ts[len(ts)-1].Time) - minX
	if rangeX == 0 {
		rangeX = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if markTime > 0 && float64(markTime) >= minX && float64(markTime) <= minX+rangeX {
		x := (float64(markTime) - minX) / rangeX * float64(width)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#888888" stroke-width="1" stroke-dasharray="4 3"/>
`, x, x, height))
	}

	for _, series := range chartSeries {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, series.color))
		for i, v := range series.values(ts) {
			x := (float64(ts[i].Time) - minX) / rangeX * float64(width)
			y := float64(height) - (v-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for i, series := range chartSeries {
		sb.WriteString(fmt.Sprintf(`<text x="10" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>`+"\n",
			16+i*14, series.color, series.label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
