package sir

// Summary holds the derived metrics of one trajectory.
type Summary struct {
	PeakInfectious float64 `json:"peak_infectious"`
	TimeToPeak     int     `json:"time_to_peak"`
	FinalRecovered float64 `json:"final_recovered"`
	AttackRate     float64 `json:"attack_rate"`
}

// Summarize scans a trajectory for its peak infectious value (first
// occurrence on ties), the time label of that peak, the final recovered
// count, and the attack rate relative to population.
func Summarize(ts TimeSeries, population float64) Summary {
	if len(ts) == 0 {
		return Summary{}
	}
	peak := ts[0].Infectious
	peakTime := ts[0].Time
	for _, p := range ts[1:] {
		if p.Infectious > peak {
			peak = p.Infectious
			peakTime = p.Time
		}
	}
	final := ts[len(ts)-1].Recovered
	return Summary{
		PeakInfectious: peak,
		TimeToPeak:     peakTime,
		FinalRecovered: final,
		AttackRate:     final / population,
	}
}

// CasesPrevented is the drop in total infections between a baseline run
// and an intervention run.
func CasesPrevented(baseline, intervened Summary) float64 {
	return baseline.FinalRecovered - intervened.FinalRecovered
}

// PercentReduction expresses CasesPrevented as a percentage of the
// baseline total, or 0 when the baseline saw no infections.
func PercentReduction(baseline, intervened Summary) float64 {
	if baseline.FinalRecovered == 0 {
		return 0
	}
	return CasesPrevented(baseline, intervened) / baseline.FinalRecovered * 100
}

// BasicReproduction returns R0 = beta/gamma.
func BasicReproduction(beta, gamma float64) float64 {
	return beta / gamma
}
