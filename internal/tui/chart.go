package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/levelup-fitness/models"
)

const (
	chartBarWidth = 32

	chartFilled    = '█'
	chartEmpty     = '░'
	chartTarget    = '┊'
	consistencyBar = '▇'
)

// renderWeightChart draws one bar per weigh-in, scaled across the span of
// the series plus the target weight. The target column is marked on every
// bar so progress toward it reads at a glance.
func renderWeightChart(entries []models.WeightEntry, targetKg float64) string {
	if len(entries) == 0 {
		return "No weigh-ins recorded yet. Press w to add the first one."
	}

	lo, hi := entries[0].WeightKg, entries[0].WeightKg
	for _, e := range entries {
		lo = math.Min(lo, e.WeightKg)
		hi = math.Max(hi, e.WeightKg)
	}
	if targetKg > 0 {
		lo = math.Min(lo, targetKg)
		hi = math.Max(hi, targetKg)
	}
	lo, hi = lo-1, hi+1

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(e.LogDate)
		b.WriteString(fmt.Sprintf("  %5.1f  ", e.WeightKg))
		b.WriteString(weightBar(e.WeightKg, lo, hi, targetKg))
	}
	if targetKg > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%c marks the target of %.1f kg", chartTarget, targetKg))
	}
	return b.String()
}

// weightBar renders a single scaled bar with the target column marked.
func weightBar(value, lo, hi, targetKg float64) string {
	bar := make([]rune, chartBarWidth)
	filled := scaleToChart(value, lo, hi)
	for i := range bar {
		if i < filled {
			bar[i] = chartFilled
		} else {
			bar[i] = chartEmpty
		}
	}
	if targetKg > 0 {
		pos := scaleToChart(targetKg, lo, hi)
		if pos >= chartBarWidth {
			pos = chartBarWidth - 1
		}
		bar[pos] = chartTarget
	}
	return string(bar)
}

// scaleToChart maps a weight onto a column count within the chart width.
func scaleToChart(value, lo, hi float64) int {
	if hi <= lo {
		return chartBarWidth / 2
	}
	n := int(math.Round((value - lo) / (hi - lo) * float64(chartBarWidth)))
	if n < 0 {
		n = 0
	}
	if n > chartBarWidth {
		n = chartBarWidth
	}
	return n
}

// weightDelta is the movement across the whole series: last minus first.
// Negative means weight lost.
func weightDelta(entries []models.WeightEntry) float64 {
	if len(entries) < 2 {
		return 0
	}
	return entries[len(entries)-1].WeightKg - entries[0].WeightKg
}

// renderConsistencyBars shows completed exercises per day for the trailing
// week ending at today. Days without completed work render a dot, so gaps
// stand out.
func renderConsistencyBars(days []models.DailyCompletion, today time.Time) string {
	completed := make(map[string]int, len(days))
	for _, d := range days {
		completed[d.Date] = d.Completed
	}

	var b strings.Builder
	for offset := 6; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		date := day.Format(models.DateLayout)
		if offset != 6 {
			b.WriteString("\n")
		}
		b.WriteString(day.Format("Mon "))
		// trim the year, keep MM-DD
		b.WriteString(date[5:])
		b.WriteString("  ")

		count := completed[date]
		if count == 0 {
			b.WriteString("·")
			continue
		}
		n := count
		if n > 20 {
			n = 20
		}
		b.WriteString(strings.Repeat(string(consistencyBar), n))
		b.WriteString(fmt.Sprintf(" %d", count))
	}
	return b.String()
}
