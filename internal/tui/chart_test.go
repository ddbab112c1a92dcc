package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWeightChart_EmptyHistory(t *testing.T) {
	out := renderWeightChart(nil, 60)
	assert.Equal(t, "No weigh-ins recorded yet. Press w to add the first one.", out)
}

func TestRenderWeightChart_MarksTarget(t *testing.T) {
	entries := []models.WeightEntry{
		{LogDate: "2026-08-01", WeightKg: 70},
		{LogDate: "2026-08-15", WeightKg: 68},
	}

	out := renderWeightChart(entries, 60)

	assert.Contains(t, out, "2026-08-01   70.0")
	assert.Contains(t, out, "2026-08-15   68.0")
	assert.Contains(t, out, "┊ marks the target of 60.0 kg")

	// every bar line carries the target column
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "2026-") {
			assert.Contains(t, line, string(chartTarget))
		}
	}
}

func TestRenderWeightChart_NoTargetFooterWithoutTarget(t *testing.T) {
	entries := []models.WeightEntry{{LogDate: "2026-08-01", WeightKg: 70}}

	out := renderWeightChart(entries, 0)
	assert.NotContains(t, out, "marks the target")
}

func TestWeightBar_HeavierWeightFillsMore(t *testing.T) {
	low := strings.Count(weightBar(61, 59, 71, 0), string(chartFilled))
	high := strings.Count(weightBar(69, 59, 71, 0), string(chartFilled))
	assert.Greater(t, high, low)
}

func TestWeightBar_TargetStampClampsToWidth(t *testing.T) {
	// target sits at the upper bound, which scales past the last column
	bar := []rune(weightBar(60, 59, 61, 61))
	require.Len(t, bar, chartBarWidth)
	assert.Equal(t, chartTarget, bar[chartBarWidth-1])
}

func TestScaleToChart(t *testing.T) {
	assert.Equal(t, 0, scaleToChart(59, 59, 71))
	assert.Equal(t, chartBarWidth, scaleToChart(71, 59, 71))
	assert.Equal(t, chartBarWidth/2, scaleToChart(65, 65, 65), "degenerate range lands mid-chart")
	assert.Equal(t, 0, scaleToChart(40, 59, 71), "below the range clamps to zero")
	assert.Equal(t, chartBarWidth, scaleToChart(99, 59, 71), "above the range clamps to full")
}

func TestWeightDelta(t *testing.T) {
	assert.Zero(t, weightDelta(nil))
	assert.Zero(t, weightDelta([]models.WeightEntry{{WeightKg: 70}}))

	entries := []models.WeightEntry{
		{LogDate: "2026-08-01", WeightKg: 70},
		{LogDate: "2026-08-10", WeightKg: 69.2},
		{LogDate: "2026-08-20", WeightKg: 68.5},
	}
	assert.InDelta(t, -1.5, weightDelta(entries), 1e-9)
}

func TestRenderConsistencyBars_TrailingWeek(t *testing.T) {
	today := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	days := []models.DailyCompletion{
		{Date: "2026-08-24", Completed: 3},
		{Date: "2026-08-25", Completed: 1},
	}

	out := renderConsistencyBars(days, today)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)

	assert.Contains(t, lines[0], "08-19")
	assert.Contains(t, lines[6], "08-25")

	assert.Contains(t, lines[5], "▇▇▇ 3")
	assert.Contains(t, lines[6], "▇ 1")

	// days without completed work render a dot
	assert.Contains(t, lines[4], "·")
}

func TestRenderConsistencyBars_CapsLongBars(t *testing.T) {
	today := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	days := []models.DailyCompletion{{Date: "2026-08-25", Completed: 25}}

	lines := strings.Split(renderConsistencyBars(days, today), "\n")
	require.Len(t, lines, 7)

	assert.Equal(t, 20, strings.Count(lines[6], string(consistencyBar)))
	assert.Contains(t, lines[6], " 25", "the real count still shows after the capped bar")
}
