package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// progressPage charts the weigh-in history against the target weight and
// shows how consistently workouts were completed over the trailing week.
type progressPage struct {
	ctx      context.Context
	services *service.ClientServices
	session  *uiSession

	weights []models.WeightEntry
	summary []models.DailyCompletion
	loading bool

	adding bool
	input  textinput.Model
	saving bool

	errMsg string
	status string
}

func newProgressPage(ctx context.Context, services *service.ClientServices, session *uiSession) *progressPage {
	return &progressPage{
		ctx:      ctx,
		services: services,
		session:  session,
	}
}

// Init implements [tea.Model]. Loads the weight history and the weekly
// completion summary in parallel on every entry.
func (m *progressPage) Init() tea.Cmd {
	m.loading = true
	m.adding = false
	m.errMsg = ""
	return tea.Batch(m.cmdLoadWeights(), m.cmdLoadSummary())
}

func (m *progressPage) capturingInput() bool {
	return m.adding
}

// Update implements [tea.Model]. Handled messages:
//   - [weightsLoadedMsg] — fills the chart series.
//   - [summaryLoadedMsg] — fills the consistency bars.
//   - [weightAddedMsg]   — confirms the weigh-in and refreshes the chart.
//   - w                  — open the weigh-in input.
//   - enter              — submit the weigh-in.
//   - esc                — cancel the weigh-in input.
func (m *progressPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case weightsLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.weights = result.entries
		return m, nil

	case summaryLoadedMsg:
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.summary = result.days
		return m, nil

	case weightAddedMsg:
		m.saving = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.adding = false
		m.status = fmt.Sprintf("Weigh-in recorded: %.1f kg", result.entry.WeightKg)
		return m, m.cmdLoadWeights()

	case statusMsg:
		m.status = result.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.adding {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.adding = false
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.saving {
				return m, nil
			}
			raw := strings.TrimSpace(m.input.Value())
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v < models.ProfileWeightMinKg || v > models.ProfileWeightMaxKg {
				m.errMsg = fmt.Sprintf("Weight must be between %.0f and %.0f kg", models.ProfileWeightMinKg, models.ProfileWeightMaxKg)
				return m, nil
			}
			m.errMsg = ""
			m.saving = true
			return m, m.cmdAddWeight(todayDate(), v)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(keyMsg)
		return m, cmd
	}

	if keyMsg.String() == "w" {
		input := textinput.New()
		input.Placeholder = "today's weight in kg"
		input.CharLimit = 6
		input.Width = 20
		input.Focus()

		m.input = input
		m.adding = true
		m.errMsg = ""
		m.status = ""
		return m, textinput.Blink
	}
	return m, nil
}

// View implements [tea.Model]. The weight chart leads; the consistency
// section sits underneath with the trailing-week dates zero-filled.
func (m *progressPage) View() string {
	var b strings.Builder

	b.WriteString("[ WEIGHT ]\n")
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	default:
		b.WriteString(renderWeightChart(m.weights, m.session.profile.TargetWeightKg))
		b.WriteString("\n")
		if len(m.weights) >= 2 {
			b.WriteString(fmt.Sprintf("%+.1f kg since %s\n", weightDelta(m.weights), m.weights[0].LogDate))
		}
	}

	b.WriteString("\n[ LAST 7 DAYS ]\n")
	b.WriteString(renderConsistencyBars(m.summary, time.Now()))
	b.WriteString("\n")

	if m.adding {
		b.WriteString("\nNew weigh-in │ [" + m.input.View() + "]\n")
	}
	if m.saving {
		b.WriteString("\n[Recording...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + renderErrorLine(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "w: add weigh-in"
	if m.adding {
		hotKeys = "enter: record │ esc: cancel"
	}
	return renderPage("PROGRESS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *progressPage) cmdLoadWeights() tea.Cmd {
	ctx := m.ctx
	weights := m.services.WeightService

	return func() tea.Msg {
		entries, err := weights.History(ctx)
		return weightsLoadedMsg{entries: entries, err: err}
	}
}

func (m *progressPage) cmdLoadSummary() tea.Cmd {
	ctx := m.ctx
	logs := m.services.WorkoutLogService

	return func() tea.Msg {
		days, err := logs.Summary(ctx, 7)
		return summaryLoadedMsg{days: days, err: err}
	}
}

func (m *progressPage) cmdAddWeight(date string, weightKg float64) tea.Cmd {
	ctx := m.ctx
	weights := m.services.WeightService

	return func() tea.Msg {
		entry, err := weights.AddEntry(ctx, date, weightKg)
		return weightAddedMsg{entry: entry, err: err}
	}
}
