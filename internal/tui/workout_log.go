package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/planscan"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type workoutMode int

const (
	workoutBrowse workoutMode = iota
	workoutAdd
	workoutEdit
	workoutScan
	workoutConfirmClear
)

// workoutLogPage is the daily exercise checklist. Besides browsing and
// ticking entries it hosts several modal flows: a manual add form, the
// same form prefilled to edit an existing entry, a scan-the-latest-plan
// flow that turns recognized exercises into entries one confirmation at
// a time, and a clear-all confirmation.
type workoutLogPage struct {
	ctx      context.Context
	services *service.ClientServices
	session  *uiSession

	date    string
	entries []models.WorkoutLogEntry
	cursor  int
	loading bool

	mode workoutMode

	addInputs []textinput.Model
	addFocus  int
	saving    bool
	editID    int64

	candidates []planscan.Candidate
	scanIdx    int
	scanAdded  int
	scanBusy   bool

	confirm confirmModel

	errMsg string
	status string
}

func newWorkoutLogPage(ctx context.Context, services *service.ClientServices, session *uiSession) *workoutLogPage {
	return &workoutLogPage{
		ctx:      ctx,
		services: services,
		session:  session,
	}
}

// Init implements [tea.Model]. Every entry resets the page to today's
// checklist in browse mode; day navigation is deliberately not sticky.
func (m *workoutLogPage) Init() tea.Cmd {
	m.date = todayDate()
	m.mode = workoutBrowse
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *workoutLogPage) capturingInput() bool {
	return m.mode != workoutBrowse
}

// Update implements [tea.Model]. Result messages drive the async flows;
// key handling depends on the current mode.
func (m *workoutLogPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case logsLoadedMsg:
		if result.date != m.date {
			// stale response from a day the user already navigated away from
			return m, nil
		}
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.entries = result.entries
		if m.cursor >= len(m.entries) {
			m.cursor = 0
		}
		return m, nil

	case logAddedMsg:
		return m.onEntryAdded(result)

	case logUpdatedMsg:
		m.saving = false
		if result.err != nil {
			// stay in the edit form so the values can be corrected
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		for i := range m.entries {
			if m.entries[i].ID == result.entry.ID {
				m.entries[i] = result.entry
			}
		}
		m.mode = workoutBrowse
		m.status = "Entry updated"
		return m, nil

	case logToggledMsg:
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		for i := range m.entries {
			if m.entries[i].ID == result.entryID {
				m.entries[i].Done = result.done
			}
		}
		return m, nil

	case logDeletedMsg:
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.status = "Entry deleted"
		m.loading = true
		return m, m.cmdLoad()

	case logsClearedMsg:
		m.mode = workoutBrowse
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.status = "Workout log and saved workout plans cleared"
		m.loading = true
		return m, m.cmdLoad()

	case scanPreparedMsg:
		return m.onScanPrepared(result)

	case statusMsg:
		m.status = result.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case workoutAdd, workoutEdit:
		return m.updateAddForm(keyMsg)
	case workoutScan:
		return m.updateScan(keyMsg)
	case workoutConfirmClear:
		return m.updateConfirmClear(keyMsg)
	}
	return m.updateBrowse(keyMsg)
}

func (m *workoutLogPage) updateBrowse(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.left):
		return m.gotoDate(shiftDate(m.date, -1))
	case key.Matches(keyMsg, keys.right):
		return m.gotoDate(shiftDate(m.date, +1))
	case key.Matches(keyMsg, keys.space):
		if entry, ok := m.selected(); ok {
			return m, m.cmdToggle(entry.ID, !entry.Done)
		}
	case keyMsg.String() == "t":
		return m.gotoDate(todayDate())
	case keyMsg.String() == "a":
		m.openAddForm()
		return m, textinput.Blink
	case keyMsg.String() == "e":
		if entry, ok := m.selected(); ok {
			m.openEditForm(entry)
			return m, textinput.Blink
		}
	case keyMsg.String() == "d":
		if entry, ok := m.selected(); ok {
			return m, m.cmdDelete(entry.ID)
		}
	case keyMsg.String() == "s":
		m.errMsg = ""
		m.status = "Scanning the latest workout plan..."
		return m, m.cmdScan()
	case keyMsg.String() == "x":
		m.confirm = confirmModel{message: "Delete ALL workout log entries and saved workout plans?"}
		m.mode = workoutConfirmClear
	}
	return m, nil
}

func (m *workoutLogPage) gotoDate(date string) (tea.Model, tea.Cmd) {
	m.date = date
	m.cursor = 0
	m.loading = true
	m.errMsg = ""
	return m, m.cmdLoad()
}

// ── manual add / edit form ───────────────────────────────────

var addFormFields = []struct {
	placeholder string
	charLimit   int
}{
	{"exercise", 60},
	{"sets", 3},
	{"reps", 3},
	{"weight kg, empty = bodyweight", 6},
	{"notes, optional", 120},
}

func (m *workoutLogPage) openForm(mode workoutMode) {
	m.addInputs = make([]textinput.Model, len(addFormFields))
	for i, f := range addFormFields {
		input := textinput.New()
		input.Placeholder = f.placeholder
		input.CharLimit = f.charLimit
		input.Width = 32
		m.addInputs[i] = input
	}
	m.addInputs[0].Focus()
	m.addFocus = 0
	m.errMsg = ""
	m.status = ""
	m.mode = mode
}

func (m *workoutLogPage) openAddForm() {
	m.openForm(workoutAdd)
}

// openEditForm reuses the add form prefilled from an existing entry. The
// done flag is not part of the form; space in browse mode toggles it.
func (m *workoutLogPage) openEditForm(entry models.WorkoutLogEntry) {
	m.openForm(workoutEdit)
	m.editID = entry.ID
	m.addInputs[0].SetValue(entry.Exercise)
	m.addInputs[1].SetValue(strconv.Itoa(entry.Sets))
	m.addInputs[2].SetValue(strconv.Itoa(entry.Reps))
	if entry.WeightKg > 0 {
		m.addInputs[3].SetValue(strconv.FormatFloat(entry.WeightKg, 'f', -1, 64))
	}
	m.addInputs[4].SetValue(entry.Notes)
}

func (m *workoutLogPage) updateAddForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = workoutBrowse
		return m, nil
	case "tab":
		m.addInputs[m.addFocus].Blur()
		m.addFocus = (m.addFocus + 1) % len(m.addInputs)
		m.addInputs[m.addFocus].Focus()
		return m, nil
	case "shift+tab":
		m.addInputs[m.addFocus].Blur()
		m.addFocus = (m.addFocus - 1 + len(m.addInputs)) % len(m.addInputs)
		m.addInputs[m.addFocus].Focus()
		return m, nil
	case "enter":
		if m.saving {
			return m, nil
		}
		entry, ok := m.parseAddForm()
		if !ok {
			return m, nil
		}
		m.saving = true
		if m.mode == workoutEdit {
			return m, m.cmdUpdate(m.editID, models.WorkoutLogPatch{
				Exercise: &entry.Exercise,
				Sets:     &entry.Sets,
				Reps:     &entry.Reps,
				WeightKg: &entry.WeightKg,
				Notes:    &entry.Notes,
			})
		}
		return m, m.cmdAdd(entry)
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(keyMsg)
	return m, cmd
}

// parseAddForm validates the form into an entry for the selected date.
// The bounds mirror the server-side validation.
func (m *workoutLogPage) parseAddForm() (models.WorkoutLogEntry, bool) {
	exercise := strings.TrimSpace(m.addInputs[0].Value())
	if exercise == "" {
		m.errMsg = "Exercise name is required"
		return models.WorkoutLogEntry{}, false
	}

	sets, err := strconv.Atoi(strings.TrimSpace(m.addInputs[1].Value()))
	if err != nil || sets < 1 {
		m.errMsg = "Sets must be a whole number of 1 or more"
		return models.WorkoutLogEntry{}, false
	}

	reps, err := strconv.Atoi(strings.TrimSpace(m.addInputs[2].Value()))
	if err != nil || reps < 1 {
		m.errMsg = "Reps must be a whole number of 1 or more"
		return models.WorkoutLogEntry{}, false
	}

	weight := 0.0
	if raw := strings.TrimSpace(m.addInputs[3].Value()); raw != "" {
		weight, err = strconv.ParseFloat(raw, 64)
		if err != nil || weight < 0 {
			m.errMsg = "Weight must be a non-negative number"
			return models.WorkoutLogEntry{}, false
		}
	}

	m.errMsg = ""
	return models.WorkoutLogEntry{
		LogDate:  m.date,
		Exercise: exercise,
		Sets:     sets,
		Reps:     reps,
		WeightKg: weight,
		Notes:    strings.TrimSpace(m.addInputs[4].Value()),
	}, true
}

// ── scan flow ────────────────────────────────────────────────

func (m *workoutLogPage) onScanPrepared(result scanPreparedMsg) (tea.Model, tea.Cmd) {
	if result.err != nil {
		if errors.Is(result.err, service.ErrNoPlansYet) {
			m.status = "Generate a workout plan first, then scan it here"
			return m, nil
		}
		m.status = ""
		m.errMsg = humanizeServerUnavailableError(result.err)
		return m, nil
	}
	if len(result.candidates) == 0 {
		m.status = "No exercises recognized in the latest plan"
		return m, nil
	}

	m.candidates = result.candidates
	m.scanIdx = 0
	m.scanAdded = 0
	m.scanBusy = false
	m.status = ""
	m.mode = workoutScan
	return m, nil
}

func (m *workoutLogPage) updateScan(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		if m.scanBusy || m.scanIdx >= len(m.candidates) {
			return m, nil
		}
		m.scanBusy = true
		c := m.candidates[m.scanIdx]
		return m, m.cmdAdd(models.WorkoutLogEntry{
			LogDate:  m.date,
			Exercise: c.Exercise,
			Sets:     c.Sets,
			Reps:     c.Reps,
		})
	case key.Matches(keyMsg, keys.no):
		if m.scanBusy {
			return m, nil
		}
		return m.advanceScan()
	case key.Matches(keyMsg, keys.esc):
		if m.scanBusy {
			return m, nil
		}
		return m.finishScan()
	}
	return m, nil
}

func (m *workoutLogPage) onEntryAdded(result logAddedMsg) (tea.Model, tea.Cmd) {
	if m.mode == workoutScan {
		m.scanBusy = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.scanAdded++
		return m.advanceScan()
	}

	m.saving = false
	if result.err != nil {
		m.errMsg = humanizeServerUnavailableError(result.err)
		return m, nil
	}
	m.mode = workoutBrowse
	m.status = "Entry added"
	m.loading = true
	return m, m.cmdLoad()
}

func (m *workoutLogPage) advanceScan() (tea.Model, tea.Cmd) {
	m.scanIdx++
	if m.scanIdx >= len(m.candidates) {
		return m.finishScan()
	}
	return m, nil
}

func (m *workoutLogPage) finishScan() (tea.Model, tea.Cmd) {
	m.mode = workoutBrowse
	m.status = fmt.Sprintf("Added %d of %d scanned exercises", m.scanAdded, len(m.candidates))
	m.loading = true
	return m, m.cmdLoad()
}

// ── clear-all confirmation ───────────────────────────────────

func (m *workoutLogPage) updateConfirmClear(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		return m, m.cmdClearAll()
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = workoutBrowse
	}
	return m, nil
}

// ── view ─────────────────────────────────────────────────────

func (m *workoutLogPage) selected() (models.WorkoutLogEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return models.WorkoutLogEntry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *workoutLogPage) doneCount() int {
	done := 0
	for _, e := range m.entries {
		if e.Done {
			done++
		}
	}
	return done
}

// View implements [tea.Model]. Browse mode shows the dated checklist; the
// modal flows replace the list body until they finish.
func (m *workoutLogPage) View() string {
	switch m.mode {
	case workoutAdd, workoutEdit:
		return m.viewAddForm()
	case workoutScan:
		return m.viewScan()
	case workoutConfirmClear:
		return renderPage("WORKOUT LOG", m.confirm.View(), "y: delete everything │ n: keep it")
	}

	var b strings.Builder
	dateLabel := m.date
	if m.date == todayDate() {
		dateLabel += " (today)"
	}
	b.WriteString(fmt.Sprintf("Date: %s", dateLabel))
	if len(m.entries) > 0 {
		b.WriteString(fmt.Sprintf("    %d/%d done", m.doneCount(), len(m.entries)))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("No entries for this date.\n")
		b.WriteString("Press a to add one, or s to scan the latest AI workout plan.\n")
	default:
		for i, e := range m.entries {
			if i == m.cursor {
				b.WriteString("> ")
			} else {
				b.WriteString("  ")
			}
			mark := "[ ]"
			if e.Done {
				mark = "[x]"
			}
			weight := "-"
			if e.WeightKg > 0 {
				weight = strconv.FormatFloat(e.WeightKg, 'f', 1, 64) + " kg"
			}
			b.WriteString(fmt.Sprintf("%s %s %dx%d  %s\n", mark, padRight(fitText(e.Exercise, 28), 28), e.Sets, e.Reps, weight))
			if i == m.cursor && e.Notes != "" {
				b.WriteString("      note: " + fitText(e.Notes, 48) + "\n")
			}
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + renderErrorLine(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "space: done │ a: add │ e: edit │ d: delete │ s: scan plan │ ←/→: day │ t: today │ x: clear all"
	return renderPage("WORKOUT LOG", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *workoutLogPage) viewAddForm() string {
	labels := []string{"Exercise", "Sets", "Reps", "Weight", "Notes"}

	title := "New entry for " + m.date
	action := "add"
	if m.mode == workoutEdit {
		title = "Edit entry"
		action = "save"
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼──────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(padRight(label, 8))
		b.WriteString(" │ [")
		b.WriteString(m.addInputs[i].View())
		b.WriteString("]\n")
	}

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + renderErrorLine(m.errMsg) + "\n")
	}

	return renderPage("WORKOUT LOG", strings.TrimRight(b.String(), "\n"), "enter: "+action+" │ tab: next field │ esc: cancel")
}

func (m *workoutLogPage) viewScan() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Scanning plan: exercise %d of %d\n\n", m.scanIdx+1, len(m.candidates)))

	c := m.candidates[m.scanIdx]
	b.WriteString(fmt.Sprintf("  %s  %dx%d\n", c.Exercise, c.Sets, c.Reps))

	if m.scanBusy {
		b.WriteString("\nAdding...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + renderErrorLine(m.errMsg) + "\n")
	}

	return renderPage("WORKOUT LOG", strings.TrimRight(b.String(), "\n"), "y: add to "+m.date+" │ n: skip │ esc: finish")
}

// ── commands ─────────────────────────────────────────────────

func (m *workoutLogPage) cmdLoad() tea.Cmd {
	ctx := m.ctx
	logs := m.services.WorkoutLogService
	date := m.date

	return func() tea.Msg {
		entries, err := logs.List(ctx, date)
		return logsLoadedMsg{date: date, entries: entries, err: err}
	}
}

func (m *workoutLogPage) cmdAdd(entry models.WorkoutLogEntry) tea.Cmd {
	ctx := m.ctx
	logs := m.services.WorkoutLogService

	return func() tea.Msg {
		added, err := logs.Add(ctx, entry)
		return logAddedMsg{entry: added, err: err}
	}
}

func (m *workoutLogPage) cmdUpdate(entryID int64, patch models.WorkoutLogPatch) tea.Cmd {
	ctx := m.ctx
	logs := m.services.WorkoutLogService

	return func() tea.Msg {
		updated, err := logs.Update(ctx, entryID, patch)
		return logUpdatedMsg{entry: updated, err: err}
	}
}

func (m *workoutLogPage) cmdToggle(entryID int64, done bool) tea.Cmd {
	ctx := m.ctx
	logs := m.services.WorkoutLogService

	return func() tea.Msg {
		err := logs.SetDone(ctx, entryID, done)
		return logToggledMsg{entryID: entryID, done: done, err: err}
	}
}

func (m *workoutLogPage) cmdDelete(entryID int64) tea.Cmd {
	ctx := m.ctx
	logs := m.services.WorkoutLogService

	return func() tea.Msg {
		err := logs.Delete(ctx, entryID)
		return logDeletedMsg{entryID: entryID, err: err}
	}
}

func (m *workoutLogPage) cmdClearAll() tea.Cmd {
	ctx := m.ctx
	logs := m.services.WorkoutLogService

	return func() tea.Msg {
		return logsClearedMsg{err: logs.ClearAll(ctx, true)}
	}
}

func (m *workoutLogPage) cmdScan() tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		plan, err := plans.LatestPlan(ctx, models.PlanWorkout)
		if err != nil {
			return scanPreparedMsg{err: err}
		}
		return scanPreparedMsg{candidates: planscan.Scan(plan.Content)}
	}
}

// ── date helpers ─────────────────────────────────────────────

func todayDate() string {
	return time.Now().Format(models.DateLayout)
}

// shiftDate moves a YYYY-MM-DD date by whole days. A malformed date resets
// to today rather than propagating a parse error into the UI.
func shiftDate(date string, days int) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return todayDate()
	}
	return t.AddDate(0, 0, days).Format(models.DateLayout)
}
