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
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	aiWorkoutRowGoal = iota
	aiWorkoutRowDuration
	aiWorkoutRowLevel
	aiWorkoutRowFocus
	aiWorkoutRowEquipment
	aiWorkoutRowDays
	aiWorkoutRowNotes
	aiWorkoutRowModel
	aiWorkoutRowCount
)

// aiWorkoutPage is the workout-plan generator: a form of pickers on top,
// the latest plan rendered as markdown in a scrollable viewport below.
// Form state survives page switches so a teen can tweak one knob and
// regenerate; the model choice is persisted across restarts. The shown
// plan can also be pushed into today's checklist one exercise at a time.
type aiWorkoutPage struct {
	ctx      context.Context
	services *service.ClientServices
	session  *uiSession

	goal      picker
	duration  intPicker
	level     picker
	focus     picker
	equipment multiSelect
	days      int
	notes     textinput.Model
	model     picker

	cursor       int
	editingNotes bool
	generating   bool

	plan     models.Plan
	planView viewport.Model
	hasPlan  bool

	scanning   bool
	candidates []planscan.Candidate
	scanIdx    int
	scanAdded  int
	scanBusy   bool

	errMsg string
	status string
}

func newAIWorkoutPage(ctx context.Context, services *service.ClientServices, session *uiSession) *aiWorkoutPage {
	notes := textinput.New()
	notes.Placeholder = "anything else the coach should know"
	notes.CharLimit = 200
	notes.Width = 48

	return &aiWorkoutPage{
		ctx:       ctx,
		services:  services,
		session:   session,
		goal:      newPicker(models.WorkoutGoals, ""),
		duration:  newIntPicker(models.WorkoutDurations, 30),
		level:     newPicker(models.WorkoutLevels, ""),
		focus:     newPicker(models.WorkoutFocuses, ""),
		equipment: newMultiSelect(models.EquipmentOptions),
		days:      models.WorkoutDaysDefault,
		notes:     notes,
		model:     newPicker(models.CompletionModels, models.DefaultCompletionModel),
		planView:  viewport.New(76, 12),
	}
}

// Init implements [tea.Model]. Refreshes the saved plan and the persisted
// model choice; the form itself keeps its state between entries.
func (m *aiWorkoutPage) Init() tea.Cmd {
	m.errMsg = ""
	return tea.Batch(m.cmdLoadLatest(), m.cmdLoadModel())
}

func (m *aiWorkoutPage) capturingInput() bool {
	return m.editingNotes || m.scanning
}

// Update implements [tea.Model]. Handled messages:
//   - [planLoadedMsg]    — shows the latest saved workout plan.
//   - [planGeneratedMsg] — shows the fresh plan, or the failure marker.
//   - [modelLoadedMsg]   — preselects the persisted completion model.
//   - [planCopiedMsg] / [planExportedMsg] — report clipboard and file results.
//   - [logAddedMsg]      — advances the add-to-log flow.
//   - up/down            — move between form rows.
//   - left/right         — change the value on the selected row.
//   - space              — toggle the highlighted equipment option.
//   - enter              — open or close the notes editor.
//   - g                  — generate a plan from the form and the profile.
//   - a                  — add the shown plan's exercises to today's log.
//   - c / x              — copy or export the shown plan.
//   - pgup/pgdn          — scroll the plan.
func (m *aiWorkoutPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case planLoadedMsg:
		if result.kind != models.PlanWorkout {
			return m, nil
		}
		return m.onPlanLoaded(result)

	case planGeneratedMsg:
		if result.kind != models.PlanWorkout {
			return m, nil
		}
		return m.onPlanGenerated(result)

	case modelLoadedMsg:
		m.model = newPicker(models.CompletionModels, result.model)
		return m, nil

	case planCopiedMsg:
		if result.err != nil {
			m.errMsg = "Clipboard unavailable: " + result.err.Error()
			return m, nil
		}
		m.status = "Plan copied to clipboard"
		return m, nil

	case planExportedMsg:
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.status = "Plan saved to " + result.path
		return m, nil

	case logAddedMsg:
		if !m.scanning {
			return m, nil
		}
		m.scanBusy = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.scanAdded++
		return m.advanceScan()

	case statusMsg:
		m.status = result.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.scanning {
		return m.updateScan(keyMsg)
	}

	if m.editingNotes {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
			m.notes.Blur()
			m.editingNotes = false
			return m, nil
		}
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(keyMsg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < aiWorkoutRowCount-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.left):
		return m, m.adjust(-1)
	case key.Matches(keyMsg, keys.right):
		return m, m.adjust(+1)
	case key.Matches(keyMsg, keys.space):
		if m.cursor == aiWorkoutRowEquipment {
			m.equipment.toggle()
		}
	case key.Matches(keyMsg, keys.enter):
		if m.cursor == aiWorkoutRowNotes {
			m.editingNotes = true
			m.notes.Focus()
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.pageUp), key.Matches(keyMsg, keys.pageDown):
		var cmd tea.Cmd
		m.planView, cmd = m.planView.Update(keyMsg)
		return m, cmd
	case keyMsg.String() == "g":
		return m.startGeneration()
	case keyMsg.String() == "a":
		return m.startScan()
	case keyMsg.String() == "c":
		if m.hasPlan {
			return m, m.cmdCopy(m.plan.Content)
		}
	case keyMsg.String() == "x":
		if m.hasPlan {
			return m, m.cmdExport(m.plan.Content)
		}
	}
	return m, nil
}

// adjust changes the value of the selected row by one step. Changing the
// model row also persists the choice.
func (m *aiWorkoutPage) adjust(step int) tea.Cmd {
	back := step < 0
	switch m.cursor {
	case aiWorkoutRowGoal:
		cyclePicker(&m.goal, back)
	case aiWorkoutRowDuration:
		if back {
			m.duration.prev()
		} else {
			m.duration.next()
		}
	case aiWorkoutRowLevel:
		cyclePicker(&m.level, back)
	case aiWorkoutRowFocus:
		cyclePicker(&m.focus, back)
	case aiWorkoutRowEquipment:
		if back {
			m.equipment.prev()
		} else {
			m.equipment.next()
		}
	case aiWorkoutRowDays:
		m.days += step
		if m.days < models.WorkoutDaysMin {
			m.days = models.WorkoutDaysMin
		}
		if m.days > models.WorkoutDaysMax {
			m.days = models.WorkoutDaysMax
		}
	case aiWorkoutRowModel:
		cyclePicker(&m.model, back)
		return m.cmdSaveModel(m.model.value())
	}
	return nil
}

func cyclePicker(p *picker, back bool) {
	if back {
		p.prev()
	} else {
		p.next()
	}
}

func (m *aiWorkoutPage) startGeneration() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}

	profile := m.session.profile
	if !m.session.profileLoaded {
		profile = models.DefaultProfile(getSessionUserID())
	}

	req := models.WorkoutPlanRequest{
		Goal:        m.goal.value(),
		DurationMin: m.duration.value(),
		Level:       m.level.value(),
		Focus:       m.focus.value(),
		Equipment:   m.equipment.values(),
		DaysPerWeek: m.days,
		Notes:       strings.TrimSpace(m.notes.Value()),
	}

	m.generating = true
	m.errMsg = ""
	m.status = "Generating your workout plan..."
	return m, m.cmdGenerate(profile, req, m.model.value())
}

func (m *aiWorkoutPage) onPlanLoaded(result planLoadedMsg) (tea.Model, tea.Cmd) {
	if result.err != nil {
		if errors.Is(result.err, service.ErrNoPlansYet) {
			m.hasPlan = false
			return m, nil
		}
		m.errMsg = humanizeServerUnavailableError(result.err)
		return m, nil
	}

	m.plan = result.plan
	m.hasPlan = true
	m.refreshPlanView()
	return m, nil
}

func (m *aiWorkoutPage) onPlanGenerated(result planGeneratedMsg) (tea.Model, tea.Cmd) {
	m.generating = false

	if result.err != nil {
		m.status = ""
		m.errMsg = "Plan could not be saved: " + humanizeServerUnavailableError(result.err)
		if result.text != "" && !service.IsGenerationFailure(result.text) {
			m.showPlan(result.text)
		}
		return m, nil
	}

	if service.IsGenerationFailure(result.text) {
		// the marker text explains the failure; nothing was saved
		m.status = ""
		m.errMsg = result.text
		return m, nil
	}

	m.status = "Workout plan ready, saved to your history"
	m.errMsg = ""
	m.showPlan(result.text)
	return m, nil
}

func (m *aiWorkoutPage) showPlan(content string) {
	m.plan = models.Plan{
		Kind:      models.PlanWorkout,
		Content:   content,
		CreatedAt: time.Now(),
	}
	m.hasPlan = true
	m.refreshPlanView()
}

// ── add to today's checklist ─────────────────────────────────

// startScan turns the shown plan's recognized set/rep lines into add
// candidates confirmed one at a time. It works on the plan already on
// screen, so no server round trip happens before the first confirmation.
func (m *aiWorkoutPage) startScan() (tea.Model, tea.Cmd) {
	if !m.hasPlan || m.generating {
		return m, nil
	}
	candidates := planscan.Scan(m.plan.Content)
	if len(candidates) == 0 {
		m.status = "No set/rep lines found in this plan"
		return m, nil
	}

	m.candidates = candidates
	m.scanIdx = 0
	m.scanAdded = 0
	m.scanBusy = false
	m.errMsg = ""
	m.status = ""
	m.scanning = true
	return m, nil
}

func (m *aiWorkoutPage) updateScan(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		if m.scanBusy || m.scanIdx >= len(m.candidates) {
			return m, nil
		}
		m.scanBusy = true
		c := m.candidates[m.scanIdx]
		return m, m.cmdAddLogEntry(models.WorkoutLogEntry{
			LogDate:  todayDate(),
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

func (m *aiWorkoutPage) advanceScan() (tea.Model, tea.Cmd) {
	m.scanIdx++
	if m.scanIdx >= len(m.candidates) {
		return m.finishScan()
	}
	return m, nil
}

func (m *aiWorkoutPage) finishScan() (tea.Model, tea.Cmd) {
	m.scanning = false
	m.status = fmt.Sprintf("Added %d of %d scanned exercises to today's log", m.scanAdded, len(m.candidates))
	return m, nil
}

// refreshPlanView re-renders the plan markdown into the viewport at the
// current terminal width and scrolls back to the top.
func (m *aiWorkoutPage) refreshPlanView() {
	width := m.session.width - 6
	if width < 40 {
		width = 76
	}
	height := m.session.height / 3
	if height < 8 {
		height = 8
	}

	m.planView.Width = width
	m.planView.Height = height
	m.planView.SetContent(renderMarkdown(m.plan.Content, width))
	m.planView.GotoTop()
}

var aiWorkoutRowLabels = [aiWorkoutRowCount]string{
	"Goal",
	"Duration",
	"Level",
	"Focus",
	"Equipment",
	"Days/week",
	"Notes",
	"AI model",
}

// View implements [tea.Model]. The form table renders above the plan so
// regenerating never loses sight of the knobs that produced it.
func (m *aiWorkoutPage) View() string {
	if m.scanning {
		return m.viewScan()
	}

	var b strings.Builder
	b.WriteString("[ PLAN SETTINGS ]\n")
	for row := 0; row < aiWorkoutRowCount; row++ {
		if row == m.cursor {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(padRight(aiWorkoutRowLabels[row], 10))
		b.WriteString(" │ ")
		b.WriteString(m.rowView(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.generating {
		b.WriteString("[Generating...]\n")
	} else {
		b.WriteString("[Generate]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + renderErrorLine(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n")
	if m.hasPlan {
		b.WriteString("[ LATEST PLAN · " + m.plan.CreatedAt.Format(models.DateLayout) + " ]\n")
		b.WriteString(m.planView.View())
	} else {
		b.WriteString("No workout plans yet. Set up the form and press g.")
	}

	hotKeys := "↑/↓: field │ ←/→: change │ g: generate │ a: add to log │ c: copy │ x: export │ pgup/pgdn: scroll"
	if m.editingNotes {
		hotKeys = "enter: apply notes │ esc: cancel"
	}
	return renderPage("AI WORKOUT PLAN", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *aiWorkoutPage) viewScan() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Adding plan exercises to today's checklist: %d of %d\n\n", m.scanIdx+1, len(m.candidates)))

	c := m.candidates[m.scanIdx]
	b.WriteString(fmt.Sprintf("  %s  %dx%d\n", c.Exercise, c.Sets, c.Reps))

	if m.scanBusy {
		b.WriteString("\nAdding...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + renderErrorLine(m.errMsg) + "\n")
	}

	return renderPage("AI WORKOUT PLAN", strings.TrimRight(b.String(), "\n"), "y: add to "+todayDate()+" │ n: skip │ esc: finish")
}

func (m *aiWorkoutPage) rowView(row int) string {
	switch row {
	case aiWorkoutRowGoal:
		return m.goal.view()
	case aiWorkoutRowDuration:
		return m.duration.view() + " min"
	case aiWorkoutRowLevel:
		return m.level.view()
	case aiWorkoutRowFocus:
		return m.focus.view()
	case aiWorkoutRowEquipment:
		return m.equipment.view(m.cursor == aiWorkoutRowEquipment)
	case aiWorkoutRowDays:
		return "< " + strconv.Itoa(m.days) + " >"
	case aiWorkoutRowNotes:
		if m.editingNotes {
			return "[" + m.notes.View() + "]"
		}
		if strings.TrimSpace(m.notes.Value()) == "" {
			return "-"
		}
		return fitText(m.notes.Value(), 48)
	case aiWorkoutRowModel:
		return m.model.view()
	}
	return ""
}

// ── commands ─────────────────────────────────────────────────

func (m *aiWorkoutPage) cmdLoadLatest() tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		plan, err := plans.LatestPlan(ctx, models.PlanWorkout)
		return planLoadedMsg{kind: models.PlanWorkout, plan: plan, err: err}
	}
}

func (m *aiWorkoutPage) cmdLoadModel() tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		return modelLoadedMsg{model: plans.SelectedModel(ctx)}
	}
}

func (m *aiWorkoutPage) cmdSaveModel(model string) tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		if err := plans.SaveSelectedModel(ctx, model); err != nil {
			return statusMsg{text: "Model choice could not be saved: " + humanizeServerUnavailableError(err)}
		}
		return nil
	}
}

func (m *aiWorkoutPage) cmdGenerate(profile models.Profile, req models.WorkoutPlanRequest, model string) tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		text, err := plans.GenerateWorkoutPlan(ctx, profile, req, model)
		return planGeneratedMsg{kind: models.PlanWorkout, text: text, err: err}
	}
}

func (m *aiWorkoutPage) cmdAddLogEntry(entry models.WorkoutLogEntry) tea.Cmd {
	ctx := m.ctx
	logs := m.services.WorkoutLogService

	return func() tea.Msg {
		added, err := logs.Add(ctx, entry)
		return logAddedMsg{entry: added, err: err}
	}
}

func (m *aiWorkoutPage) cmdCopy(content string) tea.Cmd {
	plans := m.services.PlanService

	return func() tea.Msg {
		return planCopiedMsg{err: plans.CopyPlan(content)}
	}
}

func (m *aiWorkoutPage) cmdExport(content string) tea.Cmd {
	plans := m.services.PlanService

	return func() tea.Msg {
		path, err := plans.ExportPlan(models.PlanWorkout, content)
		return planExportedMsg{path: path, err: err}
	}
}
