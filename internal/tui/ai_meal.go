package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	aiMealRowGoal = iota
	aiMealRowDiet
	aiMealRowMeals
	aiMealRowCuisine
	aiMealRowRestrictions
	aiMealRowNotes
	aiMealRowModel
	aiMealRowCount
)

// aiMealPage mirrors [aiWorkoutPage] for meal plans: a picker form on top
// and the latest plan rendered below. The pages stay separate models so
// each keeps its own form state and scroll position.
type aiMealPage struct {
	ctx      context.Context
	services *service.ClientServices
	session  *uiSession

	goal         picker
	diet         picker
	meals        intPicker
	cuisine      picker
	restrictions picker
	notes        textinput.Model
	model        picker

	cursor       int
	editingNotes bool
	generating   bool

	plan     models.Plan
	planView viewport.Model
	hasPlan  bool

	errMsg string
	status string
}

func newAIMealPage(ctx context.Context, services *service.ClientServices, session *uiSession) *aiMealPage {
	notes := textinput.New()
	notes.Placeholder = "likes, dislikes, allergies worth repeating"
	notes.CharLimit = 200
	notes.Width = 48

	return &aiMealPage{
		ctx:          ctx,
		services:     services,
		session:      session,
		goal:         newPicker(models.MealGoals, ""),
		diet:         newPicker(models.DietTypes, ""),
		meals:        newIntPicker(models.MealsPerDayOptions, 3),
		cuisine:      newPicker(models.Cuisines, ""),
		restrictions: newPicker(models.DietRestrictions, ""),
		notes:        notes,
		model:        newPicker(models.CompletionModels, models.DefaultCompletionModel),
		planView:     viewport.New(76, 12),
	}
}

func (m *aiMealPage) Init() tea.Cmd {
	m.errMsg = ""
	return tea.Batch(m.cmdLoadLatest(), m.cmdLoadModel())
}

func (m *aiMealPage) capturingInput() bool {
	return m.editingNotes
}

// Update implements [tea.Model]. The message view of this page matches
// [aiWorkoutPage.Update], filtered to the meal plan kind.
func (m *aiMealPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case planLoadedMsg:
		if result.kind != models.PlanMeal {
			return m, nil
		}
		return m.onPlanLoaded(result)

	case planGeneratedMsg:
		if result.kind != models.PlanMeal {
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

	case statusMsg:
		m.status = result.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
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
		if m.cursor < aiMealRowCount-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.left):
		return m, m.adjust(true)
	case key.Matches(keyMsg, keys.right):
		return m, m.adjust(false)
	case key.Matches(keyMsg, keys.enter):
		if m.cursor == aiMealRowNotes {
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

func (m *aiMealPage) adjust(back bool) tea.Cmd {
	switch m.cursor {
	case aiMealRowGoal:
		cyclePicker(&m.goal, back)
	case aiMealRowDiet:
		cyclePicker(&m.diet, back)
	case aiMealRowMeals:
		if back {
			m.meals.prev()
		} else {
			m.meals.next()
		}
	case aiMealRowCuisine:
		cyclePicker(&m.cuisine, back)
	case aiMealRowRestrictions:
		cyclePicker(&m.restrictions, back)
	case aiMealRowModel:
		cyclePicker(&m.model, back)
		return m.cmdSaveModel(m.model.value())
	}
	return nil
}

func (m *aiMealPage) startGeneration() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}

	profile := m.session.profile
	if !m.session.profileLoaded {
		profile = models.DefaultProfile(getSessionUserID())
	}

	req := models.MealPlanRequest{
		Goal:         m.goal.value(),
		Diet:         m.diet.value(),
		MealsPerDay:  m.meals.value(),
		Cuisine:      m.cuisine.value(),
		Restrictions: m.restrictions.value(),
		Notes:        strings.TrimSpace(m.notes.Value()),
	}

	m.generating = true
	m.errMsg = ""
	m.status = "Generating your meal plan..."
	return m, m.cmdGenerate(profile, req, m.model.value())
}

func (m *aiMealPage) onPlanLoaded(result planLoadedMsg) (tea.Model, tea.Cmd) {
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

func (m *aiMealPage) onPlanGenerated(result planGeneratedMsg) (tea.Model, tea.Cmd) {
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
		m.status = ""
		m.errMsg = result.text
		return m, nil
	}

	m.status = "Meal plan ready, saved to your history"
	m.errMsg = ""
	m.showPlan(result.text)
	return m, nil
}

func (m *aiMealPage) showPlan(content string) {
	m.plan = models.Plan{
		Kind:      models.PlanMeal,
		Content:   content,
		CreatedAt: time.Now(),
	}
	m.hasPlan = true
	m.refreshPlanView()
}

func (m *aiMealPage) refreshPlanView() {
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

var aiMealRowLabels = [aiMealRowCount]string{
	"Goal",
	"Diet",
	"Meals/day",
	"Cuisine",
	"Avoid",
	"Notes",
	"AI model",
}

func (m *aiMealPage) View() string {
	var b strings.Builder
	b.WriteString("[ PLAN SETTINGS ]\n")
	for row := 0; row < aiMealRowCount; row++ {
		if row == m.cursor {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(padRight(aiMealRowLabels[row], 10))
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
		b.WriteString("No meal plans yet. Set up the form and press g.")
	}

	hotKeys := "↑/↓: field │ ←/→: change │ g: generate │ c: copy │ x: export │ pgup/pgdn: scroll"
	if m.editingNotes {
		hotKeys = "enter: apply notes │ esc: cancel"
	}
	return renderPage("AI MEAL PLAN", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *aiMealPage) rowView(row int) string {
	switch row {
	case aiMealRowGoal:
		return m.goal.view()
	case aiMealRowDiet:
		return m.diet.view()
	case aiMealRowMeals:
		return m.meals.view()
	case aiMealRowCuisine:
		return m.cuisine.view()
	case aiMealRowRestrictions:
		return m.restrictions.view()
	case aiMealRowNotes:
		if m.editingNotes {
			return "[" + m.notes.View() + "]"
		}
		if strings.TrimSpace(m.notes.Value()) == "" {
			return "-"
		}
		return fitText(m.notes.Value(), 48)
	case aiMealRowModel:
		return m.model.view()
	}
	return ""
}

// ── commands ─────────────────────────────────────────────────

func (m *aiMealPage) cmdLoadLatest() tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		plan, err := plans.LatestPlan(ctx, models.PlanMeal)
		return planLoadedMsg{kind: models.PlanMeal, plan: plan, err: err}
	}
}

func (m *aiMealPage) cmdLoadModel() tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		return modelLoadedMsg{model: plans.SelectedModel(ctx)}
	}
}

func (m *aiMealPage) cmdSaveModel(model string) tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		if err := plans.SaveSelectedModel(ctx, model); err != nil {
			return statusMsg{text: "Model choice could not be saved: " + humanizeServerUnavailableError(err)}
		}
		return nil
	}
}

func (m *aiMealPage) cmdGenerate(profile models.Profile, req models.MealPlanRequest, model string) tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		text, err := plans.GenerateMealPlan(ctx, profile, req, model)
		return planGeneratedMsg{kind: models.PlanMeal, text: text, err: err}
	}
}

func (m *aiMealPage) cmdCopy(content string) tea.Cmd {
	plans := m.services.PlanService

	return func() tea.Msg {
		return planCopiedMsg{err: plans.CopyPlan(content)}
	}
}

func (m *aiMealPage) cmdExport(content string) tea.Cmd {
	plans := m.services.PlanService

	return func() tea.Msg {
		path, err := plans.ExportPlan(models.PlanMeal, content)
		return planExportedMsg{path: path, err: err}
	}
}
