package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	settingsRowPassword = iota
	settingsRowClearWorkout
	settingsRowClearMeal
	settingsRowLogout
	settingsRowCount
)

type settingsMode int

const (
	settingsBrowse settingsMode = iota
	settingsPassword
	settingsConfirm
)

// settingsPage groups the account actions (password change, clearing plan
// history, logout), a preview of the recent workout plans and the about
// block with client and server versions. Destructive rows and logout sit
// behind a y/n confirmation.
type settingsPage struct {
	ctx      context.Context
	services *service.ClientServices
	session  *uiSession

	buildInfo models.AppBuildInfo

	cursor int
	mode   settingsMode

	passInputs []textinput.Model
	passFocus  int
	changing   bool

	confirm    confirmModel
	confirmRow int

	recent        []models.Plan
	serverVersion string

	errMsg string
	status string
}

func newSettingsPage(ctx context.Context, services *service.ClientServices, session *uiSession, buildInfo models.AppBuildInfo) *settingsPage {
	return &settingsPage{
		ctx:       ctx,
		services:  services,
		session:   session,
		buildInfo: buildInfo,
	}
}

// Init implements [tea.Model]. Refreshes the server version and the plan
// preview on every entry.
func (m *settingsPage) Init() tea.Cmd {
	m.mode = settingsBrowse
	m.errMsg = ""
	return tea.Batch(m.cmdServerVersion(), m.cmdLoadRecent())
}

func (m *settingsPage) capturingInput() bool {
	return m.mode != settingsBrowse
}

// Update implements [tea.Model]. Result messages land regardless of mode;
// key handling depends on the mode.
func (m *settingsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case passwordChangedMsg:
		m.changing = false
		if result.err != nil {
			m.errMsg = authErrorMessage(result.err)
			return m, nil
		}
		m.mode = settingsBrowse
		m.status = "Password changed"
		return m, nil

	case plansClearedMsg:
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted %d %s plan(s)", result.deleted, result.kind)
		return m, m.cmdLoadRecent()

	case recentPlansMsg:
		if result.err == nil {
			m.recent = result.plans
		}
		return m, nil

	case serverVersionMsg:
		if result.err != nil {
			m.serverVersion = ""
			return m, nil
		}
		m.serverVersion = result.version
		return m, nil

	case statusMsg:
		m.status = result.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case settingsPassword:
		return m.updatePasswordForm(keyMsg)
	case settingsConfirm:
		return m.updateConfirm(keyMsg)
	}
	return m.updateBrowse(keyMsg)
}

func (m *settingsPage) updateBrowse(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < settingsRowCount-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.activateRow()
	}
	return m, nil
}

func (m *settingsPage) activateRow() (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.status = ""

	switch m.cursor {
	case settingsRowPassword:
		m.openPasswordForm()
		return m, textinput.Blink
	case settingsRowClearWorkout:
		m.confirm = confirmModel{message: "Delete all saved workout plans?"}
	case settingsRowClearMeal:
		m.confirm = confirmModel{message: "Delete all saved meal plans?"}
	case settingsRowLogout:
		m.confirm = confirmModel{message: "Sign out of " + m.session.user.Login + "?"}
	}
	m.confirmRow = m.cursor
	m.mode = settingsConfirm
	return m, nil
}

func (m *settingsPage) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.mode = settingsBrowse
		switch m.confirmRow {
		case settingsRowClearWorkout:
			return m, m.cmdClearPlans(models.PlanWorkout)
		case settingsRowClearMeal:
			return m, m.cmdClearPlans(models.PlanMeal)
		case settingsRowLogout:
			return m, m.cmdLogout()
		}
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = settingsBrowse
	}
	return m, nil
}

// ── password form ────────────────────────────────────────────

func (m *settingsPage) openPasswordForm() {
	placeholders := []string{"current password", "new password", "repeat new password"}
	m.passInputs = make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 256
		input.Width = 40
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
		m.passInputs[i] = input
	}
	m.passInputs[0].Focus()
	m.passFocus = 0
	m.mode = settingsPassword
}

func (m *settingsPage) updatePasswordForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = settingsBrowse
		return m, nil
	case "tab":
		m.passInputs[m.passFocus].Blur()
		m.passFocus = (m.passFocus + 1) % len(m.passInputs)
		m.passInputs[m.passFocus].Focus()
		return m, nil
	case "shift+tab":
		m.passInputs[m.passFocus].Blur()
		m.passFocus = (m.passFocus - 1 + len(m.passInputs)) % len(m.passInputs)
		m.passInputs[m.passFocus].Focus()
		return m, nil
	case "enter":
		if m.changing {
			return m, nil
		}

		current := m.passInputs[0].Value()
		next := m.passInputs[1].Value()
		repeat := m.passInputs[2].Value()
		if current == "" || next == "" || repeat == "" {
			m.errMsg = "All three fields are required"
			return m, nil
		}
		if next != repeat {
			m.errMsg = "New passwords do not match"
			return m, nil
		}

		m.errMsg = ""
		m.changing = true
		return m, m.cmdChangePassword(models.ChangePasswordRequest{
			CurrentPassword: current,
			NewPassword:     next,
			ConfirmPassword: repeat,
		})
	}

	var cmd tea.Cmd
	m.passInputs[m.passFocus], cmd = m.passInputs[m.passFocus].Update(keyMsg)
	return m, cmd
}

// ── view ─────────────────────────────────────────────────────

var settingsRowLabels = [settingsRowCount]string{
	"Change password",
	"Clear workout plan history",
	"Clear meal plan history",
	"Sign out",
}

// View implements [tea.Model].
func (m *settingsPage) View() string {
	switch m.mode {
	case settingsPassword:
		return m.viewPasswordForm()
	case settingsConfirm:
		return renderPage("SETTINGS", m.confirm.View(), "y: confirm │ n: cancel")
	}

	var b strings.Builder
	b.WriteString("[ ACCOUNT ]\n")
	for row := 0; row < settingsRowCount; row++ {
		if row == m.cursor {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(settingsRowLabels[row])
		b.WriteString("\n")
	}

	b.WriteString("\n[ RECENT WORKOUT PLANS ]\n")
	if len(m.recent) == 0 {
		b.WriteString("No workout plans yet.\n")
	} else {
		for _, plan := range m.recent {
			b.WriteString(plan.CreatedAt.Format(models.DateLayout))
			b.WriteString("  ")
			b.WriteString(plan.Preview(80))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n[ ABOUT ]\n")
	b.WriteString(renderBuildInfoSection(m.buildInfo, m.serverVersion))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n" + renderErrorLine(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"), "↑/↓: row │ enter: select")
}

func (m *settingsPage) viewPasswordForm() string {
	labels := []string{"Current", "New", "Repeat"}

	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(padRight(label, 8))
		b.WriteString(" │ [")
		b.WriteString(m.passInputs[i].View())
		b.WriteString("]\n")
	}

	if m.changing {
		b.WriteString("\n[Changing...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + renderErrorLine(m.errMsg) + "\n")
	}

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"), "enter: change password │ tab: next field │ esc: cancel")
}

// ── commands ─────────────────────────────────────────────────

func (m *settingsPage) cmdChangePassword(change models.ChangePasswordRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return passwordChangedMsg{err: auth.ChangePassword(ctx, change)}
	}
}

func (m *settingsPage) cmdClearPlans(kind models.PlanKind) tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		deleted, err := plans.ClearPlans(ctx, kind, true)
		return plansClearedMsg{kind: kind, deleted: deleted, err: err}
	}
}

func (m *settingsPage) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m *settingsPage) cmdLoadRecent() tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService

	return func() tea.Msg {
		recent, err := plans.RecentPlans(ctx, models.PlanWorkout, 5)
		return recentPlansMsg{kind: models.PlanWorkout, plans: recent, err: err}
	}
}

func (m *settingsPage) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	info := m.services.AppInfoService

	return func() tea.Msg {
		version, err := info.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
