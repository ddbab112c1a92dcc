package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	profileRowName = iota
	profileRowAge
	profileRowGender
	profileRowHeight
	profileRowWeight
	profileRowTarget
	profileRowCount
)

// profilePage shows and edits the fitness profile behind the AI prompts.
// Rows are browsed with up/down; enter opens an inline editor for the
// selected text row, left/right cycle the gender picker in place.
type profilePage struct {
	ctx      context.Context
	services *service.ClientServices
	session  *uiSession

	form   models.Profile
	gender picker

	cursor  int
	editing bool
	input   textinput.Model

	loading bool
	saving  bool
	errMsg  string
	status  string
}

func newProfilePage(ctx context.Context, services *service.ClientServices, session *uiSession) *profilePage {
	return &profilePage{
		ctx:      ctx,
		services: services,
		session:  session,
		gender:   newPicker(models.Genders, ""),
	}
}

// Init implements [tea.Model]. Reloads the profile on every page entry so
// edits made elsewhere (e.g. a weigh-in) show up.
func (m *profilePage) Init() tea.Cmd {
	m.loading = true
	m.editing = false
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *profilePage) capturingInput() bool {
	return m.editing
}

// Update implements [tea.Model]. Handled messages:
//   - [profileLoadedMsg] — fills the form with the stored profile.
//   - [profileSavedMsg]  — clears saving state and confirms the save.
//   - [statusMsg]        — shows a router notice, e.g. the login greeting.
//   - up/down            — move between rows.
//   - left/right         — cycle the gender picker on its row.
//   - enter              — open or commit the inline editor for a text row.
//   - esc                — cancel the inline editor.
//   - ctrl+s             — save the profile.
func (m *profilePage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.form = result.profile
		m.gender = newPicker(models.Genders, result.profile.Gender)
		return m, nil

	case profileSavedMsg:
		m.saving = false
		if result.err != nil {
			m.errMsg = authErrorMessage(result.err)
			return m, nil
		}
		m.form = result.profile
		m.gender = newPicker(models.Genders, result.profile.Gender)
		m.status = "Profile saved"
		return m, nil

	case statusMsg:
		m.status = result.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditor(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < profileRowCount-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.left):
		if m.cursor == profileRowGender {
			m.gender.prev()
			m.form.Gender = m.gender.value()
		}
	case key.Matches(keyMsg, keys.right):
		if m.cursor == profileRowGender {
			m.gender.next()
			m.form.Gender = m.gender.value()
		}
	case key.Matches(keyMsg, keys.enter):
		if m.cursor != profileRowGender {
			return m, m.startEditing()
		}
	case keyMsg.String() == "ctrl+s":
		if m.saving {
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		m.saving = true
		m.form.Gender = m.gender.value()
		return m, m.cmdSave(m.form)
	}
	return m, nil
}

// startEditing opens the inline editor preloaded with the current value of
// the selected row.
func (m *profilePage) startEditing() tea.Cmd {
	input := textinput.New()
	input.CharLimit = 40
	input.Width = 20
	input.SetValue(m.rowValue(m.cursor))
	input.Focus()

	m.input = input
	m.editing = true
	m.errMsg = ""
	return textinput.Blink
}

func (m *profilePage) updateEditor(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.editing = false
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		m.commitEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

// commitEdit parses the editor value into the selected row. Bounds match
// the server-side validation so bad values fail fast with a hint instead
// of a round trip.
func (m *profilePage) commitEdit() {
	raw := strings.TrimSpace(m.input.Value())

	switch m.cursor {
	case profileRowName:
		m.form.Name = raw
	case profileRowAge:
		n, err := strconv.Atoi(raw)
		if err != nil || n < models.ProfileAgeMin || n > models.ProfileAgeMax {
			m.errMsg = fmt.Sprintf("Age must be a whole number between %d and %d", models.ProfileAgeMin, models.ProfileAgeMax)
			return
		}
		m.form.Age = n
	case profileRowHeight:
		n, err := strconv.Atoi(raw)
		if err != nil || n < models.ProfileHeightMinCm || n > models.ProfileHeightMaxCm {
			m.errMsg = fmt.Sprintf("Height must be a whole number between %d and %d cm", models.ProfileHeightMinCm, models.ProfileHeightMaxCm)
			return
		}
		m.form.HeightCm = n
	case profileRowWeight:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < models.ProfileWeightMinKg || v > models.ProfileWeightMaxKg {
			m.errMsg = fmt.Sprintf("Weight must be between %.0f and %.0f kg", models.ProfileWeightMinKg, models.ProfileWeightMaxKg)
			return
		}
		m.form.WeightKg = v
	case profileRowTarget:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < models.ProfileWeightMinKg || v > models.ProfileWeightMaxKg {
			m.errMsg = fmt.Sprintf("Target weight must be between %.0f and %.0f kg", models.ProfileWeightMinKg, models.ProfileWeightMaxKg)
			return
		}
		m.form.TargetWeightKg = v
	}
	m.editing = false
}

func (m *profilePage) rowValue(row int) string {
	switch row {
	case profileRowName:
		return m.form.Name
	case profileRowAge:
		return strconv.Itoa(m.form.Age)
	case profileRowHeight:
		return strconv.Itoa(m.form.HeightCm)
	case profileRowWeight:
		return strconv.FormatFloat(m.form.WeightKg, 'f', 1, 64)
	case profileRowTarget:
		return strconv.FormatFloat(m.form.TargetWeightKg, 'f', 1, 64)
	}
	return ""
}

var profileRowLabels = [profileRowCount]string{
	"Name",
	"Age",
	"Gender",
	"Height (cm)",
	"Weight (kg)",
	"Target (kg)",
}

// View implements [tea.Model]. Renders the profile as a two-column table
// with a cursor on the selected row; the selected row shows the inline
// editor while editing.
func (m *profilePage) View() string {
	if m.loading {
		return renderPage("PROFILE", "Loading...", "")
	}

	var b strings.Builder
	b.WriteString("  Field        │ Value\n")
	b.WriteString("  ─────────────┼──────────────────────────\n")
	for row := 0; row < profileRowCount; row++ {
		if row == m.cursor {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(padRight(profileRowLabels[row], 12))
		b.WriteString(" │ ")

		switch {
		case m.editing && row == m.cursor:
			b.WriteString("[" + m.input.View() + "]")
		case row == profileRowGender:
			b.WriteString(m.gender.view())
		default:
			b.WriteString(m.rowValue(row))
		}
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + renderErrorLine(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "↑/↓: row │ enter: edit │ ←/→: gender │ ctrl+s: save"
	if m.editing {
		hotKeys = "enter: apply │ esc: cancel"
	}
	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *profilePage) cmdLoad() tea.Cmd {
	ctx := m.ctx
	profiles := m.services.ProfileService

	return func() tea.Msg {
		profile, err := profiles.GetProfile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *profilePage) cmdSave(profile models.Profile) tea.Cmd {
	ctx := m.ctx
	profiles := m.services.ProfileService

	return func() tea.Msg {
		saved, err := profiles.SaveProfile(ctx, profile)
		return profileSavedMsg{profile: saved, err: err}
	}
}
