package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// signupPage is the account-creation form: username, password, password
// confirmation and an optional contact email. The password pair is checked
// locally before the async register command goes out, mirroring the
// server-side validation.
type signupPage struct {
	ctx      context.Context
	services *service.ClientServices

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newSignupPage(ctx context.Context, services *service.ClientServices) *signupPage {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 20
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	confirmInput := textinput.New()
	confirmInput.Placeholder = "repeat password"
	confirmInput.CharLimit = 256
	confirmInput.Width = 40
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	emailInput := textinput.New()
	emailInput.Placeholder = "email (optional)"
	emailInput.CharLimit = 255
	emailInput.Width = 40

	return &signupPage{
		ctx:      ctx,
		services: services,
		inputs:   []textinput.Model{loginInput, passwordInput, confirmInput, emailInput},
	}
}

func (m *signupPage) Init() tea.Cmd {
	return textinput.Blink
}

func (m *signupPage) capturingInput() bool {
	return true
}

// Update implements [tea.Model]. Handled messages:
//   - [authDoneMsg] — clears submitting state; on error, populates errMsg.
//   - esc           — returns to the sign-in page.
//   - tab           — moves focus to the next input.
//   - shift+tab     — moves focus to the previous input.
//   - enter         — validates inputs and dispatches the async register command.
//
// All other key events are forwarded to the focused input widget.
func (m *signupPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = authErrorMessage(result.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return navigateTo{page: pageLogin} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			login := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			repeat := m.inputs[2].Value()
			email := strings.TrimSpace(m.inputs[3].Value())
			if login == "" || pass == "" {
				m.errMsg = "Login and password are required"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(login, pass, email)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *signupPage) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Login    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Repeat   │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Email    │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderErrorLine(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "enter: create account │ tab: next field │ esc: back to sign in")
}

func (m *signupPage) cmdRegister(login, pass, email string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		session, err := auth.Register(ctx, models.Credentials{
			Login:    login,
			Password: pass,
			Email:    email,
		})

		return authDoneMsg{
			session:  session,
			greeting: "Welcome, " + session.Login + "! Fill in your profile to get better plans.",
			err:      err,
		}
	}
}

func (m *signupPage) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *signupPage) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
