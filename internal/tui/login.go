// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginPage is the Bubble Tea model for the sign-in screen. It renders two
// text inputs (username and password) and dispatches an async login command on
// form submission. On success an [authDoneMsg] is produced and handled by
// [rootModel] to finish the authentication flow.
type loginPage struct {
	ctx      context.Context
	services *service.ClientServices

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string
}

// newLoginPage creates a [loginPage] with pre-configured username and password
// inputs. The username field receives focus immediately; the password field
// uses masked echo.
func newLoginPage(ctx context.Context, services *service.ClientServices) *loginPage {
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

	return &loginPage{
		ctx:      ctx,
		services: services,
		inputs:   []textinput.Model{loginInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *loginPage) Init() tea.Cmd {
	return textinput.Blink
}

// capturingInput reports that the form owns the keyboard, which on this page
// is always: one of the two text fields is focused the whole time.
func (m *loginPage) capturingInput() bool {
	return true
}

// Update implements [tea.Model]. Handled messages:
//   - [authDoneMsg] — clears submitting state; on error, populates errMsg.
//   - [statusMsg]   — shows a router notice, e.g. after a logout.
//   - ctrl+n        — switches to the sign-up page.
//   - tab           — moves focus to the next input.
//   - shift+tab     — moves focus to the previous input.
//   - enter         — validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *loginPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = authErrorMessage(result.err)
		}
		return m, nil
	case statusMsg:
		m.status = result.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+n":
			return m, func() tea.Msg { return navigateTo{page: pageSignup} }
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
			if login == "" || pass == "" {
				m.errMsg = "Login and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdLogin(login, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the sign-in form as a two-column table
// with username and password inputs, a submission indicator, and an optional
// error or status line.
func (m *loginPage) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Login    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderErrorLine(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "enter: sign in │ tab: next field │ ctrl+n: create account")
}

func (m *loginPage) cmdLogin(login, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.Credentials{
			Login:    login,
			Password: pass,
		})

		return authDoneMsg{
			session:  session,
			greeting: "Welcome back, " + session.Login + "!",
			err:      err,
		}
	}
}

func (m *loginPage) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginPage) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
