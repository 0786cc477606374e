// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/app"
	"github.com/MKhiriev/salestrak-pa/internal/service"
	"github.com/MKhiriev/salestrak-pa/internal/state"
	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const fieldMobile = "mobile"

type authField struct {
	key   string
	label string
	input textinput.Model
}

// AuthModel is the Bubble Tea model shared by the login, registration and
// password reset screens. The form state lives in [state.AuthForm]; the
// model only maps key presses onto it and dispatches the submit command.
//
// On success login opens the dashboard, while registration and reset send
// the user to the login screen with the email pre-filled.
type AuthModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	mode state.AuthMode

	form   *state.AuthForm
	fields []authField
	focus  int
	notice state.Notification
	now    func() time.Time
}

// NewAuthModel creates the screen of mode.
func NewAuthModel(ctx context.Context, auth service.ClientAuthService, mode state.AuthMode) *AuthModel {
	m := &AuthModel{
		ctx:  ctx,
		auth: auth,
		mode: mode,
		now:  time.Now,
	}
	m.reset()
	return m
}

func newAuthInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func (m *AuthModel) reset() {
	m.form = state.NewAuthForm(m.mode)
	m.notice = state.Notification{}
	m.focus = 0

	email := authField{key: validators.FieldEmail, label: "Email", input: newAuthInput("name@example.com", 254, false)}
	password := authField{key: validators.FieldPassword, label: "Password", input: newAuthInput("password", 256, true)}
	confirm := authField{key: validators.FieldConfirmPassword, label: "Confirm password", input: newAuthInput("repeat password", 256, true)}

	switch m.mode {
	case state.AuthRegister:
		m.fields = []authField{
			{key: validators.FieldName, label: "Full name", input: newAuthInput("full name", 100, false)},
			email,
			{key: fieldMobile, label: "Mobile", input: newAuthInput("mobile", 20, false)},
			password,
			confirm,
		}
	case state.AuthReset:
		m.fields = []authField{email, password, confirm}
	default:
		m.fields = []authField{email, password}
	}
	m.fields[0].input.Focus()
}

// Init implements [tea.Model]. Every visit starts from an empty form; the
// login screen additionally asks for the last used email.
func (m *AuthModel) Init() tea.Cmd {
	m.reset()
	if m.mode != state.AuthLogin {
		return textinput.Blink
	}

	ctx := m.ctx
	auth := m.auth
	return tea.Batch(textinput.Blink, func() tea.Msg {
		return lastEmailMsg{email: auth.LastEmail(ctx)}
	})
}

// Update implements [tea.Model].
func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lastEmailMsg:
		if m.form.Email == "" && msg.email != "" {
			m.setField(validators.FieldEmail, msg.email)
		}
		return m, nil

	case Notice:
		m.notice = msg.Notification
		if msg.Email != "" {
			m.setField(validators.FieldEmail, msg.Email)
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		return m, nil

	case authDoneMsg:
		return m.handleDone(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigate(pageMenu, nil)
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case " ":
			if m.onTerms() {
				m.form.AcceptTerms = !m.form.AcceptTerms
				delete(m.form.Errors, validators.FieldAcceptTerms)
				return m, nil
			}
		case "enter":
			return m.submit()
		}
	}

	if m.onTerms() {
		return m, nil
	}

	var cmd tea.Cmd
	f := &m.fields[m.focus]
	f.input, cmd = f.input.Update(msg)
	m.sync(f.key, f.input.Value())
	return m, cmd
}

func (m *AuthModel) handleDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.form.Submitting = false

	if msg.err != nil {
		var fe *validators.FieldErrors
		if errors.As(msg.err, &fe) {
			m.form.ApplyErrors(fe)
			m.notice = state.Warning(fe.Message(), m.now())
			return m, cmdClearStatus()
		}
		m.notice = state.Failure(errorText(msg.err, m.fallback()), m.now())
		return m, cmdClearStatus()
	}

	switch msg.mode {
	case state.AuthRegister:
		text := firstNonEmpty(msg.message, app.MsgRegistered)
		return m, navigate(pageLogin, Notice{Notification: state.Success(text, m.now()), Email: m.form.Email})
	case state.AuthReset:
		text := firstNonEmpty(msg.message, app.MsgPasswordReset)
		return m, navigate(pageLogin, Notice{Notification: state.Success(text, m.now()), Email: m.form.Email})
	default:
		return m, navigate(pageDashboard, Notice{Notification: state.Success(app.MsgLoggedIn, m.now())})
	}
}

func (m *AuthModel) submit() (tea.Model, tea.Cmd) {
	if m.form.Submitting {
		return m, nil
	}
	if !m.form.CanSubmit() {
		m.notice = state.Warning("Please fill in the email and a valid password", m.now())
		return m, cmdClearStatus()
	}

	m.form.Submitting = true
	m.notice = state.Notification{}

	ctx := m.ctx
	auth := m.auth
	mode := m.mode
	form := m.form

	switch mode {
	case state.AuthRegister:
		reg := form.RegistrationForm()
		return m, func() tea.Msg {
			message, err := auth.Register(ctx, reg)
			return authDoneMsg{mode: mode, message: message, err: err}
		}
	case state.AuthReset:
		reset := form.ResetForm()
		return m, func() tea.Msg {
			message, err := auth.ResetPassword(ctx, reset)
			return authDoneMsg{mode: mode, message: message, err: err}
		}
	default:
		req := form.LoginRequest()
		return m, func() tea.Msg {
			user, err := auth.Login(ctx, req)
			return authDoneMsg{mode: mode, user: user, err: err}
		}
	}
}

func (m *AuthModel) fallback() string {
	switch m.mode {
	case state.AuthRegister:
		return app.MsgRegistrationFailed
	case state.AuthReset:
		return app.MsgResetFailed
	default:
		return app.MsgLoginFailed
	}
}

func (m *AuthModel) title() string {
	switch m.mode {
	case state.AuthRegister:
		return "REGISTER"
	case state.AuthReset:
		return "RESET PASSWORD"
	default:
		return "LOG IN"
	}
}

func (m *AuthModel) submitLabel() string {
	switch m.mode {
	case state.AuthRegister:
		return "Register"
	case state.AuthReset:
		return "Update password"
	default:
		return "Log in"
	}
}

// View implements [tea.Model].
func (m *AuthModel) View() string {
	var b strings.Builder
	b.WriteString("Field             │ Value\n")
	b.WriteString("──────────────────┼────────────────────────────────────\n")

	for _, f := range m.fields {
		b.WriteString(fmt.Sprintf("%-17s │ [", f.label))
		b.WriteString(f.input.View())
		b.WriteString("]\n")
		if msg := m.form.Errors[f.key]; msg != "" {
			b.WriteString(fmt.Sprintf("%-17s │ ", ""))
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	if m.mode == state.AuthRegister {
		box := "[ ]"
		if m.form.AcceptTerms {
			box = "[x]"
		}
		b.WriteString("\n")
		b.WriteString(cursor(m.onTerms()))
		b.WriteString(box)
		b.WriteString(" I accept the terms and conditions\n")
		if msg := m.form.Errors[validators.FieldAcceptTerms]; msg != "" {
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n[")
	b.WriteString(m.submitLabel())
	if m.form.Submitting {
		b.WriteString("...")
	}
	b.WriteString("]")
	if !m.form.CanSubmit() && !m.form.Submitting {
		b.WriteString(helpStyle.Render("  (incomplete)"))
	}
	b.WriteString("\n")

	hotKeys := "esc: back │ tab: next field │ enter: submit"
	if m.mode == state.AuthRegister {
		hotKeys += " │ space: toggle terms"
	}
	return renderPage(m.title(), withNotification(b.String(), m.notice, m.now()), hotKeys)
}

func (m *AuthModel) slots() int {
	if m.mode == state.AuthRegister {
		return len(m.fields) + 1
	}
	return len(m.fields)
}

func (m *AuthModel) onTerms() bool {
	return m.mode == state.AuthRegister && m.focus == len(m.fields)
}

func (m *AuthModel) focusNext() {
	m.moveFocus(1)
}

func (m *AuthModel) focusPrev() {
	m.moveFocus(-1)
}

func (m *AuthModel) moveFocus(delta int) {
	if m.focus < len(m.fields) {
		m.fields[m.focus].input.Blur()
	}
	m.focus = (m.focus + delta + m.slots()) % m.slots()
	if m.focus < len(m.fields) {
		m.fields[m.focus].input.Focus()
	}
}

// setField writes value into both the input and the form.
func (m *AuthModel) setField(key, value string) {
	for i := range m.fields {
		if m.fields[i].key == key {
			m.fields[i].input.SetValue(value)
		}
	}
	m.sync(key, value)
}

func (m *AuthModel) sync(key, value string) {
	switch key {
	case validators.FieldName:
		m.form.Name = value
	case validators.FieldEmail:
		m.form.Email = value
	case fieldMobile:
		m.form.Mobile = value
	case validators.FieldPassword:
		m.form.SetPassword(value)
	case validators.FieldConfirmPassword:
		m.form.SetConfirm(value)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
