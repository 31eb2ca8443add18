package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	domainauth "github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
)

// loginPage is the credential form. Submission runs as a background command
// and the form stays put on failure so the user can correct and retry.
type loginPage struct {
	email      textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
}

func newLoginPage() *loginPage {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &loginPage{email: email, password: password}
}

func (p *loginPage) reset() {
	p.email.SetValue("")
	p.password.SetValue("")
	p.password.Blur()
	p.email.Focus()
	p.focus = 0
	p.submitting = false
}

func (p *loginPage) handleKey(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		p.focus = (p.focus + 1) % 2
		if p.focus == 0 {
			p.password.Blur()
			p.email.Focus()
		} else {
			p.email.Blur()
			p.password.Focus()
		}
		return nil
	case "enter":
		return p.submit(a)
	case "ctrl+r":
		return a.navigate(a.cfg.Routes.RegisterPath)
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.email, cmd = p.email.Update(msg)
	} else {
		p.password, cmd = p.password.Update(msg)
	}
	return cmd
}

func (p *loginPage) submit(a *App) tea.Cmd {
	if p.submitting {
		return nil
	}
	email := strings.TrimSpace(p.email.Value())
	password := p.password.Value()
	if email == "" || password == "" {
		a.toasts.Error(context.Background(), "Email and password are required")
		return nil
	}
	p.submitting = true
	creds := domainauth.Credentials{Email: email, Password: password}
	return func() tea.Msg {
		result, err := a.gw.Auth().Login(context.Background(), creds)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{identity: result.User, message: result.Message}
	}
}

func (p *loginPage) view(a *App) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(p.email.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(p.password.View())
	b.WriteString("\n")
	if p.submitting {
		b.WriteString("\n")
		b.WriteString(a.spinner.View() + " Signing in...")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter submit · tab next field · ctrl+r register · ctrl+c quit"))
	return b.String()
}
