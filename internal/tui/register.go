package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	domainauth "github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
)

// registerPage is the account sign-up form. A successful registration does
// not sign the user in; it hands off to the login page.
type registerPage struct {
	name       textinput.Model
	email      textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
}

func newRegisterPage() *registerPage {
	name := textinput.New()
	name.Placeholder = "name"
	name.Focus()
	name.CharLimit = 100

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &registerPage{name: name, email: email, password: password}
}

func (p *registerPage) inputs() []*textinput.Model {
	return []*textinput.Model{&p.name, &p.email, &p.password}
}

func (p *registerPage) reset() {
	for i, in := range p.inputs() {
		in.SetValue("")
		if i == 0 {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	p.focus = 0
	p.submitting = false
}

func (p *registerPage) handleKey(a *App, msg tea.KeyMsg) tea.Cmd {
	inputs := p.inputs()
	switch msg.String() {
	case "tab", "down":
		p.setFocus((p.focus + 1) % len(inputs))
		return nil
	case "shift+tab", "up":
		p.setFocus((p.focus + len(inputs) - 1) % len(inputs))
		return nil
	case "enter":
		return p.submit(a)
	case "ctrl+l":
		return a.navigate(a.cfg.Routes.LoginPath)
	}

	var cmd tea.Cmd
	*inputs[p.focus], cmd = inputs[p.focus].Update(msg)
	return cmd
}

func (p *registerPage) setFocus(i int) {
	p.focus = i
	for j, in := range p.inputs() {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (p *registerPage) submit(a *App) tea.Cmd {
	if p.submitting {
		return nil
	}
	req := domainauth.RegisterRequest{
		Name:     strings.TrimSpace(p.name.Value()),
		Email:    strings.TrimSpace(p.email.Value()),
		Password: p.password.Value(),
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		a.toasts.Error(context.Background(), "All fields are required")
		return nil
	}
	p.submitting = true
	return func() tea.Msg {
		message, err := a.gw.Auth().Register(context.Background(), req)
		return registerDoneMsg{message: message, err: err}
	}
}

func (p *registerPage) view(a *App) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create account"))
	b.WriteString("\n")
	for i, label := range []string{"Name", "Email", "Password"} {
		b.WriteString(labelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(p.inputs()[i].View())
		b.WriteString("\n")
	}
	if p.submitting {
		b.WriteString("\n")
		b.WriteString(a.spinner.View() + " Creating account...")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter submit · tab next field · ctrl+l sign in · ctrl+c quit"))
	return b.String()
}
