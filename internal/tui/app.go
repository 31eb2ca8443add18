// Package tui renders the dashboard as a terminal program. The update loop
// is the single place application state transitions happen; network calls
// run as background commands and report back through typed messages, so a
// result that arrives after the user navigated elsewhere is simply dropped.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doTryCatch/blog-content-management-demo/config"
	"github.com/doTryCatch/blog-content-management-demo/internal/controller"
	apperr "github.com/doTryCatch/blog-content-management-demo/internal/errors"
	"github.com/doTryCatch/blog-content-management-demo/internal/gateway"
	"github.com/doTryCatch/blog-content-management-demo/internal/guard"
	"github.com/doTryCatch/blog-content-management-demo/internal/notify"
	"github.com/doTryCatch/blog-content-management-demo/internal/session"
)

// Options groups the dependencies for the root program model.
type Options struct {
	Config  config.AppConfig
	Gateway *gateway.Client  // Required
	Session *session.Store   // Required
	Guard   *guard.Guard     // Required
	Toasts  *notify.Center   // Required
	Logger  *slog.Logger     // Optional
}

// App is the root model. It owns the current route, delegates input to the
// active page and runs every navigation through the route guard first.
type App struct {
	cfg    config.AppConfig
	gw     *gateway.Client
	sess   *session.Store
	guard  *guard.Guard
	toasts *notify.Center
	logger *slog.Logger

	route  string
	navSeq uint64

	spinner  spinner.Model
	width    int
	height   int
	quitting bool

	login     *loginPage
	register  *registerPage
	dashboard *dashboardPage
}

// New constructs the root model.
func New(opts Options) *App {
	if opts.Gateway == nil || opts.Session == nil || opts.Guard == nil || opts.Toasts == nil {
		//nolint:forbidigo // Program construction must fail fast during wiring when dependencies are missing
		panic("gateway, session, guard and toasts are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	return &App{
		cfg:       opts.Config,
		gw:        opts.Gateway,
		sess:      opts.Session,
		guard:     opts.Guard,
		toasts:    opts.Toasts,
		logger:    logger,
		spinner:   sp,
		login:     newLoginPage(),
		register:  newRegisterPage(),
		dashboard: newDashboardPage(opts.Gateway, logger),
	}
}

// Init starts the spinner and navigates to the landing route. The guard
// decides whether the user actually gets there or lands on the login page.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.navigate(a.cfg.Routes.HomePath))
}

// navigate runs the guard for the requested path, records the resulting
// route and kicks off session re-resolution plus whatever the target page
// needs on mount. Every navigation invalidates in-flight results of the
// previous one.
func (a *App) navigate(path string) tea.Cmd {
	decision := a.guard.Evaluate(path, a.gw.HasCredential())
	if !decision.Allowed() {
		a.logger.Debug("navigation redirected", "from", path, "to", decision.Target)
		path = decision.Target
	}
	a.route = path
	a.navSeq++
	seq := a.navSeq

	cmds := []tea.Cmd{a.resolveSessionCmd(seq, path)}
	switch path {
	case a.cfg.Routes.LoginPath:
		a.login.reset()
	case a.cfg.Routes.RegisterPath:
		a.register.reset()
	case a.cfg.Routes.HomePath:
		cmds = append(cmds, a.dashboard.mount(seq))
	}
	return tea.Batch(cmds...)
}

func (a *App) resolveSessionCmd(seq uint64, path string) tea.Cmd {
	return func() tea.Msg {
		outcome := a.sess.Resolve(context.Background(), path)
		return sessionResolvedMsg{seq: seq, outcome: outcome}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		return a, a.handleKey(msg)

	case sessionResolvedMsg:
		if msg.seq != a.navSeq {
			return a, nil
		}
		if msg.outcome.RedirectToLogin {
			return a, a.navigate(a.cfg.Routes.LoginPath)
		}
		return a, nil

	case loginDoneMsg:
		a.login.submitting = false
		if msg.err != nil {
			a.toasts.Error(context.Background(), apperr.Message(msg.err))
			return a, nil
		}
		a.sess.SetIdentity(msg.identity)
		a.toasts.Success(context.Background(), msg.message)
		return a, a.navigate(a.cfg.Routes.HomePath)

	case registerDoneMsg:
		a.register.submitting = false
		if msg.err != nil {
			a.toasts.Error(context.Background(), apperr.Message(msg.err))
			return a, nil
		}
		a.toasts.Success(context.Background(), msg.message)
		return a, a.navigate(a.cfg.Routes.LoginPath)

	case logoutDoneMsg:
		a.toasts.Info(context.Background(), "Signed out")
		return a, a.navigate(a.cfg.Routes.LoginPath)

	case postsLoadedMsg:
		if msg.seq != a.navSeq {
			return a, nil
		}
		if msg.err != nil {
			a.toasts.Error(context.Background(), apperr.Message(msg.err))
		}
		a.dashboard.clampCursor()
		return a, nil

	case usersLoadedMsg:
		if msg.seq != a.navSeq {
			return a, nil
		}
		if msg.err != nil {
			a.toasts.Error(context.Background(), apperr.Message(msg.err))
		}
		a.dashboard.clampCursor()
		return a, nil

	case postCreatedMsg:
		if msg.err != nil {
			a.toasts.Error(context.Background(), apperr.Message(msg.err))
			return a, nil
		}
		a.toasts.Success(context.Background(), "Blog created successfully")
		a.dashboard.syncComposeInputs()
		return a, nil

	case postSavedMsg:
		if msg.err != nil {
			a.toasts.Error(context.Background(), apperr.Message(msg.err))
			return a, nil
		}
		a.dashboard.editing = false
		a.toasts.Success(context.Background(), "Post updated")
		return a, nil

	case postDeletedMsg:
		if msg.err != nil {
			a.toasts.Error(context.Background(), apperr.Message(msg.err))
			return a, nil
		}
		a.toasts.Success(context.Background(), "Post deleted")
		a.dashboard.clampCursor()
		return a, nil

	case userDeletedMsg:
		if msg.err != nil {
			a.toasts.Error(context.Background(), apperr.Message(msg.err))
			return a, nil
		}
		a.toasts.Success(context.Background(), "User deleted")
		a.dashboard.clampCursor()
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch a.route {
	case a.cfg.Routes.LoginPath:
		return a.login.handleKey(a, msg)
	case a.cfg.Routes.RegisterPath:
		return a.register.handleKey(a, msg)
	case a.cfg.Routes.HomePath:
		return a.dashboard.handleKey(a, msg)
	default:
		return a.handleHomeKey(msg)
	}
}

// handleHomeKey covers the public landing route.
func (a *App) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "l":
		return a.navigate(a.cfg.Routes.LoginPath)
	case "r":
		return a.navigate(a.cfg.Routes.RegisterPath)
	case "d":
		return a.navigate(a.cfg.Routes.HomePath)
	case "q":
		a.quitting = true
		return tea.Quit
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var body string
	switch a.route {
	case a.cfg.Routes.LoginPath:
		body = a.login.view(a)
	case a.cfg.Routes.RegisterPath:
		body = a.register.view(a)
	case a.cfg.Routes.HomePath:
		body = a.dashboard.view(a)
	default:
		body = a.homeView()
	}

	var b strings.Builder
	b.WriteString(body)
	if toasts := a.toastView(); toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
	}
	return b.String()
}

func (a *App) homeView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Blog Dashboard"))
	b.WriteString("\n")
	snap := a.sess.Snapshot()
	if snap.State == session.StateAuthenticated && snap.Identity != nil {
		b.WriteString(infoStyle.Render(fmt.Sprintf("Signed in as %s", snap.Identity.Name)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("l login · r register · d dashboard · q quit"))
	return b.String()
}

func (a *App) toastView() string {
	toasts := a.toasts.Toasts()
	if len(toasts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range toasts {
		var style lipgloss.Style
		switch t.Level {
		case notify.LevelError:
			style = errorStyle
		case notify.LevelSuccess:
			style = successStyle
		default:
			style = infoStyle
		}
		b.WriteString(style.Render("• " + t.Message))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// sessionLoadingView is shared by pages that wait on session resolution.
func (a *App) sessionLoadingView() string {
	return a.spinner.View() + " Loading..."
}

// adminVisible reports whether the admin tab may be offered: the session
// must be settled and the identity must carry the admin role.
func (a *App) adminVisible() bool {
	snap := a.sess.Snapshot()
	return !snap.Loading &&
		snap.State == session.StateAuthenticated &&
		snap.Identity != nil &&
		snap.Identity.Role.IsAdmin()
}

var _ tea.Model = (*App)(nil)

// phaseLine renders the standard list status line for a controller phase.
func phaseLine(sp spinner.Model, phase controller.Phase, errMsg string) (string, bool) {
	switch phase {
	case controller.PhaseLoading:
		return sp.View() + " Loading...", true
	case controller.PhaseErrored:
		return errorStyle.Render(errMsg), true
	default:
		return "", false
	}
}
