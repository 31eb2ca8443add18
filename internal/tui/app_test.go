package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doTryCatch/blog-content-management-demo/config"
	domainauth "github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
	apperr "github.com/doTryCatch/blog-content-management-demo/internal/errors"
	"github.com/doTryCatch/blog-content-management-demo/internal/gateway"
	"github.com/doTryCatch/blog-content-management-demo/internal/guard"
	mockapi "github.com/doTryCatch/blog-content-management-demo/internal/mocks/api"
	"github.com/doTryCatch/blog-content-management-demo/internal/notify"
	"github.com/doTryCatch/blog-content-management-demo/internal/session"
)

// apiStub serves just enough of the remote API for program-level tests:
// login issues the credential cookie, everything else is unauthenticated.
func apiStub(role domainauth.Role) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Login successful",
			"user":    map[string]any{"id": "u1", "name": "Ada", "email": "ada@example.com", "role": role},
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthenticated"})
	})
	return mux
}

func defaultRoutes() config.RoutesConfig {
	return config.RoutesConfig{
		PublicPaths:     []string{"/", "/login", "/register"},
		LoginPath:       "/login",
		RegisterPath:    "/register",
		ProtectedPrefix: "/dashboard",
		HomePath:        "/dashboard",
	}
}

func newTestApp(t *testing.T, handler http.Handler) *App {
	t.Helper()
	return newTestAppWithRoutes(t, handler, defaultRoutes())
}

func newTestAppWithRoutes(t *testing.T, handler http.Handler, routes config.RoutesConfig) *App {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.AppConfig{
		API: config.APIConfig{
			BaseURL:          srv.URL,
			PathPrefix:       "/api",
			Timeout:          2 * time.Second,
			CredentialCookie: "token",
		},
		Routes: routes,
	}

	gw, err := gateway.New(gateway.Options{
		BaseURL:          cfg.API.BaseURL,
		PathPrefix:       cfg.API.PathPrefix,
		Timeout:          cfg.API.Timeout,
		CredentialCookie: cfg.API.CredentialCookie,
	})
	require.NoError(t, err)

	sess := session.New(session.Options{
		API:             gw.Auth(),
		ProtectedPrefix: cfg.Routes.ProtectedPrefix,
	})
	g := guard.New(guard.Options{
		PublicPaths: cfg.Routes.PublicPaths,
		LoginPath:   cfg.Routes.LoginPath,
	})

	return New(Options{
		Config:  cfg,
		Gateway: gw,
		Session: sess,
		Guard:   g,
		Toasts:  notify.NewCenter(notify.CenterOptions{}),
	})
}

// signIn drives the login form end to end: fill, submit, run the resulting
// command and feed its message back into the loop.
func signIn(t *testing.T, app *App) *App {
	t.Helper()
	app.login.email.SetValue("ada@example.com")
	app.login.password.SetValue("secret")
	cmd := app.login.submit(app)
	require.NotNil(t, cmd)
	model, _ := app.Update(cmd())
	return model.(*App)
}

func TestApp_LandsOnLoginWithoutCredential(t *testing.T) {
	app := newTestApp(t, apiStub(domainauth.RoleUser))
	_ = app.Init()
	// The guard intercepts the dashboard landing before any render.
	assert.Equal(t, "/login", app.route)
}

func TestApp_LoginSuccessNavigatesHome(t *testing.T) {
	app := newTestApp(t, apiStub(domainauth.RoleUser))
	_ = app.Init()

	app = signIn(t, app)

	assert.Equal(t, "/dashboard", app.route)
	snap := app.sess.Snapshot()
	assert.Equal(t, session.StateAuthenticated, snap.State)
	require.NotNil(t, snap.Identity)
	assert.Equal(t, "Ada", snap.Identity.Name)

	toasts := app.toasts.Toasts()
	require.NotEmpty(t, toasts)
	assert.Equal(t, "Login successful", toasts[len(toasts)-1].Message)
}

func TestApp_LoginFailureStaysOnLogin(t *testing.T) {
	app := newTestApp(t, apiStub(domainauth.RoleUser))
	_ = app.Init()

	model, _ := app.Update(loginDoneMsg{err: apperr.Auth("Login failed", 401)})
	app = model.(*App)

	assert.Equal(t, "/login", app.route)
	assert.False(t, app.login.submitting)
	toasts := app.toasts.Toasts()
	require.NotEmpty(t, toasts)
	assert.Equal(t, notify.LevelError, toasts[len(toasts)-1].Level)
	assert.Equal(t, "Login failed", toasts[len(toasts)-1].Message)
}

func TestApp_SessionRedirectMessage(t *testing.T) {
	app := newTestApp(t, apiStub(domainauth.RoleUser))
	_ = app.Init()
	app = signIn(t, app)
	require.Equal(t, "/dashboard", app.route)

	t.Run("stale sequence is dropped", func(t *testing.T) {
		msg := sessionResolvedMsg{seq: app.navSeq - 1, outcome: session.Outcome{RedirectToLogin: true}}
		model, _ := app.Update(msg)
		app = model.(*App)
		assert.Equal(t, "/dashboard", app.route)
	})

	t.Run("current sequence triggers redirect", func(t *testing.T) {
		msg := sessionResolvedMsg{seq: app.navSeq, outcome: session.Outcome{RedirectToLogin: true}}
		model, _ := app.Update(msg)
		app = model.(*App)
		assert.Equal(t, "/login", app.route)
	})
}

func TestApp_RegisterSuccessHandsOffToLogin(t *testing.T) {
	app := newTestApp(t, apiStub(domainauth.RoleUser))
	_ = app.Init()
	model, _ := app.Update(registerDoneMsg{message: "User registered successfully"})
	app = model.(*App)

	assert.Equal(t, "/login", app.route)
	// Registration never signs the user in.
	assert.NotEqual(t, session.StateAuthenticated, app.sess.Snapshot().State)
}

func TestDashboard_AdminTabGating(t *testing.T) {
	t.Run("regular user cannot reach the users tab", func(t *testing.T) {
		app := newTestApp(t, apiStub(domainauth.RoleUser))
		_ = app.Init()
		app = signIn(t, app)
		require.False(t, app.adminVisible())

		key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")}
		_ = app.dashboard.handleKey(app, key)
		assert.Equal(t, tabAllPosts, app.dashboard.tab)
	})

	t.Run("admin can", func(t *testing.T) {
		app := newTestApp(t, apiStub(domainauth.RoleAdmin))
		_ = app.Init()
		app = signIn(t, app)
		require.True(t, app.adminVisible())

		key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")}
		_ = app.dashboard.handleKey(app, key)
		assert.Equal(t, tabUsers, app.dashboard.tab)
	})
}

func TestDashboard_SessionLoadingGatesRoleUI(t *testing.T) {
	app := newTestApp(t, apiStub(domainauth.RoleAdmin))
	app.route = "/dashboard"

	release := make(chan struct{})
	started := make(chan struct{})
	fake := &mockapi.FakeAuthAPI{
		MeFunc: func(context.Context) (domainauth.Identity, error) {
			close(started)
			<-release
			return domainauth.Identity{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: domainauth.RoleAdmin}, nil
		},
	}
	app.sess = session.New(session.Options{API: fake, ProtectedPrefix: "/dashboard"})

	done := make(chan session.Outcome, 1)
	go func() { done <- app.sess.Resolve(context.Background(), "/dashboard") }()
	<-started

	// Resolution in flight: no role-gated element may render, even though
	// the pending identity is an admin.
	require.True(t, app.sess.Snapshot().Loading)
	assert.False(t, app.adminVisible())
	assert.NotContains(t, app.dashboard.tabBarView(app), "Users")
	assert.Equal(t, app.sessionLoadingView(), app.dashboard.view(app))

	close(release)
	outcome := <-done
	require.Equal(t, session.StateAuthenticated, outcome.Snapshot.State)
	assert.True(t, app.adminVisible())
	assert.Contains(t, app.dashboard.tabBarView(app), "Users")
	assert.NotEqual(t, app.sessionLoadingView(), app.dashboard.view(app))
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	app := newTestApp(t, apiStub(domainauth.RoleUser))
	_ = app.Init()
	app = signIn(t, app)
	require.Equal(t, "/dashboard", app.route)

	cmd := app.dashboard.logoutCmd(app)
	require.NotNil(t, cmd)
	model, _ := app.Update(cmd())
	app = model.(*App)

	assert.Equal(t, "/login", app.route)
	assert.Equal(t, session.StateAnonymous, app.sess.Snapshot().State)
	toasts := app.toasts.Toasts()
	require.NotEmpty(t, toasts)
	assert.Equal(t, "Signed out", toasts[len(toasts)-1].Message)
}

func TestApp_RegisterRouteConfigurable(t *testing.T) {
	routes := defaultRoutes()
	routes.RegisterPath = "/signup"
	routes.PublicPaths = []string{"/", "/login", "/signup"}

	app := newTestAppWithRoutes(t, apiStub(domainauth.RoleUser), routes)
	_ = app.Init()
	require.Equal(t, "/login", app.route)

	_ = app.login.handleKey(app, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, "/signup", app.route)

	model, _ := app.Update(registerDoneMsg{message: "User registered successfully"})
	app = model.(*App)
	assert.Equal(t, "/login", app.route)
}

func TestDashboard_DeleteRequiresConfirmation(t *testing.T) {
	app := newTestApp(t, apiStub(domainauth.RoleUser))
	d := app.dashboard
	d.confirm = &confirmAction{kind: "post", id: "1", label: "First"}

	cmd := d.handleKey(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Nil(t, cmd)
	assert.Nil(t, d.confirm)
}
