package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_Evaluate(t *testing.T) {
	g := New(Options{})

	tests := []struct {
		name          string
		path          string
		hasCredential bool
		want          Decision
	}{
		{"root is public", "/", false, Decision{Action: ActionAllow}},
		{"login is public", "/login", false, Decision{Action: ActionAllow}},
		{"register is public", "/register", false, Decision{Action: ActionAllow}},
		{"api passthrough without credential", "/api/blog/allBlogs", false, Decision{Action: ActionAllow}},
		{"protected without credential redirects", "/dashboard", false, Decision{Action: ActionRedirect, Target: "/login"}},
		{"nested protected without credential redirects", "/dashboard/users", false, Decision{Action: ActionRedirect, Target: "/login"}},
		{"protected with credential allowed", "/dashboard", true, Decision{Action: ActionAllow}},
		{"credential may be expired and still pass", "/dashboard/users", true, Decision{Action: ActionAllow}},
		{"root does not make everything public", "/dashboardx", false, Decision{Action: ActionRedirect, Target: "/login"}},
		{"public prefix does not match sibling", "/loginx", false, Decision{Action: ActionRedirect, Target: "/login"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Evaluate(tt.path, tt.hasCredential))
		})
	}
}

func TestGuard_Evaluate_CustomOptions(t *testing.T) {
	g := New(Options{
		PublicPaths: []string{"/", "/signin"},
		APIPrefix:   "/backend",
		LoginPath:   "/signin",
	})

	assert.True(t, g.Evaluate("/signin", false).Allowed())
	assert.True(t, g.Evaluate("/backend/auth/me", false).Allowed())

	d := g.Evaluate("/dashboard", false)
	assert.Equal(t, ActionRedirect, d.Action)
	assert.Equal(t, "/signin", d.Target)
}

func TestGuard_LoginPath(t *testing.T) {
	assert.Equal(t, "/login", New(Options{}).LoginPath())
	assert.Equal(t, "/signin", New(Options{LoginPath: "/signin"}).LoginPath())
}
