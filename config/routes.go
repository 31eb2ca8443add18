package config

import "strings"

// RoutesConfig contains navigation and access guard configuration.
type RoutesConfig struct {
	// PublicPaths are delivered without any credential artifact.
	PublicPaths []string `env:"PUBLIC_PATHS" envDefault:"/;/login;/register" envSeparator:";"`

	// LoginPath is where unauthenticated navigations are redirected.
	LoginPath string `env:"LOGIN_PATH" envDefault:"/login"`

	// RegisterPath hosts the sign-up form.
	RegisterPath string `env:"REGISTER_PATH" envDefault:"/register"`

	// ProtectedPrefix marks the area that requires a resolved identity.
	// A session resolving anonymous while the active path lies under it
	// triggers a client-side redirect to LoginPath.
	ProtectedPrefix string `env:"PROTECTED_PREFIX" envDefault:"/dashboard"`

	// HomePath is where a successful login lands.
	HomePath string `env:"HOME_PATH" envDefault:"/dashboard"`
}

// Sanitize applies guardrails to route configuration values.
func (r *RoutesConfig) Sanitize() {
	cleaned := make([]string, 0, len(r.PublicPaths))
	for _, p := range r.PublicPaths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		cleaned = append(cleaned, p)
	}
	if len(cleaned) == 0 {
		cleaned = []string{"/", "/login", "/register"}
	}
	r.PublicPaths = cleaned

	if strings.TrimSpace(r.LoginPath) == "" {
		r.LoginPath = "/login"
	}
	if strings.TrimSpace(r.RegisterPath) == "" {
		r.RegisterPath = "/register"
	}
	if strings.TrimSpace(r.ProtectedPrefix) == "" {
		r.ProtectedPrefix = "/dashboard"
	}
	if strings.TrimSpace(r.HomePath) == "" {
		r.HomePath = "/dashboard"
	}
}
