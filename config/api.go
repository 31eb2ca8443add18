package config

import (
	"strings"
	"time"
)

// APIConfig contains remote store / request gateway configuration.
type APIConfig struct {
	// BaseURL is the remote blog store endpoint.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000"`

	// PathPrefix is prepended to every logical path. Deployments disagree on
	// whether the remote store mounts its routes under "/api"; this keeps
	// that a configuration knob rather than a code fork.
	PathPrefix string `env:"PATH_PREFIX" envDefault:"/api"`

	// Timeout is the fixed upper bound for any single remote call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// CredentialCookie is the name of the cookie carrying the credential
	// artifact set by the remote store. The application only ever checks
	// its presence; it is written exclusively by response headers.
	CredentialCookie string `env:"CREDENTIAL_COOKIE" envDefault:"token"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")

	a.PathPrefix = strings.TrimSpace(a.PathPrefix)
	if a.PathPrefix != "" && !strings.HasPrefix(a.PathPrefix, "/") {
		a.PathPrefix = "/" + a.PathPrefix
	}
	a.PathPrefix = strings.TrimRight(a.PathPrefix, "/")

	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}

	if strings.TrimSpace(a.CredentialCookie) == "" {
		a.CredentialCookie = "token"
	}
}
