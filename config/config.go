package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Remote store / request gateway configuration
//   - routes.go: Navigation and access guard configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging).
	IsDev bool `env:"DEV" envDefault:"false"`

	// API is the remote store endpoint configuration.
	API APIConfig `envPrefix:"API_"`

	// Routes is the navigation and guard configuration.
	Routes RoutesConfig `envPrefix:"ROUTES_"`

	// LogFile is where structured logs are written. The terminal itself
	// belongs to the UI, so logs never go to stdout.
	LogFile string `env:"LOG_FILE" envDefault:"blogdash.log"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Routes.Sanitize()
}
