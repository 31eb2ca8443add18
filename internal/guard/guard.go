package guard

// Package guard implements the edge access check that runs before any page
// is activated. It reasons only about the request path and whether a
// credential artifact is present; it never resolves the identity behind it.
// A credential may be expired or invalid and still pass here: the session
// store is the sufficient authority and compensates after resolution.

import "strings"

// Action is the routing decision the guard returns.
type Action int

const (
	// ActionAllow lets the navigation proceed.
	ActionAllow Action = iota
	// ActionRedirect sends the navigation to Decision.Target instead.
	ActionRedirect
)

// Decision is the guard's verdict for a single navigation.
type Decision struct {
	Action Action
	// Target is the redirect destination; set only when Action is ActionRedirect.
	Target string
}

// Allowed reports whether the navigation may proceed.
func (d Decision) Allowed() bool { return d.Action == ActionAllow }

const (
	defaultLoginPath = "/login"
	defaultAPIPrefix = "/api"
)

// Options configures a Guard.
type Options struct {
	// PublicPaths are delivered without any credential. Defaults to
	// "/", "/login", "/register".
	PublicPaths []string
	// APIPrefix marks passthrough traffic the guard never gates; the remote
	// service is responsible for its own authorization. Defaults to "/api".
	APIPrefix string
	// LoginPath is the redirect target for unauthenticated navigations.
	// Defaults to "/login".
	LoginPath string
}

// Guard makes synchronous allow/redirect decisions for navigations.
// It is stateless and performs no I/O; Evaluate runs on every navigation.
type Guard struct {
	publicPaths []string
	apiPrefix   string
	loginPath   string
}

// New constructs a Guard, applying defaults for unset options.
func New(opts Options) *Guard {
	publicPaths := opts.PublicPaths
	if len(publicPaths) == 0 {
		publicPaths = []string{"/", "/login", "/register"}
	}
	apiPrefix := opts.APIPrefix
	if apiPrefix == "" {
		apiPrefix = defaultAPIPrefix
	}
	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = defaultLoginPath
	}
	return &Guard{
		publicPaths: publicPaths,
		apiPrefix:   apiPrefix,
		loginPath:   loginPath,
	}
}

// Evaluate returns the routing decision for a navigation to path given
// whether the credential artifact is present. Presence is the only signal
// inspected; validity is the session store's problem.
func (g *Guard) Evaluate(path string, hasCredential bool) Decision {
	if g.isPublic(path) || matchesPrefix(path, g.apiPrefix) {
		return Decision{Action: ActionAllow}
	}

	if !hasCredential {
		return Decision{Action: ActionRedirect, Target: g.loginPath}
	}

	return Decision{Action: ActionAllow}
}

// LoginPath returns the configured redirect target for unauthenticated
// navigations.
func (g *Guard) LoginPath() string { return g.loginPath }

func (g *Guard) isPublic(path string) bool {
	for _, p := range g.publicPaths {
		if matchesPrefix(path, p) {
			return true
		}
	}
	return false
}

// matchesPrefix reports whether path equals prefix or lies under it on a
// segment boundary. The root path matches only itself; a bare prefix match
// would mark every path public.
func matchesPrefix(path, prefix string) bool {
	if prefix == "/" {
		return path == "/"
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
