package session

// Package session owns the resolved identity, the single authority the rest
// of the UI trusts for "who is logged in". The edge guard only checks that a
// credential artifact exists; this store determines whether it is actually
// valid, and compensates for guard false positives by telling the router to
// redirect when a protected page resolves anonymous.

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	domainauth "github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
	"github.com/doTryCatch/blog-content-management-demo/internal/ports"
)

// State is the session resolution state.
type State int

const (
	// StateUnresolved means no resolution has completed yet.
	StateUnresolved State = iota
	// StateAuthenticated means a valid Identity is present.
	StateAuthenticated
	// StateAnonymous means resolution completed without a valid session.
	StateAnonymous
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Snapshot is the read model consumers render from. Identity is nil unless
// State is StateAuthenticated. While Loading is true, consumers must not
// render identity-dependent UI.
type Snapshot struct {
	State    State
	Identity *domainauth.Identity
	Loading  bool
}

// Outcome is the result of a resolution attempt for a specific active path.
type Outcome struct {
	Snapshot Snapshot
	// RedirectToLogin is set when resolution landed on anonymous while the
	// active path lies in the protected area: the guard let the navigation
	// through on credential presence alone and this is the compensation.
	RedirectToLogin bool
}

// Options groups dependencies for Store.
type Options struct {
	API             ports.AuthAPI // Required: identity service facade
	ProtectedPrefix string        // Optional: defaults to "/dashboard"
	Logger          *slog.Logger  // Optional: structured logger
}

// Store holds the resolved identity for the lifetime of the UI process.
// Exactly one instance exists; it is constructed explicitly and injected
// into the components that need it. Safe for concurrent use.
type Store struct {
	api             ports.AuthAPI
	protectedPrefix string
	logger          *slog.Logger

	mu        sync.Mutex
	state     State
	identity  *domainauth.Identity
	resolving bool

	group singleflight.Group
}

// New constructs a Store.
func New(opts Options) *Store {
	if opts.API == nil {
		//nolint:forbidigo // Store construction must fail fast during wiring when dependencies are missing
		panic("AuthAPI is required")
	}

	prefix := opts.ProtectedPrefix
	if prefix == "" {
		prefix = "/dashboard"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		api:             opts.API,
		protectedPrefix: prefix,
		logger:          logger,
	}
}

// Resolve determines the Identity behind the current credential artifact.
// path is the active navigation path, used only to decide whether an
// anonymous outcome must redirect.
//
// Concurrent calls collapse into a single remote call and a single state
// transition; sequential calls each re-resolve, which is what keeps the
// store honest when the user navigates between protected paths after the
// credential expired mid-session.
func (s *Store) Resolve(ctx context.Context, path string) Outcome {
	v, _, _ := s.group.Do("resolve", func() (any, error) {
		s.beginResolve()

		identity, err := s.api.Me(ctx)
		if err != nil {
			s.logger.DebugContext(ctx, "session resolution failed", "error", err)
			return s.applyAnonymous(), nil
		}
		return s.applyIdentity(identity), nil
	})

	snap := v.(Snapshot)
	return Outcome{
		Snapshot:        snap,
		RedirectToLogin: snap.State == StateAnonymous && s.isProtected(path),
	}
}

// SetIdentity installs the Identity returned by an explicit login. No remote
// round-trip: the login response already carried it.
func (s *Store) SetIdentity(identity domainauth.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := identity
	s.identity = &id
	s.state = StateAuthenticated
}

// Logout clears the session. The remote logout is best-effort: a failure is
// logged and swallowed, because logging out locally must always succeed.
func (s *Store) Logout(ctx context.Context) Snapshot {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.ErrorContext(ctx, "remote logout failed", "error", err)
	}
	return s.applyAnonymous()
}

// Snapshot returns the current read model.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Loading reports whether the initial resolution is still in flight.
func (s *Store) Loading() bool {
	return s.Snapshot().Loading
}

func (s *Store) beginResolve() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolving = true
}

func (s *Store) applyIdentity(identity domainauth.Identity) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := identity
	s.identity = &id
	s.state = StateAuthenticated
	s.resolving = false
	return s.snapshotLocked()
}

func (s *Store) applyAnonymous() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.state = StateAnonymous
	s.resolving = false
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	// Each snapshot carries its own copy so a consumer can never mutate the
	// store's identity through a stale snapshot.
	var identity *domainauth.Identity
	if s.identity != nil {
		id := *s.identity
		identity = &id
	}
	return Snapshot{
		State:    s.state,
		Identity: identity,
		Loading:  s.state == StateUnresolved && s.resolving,
	}
}

func (s *Store) isProtected(path string) bool {
	return path == s.protectedPrefix || strings.HasPrefix(path, s.protectedPrefix+"/")
}
