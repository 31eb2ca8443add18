package session

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
	apperr "github.com/doTryCatch/blog-content-management-demo/internal/errors"
	mockapi "github.com/doTryCatch/blog-content-management-demo/internal/mocks/api"
)

var testIdentity = domainauth.Identity{ID: "1", Email: "a@b.com", Name: "A", Role: domainauth.RoleUser}

func TestNew_RequiresAPI(t *testing.T) {
	assert.Panics(t, func() {
		New(Options{})
	})
}

func TestStore_Resolve_Success(t *testing.T) {
	api := &mockapi.FakeAuthAPI{
		MeFunc: func(context.Context) (domainauth.Identity, error) {
			return testIdentity, nil
		},
	}
	store := New(Options{API: api})

	out := store.Resolve(context.Background(), "/dashboard")

	assert.Equal(t, StateAuthenticated, out.Snapshot.State)
	require.NotNil(t, out.Snapshot.Identity)
	assert.Equal(t, testIdentity, *out.Snapshot.Identity)
	assert.False(t, out.RedirectToLogin)
	assert.False(t, out.Snapshot.Loading)
}

func TestStore_Resolve_FailureOnProtectedPathRedirects(t *testing.T) {
	// The guard allowed this navigation because a credential artifact was
	// present; the store discovering it is invalid must compensate.
	api := &mockapi.FakeAuthAPI{
		MeFunc: func(context.Context) (domainauth.Identity, error) {
			return domainauth.Identity{}, apperr.Auth("Session expired", http.StatusUnauthorized)
		},
	}
	store := New(Options{API: api})

	out := store.Resolve(context.Background(), "/dashboard/users")

	assert.Equal(t, StateAnonymous, out.Snapshot.State)
	assert.Nil(t, out.Snapshot.Identity)
	assert.True(t, out.RedirectToLogin)
}

func TestStore_Resolve_FailureOnPublicPathDoesNotRedirect(t *testing.T) {
	api := &mockapi.FakeAuthAPI{
		MeFunc: func(context.Context) (domainauth.Identity, error) {
			return domainauth.Identity{}, apperr.Network("Session check failed", nil)
		},
	}
	store := New(Options{API: api})

	out := store.Resolve(context.Background(), "/login")

	assert.Equal(t, StateAnonymous, out.Snapshot.State)
	assert.False(t, out.RedirectToLogin)
}

func TestStore_Resolve_ConcurrentCallsCollapse(t *testing.T) {
	release := make(chan struct{})
	api := &mockapi.FakeAuthAPI{
		MeFunc: func(context.Context) (domainauth.Identity, error) {
			<-release
			return testIdentity, nil
		},
	}
	store := New(Options{API: api})

	const callers = 4
	outcomes := make([]Outcome, callers)
	var wg sync.WaitGroup
	var started sync.WaitGroup
	wg.Add(callers)
	started.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			started.Done()
			outcomes[i] = store.Resolve(context.Background(), "/dashboard")
		}(i)
	}

	started.Wait()
	// Give every goroutine a chance to reach the singleflight barrier
	// before releasing the single in-flight call.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), api.MeCalls.Load(), "one remote call, one state transition")
	for _, out := range outcomes {
		assert.Equal(t, StateAuthenticated, out.Snapshot.State)
	}
}

func TestStore_Resolve_SequentialCallsReResolve(t *testing.T) {
	api := &mockapi.FakeAuthAPI{
		MeFunc: func(context.Context) (domainauth.Identity, error) {
			return testIdentity, nil
		},
	}
	store := New(Options{API: api})

	store.Resolve(context.Background(), "/dashboard")
	store.Resolve(context.Background(), "/dashboard/users")

	assert.Equal(t, int64(2), api.MeCalls.Load(), "path changes trigger fresh resolutions")
}

func TestStore_LoadingFlag(t *testing.T) {
	release := make(chan struct{})
	api := &mockapi.FakeAuthAPI{
		MeFunc: func(context.Context) (domainauth.Identity, error) {
			<-release
			return testIdentity, nil
		},
	}
	store := New(Options{API: api})

	assert.False(t, store.Loading(), "no resolution attempted yet")

	done := make(chan Outcome, 1)
	go func() {
		done <- store.Resolve(context.Background(), "/dashboard")
	}()

	require.Eventually(t, store.Loading, time.Second, 5*time.Millisecond,
		"loading is true while the initial resolution is in flight")

	close(release)
	out := <-done

	assert.False(t, store.Loading())
	assert.False(t, out.Snapshot.Loading)
}

func TestStore_SetIdentity_NoRemoteCall(t *testing.T) {
	api := &mockapi.FakeAuthAPI{}
	store := New(Options{API: api})

	store.SetIdentity(testIdentity)

	snap := store.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	require.NotNil(t, snap.Identity)
	assert.Equal(t, testIdentity, *snap.Identity)
	assert.Equal(t, int64(0), api.MeCalls.Load(), "login response already carried the identity")
}

func TestStore_Logout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := &mockapi.FakeAuthAPI{}
		store := New(Options{API: api})
		store.SetIdentity(testIdentity)

		snap := store.Logout(context.Background())

		assert.Equal(t, StateAnonymous, snap.State)
		assert.Nil(t, snap.Identity)
		assert.Equal(t, int64(1), api.LogoutCalls.Load())
	})

	t.Run("remote failure still clears locally", func(t *testing.T) {
		api := &mockapi.FakeAuthAPI{
			LogoutFunc: func(context.Context) error {
				return apperr.Network("Logout failed", nil)
			},
		}
		store := New(Options{API: api})
		store.SetIdentity(testIdentity)

		snap := store.Logout(context.Background())

		assert.Equal(t, StateAnonymous, snap.State)
		assert.Nil(t, snap.Identity)
	})
}

func TestStore_IdentityReplacedWholesale(t *testing.T) {
	api := &mockapi.FakeAuthAPI{}
	store := New(Options{API: api})

	store.SetIdentity(testIdentity)
	first := store.Snapshot().Identity

	other := domainauth.Identity{ID: "2", Email: "b@b.com", Name: "B", Role: domainauth.RoleAdmin}
	store.SetIdentity(other)

	snap := store.Snapshot()
	assert.Equal(t, other, *snap.Identity)
	assert.Equal(t, testIdentity, *first, "previously handed out identities are unaffected")
}

func TestStore_SnapshotIdentityIsACopy(t *testing.T) {
	api := &mockapi.FakeAuthAPI{}
	store := New(Options{API: api})
	store.SetIdentity(testIdentity)

	snap := store.Snapshot()
	require.NotNil(t, snap.Identity)
	snap.Identity.Name = "mutated"
	snap.Identity.Role = domainauth.RoleAdmin

	// Writing through a snapshot must never reach the store's state.
	fresh := store.Snapshot()
	require.NotNil(t, fresh.Identity)
	assert.Equal(t, testIdentity, *fresh.Identity)
}
