package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/doTryCatch/blog-content-management-demo/internal/domain/model"
	apperr "github.com/doTryCatch/blog-content-management-demo/internal/errors"
	"github.com/doTryCatch/blog-content-management-demo/internal/ports"
)

// UserListOptions groups dependencies for UserList.
type UserListOptions struct {
	API    ports.UserAPI // Required: user administration facade
	Logger *slog.Logger  // Optional: structured logger
}

// UserList manages the cached account collection for the admin view.
// Accounts support removal only; there is no local edit state.
type UserList struct {
	api    ports.UserAPI
	logger *slog.Logger

	mu     sync.Mutex
	phase  Phase
	errMsg string
	users  []model.User
	gen    uint64
}

// NewUserList constructs a UserList.
func NewUserList(opts UserListOptions) *UserList {
	if opts.API == nil {
		//nolint:forbidigo // Controller construction must fail fast during wiring when dependencies are missing
		panic("UserAPI is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UserList{api: opts.API, logger: logger, phase: PhaseLoading}
}

// Load fetches the account collection and installs the result, dropping it
// when a newer load superseded this one.
func (c *UserList) Load(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.phase = PhaseLoading
	c.users = nil
	c.errMsg = ""
	c.mu.Unlock()

	users, err := c.api.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil
	}
	if err != nil {
		c.phase = PhaseErrored
		c.errMsg = apperr.Message(err)
		return err
	}
	c.users = users
	c.phase = PhaseReady
	return nil
}

// Delete removes an account remotely, then drops it from the cache. On
// failure the cache is untouched.
func (c *UserList) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, u := range c.users {
		if u.ID == id {
			c.users = append(c.users[:i], c.users[i+1:]...)
			break
		}
	}
	return nil
}

// Phase returns the lifecycle state.
func (c *UserList) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// ErrorMessage returns the fetch failure message, if any.
func (c *UserList) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Users returns a snapshot of the cached accounts in server order.
func (c *UserList) Users() []model.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.User, len(c.users))
	copy(out, c.users)
	return out
}
