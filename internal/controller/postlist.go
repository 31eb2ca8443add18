package controller

// Package controller implements the stateful list and form components
// driving the dashboard views. Each controller owns a private in-memory
// cache that is the sole source of truth for rendering; mutations touch the
// cache only after the remote call succeeded, so a failed call leaves the
// view exactly as it was. Controllers are safe for concurrent use: the
// network methods are designed to run on background workers while the UI
// loop reads the accessors.

import (
	"context"
	"log/slog"
	"sync"

	"github.com/doTryCatch/blog-content-management-demo/internal/domain/model"
	apperr "github.com/doTryCatch/blog-content-management-demo/internal/errors"
	"github.com/doTryCatch/blog-content-management-demo/internal/ports"
)

// Phase is the lifecycle state of a list view.
type Phase int

const (
	// PhaseLoading means a fetch is in flight and the cache is empty.
	PhaseLoading Phase = iota
	// PhaseReady means the cache holds the server's collection.
	PhaseReady
	// PhaseErrored means the fetch failed; ErrorMessage carries the reason.
	PhaseErrored
)

// Draft holds the ephemeral edit fields attached to a cached post while it
// is being edited. Drafts are local until submitted.
type Draft struct {
	Title   string
	Content string
}

// Entry is one cached list row: a post, optionally in the editing variant.
// A non-nil Draft marks the entry as being edited.
type Entry struct {
	Post  model.Post
	Draft *Draft
}

// Editing reports whether the entry is in the editing variant.
func (e Entry) Editing() bool { return e.Draft != nil }

// PostListOptions groups dependencies for PostList.
type PostListOptions struct {
	API      ports.BlogAPI // Required: post collection facade
	Logger   *slog.Logger  // Optional: structured logger
	MineOnly bool          // Initial scope: own posts only
}

// PostList manages the cached post collection and its edit/delete lifecycle.
// List order is whatever the remote store returned; it is never re-sorted
// locally, and an in-place update keeps the item's position.
type PostList struct {
	api    ports.BlogAPI
	logger *slog.Logger

	mu       sync.Mutex
	mineOnly bool
	phase    Phase
	errMsg   string
	entries  []Entry
	gen      uint64
}

// NewPostList constructs a PostList.
func NewPostList(opts PostListOptions) *PostList {
	if opts.API == nil {
		//nolint:forbidigo // Controller construction must fail fast during wiring when dependencies are missing
		panic("BlogAPI is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PostList{
		api:      opts.API,
		logger:   logger,
		mineOnly: opts.MineOnly,
		phase:    PhaseLoading,
	}
}

// MineOnly reports the current scope.
func (c *PostList) MineOnly() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mineOnly
}

// SetMineOnly switches the scope. The cache is discarded and the view
// re-enters loading; any fetch still in flight for the old scope is
// invalidated and its result will be dropped. The caller is expected to
// issue a Load afterwards.
func (c *PostList) SetMineOnly(mine bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mineOnly = mine
	c.gen++
	c.entries = nil
	c.errMsg = ""
	c.phase = PhaseLoading
}

// Load fetches the collection for the current scope and installs the result,
// unless a newer load or scope change superseded this one — stale results
// are dropped without touching the cache.
func (c *PostList) Load(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.phase = PhaseLoading
	c.entries = nil
	c.errMsg = ""
	mine := c.mineOnly
	c.mu.Unlock()

	var posts []model.Post
	var err error
	if mine {
		posts, err = c.api.ListMine(ctx)
	} else {
		posts, err = c.api.ListAll(ctx)
	}

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

	entries := make([]Entry, len(posts))
	for i, p := range posts {
		entries[i] = Entry{Post: p}
	}
	c.entries = entries
	c.phase = PhaseReady
	return nil
}

// Delete removes a post remotely, then reconciles the cache: the entry
// disappears only once the remote store confirmed. On failure the cache is
// untouched and the item stays visible; there is no implicit retry.
// Interactive confirmation is the caller's responsibility.
func (c *PostList) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.entries {
		if e.Post.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
	return nil
}

// BeginEdit seeds a draft from the cached item. At most one entry may be in
// the editing variant; starting a new edit silently discards any unsaved
// draft of a previous one. Returns false when id is not in the cache.
func (c *PostList) BeginEdit(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	found := false
	for i := range c.entries {
		if c.entries[i].Post.ID == id {
			c.entries[i].Draft = &Draft{
				Title:   c.entries[i].Post.Title,
				Content: c.entries[i].Post.Content,
			}
			found = true
		} else {
			c.entries[i].Draft = nil
		}
	}
	return found
}

// SetDraft updates the ephemeral draft fields of the entry under edit.
// Returns false when id is not being edited.
func (c *PostList) SetDraft(id, title, content string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].Post.ID == id && c.entries[i].Draft != nil {
			c.entries[i].Draft.Title = title
			c.entries[i].Draft.Content = content
			return true
		}
	}
	return false
}

// CancelEdit discards any draft. No network call.
func (c *PostList) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		c.entries[i].Draft = nil
	}
}

// EditingID returns the id of the entry under edit, if any.
func (c *PostList) EditingID() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.Draft != nil {
			return e.Post.ID, true
		}
	}
	return "", false
}

// SaveEdit submits the draft fields. On success the cached item is replaced
// wholesale with the server's returned representation (server-computed
// fields included), keeping its position, and the edit state is cleared. On
// failure the edit state is preserved so the user can retry or cancel.
func (c *PostList) SaveEdit(ctx context.Context, id string) error {
	c.mu.Lock()
	var req model.UpdatePostRequest
	found := false
	for _, e := range c.entries {
		if e.Post.ID == id && e.Draft != nil {
			req = model.UpdatePostRequest{Title: e.Draft.Title, Content: e.Draft.Content}
			found = true
			break
		}
	}
	c.mu.Unlock()
	if !found {
		return apperr.Validationf("post %s is not being edited", id)
	}

	updated, err := c.api.Update(ctx, id, req)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].Post.ID == id {
			c.entries[i].Post = updated
			c.entries[i].Draft = nil
			break
		}
	}
	return nil
}

// Phase returns the lifecycle state.
func (c *PostList) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// ErrorMessage returns the fetch failure message, if any.
func (c *PostList) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Entries returns a snapshot of the cached rows in server order.
func (c *PostList) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
