package controller

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/doTryCatch/blog-content-management-demo/internal/domain/model"
	apperr "github.com/doTryCatch/blog-content-management-demo/internal/errors"
	"github.com/doTryCatch/blog-content-management-demo/internal/ports"
)

// createForm is the validated shape of the composer fields. Title length is
// checked against the trimmed value.
type createForm struct {
	Title   string `validate:"required,min=3"`
	Content string
}

// CreatePostOptions groups dependencies for CreatePost.
type CreatePostOptions struct {
	API    ports.BlogAPI // Required: post collection facade
	Logger *slog.Logger  // Optional: structured logger
}

// CreatePost manages the post composer form: title, content and the publish
// toggle. Submission is gated on validation; a successful submit resets the
// form, a failed one preserves every field for retry.
type CreatePost struct {
	api      ports.BlogAPI
	logger   *slog.Logger
	validate *validator.Validate

	mu         sync.Mutex
	title      string
	content    string
	publish    bool
	submitting bool
}

// NewCreatePost constructs a CreatePost.
func NewCreatePost(opts CreatePostOptions) *CreatePost {
	if opts.API == nil {
		//nolint:forbidigo // Controller construction must fail fast during wiring when dependencies are missing
		panic("BlogAPI is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CreatePost{
		api:      opts.API,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SetTitle updates the title field.
func (c *CreatePost) SetTitle(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = v
}

// SetContent updates the content field.
func (c *CreatePost) SetContent(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = v
}

// SetPublish updates the publish toggle.
func (c *CreatePost) SetPublish(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publish = v
}

// Title returns the current title field.
func (c *CreatePost) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

// Content returns the current content field.
func (c *CreatePost) Content() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

// Publish returns the current publish toggle.
func (c *CreatePost) Publish() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.publish
}

// Submitting reports whether a submit is in flight.
func (c *CreatePost) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// CanSubmit reports whether the form passes validation: the trimmed title
// must be at least MinTitleLen characters. Content may be empty.
func (c *CreatePost) CanSubmit() bool {
	c.mu.Lock()
	form := createForm{Title: strings.TrimSpace(c.title), Content: c.content}
	c.mu.Unlock()
	return c.validate.Struct(form) == nil
}

// Submit sends the form to the remote store. Validation failures surface as
// a local error without a network call. On success the form resets to its
// initial state and the created post is returned; on failure the fields are
// preserved.
func (c *CreatePost) Submit(ctx context.Context) (model.Post, error) {
	c.mu.Lock()
	form := createForm{Title: strings.TrimSpace(c.title), Content: c.content}
	req := model.CreatePostRequest{Title: c.title, Content: c.content, Published: c.publish}
	c.submitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	if err := c.validate.Struct(form); err != nil {
		return model.Post{}, apperr.Validationf("title must be at least %d characters", model.MinTitleLen)
	}

	created, err := c.api.Create(ctx, req)
	if err != nil {
		return model.Post{}, err
	}

	c.mu.Lock()
	c.title = ""
	c.content = ""
	c.publish = false
	c.mu.Unlock()
	return created, nil
}
