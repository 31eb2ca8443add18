// Package notify implements the transient toast layer surfacing the outcome
// of user actions. Toasts are held in a small in-memory center read by the
// renderer; optional sinks receive a copy of every toast for fan-out.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a toast.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is one transient notification.
type Toast struct {
	ID      string
	Level   Level
	Message string
	At      time.Time
}

// Sink describes a destination capable of consuming toasts.
type Sink interface {
	SendToast(ctx context.Context, toast Toast) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, toast Toast) error

// SendToast implements the Sink interface.
func (f SinkFunc) SendToast(ctx context.Context, toast Toast) error {
	if f == nil {
		return nil
	}
	return f(ctx, toast)
}

// DefaultCapacity bounds how many toasts the center retains. Older toasts
// are evicted first.
const DefaultCapacity = 5

// Center collects toasts for display and fans them out to sinks. Safe for
// concurrent use.
type Center struct {
	mu     sync.Mutex
	toasts []Toast
	cap    int
	sinks  []Sink
	now    func() time.Time
}

// CenterOptions groups the optional knobs for NewCenter.
type CenterOptions struct {
	Capacity int    // Retained toast count; DefaultCapacity when zero
	Sinks    []Sink // Optional fan-out destinations
}

// NewCenter constructs a Center.
func NewCenter(opts CenterOptions) *Center {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Center{cap: capacity, sinks: opts.Sinks, now: time.Now}
}

// Push records a toast and returns it. Sink failures are ignored; a broken
// destination must not break the UI.
func (c *Center) Push(ctx context.Context, level Level, message string) Toast {
	toast := Toast{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		At:      c.now(),
	}

	c.mu.Lock()
	c.toasts = append(c.toasts, toast)
	if len(c.toasts) > c.cap {
		c.toasts = c.toasts[len(c.toasts)-c.cap:]
	}
	sinks := c.sinks
	c.mu.Unlock()

	for _, s := range sinks {
		_ = s.SendToast(ctx, toast)
	}
	return toast
}

// Info records an informational toast.
func (c *Center) Info(ctx context.Context, message string) Toast {
	return c.Push(ctx, LevelInfo, message)
}

// Success records a success toast.
func (c *Center) Success(ctx context.Context, message string) Toast {
	return c.Push(ctx, LevelSuccess, message)
}

// Error records an error toast.
func (c *Center) Error(ctx context.Context, message string) Toast {
	return c.Push(ctx, LevelError, message)
}

// Dismiss drops a toast by id. Unknown ids are a no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}

// Expire drops toasts older than ttl.
func (c *Center) Expire(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cutoff := c.now().Add(-ttl)
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.At.After(cutoff) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}

// Toasts returns a snapshot of the retained toasts, oldest first.
func (c *Center) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}
