//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MinTitleLen is the minimum trimmed title length the creation and edit forms
// accept before a submit is enabled.
const MinTitleLen = 3

// Timestamp wraps time.Time to tolerate the remote store's flexible
// createdAt encoding: an RFC 3339 string or a unix-milliseconds number.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("unmarshal timestamp string: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", raw, err)
		}
		t.Time = parsed
		return nil
	}

	var millis int64
	if err := json.Unmarshal(data, &millis); err != nil {
		return fmt.Errorf("unmarshal timestamp number: %w", err)
	}
	t.Time = time.UnixMilli(millis).UTC()
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// Post represents a blog post as owned by the remote store. The client holds
// a read-through cache of these per list view; order is server-assigned.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	AuthorID  string    `json:"authorId"`
	CreatedAt Timestamp `json:"createdAt"`
	Content   string    `json:"content,omitempty"`
}

// CreatePostRequest represents parameters to create a Post.
type CreatePostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// UpdatePostRequest represents the draft fields submitted when saving an edit.
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostResponse is the remote store's update envelope; the contained
// post is the server's authoritative representation and replaces the cached
// item wholesale.
type UpdatePostResponse struct {
	Post Post `json:"post"`
}
