package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := Unknown("something went wrong", http.StatusBadGateway)
		assert.Equal(t, "something went wrong", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		err := Network("Failed to fetch posts", cause)
		assert.Equal(t, "Failed to fetch posts: connection refused", err.Error())
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("dial tcp: i/o timeout")
	err := Timeout("Request timed out", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"network", Network("no response", nil), IsNetwork},
		{"timeout", Timeout("deadline", nil), IsTimeout},
		{"auth", Auth("session expired", http.StatusUnauthorized), IsAuth},
		{"validation", Validation("email already in use", http.StatusConflict), IsValidation},
		{"unknown", Unknown("server error", http.StatusInternalServerError), IsUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestCodePredicates_Wrapped(t *testing.T) {
	inner := Auth("session expired", http.StatusUnauthorized)
	wrapped := fmt.Errorf("resolve session: %w", inner)

	assert.True(t, IsAuth(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.Equal(t, ErrCodeAuth, GetCode(wrapped))
	assert.Equal(t, http.StatusUnauthorized, GetStatus(wrapped))
}

func TestCodePredicates_NonAppError(t *testing.T) {
	err := stderrors.New("plain error")

	assert.False(t, IsAuth(err))
	assert.False(t, IsTimeout(err))
	assert.Equal(t, ErrorCode(""), GetCode(err))
	assert.Equal(t, 0, GetStatus(err))
}

func TestMessage(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		err := Validation("Title must be at least 3 characters", http.StatusBadRequest)
		assert.Equal(t, "Title must be at least 3 characters", Message(err))
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("create post: %w", Unknown("Failed to create blog", http.StatusBadGateway))
		assert.Equal(t, "Failed to create blog", Message(err))
	})

	t.Run("plain error falls back to Error()", func(t *testing.T) {
		assert.Equal(t, "boom", Message(stderrors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "", Message(nil))
	})
}
