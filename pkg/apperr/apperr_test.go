package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(New(NotFound, "order 5 not found")))
	assert.Equal(t, Conflict, KindOf(Newf(Conflict, "table number %d already exists", 3)))

	// Untyped and wrapped errors default to Internal
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
	wrapped := fmt.Errorf("handler: %w", New(Forbidden, "user is inactive"))
	assert.Equal(t, Forbidden, KindOf(wrapped))
}

func TestIs(t *testing.T) {
	err := New(Unauthorized, "invalid credentials")
	assert.True(t, Is(err, Unauthorized))
	assert.False(t, Is(err, NotFound))
	assert.False(t, Is(errors.New("boom"), Unauthorized))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Internal, "failed to create order", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to create order")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "failed to create order", err.Message)
}

func TestFieldError(t *testing.T) {
	err := Field("username", "username must contain @")
	assert.Equal(t, Validation, err.Kind)
	assert.Equal(t, "username: username must contain @", err.Message)
}
