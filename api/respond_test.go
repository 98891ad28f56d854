package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/example/platterflow/pkg/apperr"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{logger: zap.NewNop()}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not found", apperr.New(apperr.NotFound, "order 5 not found"), http.StatusNotFound, "order 5 not found"},
		{"conflict", apperr.New(apperr.Conflict, "table number 3 already exists"), http.StatusConflict, "already exists"},
		{"validation", apperr.Field("username", "username must contain @"), http.StatusBadRequest, "username"},
		{"unauthorized", apperr.New(apperr.Unauthorized, "invalid credentials"), http.StatusUnauthorized, "invalid credentials"},
		{"forbidden", apperr.New(apperr.Forbidden, "user is inactive"), http.StatusForbidden, "user is inactive"},
		{"internal hides cause", apperr.Wrap(apperr.Internal, "failed to create order", errors.New("dial tcp: refused")), http.StatusInternalServerError, "internal error"},
		{"untyped hides cause", errors.New("dial tcp: refused"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			s.respondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			// Raw storage errors never leak
			assert.NotContains(t, w.Body.String(), "dial tcp")
		})
	}
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := parseID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "not-a-number"}}
	_, ok = parseID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
