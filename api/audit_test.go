package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/example/platterflow/pkg/config"
	"github.com/example/platterflow/pkg/repository"
)

type recordingAuditor struct {
	gotEntity string
	gotLimit  int64
}

func (a *recordingAuditor) CreateAuditLog(ctx context.Context, log *repository.AuditLog) error {
	return nil
}

func (a *recordingAuditor) GetAuditLogs(ctx context.Context, entityID string, limit int64) ([]*repository.AuditLog, error) {
	a.gotEntity = entityID
	a.gotLimit = limit
	return []*repository.AuditLog{}, nil
}

func newAuditTestServer(audit *recordingAuditor) http.Handler {
	gin.SetMode(gin.TestMode)
	s := NewServer(&config.Config{}, zap.NewNop(), nil, nil, nil, nil, audit)
	s.SetupRoutes()
	return s.Router()
}

func TestListAuditEntries_DefaultLimit(t *testing.T) {
	audit := &recordingAuditor{}
	router := newAuditTestServer(audit)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/audit/order:5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "order:5", audit.gotEntity)
	assert.Equal(t, repository.DefaultAuditLogLimit, audit.gotLimit)
}

func TestListAuditEntries_ClampsOversizedLimit(t *testing.T) {
	audit := &recordingAuditor{}
	router := newAuditTestServer(audit)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/audit/order:5?limit=500", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, repository.MaxAuditLogLimit, audit.gotLimit)
}

func TestListAuditEntries_RejectsInvalidLimit(t *testing.T) {
	audit := &recordingAuditor{}
	router := newAuditTestServer(audit)

	for _, raw := range []string{"0", "-3", "abc"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/audit/order:5?limit="+raw, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
