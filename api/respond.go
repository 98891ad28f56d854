package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/platterflow/pkg/apperr"
)

// respondError maps the error taxonomy onto HTTP statuses. Internal causes
// are logged server-side and replaced with a generic message.
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	var e *apperr.Error
	if errors.As(err, &e) {
		message = e.Message
	}

	switch apperr.KindOf(err) {
	case apperr.NotFound:
		status = http.StatusNotFound
	case apperr.Conflict:
		status = http.StatusConflict
	case apperr.Validation:
		status = http.StatusBadRequest
	case apperr.Unauthorized:
		status = http.StatusUnauthorized
	case apperr.Forbidden:
		status = http.StatusForbidden
	default:
		s.logger.Error("internal error",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		message = "internal error"
	}

	c.JSON(status, gin.H{"error": message})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
