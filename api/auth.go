package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/example/platterflow/pkg/repository"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type updateUserRequest struct {
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	// No token: a plain confirmation payload
	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"full_name": user.FullName,
		"role":      user.Role,
		"message":   "login successful",
	})
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.auth.Register(c.Request.Context(), req.Username, req.Password, req.FullName, req.Role)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.auth.ListUsers(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.auth.UpdateUser(c.Request.Context(), id, req.FullName, req.Password, req.IsActive)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) listAuditEntries(c *gin.Context) {
	entity := c.Param("entity")

	limit := repository.DefaultAuditLogLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}
	if limit > repository.MaxAuditLogLimit {
		limit = repository.MaxAuditLogLimit
	}

	logs, err := s.audit.GetAuditLogs(c.Request.Context(), entity, limit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
