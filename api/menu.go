package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/platterflow/pkg/service"
)

type createMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	IsAvailable *bool   `json:"is_available"`
}

func (s *Server) createMenuItem(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item, err := s.menu.Create(c.Request.Context(), req.Name, req.Description, req.Price, req.Category, isAvailable)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) getMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := s.menu.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) listMenuItems(c *gin.Context) {
	items, err := s.menu.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) updateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch service.MenuItemPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.menu.Update(c.Request.Context(), id, patch)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.menu.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}
