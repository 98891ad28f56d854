package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createTableRequest struct {
	TableNumber int `json:"table_number" binding:"required"`
	Seats       int `json:"seats" binding:"required"`
}

type updateTableRequest struct {
	Seats      *int  `json:"seats"`
	IsOccupied *bool `json:"is_occupied"`
}

func (s *Server) createTable(c *gin.Context) {
	var req createTableRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := s.tables.Create(c.Request.Context(), req.TableNumber, req.Seats)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (s *Server) getTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	table, err := s.tables.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (s *Server) listTables(c *gin.Context) {
	tables, err := s.tables.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (s *Server) updateTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateTableRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := s.tables.Update(c.Request.Context(), id, req.Seats, req.IsOccupied)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (s *Server) deleteTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deletedOrders, err := s.tables.Delete(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_order_count": deletedOrders})
}
