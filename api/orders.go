package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/platterflow/pkg/models"
	"github.com/example/platterflow/pkg/service"
)

type createOrderRequest struct {
	TableID  uint                       `json:"table_id" binding:"required"`
	Items    []service.OrderItemRequest `json:"items" binding:"required"`
	WaiterID *uint                      `json:"waiter_id"`
}

type updateOrderRequest struct {
	Status *string `json:"status"`
}

// orderResponse expands the stored line-item snapshots for clients.
type orderResponse struct {
	ID         uint               `json:"id"`
	TableID    uint               `json:"table_id"`
	Status     string             `json:"status"`
	Items      []models.OrderItem `json:"items"`
	TotalPrice float64            `json:"total_price"`
	WaiterID   *uint              `json:"waiter_id,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (s *Server) toOrderResponse(order *models.Order) orderResponse {
	items, err := order.LineItems()
	if err != nil {
		s.logger.Warn("failed to decode order line items",
			zap.Uint("order_id", order.ID), zap.Error(err))
		items = []models.OrderItem{}
	}
	return orderResponse{
		ID:         order.ID,
		TableID:    order.TableID,
		Status:     order.Status,
		Items:      items,
		TotalPrice: order.TotalPrice,
		WaiterID:   order.WaiterID,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

func (s *Server) toOrderResponses(orders []models.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = s.toOrderResponse(&orders[i])
	}
	return out
}

func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.orders.Create(c.Request.Context(), req.TableID, req.Items, req.WaiterID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.toOrderResponse(order))
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := s.orders.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.toOrderResponse(order))
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.orders.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.toOrderResponses(orders))
}

func (s *Server) listOrdersByStatus(c *gin.Context) {
	orders, err := s.orders.List(c.Request.Context(), c.Param("status"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.toOrderResponses(orders))
}

func (s *Server) updateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.toOrderResponse(order))
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := s.orders.Delete(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": deleted})
}
