package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/platterflow/pkg/apperr"
	"github.com/example/platterflow/pkg/models"
	"github.com/example/platterflow/pkg/repository"
)

// OrderService is the order engine: it creates orders against a table from
// current catalog prices, manages status overwrites, and keeps the table's
// occupancy flag in sync with the order lifecycle.
type OrderService struct {
	orders repository.OrderRepository
	tables repository.TableRepository
	menu   repository.MenuRepository
	cache  Cache
	audit  Auditor
	logger *zap.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	tables repository.TableRepository,
	menu repository.MenuRepository,
	cache Cache,
	audit Auditor,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders: orders,
		tables: tables,
		menu:   menu,
		cache:  cache,
		audit:  audit,
		logger: logger,
	}
}

// OrderItemRequest is one requested line: a menu item and how many of it.
type OrderItemRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// Create builds an order for the table. Each line snapshots the menu item's
// name and current price; the total is fixed here and never recomputed. Any
// missing menu item rejects the whole request - no partial order is created.
// The target table is marked occupied even if it already was.
func (s *OrderService) Create(ctx context.Context, tableID uint, items []OrderItemRequest, waiterID *uint) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apperr.Field("items", "order must contain at least one item")
	}

	if _, err := s.tables.FindByID(ctx, tableID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "table %d not found", tableID)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to look up table", err)
	}

	var total float64
	snapshots := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, apperr.Field("quantity", "quantity must be at least 1")
		}
		menuItem, err := s.menu.FindByID(ctx, item.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Newf(apperr.NotFound, "menu item %d not found", item.MenuItemID)
			}
			return nil, apperr.Wrap(apperr.Internal, "failed to look up menu item", err)
		}
		total += menuItem.Price * float64(item.Quantity)
		snapshots = append(snapshots, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   item.Quantity,
			UnitPrice:  menuItem.Price,
		})
	}

	order := &models.Order{
		TableID:    tableID,
		Status:     models.StatusPending,
		TotalPrice: total,
		WaiterID:   waiterID,
	}
	if err := order.SetLineItems(snapshots); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to encode line items", err)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("failed to create order", zap.Uint("table_id", tableID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "failed to create order", err)
	}

	if err := s.cache.CacheOrder(ctx, order); err != nil {
		s.logger.Warn("failed to cache order", zap.Uint("order_id", order.ID), zap.Error(err))
	}

	go s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
		Service:  "order-engine",
		Action:   "create_order",
		EntityID: auditID("order", order.ID),
		Data:     bson.M{"table_id": order.TableID, "total_price": order.TotalPrice},
	})

	return order, nil
}

// UpdateStatus overwrites the order's status with any known value; no
// transition graph is enforced, so completed -> pending is accepted.
// Candidate hardening point if lifecycle rules ever tighten. A terminal
// status frees the order's table, unless the table is already gone.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status *string) (*models.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if status == nil {
		return order, nil
	}
	if !models.KnownStatus(*status) {
		return nil, apperr.Field("status", "unknown status "+*status)
	}

	release := models.TerminalStatus(*status)
	if err := s.orders.UpdateStatus(ctx, order, *status, release); err != nil {
		s.logger.Error("failed to update order status", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "failed to update order", err)
	}
	order.Status = *status

	if err := s.cache.InvalidateOrder(ctx, orderID); err != nil {
		s.logger.Warn("failed to invalidate order cache", zap.Uint("order_id", orderID), zap.Error(err))
	}

	go s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
		Service:  "order-engine",
		Action:   "update_order_status",
		EntityID: auditID("order", order.ID),
		Data:     bson.M{"status": order.Status, "table_id": order.TableID},
	})

	return order, nil
}

// Delete removes the order and frees its table regardless of the order's
// status, all in one transaction. Returns the number of orders removed.
func (s *OrderService) Delete(ctx context.Context, orderID uint) (int64, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}

	if err := s.orders.Delete(ctx, order); err != nil {
		s.logger.Error("failed to delete order", zap.Uint("order_id", orderID), zap.Error(err))
		return 0, apperr.Wrap(apperr.Internal, "failed to delete order", err)
	}

	if err := s.cache.InvalidateOrder(ctx, orderID); err != nil {
		s.logger.Warn("failed to invalidate order cache", zap.Uint("order_id", orderID), zap.Error(err))
	}

	go s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
		Service:  "order-engine",
		Action:   "delete_order",
		EntityID: auditID("order", orderID),
		Data:     bson.M{"table_id": order.TableID},
	})

	return 1, nil
}

// Get serves from cache when possible and falls back to the store.
func (s *OrderService) Get(ctx context.Context, orderID uint) (*models.Order, error) {
	if cached, err := s.cache.GetOrder(ctx, orderID); err == nil {
		return cached, nil
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.CacheOrder(ctx, order); err != nil {
		s.logger.Warn("failed to cache order", zap.Uint("order_id", orderID), zap.Error(err))
	}
	return order, nil
}

// List returns orders in natural storage order, optionally filtered by exact
// status match.
func (s *OrderService) List(ctx context.Context, status string) ([]models.Order, error) {
	orders, err := s.orders.List(ctx, status)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list orders", err)
	}
	return orders, nil
}

func (s *OrderService) findOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "order %d not found", orderID)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to look up order", err)
	}
	return order, nil
}
