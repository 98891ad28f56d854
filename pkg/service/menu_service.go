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

// MenuService is catalog CRUD. Orders snapshot prices at creation, so edits
// here never touch existing orders.
type MenuService struct {
	menu   repository.MenuRepository
	cache  Cache
	audit  Auditor
	logger *zap.Logger
}

func NewMenuService(menu repository.MenuRepository, cache Cache, audit Auditor, logger *zap.Logger) *MenuService {
	return &MenuService{menu: menu, cache: cache, audit: audit, logger: logger}
}

func (s *MenuService) Create(ctx context.Context, name, description string, price float64, category string, isAvailable bool) (*models.MenuItem, error) {
	if name == "" {
		return nil, apperr.Field("name", "name is required")
	}
	if price < 0 {
		return nil, apperr.Field("price", "price cannot be negative")
	}

	item := &models.MenuItem{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		IsAvailable: isAvailable,
	}
	if err := s.menu.Create(ctx, item); err != nil {
		s.logger.Error("failed to create menu item", zap.String("name", name), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "failed to create menu item", err)
	}

	go s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
		Service:  "menu-service",
		Action:   "create_menu_item",
		EntityID: auditID("menu_item", item.ID),
		Data:     bson.M{"name": item.Name, "price": item.Price},
	})

	return item, nil
}

func (s *MenuService) Get(ctx context.Context, itemID uint) (*models.MenuItem, error) {
	if cached, err := s.cache.GetMenuItem(ctx, itemID); err == nil {
		return cached, nil
	}

	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.CacheMenuItem(ctx, item); err != nil {
		s.logger.Warn("failed to cache menu item", zap.Uint("item_id", itemID), zap.Error(err))
	}
	return item, nil
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list menu items", err)
	}
	return items, nil
}

// MenuItemPatch carries the fields to change; nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	IsAvailable *bool    `json:"is_available"`
}

func (s *MenuService) Update(ctx context.Context, itemID uint, patch MenuItemPatch) (*models.MenuItem, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, apperr.Field("name", "name is required")
		}
		updates["name"] = *patch.Name
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, apperr.Field("price", "price cannot be negative")
		}
		updates["price"] = *patch.Price
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
		item.Category = *patch.Category
	}
	if patch.IsAvailable != nil {
		updates["is_available"] = *patch.IsAvailable
		item.IsAvailable = *patch.IsAvailable
	}
	if len(updates) == 0 {
		return item, nil
	}

	if err := s.menu.Update(ctx, item, updates); err != nil {
		s.logger.Error("failed to update menu item", zap.Uint("item_id", itemID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "failed to update menu item", err)
	}

	if err := s.cache.InvalidateMenuItem(ctx, itemID); err != nil {
		s.logger.Warn("failed to invalidate menu item cache", zap.Uint("item_id", itemID), zap.Error(err))
	}

	go s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
		Service:  "menu-service",
		Action:   "update_menu_item",
		EntityID: auditID("menu_item", itemID),
		Data:     bson.M{"name": item.Name, "price": item.Price},
	})

	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, itemID uint) error {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return err
	}

	if err := s.menu.Delete(ctx, item); err != nil {
		s.logger.Error("failed to delete menu item", zap.Uint("item_id", itemID), zap.Error(err))
		return apperr.Wrap(apperr.Internal, "failed to delete menu item", err)
	}

	if err := s.cache.InvalidateMenuItem(ctx, itemID); err != nil {
		s.logger.Warn("failed to invalidate menu item cache", zap.Uint("item_id", itemID), zap.Error(err))
	}

	go s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
		Service:  "menu-service",
		Action:   "delete_menu_item",
		EntityID: auditID("menu_item", itemID),
		Data:     bson.M{"name": item.Name},
	})

	return nil
}

func (s *MenuService) findItem(ctx context.Context, itemID uint) (*models.MenuItem, error) {
	item, err := s.menu.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "menu item %d not found", itemID)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to look up menu item", err)
	}
	return item, nil
}
