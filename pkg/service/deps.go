package service

import (
	"context"
	"fmt"

	"github.com/example/platterflow/pkg/models"
	"github.com/example/platterflow/pkg/repository"
)

// Cache is the read-through entity cache. Cache failures are logged and
// swallowed; the store stays authoritative.
type Cache interface {
	CacheOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	InvalidateOrder(ctx context.Context, id uint) error
	CacheMenuItem(ctx context.Context, item *models.MenuItem) error
	GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error)
	InvalidateMenuItem(ctx context.Context, id uint) error
}

// Auditor records state changes to the append-only audit collection.
type Auditor interface {
	CreateAuditLog(ctx context.Context, log *repository.AuditLog) error
	GetAuditLogs(ctx context.Context, entityID string, limit int64) ([]*repository.AuditLog, error)
}

func auditID(entity string, id uint) string {
	return fmt.Sprintf("%s:%d", entity, id)
}
