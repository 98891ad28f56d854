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

// TableService owns the table inventory. Occupancy is toggled by the order
// engine; this service only exposes it for the manual override endpoint.
type TableService struct {
	tables repository.TableRepository
	cache  Cache
	audit  Auditor
	logger *zap.Logger
}

func NewTableService(tables repository.TableRepository, cache Cache, audit Auditor, logger *zap.Logger) *TableService {
	return &TableService{tables: tables, cache: cache, audit: audit, logger: logger}
}

func (s *TableService) Create(ctx context.Context, tableNumber, seats int) (*models.Table, error) {
	if tableNumber <= 0 {
		return nil, apperr.Field("table_number", "table number must be positive")
	}
	if seats <= 0 {
		return nil, apperr.Field("seats", "seats must be positive")
	}

	if _, err := s.tables.FindByNumber(ctx, tableNumber); err == nil {
		return nil, apperr.Newf(apperr.Conflict, "table number %d already exists", tableNumber)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up table", err)
	}

	table := &models.Table{
		TableNumber: tableNumber,
		Seats:       seats,
		IsOccupied:  false,
	}
	if err := s.tables.Create(ctx, table); err != nil {
		s.logger.Error("failed to create table", zap.Int("table_number", tableNumber), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "failed to create table", err)
	}

	go s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
		Service:  "table-service",
		Action:   "create_table",
		EntityID: auditID("table", table.ID),
		Data:     bson.M{"table_number": table.TableNumber, "seats": table.Seats},
	})

	return table, nil
}

func (s *TableService) Get(ctx context.Context, tableID uint) (*models.Table, error) {
	return s.findTable(ctx, tableID)
}

func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	tables, err := s.tables.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list tables", err)
	}
	return tables, nil
}

// Update patches only the supplied fields.
func (s *TableService) Update(ctx context.Context, tableID uint, seats *int, isOccupied *bool) (*models.Table, error) {
	table, err := s.findTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if seats != nil {
		if *seats <= 0 {
			return nil, apperr.Field("seats", "seats must be positive")
		}
		updates["seats"] = *seats
		table.Seats = *seats
	}
	if isOccupied != nil {
		updates["is_occupied"] = *isOccupied
		table.IsOccupied = *isOccupied
	}
	if len(updates) == 0 {
		return table, nil
	}

	if err := s.tables.Update(ctx, table, updates); err != nil {
		s.logger.Error("failed to update table", zap.Uint("table_id", tableID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "failed to update table", err)
	}
	return table, nil
}

// Delete removes the table and every order referencing it, reporting how many
// orders went with it.
func (s *TableService) Delete(ctx context.Context, tableID uint) (int64, error) {
	table, err := s.findTable(ctx, tableID)
	if err != nil {
		return 0, err
	}

	orderIDs, err := s.tables.DeleteCascade(ctx, table)
	if err != nil {
		s.logger.Error("failed to delete table", zap.Uint("table_id", tableID), zap.Error(err))
		return 0, apperr.Wrap(apperr.Internal, "failed to delete table", err)
	}

	// Cascaded orders are gone from the store; drop their cache entries too
	// so reads cannot resurrect them for the TTL window.
	for _, orderID := range orderIDs {
		if err := s.cache.InvalidateOrder(ctx, orderID); err != nil {
			s.logger.Warn("failed to invalidate order cache", zap.Uint("order_id", orderID), zap.Error(err))
		}
	}

	go s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
		Service:  "table-service",
		Action:   "delete_table",
		EntityID: auditID("table", tableID),
		Data:     bson.M{"deleted_orders": len(orderIDs)},
	})

	return int64(len(orderIDs)), nil
}

func (s *TableService) findTable(ctx context.Context, tableID uint) (*models.Table, error) {
	table, err := s.tables.FindByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "table %d not found", tableID)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to look up table", err)
	}
	return table, nil
}
