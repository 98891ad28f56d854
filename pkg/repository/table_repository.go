package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/platterflow/pkg/models"
)

type TableRepository interface {
	Create(ctx context.Context, table *models.Table) error
	FindByID(ctx context.Context, id uint) (*models.Table, error)
	FindByNumber(ctx context.Context, tableNumber int) (*models.Table, error)
	List(ctx context.Context) ([]models.Table, error)
	Update(ctx context.Context, table *models.Table, updates map[string]interface{}) error
	// DeleteCascade removes the table's orders and then the table itself in
	// one transaction, returning the ids of the orders deleted so callers can
	// drop their cache entries.
	DeleteCascade(ctx context.Context, table *models.Table) ([]uint, error)
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *models.Table) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) FindByID(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) FindByNumber(ctx context.Context, tableNumber int) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).Where("table_number = ?", tableNumber).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) List(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.WithContext(ctx).Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *tableRepository) Update(ctx context.Context, table *models.Table, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(table).Updates(updates).Error
}

func (r *tableRepository) DeleteCascade(ctx context.Context, table *models.Table) ([]uint, error) {
	var orderIDs []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("table_id = ?", table.ID).
			Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		// Orders are removed directly; re-freeing the table is moot since the
		// table goes next.
		if err := tx.Where("table_id = ?", table.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(table).Error
	})
	if err != nil {
		return nil, err
	}
	return orderIDs, nil
}
