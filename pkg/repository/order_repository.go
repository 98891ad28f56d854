package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/platterflow/pkg/models"
)

// OrderRepository persists orders together with their table-occupancy side
// effects. Every mutation is one transaction: an order row never commits
// without its occupancy write.
type OrderRepository interface {
	// Create inserts the order and marks its table occupied.
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	// List returns orders, filtered by exact status when status is non-empty.
	List(ctx context.Context, status string) ([]models.Order, error)
	// UpdateStatus overwrites the order's status. When releaseTable is set the
	// table's occupancy flag is cleared too; a table deleted out of band is
	// skipped silently (the update matches zero rows).
	UpdateStatus(ctx context.Context, order *models.Order, status string, releaseTable bool) error
	// Delete frees the order's table and removes the order, all-or-nothing.
	Delete(ctx context.Context, order *models.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Model(&models.Table{}).
			Where("id = ?", order.TableID).
			Update("is_occupied", true).Error
	})
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, order *models.Order, status string, releaseTable bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Update("status", status).Error; err != nil {
			return err
		}
		if !releaseTable {
			return nil
		}
		return tx.Model(&models.Table{}).
			Where("id = ?", order.TableID).
			Update("is_occupied", false).Error
	})
}

func (r *orderRepository) Delete(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Table{}).
			Where("id = ?", order.TableID).
			Update("is_occupied", false).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
}
