package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/platterflow/pkg/models"
)

type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	FindByID(ctx context.Context, id uint) (*models.MenuItem, error)
	List(ctx context.Context) ([]models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem, updates map[string]interface{}) error
	Delete(ctx context.Context, item *models.MenuItem) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) FindByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) Update(ctx context.Context, item *models.MenuItem, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(item).Updates(updates).Error
}

func (r *menuRepository) Delete(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}
