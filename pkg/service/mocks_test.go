package service

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/example/platterflow/pkg/models"
	"github.com/example/platterflow/pkg/repository"
)

var errCacheMiss = errors.New("cache miss")

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockOrderRepo) List(ctx context.Context, status string) ([]models.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, order *models.Order, status string, releaseTable bool) error {
	args := m.Called(ctx, order, status, releaseTable)
	return args.Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type mockTableRepo struct {
	mock.Mock
}

func (m *mockTableRepo) Create(ctx context.Context, table *models.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *mockTableRepo) FindByID(ctx context.Context, id uint) (*models.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Table), args.Error(1)
}

func (m *mockTableRepo) FindByNumber(ctx context.Context, tableNumber int) (*models.Table, error) {
	args := m.Called(ctx, tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Table), args.Error(1)
}

func (m *mockTableRepo) List(ctx context.Context) ([]models.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Table), args.Error(1)
}

func (m *mockTableRepo) Update(ctx context.Context, table *models.Table, updates map[string]interface{}) error {
	args := m.Called(ctx, table, updates)
	return args.Error(0)
}

func (m *mockTableRepo) DeleteCascade(ctx context.Context, table *models.Table) ([]uint, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

type mockMenuRepo struct {
	mock.Mock
}

func (m *mockMenuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockMenuRepo) FindByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *mockMenuRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *mockMenuRepo) Update(ctx context.Context, item *models.MenuItem, updates map[string]interface{}) error {
	args := m.Called(ctx, item, updates)
	return args.Error(0)
}

func (m *mockMenuRepo) Delete(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User, updates map[string]interface{}) error {
	args := m.Called(ctx, user, updates)
	return args.Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) CacheOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockCache) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockCache) InvalidateOrder(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCache) CacheMenuItem(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockCache) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *mockCache) InvalidateMenuItem(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAuditor struct {
	mock.Mock
}

func (m *mockAuditor) CreateAuditLog(ctx context.Context, log *repository.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockAuditor) GetAuditLogs(ctx context.Context, entityID string, limit int64) ([]*repository.AuditLog, error) {
	args := m.Called(ctx, entityID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.AuditLog), args.Error(1)
}

// newQuietCache allows every cache call; the services treat cache failures as
// advisory anyway.
func newQuietCache() *mockCache {
	c := new(mockCache)
	c.On("CacheOrder", mock.Anything, mock.Anything).Return(nil).Maybe()
	c.On("GetOrder", mock.Anything, mock.Anything).Return(nil, errCacheMiss).Maybe()
	c.On("InvalidateOrder", mock.Anything, mock.Anything).Return(nil).Maybe()
	c.On("CacheMenuItem", mock.Anything, mock.Anything).Return(nil).Maybe()
	c.On("GetMenuItem", mock.Anything, mock.Anything).Return(nil, errCacheMiss).Maybe()
	c.On("InvalidateMenuItem", mock.Anything, mock.Anything).Return(nil).Maybe()
	return c
}

// newQuietAuditor allows audit writes; they run on a goroutine and are not
// asserted.
func newQuietAuditor() *mockAuditor {
	a := new(mockAuditor)
	a.On("CreateAuditLog", mock.Anything, mock.Anything).Return(nil).Maybe()
	return a
}
