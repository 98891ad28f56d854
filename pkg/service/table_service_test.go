package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/platterflow/pkg/apperr"
	"github.com/example/platterflow/pkg/models"
)

func newTableService(tables *mockTableRepo) *TableService {
	return NewTableService(tables, newQuietCache(), newQuietAuditor(), zap.NewNop())
}

func TestTableCreate(t *testing.T) {
	tables := new(mockTableRepo)
	tables.On("FindByNumber", mock.Anything, 3).Return(nil, gorm.ErrRecordNotFound)
	tables.On("Create", mock.Anything, mock.AnythingOfType("*models.Table")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Table).ID = 3
	}).Return(nil)

	svc := newTableService(tables)
	table, err := svc.Create(context.Background(), 3, 4)

	assert.NoError(t, err)
	assert.Equal(t, 3, table.TableNumber)
	assert.Equal(t, 4, table.Seats)
	assert.False(t, table.IsOccupied)
	tables.AssertExpectations(t)
}

func TestTableCreate_DuplicateNumberConflicts(t *testing.T) {
	tables := new(mockTableRepo)
	tables.On("FindByNumber", mock.Anything, 3).Return(&models.Table{ID: 1, TableNumber: 3}, nil)

	svc := newTableService(tables)
	_, err := svc.Create(context.Background(), 3, 4)

	assert.True(t, apperr.Is(err, apperr.Conflict))
	tables.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTableCreate_RejectsNonPositiveInputs(t *testing.T) {
	svc := newTableService(new(mockTableRepo))

	_, err := svc.Create(context.Background(), 0, 4)
	assert.True(t, apperr.Is(err, apperr.Validation))

	_, err = svc.Create(context.Background(), 3, 0)
	assert.True(t, apperr.Is(err, apperr.Validation))
}

func TestTableUpdate_PatchesOnlySuppliedFields(t *testing.T) {
	tables := new(mockTableRepo)
	table := &models.Table{ID: 2, TableNumber: 2, Seats: 2}
	tables.On("FindByID", mock.Anything, uint(2)).Return(table, nil)
	tables.On("Update", mock.Anything, table, map[string]interface{}{"seats": 6}).Return(nil)

	svc := newTableService(tables)
	seats := 6
	updated, err := svc.Update(context.Background(), 2, &seats, nil)

	assert.NoError(t, err)
	assert.Equal(t, 6, updated.Seats)
	tables.AssertExpectations(t)
}

func TestTableDelete_CascadeReportsOrderCount(t *testing.T) {
	tables := new(mockTableRepo)
	table := &models.Table{ID: 2, TableNumber: 2, Seats: 2}
	tables.On("FindByID", mock.Anything, uint(2)).Return(table, nil)
	tables.On("DeleteCascade", mock.Anything, table).Return([]uint{7, 8, 9}, nil)

	svc := newTableService(tables)
	deleted, err := svc.Delete(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	tables.AssertExpectations(t)
}

func TestTableDelete_CascadeInvalidatesOrderCache(t *testing.T) {
	tables := new(mockTableRepo)
	table := &models.Table{ID: 2, TableNumber: 2, Seats: 2}
	tables.On("FindByID", mock.Anything, uint(2)).Return(table, nil)
	tables.On("DeleteCascade", mock.Anything, table).Return([]uint{7, 9}, nil)

	cache := new(mockCache)
	cache.On("InvalidateOrder", mock.Anything, uint(7)).Return(nil).Once()
	cache.On("InvalidateOrder", mock.Anything, uint(9)).Return(nil).Once()

	svc := NewTableService(tables, cache, newQuietAuditor(), zap.NewNop())
	deleted, err := svc.Delete(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	cache.AssertExpectations(t)
}

func TestTableDelete_CacheFailureDoesNotFailDelete(t *testing.T) {
	tables := new(mockTableRepo)
	table := &models.Table{ID: 2, TableNumber: 2, Seats: 2}
	tables.On("FindByID", mock.Anything, uint(2)).Return(table, nil)
	tables.On("DeleteCascade", mock.Anything, table).Return([]uint{7}, nil)

	cache := new(mockCache)
	cache.On("InvalidateOrder", mock.Anything, uint(7)).Return(errCacheMiss)

	svc := NewTableService(tables, cache, newQuietAuditor(), zap.NewNop())
	deleted, err := svc.Delete(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestTableDelete_NotFound(t *testing.T) {
	tables := new(mockTableRepo)
	tables.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTableService(tables)
	_, err := svc.Delete(context.Background(), 404)

	assert.True(t, apperr.Is(err, apperr.NotFound))
	tables.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
}
