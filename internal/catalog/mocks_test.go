package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Alchemy_Go/internal/domain"
	"github.com/osse101/Alchemy_Go/internal/repository"
)

// MockRepository implements repository.Catalog for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAllEffects(ctx context.Context) ([]domain.Effect, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Effect), args.Error(1)
}

func (m *MockRepository) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockRepository) ReplaceCatalog(ctx context.Context, effects []domain.Effect, ingredients []domain.Ingredient) (*repository.CatalogWriteResult, error) {
	args := m.Called(ctx, effects, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogWriteResult), args.Error(1)
}

func (m *MockRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	args := m.Called(ctx, configName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncMetadata), args.Error(1)
}

func (m *MockRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	args := m.Called(ctx, metadata)
	return args.Error(0)
}
