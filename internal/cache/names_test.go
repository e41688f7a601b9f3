package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/api/internal/config"
	"github.com/homekeep/api/internal/logger"
	"github.com/homekeep/api/internal/models"
)

// MockHouseRepository is a mock implementation of repository.HouseRepository.
type MockHouseRepository struct {
	mock.Mock
}

func (m *MockHouseRepository) GetByID(ctx context.Context, id string) (*models.House, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.House), args.Error(1)
}

func (m *MockHouseRepository) List(ctx context.Context) ([]models.House, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.House), args.Error(1)
}

func (m *MockHouseRepository) Create(ctx context.Context, h *models.House) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockHouseRepository) Put(ctx context.Context, h *models.House) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockHouseRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockHouseRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestNewClient_DisabledWithoutAddr(t *testing.T) {
	assert.Nil(t, NewClient(config.RedisConfig{}))
	assert.NotNil(t, NewClient(config.RedisConfig{Addr: "localhost:6379"}))
}

func TestHouseNames_ResolveWithoutCache(t *testing.T) {
	mockRepo := new(MockHouseRepository)
	log := logger.New("test")
	names := NewHouseNames(nil, mockRepo, log)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "h1").Return(&models.House{ID: "h1", Name: "Aiguaviva"}, nil)

	name, found, err := names.Resolve(ctx, "h1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Aiguaviva", name)
	assert.False(t, names.Enabled())
	mockRepo.AssertExpectations(t)
}

func TestHouseNames_ResolveMissingHouse(t *testing.T) {
	mockRepo := new(MockHouseRepository)
	log := logger.New("test")
	names := NewHouseNames(nil, mockRepo, log)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "gone").Return(nil, nil)

	name, found, err := names.Resolve(ctx, "gone")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, name)
}

func TestHouseNames_ResolveBlankID(t *testing.T) {
	mockRepo := new(MockHouseRepository)
	log := logger.New("test")
	names := NewHouseNames(nil, mockRepo, log)

	name, found, err := names.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, name)
	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestHouseNames_PingDisabled(t *testing.T) {
	names := NewHouseNames(nil, new(MockHouseRepository), logger.New("test"))
	assert.NoError(t, names.Ping(context.Background()))
}

func TestHouseNames_RefreshAndInvalidateWithoutCache(t *testing.T) {
	// Both are no-ops when caching is disabled; they must not panic.
	names := NewHouseNames(nil, new(MockHouseRepository), logger.New("test"))
	names.Refresh(context.Background(), "h1", "Nou nom")
	names.Invalidate(context.Background(), "h1")
}
