package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/homekeep/api/internal/models"
)

// MockHouseRepository is a mock implementation of HouseRepository for testing
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
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHouseRepository) Put(ctx context.Context, h *models.House) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHouseRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockHouseRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSystemRepository is a mock implementation of SystemRepository for testing
type MockSystemRepository struct {
	mock.Mock
}

func (m *MockSystemRepository) GetByID(ctx context.Context, id string) (*models.System, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.System), args.Error(1)
}

func (m *MockSystemRepository) List(ctx context.Context) ([]models.System, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.System), args.Error(1)
}

func (m *MockSystemRepository) ListByHouse(ctx context.Context, houseID string) ([]models.System, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.System), args.Error(1)
}

func (m *MockSystemRepository) CreateWithGeneratedCode(ctx context.Context, sys *models.System, scope string) error {
	args := m.Called(ctx, sys, scope)
	return args.Error(0)
}

func (m *MockSystemRepository) Put(ctx context.Context, sys *models.System) error {
	args := m.Called(ctx, sys)
	return args.Error(0)
}

func (m *MockSystemRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockSystemRepository) UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error) {
	args := m.Called(ctx, houseID, houseName)
	return args.Int(0), args.Error(1)
}

func (m *MockSystemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIncidentRepository is a mock implementation of IncidentRepository for testing
type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Incident), args.Error(1)
}

func (m *MockIncidentRepository) List(ctx context.Context) ([]models.Incident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incident), args.Error(1)
}

func (m *MockIncidentRepository) ListByHouse(ctx context.Context, houseID string) ([]models.Incident, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incident), args.Error(1)
}

func (m *MockIncidentRepository) ListBySystem(ctx context.Context, systemID string) ([]models.Incident, error) {
	args := m.Called(ctx, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incident), args.Error(1)
}

func (m *MockIncidentRepository) Create(ctx context.Context, inc *models.Incident) error {
	args := m.Called(ctx, inc)
	return args.Error(0)
}

func (m *MockIncidentRepository) Put(ctx context.Context, inc *models.Incident) error {
	args := m.Called(ctx, inc)
	return args.Error(0)
}

func (m *MockIncidentRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockIncidentRepository) UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockIncidentRepository) UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error) {
	args := m.Called(ctx, houseID, houseName)
	return args.Int(0), args.Error(1)
}

func (m *MockIncidentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactRepository is a mock implementation of ContactRepository for testing
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockContactRepository) ListByHouse(ctx context.Context, houseID string) ([]models.Contact, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, c *models.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) Put(ctx context.Context, c *models.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockParkingRepository is a mock implementation of ParkingRepository for testing
type MockParkingRepository struct {
	mock.Mock
}

func (m *MockParkingRepository) GetByID(ctx context.Context, id string) (*models.Parking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Parking), args.Error(1)
}

func (m *MockParkingRepository) List(ctx context.Context) ([]models.Parking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Parking), args.Error(1)
}

func (m *MockParkingRepository) ListByHouse(ctx context.Context, houseID string) ([]models.Parking, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Parking), args.Error(1)
}

func (m *MockParkingRepository) Create(ctx context.Context, p *models.Parking) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParkingRepository) Put(ctx context.Context, p *models.Parking) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParkingRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockParkingRepository) UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error) {
	args := m.Called(ctx, houseID, houseName)
	return args.Int(0), args.Error(1)
}

func (m *MockParkingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleRepository is a mock implementation of VehicleRepository for testing
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListByHouse(ctx context.Context, houseID string) ([]models.Vehicle, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Put(ctx context.Context, v *models.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error) {
	args := m.Called(ctx, houseID, houseName)
	return args.Int(0), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
