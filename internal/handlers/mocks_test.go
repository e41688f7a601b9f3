package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/homekeep/api/internal/models"
)

// MockHouseService is a mock implementation of services.HouseService for testing
type MockHouseService struct {
	mock.Mock
}

func (m *MockHouseService) ListHouses(ctx context.Context) ([]models.House, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.House), args.Error(1)
}

func (m *MockHouseService) GetHouse(ctx context.Context, id string) (*models.House, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.House), args.Error(1)
}

func (m *MockHouseService) CreateHouse(ctx context.Context, h *models.House) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHouseService) UpdateHouse(ctx context.Context, id string, h *models.House) (*models.House, error) {
	args := m.Called(ctx, id, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.House), args.Error(1)
}

func (m *MockHouseService) DeleteHouse(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSystemService is a mock implementation of services.SystemService for testing
type MockSystemService struct {
	mock.Mock
}

func (m *MockSystemService) ListSystems(ctx context.Context) ([]models.System, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.System), args.Error(1)
}

func (m *MockSystemService) GetSystem(ctx context.Context, id string) (*models.System, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.System), args.Error(1)
}

func (m *MockSystemService) ListHouseSystems(ctx context.Context, houseID string) ([]models.System, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.System), args.Error(1)
}

func (m *MockSystemService) CreateSystem(ctx context.Context, sys *models.System) error {
	args := m.Called(ctx, sys)
	return args.Error(0)
}

func (m *MockSystemService) UpdateSystem(ctx context.Context, id string, sys *models.System) (*models.System, error) {
	args := m.Called(ctx, id, sys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.System), args.Error(1)
}

func (m *MockSystemService) DeleteSystem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIncidentService is a mock implementation of services.IncidentService for testing
type MockIncidentService struct {
	mock.Mock
}

func (m *MockIncidentService) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incident), args.Error(1)
}

func (m *MockIncidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Incident), args.Error(1)
}

func (m *MockIncidentService) ListHouseIncidents(ctx context.Context, houseID string) ([]models.Incident, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incident), args.Error(1)
}

func (m *MockIncidentService) ListSystemIncidents(ctx context.Context, systemID string) ([]models.Incident, error) {
	args := m.Called(ctx, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incident), args.Error(1)
}

func (m *MockIncidentService) CreateIncident(ctx context.Context, inc *models.Incident) error {
	args := m.Called(ctx, inc)
	return args.Error(0)
}

func (m *MockIncidentService) UpdateIncident(ctx context.Context, id string, inc *models.Incident) (*models.Incident, error) {
	args := m.Called(ctx, id, inc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Incident), args.Error(1)
}

func (m *MockIncidentService) UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) (*models.Incident, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Incident), args.Error(1)
}

func (m *MockIncidentService) DeleteIncident(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactService is a mock implementation of services.ContactService for testing
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockContactService) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactService) ListHouseContacts(ctx context.Context, houseID string) ([]models.Contact, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockContactService) CreateContact(ctx context.Context, c *models.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactService) UpdateContact(ctx context.Context, id string, c *models.Contact) (*models.Contact, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactService) DeleteContact(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockParkingService is a mock implementation of services.ParkingService for testing
type MockParkingService struct {
	mock.Mock
}

func (m *MockParkingService) ListParkings(ctx context.Context) ([]models.Parking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Parking), args.Error(1)
}

func (m *MockParkingService) GetParking(ctx context.Context, id string) (*models.Parking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Parking), args.Error(1)
}

func (m *MockParkingService) ListHouseParkings(ctx context.Context, houseID string) ([]models.Parking, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Parking), args.Error(1)
}

func (m *MockParkingService) CreateParking(ctx context.Context, p *models.Parking) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParkingService) UpdateParking(ctx context.Context, id string, p *models.Parking) (*models.Parking, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Parking), args.Error(1)
}

func (m *MockParkingService) DeleteParking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleService is a mock implementation of services.VehicleService for testing
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) ListHouseVehicles(ctx context.Context, houseID string) ([]models.Vehicle, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleService) UpdateVehicle(ctx context.Context, id string, v *models.Vehicle) (*models.Vehicle, error) {
	args := m.Called(ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) DeleteVehicle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
