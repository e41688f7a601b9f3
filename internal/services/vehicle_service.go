package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/homekeep/api/internal/cache"
	"github.com/homekeep/api/internal/logger"
	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/repository"
)

// VehicleService defines the business logic for vehicles.
type VehicleService interface {
	// ListVehicles returns all vehicles grouped by house name.
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)

	// GetVehicle retrieves a vehicle. Returns ErrVehicleNotFound when
	// absent.
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)

	// ListHouseVehicles returns the vehicles kept at a house.
	ListHouseVehicles(ctx context.Context, houseID string) ([]models.Vehicle, error)

	// CreateVehicle validates and stores a new vehicle.
	CreateVehicle(ctx context.Context, v *models.Vehicle) error

	// UpdateVehicle replaces the editable fields.
	UpdateVehicle(ctx context.Context, id string, v *models.Vehicle) (*models.Vehicle, error)

	// DeleteVehicle removes the vehicle.
	DeleteVehicle(ctx context.Context, id string) error
}

type vehicleService struct {
	vehicles repository.VehicleRepository
	names    *cache.HouseNames
	sorter   *models.Sorter
	log      *logger.Logger
}

// NewVehicleService creates a new instance of VehicleService.
func NewVehicleService(vehicles repository.VehicleRepository, names *cache.HouseNames, sorter *models.Sorter, log *logger.Logger) VehicleService {
	return &vehicleService{
		vehicles: vehicles,
		names:    names,
		sorter:   sorter,
		log:      log,
	}
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		s.log.Error("Failed to list vehicles", err, nil)
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	s.sorter.Vehicles(vehicles)
	return vehicles, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get vehicle", err, map[string]interface{}{"vehicle_id": id})
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if v == nil {
		return nil, ErrVehicleNotFound
	}
	return v, nil
}

func (s *vehicleService) ListHouseVehicles(ctx context.Context, houseID string) ([]models.Vehicle, error) {
	vehicles, err := s.vehicles.ListByHouse(ctx, houseID)
	if err != nil {
		s.log.Error("Failed to list house vehicles", err, map[string]interface{}{"house_id": houseID})
		return nil, fmt.Errorf("failed to list house vehicles: %w", err)
	}
	s.sorter.Vehicles(vehicles)
	return vehicles, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return fmt.Errorf("%w: vehicle name is required", ErrInvalidInput)
	}
	if v.HouseID == "" {
		return fmt.Errorf("%w: a house is required", ErrInvalidInput)
	}
	if v.Type == "" {
		v.Type = models.VehicleCar
	}
	if !v.Type.Valid() {
		return fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, v.Type)
	}

	name, found, err := s.names.Resolve(ctx, v.HouseID)
	if err != nil {
		return fmt.Errorf("failed to resolve house: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: house %s does not exist", ErrInvalidInput, v.HouseID)
	}
	v.HouseName = name

	if err := s.vehicles.Create(ctx, v); err != nil {
		s.log.Error("Failed to create vehicle", err, map[string]interface{}{
			"house_id": v.HouseID,
			"name":     v.Name,
		})
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.log.Info("Vehicle created", map[string]interface{}{
		"vehicle_id": v.ID,
		"house_id":   v.HouseID,
		"type":       v.Type,
	})
	return nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id string, v *models.Vehicle) (*models.Vehicle, error) {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return nil, fmt.Errorf("%w: vehicle name is required", ErrInvalidInput)
	}
	if v.Type != "" && !v.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, v.Type)
	}

	existing, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if existing == nil {
		return nil, ErrVehicleNotFound
	}

	if v.HouseID == "" {
		v.HouseID = existing.HouseID
		v.HouseName = existing.HouseName
	} else if v.HouseID != existing.HouseID {
		name, found, err := s.names.Resolve(ctx, v.HouseID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve house: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: house %s does not exist", ErrInvalidInput, v.HouseID)
		}
		v.HouseName = name
	} else {
		v.HouseName = existing.HouseName
	}

	if v.Type == "" {
		v.Type = existing.Type
	}

	fields := map[string]interface{}{
		"type":          v.Type,
		"name":          v.Name,
		"brand":         v.Brand,
		"model":         v.Model,
		"plate":         v.Plate,
		"year":          v.Year,
		"purchasePrice": v.PurchasePrice,
		"purchaseYear":  v.PurchaseYear,
		"itvDate":       v.ITVDate,
		"itvNotes":      v.ITVNotes,
		"notes":         v.Notes,
		"photoUrl":      v.PhotoURL,
		"houseId":       v.HouseID,
		"houseName":     v.HouseName,
	}
	if err := s.vehicles.Update(ctx, id, fields); err != nil {
		s.log.Error("Failed to update vehicle", err, map[string]interface{}{"vehicle_id": id})
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	v.ID = id
	return v, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id string) error {
	existing, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get vehicle: %w", err)
	}
	if existing == nil {
		return ErrVehicleNotFound
	}

	if err := s.vehicles.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete vehicle", err, map[string]interface{}{"vehicle_id": id})
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	s.log.Info("Vehicle deleted", map[string]interface{}{"vehicle_id": id})
	return nil
}
