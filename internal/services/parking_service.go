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

// ParkingService defines the business logic for parking spaces.
type ParkingService interface {
	// ListParkings returns all parking spaces grouped by house name.
	ListParkings(ctx context.Context) ([]models.Parking, error)

	// GetParking retrieves a parking space. Returns ErrParkingNotFound
	// when absent.
	GetParking(ctx context.Context, id string) (*models.Parking, error)

	// ListHouseParkings returns the parking spaces of a house.
	ListHouseParkings(ctx context.Context, houseID string) ([]models.Parking, error)

	// CreateParking validates and stores a new parking space. A blank
	// status defaults to free.
	CreateParking(ctx context.Context, p *models.Parking) error

	// UpdateParking replaces the editable fields.
	UpdateParking(ctx context.Context, id string, p *models.Parking) (*models.Parking, error)

	// DeleteParking removes the parking space.
	DeleteParking(ctx context.Context, id string) error
}

type parkingService struct {
	parkings repository.ParkingRepository
	names    *cache.HouseNames
	sorter   *models.Sorter
	log      *logger.Logger
}

// NewParkingService creates a new instance of ParkingService.
func NewParkingService(parkings repository.ParkingRepository, names *cache.HouseNames, sorter *models.Sorter, log *logger.Logger) ParkingService {
	return &parkingService{
		parkings: parkings,
		names:    names,
		sorter:   sorter,
		log:      log,
	}
}

func (s *parkingService) ListParkings(ctx context.Context) ([]models.Parking, error) {
	parkings, err := s.parkings.List(ctx)
	if err != nil {
		s.log.Error("Failed to list parkings", err, nil)
		return nil, fmt.Errorf("failed to list parkings: %w", err)
	}
	s.sorter.Parkings(parkings)
	return parkings, nil
}

func (s *parkingService) GetParking(ctx context.Context, id string) (*models.Parking, error) {
	p, err := s.parkings.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get parking", err, map[string]interface{}{"parking_id": id})
		return nil, fmt.Errorf("failed to get parking: %w", err)
	}
	if p == nil {
		return nil, ErrParkingNotFound
	}
	return p, nil
}

func (s *parkingService) ListHouseParkings(ctx context.Context, houseID string) ([]models.Parking, error) {
	parkings, err := s.parkings.ListByHouse(ctx, houseID)
	if err != nil {
		s.log.Error("Failed to list house parkings", err, map[string]interface{}{"house_id": houseID})
		return nil, fmt.Errorf("failed to list house parkings: %w", err)
	}
	s.sorter.Parkings(parkings)
	return parkings, nil
}

func (s *parkingService) CreateParking(ctx context.Context, p *models.Parking) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: parking name is required", ErrInvalidInput)
	}
	if p.HouseID == "" {
		return fmt.Errorf("%w: a house is required", ErrInvalidInput)
	}
	if p.Status == "" {
		p.Status = models.ParkingFree
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, p.Status)
	}

	name, found, err := s.names.Resolve(ctx, p.HouseID)
	if err != nil {
		return fmt.Errorf("failed to resolve house: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: house %s does not exist", ErrInvalidInput, p.HouseID)
	}
	p.HouseName = name

	if err := s.parkings.Create(ctx, p); err != nil {
		s.log.Error("Failed to create parking", err, map[string]interface{}{
			"house_id": p.HouseID,
			"name":     p.Name,
		})
		return fmt.Errorf("failed to create parking: %w", err)
	}

	s.log.Info("Parking created", map[string]interface{}{
		"parking_id": p.ID,
		"house_id":   p.HouseID,
		"status":     p.Status,
	})
	return nil
}

func (s *parkingService) UpdateParking(ctx context.Context, id string, p *models.Parking) (*models.Parking, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, fmt.Errorf("%w: parking name is required", ErrInvalidInput)
	}
	if p.Status != "" && !p.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, p.Status)
	}

	existing, err := s.parkings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get parking: %w", err)
	}
	if existing == nil {
		return nil, ErrParkingNotFound
	}

	if p.HouseID == "" {
		p.HouseID = existing.HouseID
		p.HouseName = existing.HouseName
	} else if p.HouseID != existing.HouseID {
		name, found, err := s.names.Resolve(ctx, p.HouseID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve house: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: house %s does not exist", ErrInvalidInput, p.HouseID)
		}
		p.HouseName = name
	} else {
		p.HouseName = existing.HouseName
	}

	if p.Status == "" {
		p.Status = existing.Status
	}

	fields := map[string]interface{}{
		"name":          p.Name,
		"location":      p.Location,
		"status":        p.Status,
		"tenantName":    p.TenantName,
		"tenantPhone":   p.TenantPhone,
		"tenantEmail":   p.TenantEmail,
		"rentPrice":     p.RentPrice,
		"contractStart": p.ContractStart,
		"contractEnd":   p.ContractEnd,
		"accessInfo":    p.AccessInfo,
		"notes":         p.Notes,
		"photoUrl":      p.PhotoURL,
		"houseId":       p.HouseID,
		"houseName":     p.HouseName,
	}
	if err := s.parkings.Update(ctx, id, fields); err != nil {
		s.log.Error("Failed to update parking", err, map[string]interface{}{"parking_id": id})
		return nil, fmt.Errorf("failed to update parking: %w", err)
	}

	p.ID = id
	return p, nil
}

func (s *parkingService) DeleteParking(ctx context.Context, id string) error {
	existing, err := s.parkings.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get parking: %w", err)
	}
	if existing == nil {
		return ErrParkingNotFound
	}

	if err := s.parkings.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete parking", err, map[string]interface{}{"parking_id": id})
		return fmt.Errorf("failed to delete parking: %w", err)
	}

	s.log.Info("Parking deleted", map[string]interface{}{"parking_id": id})
	return nil
}
