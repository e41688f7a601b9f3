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

// HouseService defines the business logic for houses, including the
// denormalization cascade on rename.
type HouseService interface {
	// ListHouses returns all houses sorted by name.
	ListHouses(ctx context.Context) ([]models.House, error)

	// GetHouse retrieves a house. Returns ErrHouseNotFound when absent.
	GetHouse(ctx context.Context, id string) (*models.House, error)

	// CreateHouse validates and stores a new house. The generated id is
	// written back to h.
	CreateHouse(ctx context.Context, h *models.House) error

	// UpdateHouse replaces the editable fields of the house. When the name
	// changes, the denormalized houseName on systems, incidents, parkings
	// and vehicles is refreshed and the lookup cache updated. Cascade
	// failures are logged, not surfaced: a stale copy is an accepted data
	// quality gap, not a user-facing error.
	UpdateHouse(ctx context.Context, id string, h *models.House) (*models.House, error)

	// DeleteHouse removes the house. Children are deliberately not
	// cascaded; their references become orphaned and read paths tolerate
	// that.
	DeleteHouse(ctx context.Context, id string) error
}

type houseService struct {
	houses    repository.HouseRepository
	systems   repository.SystemRepository
	incidents repository.IncidentRepository
	parkings  repository.ParkingRepository
	vehicles  repository.VehicleRepository
	names     *cache.HouseNames
	sorter    *models.Sorter
	log       *logger.Logger
}

// NewHouseService creates a new instance of HouseService.
func NewHouseService(
	houses repository.HouseRepository,
	systems repository.SystemRepository,
	incidents repository.IncidentRepository,
	parkings repository.ParkingRepository,
	vehicles repository.VehicleRepository,
	names *cache.HouseNames,
	sorter *models.Sorter,
	log *logger.Logger,
) HouseService {
	return &houseService{
		houses:    houses,
		systems:   systems,
		incidents: incidents,
		parkings:  parkings,
		vehicles:  vehicles,
		names:     names,
		sorter:    sorter,
		log:       log,
	}
}

func (s *houseService) ListHouses(ctx context.Context) ([]models.House, error) {
	houses, err := s.houses.List(ctx)
	if err != nil {
		s.log.Error("Failed to list houses", err, nil)
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}
	s.sorter.Houses(houses)
	return houses, nil
}

func (s *houseService) GetHouse(ctx context.Context, id string) (*models.House, error) {
	house, err := s.houses.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get house", err, map[string]interface{}{"house_id": id})
		return nil, fmt.Errorf("failed to get house: %w", err)
	}
	if house == nil {
		return nil, ErrHouseNotFound
	}
	return house, nil
}

func (s *houseService) CreateHouse(ctx context.Context, h *models.House) error {
	h.Name = strings.TrimSpace(h.Name)
	if h.Name == "" {
		return fmt.Errorf("%w: house name is required", ErrInvalidInput)
	}

	if err := s.houses.Create(ctx, h); err != nil {
		s.log.Error("Failed to create house", err, map[string]interface{}{"name": h.Name})
		return fmt.Errorf("failed to create house: %w", err)
	}

	s.names.Refresh(ctx, h.ID, h.Name)
	s.log.Info("House created", map[string]interface{}{
		"house_id": h.ID,
		"name":     h.Name,
	})
	return nil
}

func (s *houseService) UpdateHouse(ctx context.Context, id string, h *models.House) (*models.House, error) {
	h.Name = strings.TrimSpace(h.Name)
	if h.Name == "" {
		return nil, fmt.Errorf("%w: house name is required", ErrInvalidInput)
	}

	existing, err := s.houses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get house: %w", err)
	}
	if existing == nil {
		return nil, ErrHouseNotFound
	}

	fields := map[string]interface{}{
		"name":          h.Name,
		"address":       h.Address,
		"mapsUrl":       h.MapsURL,
		"coverImageUrl": h.CoverImageURL,
		"notes":         h.Notes,
	}
	if err := s.houses.Update(ctx, id, fields); err != nil {
		s.log.Error("Failed to update house", err, map[string]interface{}{"house_id": id})
		return nil, fmt.Errorf("failed to update house: %w", err)
	}

	if existing.Name != h.Name {
		s.cascadeRename(ctx, id, h.Name)
	}
	s.names.Refresh(ctx, id, h.Name)

	h.ID = id
	return h, nil
}

func (s *houseService) DeleteHouse(ctx context.Context, id string) error {
	existing, err := s.houses.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get house: %w", err)
	}
	if existing == nil {
		return ErrHouseNotFound
	}

	if err := s.houses.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete house", err, map[string]interface{}{"house_id": id})
		return fmt.Errorf("failed to delete house: %w", err)
	}

	s.names.Invalidate(ctx, id)
	s.log.Info("House deleted", map[string]interface{}{"house_id": id})
	return nil
}

// cascadeRename refreshes the cached houseName on every document that
// references the house. Each collection is updated independently; a failure
// in one leaves that collection stale until the next edit, which matches
// how stale copies are treated everywhere else.
func (s *houseService) cascadeRename(ctx context.Context, id, name string) {
	type target struct {
		collection string
		update     func(context.Context, string, string) (int, error)
	}
	targets := []target{
		{"systems", s.systems.UpdateHouseName},
		{"incidents", s.incidents.UpdateHouseName},
		{"parkings", s.parkings.UpdateHouseName},
		{"vehicles", s.vehicles.UpdateHouseName},
	}

	for _, tgt := range targets {
		changed, err := tgt.update(ctx, id, name)
		if err != nil {
			s.log.Warn("House rename cascade failed", map[string]interface{}{
				"house_id":   id,
				"collection": tgt.collection,
				"error":      err.Error(),
			})
			continue
		}
		if changed > 0 {
			s.log.Info("House rename cascaded", map[string]interface{}{
				"house_id":   id,
				"collection": tgt.collection,
				"updated":    changed,
			})
		}
	}
}
