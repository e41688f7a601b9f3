package repository

import (
	"context"
	"errors"

	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/store"
)

const parkingsCollection = "parkings"

// ParkingRepository defines the data access operations for parking spaces.
type ParkingRepository interface {
	// GetByID fetches a parking space. Returns nil, nil when the id does
	// not exist.
	GetByID(ctx context.Context, id string) (*models.Parking, error)

	// List returns all parking spaces.
	List(ctx context.Context) ([]models.Parking, error)

	// ListByHouse returns the parkings whose houseId equals houseID.
	ListByHouse(ctx context.Context, houseID string) ([]models.Parking, error)

	// Create stores a new parking space, generating an id when p.ID is empty.
	Create(ctx context.Context, p *models.Parking) error

	// Put creates or replaces the parking under p.ID.
	Put(ctx context.Context, p *models.Parking) error

	// Update merges fields into the stored document.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// UpdateHouseName refreshes the denormalized houseName on every
	// parking of the house.
	UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error)

	// Delete removes the parking space.
	Delete(ctx context.Context, id string) error
}

type parkingRepository struct {
	store *store.Store
}

// NewParkingRepository creates a new instance of ParkingRepository.
func NewParkingRepository(s *store.Store) ParkingRepository {
	return &parkingRepository{store: s}
}

func (r *parkingRepository) GetByID(ctx context.Context, id string) (*models.Parking, error) {
	doc, err := r.store.GetByID(ctx, parkingsCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var p models.Parking
	if err := decode(store.Document{ID: id, Doc: doc}, &p); err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func (r *parkingRepository) List(ctx context.Context) ([]models.Parking, error) {
	docs, err := r.store.ListAll(ctx, parkingsCollection)
	if err != nil {
		return nil, err
	}
	return decodeParkings(docs)
}

func (r *parkingRepository) ListByHouse(ctx context.Context, houseID string) ([]models.Parking, error) {
	docs, err := r.store.ListWhere(ctx, parkingsCollection, "houseId", houseID)
	if err != nil {
		return nil, err
	}
	return decodeParkings(docs)
}

func (r *parkingRepository) Create(ctx context.Context, p *models.Parking) error {
	if p.ID == "" {
		p.ID = store.NewDocumentID()
	}
	doc, err := encode(p)
	if err != nil {
		return err
	}
	return r.store.Insert(ctx, parkingsCollection, p.ID, doc)
}

func (r *parkingRepository) Put(ctx context.Context, p *models.Parking) error {
	doc, err := encode(p)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, parkingsCollection, p.ID, doc)
}

func (r *parkingRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Patch(ctx, parkingsCollection, id, fields)
}

func (r *parkingRepository) UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error) {
	return r.store.PatchWhere(ctx, parkingsCollection, "houseId", houseID,
		map[string]interface{}{"houseName": houseName})
}

func (r *parkingRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, parkingsCollection, id)
}

func decodeParkings(docs []store.Document) ([]models.Parking, error) {
	parkings := make([]models.Parking, 0, len(docs))
	for _, d := range docs {
		var p models.Parking
		if err := decode(d, &p); err != nil {
			return nil, err
		}
		p.ID = d.ID
		parkings = append(parkings, p)
	}
	return parkings, nil
}
