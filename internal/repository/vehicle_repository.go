package repository

import (
	"context"
	"errors"

	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/store"
)

const vehiclesCollection = "vehicles"

// VehicleRepository defines the data access operations for vehicles.
type VehicleRepository interface {
	// GetByID fetches a vehicle. Returns nil, nil when the id does not exist.
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)

	// List returns all vehicles.
	List(ctx context.Context) ([]models.Vehicle, error)

	// ListByHouse returns the vehicles whose houseId equals houseID.
	ListByHouse(ctx context.Context, houseID string) ([]models.Vehicle, error)

	// Create stores a new vehicle, generating an id when v.ID is empty.
	Create(ctx context.Context, v *models.Vehicle) error

	// Put creates or replaces the vehicle under v.ID.
	Put(ctx context.Context, v *models.Vehicle) error

	// Update merges fields into the stored document.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// UpdateHouseName refreshes the denormalized houseName on every
	// vehicle of the house.
	UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error)

	// Delete removes the vehicle.
	Delete(ctx context.Context, id string) error
}

type vehicleRepository struct {
	store *store.Store
}

// NewVehicleRepository creates a new instance of VehicleRepository.
func NewVehicleRepository(s *store.Store) VehicleRepository {
	return &vehicleRepository{store: s}
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	doc, err := r.store.GetByID(ctx, vehiclesCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var v models.Vehicle
	if err := decode(store.Document{ID: id, Doc: doc}, &v); err != nil {
		return nil, err
	}
	v.ID = id
	return &v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	docs, err := r.store.ListAll(ctx, vehiclesCollection)
	if err != nil {
		return nil, err
	}
	return decodeVehicles(docs)
}

func (r *vehicleRepository) ListByHouse(ctx context.Context, houseID string) ([]models.Vehicle, error) {
	docs, err := r.store.ListWhere(ctx, vehiclesCollection, "houseId", houseID)
	if err != nil {
		return nil, err
	}
	return decodeVehicles(docs)
}

func (r *vehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	if v.ID == "" {
		v.ID = store.NewDocumentID()
	}
	doc, err := encode(v)
	if err != nil {
		return err
	}
	return r.store.Insert(ctx, vehiclesCollection, v.ID, doc)
}

func (r *vehicleRepository) Put(ctx context.Context, v *models.Vehicle) error {
	doc, err := encode(v)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, vehiclesCollection, v.ID, doc)
}

func (r *vehicleRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Patch(ctx, vehiclesCollection, id, fields)
}

func (r *vehicleRepository) UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error) {
	return r.store.PatchWhere(ctx, vehiclesCollection, "houseId", houseID,
		map[string]interface{}{"houseName": houseName})
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, vehiclesCollection, id)
}

func decodeVehicles(docs []store.Document) ([]models.Vehicle, error) {
	vehicles := make([]models.Vehicle, 0, len(docs))
	for _, d := range docs {
		var v models.Vehicle
		if err := decode(d, &v); err != nil {
			return nil, err
		}
		v.ID = d.ID
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}
