package repository

import (
	"context"
	"errors"

	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/store"
)

const housesCollection = "houses"

// HouseRepository defines the data access operations for houses.
type HouseRepository interface {
	// GetByID fetches a house. Returns nil, nil when the id does not exist
	// (not an error); errors are actual store failures.
	GetByID(ctx context.Context, id string) (*models.House, error)

	// List returns all houses. An empty slice when there are none.
	List(ctx context.Context) ([]models.House, error)

	// Create stores a new house. When h.ID is empty a fresh id is generated
	// and written back to h.
	Create(ctx context.Context, h *models.House) error

	// Put creates or replaces the house under h.ID. Used by bulk-load paths
	// that bring their own ids.
	Put(ctx context.Context, h *models.House) error

	// Update merges the given fields into the stored document.
	// Returns store.ErrNotFound when the id does not exist.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// Delete removes the house. Children are not cascaded: systems,
	// incidents, parkings, vehicles and contacts keep their references.
	Delete(ctx context.Context, id string) error
}

type houseRepository struct {
	store *store.Store
}

// NewHouseRepository creates a new instance of HouseRepository.
func NewHouseRepository(s *store.Store) HouseRepository {
	return &houseRepository{store: s}
}

func (r *houseRepository) GetByID(ctx context.Context, id string) (*models.House, error) {
	doc, err := r.store.GetByID(ctx, housesCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var h models.House
	if err := decode(store.Document{ID: id, Doc: doc}, &h); err != nil {
		return nil, err
	}
	h.ID = id
	return &h, nil
}

func (r *houseRepository) List(ctx context.Context) ([]models.House, error) {
	docs, err := r.store.ListAll(ctx, housesCollection)
	if err != nil {
		return nil, err
	}

	houses := make([]models.House, 0, len(docs))
	for _, d := range docs {
		var h models.House
		if err := decode(d, &h); err != nil {
			return nil, err
		}
		h.ID = d.ID
		houses = append(houses, h)
	}
	return houses, nil
}

func (r *houseRepository) Create(ctx context.Context, h *models.House) error {
	if h.ID == "" {
		h.ID = store.NewDocumentID()
	}
	doc, err := encode(h)
	if err != nil {
		return err
	}
	return r.store.Insert(ctx, housesCollection, h.ID, doc)
}

func (r *houseRepository) Put(ctx context.Context, h *models.House) error {
	doc, err := encode(h)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, housesCollection, h.ID, doc)
}

func (r *houseRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Patch(ctx, housesCollection, id, fields)
}

func (r *houseRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, housesCollection, id)
}
