package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/homekeep/api/internal/config"
	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/store"
)

const systemsCollection = "systems"

// SystemRepository defines the data access operations for house systems.
type SystemRepository interface {
	// GetByID fetches a system. Returns nil, nil when the id does not exist.
	GetByID(ctx context.Context, id string) (*models.System, error)

	// List returns all systems.
	List(ctx context.Context) ([]models.System, error)

	// ListByHouse returns the systems whose houseId equals houseID.
	// Documents with a missing or blank houseId never match.
	ListByHouse(ctx context.Context, houseID string) ([]models.System, error)

	// CreateWithGeneratedCode stores a new system, assigning its code from
	// the current per-house count inside a single transaction. The count
	// runs under an advisory lock keyed by the house id, so concurrent
	// creations for one house cannot produce duplicate codes. scope decides
	// whether the count covers all systems in the house or only same-type
	// ones. The assigned id and code are written back to sys.
	CreateWithGeneratedCode(ctx context.Context, sys *models.System, scope string) error

	// Put creates or replaces the system under sys.ID, keeping whatever
	// code the document carries.
	Put(ctx context.Context, sys *models.System) error

	// Update merges fields into the stored document. The code field must
	// not be present in fields; callers strip it.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// UpdateHouseName refreshes the denormalized houseName on every system
	// of the house. Returns the number of documents touched.
	UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error)

	// Delete removes the system. Incidents referencing it are kept.
	Delete(ctx context.Context, id string) error
}

type systemRepository struct {
	store *store.Store
}

// NewSystemRepository creates a new instance of SystemRepository.
func NewSystemRepository(s *store.Store) SystemRepository {
	return &systemRepository{store: s}
}

func (r *systemRepository) GetByID(ctx context.Context, id string) (*models.System, error) {
	doc, err := r.store.GetByID(ctx, systemsCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var sys models.System
	if err := decode(store.Document{ID: id, Doc: doc}, &sys); err != nil {
		return nil, err
	}
	sys.ID = id
	return &sys, nil
}

func (r *systemRepository) List(ctx context.Context) ([]models.System, error) {
	docs, err := r.store.ListAll(ctx, systemsCollection)
	if err != nil {
		return nil, err
	}
	return decodeSystems(docs)
}

func (r *systemRepository) ListByHouse(ctx context.Context, houseID string) ([]models.System, error) {
	docs, err := r.store.ListWhere(ctx, systemsCollection, "houseId", houseID)
	if err != nil {
		return nil, err
	}
	return decodeSystems(docs)
}

func (r *systemRepository) CreateWithGeneratedCode(ctx context.Context, sys *models.System, scope string) error {
	if sys.ID == "" {
		sys.ID = store.NewDocumentID()
	}

	filters := map[string]string{"houseId": sys.HouseID}
	if scope == config.CodeScopeType {
		filters["type"] = sys.Type
	}

	return r.store.CreateWithSequence(ctx, systemsCollection, sys.HouseID, sys.ID, filters,
		func(count int) (json.RawMessage, error) {
			sys.Code = models.GenerateSystemCode(sys.HouseID, sys.Type, count)
			return encode(sys)
		})
}

func (r *systemRepository) Put(ctx context.Context, sys *models.System) error {
	doc, err := encode(sys)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, systemsCollection, sys.ID, doc)
}

func (r *systemRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Patch(ctx, systemsCollection, id, fields)
}

func (r *systemRepository) UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error) {
	return r.store.PatchWhere(ctx, systemsCollection, "houseId", houseID,
		map[string]interface{}{"houseName": houseName})
}

func (r *systemRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, systemsCollection, id)
}

func decodeSystems(docs []store.Document) ([]models.System, error) {
	systems := make([]models.System, 0, len(docs))
	for _, d := range docs {
		var sys models.System
		if err := decode(d, &sys); err != nil {
			return nil, err
		}
		sys.ID = d.ID
		systems = append(systems, sys)
	}
	return systems, nil
}
