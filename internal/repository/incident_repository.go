package repository

import (
	"context"
	"errors"

	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/store"
)

const incidentsCollection = "incidents"

// IncidentRepository defines the data access operations for incidents.
type IncidentRepository interface {
	// GetByID fetches an incident. Returns nil, nil when the id does not exist.
	GetByID(ctx context.Context, id string) (*models.Incident, error)

	// List returns all incidents.
	List(ctx context.Context) ([]models.Incident, error)

	// ListByHouse returns the incidents whose houseId equals houseID.
	ListByHouse(ctx context.Context, houseID string) ([]models.Incident, error)

	// ListBySystem returns the incidents whose systemId equals systemID.
	ListBySystem(ctx context.Context, systemID string) ([]models.Incident, error)

	// Create stores a new incident, generating an id when inc.ID is empty.
	Create(ctx context.Context, inc *models.Incident) error

	// Put creates or replaces the incident under inc.ID.
	Put(ctx context.Context, inc *models.Incident) error

	// Update merges fields into the stored document.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// UpdateStatus persists only the status field, leaving every other
	// field untouched.
	UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) error

	// UpdateHouseName refreshes the denormalized houseName on every
	// incident of the house.
	UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error)

	// Delete removes the incident.
	Delete(ctx context.Context, id string) error
}

type incidentRepository struct {
	store *store.Store
}

// NewIncidentRepository creates a new instance of IncidentRepository.
func NewIncidentRepository(s *store.Store) IncidentRepository {
	return &incidentRepository{store: s}
}

func (r *incidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	doc, err := r.store.GetByID(ctx, incidentsCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var inc models.Incident
	if err := decode(store.Document{ID: id, Doc: doc}, &inc); err != nil {
		return nil, err
	}
	inc.ID = id
	return &inc, nil
}

func (r *incidentRepository) List(ctx context.Context) ([]models.Incident, error) {
	docs, err := r.store.ListAll(ctx, incidentsCollection)
	if err != nil {
		return nil, err
	}
	return decodeIncidents(docs)
}

func (r *incidentRepository) ListByHouse(ctx context.Context, houseID string) ([]models.Incident, error) {
	docs, err := r.store.ListWhere(ctx, incidentsCollection, "houseId", houseID)
	if err != nil {
		return nil, err
	}
	return decodeIncidents(docs)
}

func (r *incidentRepository) ListBySystem(ctx context.Context, systemID string) ([]models.Incident, error) {
	docs, err := r.store.ListWhere(ctx, incidentsCollection, "systemId", systemID)
	if err != nil {
		return nil, err
	}
	return decodeIncidents(docs)
}

func (r *incidentRepository) Create(ctx context.Context, inc *models.Incident) error {
	if inc.ID == "" {
		inc.ID = store.NewDocumentID()
	}
	doc, err := encode(inc)
	if err != nil {
		return err
	}
	return r.store.Insert(ctx, incidentsCollection, inc.ID, doc)
}

func (r *incidentRepository) Put(ctx context.Context, inc *models.Incident) error {
	doc, err := encode(inc)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, incidentsCollection, inc.ID, doc)
}

func (r *incidentRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Patch(ctx, incidentsCollection, id, fields)
}

func (r *incidentRepository) UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) error {
	return r.store.Patch(ctx, incidentsCollection, id, map[string]interface{}{"status": status})
}

func (r *incidentRepository) UpdateHouseName(ctx context.Context, houseID, houseName string) (int, error) {
	return r.store.PatchWhere(ctx, incidentsCollection, "houseId", houseID,
		map[string]interface{}{"houseName": houseName})
}

func (r *incidentRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, incidentsCollection, id)
}

func decodeIncidents(docs []store.Document) ([]models.Incident, error) {
	incidents := make([]models.Incident, 0, len(docs))
	for _, d := range docs {
		var inc models.Incident
		if err := decode(d, &inc); err != nil {
			return nil, err
		}
		inc.ID = d.ID
		incidents = append(incidents, inc)
	}
	return incidents, nil
}
