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

// IncidentService defines the business logic for maintenance incidents.
type IncidentService interface {
	// ListIncidents returns all incidents, most recent first.
	ListIncidents(ctx context.Context) ([]models.Incident, error)

	// GetIncident retrieves an incident. Returns ErrIncidentNotFound when
	// absent.
	GetIncident(ctx context.Context, id string) (*models.Incident, error)

	// ListHouseIncidents returns the incidents of a house, most recent
	// first. Zero matches is an empty slice.
	ListHouseIncidents(ctx context.Context, houseID string) ([]models.Incident, error)

	// ListSystemIncidents returns the incidents tied to a system, most
	// recent first.
	ListSystemIncidents(ctx context.Context, systemID string) ([]models.Incident, error)

	// CreateIncident validates and stores a new incident. A blank status
	// defaults to open. When a system is referenced, its current code is
	// stamped onto the incident.
	CreateIncident(ctx context.Context, inc *models.Incident) error

	// UpdateIncident replaces the editable fields, restamping systemCode
	// when the system reference changes.
	UpdateIncident(ctx context.Context, id string, inc *models.Incident) (*models.Incident, error)

	// UpdateStatus moves the incident to the given status, persisting only
	// the status field. Every defined status is reachable from every
	// other; unknown statuses are rejected before any write.
	UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) (*models.Incident, error)

	// DeleteIncident removes the incident.
	DeleteIncident(ctx context.Context, id string) error
}

type incidentService struct {
	incidents repository.IncidentRepository
	systems   repository.SystemRepository
	names     *cache.HouseNames
	sorter    *models.Sorter
	log       *logger.Logger
}

// NewIncidentService creates a new instance of IncidentService.
func NewIncidentService(
	incidents repository.IncidentRepository,
	systems repository.SystemRepository,
	names *cache.HouseNames,
	sorter *models.Sorter,
	log *logger.Logger,
) IncidentService {
	return &incidentService{
		incidents: incidents,
		systems:   systems,
		names:     names,
		sorter:    sorter,
		log:       log,
	}
}

func (s *incidentService) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	incidents, err := s.incidents.List(ctx)
	if err != nil {
		s.log.Error("Failed to list incidents", err, nil)
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	s.sorter.Incidents(incidents)
	return incidents, nil
}

func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	inc, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get incident", err, map[string]interface{}{"incident_id": id})
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	if inc == nil {
		return nil, ErrIncidentNotFound
	}
	return inc, nil
}

func (s *incidentService) ListHouseIncidents(ctx context.Context, houseID string) ([]models.Incident, error) {
	incidents, err := s.incidents.ListByHouse(ctx, houseID)
	if err != nil {
		s.log.Error("Failed to list house incidents", err, map[string]interface{}{"house_id": houseID})
		return nil, fmt.Errorf("failed to list house incidents: %w", err)
	}
	s.sorter.Incidents(incidents)
	return incidents, nil
}

func (s *incidentService) ListSystemIncidents(ctx context.Context, systemID string) ([]models.Incident, error) {
	incidents, err := s.incidents.ListBySystem(ctx, systemID)
	if err != nil {
		s.log.Error("Failed to list system incidents", err, map[string]interface{}{"system_id": systemID})
		return nil, fmt.Errorf("failed to list system incidents: %w", err)
	}
	s.sorter.Incidents(incidents)
	return incidents, nil
}

func (s *incidentService) CreateIncident(ctx context.Context, inc *models.Incident) error {
	inc.Title = strings.TrimSpace(inc.Title)
	if inc.Title == "" {
		return fmt.Errorf("%w: incident title is required", ErrInvalidInput)
	}
	if inc.HouseID == "" {
		return fmt.Errorf("%w: a house is required", ErrInvalidInput)
	}
	if inc.Status == "" {
		inc.Status = models.IncidentOpen
	}
	if !inc.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, inc.Status)
	}

	name, found, err := s.names.Resolve(ctx, inc.HouseID)
	if err != nil {
		return fmt.Errorf("failed to resolve house: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: house %s does not exist", ErrInvalidInput, inc.HouseID)
	}
	inc.HouseName = name

	if err := s.stampSystemCode(ctx, inc); err != nil {
		return err
	}

	if err := s.incidents.Create(ctx, inc); err != nil {
		s.log.Error("Failed to create incident", err, map[string]interface{}{
			"house_id": inc.HouseID,
			"title":    inc.Title,
		})
		return fmt.Errorf("failed to create incident: %w", err)
	}

	s.log.Info("Incident created", map[string]interface{}{
		"incident_id": inc.ID,
		"house_id":    inc.HouseID,
		"status":      inc.Status,
	})
	return nil
}

func (s *incidentService) UpdateIncident(ctx context.Context, id string, inc *models.Incident) (*models.Incident, error) {
	inc.Title = strings.TrimSpace(inc.Title)
	if inc.Title == "" {
		return nil, fmt.Errorf("%w: incident title is required", ErrInvalidInput)
	}
	if inc.Status != "" && !inc.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, inc.Status)
	}

	existing, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	if existing == nil {
		return nil, ErrIncidentNotFound
	}

	if inc.HouseID == "" {
		inc.HouseID = existing.HouseID
		inc.HouseName = existing.HouseName
	} else if inc.HouseID != existing.HouseID {
		name, found, err := s.names.Resolve(ctx, inc.HouseID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve house: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: house %s does not exist", ErrInvalidInput, inc.HouseID)
		}
		inc.HouseName = name
	} else {
		inc.HouseName = existing.HouseName
	}

	if inc.Status == "" {
		inc.Status = existing.Status
	}

	if inc.SystemID != existing.SystemID {
		if err := s.stampSystemCode(ctx, inc); err != nil {
			return nil, err
		}
	} else {
		inc.SystemCode = existing.SystemCode
	}

	fields := map[string]interface{}{
		"title":       inc.Title,
		"description": inc.Description,
		"actionTaken": inc.ActionTaken,
		"contactName": inc.ContactName,
		"date":        inc.Date,
		"status":      inc.Status,
		"houseId":     inc.HouseID,
		"houseName":   inc.HouseName,
		"systemId":    inc.SystemID,
		"systemCode":  inc.SystemCode,
	}
	if err := s.incidents.Update(ctx, id, fields); err != nil {
		s.log.Error("Failed to update incident", err, map[string]interface{}{"incident_id": id})
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}

	inc.ID = id
	return inc, nil
}

func (s *incidentService) UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) (*models.Incident, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	existing, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	if existing == nil {
		return nil, ErrIncidentNotFound
	}

	if !existing.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot move from %q to %q", ErrInvalidInput, existing.Status, status)
	}

	if err := s.incidents.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update incident status", err, map[string]interface{}{
			"incident_id": id,
			"status":      status,
		})
		return nil, fmt.Errorf("failed to update incident status: %w", err)
	}

	s.log.Info("Incident status changed", map[string]interface{}{
		"incident_id": id,
		"from":        existing.Status,
		"to":          status,
	})

	existing.Status = status
	return existing, nil
}

func (s *incidentService) DeleteIncident(ctx context.Context, id string) error {
	existing, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get incident: %w", err)
	}
	if existing == nil {
		return ErrIncidentNotFound
	}

	if err := s.incidents.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete incident", err, map[string]interface{}{"incident_id": id})
		return fmt.Errorf("failed to delete incident: %w", err)
	}

	s.log.Info("Incident deleted", map[string]interface{}{"incident_id": id})
	return nil
}

// stampSystemCode copies the referenced system's current code onto the
// incident. The copy is point-in-time: it is never rewritten afterwards
// unless the reference itself changes.
func (s *incidentService) stampSystemCode(ctx context.Context, inc *models.Incident) error {
	if inc.SystemID == "" {
		inc.SystemCode = ""
		return nil
	}

	sys, err := s.systems.GetByID(ctx, inc.SystemID)
	if err != nil {
		return fmt.Errorf("failed to resolve system: %w", err)
	}
	if sys == nil {
		return fmt.Errorf("%w: system %s does not exist", ErrInvalidInput, inc.SystemID)
	}
	inc.SystemCode = sys.Code
	return nil
}
