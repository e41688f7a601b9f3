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

// SystemService defines the business logic for house systems, including
// code assignment at creation.
type SystemService interface {
	// ListSystems returns all systems sorted by code.
	ListSystems(ctx context.Context) ([]models.System, error)

	// GetSystem retrieves a system. Returns ErrSystemNotFound when absent.
	GetSystem(ctx context.Context, id string) (*models.System, error)

	// ListHouseSystems returns the systems of a house sorted by code. A
	// house with no systems yields an empty slice. The house itself is not
	// required to exist; orphan-tolerant read paths just see zero rows.
	ListHouseSystems(ctx context.Context, houseID string) ([]models.System, error)

	// CreateSystem validates the input, stamps the current house name, and
	// stores the system with a freshly generated code. The id and code are
	// written back to sys.
	CreateSystem(ctx context.Context, sys *models.System) error

	// UpdateSystem replaces the editable fields. The code is never part of
	// the update, even when the type changes: once assigned it is a fixed
	// business identifier.
	UpdateSystem(ctx context.Context, id string, sys *models.System) (*models.System, error)

	// DeleteSystem removes the system. Incidents that reference it keep
	// their systemId/systemCode copies.
	DeleteSystem(ctx context.Context, id string) error
}

type systemService struct {
	systems repository.SystemRepository
	names   *cache.HouseNames
	scope   string
	sorter  *models.Sorter
	log     *logger.Logger
}

// NewSystemService creates a new instance of SystemService. scope is the
// configured sequence scope for code generation.
func NewSystemService(
	systems repository.SystemRepository,
	names *cache.HouseNames,
	scope string,
	sorter *models.Sorter,
	log *logger.Logger,
) SystemService {
	return &systemService{
		systems: systems,
		names:   names,
		scope:   scope,
		sorter:  sorter,
		log:     log,
	}
}

func (s *systemService) ListSystems(ctx context.Context) ([]models.System, error) {
	systems, err := s.systems.List(ctx)
	if err != nil {
		s.log.Error("Failed to list systems", err, nil)
		return nil, fmt.Errorf("failed to list systems: %w", err)
	}
	s.sorter.Systems(systems)
	return systems, nil
}

func (s *systemService) GetSystem(ctx context.Context, id string) (*models.System, error) {
	sys, err := s.systems.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get system", err, map[string]interface{}{"system_id": id})
		return nil, fmt.Errorf("failed to get system: %w", err)
	}
	if sys == nil {
		return nil, ErrSystemNotFound
	}
	return sys, nil
}

func (s *systemService) ListHouseSystems(ctx context.Context, houseID string) ([]models.System, error) {
	systems, err := s.systems.ListByHouse(ctx, houseID)
	if err != nil {
		s.log.Error("Failed to list house systems", err, map[string]interface{}{"house_id": houseID})
		return nil, fmt.Errorf("failed to list house systems: %w", err)
	}
	s.sorter.Systems(systems)
	return systems, nil
}

func (s *systemService) CreateSystem(ctx context.Context, sys *models.System) error {
	sys.Name = strings.TrimSpace(sys.Name)
	if sys.HouseID == "" {
		return fmt.Errorf("%w: a house is required", ErrInvalidInput)
	}
	if sys.Type == "" {
		return fmt.Errorf("%w: a system type is required", ErrInvalidInput)
	}
	if sys.Name == "" {
		return fmt.Errorf("%w: system name is required", ErrInvalidInput)
	}

	// Stamp the current house name; the house must exist at creation time.
	name, found, err := s.names.Resolve(ctx, sys.HouseID)
	if err != nil {
		return fmt.Errorf("failed to resolve house: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: house %s does not exist", ErrInvalidInput, sys.HouseID)
	}
	sys.HouseName = name

	if err := s.systems.CreateWithGeneratedCode(ctx, sys, s.scope); err != nil {
		s.log.Error("Failed to create system", err, map[string]interface{}{
			"house_id": sys.HouseID,
			"type":     sys.Type,
		})
		return fmt.Errorf("failed to create system: %w", err)
	}

	s.log.Info("System created", map[string]interface{}{
		"system_id": sys.ID,
		"house_id":  sys.HouseID,
		"code":      sys.Code,
	})
	return nil
}

func (s *systemService) UpdateSystem(ctx context.Context, id string, sys *models.System) (*models.System, error) {
	sys.Name = strings.TrimSpace(sys.Name)
	if sys.Name == "" {
		return nil, fmt.Errorf("%w: system name is required", ErrInvalidInput)
	}

	existing, err := s.systems.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get system: %w", err)
	}
	if existing == nil {
		return nil, ErrSystemNotFound
	}

	// Moving a system to another house restamps the name copy; the code
	// keeps the original house prefix regardless.
	if sys.HouseID != "" && sys.HouseID != existing.HouseID {
		name, found, err := s.names.Resolve(ctx, sys.HouseID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve house: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: house %s does not exist", ErrInvalidInput, sys.HouseID)
		}
		sys.HouseName = name
	} else {
		sys.HouseID = existing.HouseID
		sys.HouseName = existing.HouseName
	}

	fields := systemUpdateFields(sys)
	if err := s.systems.Update(ctx, id, fields); err != nil {
		s.log.Error("Failed to update system", err, map[string]interface{}{"system_id": id})
		return nil, fmt.Errorf("failed to update system: %w", err)
	}

	sys.ID = id
	sys.Code = existing.Code
	return sys, nil
}

func (s *systemService) DeleteSystem(ctx context.Context, id string) error {
	existing, err := s.systems.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get system: %w", err)
	}
	if existing == nil {
		return ErrSystemNotFound
	}

	if err := s.systems.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete system", err, map[string]interface{}{"system_id": id})
		return fmt.Errorf("failed to delete system: %w", err)
	}

	s.log.Info("System deleted", map[string]interface{}{
		"system_id": id,
		"code":      existing.Code,
	})
	return nil
}

// systemUpdateFields lists every editable field of a system. The code is
// deliberately absent.
func systemUpdateFields(sys *models.System) map[string]interface{} {
	return map[string]interface{}{
		"houseId":      sys.HouseID,
		"houseName":    sys.HouseName,
		"type":         sys.Type,
		"name":         sys.Name,
		"location":     sys.Location,
		"description":  sys.Description,
		"instructions": sys.Instructions,
		"contactName":  sys.ContactName,
		"contactPhone": sys.ContactPhone,

		"electricalPanelLocation":     sys.ElectricalPanelLocation,
		"electricalPanelPhotoUrl":     sys.ElectricalPanelPhotoURL,
		"electricalCircuitsDiagram":   sys.ElectricalCircuitsDiagram,
		"electricalContractedPower":   sys.ElectricalContractedPower,
		"electricalCompany":           sys.ElectricalCompany,
		"electricalBasicInstructions": sys.ElectricalBasicInstructions,
		"electricalContact":           sys.ElectricalContact,

		"waterPumpLocation":        sys.WaterPumpLocation,
		"waterDiagram":             sys.WaterDiagram,
		"waterRestartInstructions": sys.WaterRestartInstructions,
		"waterMaintenance":         sys.WaterMaintenance,
		"waterContact":             sys.WaterContact,

		"heatingType":         sys.HeatingType,
		"heatingLocation":     sys.HeatingLocation,
		"heatingInstructions": sys.HeatingInstructions,
		"heatingMaintenance":  sys.HeatingMaintenance,
		"heatingContact":      sys.HeatingContact,

		"drainageLocations": sys.DrainageLocations,
		"drainageRules":     sys.DrainageRules,
		"drainageEmergency": sys.DrainageEmergency,
		"drainageContact":   sys.DrainageContact,

		"commOperator":            sys.CommOperator,
		"commPlan":                sys.CommPlan,
		"commRouterLocation":      sys.CommRouterLocation,
		"commWifiSsid":            sys.CommWifiSSID,
		"commWifiPassword":        sys.CommWifiPassword,
		"commRestartInstructions": sys.CommRestartInstructions,
		"commContact":             sys.CommContact,

		"alarmType":          sys.AlarmType,
		"alarmPanelLocation": sys.AlarmPanelLocation,
		"alarmZones":         sys.AlarmZones,
		"alarmInstructions":  sys.AlarmInstructions,
		"alarmContact":       sys.AlarmContact,
	}
}
