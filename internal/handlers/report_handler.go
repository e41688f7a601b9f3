package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/homekeep/api/internal/errors"
	"github.com/homekeep/api/internal/reports"
	"github.com/homekeep/api/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler assembles and serves per-house xlsx exports.
type ReportHandler struct {
	houses    services.HouseService
	systems   services.SystemService
	incidents services.IncidentService
	contacts  services.ContactService
	parkings  services.ParkingService
	vehicles  services.VehicleService
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(
	houses services.HouseService,
	systems services.SystemService,
	incidents services.IncidentService,
	contacts services.ContactService,
	parkings services.ParkingService,
	vehicles services.VehicleService,
) *ReportHandler {
	return &ReportHandler{
		houses:    houses,
		systems:   systems,
		incidents: incidents,
		contacts:  contacts,
		parkings:  parkings,
		vehicles:  vehicles,
	}
}

// ExportHouse handles GET /api/v1/houses/:id/export. It gathers everything
// attached to the house and streams back an xlsx workbook.
func (h *ReportHandler) ExportHouse(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	house, err := h.houses.GetHouse(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrHouseNotFound) {
			apierrors.NotFound(c, "House not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to get house", err)
		return
	}

	report := reports.HouseReport{House: *house}
	if report.Systems, err = h.systems.ListHouseSystems(ctx, id); err != nil {
		apierrors.InternalServerError(c, "Failed to gather systems", err)
		return
	}
	if report.Incidents, err = h.incidents.ListHouseIncidents(ctx, id); err != nil {
		apierrors.InternalServerError(c, "Failed to gather incidents", err)
		return
	}
	if report.Contacts, err = h.contacts.ListHouseContacts(ctx, id); err != nil {
		apierrors.InternalServerError(c, "Failed to gather contacts", err)
		return
	}
	if report.Parkings, err = h.parkings.ListHouseParkings(ctx, id); err != nil {
		apierrors.InternalServerError(c, "Failed to gather parkings", err)
		return
	}
	if report.Vehicles, err = h.vehicles.ListHouseVehicles(ctx, id); err != nil {
		apierrors.InternalServerError(c, "Failed to gather vehicles", err)
		return
	}

	data, err := reports.Generate(report)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to generate report", err)
		return
	}

	filename := fmt.Sprintf("%s.xlsx", house.Name)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
