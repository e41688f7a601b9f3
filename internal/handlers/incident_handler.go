package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/homekeep/api/internal/errors"
	"github.com/homekeep/api/internal/middleware"
	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/services"
)

// IncidentHandler handles incident-related HTTP requests.
type IncidentHandler struct {
	service services.IncidentService
}

// NewIncidentHandler creates a new IncidentHandler instance.
func NewIncidentHandler(service services.IncidentService) *IncidentHandler {
	return &IncidentHandler{
		service: service,
	}
}

// UpdateStatusRequest is the body of the status patch endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List handles GET /api/v1/incidents.
func (h *IncidentHandler) List(c *gin.Context) {
	incidents, err := h.service.ListIncidents(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list incidents", err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// Get handles GET /api/v1/incidents/:id.
func (h *IncidentHandler) Get(c *gin.Context) {
	inc, err := h.service.GetIncident(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrIncidentNotFound) {
			apierrors.NotFound(c, "Incident not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to get incident", err)
		return
	}
	c.JSON(http.StatusOK, inc)
}

// ListByHouse handles GET /api/v1/houses/:id/incidents.
func (h *IncidentHandler) ListByHouse(c *gin.Context) {
	incidents, err := h.service.ListHouseIncidents(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list house incidents", err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// ListBySystem handles GET /api/v1/systems/:id/incidents.
func (h *IncidentHandler) ListBySystem(c *gin.Context) {
	incidents, err := h.service.ListSystemIncidents(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list system incidents", err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// Create handles POST /api/v1/incidents.
func (h *IncidentHandler) Create(c *gin.Context) {
	var inc models.Incident
	if !bindJSON(c, &inc) {
		return
	}

	if err := h.service.CreateIncident(c.Request.Context(), &inc); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to create incident", err)
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Incident created", map[string]interface{}{
			"incident_id": inc.ID,
			"house_id":    inc.HouseID,
		})
	}
	c.JSON(http.StatusCreated, inc)
}

// Update handles PUT /api/v1/incidents/:id.
func (h *IncidentHandler) Update(c *gin.Context) {
	var inc models.Incident
	if !bindJSON(c, &inc) {
		return
	}

	updated, err := h.service.UpdateIncident(c.Request.Context(), c.Param("id"), &inc)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		if errors.Is(err, services.ErrIncidentNotFound) {
			apierrors.NotFound(c, "Incident not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to update incident", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateStatus handles PATCH /api/v1/incidents/:id/status.
func (h *IncidentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), models.IncidentStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		if errors.Is(err, services.ErrIncidentNotFound) {
			apierrors.NotFound(c, "Incident not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to update incident status", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/incidents/:id.
func (h *IncidentHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteIncident(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrIncidentNotFound) {
			apierrors.NotFound(c, "Incident not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to delete incident", err)
		return
	}
	c.Status(http.StatusNoContent)
}
