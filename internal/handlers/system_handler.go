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

// SystemHandler handles system-related HTTP requests.
type SystemHandler struct {
	service services.SystemService
}

// NewSystemHandler creates a new SystemHandler instance.
func NewSystemHandler(service services.SystemService) *SystemHandler {
	return &SystemHandler{
		service: service,
	}
}

// List handles GET /api/v1/systems.
func (h *SystemHandler) List(c *gin.Context) {
	systems, err := h.service.ListSystems(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list systems", err)
		return
	}
	c.JSON(http.StatusOK, systems)
}

// Get handles GET /api/v1/systems/:id.
func (h *SystemHandler) Get(c *gin.Context) {
	sys, err := h.service.GetSystem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrSystemNotFound) {
			apierrors.NotFound(c, "System not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to get system", err)
		return
	}
	c.JSON(http.StatusOK, sys)
}

// ListByHouse handles GET /api/v1/houses/:id/systems.
func (h *SystemHandler) ListByHouse(c *gin.Context) {
	systems, err := h.service.ListHouseSystems(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list house systems", err)
		return
	}
	c.JSON(http.StatusOK, systems)
}

// Create handles POST /api/v1/systems. The code is assigned server-side;
// any code in the body is ignored.
func (h *SystemHandler) Create(c *gin.Context) {
	var sys models.System
	if !bindJSON(c, &sys) {
		return
	}
	sys.Code = ""

	if err := h.service.CreateSystem(c.Request.Context(), &sys); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to create system", err)
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("System created", map[string]interface{}{
			"system_id": sys.ID,
			"code":      sys.Code,
		})
	}
	c.JSON(http.StatusCreated, sys)
}

// Update handles PUT /api/v1/systems/:id.
func (h *SystemHandler) Update(c *gin.Context) {
	var sys models.System
	if !bindJSON(c, &sys) {
		return
	}

	updated, err := h.service.UpdateSystem(c.Request.Context(), c.Param("id"), &sys)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		if errors.Is(err, services.ErrSystemNotFound) {
			apierrors.NotFound(c, "System not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to update system", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/systems/:id.
func (h *SystemHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteSystem(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrSystemNotFound) {
			apierrors.NotFound(c, "System not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to delete system", err)
		return
	}
	c.Status(http.StatusNoContent)
}
