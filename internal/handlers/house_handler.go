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

// HouseHandler handles house-related HTTP requests.
type HouseHandler struct {
	service services.HouseService
}

// NewHouseHandler creates a new HouseHandler instance.
func NewHouseHandler(service services.HouseService) *HouseHandler {
	return &HouseHandler{
		service: service,
	}
}

// List handles GET /api/v1/houses.
func (h *HouseHandler) List(c *gin.Context) {
	houses, err := h.service.ListHouses(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list houses", err)
		return
	}
	c.JSON(http.StatusOK, houses)
}

// Get handles GET /api/v1/houses/:id.
func (h *HouseHandler) Get(c *gin.Context) {
	house, err := h.service.GetHouse(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrHouseNotFound) {
			apierrors.NotFound(c, "House not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to get house", err)
		return
	}
	c.JSON(http.StatusOK, house)
}

// Create handles POST /api/v1/houses. The document model is the wire
// format, so the body binds straight into it; required fields are checked
// by the service.
func (h *HouseHandler) Create(c *gin.Context) {
	var house models.House
	if !bindJSON(c, &house) {
		return
	}

	if err := h.service.CreateHouse(c.Request.Context(), &house); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to create house", err)
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("House created", map[string]interface{}{"house_id": house.ID})
	}
	c.JSON(http.StatusCreated, house)
}

// Update handles PUT /api/v1/houses/:id.
func (h *HouseHandler) Update(c *gin.Context) {
	var house models.House
	if !bindJSON(c, &house) {
		return
	}

	updated, err := h.service.UpdateHouse(c.Request.Context(), c.Param("id"), &house)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		if errors.Is(err, services.ErrHouseNotFound) {
			apierrors.NotFound(c, "House not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to update house", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/houses/:id.
func (h *HouseHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteHouse(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrHouseNotFound) {
			apierrors.NotFound(c, "House not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to delete house", err)
		return
	}
	c.Status(http.StatusNoContent)
}
