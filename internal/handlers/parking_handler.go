package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/homekeep/api/internal/errors"
	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/services"
)

// ParkingHandler handles parking-related HTTP requests.
type ParkingHandler struct {
	service services.ParkingService
}

// NewParkingHandler creates a new ParkingHandler instance.
func NewParkingHandler(service services.ParkingService) *ParkingHandler {
	return &ParkingHandler{
		service: service,
	}
}

// List handles GET /api/v1/parkings.
func (h *ParkingHandler) List(c *gin.Context) {
	parkings, err := h.service.ListParkings(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list parkings", err)
		return
	}
	c.JSON(http.StatusOK, parkings)
}

// Get handles GET /api/v1/parkings/:id.
func (h *ParkingHandler) Get(c *gin.Context) {
	p, err := h.service.GetParking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrParkingNotFound) {
			apierrors.NotFound(c, "Parking not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to get parking", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListByHouse handles GET /api/v1/houses/:id/parkings.
func (h *ParkingHandler) ListByHouse(c *gin.Context) {
	parkings, err := h.service.ListHouseParkings(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list house parkings", err)
		return
	}
	c.JSON(http.StatusOK, parkings)
}

// Create handles POST /api/v1/parkings.
func (h *ParkingHandler) Create(c *gin.Context) {
	var p models.Parking
	if !bindJSON(c, &p) {
		return
	}

	if err := h.service.CreateParking(c.Request.Context(), &p); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to create parking", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/v1/parkings/:id.
func (h *ParkingHandler) Update(c *gin.Context) {
	var p models.Parking
	if !bindJSON(c, &p) {
		return
	}

	updated, err := h.service.UpdateParking(c.Request.Context(), c.Param("id"), &p)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		if errors.Is(err, services.ErrParkingNotFound) {
			apierrors.NotFound(c, "Parking not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to update parking", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/parkings/:id.
func (h *ParkingHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteParking(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrParkingNotFound) {
			apierrors.NotFound(c, "Parking not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to delete parking", err)
		return
	}
	c.Status(http.StatusNoContent)
}
