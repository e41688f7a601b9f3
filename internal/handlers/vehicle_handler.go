package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/homekeep/api/internal/errors"
	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/services"
)

// VehicleHandler handles vehicle-related HTTP requests.
type VehicleHandler struct {
	service services.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler instance.
func NewVehicleHandler(service services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		service: service,
	}
}

// List handles GET /api/v1/vehicles.
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.service.ListVehicles(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list vehicles", err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// Get handles GET /api/v1/vehicles/:id.
func (h *VehicleHandler) Get(c *gin.Context) {
	v, err := h.service.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			apierrors.NotFound(c, "Vehicle not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to get vehicle", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// ListByHouse handles GET /api/v1/houses/:id/vehicles.
func (h *VehicleHandler) ListByHouse(c *gin.Context) {
	vehicles, err := h.service.ListHouseVehicles(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list house vehicles", err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// Create handles POST /api/v1/vehicles.
func (h *VehicleHandler) Create(c *gin.Context) {
	var v models.Vehicle
	if !bindJSON(c, &v) {
		return
	}

	if err := h.service.CreateVehicle(c.Request.Context(), &v); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to create vehicle", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// Update handles PUT /api/v1/vehicles/:id.
func (h *VehicleHandler) Update(c *gin.Context) {
	var v models.Vehicle
	if !bindJSON(c, &v) {
		return
	}

	updated, err := h.service.UpdateVehicle(c.Request.Context(), c.Param("id"), &v)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		if errors.Is(err, services.ErrVehicleNotFound) {
			apierrors.NotFound(c, "Vehicle not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to update vehicle", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/vehicles/:id.
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			apierrors.NotFound(c, "Vehicle not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to delete vehicle", err)
		return
	}
	c.Status(http.StatusNoContent)
}
