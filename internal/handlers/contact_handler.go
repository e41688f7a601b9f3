package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/homekeep/api/internal/errors"
	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/services"
)

// ContactHandler handles contact-related HTTP requests.
type ContactHandler struct {
	service services.ContactService
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(service services.ContactService) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

// List handles GET /api/v1/contacts.
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.service.ListContacts(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list contacts", err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Get handles GET /api/v1/contacts/:id.
func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.service.GetContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			apierrors.NotFound(c, "Contact not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to get contact", err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// ListByHouse handles GET /api/v1/houses/:id/contacts.
func (h *ContactHandler) ListByHouse(c *gin.Context) {
	contacts, err := h.service.ListHouseContacts(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list house contacts", err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Create handles POST /api/v1/contacts.
func (h *ContactHandler) Create(c *gin.Context) {
	var contact models.Contact
	if !bindJSON(c, &contact) {
		return
	}

	if err := h.service.CreateContact(c.Request.Context(), &contact); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to create contact", err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// Update handles PUT /api/v1/contacts/:id.
func (h *ContactHandler) Update(c *gin.Context) {
	var contact models.Contact
	if !bindJSON(c, &contact) {
		return
	}

	updated, err := h.service.UpdateContact(c.Request.Context(), c.Param("id"), &contact)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		if errors.Is(err, services.ErrContactNotFound) {
			apierrors.NotFound(c, "Contact not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to update contact", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/contacts/:id.
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			apierrors.NotFound(c, "Contact not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to delete contact", err)
		return
	}
	c.Status(http.StatusNoContent)
}
