package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/services"
)

func setupContactRouter(svc *MockContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewContactHandler(svc)
	router.GET("/api/v1/contacts", handler.List)
	router.GET("/api/v1/contacts/:id", handler.Get)
	router.GET("/api/v1/houses/:id/contacts", handler.ListByHouse)
	router.POST("/api/v1/contacts", handler.Create)
	router.PUT("/api/v1/contacts/:id", handler.Update)
	router.DELETE("/api/v1/contacts/:id", handler.Delete)
	return router
}

func TestContactHandler_Create_WithHouseSet(t *testing.T) {
	// Arrange
	svc := new(MockContactService)
	svc.On("CreateContact", mock.Anything, mock.MatchedBy(func(c *models.Contact) bool {
		return len(c.HouseIDs) == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Contact).ID = "c1"
	}).Return(nil)
	router := setupContactRouter(svc)

	body := `{"name":"Electricista Puig","phone":"600123123","houseIds":["h1","h2"]}`

	// Act
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestContactHandler_ListByHouse(t *testing.T) {
	// Arrange
	svc := new(MockContactService)
	svc.On("ListHouseContacts", mock.Anything, "h1").Return([]models.Contact{
		{ID: "c1", Name: "Anna", HouseIDs: []string{"h1"}},
	}, nil)
	router := setupContactRouter(svc)

	// Act
	req := httptest.NewRequest(http.MethodGet, "/api/v1/houses/h1/contacts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var contacts []models.Contact
	require.NoError(t, json.NewDecoder(w.Body).Decode(&contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "Anna", contacts[0].Name)
	svc.AssertExpectations(t)
}

func TestContactHandler_Update_NotFound(t *testing.T) {
	// Arrange
	svc := new(MockContactService)
	svc.On("UpdateContact", mock.Anything, "missing", mock.Anything).Return(nil, services.ErrContactNotFound)
	router := setupContactRouter(svc)

	// Act
	req := httptest.NewRequest(http.MethodPut, "/api/v1/contacts/missing", strings.NewReader(`{"name":"Anna"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactHandler_Delete(t *testing.T) {
	// Arrange
	svc := new(MockContactService)
	svc.On("DeleteContact", mock.Anything, "c1").Return(nil)
	router := setupContactRouter(svc)

	// Act
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/contacts/c1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}
