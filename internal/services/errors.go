package services

import "errors"

// Service-level errors. Handlers translate these into HTTP responses.
var (
	ErrHouseNotFound    = errors.New("house not found")
	ErrSystemNotFound   = errors.New("system not found")
	ErrIncidentNotFound = errors.New("incident not found")
	ErrContactNotFound  = errors.New("contact not found")
	ErrParkingNotFound  = errors.New("parking not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")

	// ErrInvalidInput marks semantic validation failures caught before any
	// write is issued (missing required fields, unknown status values,
	// references to houses that do not exist).
	ErrInvalidInput = errors.New("invalid input")
)
