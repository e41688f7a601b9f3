package models

// IncidentStatus is the closed set of incident states.
type IncidentStatus string

const (
	IncidentOpen     IncidentStatus = "open"
	IncidentPending  IncidentStatus = "pending"
	IncidentResolved IncidentStatus = "resolved"
)

// Valid reports whether s is one of the defined statuses.
func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentOpen, IncidentPending, IncidentResolved:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to target is allowed.
// Every defined status is reachable from anything: there is no workflow,
// no terminal state, and a resolved incident can be reopened. Only the
// target is checked, so a record bulk-loaded with an out-of-enum status can
// still be moved onto a defined one. Encoding the total transition function
// here keeps that an explicit decision rather than a convention.
func (s IncidentStatus) CanTransitionTo(target IncidentStatus) bool {
	return target.Valid()
}

// Incident records a maintenance event against a house and, optionally, one
// of its systems. SystemCode is a point-in-time copy of the referenced
// system's code; Date is a calendar date kept as a string (YYYY-MM-DD).
type Incident struct {
	ID          string         `json:"id"`
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	ActionTaken string         `json:"actionTaken"`
	ContactName string         `json:"contactName"`
	Date        string         `json:"date"`
	Status      IncidentStatus `json:"status"`
	HouseID     string         `json:"houseId"`
	HouseName   string         `json:"houseName"`
	SystemID    string         `json:"systemId,omitempty"`
	SystemCode  string         `json:"systemCode,omitempty"`
}
