package models

// Contact is a person or company associated with one or more houses.
// HouseIDs is a many-to-many reference set; contacts do not cache house names.
type Contact struct {
	ID             string   `json:"id"`
	Name           string   `json:"name" binding:"required"`
	Role           string   `json:"role"`
	Phone          string   `json:"phone"`
	EmergencyPhone string   `json:"emergencyPhone"`
	Email          string   `json:"email"`
	Notes          string   `json:"notes"`
	HouseIDs       []string `json:"houseIds"`
}

// ServesHouse reports whether the contact is associated with the given house.
func (c *Contact) ServesHouse(houseID string) bool {
	for _, id := range c.HouseIDs {
		if id == houseID {
			return true
		}
	}
	return false
}
