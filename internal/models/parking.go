package models

// ParkingStatus is the occupancy state of a parking space.
type ParkingStatus string

const (
	ParkingFree     ParkingStatus = "free"
	ParkingRented   ParkingStatus = "rented"
	ParkingReserved ParkingStatus = "reserved"
)

// Valid reports whether s is one of the defined statuses.
func (s ParkingStatus) Valid() bool {
	switch s {
	case ParkingFree, ParkingRented, ParkingReserved:
		return true
	}
	return false
}

// Parking is a rentable parking space belonging to a house. Money and date
// fields are kept as strings, matching the document format.
type Parking struct {
	ID            string        `json:"id"`
	HouseID       string        `json:"houseId"`
	HouseName     string        `json:"houseName"`
	Name          string        `json:"name" binding:"required"`
	Location      string        `json:"location"`
	Status        ParkingStatus `json:"status"`
	TenantName    string        `json:"tenantName"`
	TenantPhone   string        `json:"tenantPhone"`
	TenantEmail   string        `json:"tenantEmail"`
	RentPrice     string        `json:"rentPrice"`
	ContractStart string        `json:"contractStart"`
	ContractEnd   string        `json:"contractEnd"`
	AccessInfo    string        `json:"accessInfo"`
	Notes         string        `json:"notes"`
	PhotoURL      string        `json:"photoUrl"`
}
