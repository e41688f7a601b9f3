package models

// VehicleType is the kind of vehicle tracked against a house.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
)

// Valid reports whether t is one of the defined vehicle types.
func (t VehicleType) Valid() bool {
	return t == VehicleCar || t == VehicleMotorcycle
}

// Vehicle is a car or motorcycle kept at a house. ITV fields track the
// periodic roadworthiness inspection.
type Vehicle struct {
	ID            string      `json:"id"`
	HouseID       string      `json:"houseId"`
	HouseName     string      `json:"houseName"`
	Type          VehicleType `json:"type"`
	Name          string      `json:"name" binding:"required"`
	Brand         string      `json:"brand"`
	Model         string      `json:"model"`
	Plate         string      `json:"plate"`
	Year          string      `json:"year"`
	PurchasePrice string      `json:"purchasePrice"`
	PurchaseYear  string      `json:"purchaseYear"`
	ITVDate       string      `json:"itvDate"`
	ITVNotes      string      `json:"itvNotes"`
	Notes         string      `json:"notes"`
	PhotoURL      string      `json:"photoUrl"`
}
