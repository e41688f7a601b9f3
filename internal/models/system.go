package models

// Canonical system types. Type is stored as free text, so anything outside
// this set is allowed and falls back to the generic code abbreviation.
const (
	SystemTypeElectrical     = "electrical"
	SystemTypeWater          = "water"
	SystemTypeHeating        = "heating"
	SystemTypeDrainage       = "drainage"
	SystemTypeCommunications = "communications"
	SystemTypeAlarm          = "alarm"
)

// System is a maintained subsystem of a house (electrical panel, water pump,
// heating, drainage, communications, alarm). Code is assigned at creation and
// never changes afterwards, even if the type is edited. HouseName is a
// point-in-time copy of the owning house's name.
type System struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	HouseID      string `json:"houseId"`
	HouseName    string `json:"houseName"`
	Type         string `json:"type"`
	Name         string `json:"name" binding:"required"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`

	// Electrical
	ElectricalPanelLocation     string `json:"electricalPanelLocation,omitempty"`
	ElectricalPanelPhotoURL     string `json:"electricalPanelPhotoUrl,omitempty"`
	ElectricalCircuitsDiagram   string `json:"electricalCircuitsDiagram,omitempty"`
	ElectricalContractedPower   string `json:"electricalContractedPower,omitempty"`
	ElectricalCompany           string `json:"electricalCompany,omitempty"`
	ElectricalBasicInstructions string `json:"electricalBasicInstructions,omitempty"`
	ElectricalContact           string `json:"electricalContact,omitempty"`

	// Water and pump
	WaterPumpLocation        string `json:"waterPumpLocation,omitempty"`
	WaterDiagram             string `json:"waterDiagram,omitempty"`
	WaterRestartInstructions string `json:"waterRestartInstructions,omitempty"`
	WaterMaintenance         string `json:"waterMaintenance,omitempty"`
	WaterContact             string `json:"waterContact,omitempty"`

	// Heating / climate
	HeatingType         string `json:"heatingType,omitempty"`
	HeatingLocation     string `json:"heatingLocation,omitempty"`
	HeatingInstructions string `json:"heatingInstructions,omitempty"`
	HeatingMaintenance  string `json:"heatingMaintenance,omitempty"`
	HeatingContact      string `json:"heatingContact,omitempty"`

	// Drainage
	DrainageLocations string `json:"drainageLocations,omitempty"`
	DrainageRules     string `json:"drainageRules,omitempty"`
	DrainageEmergency string `json:"drainageEmergency,omitempty"`
	DrainageContact   string `json:"drainageContact,omitempty"`

	// Communications
	CommOperator            string `json:"commOperator,omitempty"`
	CommPlan                string `json:"commPlan,omitempty"`
	CommRouterLocation      string `json:"commRouterLocation,omitempty"`
	CommWifiSSID            string `json:"commWifiSsid,omitempty"`
	CommWifiPassword        string `json:"commWifiPassword,omitempty"`
	CommRestartInstructions string `json:"commRestartInstructions,omitempty"`
	CommContact             string `json:"commContact,omitempty"`

	// Alarm
	AlarmType          string `json:"alarmType,omitempty"`
	AlarmPanelLocation string `json:"alarmPanelLocation,omitempty"`
	AlarmZones         string `json:"alarmZones,omitempty"`
	AlarmInstructions  string `json:"alarmInstructions,omitempty"`
	AlarmContact       string `json:"alarmContact,omitempty"`
}
