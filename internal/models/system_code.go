package models

import "fmt"

// typeAbbrevs maps each canonical system type to the short code used inside
// generated system codes. Unknown or free-text types get the generic "SYS".
var typeAbbrevs = map[string]string{
	SystemTypeElectrical:     "EL",
	SystemTypeWater:          "AG",
	SystemTypeHeating:        "CA",
	SystemTypeDrainage:       "CLV",
	SystemTypeCommunications: "COM",
	SystemTypeAlarm:          "ALM",
}

// SystemTypeAbbrev returns the code abbreviation for a system type.
func SystemTypeAbbrev(systemType string) string {
	if abbrev, ok := typeAbbrevs[systemType]; ok {
		return abbrev
	}
	return "SYS"
}

// GenerateSystemCode builds the human-readable code for a new system:
// HOUSEID-ABBREV-NN, where NN is existing+1 zero-padded to two digits.
// Counts past 99 simply widen the number field.
//
// The result is a display/business identifier: once stored on a system it is
// never regenerated, even when the system's type changes.
func GenerateSystemCode(houseID, systemType string, existing int) string {
	return fmt.Sprintf("%s-%s-%02d", houseID, SystemTypeAbbrev(systemType), existing+1)
}
