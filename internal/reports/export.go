package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/homekeep/api/internal/models"
)

// HouseReport bundles everything known about a house for export.
type HouseReport struct {
	House     models.House
	Systems   []models.System
	Incidents []models.Incident
	Contacts  []models.Contact
	Parkings  []models.Parking
	Vehicles  []models.Vehicle
}

var (
	systemHeader   = []string{"Code", "Type", "Name", "Location", "Description", "Contact", "Phone"}
	incidentHeader = []string{"Date", "Title", "Status", "System", "Contact", "Action Taken"}
	contactHeader  = []string{"Name", "Role", "Phone", "Emergency Phone", "Email"}
	parkingHeader  = []string{"Name", "Location", "Status", "Tenant", "Rent", "Contract Start", "Contract End"}
	vehicleHeader  = []string{"Name", "Type", "Brand", "Model", "Plate", "ITV Date", "ITV Notes"}
)

// Generate builds an xlsx workbook with one sheet per collection of the
// house. The first sheet carries the house details.
func Generate(r HouseReport) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only on the error paths.

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHouseSheet(f, headerStyle, r.House); err != nil {
		f.Close()
		return nil, err
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{"Systems", systemHeader, systemRows(r.Systems)},
		{"Incidents", incidentHeader, incidentRows(r.Incidents)},
		{"Contacts", contactHeader, contactRows(r.Contacts)},
		{"Parkings", parkingHeader, parkingRows(r.Parkings)},
		{"Vehicles", vehicleHeader, vehicleRows(r.Vehicles)},
	}
	for _, sheet := range sheets {
		if err := writeSheet(f, headerStyle, sheet.name, sheet.headers, sheet.rows); err != nil {
			f.Close()
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeHouseSheet renames the default sheet and fills it with the house
// details as label/value pairs.
func writeHouseSheet(f *excelize.File, headerStyle int, h models.House) error {
	const name = "House"
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Name", h.Name},
		{"Address", h.Address},
		{"Maps", h.MapsURL},
		{"Notes", h.Notes},
	}
	for i, row := range rows {
		labelCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(name, labelCell, row[0]); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", labelCell, err)
		}
		if err := f.SetCellStyle(name, labelCell, labelCell, headerStyle); err != nil {
			return fmt.Errorf("failed to style cell %s: %w", labelCell, err)
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(name, valueCell, row[1]); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", valueCell, err)
		}
	}
	if err := f.SetColWidth(name, "A", "A", 14); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return f.SetColWidth(name, "B", "B", 50)
}

func writeSheet(f *excelize.File, headerStyle int, name string, headers []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(name, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(name, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("failed to resolve last column: %w", err)
	}
	return f.SetColWidth(name, "A", lastCol, 22)
}

func systemRows(systems []models.System) [][]interface{} {
	rows := make([][]interface{}, 0, len(systems))
	for _, s := range systems {
		rows = append(rows, []interface{}{s.Code, string(s.Type), s.Name, s.Location, s.Description, s.ContactName, s.ContactPhone})
	}
	return rows
}

func incidentRows(incidents []models.Incident) [][]interface{} {
	rows := make([][]interface{}, 0, len(incidents))
	for _, inc := range incidents {
		rows = append(rows, []interface{}{inc.Date, inc.Title, string(inc.Status), inc.SystemCode, inc.ContactName, inc.ActionTaken})
	}
	return rows
}

func contactRows(contacts []models.Contact) [][]interface{} {
	rows := make([][]interface{}, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []interface{}{c.Name, c.Role, c.Phone, c.EmergencyPhone, c.Email})
	}
	return rows
}

func parkingRows(parkings []models.Parking) [][]interface{} {
	rows := make([][]interface{}, 0, len(parkings))
	for _, p := range parkings {
		rows = append(rows, []interface{}{p.Name, p.Location, string(p.Status), p.TenantName, p.RentPrice, p.ContractStart, p.ContractEnd})
	}
	return rows
}

func vehicleRows(vehicles []models.Vehicle) [][]interface{} {
	rows := make([][]interface{}, 0, len(vehicles))
	for _, v := range vehicles {
		rows = append(rows, []interface{}{v.Name, string(v.Type), v.Brand, v.Model, v.Plate, v.ITVDate, v.ITVNotes})
	}
	return rows
}
