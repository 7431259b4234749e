package board

import "parking_kiosk/internal/models"

// VehicleRow is one line of the registered-vehicle table.
type VehicleRow struct {
	Plate string `json:"plate"`
	Owner string `json:"owner"`
	Type  string `json:"type"`
}

// RenderVehicles fills the display defaults ("-" owner, "Car" type).
func RenderVehicles(list []models.RegisteredVehicle) []VehicleRow {
	rows := make([]VehicleRow, 0, len(list))
	for _, v := range list {
		row := VehicleRow{Plate: v.Plate, Owner: v.Owner, Type: v.VehicleType}
		if row.Owner == "" {
			row.Owner = "-"
		}
		if row.Type == "" {
			row.Type = "Car"
		}
		rows = append(rows, row)
	}
	return rows
}
