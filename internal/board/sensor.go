package board

import (
	"fmt"

	"parking_kiosk/internal/models"
)

// Slot is one parking bay tile.
type Slot struct {
	ID    int    `json:"id"` // 1-based, matches the bay number painted on the floor
	Busy  bool   `json:"busy"`
	Class string `json:"class"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Air-quality thresholds on the raw MQ135 value. Comparisons are strict.
const (
	airPoorAbove     = 400
	airModerateAbove = 200
)

// BuildSlots renders every reading and returns the free-count label.
func BuildSlots(readings []models.Occupancy) ([]Slot, string) {
	slots := make([]Slot, 0, len(readings))
	free := 0
	for i, r := range readings {
		s := Slot{ID: i + 1, Busy: bool(r)}
		if s.Busy {
			s.Class = "slot-box busy"
			s.Label = "CÓ XE"
			s.Icon = "fas fa-car"
		} else {
			s.Class = "slot-box free"
			s.Label = "TRỐNG"
			s.Icon = "fas fa-car-side"
			free++
		}
		slots = append(slots, s)
	}
	return slots, fmt.Sprintf("%d Trống", free)
}

// ClassifyAir maps an MQ135 reading to "<tier> (<value>)" and a severity.
func ClassifyAir(v models.AirQuality) (string, Severity) {
	switch {
	case v > airPoorAbove:
		return fmt.Sprintf("Kém (%d)", v), SeverityRed
	case v > airModerateAbove:
		return fmt.Sprintf("TB (%d)", v), SeverityYellow
	default:
		return fmt.Sprintf("Tốt (%d)", v), SeverityGreen
	}
}
