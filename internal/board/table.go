package board

import (
	"path"
	"strings"

	"parking_kiosk/internal/models"
)

// MaxTableRows bounds the history table. Records past it are dropped, not paginated.
const MaxTableRows = 200

const captureRoute = "/captures/"

// Row is one rendered history line.
type Row struct {
	Time      string     `json:"time"`
	Visual    VisualKind `json:"visual"`
	ImageURL  string     `json:"image_url,omitempty"`
	Plate     string     `json:"plate"`
	Status    string     `json:"status"`
	BadgeTone Tone       `json:"badge_tone"`
	Fee       string     `json:"fee"`
}

// RenderTable projects at most MaxTableRows records into rows, preserving order.
func RenderTable(records []models.TransactionRecord, f *Formatter) []Row {
	n := len(records)
	if n > MaxTableRows {
		n = MaxTableRows
	}
	rows := make([]Row, 0, n)
	for _, rec := range records[:n] {
		rows = append(rows, renderRow(rec, f))
	}
	return rows
}

func renderRow(rec models.TransactionRecord, f *Formatter) Row {
	img := rec.ImagePath
	if img == "" {
		img = rec.Image
	}
	row := Row{
		Time:      rec.Timestamp(),
		Plate:     rec.Plate,
		Status:    rec.Status,
		BadgeTone: StatusTone(rec.Status),
		Fee:       "-",
	}
	if isRFIDRow(rec.Plate, img) {
		row.Visual = VisualRFID
	} else {
		row.Visual = VisualImage
		row.ImageURL = CaptureURL(img)
	}
	if rec.Fee > 0 {
		row.Fee = f.Money(rec.Fee)
	}
	return row
}

func isRFIDRow(plate, img string) bool {
	return strings.Contains(img, rfidIconMarker) ||
		strings.Contains(img, "placeholder") ||
		strings.HasPrefix(plate, rfidToken)
}

// CaptureURL rewrites a stored path like "static/captures/entry_1.jpg" (or a
// Windows path) to the served "/captures/entry_1.jpg". Other paths pass through.
func CaptureURL(img string) string {
	if !strings.Contains(img, "static") {
		return img
	}
	return captureRoute + path.Base(strings.ReplaceAll(img, `\`, "/"))
}

// FilterByPlate keeps records whose plate contains the upper-cased term.
// An empty term keeps everything.
func FilterByPlate(records []models.TransactionRecord, term string) []models.TransactionRecord {
	term = strings.ToUpper(strings.TrimSpace(term))
	if term == "" {
		return records
	}
	out := make([]models.TransactionRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.Plate, term) {
			out = append(out, r)
		}
	}
	return out
}
