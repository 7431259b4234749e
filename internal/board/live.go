package board

import (
	"strconv"
	"strings"
	"time"

	"parking_kiosk/internal/models"
)

// VisualKind says whether a capture slot shows a photo or an RFID badge.
type VisualKind string

const (
	VisualImage VisualKind = "image"
	VisualRFID  VisualKind = "rfid"
)

// LivePanel is the "latest vehicle" card on the monitor tab.
type LivePanel struct {
	Visual     VisualKind `json:"visual"`
	ImageURL   string     `json:"image_url,omitempty"`
	CardID     string     `json:"card_id,omitempty"`
	Plate      string     `json:"plate"`
	Time       string     `json:"time"`
	Outcome    string     `json:"outcome"`
	BadgeText  string     `json:"badge_text"`
	BadgeTone  Tone       `json:"badge_tone"`
	AlertClass string     `json:"alert_class"`
	Message    string     `json:"message"`
	TypeLabel  string     `json:"type_label"`
}

const (
	rfidToken      = "RFID"
	rfidPrefix     = "RFID:"
	rfidIconMarker = "rfid_icon"
)

// BuildLivePanel projects a new_log payload onto the live card. now seeds the
// cache-busting query parameter on capture URLs.
func BuildLivePanel(rec models.TransactionRecord, now time.Time, f *Formatter) LivePanel {
	image := rec.Image
	if image == "" {
		image = rec.ImagePath
	}
	isRFID := strings.Contains(rec.Plate, rfidToken)

	p := LivePanel{
		Plate: rec.Plate,
		Time:  models.TimeOfDay(rec.Timestamp()),
	}
	if isRFID || strings.Contains(image, rfidIconMarker) {
		p.Visual = VisualRFID
		p.CardID = strings.TrimSpace(strings.Replace(rec.Plate, rfidPrefix, "", 1))
	} else {
		p.Visual = VisualImage
		p.ImageURL = image + "?t=" + strconv.FormatInt(now.UnixMilli(), 10)
	}

	outcome := ClassifyLive(rec.Status)
	p.Outcome = outcome.String()
	switch outcome {
	case OutcomeAdmitted:
		p.BadgeText = "MỜI VÀO (IN)"
		p.BadgeTone = ToneSuccess
		p.AlertClass = "alert alert-success"
		p.Message = "✔ Xe hợp lệ / Vé lượt đã tạo"
		if isRFID {
			p.TypeLabel = "Vé Lượt (RFID)"
		} else {
			p.TypeLabel = "Vé Tháng (Cam)"
		}
	case OutcomeCheckedOut:
		fee := "0đ"
		if rec.Fee > 0 {
			fee = f.Money(rec.Fee)
		}
		p.BadgeText = "ĐÃ THU PHÍ (OUT)"
		p.BadgeTone = TonePrimary
		p.AlertClass = "alert alert-primary"
		p.Message = "Phí: " + fee
		p.TypeLabel = "Check-out"
	default:
		p.BadgeText = "TỪ CHỐI (DENIED)"
		p.BadgeTone = ToneDanger
		p.AlertClass = "alert alert-danger"
		p.Message = "⛔ Biển số chưa đăng ký / Lỗi"
		p.TypeLabel = "Unknown"
	}
	return p
}
