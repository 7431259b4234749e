package board

import (
	"errors"
	"fmt"
	"time"

	"parking_kiosk/internal/models"
)

// Revenue quick-select periods.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodThisMonth = "this_month"
	PeriodCustom    = "custom"
)

const dateLayout = "2006-01-02"

var (
	ErrUnknownPeriod   = errors.New("unknown revenue period")
	ErrIncompleteRange = errors.New("both start and end dates are required")
)

// RevenuePeriod resolves a quick-select period against now (in now's location)
// and returns the range to fetch with the title shown above the total.
func RevenuePeriod(kind string, now time.Time, custom models.DateRange) (models.DateRange, string, error) {
	switch kind {
	case PeriodToday:
		d := now.Format(dateLayout)
		return models.DateRange{Start: d, End: d}, "Doanh Thu Hôm Nay", nil
	case PeriodYesterday:
		d := now.AddDate(0, 0, -1).Format(dateLayout)
		return models.DateRange{Start: d, End: d}, "Doanh Thu Hôm Qua", nil
	case PeriodThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return models.DateRange{Start: first.Format(dateLayout), End: last.Format(dateLayout)}, "Doanh Thu Tháng Này", nil
	case PeriodCustom:
		if !custom.Filtered() {
			return models.DateRange{}, "", ErrIncompleteRange
		}
		return custom, fmt.Sprintf("Doanh Thu (%s -> %s)", custom.Start, custom.End), nil
	default:
		return models.DateRange{}, "", fmt.Errorf("%w: %q", ErrUnknownPeriod, kind)
	}
}

// ValidateDate reports whether s is a "YYYY-MM-DD" date.
func ValidateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return nil
}
