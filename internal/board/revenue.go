package board

import "parking_kiosk/internal/models"

// MaxChartBars bounds the revenue chart to the most recent checkouts.
const MaxChartBars = 20

const noDataLabel = "Không có dữ liệu"

// Revenue is the summary above the chart.
type Revenue struct {
	Total   models.Money `json:"total"`
	Entries int          `json:"entries"`
	Exits   int          `json:"exits"`
}

// Bar is one chart column.
type Bar struct {
	Label string       `json:"label"`
	Value models.Money `json:"value"`
}

// ComputeRevenue counts entries (IN/ALLOWED) and exits (OUT/PAID) and sums exit fees.
// A status may match both classes; both counters are then incremented.
func ComputeRevenue(records []models.TransactionRecord) Revenue {
	var rev Revenue
	for _, r := range records {
		if isEntry(r.Status) {
			rev.Entries++
		}
		if isExit(r.Status) {
			rev.Exits++
			rev.Total += r.Fee
		}
	}
	return rev
}

// BuildSeries takes the first MaxChartBars checkouts (newest first from the
// backend) and returns them oldest first. With no checkouts it returns a single
// zero placeholder bar.
func BuildSeries(records []models.TransactionRecord) []Bar {
	outs := make([]models.TransactionRecord, 0, MaxChartBars)
	for _, r := range records {
		if len(outs) == MaxChartBars {
			break
		}
		if isCheckout(r.Status) {
			outs = append(outs, r)
		}
	}
	if len(outs) == 0 {
		return []Bar{{Label: noDataLabel, Value: 0}}
	}
	bars := make([]Bar, len(outs))
	for i, r := range outs {
		bars[len(outs)-1-i] = Bar{Label: models.TimeOfDay(r.SettledAt()), Value: r.Fee}
	}
	return bars
}
