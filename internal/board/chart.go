package board

const chartSeriesLabel = "Phí thu được (VNĐ)"

// Chart is one rendered chart instance. A browser recreates its canvas whenever
// the ID changes.
type Chart struct {
	ID          uint64   `json:"id"`
	Type        string   `json:"type"`
	SeriesLabel string   `json:"series_label"`
	Labels      []string `json:"labels"`
	Values      []int64  `json:"values"`
	ValueText   []string `json:"value_text"` // localized tick/tooltip text per value

	destroyed bool
}

// Destroy releases the instance. A destroyed chart is never drawn again.
func (c *Chart) Destroy() { c.destroyed = true }

// Destroyed reports whether Destroy has been called.
func (c *Chart) Destroyed() bool { return c.destroyed }

// ChartRenderer owns the single live chart.
type ChartRenderer struct {
	f       *Formatter
	nextID  uint64
	current *Chart
}

func NewChartRenderer(f *Formatter) *ChartRenderer {
	return &ChartRenderer{f: f}
}

// Render destroys the previous chart, if any, and creates a new one for series.
func (r *ChartRenderer) Render(series []Bar) *Chart {
	if r.current != nil {
		r.current.Destroy()
	}
	r.nextID++
	c := &Chart{
		ID:          r.nextID,
		Type:        "bar",
		SeriesLabel: chartSeriesLabel,
		Labels:      make([]string, len(series)),
		Values:      make([]int64, len(series)),
		ValueText:   make([]string, len(series)),
	}
	for i, b := range series {
		c.Labels[i] = b.Label
		c.Values[i] = int64(b.Value)
		c.ValueText[i] = r.f.Number(int64(b.Value))
	}
	r.current = c
	return c
}

// Current returns the live chart, or nil before the first render.
func (r *ChartRenderer) Current() *Chart { return r.current }
