package board

// Channel names a sidebar status indicator.
type Channel string

const (
	ChannelServer Channel = "server"
	ChannelCam    Channel = "cam"
	ChannelSensor Channel = "sensor"
	ChannelMQ135  Channel = "mq135"
)

// Severity is the colour of an indicator.
type Severity string

const (
	SeverityGreen  Severity = "green"
	SeverityRed    Severity = "red"
	SeverityYellow Severity = "yellow"
)

const (
	dotBase      = "status-dot"
	dotGreen     = "dot-green"
	dotRed       = "dot-red"
	yellowColour = "#eab308"
	textDanger   = "text-danger"
)

// Indicator is the rendered state of one status dot and its label.
type Indicator struct {
	Text      string   `json:"text"`
	Severity  Severity `json:"severity"`
	DotClass  string   `json:"dot_class"`
	DotColour string   `json:"dot_colour,omitempty"`
	TextClass string   `json:"text_class,omitempty"`
}

// NewIndicator projects text and severity onto the sidebar styling.
// Only red carries the danger text class.
func NewIndicator(text string, sev Severity) Indicator {
	ind := Indicator{Text: text, Severity: sev, DotClass: dotBase}
	switch sev {
	case SeverityGreen:
		ind.DotClass = dotBase + " " + dotGreen
	case SeverityRed:
		ind.DotClass = dotBase + " " + dotRed
		ind.TextClass = textDanger
	case SeverityYellow:
		ind.DotColour = yellowColour
	}
	return ind
}

func defaultIndicators() map[Channel]Indicator {
	return map[Channel]Indicator{
		ChannelServer: NewIndicator("Đang kết nối...", SeverityYellow),
		ChannelCam:    NewIndicator("Sẵn sàng", SeverityGreen),
		ChannelSensor: NewIndicator("Chưa có dữ liệu", SeverityYellow),
		ChannelMQ135:  NewIndicator("--", SeverityYellow),
	}
}

// SetStatus updates the indicator bound to channel. Unknown channels are ignored.
func (b *Board) SetStatus(ch Channel, text string, sev Severity) {
	if _, ok := b.indicators[ch]; !ok {
		return
	}
	b.indicators[ch] = NewIndicator(text, sev)
}

// Indicator returns the current indicator for ch.
func (b *Board) Indicator(ch Channel) (Indicator, bool) {
	ind, ok := b.indicators[ch]
	return ind, ok
}
