package board

import "strings"

// Outcome is the closed classification of a free-text transaction status.
type Outcome int

const (
	OutcomeDenied Outcome = iota
	OutcomeAdmitted
	OutcomeCheckedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdmitted:
		return "admitted"
	case OutcomeCheckedOut:
		return "checked_out"
	default:
		return "denied"
	}
}

// ClassifyLive maps a live event status onto an Outcome. Rules are evaluated in
// order and the first match wins, so "IN"/"ALLOWED" take priority over "OUT".
func ClassifyLive(status string) Outcome {
	st := strings.ToUpper(status)
	switch {
	case strings.Contains(st, "IN"), strings.Contains(st, "ALLOWED"):
		return OutcomeAdmitted
	case strings.Contains(st, "OUT"):
		return OutcomeCheckedOut
	default:
		return OutcomeDenied
	}
}

// Tone is a bootstrap background class for a status badge.
type Tone string

const (
	ToneSuccess   Tone = "bg-success"
	TonePrimary   Tone = "bg-primary"
	ToneDanger    Tone = "bg-danger"
	ToneSecondary Tone = "bg-secondary"
)

// StatusTone picks the history badge tone, IN then OUT then DENIED.
func StatusTone(status string) Tone {
	st := strings.ToUpper(status)
	switch {
	case strings.Contains(st, "IN"):
		return ToneSuccess
	case strings.Contains(st, "OUT"):
		return TonePrimary
	case strings.Contains(st, "DENIED"):
		return ToneDanger
	default:
		return ToneSecondary
	}
}

func isEntry(status string) bool {
	st := strings.ToUpper(status)
	return strings.Contains(st, "IN") || strings.Contains(st, "ALLOWED")
}

func isExit(status string) bool {
	st := strings.ToUpper(status)
	return strings.Contains(st, "OUT") || strings.Contains(st, "PAID")
}

func isCheckout(status string) bool {
	return strings.Contains(strings.ToUpper(status), "OUT")
}
