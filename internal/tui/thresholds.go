package tui

import "github.com/charmbracelet/lipgloss"

// severity represents the alert level for a metric value.
type severity int

const (
	severityNormal   severity = iota
	severityWarning           // yellow
	severityCritical          // red
)

// batterySeverity returns Warning at or below 20% and Critical at or below 10%.
// A charging battery is never flagged.
func batterySeverity(pct int, charging bool) severity {
	switch {
	case charging:
		return severityNormal
	case pct <= 10:
		return severityCritical
	case pct <= 20:
		return severityWarning
	default:
		return severityNormal
	}
}

// staleSeverity grades how long ago the last weather reply arrived relative
// to the request interval: Warning past two intervals, Critical past four.
func staleSeverity(ageMinutes, intervalMinutes int) severity {
	if intervalMinutes <= 0 {
		return severityNormal
	}
	switch {
	case ageMinutes > 4*intervalMinutes:
		return severityCritical
	case ageMinutes > 2*intervalMinutes:
		return severityWarning
	default:
		return severityNormal
	}
}

// severityToStyle maps a severity level to the appropriate lipgloss style.
func severityToStyle(s severity) lipgloss.Style {
	switch s {
	case severityWarning:
		return StyleYellow
	case severityCritical:
		return StyleRed
	default:
		return StyleGreen
	}
}
