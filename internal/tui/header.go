package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   "weatherface" and the companion location
//	center: "● LINKED" or "● OFFLINE" once the event stream has closed
//	right:  time of the last valid weather reply, colored by staleness
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := "weatherface"
	if app.location != "" {
		left += "  " + app.location
	}

	center := StyleOK.Render("● LINKED")
	if app.linkClosed || app.events == nil {
		center = StyleError.Render("● OFFLINE")
	}

	right := StyleDim.Render("Weather: never")
	if !app.lastWeather.IsZero() {
		age := int(app.now().Sub(app.lastWeather).Minutes())
		sev := staleSeverity(age, app.face.Config().WeatherInterval)
		right = severityToStyle(sev).Render("Weather: " + app.lastWeather.Format("15:04"))
	}

	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	spacing := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right), 0)
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}
