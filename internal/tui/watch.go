package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/weatherface/internal/face"
)

// renderWatch draws the watch body. Every line is centered on the gauge
// width, which is the widest surface.
//
//	╭─────────────────────────────╮
//	│          Tuesday            │
//	│            2:30             │
//	│           Oct 06            │
//	│            72°F             │
//	│ ██████████████████░░░░░░░   │
//	╰─────────────────────────────╯
func renderWatch(app *App) string {
	s := app.screen
	w := max(s.gauge.w, lipgloss.Width(s.Text(face.SurfaceDay)))
	line := lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Background(colorBlack)

	clock := StyleHour.Render(s.Text(face.SurfaceHour)) + StyleMinute.Render(s.Text(face.SurfaceMinute))
	body := lipgloss.JoinVertical(lipgloss.Center,
		line.Render(StyleDay.Render(s.Text(face.SurfaceDay))),
		line.Render(clock),
		line.Render(StyleDate.Render(s.Text(face.SurfaceDate))),
		"",
		line.Render(StyleTemp.Render(s.Text(face.SurfaceTemperature))),
		"",
		renderGauge(s.gauge),
	)

	style := StyleWatch
	if app.pulsing {
		style = StyleWatchPulse
	}
	return style.Render(body)
}

// renderGauge converts the gauge's first cell row into block characters.
func renderGauge(c *cellCanvas) string {
	var sb strings.Builder
	for x := 0; x < c.w; x++ {
		if c.At(x, 0) == face.ColorWhite {
			sb.WriteString(StyleBarFull.Render("█"))
		} else {
			sb.WriteString(StyleBarBack.Render("░"))
		}
	}
	return sb.String()
}

// renderBody lays out the watch beside the status panel, or stacks them when
// the terminal is narrow.
func renderBody(app *App) string {
	watch := renderWatch(app)
	panel := renderPanel(app)
	if app.width > 0 && app.width < lipgloss.Width(watch)+lipgloss.Width(panel)+2 {
		return lipgloss.JoinVertical(lipgloss.Left, watch, panel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, watch, "  ", panel)
}
