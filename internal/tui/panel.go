package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/weatherface/internal/appmsg"
	"github.com/dm/weatherface/internal/format"
)

// panelCardWidth is the outer width of each status card.
const panelCardWidth = 30

// renderCard renders one status card with a title, a value and an optional
// detail line.
//
//	╭────────────────────────────╮
//	│ Battery                    │   ← titleStyle (dim; yellow/red past a threshold)
//	│ 80% charging               │   ← bold, card color
//	│ ▇▇▇▇▆▆▆▅▅▅                 │   ← detail (sparkline or counters)
//	╰────────────────────────────╯
func renderCard(title, value, detail string, color lipgloss.Color, titleStyle lipgloss.Style) string {
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
	lines := []string{titleStyle.Render(title), valueStyle.Render(value)}
	if detail != "" {
		lines = append(lines, detail)
	}
	return StylePanelCard.Width(panelCardWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// cardInnerWidth is the usable text width inside a card: outer width minus
// border (2) and padding (2).
const cardInnerWidth = panelCardWidth - 4

// renderPanel stacks the battery, link and face settings cards.
func renderPanel(app *App) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderBatteryCard(app),
		renderLinkCard(app),
		renderFaceCard(app),
	)
}

func renderBatteryCard(app *App) string {
	b := app.battery
	sev := batterySeverity(b.ChargePercent, b.IsCharging)
	color := colorGreen
	titleStyle := StyleDim
	switch sev {
	case severityWarning:
		color, titleStyle = colorYellow, StyleYellow
	case severityCritical:
		color, titleStyle = colorRed, StyleRed
	}

	value := format.FormatPercent(float64(b.ChargePercent))
	switch {
	case b.IsCharging:
		value += " charging"
	case b.IsPlugged:
		value += " plugged"
	}
	spark := RenderSparkline(app.history.Values(), cardInnerWidth, 100, color)
	return renderCard("Battery", value, spark, color, titleStyle)
}

func renderLinkCard(app *App) string {
	value := "no traffic"
	if ev := app.lastEvent; ev != nil {
		value = ev.Kind.String()
		if ev.Reason != appmsg.ResultOK {
			value += ": " + ev.Reason.String()
		}
	}
	detail := StyleDim.Render(fmt.Sprintf("tx %d  err %d  rx %d  drop %d",
		app.counts[appmsg.EventSent],
		app.counts[appmsg.EventFailed],
		app.counts[appmsg.EventReceived],
		app.counts[appmsg.EventDropped]))
	color := colorCyan
	if app.lastEvent != nil && app.lastEvent.Reason != appmsg.ResultOK {
		color = colorRed
	}
	return renderCard("Link", value, detail, color, StyleDim)
}

func renderFaceCard(app *App) string {
	cfg := app.face.Config()
	clock := "12h"
	if cfg.Clock24h {
		clock = "24h"
	}
	vibe := "off"
	if cfg.VibrateEveryHour {
		vibe = "hourly"
	}
	value := fmt.Sprintf("%s  weather every %dm", clock, cfg.WeatherInterval)
	detail := StyleDim.Render(fmt.Sprintf("vibe %s  pulses %d", vibe, app.pulses))
	return renderCard("Face", value, detail, colorWhite, StyleDim)
}
