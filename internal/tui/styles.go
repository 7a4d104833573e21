package tui

import "github.com/charmbracelet/lipgloss"

// Watch simulator palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorBlack  = lipgloss.Color("#000000")
	colorDark   = lipgloss.Color("#1e293b")
	colorBezel  = lipgloss.Color("#334155")
)

// StyleHeader is the full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleWatch is the watch body: white text on black inside a rounded bezel.
var StyleWatch = lipgloss.NewStyle().
	Background(colorBlack).
	Foreground(colorWhite).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorBezel).
	Padding(1, 2)

// StyleWatchPulse replaces the bezel color while the haptic motor runs.
var StyleWatchPulse = StyleWatch.
	BorderForeground(colorYellow)

// Surface text styles.
var (
	StyleHour    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorBlack)
	StyleMinute  = lipgloss.NewStyle().Foreground(colorWhite).Background(colorBlack)
	StyleDay     = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorBlack)
	StyleDate    = lipgloss.NewStyle().Foreground(colorWhite).Background(colorBlack)
	StyleTemp    = lipgloss.NewStyle().Foreground(colorWhite).Background(colorBlack)
	StyleBarFull = lipgloss.NewStyle().Foreground(colorWhite).Background(colorBlack)
	StyleBarBack = lipgloss.NewStyle().Foreground(colorDark).Background(colorBlack)
)

// StylePanelCard is a bordered card in the status panel.
var StylePanelCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 1)

// Utility styles.
var (
	StyleError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)
	StyleOK    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)

// Named color styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	StyleCyan   = lipgloss.NewStyle().Foreground(colorCyan)
	StyleRed    = lipgloss.NewStyle().Foreground(colorRed)
)
