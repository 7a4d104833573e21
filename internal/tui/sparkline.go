package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks is the 8-level block character set for sparklines.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline converts values into a block sparkline of exactly width
// characters, scaled against ceiling. A ceiling <= 0 scales against the
// largest value instead.
//
// Rules:
//   - Empty values → return width spaces
//   - All zeros → return all '▁' (floor level)
//   - Values longer than width → use last width values
//   - Fewer values than width → left-pad with spaces
func RenderSparkline(values []float64, width int, ceiling float64, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat(" ", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	if ceiling <= 0 {
		ceiling = slices.Max(values)
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width-len(values)))
	for _, v := range values {
		sb.WriteRune(sparkBlocks[sparkLevel(v, ceiling)])
	}
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// sparkLevel maps v onto [0, 7].
func sparkLevel(v, ceiling float64) int {
	if ceiling <= 0 {
		return 0
	}
	idx := int(v / ceiling * 7)
	return max(0, min(idx, 7))
}
