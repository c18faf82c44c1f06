package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a percent in [0, 100] as a bar like
// [████░░░░]  45%. Red below a third, yellow below two thirds, green above.
func RenderProgress(pct float64, width int) string {
	pct = clampPercent(pct)
	return fmt.Sprintf("[%s] %s", RenderCompactBar(pct, width), fmt.Sprintf("%3.0f%%", pct))
}

// RenderCompactBar is the colored bar without brackets or label.
func RenderCompactBar(pct float64, width int) string {
	pct = clampPercent(pct)
	if width < 2 {
		width = 2
	}
	filled := min(int(pct/100*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 33:
		style = StyleRed
	case pct < 66:
		style = StyleYellow
	}
	return style.Render(bar)
}

func clampPercent(pct float64) float64 {
	return min(max(pct, 0), 100)
}
