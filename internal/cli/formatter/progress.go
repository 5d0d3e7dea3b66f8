package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	return renderBar(pct, width) + fmt.Sprintf(" %3.0f%%", clamp(pct)*100)
}

// RenderCountdown renders a focus-timer bar with the remaining time,
// like [████░░░░] 12:30. The bar drains as the countdown runs.
func RenderCountdown(pct float64, width int, display string) string {
	return renderBar(pct, width) + " " + StyleBold.Render(display)
}

func renderBar(pct float64, width int) string {
	pct = clamp(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return "[" + style.Render(bar) + "]"
}

func clamp(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
