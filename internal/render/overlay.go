package render

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/flaptiles/internal/core"
)

// overlayMargin is the distance in device pixels between the reward text and
// the anchor's right and bottom edges.
const overlayMargin = 6

// outlineOffsets place the dark copies beneath a line of text:
// cardinal directions at 2 px, diagonals at 1 px.
var outlineOffsets = [8][2]float64{
	{-2, 0}, {2, 0}, {0, -2}, {0, 2},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Reward is the instrumentation shown in a tile's corner.
type Reward struct {
	Instant       float64
	Cumulative    float64
	HasCumulative bool
}

// FormatInstant renders an instant reward with sign and three decimals.
func FormatInstant(v float64) string {
	return fmt.Sprintf("%+.3f", positiveZero(v))
}

// FormatCumulative renders a cumulative reward with sign and two decimals.
func FormatCumulative(v float64) string {
	return fmt.Sprintf("Σ %+.2f", positiveZero(v))
}

// positiveZero maps negative zero to zero so it prints with a plus sign.
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// InstantColor returns the color bucket for an instant reward.
func InstantColor(v float64) color.RGBA {
	switch {
	case v > 0.5:
		return core.ColorRewardBigPositive
	case v > 0:
		return core.ColorRewardSmallPositive
	case v > -0.1:
		return core.ColorRewardSmallNegative
	case v > -0.5:
		return core.ColorRewardMedNegative
	default:
		return core.ColorRewardBigNegative
	}
}

// CumulativeColor returns the color for a cumulative reward.
func CumulativeColor(v float64) color.RGBA {
	if v >= 0 {
		return core.ColorCumulativePositive
	}
	return core.ColorCumulativeNegative
}

// drawRewardOverlay stacks the reward lines in the bottom-right corner of
// area, in device space. The caller owns the clip.
func drawRewardOverlay(c Canvas, area core.RectF, r Reward) {
	type line struct {
		text string
		col  color.Color
	}
	lines := []line{
		{"reward", core.ColorLabel},
		{FormatInstant(r.Instant), InstantColor(r.Instant)},
	}
	if r.HasCumulative {
		lines = append(lines, line{FormatCumulative(r.Cumulative), CumulativeColor(r.Cumulative)})
	}

	x := area.Right() - overlayMargin
	y := area.Bottom() - overlayMargin
	lh := c.LineHeight()
	for i := len(lines) - 1; i >= 0; i-- {
		drawOutlined(c, lines[i].text, x, y, lines[i].col, BottomRight)
		y -= lh
	}
}

// drawOutlined draws s over eight dark copies of itself.
func drawOutlined(c Canvas, s string, x, y float64, col color.Color, a Anchor) {
	for _, o := range outlineOffsets {
		c.DrawText(s, x+o[0], y+o[1], core.ColorOutline, a)
	}
	c.DrawText(s, x, y, col, a)
}
