package render

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/vovakirdan/flaptiles/internal/assets"
	"github.com/vovakirdan/flaptiles/internal/core"
)

// Vertical placement of the banners and the score, as fractions of the logical height.
const (
	scoreTop    = 0.1
	gameOverTop = 0.2
	welcomeTop  = 0.12
)

// logicalFrame is the full logical frame every primitive draws into.
var logicalFrame = core.RectF{W: core.LogicalW, H: core.LogicalH}

// The primitives below draw in logical space: the caller has already set up
// translation, scale and clip. A missing asset skips the element.

func drawBackground(c Canvas, set *assets.Set) {
	if set.Background != nil {
		c.DrawImage(set.Background, 0, 0)
	}
}

// drawPipes draws every pipe pair around its gap; pipes may extend off-frame.
func drawPipes(c Canvas, set *assets.Set, pipes []core.PipePair) {
	for _, p := range pipes {
		gapTop := p.GapCenter - core.PipeGap/2
		gapBottom := p.GapCenter + core.PipeGap/2
		if set.PipeUpper != nil {
			c.DrawImage(set.PipeUpper, p.X, gapTop-float64(set.PipeUpper.Bounds().Dy()))
		}
		if set.PipeLower != nil {
			c.DrawImage(set.PipeLower, p.X, gapBottom)
		}
	}
}

// drawFloor draws the floor twice so the scroll wraps without a seam.
func drawFloor(c Canvas, set *assets.Set, floorX float64) {
	if set.Floor == nil {
		return
	}
	w := float64(set.Floor.Bounds().Dx())
	c.DrawImage(set.Floor, floorX, core.ViewportH)
	c.DrawImage(set.Floor, floorX+w, core.ViewportH)
}

// drawBird draws the given bird frame rotated about its center.
func drawBird(c Canvas, set *assets.Set, sprite int, y, rotation float64) {
	img := set.Bird[sprite]
	if img == nil {
		return
	}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	c.Save()
	c.Translate(core.BirdX+w/2, y+h/2)
	c.Rotate(rotation * math.Pi / 180)
	c.DrawImage(img, -w/2, -h/2)
	c.Restore()
}

// drawScore lays the digits of score out left to right, centered horizontally.
// scale resizes the glyphs independently of the tile scale. There is no minus
// glyph, so a negative score shows its digits only.
func drawScore(c Canvas, set *assets.Set, score int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	digits := strconv.Itoa(score)
	glyphs := make([]image.Image, 0, len(digits))
	total := 0.0
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			continue
		}
		g := set.Digits[ch-'0']
		if g == nil {
			return
		}
		glyphs = append(glyphs, g)
		total += float64(g.Bounds().Dx()) * scale
	}

	x := (core.LogicalW - total) / 2
	y := core.LogicalH * scoreTop
	for _, g := range glyphs {
		w := float64(g.Bounds().Dx()) * scale
		h := float64(g.Bounds().Dy()) * scale
		c.DrawImageRect(g, core.RectF{X: x, Y: y, W: w, H: h})
		x += w
	}
}

// drawGameOver dims the frame and centers the game-over banner.
func drawGameOver(c Canvas, set *assets.Set) {
	c.FillRect(logicalFrame, core.ColorDim)
	drawBanner(c, set.GameOver, gameOverTop)
}

// drawWelcome centers the start message.
func drawWelcome(c Canvas, set *assets.Set) {
	drawBanner(c, set.Message, welcomeTop)
}

func drawBanner(c Canvas, img image.Image, top float64) {
	if img == nil {
		return
	}
	x := (core.LogicalW - float64(img.Bounds().Dx())) / 2
	c.DrawImage(img, x, core.LogicalH*top)
}

// drawScene draws one full game frame.
func drawScene(c Canvas, set *assets.Set, snap core.Snapshot, sprite int, scoreScale float64) {
	drawBackground(c, set)
	drawPipes(c, set, snap.Pipes)
	drawFloor(c, set, snap.FloorX)
	drawBird(c, set, sprite, snap.BirdY, snap.Rotation)
	drawScore(c, set, snap.Score, scoreScale)
	if snap.GameOver {
		drawGameOver(c, set)
	}
}

// drawScreenText draws text at a constant on-screen size from inside a
// scaled scope.
func drawScreenText(c Canvas, s string, x, y, scale float64, col color.Color, a Anchor) {
	c.Save()
	c.Translate(x, y)
	c.Scale(1/scale, 1/scale)
	drawOutlined(c, s, 0, 0, col, a)
	c.Restore()
}
