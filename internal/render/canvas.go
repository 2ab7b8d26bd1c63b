// Package render draws game snapshots onto a Canvas: the shared primitives,
// the single-instance view, the tiled multi-instance compositor and the
// reward overlays.
package render

import (
	"image"
	"image/color"

	"github.com/vovakirdan/flaptiles/internal/core"
)

// Align positions text relative to its anchor point on one axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Anchor selects which point of a text box sits at the draw position.
type Anchor struct {
	H, V Align
}

// Common anchors.
var (
	TopLeft     = Anchor{H: AlignStart, V: AlignStart}
	Centered    = Anchor{H: AlignCenter, V: AlignCenter}
	BottomRight = Anchor{H: AlignEnd, V: AlignEnd}
)

// offset returns how far the box's top-left corner lies from the anchor point.
func (a Anchor) offset(w, h float64) (float64, float64) {
	var dx, dy float64
	switch a.H {
	case AlignCenter:
		dx = -w / 2
	case AlignEnd:
		dx = -w
	}
	switch a.V {
	case AlignCenter:
		dy = -h / 2
	case AlignEnd:
		dy = -h
	}
	return dx, dy
}

// Canvas is a 2D drawing surface with a scoped transform and clip stack.
// Geometry passed to drawing calls is in the current user space; Save and
// Restore bracket every change to the transform or clip.
type Canvas interface {
	// Size returns the surface size in device pixels.
	Size() (w, h int)

	Save()
	Restore()
	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(rad float64)
	// Clip narrows the clip region to r (user space) for the current scope.
	Clip(r core.RectF)

	// Clear fills the whole surface, ignoring transform and clip.
	Clear(c color.Color)
	FillRect(r core.RectF, c color.Color)
	// StrokeRect outlines r with a border of the given width drawn inside it.
	StrokeRect(r core.RectF, width float64, c color.Color)
	// DrawImage draws img at its natural size with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y float64)
	// DrawImageRect stretches img into dst.
	DrawImageRect(img image.Image, dst core.RectF)
	DrawText(s string, x, y float64, c color.Color, a Anchor)

	// TextWidth and LineHeight measure text in user-space units at identity scale.
	TextWidth(s string) float64
	LineHeight() float64
}

// state is one entry of the transform/clip stack. The clip is kept in device space.
type state struct {
	m    core.Affine
	clip core.RectF
}

// stack implements the scoped state shared by Canvas implementations.
type stack struct {
	cur   state
	saved []state
}

func newStack(w, h int) stack {
	return stack{cur: state{
		m:    core.Identity(),
		clip: core.RectF{W: float64(w), H: float64(h)},
	}}
}

func (s *stack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore pops the last saved state. An unbalanced Restore is ignored.
func (s *stack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *stack) Translate(x, y float64) {
	s.cur.m = s.cur.m.Mul(core.Translation(x, y))
}

func (s *stack) Scale(sx, sy float64) {
	s.cur.m = s.cur.m.Mul(core.Scaling(sx, sy))
}

func (s *stack) Rotate(rad float64) {
	s.cur.m = s.cur.m.Mul(core.Rotation(rad))
}

// Clip intersects the current clip with the device bounding box of r.
func (s *stack) Clip(r core.RectF) {
	s.cur.clip = s.cur.clip.Intersect(s.cur.m.TransformRect(r))
}

// Depth returns the number of saved states.
func (s *stack) Depth() int {
	return len(s.saved)
}

// strokeEdges returns the four bands that outline r from the inside.
func strokeEdges(r core.RectF, width float64) []core.RectF {
	if width*2 >= r.W || width*2 >= r.H {
		return []core.RectF{r}
	}
	return []core.RectF{
		{X: r.X, Y: r.Y, W: r.W, H: width},
		{X: r.X, Y: r.Bottom() - width, W: r.W, H: width},
		{X: r.X, Y: r.Y + width, W: width, H: r.H - 2*width},
		{X: r.Right() - width, Y: r.Y + width, W: width, H: r.H - 2*width},
	}
}
