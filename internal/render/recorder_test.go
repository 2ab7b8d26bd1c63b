package render

import (
	"context"
	"image"
	"image/color"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/flaptiles/internal/assets"
	"github.com/vovakirdan/flaptiles/internal/core"
)

// op is one recorded draw call.
type op struct {
	kind    string // clear, fill, image, text
	logical core.RectF
	device  core.RectF // Bounding box after transformation
	clip    core.RectF
	img     image.Image
	text    string
	col     color.Color
}

// visible returns the part of the op that can reach the surface.
func (o op) visible() core.RectF {
	return o.device.Intersect(o.clip)
}

// recorder is a Canvas that records geometry instead of drawing.
// Text is measured as a 7x13 monospace font.
type recorder struct {
	stack
	w, h int
	ops  []op
}

func newRecorder(w, h int) *recorder {
	return &recorder{stack: newStack(w, h), w: w, h: h}
}

func (r *recorder) record(kind string, rect core.RectF, o op) {
	o.kind = kind
	o.logical = rect
	o.device = r.cur.m.TransformRect(rect)
	o.clip = r.cur.clip
	r.ops = append(r.ops, o)
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Clear(c color.Color) {
	r.ops = append(r.ops, op{kind: "clear", col: c})
}

func (r *recorder) FillRect(rect core.RectF, c color.Color) {
	r.record("fill", rect, op{col: c})
}

func (r *recorder) StrokeRect(rect core.RectF, width float64, c color.Color) {
	for _, e := range strokeEdges(rect, width) {
		r.FillRect(e, c)
	}
}

func (r *recorder) DrawImage(img image.Image, x, y float64) {
	b := img.Bounds()
	r.record("image", core.RectF{X: x, Y: y, W: float64(b.Dx()), H: float64(b.Dy())}, op{img: img})
}

func (r *recorder) DrawImageRect(img image.Image, dst core.RectF) {
	r.record("image", dst, op{img: img})
}

func (r *recorder) DrawText(s string, x, y float64, c color.Color, a Anchor) {
	w, h := r.TextWidth(s), r.LineHeight()
	dx, dy := a.offset(w, h)
	r.record("text", core.RectF{X: x + dx, Y: y + dy, W: w, H: h}, op{text: s, col: c})
}

func (r *recorder) TextWidth(s string) float64 {
	return float64(7 * utf8.RuneCountInString(s))
}

func (r *recorder) LineHeight() float64 { return 13 }

func (r *recorder) reset() { r.ops = r.ops[:0] }

func (r *recorder) filter(kind string) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func loadProcedural(t *testing.T) *assets.Set {
	t.Helper()
	set, err := assets.Load(context.Background(), assets.Procedural{}, "")
	if err != nil {
		t.Fatalf("assets.Load: %v", err)
	}
	return set
}
