package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/flaptiles/internal/core"
)

// clipEps absorbs floating point noise when snapping a clip to whole pixels.
const clipEps = 1e-6

// Raster is a Canvas over an in-memory RGBA image.
// Every draw call maps its source through the current transform with
// nearest-neighbor sampling into the clip region snapped inward to whole pixels,
// so nothing drawn inside a scope can touch a pixel outside its clip.
type Raster struct {
	stack
	img  *image.RGBA
	face font.Face
}

// NewRaster creates a w x h raster canvas.
func NewRaster(w, h int) *Raster {
	r := &Raster{face: newFace(TextSize)}
	r.Resize(w, h)
	return r
}

// Resize replaces the backing image and resets the transform stack.
func (r *Raster) Resize(w, h int) {
	w, h = core.Max(w, 0), core.Max(h, 0)
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.stack = newStack(w, h)
}

// Image returns the backing image. It is overwritten by the next frame.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Size returns the surface size in pixels.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole surface with c.
func (r *Raster) Clear(c color.Color) {
	xdraw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

// FillRect fills r with c.
func (r *Raster) FillRect(rect core.RectF, c color.Color) {
	if rect.Empty() {
		return
	}
	s2d := r.cur.m.
		Mul(core.Translation(rect.X, rect.Y)).
		Mul(core.Scaling(rect.W, rect.H))
	r.blit(image.NewUniform(c), image.Rect(0, 0, 1, 1), s2d)
}

// StrokeRect outlines rect from the inside.
func (r *Raster) StrokeRect(rect core.RectF, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	for _, e := range strokeEdges(rect, width) {
		r.FillRect(e, c)
	}
}

// DrawImage draws img unscaled at (x, y).
func (r *Raster) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	s2d := r.cur.m.Mul(core.Translation(x-float64(b.Min.X), y-float64(b.Min.Y)))
	r.blit(img, b, s2d)
}

// DrawImageRect stretches img into dst.
func (r *Raster) DrawImageRect(img image.Image, dst core.RectF) {
	if img == nil || dst.Empty() {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	s2d := r.cur.m.
		Mul(core.Translation(dst.X, dst.Y)).
		Mul(core.Scaling(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))).
		Mul(core.Translation(-float64(b.Min.X), -float64(b.Min.Y)))
	r.blit(img, b, s2d)
}

// DrawText renders s with its anchor point at (x, y).
func (r *Raster) DrawText(s string, x, y float64, c color.Color, a Anchor) {
	if s == "" {
		return
	}
	m := r.face.Metrics()
	w := font.MeasureString(r.face, s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(s)

	dx, dy := a.offset(float64(w), float64(h))
	r.blit(glyphs, glyphs.Bounds(), r.cur.m.Mul(core.Translation(x+dx, y+dy)))
}

// TextWidth returns the advance width of s.
func (r *Raster) TextWidth(s string) float64 {
	return fixedToFloat(font.MeasureString(r.face, s))
}

// LineHeight returns the recommended distance between baselines.
func (r *Raster) LineHeight() float64 {
	return fixedToFloat(r.face.Metrics().Height)
}

// target returns the destination sub-image for the current clip.
func (r *Raster) target() (*image.RGBA, bool) {
	c := r.cur.clip
	rect := image.Rect(
		int(math.Ceil(c.X-clipEps)),
		int(math.Ceil(c.Y-clipEps)),
		int(math.Floor(c.Right()+clipEps)),
		int(math.Floor(c.Bottom()+clipEps)),
	).Intersect(r.img.Bounds())
	if rect.Empty() {
		return nil, false
	}
	return r.img.SubImage(rect).(*image.RGBA), true
}

// blit composites sr of src through the source-to-device transform s2d.
func (r *Raster) blit(src image.Image, sr image.Rectangle, s2d core.Affine) {
	dst, ok := r.target()
	if !ok {
		return
	}
	if _, ok := s2d.Invert(); !ok {
		return
	}
	aff := f64.Aff3{s2d.XX, s2d.XY, s2d.X0, s2d.YX, s2d.YY, s2d.Y0}
	xdraw.NearestNeighbor.Transform(dst, aff, src, sr, xdraw.Over, nil)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
