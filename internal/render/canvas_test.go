package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/vovakirdan/flaptiles/internal/core"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

func TestAnchorOffset(t *testing.T) {
	tests := []struct {
		name   string
		anchor Anchor
		dx, dy float64
	}{
		{"top left", TopLeft, 0, 0},
		{"centered", Centered, -5, -2},
		{"bottom right", BottomRight, -10, -4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := tc.anchor.offset(10, 4)
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("offset() = (%v, %v), expected (%v, %v)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestStackSaveRestore(t *testing.T) {
	s := newStack(100, 100)
	s.Save()
	s.Translate(10, 10)
	s.Clip(core.RectF{W: 20, H: 20})
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, expected 1", s.Depth())
	}
	if want := (core.RectF{X: 10, Y: 10, W: 20, H: 20}); s.cur.clip != want {
		t.Errorf("clip = %+v, expected %+v", s.cur.clip, want)
	}

	s.Restore()
	if s.cur.m != core.Identity() {
		t.Error("Restore() should bring back the identity transform")
	}
	if want := (core.RectF{W: 100, H: 100}); s.cur.clip != want {
		t.Errorf("clip after Restore() = %+v, expected %+v", s.cur.clip, want)
	}

	// Unbalanced restores are ignored.
	s.Restore()
	if s.Depth() != 0 || s.cur.m != core.Identity() {
		t.Error("unbalanced Restore() changed the state")
	}
}

func TestStackClipOnlyNarrows(t *testing.T) {
	s := newStack(50, 50)
	s.Clip(core.RectF{X: 10, Y: 10, W: 100, H: 100})
	if want := (core.RectF{X: 10, Y: 10, W: 40, H: 40}); s.cur.clip != want {
		t.Errorf("clip = %+v, expected %+v", s.cur.clip, want)
	}
}

func TestStrokeEdges(t *testing.T) {
	edges := strokeEdges(core.RectF{W: 10, H: 8}, 1)
	if len(edges) != 4 {
		t.Fatalf("strokeEdges() returned %d bands, expected 4", len(edges))
	}
	area := 0.0
	for _, e := range edges {
		area += e.W * e.H
	}
	if area != 10*8-8*6 {
		t.Errorf("stroke area = %v, expected %v", area, 10*8-8*6)
	}

	if got := strokeEdges(core.RectF{W: 3, H: 3}, 2); len(got) != 1 {
		t.Error("a stroke wider than half the rect should fill it")
	}
}

func TestRasterClear(t *testing.T) {
	r := NewRaster(4, 3)
	r.Save()
	r.Clip(core.RectF{W: 1, H: 1})
	r.Clear(red)
	r.Restore()

	if got := r.Image().RGBAAt(3, 2); got != red {
		t.Errorf("Clear() should ignore the clip, pixel = %v", got)
	}
}

func TestRasterFillRectRespectsClip(t *testing.T) {
	r := NewRaster(20, 20)
	r.Clear(black)

	r.Save()
	r.Translate(5, 5)
	r.Clip(core.RectF{W: 5, H: 5})
	r.FillRect(core.RectF{X: -100, Y: -100, W: 300, H: 300}, red)
	r.Restore()

	img := r.Image()
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inside := x >= 5 && x < 10 && y >= 5 && y < 10
			got := img.RGBAAt(x, y)
			if inside && got != red {
				t.Fatalf("pixel (%d, %d) = %v, expected red inside the clip", x, y, got)
			}
			if !inside && got != black {
				t.Fatalf("pixel (%d, %d) = %v, leaked outside the clip", x, y, got)
			}
		}
	}
}

func TestRasterFractionalClipSnapsInward(t *testing.T) {
	r := NewRaster(10, 10)
	r.Clear(black)
	r.Save()
	r.Clip(core.RectF{X: 0.5, Y: 0, W: 3, H: 10})
	r.FillRect(core.RectF{W: 10, H: 10}, red)
	r.Restore()

	img := r.Image()
	if img.RGBAAt(0, 0) != black || img.RGBAAt(3, 0) != black {
		t.Error("partially covered clip pixels should stay untouched")
	}
	if img.RGBAAt(1, 0) != red || img.RGBAAt(2, 0) != red {
		t.Error("fully covered clip pixels should be filled")
	}
}

func TestRasterScaledFill(t *testing.T) {
	r := NewRaster(10, 10)
	r.Clear(black)
	r.Save()
	r.Scale(2, 2)
	r.FillRect(core.RectF{X: 1, Y: 1, W: 2, H: 2}, green)
	r.Restore()

	img := r.Image()
	if img.RGBAAt(2, 2) != green || img.RGBAAt(5, 5) != green {
		t.Error("scaled fill should cover device pixels 2..5")
	}
	if img.RGBAAt(1, 1) != black || img.RGBAAt(6, 6) != black {
		t.Error("scaled fill should not cover pixels outside 2..5")
	}
}

func TestRasterDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 12))
	for y := 10; y < 12; y++ {
		for x := 10; x < 12; x++ {
			src.SetRGBA(x, y, red)
		}
	}

	r := NewRaster(8, 8)
	r.Clear(black)
	r.DrawImage(src, 3, 4)

	img := r.Image()
	if img.RGBAAt(3, 4) != red || img.RGBAAt(4, 5) != red {
		t.Error("image should be drawn with its bounds origin at (3, 4)")
	}
	if img.RGBAAt(5, 4) != black || img.RGBAAt(2, 4) != black {
		t.Error("image should not extend past its own size")
	}
}

func TestRasterRotation(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 1))
	for x := 0; x < 4; x++ {
		src.SetRGBA(x, 0, red)
	}

	r := NewRaster(10, 10)
	r.Clear(black)
	r.Save()
	r.Translate(5, 5)
	r.Rotate(math.Pi / 2)
	r.DrawImage(src, 0, -1)
	r.Restore()

	// A horizontal bar turned a quarter clockwise hangs down from the pivot.
	img := r.Image()
	if img.RGBAAt(5, 7) != red {
		t.Error("rotated bar should cover (5, 7)")
	}
	if img.RGBAAt(7, 5) != black {
		t.Error("rotated bar should no longer cover (7, 5)")
	}
}

func TestRasterDrawText(t *testing.T) {
	r := NewRaster(120, 40)
	r.Clear(black)
	r.DrawText("reward", 60, 20, red, Centered)

	if r.TextWidth("reward") <= 0 || r.LineHeight() <= 0 {
		t.Fatal("text metrics should be positive")
	}

	img := r.Image()
	painted := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 120; x++ {
			if img.RGBAAt(x, y) != black {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("DrawText() painted nothing")
	}
}

func TestRasterResize(t *testing.T) {
	r := NewRaster(10, 10)
	r.Save()
	r.Resize(30, 20)
	if w, h := r.Size(); w != 30 || h != 20 {
		t.Errorf("Size() = %dx%d, expected 30x20", w, h)
	}
	if r.Depth() != 0 {
		t.Error("Resize() should reset the transform stack")
	}
}
