package render

import (
	"math"
	"testing"

	"github.com/vovakirdan/flaptiles/internal/assets"
	"github.com/vovakirdan/flaptiles/internal/core"
)

func TestDrawScoreSingleDigit(t *testing.T) {
	set := loadProcedural(t)
	rec := newRecorder(core.LogicalW, core.LogicalH)
	drawScore(rec, set, 0, 1)

	glyphs := rec.filter("image")
	if len(glyphs) != 1 {
		t.Fatalf("drew %d glyphs for score 0, expected 1", len(glyphs))
	}
	g := glyphs[0]
	if g.img != set.Digits[0] {
		t.Error("score 0 should use the 0 glyph")
	}
	if center := g.logical.X + g.logical.W/2; math.Abs(center-core.LogicalW/2) > 1e-9 {
		t.Errorf("glyph center = %v, expected %v", center, core.LogicalW/2)
	}
	if g.logical.Y != core.LogicalH*scoreTop {
		t.Errorf("glyph top = %v, expected %v", g.logical.Y, core.LogicalH*scoreTop)
	}
}

func TestDrawScoreMultipleDigits(t *testing.T) {
	set := loadProcedural(t)
	rec := newRecorder(core.LogicalW, core.LogicalH)
	drawScore(rec, set, 123, 1)

	glyphs := rec.filter("image")
	if len(glyphs) != 3 {
		t.Fatalf("drew %d glyphs for score 123, expected 3", len(glyphs))
	}
	for i, d := range []int{1, 2, 3} {
		if glyphs[i].img != set.Digits[d] {
			t.Errorf("glyph %d should be digit %d", i, d)
		}
		if i > 0 && glyphs[i].logical.X <= glyphs[i-1].logical.X {
			t.Errorf("glyph %d is not to the right of glyph %d", i, i-1)
		}
	}
	left := glyphs[0].logical.X
	right := glyphs[2].logical.Right()
	if center := (left + right) / 2; math.Abs(center-core.LogicalW/2) > 1e-9 {
		t.Errorf("score block center = %v, expected %v", center, core.LogicalW/2)
	}
}

func TestDrawScoreNegative(t *testing.T) {
	set := loadProcedural(t)

	tests := []struct {
		score    int
		expected []int
	}{
		{-1, []int{1}},
		{-120, []int{1, 2, 0}},
	}

	for _, tc := range tests {
		rec := newRecorder(core.LogicalW, core.LogicalH)
		drawScore(rec, set, tc.score, 1)

		glyphs := rec.filter("image")
		if len(glyphs) != len(tc.expected) {
			t.Fatalf("drew %d glyphs for score %d, expected %d", len(glyphs), tc.score, len(tc.expected))
		}
		for i, d := range tc.expected {
			if glyphs[i].img != set.Digits[d] {
				t.Errorf("score %d: glyph %d should be digit %d", tc.score, i, d)
			}
		}
		left := glyphs[0].logical.X
		right := glyphs[len(glyphs)-1].logical.Right()
		if center := (left + right) / 2; math.Abs(center-core.LogicalW/2) > 1e-9 {
			t.Errorf("score %d: block center = %v, expected %v", tc.score, center, core.LogicalW/2)
		}
	}
}

func TestDrawScoreScale(t *testing.T) {
	set := loadProcedural(t)
	rec := newRecorder(core.LogicalW, core.LogicalH)
	drawScore(rec, set, 7, 0.5)

	g := rec.filter("image")[0]
	if g.logical.W != 12 || g.logical.H != 18 {
		t.Errorf("scaled glyph = %vx%v, expected 12x18", g.logical.W, g.logical.H)
	}
}

func TestDrawPipes(t *testing.T) {
	set := loadProcedural(t)
	rec := newRecorder(core.LogicalW, core.LogicalH)
	drawPipes(rec, set, []core.PipePair{{X: 100, GapCenter: 200}})

	ops := rec.filter("image")
	if len(ops) != 2 {
		t.Fatalf("drew %d images, expected an upper and a lower pipe", len(ops))
	}
	upper, lower := ops[0], ops[1]
	if upper.img != set.PipeUpper || lower.img != set.PipeLower {
		t.Fatal("pipes drawn in the wrong order or orientation")
	}
	if upper.logical.Bottom() != 140 {
		t.Errorf("upper pipe bottom = %v, expected the gap top 140", upper.logical.Bottom())
	}
	if lower.logical.Y != 260 {
		t.Errorf("lower pipe top = %v, expected the gap bottom 260", lower.logical.Y)
	}
	if upper.logical.X != 100 || lower.logical.X != 100 {
		t.Error("both pipes should share the pair's x")
	}
}

func TestDrawFloorWraps(t *testing.T) {
	set := loadProcedural(t)
	rec := newRecorder(core.LogicalW, core.LogicalH)
	drawFloor(rec, set, -30)

	ops := rec.filter("image")
	if len(ops) != 2 {
		t.Fatalf("drew the floor %d times, expected 2", len(ops))
	}
	w := float64(set.Floor.Bounds().Dx())
	if ops[0].logical.X != -30 || ops[1].logical.X != -30+w {
		t.Errorf("floor copies at %v and %v", ops[0].logical.X, ops[1].logical.X)
	}
	if ops[0].logical.Y != core.ViewportH {
		t.Errorf("floor top = %v, expected %v", ops[0].logical.Y, core.ViewportH)
	}
}

func TestDrawBirdRotatesAboutCenter(t *testing.T) {
	set := loadProcedural(t)
	rec := newRecorder(core.LogicalW, core.LogicalH)
	drawBird(rec, set, assets.BirdDown, 100, 90)

	ops := rec.filter("image")
	if len(ops) != 1 || ops[0].img != set.Bird[assets.BirdDown] {
		t.Fatal("expected one downflap sprite")
	}
	// 34x24 turned a quarter keeps its center and swaps its extent.
	d := ops[0].device
	cx, cy := d.X+d.W/2, d.Y+d.H/2
	if math.Abs(cx-(core.BirdX+17)) > 1e-6 || math.Abs(cy-112) > 1e-6 {
		t.Errorf("rotated center = (%v, %v), expected (%v, 112)", cx, cy, core.BirdX+17)
	}
	if math.Abs(d.W-24) > 1e-6 || math.Abs(d.H-34) > 1e-6 {
		t.Errorf("rotated extent = %vx%v, expected 24x34", d.W, d.H)
	}
	if rec.Depth() != 0 {
		t.Error("drawBird should restore the canvas state")
	}
}

func TestDrawSceneGameOver(t *testing.T) {
	set := loadProcedural(t)

	rec := newRecorder(core.LogicalW, core.LogicalH)
	snap := sampleSnapshot(5)
	drawScene(rec, set, snap, assets.BirdMid, 1)
	for _, o := range rec.filter("image") {
		if o.img == set.GameOver {
			t.Fatal("game-over banner drawn for a live game")
		}
	}

	rec.reset()
	snap.GameOver = true
	drawScene(rec, set, snap, assets.BirdMid, 1)
	found := false
	for _, o := range rec.filter("image") {
		if o.img == set.GameOver {
			found = true
			if center := o.logical.X + o.logical.W/2; center != core.LogicalW/2 {
				t.Errorf("banner center = %v, expected %v", center, core.LogicalW/2)
			}
		}
	}
	if !found {
		t.Error("game-over banner not drawn")
	}
	dims := 0
	for _, o := range rec.filter("fill") {
		if o.col == core.ColorDim {
			dims++
		}
	}
	if dims != 1 {
		t.Errorf("dim overlay drawn %d times, expected 1", dims)
	}
}

func TestPrimitivesSkipMissingAssets(t *testing.T) {
	rec := newRecorder(core.LogicalW, core.LogicalH)
	snap := sampleSnapshot(42)
	snap.GameOver = true
	drawScene(rec, &assets.Set{}, snap, assets.BirdUp, 1)

	if n := len(rec.filter("image")); n != 0 {
		t.Errorf("drew %d images from an empty set", n)
	}
}
