package layout

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flaptiles/internal/core"
)

func TestGridShapes(t *testing.T) {
	tests := []struct {
		name       string
		instances  []int
		cols, rows int
	}{
		{"single", []int{1}, 1, 1},
		{"two by two", []int{2, 3, 4}, 2, 2},
		{"four by four", []int{5, 6, 9, 12, 16}, 4, 4},
		{"clamped above max", []int{17, 64}, 4, 4},
		{"non-positive treated as one", []int{0, -3}, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range tc.instances {
				l := Compute(n, 1024, 768)
				if l.Cols != tc.cols || l.Rows != tc.rows {
					t.Errorf("Compute(%d) grid = %dx%d, expected %dx%d", n, l.Cols, l.Rows, tc.cols, tc.rows)
				}
			}
		})
	}
}

func TestTileSizeFloors(t *testing.T) {
	l := Compute(4, 1001, 767)
	if l.TileW != 500 || l.TileH != 383 {
		t.Errorf("tile = %dx%d, expected 500x383", l.TileW, l.TileH)
	}
}

func TestScaleUsesShorterAxis(t *testing.T) {
	// 576x512 fits two logical widths but only one height.
	l := Compute(1, 576, 512)
	if l.Scale != 1 {
		t.Errorf("Scale = %f, expected 1", l.Scale)
	}

	l = Compute(1, 144, 1024)
	if l.Scale != 0.5 {
		t.Errorf("Scale = %f, expected 0.5", l.Scale)
	}
}

func TestScaleNeverOverflowsTile(t *testing.T) {
	const eps = 1e-9
	for _, n := range []int{1, 2, 3, 4, 5, 8, 16} {
		for w := 1; w <= 2000; w += 37 {
			for h := 1; h <= 1500; h += 41 {
				l := Compute(n, w, h)
				for i := 0; i < l.Capacity(); i++ {
					frame := l.FrameRect(i)
					tile := l.TileRect(i).F()
					if !tile.ContainsRect(frame, eps) {
						t.Fatalf("n=%d surface=%dx%d tile %d: frame %+v overflows tile %+v", n, w, h, i, frame, tile)
					}
				}
				if float64(core.LogicalW)*l.Scale > float64(l.TileW)+eps ||
					float64(core.LogicalH)*l.Scale > float64(l.TileH)+eps {
					t.Fatalf("n=%d surface=%dx%d: scale %f overflows tile %dx%d", n, w, h, l.Scale, l.TileW, l.TileH)
				}
			}
		}
	}
}

func TestOriginRowMajor(t *testing.T) {
	l := Compute(16, 800, 600)
	tests := []struct {
		index int
		x, y  int
	}{
		{0, 0, 0},
		{3, 600, 0},
		{4, 0, 150},
		{15, 600, 450},
	}
	for _, tc := range tests {
		x, y := l.Origin(tc.index)
		if x != tc.x || y != tc.y {
			t.Errorf("Origin(%d) = (%d, %d), expected (%d, %d)", tc.index, x, y, tc.x, tc.y)
		}
	}
}

func TestTilesAreDisjoint(t *testing.T) {
	l := Compute(16, 1024, 768)
	for i := 0; i < l.Capacity(); i++ {
		for j := i + 1; j < l.Capacity(); j++ {
			if l.TileRect(i).Intersects(l.TileRect(j)) {
				t.Errorf("tiles %d and %d overlap", i, j)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(16); err != nil {
		t.Errorf("Validate(16) = %v, expected nil", err)
	}
	if err := Validate(0); !errors.Is(err, ErrNoInstances) {
		t.Errorf("Validate(0) = %v, expected ErrNoInstances", err)
	}
	if err := Validate(17); !errors.Is(err, ErrTooManyInstances) {
		t.Errorf("Validate(17) = %v, expected ErrTooManyInstances", err)
	}
}
