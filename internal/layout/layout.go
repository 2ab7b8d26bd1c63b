// Package layout maps an instance count onto a grid of tiles over the output
// surface. It is a pure function of its inputs; callers cache the result.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/flaptiles/internal/core"
)

// MaxInstances is the largest instance count with its own grid shape.
const MaxInstances = 16

var (
	// ErrNoInstances is returned by Validate for counts below one.
	ErrNoInstances = errors.New("layout: at least one instance is required")

	// ErrTooManyInstances is returned by Validate for counts above MaxInstances.
	ErrTooManyInstances = errors.New("layout: too many instances")
)

// Layout is the grid shape and per-tile geometry for one instance count.
type Layout struct {
	Cols, Rows   int     // Grid shape
	TileW, TileH int     // Tile size in surface pixels
	Scale        float64 // Uniform logical-to-surface scale
}

// Grid returns the grid shape for an instance count.
// Counts above MaxInstances share the 4x4 grid; counts below one get 1x1.
func Grid(instances int) (cols, rows int) {
	switch {
	case instances <= 1:
		return 1, 1
	case instances <= 4:
		return 2, 2
	default:
		return 4, 4
	}
}

// Compute returns the layout for the given instance count and surface size.
// Tiles are whole pixels; the remainder of a non-divisible surface is left
// unused. The scale fits the logical frame inside a tile on both axes.
func Compute(instances, surfaceW, surfaceH int) Layout {
	cols, rows := Grid(instances)
	l := Layout{
		Cols:  cols,
		Rows:  rows,
		TileW: core.Max(surfaceW, 0) / cols,
		TileH: core.Max(surfaceH, 0) / rows,
	}
	l.Scale = math.Min(
		float64(l.TileW)/float64(core.LogicalW),
		float64(l.TileH)/float64(core.LogicalH),
	)
	return l
}

// Validate reports whether an instance count is supported by a grid of its own.
func Validate(instances int) error {
	if instances < 1 {
		return ErrNoInstances
	}
	if instances > MaxInstances {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyInstances, instances, MaxInstances)
	}
	return nil
}

// Capacity returns the number of tiles in the grid.
func (l Layout) Capacity() int {
	return l.Cols * l.Rows
}

// Origin returns the surface position of tile i's top-left corner.
func (l Layout) Origin(i int) (x, y int) {
	if l.Cols == 0 {
		return 0, 0
	}
	return (i % l.Cols) * l.TileW, (i / l.Cols) * l.TileH
}

// TileRect returns tile i's full rectangle on the surface.
func (l Layout) TileRect(i int) core.Rect {
	x, y := l.Origin(i)
	return core.NewRect(x, y, l.TileW, l.TileH)
}

// FrameRect returns the scaled logical frame inside tile i, anchored at the tile origin.
func (l Layout) FrameRect(i int) core.RectF {
	x, y := l.Origin(i)
	return core.RectF{
		X: float64(x),
		Y: float64(y),
		W: core.LogicalW * l.Scale,
		H: core.LogicalH * l.Scale,
	}
}
