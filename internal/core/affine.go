package core

import "math"

// Affine is a 2D affine transform in row-major form:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// The zero value is not the identity; use Identity.
type Affine struct {
	XX, XY, X0 float64
	YX, YY, Y0 float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{XX: 1, YY: 1}
}

// Translation returns a transform that moves points by (tx, ty).
func Translation(tx, ty float64) Affine {
	return Affine{XX: 1, X0: tx, YY: 1, Y0: ty}
}

// Scaling returns a transform that scales about the origin.
func Scaling(sx, sy float64) Affine {
	return Affine{XX: sx, YY: sy}
}

// Rotation returns a transform rotating by rad about the origin.
// With y pointing down, positive angles turn clockwise on screen.
func Rotation(rad float64) Affine {
	s, c := math.Sincos(rad)
	return Affine{XX: c, XY: -s, YX: s, YY: c}
}

// Mul returns m∘n: the transform that applies n first, then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		XX: m.XX*n.XX + m.XY*n.YX,
		XY: m.XX*n.XY + m.XY*n.YY,
		X0: m.XX*n.X0 + m.XY*n.Y0 + m.X0,
		YX: m.YX*n.XX + m.YY*n.YX,
		YY: m.YX*n.XY + m.YY*n.YY,
		Y0: m.YX*n.X0 + m.YY*n.Y0 + m.Y0,
	}
}

// Apply transforms the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.XX*x + m.XY*y + m.X0, m.YX*x + m.YY*y + m.Y0
}

// Invert returns the inverse transform and false if m is singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.XX*m.YY - m.XY*m.YX
	if math.Abs(det) < 1e-12 {
		return Affine{}, false
	}
	inv := Affine{
		XX: m.YY / det,
		XY: -m.XY / det,
		YX: -m.YX / det,
		YY: m.XX / det,
	}
	inv.X0 = -(inv.XX*m.X0 + inv.XY*m.Y0)
	inv.Y0 = -(inv.YX*m.X0 + inv.YY*m.Y0)
	return inv, true
}

// AxisAligned reports whether m maps axis-aligned rectangles to axis-aligned rectangles.
func (m Affine) AxisAligned() bool {
	return m.XY == 0 && m.YX == 0
}

// TransformRect returns the axis-aligned bounding box of r after transformation.
func (m Affine) TransformRect(r RectF) RectF {
	xs := [4]float64{}
	ys := [4]float64{}
	xs[0], ys[0] = m.Apply(r.X, r.Y)
	xs[1], ys[1] = m.Apply(r.Right(), r.Y)
	xs[2], ys[2] = m.Apply(r.X, r.Bottom())
	xs[3], ys[3] = m.Apply(r.Right(), r.Bottom())

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < 4; i++ {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}
	return RectF{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
