package core

// Observation is the normalized feature vector pilots decide from.
// Distances are relative to the bird and scaled by the logical frame.
type Observation struct {
	BirdY float64 // Bird top / viewport height
	VelY  float64 // Vertical speed, clamped to the speed cap and scaled to [-1, 1]

	// Next pipe ahead of the bird, then the one after it.
	Dx1, Dy1 float64 // (pipe x - bird x) / width, (gap center - bird y) / viewport height
	Dx2, Dy2 float64

	// Gap drift per tick, scaled like Dy.
	GapVel1, GapVel2 float64
}
