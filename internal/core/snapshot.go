package core

// Logical resolution of one game instance. Every draw primitive works in this
// space; tiles scale it to their own pixel size.
const (
	LogicalW = 288
	LogicalH = 512

	// ViewportH is the playable height; the floor band starts here.
	ViewportH = 404

	// BirdX is the fixed horizontal position of the bird's left edge.
	BirdX = 57

	// PipeGap is the vertical opening between an upper and a lower pipe.
	PipeGap = 120
)

// PipePair describes one upper/lower pipe pair.
type PipePair struct {
	X         float64 // Left edge of both pipes
	GapCenter float64 // Vertical center of the opening
}

// Snapshot is one instance's simulation state for a single frame.
// Producers hand out fresh values each tick; the renderer never mutates them.
type Snapshot struct {
	BirdY    float64    // Top of the bird sprite
	Rotation float64    // Degrees, positive turns the nose down
	FloorX   float64    // Horizontal floor scroll offset (<= 0)
	Pipes    []PipePair // Ordered left to right
	Score    int
	GameOver bool
}

// NextPipe returns the first pipe whose right edge is still ahead of x.
func (s Snapshot) NextPipe(x, pipeW float64) (PipePair, bool) {
	for _, p := range s.Pipes {
		if p.X+pipeW >= x {
			return p, true
		}
	}
	return PipePair{}, false
}
