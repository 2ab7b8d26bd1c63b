package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flaptiles/internal/config"
	"github.com/vovakirdan/flaptiles/internal/core"
)

// Pipe sprite dimensions.
const (
	PipeWidth  = 52
	PipeHeight = 320
)

// Pipe is one upper/lower pair sharing a gap.
type Pipe struct {
	X         float64 // Left edge
	GapCenter float64 // Vertical center of the opening
	GapVel    float64 // Drift per tick when gaps move
	prev      float64 // Gap center before the latest update
	timeLeft  int     // Ticks until the drift picks a new velocity
}

// Delta returns how far the gap center moved during the latest update.
func (p Pipe) Delta() float64 {
	return p.GapCenter - p.prev
}

// TopRect returns the collision rectangle of the upper pipe.
func (p Pipe) TopRect() core.RectF {
	top := p.GapCenter - core.PipeGap/2
	return core.RectF{X: p.X, Y: top - PipeHeight, W: PipeWidth, H: PipeHeight}
}

// BottomRect returns the collision rectangle of the lower pipe.
func (p Pipe) BottomRect() core.RectF {
	return core.RectF{X: p.X, Y: p.GapCenter + core.PipeGap/2, W: PipeWidth, H: PipeHeight}
}

// PipeManager handles spawning, movement, gap drift and removal of pipes.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	cfg        config.FlappyPipes
	difficulty *config.DifficultyManager
	baseSpeed  float64
	tickRate   int
	screenW    float64
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64, tickRate int, baseSpeed float64, cfg config.FlappyPipes, diff *config.DifficultyManager) *PipeManager {
	pm := &PipeManager{
		pipes:      make([]Pipe, 0, 8),
		cfg:        cfg,
		difficulty: diff,
		baseSpeed:  baseSpeed,
		tickRate:   tickRate,
		screenW:    core.LogicalW,
	}
	pm.Reset(seed)
	return pm
}

// UpdateConfig updates the configuration.
func (pm *PipeManager) UpdateConfig(baseSpeed float64, cfg config.FlappyPipes, diff *config.DifficultyManager) {
	pm.baseSpeed = baseSpeed
	pm.cfg = cfg
	pm.difficulty = diff
}

// Reset clears all pipes, reseeds the RNG and places the two opening pairs.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
	pm.spawnAt(pm.screenW + PipeWidth*3)
	pm.spawnAt(pm.screenW + PipeWidth*3 + PipeWidth*3.5)
}

// Update advances the pipes by one tick: spawn, cull, drift, then move left.
func (pm *PipeManager) Update(score, ticks int) {
	speed := pm.Speed(score, ticks)
	spacing := pm.difficulty.Spacing(pm.cfg.Spacing, score, ticks)

	// Spawn once the free space behind the last pair exceeds the spacing
	if n := len(pm.pipes); n == 0 || pm.screenW-(pm.pipes[n-1].X+PipeWidth) > PipeWidth*spacing {
		pm.spawnAt(pm.screenW + 10)
	}

	// Remove pipes that have left the screen
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X >= -PipeWidth {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept

	for i := range pm.pipes {
		pm.pipes[i].prev = pm.pipes[i].GapCenter
	}
	if pm.cfg.MovingGaps {
		for i := range pm.pipes {
			pm.drift(&pm.pipes[i])
		}
	}

	for i := range pm.pipes {
		pm.pipes[i].X -= speed
	}
}

// Speed returns the current horizontal pipe speed.
func (pm *PipeManager) Speed(score, ticks int) float64 {
	return pm.difficulty.Speed(pm.baseSpeed, score, ticks)
}

// Crossed counts pairs whose center the bird center entered this tick.
func (pm *PipeManager) Crossed(birdCX, speed float64) int {
	n := 0
	for _, p := range pm.pipes {
		cx := p.X + PipeWidth/2
		if cx <= birdCX && birdCX < cx+speed {
			n++
		}
	}
	return n
}

// Collides reports whether the rectangle overlaps any pipe.
func (pm *PipeManager) Collides(r core.RectF) bool {
	for _, p := range pm.pipes {
		if overlaps(r, p.TopRect()) || overlaps(r, p.BottomRect()) {
			return true
		}
	}
	return false
}

// Ahead returns the next two pairs whose right edge has not passed x.
// When none remain ahead, the last two pairs are used.
func (pm *PipeManager) Ahead(x float64) (first, second Pipe, ok bool) {
	n := len(pm.pipes)
	if n == 0 {
		return Pipe{}, Pipe{}, false
	}
	i := -1
	for j, p := range pm.pipes {
		if p.X+PipeWidth >= x {
			i = j
			break
		}
	}
	if i < 0 {
		i = core.Max(0, n-2)
	}
	k := core.Min(i+1, n-1)
	return pm.pipes[i], pm.pipes[k], true
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Pairs returns the pipes in the renderer's snapshot form.
func (pm *PipeManager) Pairs() []core.PipePair {
	out := make([]core.PipePair, len(pm.pipes))
	for i, p := range pm.pipes {
		out[i] = core.PipePair{X: p.X, GapCenter: p.GapCenter}
	}
	return out
}

// spawnAt appends a pair with a random gap at x.
func (pm *PipeManager) spawnAt(x float64) {
	vh := float64(core.ViewportH)
	span := int(vh*pm.cfg.GapTopRange - core.PipeGap)
	top := int(vh * pm.cfg.GapTopMin)
	if span > 0 {
		top += pm.rng.Intn(span)
	}
	center := float64(top) + core.PipeGap/2
	p := Pipe{X: x, GapCenter: center, prev: center}
	if pm.cfg.MovingGaps {
		pm.newSegment(&p)
	}
	pm.pipes = append(pm.pipes, p)
}

// drift moves the gap center by its current velocity, bouncing at the bounds
// and drawing a new velocity when the segment runs out.
func (pm *PipeManager) drift(p *Pipe) {
	if p.timeLeft <= 0 || math.Abs(p.GapVel) < 1e-6 {
		pm.newSegment(p)
	}

	lo := core.PipeGap/2 + 5.0
	hi := core.ViewportH - core.PipeGap/2 - 5.0
	c := p.GapCenter + p.GapVel
	switch {
	case c < lo:
		c = lo
		pm.newSegment(p)
		p.GapVel = math.Abs(p.GapVel)
	case c > hi:
		c = hi
		pm.newSegment(p)
		p.GapVel = -math.Abs(p.GapVel)
	}
	p.GapCenter = c
	p.timeLeft--
}

// newSegment picks a random drift velocity and a duration around the configured frequency.
func (pm *PipeManager) newSegment(p *Pipe) {
	fps := float64(core.Max(1, pm.tickRate))
	peak := 2 * math.Pi * pm.cfg.GapAmpPx * pm.cfg.GapFreqHz / fps
	maxSpeed := math.Max(0.3, peak)
	minSpeed := 0.5 * maxSpeed

	speed := minSpeed + pm.rng.Float64()*(maxSpeed-minSpeed)
	if pm.rng.Intn(2) == 0 {
		speed = -speed
	}
	p.GapVel = speed

	mean := 1 / math.Max(0.1, pm.cfg.GapFreqHz)
	minSec := math.Max(0.2, 0.3*mean)
	maxSec := math.Min(2.0, 1.7*mean)
	minF := core.Max(1, int(minSec*fps))
	maxF := core.Max(minF, int(maxSec*fps))
	p.timeLeft = minF + pm.rng.Intn(maxF-minF+1)
}

func overlaps(a, b core.RectF) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
