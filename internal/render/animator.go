package render

import (
	"github.com/vovakirdan/flaptiles/internal/assets"
	"github.com/vovakirdan/flaptiles/internal/layout"
)

// birdCycle is the wing-flap sequence indexed by a tile's animation frame.
var birdCycle = [...]int{assets.BirdUp, assets.BirdMid, assets.BirdDown, assets.BirdMid}

// AnimationFrames is the length of the wing-flap cycle.
const AnimationFrames = len(birdCycle)

// DefaultFrameRate is the number of renders per animation frame.
const DefaultFrameRate = 8

// Animator holds per-tile animation frames driven by the render counter.
// It is independent of simulation time: frames advance with rendered frames.
type Animator struct {
	frames    [layout.MaxInstances]int
	counter   int
	frameRate int
}

// NewAnimator returns an animator advancing every frameRate renders.
func NewAnimator(frameRate int) *Animator {
	if frameRate < 1 {
		frameRate = 1
	}
	return &Animator{frameRate: frameRate}
}

// Tick counts one rendered frame.
func (a *Animator) Tick() {
	a.counter++
}

// Advance moves tile i to its next frame on counter multiples of the frame
// rate and returns the tile's frame index.
func (a *Animator) Advance(i int) int {
	if i < 0 || i >= len(a.frames) {
		return 0
	}
	if a.counter%a.frameRate == 0 {
		a.frames[i] = (a.frames[i] + 1) % AnimationFrames
	}
	return a.frames[i]
}

// Frame returns tile i's current frame index without advancing it.
func (a *Animator) Frame(i int) int {
	if i < 0 || i >= len(a.frames) {
		return 0
	}
	return a.frames[i]
}

// Sprite returns the bird sprite index for tile i.
func (a *Animator) Sprite(i int) int {
	return birdCycle[a.Frame(i)]
}

// Counter returns the number of frames rendered since the last reset.
func (a *Animator) Counter() int {
	return a.counter
}

// Reset zeroes every frame and the counter.
func (a *Animator) Reset() {
	a.frames = [layout.MaxInstances]int{}
	a.counter = 0
}
