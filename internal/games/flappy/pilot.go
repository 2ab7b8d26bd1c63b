package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flaptiles/internal/core"
	"github.com/vovakirdan/flaptiles/internal/registry"
)

// Built-in pilot IDs.
const (
	PilotHeuristic = "heuristic"
	PilotRandom    = "random"
	PilotIdle      = "idle"
)

// heuristicSlack is how far (in pixels) the bird's center may sink below the
// gap center before the heuristic flaps.
const heuristicSlack = 18.0

// randomFlapChance is the per-tick flap probability of the random pilot.
const randomFlapChance = 1.0 / 12

// Heuristic flaps whenever the bird falls below the next gap's center.
type Heuristic struct{}

func (Heuristic) ID() string       { return PilotHeuristic }
func (Heuristic) Title() string    { return "Gap follower" }
func (Heuristic) Reset(seed int64) {}

// Act flaps while the bird is falling and its center is under the gap center plus slack.
func (Heuristic) Act(obs core.Observation) core.Action {
	below := -obs.Dy1*core.ViewportH + BirdH/2
	if obs.VelY >= 0 && below > heuristicSlack {
		return core.ActionActivate
	}
	return core.ActionNone
}

// Random flaps at random with a fixed chance per tick.
type Random struct {
	rng *rand.Rand
}

func (r *Random) ID() string    { return PilotRandom }
func (r *Random) Title() string { return "Coin flipper" }

func (r *Random) Reset(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
}

func (r *Random) Act(core.Observation) core.Action {
	if r.rng == nil {
		r.Reset(0)
	}
	if r.rng.Float64() < randomFlapChance {
		return core.ActionActivate
	}
	return core.ActionNone
}

// Idle never flaps.
type Idle struct{}

func (Idle) ID() string                       { return PilotIdle }
func (Idle) Title() string                    { return "Free fall" }
func (Idle) Reset(int64)                      {}
func (Idle) Act(core.Observation) core.Action { return core.ActionNone }

// Register the pilots with the registry
func init() {
	registry.Register(PilotHeuristic, func() registry.Pilot { return Heuristic{} })
	registry.Register(PilotRandom, func() registry.Pilot { return &Random{} })
	registry.Register(PilotIdle, func() registry.Pilot { return Idle{} })
}
