// Package flappy implements the Flappy Bird simulation behind every tile.
// It works in the 288x512 logical space the renderer draws in and produces
// one core.Snapshot per tick.
package flappy

import (
	"math"

	"github.com/vovakirdan/flaptiles/internal/config"
	"github.com/vovakirdan/flaptiles/internal/core"
)

// Bird sprite dimensions.
const (
	BirdW = 34
	BirdH = 24
)

// Welcome-screen bobbing before the first flap.
const (
	bobVel    = 1.0
	bobAcc    = 0.5
	bobMaxVel = 4.0
)

// floorShift is how far the floor sprite is wider than the frame; the scroll wraps at it.
const floorShift = 336 - core.LogicalW

// Game implements the Flappy Bird game logic.
type Game struct {
	// WaitForFlap keeps the bird bobbing in place until the first flap.
	// Pilot-driven instances start flying immediately.
	WaitForFlap bool

	birdY      float64
	velY       float64
	rot        float64 // Degrees, positive turns the nose up
	flapped    bool
	bobAcc     float64
	floorX     float64
	pipes      *PipeManager
	score      int
	gameOver   bool
	started    bool
	tickCount  int
	prevAbsDy  float64
	hasPrevDy  bool
	flappyCfg  config.FlappyConfig
	difficulty *config.DifficultyManager
}

// New creates a new game with the given simulation settings.
func New(cfg config.FlappyConfig) *Game {
	g := &Game{}
	g.SetConfig(cfg)
	return g
}

// SetConfig replaces the simulation settings; they apply from the next tick.
func (g *Game) SetConfig(cfg config.FlappyConfig) {
	g.flappyCfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if g.pipes != nil {
		g.pipes.UpdateConfig(cfg.Physics.BaseSpeed, cfg.Pipes, g.difficulty)
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.birdY = float64(core.LogicalH-BirdH) / 2
	g.floorX = 0
	g.score = 0
	g.gameOver = false
	g.tickCount = 0
	g.flapped = false
	g.hasPrevDy = false
	g.prevAbsDy = 0

	if g.WaitForFlap {
		g.started = false
		g.velY = bobVel
		g.bobAcc = bobAcc
		g.rot = 0
	} else {
		g.started = true
		g.velY = g.flappyCfg.Physics.FlapImpulse
		g.rot = g.flappyCfg.Physics.FlapRotation
	}

	if g.pipes == nil {
		g.pipes = NewPipeManager(cfg.Seed, cfg.TickRate, g.flappyCfg.Physics.BaseSpeed, g.flappyCfg.Pipes, g.difficulty)
	} else {
		g.pipes.UpdateConfig(g.flappyCfg.Physics.BaseSpeed, g.flappyCfg.Pipes, g.difficulty)
		g.pipes.Reset(cfg.Seed)
	}
}

// Step advances the game by one tick. ActionActivate flaps.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.scrollFloor()

	if !g.started {
		if !in.Has(core.ActionActivate) {
			g.bob()
			return core.StepResult{State: g.State()}
		}
		g.started = true
	}

	flapped := false
	if in.Has(core.ActionActivate) {
		flapped = g.flap()
	}

	prevScore := g.score
	g.pipes.Update(g.score, g.tickCount)
	g.fall()
	g.tickCount++

	if g.collided() {
		g.gameOver = true
	}
	g.score += g.pipes.Crossed(core.BirdX+BirdW/2, g.pipes.Speed(prevScore, g.tickCount-1))

	return core.StepResult{
		State:  g.State(),
		Reward: g.reward(g.score-prevScore, flapped),
	}
}

// flap kicks the bird upward unless it is far above the frame.
func (g *Game) flap() bool {
	if g.birdY <= -2*BirdH {
		return false
	}
	g.velY = g.flappyCfg.Physics.FlapImpulse
	g.flapped = true
	g.rot = g.flappyCfg.Physics.FlapRotation
	return true
}

// fall applies gravity and rotation for one flying tick.
func (g *Game) fall() {
	p := g.flappyCfg.Physics
	if g.velY < p.MaxFallSpeed && !g.flapped {
		g.velY += p.Gravity
	}
	g.flapped = false
	g.birdY = core.ClampF(g.birdY+g.velY, -2*BirdH, core.ViewportH-0.75*BirdH)
	g.rot = core.ClampF(g.rot+p.RotationSpeed, p.MinRotation, p.MaxRotation)
}

// bob moves the waiting bird up and down in place.
func (g *Game) bob() {
	if g.velY >= bobMaxVel || g.velY <= -bobMaxVel {
		g.bobAcc = -g.bobAcc
	}
	g.velY += g.bobAcc
	g.birdY += g.velY
}

func (g *Game) scrollFloor() {
	g.floorX = -math.Mod(-g.floorX+g.flappyCfg.Physics.FloorSpeed, floorShift)
}

func (g *Game) collided() bool {
	if g.birdY+BirdH >= core.ViewportH-1 {
		return true
	}
	return g.pipes.Collides(g.birdRect())
}

// reward scores one flying tick. A crash overrides everything else.
func (g *Game) reward(passed int, flapped bool) float64 {
	r := g.flappyCfg.Rewards
	if g.gameOver {
		return r.Death
	}

	v := float64(passed)*r.Pipe + r.Step
	if flapped {
		v -= r.FlapCost
	}
	if g.birdY < 0 {
		v -= r.OutOfBoundsCost
	}

	if r.CenterReward > 0 {
		absDy := math.Abs(g.Observation().Dy1)
		if g.hasPrevDy {
			v += r.CenterReward * (g.prevAbsDy - absDy)
		}
		g.prevAbsDy = absDy
		g.hasPrevDy = true
	}
	return v
}

func (g *Game) birdRect() core.RectF {
	return core.RectF{X: core.BirdX, Y: g.birdY, W: BirdW, H: BirdH}
}

// Snapshot returns the frame the renderer draws for this tick.
func (g *Game) Snapshot() core.Snapshot {
	s := core.Snapshot{
		BirdY:    g.birdY,
		Rotation: -g.rot,
		FloorX:   g.floorX,
		Score:    g.score,
		GameOver: g.gameOver,
	}
	if g.pipes != nil {
		s.Pipes = g.pipes.Pairs()
	}
	return s
}

// Observation returns the normalized features pilots decide on.
func (g *Game) Observation() core.Observation {
	vcap := math.Max(math.Abs(g.flappyCfg.Physics.MaxFallSpeed), 1)
	obs := core.Observation{
		BirdY: g.birdY / core.ViewportH,
		VelY:  core.ClampF(g.velY, -vcap, vcap) / vcap,
	}
	if g.pipes == nil {
		return obs
	}
	first, second, ok := g.pipes.Ahead(core.BirdX)
	if !ok {
		return obs
	}
	obs.Dx1, obs.Dy1, obs.GapVel1 = g.deltas(first)
	obs.Dx2, obs.Dy2, obs.GapVel2 = g.deltas(second)
	return obs
}

func (g *Game) deltas(p Pipe) (dx, dy, vel float64) {
	dx = (p.X - core.BirdX) / core.LogicalW
	dy = (p.GapCenter - g.birdY) / core.ViewportH
	vel = p.Delta() / core.ViewportH
	return dx, dy, vel
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Started:  g.started,
	}
}

// Ticks returns the number of flying ticks since the last reset.
func (g *Game) Ticks() int {
	return g.tickCount
}
