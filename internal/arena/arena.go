// Package arena runs several flappy simulations in lockstep.
// Each instance is flown by a pilot, except an optional human slot that
// follows the activate input. The arena owns per-instance rewards, episode
// counters and the automatic restart after a crash.
package arena

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flaptiles/internal/config"
	"github.com/vovakirdan/flaptiles/internal/core"
	"github.com/vovakirdan/flaptiles/internal/games/flappy"
	"github.com/vovakirdan/flaptiles/internal/layout"
	"github.com/vovakirdan/flaptiles/internal/registry"
)

// Seed strides keep every instance and episode on its own pipe sequence.
const (
	instanceStride = 1_000_003
	episodeStride  = 7_919
)

// Options configures an arena.
type Options struct {
	Instances    int
	TickRate     int
	Seed         int64
	Pilot        string // Registry ID flying the non-human instances
	Human        bool   // Instance 0 follows the activate input
	RestartDelay int    // Ticks between a crash and the restart; 0 means one second
	Flappy       config.FlappyConfig
	Logger       *log.Logger
}

func (o Options) withDefaults() Options {
	if o.TickRate < 1 {
		o.TickRate = 30
	}
	if o.RestartDelay <= 0 {
		o.RestartDelay = o.TickRate
	}
	if o.Pilot == "" {
		o.Pilot = flappy.PilotHeuristic
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Stats is the externally visible bookkeeping of one instance.
type Stats struct {
	Episode    int     // 1-based episode number
	Score      int     // Score of the running episode
	Best       int     // Best score over all episodes
	Instant    float64 // Reward of the latest tick
	Cumulative float64 // Reward summed over the running episode
	Human      bool
	Pilot      string
}

type instance struct {
	game       *flappy.Game
	pilot      registry.Pilot
	human      bool
	episode    int
	best       int
	instant    float64
	cumulative float64
	deadTicks  int
}

// Arena steps every instance once per tick.
type Arena struct {
	opts      Options
	instances []*instance
	paused    bool
	tick      uint64
	inputChan chan core.Action
	flap      bool
}

// New creates an arena and starts the first episode of every instance.
func New(opts Options) (*Arena, error) {
	opts = opts.withDefaults()
	if err := layout.Validate(opts.Instances); err != nil {
		return nil, err
	}
	if _, err := registry.Create(opts.Pilot); err != nil {
		return nil, err
	}

	a := &Arena{
		opts:      opts,
		inputChan: make(chan core.Action, 64),
	}
	if err := a.grow(opts.Instances); err != nil {
		return nil, err
	}
	return a, nil
}

// grow appends fresh instances until there are n.
func (a *Arena) grow(n int) error {
	for i := len(a.instances); i < n; i++ {
		inst := &instance{game: flappy.New(a.opts.Flappy)}
		if i == 0 && a.opts.Human {
			inst.human = true
			inst.game.WaitForFlap = true
		} else {
			p, err := registry.Create(a.opts.Pilot)
			if err != nil {
				return err
			}
			inst.pilot = p
		}
		a.instances = append(a.instances, inst)
		a.startEpisode(i)
	}
	return nil
}

func (a *Arena) seed(i, episode int) int64 {
	return a.opts.Seed + int64(i)*instanceStride + int64(episode)*episodeStride
}

func (a *Arena) startEpisode(i int) {
	inst := a.instances[i]
	inst.episode++
	inst.instant = 0
	inst.cumulative = 0
	inst.deadTicks = 0

	seed := a.seed(i, inst.episode)
	inst.game.Reset(core.RuntimeConfig{
		ScreenW:   core.LogicalW,
		ScreenH:   core.LogicalH,
		TickRate:  a.opts.TickRate,
		Instances: len(a.instances),
		Seed:      seed,
	})
	if inst.pilot != nil {
		inst.pilot.Reset(seed)
	}
}

// SendInput queues a host action for the next tick.
// Non-blocking, uses a buffered channel; safe from any goroutine.
func (a *Arena) SendInput(act core.Action) {
	select {
	case a.inputChan <- act:
	default:
		// Channel full, drop input (rare under normal conditions)
	}
}

// drainInputs applies queued host actions. Activate is latched for the human slot.
func (a *Arena) drainInputs() {
	for {
		select {
		case act := <-a.inputChan:
			a.apply(act)
		default:
			return
		}
	}
}

func (a *Arena) apply(act core.Action) {
	switch act {
	case core.ActionActivate:
		a.flap = true
	case core.ActionPause:
		a.paused = !a.paused
	case core.ActionRestart:
		a.Restart()
	case core.ActionMore:
		if err := a.SetInstances(len(a.instances) + 1); err != nil {
			a.opts.Logger.Debug("instance count unchanged", "err", err)
		}
	case core.ActionFewer:
		if err := a.SetInstances(len(a.instances) - 1); err != nil {
			a.opts.Logger.Debug("instance count unchanged", "err", err)
		}
	}
}

// Step drains queued input and advances every instance by one tick.
func (a *Arena) Step() {
	a.drainInputs()
	if a.paused {
		a.flap = false
		return
	}

	flap := a.flap
	a.flap = false
	a.tick++

	for i, inst := range a.instances {
		if inst.game.State().GameOver {
			a.afterCrash(i, flap)
			continue
		}

		in := core.NewInputFrame()
		switch {
		case inst.human:
			if flap {
				in.Set(core.ActionActivate)
			}
		case inst.pilot != nil:
			if act := inst.pilot.Act(inst.game.Observation()); act != core.ActionNone {
				in.Set(act)
			}
		}

		res := inst.game.Step(in)
		if !res.State.Started {
			continue
		}
		inst.instant = res.Reward
		inst.cumulative += res.Reward
		if res.State.Score > inst.best {
			inst.best = res.State.Score
		}
		if res.State.GameOver {
			a.opts.Logger.Debug("episode finished",
				"instance", i+1, "episode", inst.episode,
				"score", res.State.Score, "return", inst.cumulative)
		}
	}
}

// afterCrash counts down the restart delay. Pilots restart on their own,
// the human slot waits for a flap once the delay is over.
func (a *Arena) afterCrash(i int, flap bool) {
	inst := a.instances[i]
	inst.deadTicks++
	if inst.deadTicks < a.opts.RestartDelay {
		return
	}
	if inst.human && !flap {
		return
	}
	a.startEpisode(i)
}

// Restart begins a new episode on every instance.
func (a *Arena) Restart() {
	for i := range a.instances {
		a.startEpisode(i)
	}
	a.paused = false
}

// SetInstances grows or shrinks the arena. Surviving instances keep running.
func (a *Arena) SetInstances(n int) error {
	if err := layout.Validate(n); err != nil {
		return err
	}
	if n < len(a.instances) {
		a.instances = a.instances[:n]
		return nil
	}
	return a.grow(n)
}

// Instances returns the number of simulated games.
func (a *Arena) Instances() int {
	return len(a.instances)
}

// TogglePause flips the pause state.
func (a *Arena) TogglePause() {
	a.paused = !a.paused
}

// Paused reports whether stepping is suspended.
func (a *Arena) Paused() bool {
	return a.paused
}

// Tick returns the number of unpaused steps so far.
func (a *Arena) Tick() uint64 {
	return a.tick
}

// Waiting reports whether the human slot still waits for its first flap.
func (a *Arena) Waiting() bool {
	return len(a.instances) > 0 && a.instances[0].human && !a.instances[0].game.State().Started
}

// Snapshots returns one fresh snapshot per instance.
func (a *Arena) Snapshots() []core.Snapshot {
	out := make([]core.Snapshot, len(a.instances))
	for i, inst := range a.instances {
		out[i] = inst.game.Snapshot()
	}
	return out
}

// Rewards returns the instant and cumulative rewards aligned with Snapshots.
func (a *Arena) Rewards() (instant, cumulative []float64) {
	instant = make([]float64, len(a.instances))
	cumulative = make([]float64, len(a.instances))
	for i, inst := range a.instances {
		instant[i] = inst.instant
		cumulative[i] = inst.cumulative
	}
	return instant, cumulative
}

// Stats returns the bookkeeping of every instance.
func (a *Arena) Stats() []Stats {
	out := make([]Stats, len(a.instances))
	for i, inst := range a.instances {
		s := Stats{
			Episode:    inst.episode,
			Score:      inst.game.State().Score,
			Best:       inst.best,
			Instant:    inst.instant,
			Cumulative: inst.cumulative,
			Human:      inst.human,
		}
		if inst.pilot != nil {
			s.Pilot = inst.pilot.ID()
		}
		out[i] = s
	}
	return out
}
