package flappy

import (
	"testing"

	"github.com/vovakirdan/flaptiles/internal/core"
	"github.com/vovakirdan/flaptiles/internal/registry"
)

func TestPilotsRegistered(t *testing.T) {
	for _, id := range []string{PilotHeuristic, PilotRandom, PilotIdle} {
		p, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}
		if p.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, p.ID())
		}
	}
}

func TestHeuristicAct(t *testing.T) {
	tests := []struct {
		name     string
		obs      core.Observation
		expected core.Action
	}{
		{
			name:     "falling well below the gap center",
			obs:      core.Observation{VelY: 0.3, Dy1: -40.0 / core.ViewportH},
			expected: core.ActionActivate,
		},
		{
			name:     "rising below the gap center",
			obs:      core.Observation{VelY: -0.5, Dy1: -40.0 / core.ViewportH},
			expected: core.ActionNone,
		},
		{
			name:     "falling above the gap center",
			obs:      core.Observation{VelY: 0.5, Dy1: 30.0 / core.ViewportH},
			expected: core.ActionNone,
		},
		{
			name:     "falling inside the slack",
			obs:      core.Observation{VelY: 0.5, Dy1: 0},
			expected: core.ActionNone,
		},
	}

	var h Heuristic
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.Act(tc.obs); got != tc.expected {
				t.Errorf("Act() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestHeuristicScores(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g := newTestGame(seed)
		var h Heuristic
		for i := 0; i < 200 && !g.State().GameOver; i++ {
			in := core.NewInputFrame()
			if h.Act(g.Observation()) == core.ActionActivate {
				in.Set(core.ActionActivate)
			}
			g.Step(in)
		}
		if g.State().Score < 1 {
			t.Errorf("seed %d: heuristic should pass the first pipe, score %d", seed, g.State().Score)
		}
	}
}

func TestRandomPilotDeterministic(t *testing.T) {
	a, b := &Random{}, &Random{}
	a.Reset(77)
	b.Reset(77)

	flaps := 0
	for i := 0; i < 600; i++ {
		x, y := a.Act(core.Observation{}), b.Act(core.Observation{})
		if x != y {
			t.Fatalf("tick %d: same seed gave %v and %v", i, x, y)
		}
		if x == core.ActionActivate {
			flaps++
		}
	}
	// ~50 expected at 1 in 12
	if flaps < 20 || flaps > 100 {
		t.Errorf("random pilot flapped %d times in 600 ticks", flaps)
	}
}

func TestIdlePilot(t *testing.T) {
	g := newTestGame(1)
	var p Idle
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		if p.Act(g.Observation()) != core.ActionNone {
			t.Fatal("idle pilot should never flap")
		}
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Error("an idle bird should hit the floor")
	}
}
