// Package config provides YAML-based configuration loading and difficulty
// management for flaptiles.
package config

// Config is the full application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Assets  AssetsConfig  `yaml:"assets"`
	Input   InputConfig   `yaml:"input"`
	Pilot   string        `yaml:"pilot"`
	Flappy  FlappyConfig  `yaml:"flappy"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls the compositor and the hosts.
type DisplayConfig struct {
	Instances   int     `yaml:"instances"`    // Concurrent games, 1..16
	Width       int     `yaml:"width"`        // Window and snapshot surface width in pixels
	Height      int     `yaml:"height"`       // Window and snapshot surface height in pixels
	TickRate    int     `yaml:"tick_rate"`    // Simulation ticks per second
	FrameRate   int     `yaml:"frame_rate"`   // Renders per wing-flap frame
	ScoreScale  float64 `yaml:"score_scale"`  // Digit glyph scale
	ShowRewards bool    `yaml:"show_rewards"` // Draw reward overlays
	Supersample int     `yaml:"supersample"`  // Terminal raster pixels per half-block pixel
}

// Asset sources.
const (
	AssetsProcedural = "procedural"
	AssetsDir        = "dir"
)

// AssetsConfig selects where sprites come from.
type AssetsConfig struct {
	Source   string `yaml:"source"`    // "procedural" or "dir"
	BasePath string `yaml:"base_path"` // Directory holding sprites/ for the "dir" source
}

// InputConfig configures input capture.
type InputConfig struct {
	ActivateKey string `yaml:"activate_key"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log destination while a terminal UI owns the screen
}

// FlappyConfig contains all configuration for the simulation.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Rewards    FlappyRewards    `yaml:"rewards"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines the bird's motion. Units are pixels and degrees per tick.
type FlappyPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	FlapImpulse   float64 `yaml:"flap_impulse"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	FlapRotation  float64 `yaml:"flap_rotation"`  // Nose-up angle set by a flap
	RotationSpeed float64 `yaml:"rotation_speed"` // Added every tick, negative turns the nose down
	MinRotation   float64 `yaml:"min_rotation"`
	MaxRotation   float64 `yaml:"max_rotation"`
	BaseSpeed     float64 `yaml:"base_speed"`  // Pipe speed before difficulty scaling
	FloorSpeed    float64 `yaml:"floor_speed"` // Floor scroll per tick
}

// FlappyPipes defines pipe spawning and gap motion.
type FlappyPipes struct {
	Spacing     float64 `yaml:"spacing"`       // Free space in pipe widths before the next pair spawns
	MovingGaps  bool    `yaml:"moving_gaps"`   // Gaps drift up and down
	GapAmpPx    float64 `yaml:"gap_amp_px"`    // Typical drift amplitude
	GapFreqHz   float64 `yaml:"gap_freq_hz"`   // Typical drift frequency
	GapTopMin   float64 `yaml:"gap_top_min"`   // Highest gap top as a share of the viewport
	GapTopRange float64 `yaml:"gap_top_range"` // Viewport share the gap (top plus opening) is drawn from
}

// FlappyRewards defines the per-tick reward signal.
type FlappyRewards struct {
	Pipe            float64 `yaml:"pipe"`              // Per pipe passed
	Step            float64 `yaml:"step"`              // Every tick alive
	Death           float64 `yaml:"death"`             // Replaces the tick's reward on a crash
	FlapCost        float64 `yaml:"flap_cost"`         // Subtracted per flap
	OutOfBoundsCost float64 `yaml:"out_of_bounds_cost"` // Subtracted per tick above the frame
	CenterReward    float64 `yaml:"center_reward"`     // Scales progress toward the next gap center
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Spacing reduction in pipe widths at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
