package config

import (
	"bytes"
	_ "embed"
)

//go:embed defaults/flaptiles.yaml
var defaultYAML []byte

//go:embed defaults/schema.json
var schemaJSON []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return bytes.Clone(defaultYAML)
}

// Default returns the built-in configuration. It matches the embedded default file.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Instances:   4,
			Width:       576,
			Height:      1024,
			TickRate:    30,
			FrameRate:   8,
			ScoreScale:  1.0,
			ShowRewards: true,
			Supersample: 4,
		},
		Assets: AssetsConfig{
			Source:   AssetsProcedural,
			BasePath: "assets",
		},
		Input: InputConfig{
			ActivateKey: "space",
		},
		Pilot:  "heuristic",
		Flappy: DefaultFlappyConfig(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultFlappyConfig returns the default simulation configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:       1.0,
			FlapImpulse:   -9.0,
			MaxFallSpeed:  10.0,
			FlapRotation:  80.0,
			RotationSpeed: -3.0,
			MinRotation:   -90.0,
			MaxRotation:   20.0,
			BaseSpeed:     5.0,
			FloorSpeed:    4.0,
		},
		Pipes: FlappyPipes{
			Spacing:     2.5,
			MovingGaps:  false,
			GapAmpPx:    20.0,
			GapFreqHz:   0.5,
			GapTopMin:   0.2,
			GapTopRange: 0.6,
		},
		Rewards: FlappyRewards{
			Pipe:  1.0,
			Step:  -0.01,
			Death: -1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.6,
				SpacingReduction: 1.0,
			},
		},
	}
}
