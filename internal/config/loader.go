package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flaptiles/internal/input"
	"github.com/vovakirdan/flaptiles/internal/layout"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "flaptiles.yaml"

// Sources reported by Load besides file paths.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Load reads the configuration and reports where it came from.
// Search order: customPath -> ~/.flaptiles/configs/flaptiles.yaml ->
// ./configs/flaptiles.yaml -> embedded default -> built-in default.
// A custom path must exist and be valid; discovered files that fail to load are skipped.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{filepath.Join("configs", FileName)}
	if p := userConfigPath(FileName); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
}

// Parse decodes a YAML document over the built-in defaults and validates it.
func Parse(data []byte) (Config, error) {
	if err := validateSchema(data); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the cross-field rules the schema cannot express.
func Validate(cfg Config) error {
	if err := layout.Validate(cfg.Display.Instances); err != nil {
		return fmt.Errorf("%w: display.instances: %v", ErrInvalid, err)
	}
	if cfg.Display.TickRate < 1 {
		return fmt.Errorf("%w: display.tick_rate must be positive", ErrInvalid)
	}
	if cfg.Display.Width < 1 || cfg.Display.Height < 1 {
		return fmt.Errorf("%w: display size must be positive", ErrInvalid)
	}
	switch cfg.Assets.Source {
	case AssetsProcedural:
	case AssetsDir:
		if cfg.Assets.BasePath == "" {
			return fmt.Errorf("%w: assets.base_path is required for the dir source", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown assets.source %q", ErrInvalid, cfg.Assets.Source)
	}
	p := cfg.Flappy.Physics
	if p.MinRotation > p.MaxRotation {
		return fmt.Errorf("%w: flappy.physics.min_rotation exceeds max_rotation", ErrInvalid)
	}
	if g := cfg.Flappy.Pipes; g.GapTopMin+g.GapTopRange > 1 {
		return fmt.Errorf("%w: flappy.pipes gap band exceeds the viewport", ErrInvalid)
	}
	return nil
}

// validateSchema checks the raw document against the embedded JSON Schema.
func validateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: cannot parse: %w", err)
	}
	if doc == nil {
		return nil // Empty document keeps every default
	}

	// The validator expects JSON-shaped values.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	s, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(FileName+".schema.json", bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("config: cannot load schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(FileName + ".schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("config: cannot compile schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flaptiles", "configs", filename)
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Pipes.MovingGaps = false
	case DifficultyHard:
		cfg.Pipes.MovingGaps = true
	}
}

// ActivateKey returns the normalized activate key.
func (c Config) ActivateKey() string {
	return input.NormalizeKey(c.Input.ActivateKey)
}
