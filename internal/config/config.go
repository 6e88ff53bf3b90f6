package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/OCharnyshevich/worldgen/pkg/world/architect"
	"github.com/OCharnyshevich/worldgen/pkg/world/gen"
	"github.com/OCharnyshevich/worldgen/pkg/world/noise"
)

// ErrInvalidConfig is wrapped by Load and Validate failures.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds a generation session's configuration.
type Config struct {
	Seed       int64  `json:"seed" yaml:"seed"`
	SeedPhrase string `json:"seed_phrase,omitempty" yaml:"seed_phrase,omitempty"` // overrides Seed when set

	Noise   NoiseConfig   `json:"noise" yaml:"noise"`
	Terrain TerrainConfig `json:"terrain" yaml:"terrain"`

	Radius  int `json:"radius" yaml:"radius"`   // pre-generation radius in chunks
	Workers int `json:"workers" yaml:"workers"` // generation goroutines

	Preview  PreviewConfig `json:"preview" yaml:"preview"`
	LogLevel string        `json:"log_level" yaml:"log_level"`
}

// NoiseConfig selects the base noise and its octaves. An explicit Octaves
// list wins over the fractal parameters.
type NoiseConfig struct {
	Kind        string         `json:"kind" yaml:"kind"`
	Octaves     []noise.Octave `json:"octaves,omitempty" yaml:"octaves,omitempty"`
	OctaveCount int            `json:"octave_count" yaml:"octave_count"`
	Frequency   float32        `json:"frequency" yaml:"frequency"`
	Persistence float32        `json:"persistence" yaml:"persistence"`
	Lacunarity  float32        `json:"lacunarity" yaml:"lacunarity"`
}

// TerrainConfig maps noise to heights and materials and columns to blocks.
type TerrainConfig struct {
	architect.Mapping `yaml:",inline"`
	gen.Options       `yaml:",inline"`
}

// PreviewConfig controls the optional heightmap dump written after a run.
type PreviewConfig struct {
	Path string  `json:"path,omitempty" yaml:"path,omitempty"`
	Size int     `json:"size" yaml:"size"`
	Step float32 `json:"step" yaml:"step"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Noise: NoiseConfig{
			Kind:        noise.KindSimplex,
			OctaveCount: 6,
			Frequency:   1.0 / 128,
			Persistence: 0.5,
			Lacunarity:  2,
		},
		Terrain: TerrainConfig{
			Mapping: architect.Mapping{
				HeightScale: 32,
				Offset:      64,
				Bands: []architect.Band{
					{Below: 62, Material: architect.MaterialWater},
					{Below: 65, Material: architect.MaterialSand},
					{Below: 88, Material: architect.MaterialGrass},
					{Below: 92, Material: architect.MaterialStone},
				},
				Top: architect.MaterialSnow,
			},
			Options: gen.DefaultOptions(),
		},
		Radius:  8,
		Workers: 4,
		Preview: PreviewConfig{
			Size: 256,
			Step: 1,
		},
		LogLevel: "info",
	}
}

// ResolvedSeed returns the numeric world seed, hashing SeedPhrase if set.
func (c *Config) ResolvedSeed() int64 {
	if c.SeedPhrase != "" {
		return noise.SeedFromPhrase(c.SeedPhrase)
	}
	return c.Seed
}

// OctaveList returns the configured octaves.
func (n NoiseConfig) OctaveList() ([]noise.Octave, error) {
	if len(n.Octaves) > 0 {
		return n.Octaves, nil
	}
	return noise.FractalOctaves(n.OctaveCount, n.Frequency, n.Persistence, n.Lacunarity)
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// Validate checks the cross-field rules the schema cannot express.
// Noise and mapping values are validated again by their constructors.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be at least 1", ErrInvalidConfig, c.Workers)
	}
	if c.Radius < 0 {
		return fmt.Errorf("%w: radius %d must not be negative", ErrInvalidConfig, c.Radius)
	}
	if len(c.Noise.Octaves) == 0 && c.Noise.OctaveCount < 1 {
		return fmt.Errorf("%w: noise needs an octave list or octave_count", ErrInvalidConfig)
	}
	if c.Preview.Path != "" && (c.Preview.Size < 1 || c.Preview.Step <= 0) {
		return fmt.Errorf("%w: preview size %d step %v", ErrInvalidConfig, c.Preview.Size, c.Preview.Step)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	switch {
	case explicitFlags["seed-phrase"]:
	case explicitFlags["seed"]:
		// An explicit numeric seed beats a phrase from the file.
		cfg.SeedPhrase = ""
	default:
		cfg.SeedPhrase = fromFile.SeedPhrase
	}
	if !explicitFlags["noise"] {
		cfg.Noise.Kind = fromFile.Noise.Kind
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["preview"] {
		cfg.Preview.Path = fromFile.Preview.Path
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}

	// No flags for these.
	cfg.Noise.Octaves = fromFile.Noise.Octaves
	cfg.Noise.OctaveCount = fromFile.Noise.OctaveCount
	cfg.Noise.Frequency = fromFile.Noise.Frequency
	cfg.Noise.Persistence = fromFile.Noise.Persistence
	cfg.Noise.Lacunarity = fromFile.Noise.Lacunarity
	cfg.Terrain = fromFile.Terrain
	cfg.Preview.Size = fromFile.Preview.Size
	cfg.Preview.Step = fromFile.Preview.Step
}
