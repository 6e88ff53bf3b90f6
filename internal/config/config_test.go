package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/worldgen/pkg/world/architect"
	"github.com/OCharnyshevich/worldgen/pkg/world/noise"
)

const alpineYAML = `
seed: 42
radius: 3
workers: 2
noise:
  kind: opensimplex
  octaves:
    - {frequency: 0.01, amplitude: 1}
    - {frequency: 0.02, amplitude: 0.5}
    - {frequency: 0.04, amplitude: 0.25}
terrain:
  height_scale: 60
  offset: 90
  bands:
    - {below: 62, material: water}
    - {below: 120, material: stone}
  top: snow
  sea_level: 62
  max_height: 200
preview:
  path: out/alpine.json.zst
  size: 64
  step: 2
log_level: debug
`

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	octaves, err := cfg.Noise.OctaveList()
	require.NoError(t, err)
	assert.Len(t, octaves, 6)
	assert.Equal(t, noise.Octave{Frequency: 1.0 / 128, Amplitude: 1}, octaves[0])
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(alpineYAML))
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.ResolvedSeed())
	assert.Equal(t, 3, cfg.Radius)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, noise.KindOpenSimplex, cfg.Noise.Kind)

	octaves, err := cfg.Noise.OctaveList()
	require.NoError(t, err)
	assert.Equal(t, []noise.Octave{{Frequency: 0.01, Amplitude: 1}, {Frequency: 0.02, Amplitude: 0.5}, {Frequency: 0.04, Amplitude: 0.25}}, octaves)

	assert.Equal(t, float32(60), cfg.Terrain.HeightScale)
	assert.Equal(t, float32(90), cfg.Terrain.Offset)
	assert.Equal(t, []architect.Band{
		{Below: 62, Material: architect.MaterialWater},
		{Below: 120, Material: architect.MaterialStone},
	}, cfg.Terrain.Bands)
	assert.Equal(t, architect.MaterialSnow, cfg.Terrain.Top)
	assert.Equal(t, 200, cfg.Terrain.MaxHeight)
	assert.Equal(t, "out/alpine.json.zst", cfg.Preview.Path)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", lvl.String())
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("seed: 7\n"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, def.Noise, cfg.Noise)
	assert.Equal(t, def.Terrain, cfg.Terrain)

	empty, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, def, empty)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "seeed: 1\n"},
		{"unknown noise kind", "noise: {kind: worley}\n"},
		{"empty octave list", "noise: {octaves: []}\n"},
		{"zero amplitude", "noise: {octaves: [{frequency: 1, amplitude: 0}]}\n"},
		{"unknown material", "terrain: {top: lava}\n"},
		{"zero workers", "workers: 0\n"},
		{"negative radius", "radius: -2\n"},
		{"string seed", "seed: forty-two\n"},
		{"bad log level", "log_level: loud\n"},
		{"broken yaml", "noise: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, cfg)
		})
	}
}

func TestSeedPhraseOverridesSeed(t *testing.T) {
	cfg, err := Parse([]byte("seed: 1\nseed_phrase: glacier\n"))
	require.NoError(t, err)
	assert.Equal(t, noise.SeedFromPhrase("glacier"), cfg.ResolvedSeed())
}

func TestMerge(t *testing.T) {
	fromFile, err := Parse([]byte(alpineYAML))
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Seed = 1000
	cfg.Workers = 16
	Merge(cfg, fromFile, map[string]bool{"seed": true, "workers": true})

	assert.Equal(t, int64(1000), cfg.Seed, "explicit flag wins")
	assert.Equal(t, 16, cfg.Workers, "explicit flag wins")
	assert.Equal(t, 3, cfg.Radius)
	assert.Equal(t, noise.KindOpenSimplex, cfg.Noise.Kind)
	assert.Equal(t, fromFile.Noise.Octaves, cfg.Noise.Octaves)
	assert.Equal(t, fromFile.Terrain, cfg.Terrain)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestMergeSeedFlagBeatsFilePhrase(t *testing.T) {
	fromFile, err := Parse([]byte("seed_phrase: glacier\n"))
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Seed = 1000
	Merge(cfg, fromFile, map[string]bool{"seed": true})
	assert.Empty(t, cfg.SeedPhrase)
	assert.Equal(t, int64(1000), cfg.ResolvedSeed())

	cfg = DefaultConfig()
	cfg.Seed = 1000
	cfg.SeedPhrase = "tundra"
	Merge(cfg, fromFile, map[string]bool{"seed": true, "seed-phrase": true})
	assert.Equal(t, noise.SeedFromPhrase("tundra"), cfg.ResolvedSeed(), "explicit phrase still wins")

	cfg = DefaultConfig()
	Merge(cfg, fromFile, map[string]bool{})
	assert.Equal(t, noise.SeedFromPhrase("glacier"), cfg.ResolvedSeed())
}

func TestLoadAndFetch(t *testing.T) {
	src := filepath.Join(t.TempDir(), "alpine.yaml")
	require.NoError(t, os.WriteFile(src, []byte(alpineYAML), 0o644))

	direct, err := Load(src)
	require.NoError(t, err)

	local, err := Fetch(context.Background(), src, t.TempDir())
	require.NoError(t, err)

	fetched, err := Load(local)
	require.NoError(t, err)
	assert.Equal(t, direct, fetched)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
