package worldgen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/worldgen/internal/config"
	"github.com/OCharnyshevich/worldgen/internal/export"
	"github.com/OCharnyshevich/worldgen/internal/world"
	"github.com/OCharnyshevich/worldgen/pkg/world/architect"
	"github.com/OCharnyshevich/worldgen/pkg/world/gen"
	"github.com/OCharnyshevich/worldgen/pkg/world/noise"
)

// heightLayer names the noise layer that drives surface height.
const heightLayer = "height"

// Session is one generation run: a world seed, the immutable noise and
// architect built from it, and the chunk cache they feed.
type Session struct {
	cfg   *config.Config
	log   *slog.Logger
	runID uuid.UUID
	seed  int64

	noise     noise.Noise
	architect *architect.Noised
	generator *gen.TerrainGenerator
	world     *world.World
}

// New builds every component of a session from cfg. Any configuration
// error surfaces here; nothing built by a successful New can fail later.
func New(cfg *config.Config, log *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	log = log.With("run", runID.String())

	seed := cfg.ResolvedSeed()
	base, err := noise.NewBackend(cfg.Noise.Kind, noise.DeriveSeed(seed, heightLayer))
	if err != nil {
		return nil, fmt.Errorf("build noise: %w", err)
	}
	octaves, err := cfg.Noise.OctaveList()
	if err != nil {
		return nil, fmt.Errorf("build octaves: %w", err)
	}
	n, err := noise.NewOctavedNoise(base, octaves)
	if err != nil {
		return nil, fmt.Errorf("build octaved noise: %w", err)
	}

	a, err := architect.NewNoised(n, cfg.Terrain.Mapping)
	if err != nil {
		return nil, fmt.Errorf("build architect: %w", err)
	}
	g, err := gen.NewTerrainGenerator(a, cfg.Terrain.Options)
	if err != nil {
		return nil, fmt.Errorf("build generator: %w", err)
	}

	log.Debug("session built",
		"seed", seed,
		"noise", cfg.Noise.Kind,
		"octaves", len(octaves),
		"heightMin", a.HeightRange().Min,
		"heightMax", a.HeightRange().Max,
	)

	return &Session{
		cfg:       cfg,
		log:       log,
		runID:     runID,
		seed:      seed,
		noise:     n,
		architect: a,
		generator: g,
		world:     world.NewWorld(g, log),
	}, nil
}

// RunID identifies the session in logs.
func (s *Session) RunID() uuid.UUID {
	return s.runID
}

// Seed is the resolved numeric world seed.
func (s *Session) Seed() int64 {
	return s.seed
}

// Noise returns the octaved height noise behind the architect.
func (s *Session) Noise() noise.Noise {
	return s.noise
}

// Architect returns the shared architect.
func (s *Session) Architect() architect.Architect {
	return s.architect
}

// World returns the session's chunk cache.
func (s *Session) World() *world.World {
	return s.world
}

// Run pre-generates the configured radius and, if a preview path is set,
// samples and writes a heightmap around the origin.
func (s *Session) Run(ctx context.Context) error {
	start := time.Now()

	chunks, err := s.world.PreGenerate(ctx, s.cfg.Radius, s.cfg.Workers)
	if err != nil {
		return err
	}

	if s.cfg.Preview.Path != "" {
		if err := s.writePreview(ctx); err != nil {
			return err
		}
	}

	s.log.Info("generation finished",
		"seed", s.seed,
		"chunks", chunks,
		"spawnHeight", s.world.SpawnHeight(),
		"seaLevel", s.generator.SeaLevel(),
		"elapsed", time.Since(start),
	)
	return nil
}

// Preview samples a Size×Size grid centred on the origin.
func (s *Session) Preview(ctx context.Context) (*export.Heightmap, error) {
	p := s.cfg.Preview
	half := float32(p.Size) * p.Step / 2
	grid := architect.Grid{
		Origin: noise.Pt(-half, -half),
		Width:  p.Size,
		Depth:  p.Size,
		Step:   p.Step,
	}

	decisions, err := architect.SampleGrid(ctx, s.architect, grid, s.cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("sample preview: %w", err)
	}

	return &export.Heightmap{
		Seed:      s.seed,
		Noise:     s.cfg.Noise.Kind,
		Origin:    [2]float32{grid.Origin.X, grid.Origin.Y},
		Step:      grid.Step,
		Width:     grid.Width,
		Depth:     grid.Depth,
		Range:     s.architect.HeightRange(),
		Decisions: decisions,
	}, nil
}

func (s *Session) writePreview(ctx context.Context) error {
	h, err := s.Preview(ctx)
	if err != nil {
		return err
	}
	if err := export.WriteHeightmap(s.cfg.Preview.Path, h); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	s.log.Info("preview written", "path", s.cfg.Preview.Path, "size", h.Width)
	return nil
}
