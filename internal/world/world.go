package world

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/worldgen/pkg/world/gen"
)

// World caches generated chunks over a shared generator.
type World struct {
	log       *slog.Logger
	generator gen.Generator

	mu     sync.RWMutex
	chunks map[gen.ChunkPos]*gen.ChunkData
}

// NewWorld creates a new World with the given generator.
func NewWorld(generator gen.Generator, log *slog.Logger) *World {
	return &World{
		log:       log,
		generator: generator,
		chunks:    make(map[gen.ChunkPos]*gen.ChunkData),
	}
}

// GetOrGenerateChunk returns the ChunkData for the given chunk coordinates,
// generating and caching it if needed.
func (w *World) GetOrGenerateChunk(cx, cz int) *gen.ChunkData {
	pos := gen.ChunkPos{X: cx, Z: cz}

	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	c := w.generator.Generate(cx, cz)

	w.mu.Lock()
	// Double-check after acquiring write lock.
	if existing, ok := w.chunks[pos]; ok {
		w.mu.Unlock()
		return existing
	}
	w.chunks[pos] = c
	w.mu.Unlock()
	return c
}

// GetBlock returns the block state at the given world position.
func (w *World) GetBlock(x, y, z int) uint16 {
	if y < 0 || y >= gen.WorldHeight {
		return 0
	}
	c := w.GetOrGenerateChunk(x>>4, z>>4)
	return c.GetBlock(x&0xF, y, z&0xF)
}

// HeightAt returns the top solid block of the column at (x, z).
func (w *World) HeightAt(x, z int) int {
	return w.GetOrGenerateChunk(x>>4, z>>4).Height(x&0xF, z&0xF)
}

// SpawnHeight returns the terrain height at spawn (0, 0) + 1 for the player to stand on.
func (w *World) SpawnHeight() int {
	return w.generator.HeightAt(0, 0) + 1
}

// ChunkCount returns the number of cached chunks.
func (w *World) ChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// PreGenerate generates every chunk within radius of the origin on up to
// workers goroutines sharing one generator. It returns the number of chunks
// in the square, cached or not.
func (w *World) PreGenerate(ctx context.Context, radius, workers int) (int, error) {
	if radius < 0 {
		return 0, fmt.Errorf("negative radius %d", radius)
	}
	if workers < 1 {
		return 0, fmt.Errorf("need at least one worker, got %d", workers)
	}

	start := time.Now()
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	count := 0
schedule:
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			if gctx.Err() != nil {
				break schedule
			}
			cx, cz := cx, cz
			eg.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				w.GetOrGenerateChunk(cx, cz)
				return nil
			})
			count++
		}
	}
	if err := eg.Wait(); err != nil {
		return 0, fmt.Errorf("pre-generate radius %d: %w", radius, err)
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("pre-generate radius %d: %w", radius, err)
	}

	w.log.Info("pre-generated chunks",
		"radius", radius,
		"chunks", count,
		"workers", workers,
		"elapsed", time.Since(start),
	)
	return count, nil
}
