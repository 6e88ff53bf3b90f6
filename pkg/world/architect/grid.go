package architect

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/worldgen/pkg/world/noise"
)

// Grid describes a rectangular lattice of sample points.
type Grid struct {
	Origin noise.Point2f
	Width  int
	Depth  int
	Step   float32
}

// At returns the world position of cell (col, row).
func (g Grid) At(col, row int) noise.Point2f {
	return g.Origin.Add(noise.Pt(float32(col)*g.Step, float32(row)*g.Step))
}

// SampleGrid evaluates a at every cell of g using up to workers goroutines,
// one row per task. The result is row-major and identical to a sequential
// evaluation.
func SampleGrid(ctx context.Context, a Architect, g Grid, workers int) ([]Decision, error) {
	if g.Width < 0 || g.Depth < 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, g.Width, g.Depth)
	}
	if !finite(g.Step) || g.Step <= 0 {
		return nil, fmt.Errorf("%w: grid step %v", ErrInvalidConfig, g.Step)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: %d workers", ErrInvalidConfig, workers)
	}

	out := make([]Decision, g.Width*g.Depth)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for row := 0; row < g.Depth; row++ {
		if gctx.Err() != nil {
			break
		}
		row := row
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			line := out[row*g.Width : (row+1)*g.Width]
			for col := range line {
				line[col] = a.Decide(g.At(col, row))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// Cancelled before any row was scheduled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
