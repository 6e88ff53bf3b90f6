package gen

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/worldgen/pkg/world/architect"
	"github.com/OCharnyshevich/worldgen/pkg/world/noise"
)

// Options tune how architect decisions become block columns.
type Options struct {
	SeaLevel  int `json:"sea_level" yaml:"sea_level"`
	MaxHeight int `json:"max_height" yaml:"max_height"`
}

// DefaultOptions returns vanilla-like sea level and build height.
func DefaultOptions() Options {
	return Options{SeaLevel: 62, MaxHeight: 250}
}

// TerrainGenerator fills chunks from the decisions of an Architect.
type TerrainGenerator struct {
	architect architect.Architect
	opts      Options
}

var _ Generator = (*TerrainGenerator)(nil)

// NewTerrainGenerator creates a TerrainGenerator. The architect is shared
// read-only by every Generate call.
func NewTerrainGenerator(a architect.Architect, opts Options) (*TerrainGenerator, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil architect", architect.ErrInvalidConfig)
	}
	if opts.MaxHeight < 1 || opts.MaxHeight >= WorldHeight {
		return nil, fmt.Errorf("%w: max height %d outside [1, %d)", architect.ErrInvalidConfig, opts.MaxHeight, WorldHeight)
	}
	if opts.SeaLevel < 1 || opts.SeaLevel > opts.MaxHeight {
		return nil, fmt.Errorf("%w: sea level %d outside [1, %d]", architect.ErrInvalidConfig, opts.SeaLevel, opts.MaxHeight)
	}
	return &TerrainGenerator{architect: a, opts: opts}, nil
}

func (g *TerrainGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	c := &ChunkData{}

	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			d := g.architect.Decide(blockPoint(chunkX*ChunkSize+x, chunkZ*ChunkSize+z))
			height := g.columnHeight(d.Height)
			c.setColumn(x, z, height, d.Material)
			g.fillColumn(c, x, z, height, d.Material)
		}
	}
	return c
}

func (g *TerrainGenerator) HeightAt(blockX, blockZ int) int {
	return g.columnHeight(g.architect.Decide(blockPoint(blockX, blockZ)).Height)
}

// SeaLevel is the top water block for columns below it.
func (g *TerrainGenerator) SeaLevel() int {
	return g.opts.SeaLevel
}

func blockPoint(bx, bz int) noise.Point2f {
	return noise.Pt(float32(bx), float32(bz))
}

// columnHeight rounds a decided height to a block and clamps it into [1, MaxHeight].
func (g *TerrainGenerator) columnHeight(h float32) int {
	hf := math.Round(float64(h))
	if hf < 1 {
		return 1
	}
	if hf > float64(g.opts.MaxHeight) {
		return g.opts.MaxHeight
	}
	return int(hf)
}

// fillColumn fills a single block column: bedrock, stone, surface cap, water.
func (g *TerrainGenerator) fillColumn(c *ChunkData, x, z, height int, m architect.Material) {
	c.SetBlock(x, 0, z, state(blockBedrock))
	for y := 1; y <= height; y++ {
		c.SetBlock(x, y, z, state(blockStone))
	}

	g.applySurface(c, x, z, height, m)

	for y := height + 1; y <= g.opts.SeaLevel; y++ {
		c.SetBlock(x, y, z, state(blockWater))
	}
}

// applySurface replaces the top of the stone column with the material's cap.
func (g *TerrainGenerator) applySurface(c *ChunkData, x, z, height int, m architect.Material) {
	switch m {
	case architect.MaterialWater:
		// Gravel over dirt on the sea floor.
		layer(c, x, z, height, 3, blockGravel)
		layer(c, x, z, height-3, 2, blockDirt)

	case architect.MaterialSand:
		layer(c, x, z, height, 4, blockSand)
		layer(c, x, z, height-4, 2, blockSandstone)

	case architect.MaterialStone:
		// Bare rock.

	case architect.MaterialSnow:
		layer(c, x, z, height, 1, blockSnow)
		layer(c, x, z, height-1, 2, blockDirt)

	default:
		if height > g.opts.SeaLevel {
			layer(c, x, z, height, 1, blockGrass)
		} else {
			layer(c, x, z, height, 1, blockDirt)
		}
		layer(c, x, z, height-1, 3, blockDirt)
	}
}

// layer places depth blocks downward from top, never touching bedrock.
func layer(c *ChunkData, x, z, top, depth int, blockID uint16) {
	for y := top; y > top-depth && y > 0; y-- {
		c.SetBlock(x, y, z, state(blockID))
	}
}
