package gen

import "github.com/OCharnyshevich/worldgen/pkg/world/architect"

const (
	ChunkSize     = 16
	SectionCount  = 16
	WorldHeight   = SectionCount * ChunkSize
	sectionBlocks = ChunkSize * ChunkSize * ChunkSize
)

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int }

// Section holds block data for a 16×16×16 vertical slice of a chunk.
// Index = y*256 + z*16 + x, value = blockID<<4 | metadata.
type Section struct {
	Blocks [sectionBlocks]uint16
}

// ChunkData holds the generated terrain for one chunk column.
type ChunkData struct {
	Sections  [SectionCount]*Section                    // nil = all-air
	Materials [ChunkSize * ChunkSize]architect.Material // index = z*16 + x
	Heights   [ChunkSize * ChunkSize]uint8              // top solid block, index = z*16 + x
}

// Generator produces chunk data deterministically. Implementations must be
// safe for concurrent Generate calls on distinct chunks.
type Generator interface {
	Generate(chunkX, chunkZ int) *ChunkData
	HeightAt(blockX, blockZ int) int
}

// SetBlock sets a block state at the given local coordinates within the chunk.
// x, z must be in [0,16), y must be in [0,256).
func (c *ChunkData) SetBlock(x, y, z int, state uint16) {
	sec := y >> 4
	if c.Sections[sec] == nil {
		if state == 0 {
			return
		}
		c.Sections[sec] = &Section{}
	}
	c.Sections[sec].Blocks[(y&0xF)*256+z*16+x] = state
}

// GetBlock returns the block state at the given local coordinates.
func (c *ChunkData) GetBlock(x, y, z int) uint16 {
	sec := y >> 4
	if c.Sections[sec] == nil {
		return 0
	}
	return c.Sections[sec].Blocks[(y&0xF)*256+z*16+x]
}

// Material returns the surface material decided for local column (x, z).
func (c *ChunkData) Material(x, z int) architect.Material {
	return c.Materials[z*ChunkSize+x]
}

// Height returns the top solid block of local column (x, z).
func (c *ChunkData) Height(x, z int) int {
	return int(c.Heights[z*ChunkSize+x])
}

func (c *ChunkData) setColumn(x, z, height int, m architect.Material) {
	c.Materials[z*ChunkSize+x] = m
	c.Heights[z*ChunkSize+x] = uint8(height)
}
