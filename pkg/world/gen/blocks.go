package gen

const (
	blockAir       = 0
	blockStone     = 1
	blockGrass     = 2
	blockDirt      = 3
	blockBedrock   = 7
	blockWater     = 9 // stationary water
	blockSand      = 12
	blockGravel    = 13
	blockSandstone = 24
	blockSnow      = 80
)

// state packs a block ID with zero metadata.
func state(blockID uint16) uint16 {
	return blockID << 4
}
