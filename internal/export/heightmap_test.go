package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/worldgen/pkg/world/architect"
	"github.com/OCharnyshevich/worldgen/pkg/world/noise"
)

func TestWriteReadHeightmap(t *testing.T) {
	h := &Heightmap{
		Seed:   42,
		Noise:  noise.KindSimplex,
		Origin: [2]float32{-8, 16},
		Step:   0.5,
		Width:  3,
		Depth:  2,
		Range:  noise.Range{Min: 40, Max: 88},
		Decisions: []architect.Decision{
			{Height: 40, Material: architect.MaterialWater},
			{Height: 63.25, Material: architect.MaterialSand},
			{Height: 70, Material: architect.MaterialGrass},
			{Height: 85.5, Material: architect.MaterialStone},
			{Height: 88, Material: architect.MaterialSnow},
			{Height: 61, Material: architect.MaterialWater},
		},
	}

	path := filepath.Join(t.TempDir(), "nested", "preview.json.zst")
	require.NoError(t, WriteHeightmap(path, h))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file left behind")

	got, err := ReadHeightmap(path)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, architect.MaterialStone, got.At(0, 1).Material)
}

func TestWriteHeightmapRejectsShortGrid(t *testing.T) {
	h := &Heightmap{Width: 4, Depth: 4, Decisions: make([]architect.Decision, 3)}
	assert.Error(t, WriteHeightmap(filepath.Join(t.TempDir(), "bad.json.zst"), h))
}

func TestReadHeightmapNotZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width":0}`), 0o644))

	_, err := ReadHeightmap(path)
	assert.Error(t, err)
}
