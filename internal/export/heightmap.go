package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/OCharnyshevich/worldgen/pkg/world/architect"
	"github.com/OCharnyshevich/worldgen/pkg/world/noise"
)

// Heightmap is a row-major grid of decisions with the parameters that
// produced it, dumped for inspection. It is never loaded back into a world.
type Heightmap struct {
	Seed      int64                `json:"seed"`
	Noise     string               `json:"noise"`
	Origin    [2]float32           `json:"origin"`
	Step      float32              `json:"step"`
	Width     int                  `json:"width"`
	Depth     int                  `json:"depth"`
	Range     noise.Range          `json:"range"`
	Decisions []architect.Decision `json:"decisions"`
}

// At returns the decision at (col, row).
func (h *Heightmap) At(col, row int) architect.Decision {
	return h.Decisions[row*h.Width+col]
}

// WriteHeightmap writes h as zstd-compressed JSON. The file is written to a
// temp path and renamed, so readers never see a partial dump.
func WriteHeightmap(path string, h *Heightmap) error {
	if len(h.Decisions) != h.Width*h.Depth {
		return fmt.Errorf("heightmap %dx%d holds %d decisions", h.Width, h.Depth, len(h.Decisions))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	if err := encode(f, h); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

func encode(f *os.File, h *Heightmap) error {
	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	bw := bufio.NewWriter(zw)
	if err := json.NewEncoder(bw).Encode(h); err != nil {
		zw.Close()
		return fmt.Errorf("encode heightmap: %w", err)
	}
	if err := bw.Flush(); err != nil {
		zw.Close()
		return fmt.Errorf("flush heightmap: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish zstd stream: %w", err)
	}
	return nil
}

// ReadHeightmap decodes a dump written by WriteHeightmap.
func ReadHeightmap(path string) (*Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()

	var h Heightmap
	if err := json.NewDecoder(zr).Decode(&h); err != nil {
		return nil, fmt.Errorf("decode heightmap: %w", err)
	}
	if len(h.Decisions) != h.Width*h.Depth {
		return nil, fmt.Errorf("heightmap %dx%d holds %d decisions", h.Width, h.Depth, len(h.Decisions))
	}
	return &h, nil
}
