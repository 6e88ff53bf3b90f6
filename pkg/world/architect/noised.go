package architect

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/worldgen/pkg/world/noise"
)

// Band assigns Material to every height strictly below Below.
type Band struct {
	Below    float32  `json:"below" yaml:"below"`
	Material Material `json:"material" yaml:"material"`
}

// Mapping converts a noise value into world units and a surface material.
//
//	height = Offset + value*HeightScale
//
// Bands are checked in ascending order of Below; heights at or above the
// last band get Top.
type Mapping struct {
	HeightScale float32  `json:"height_scale" yaml:"height_scale"`
	Offset      float32  `json:"offset" yaml:"offset"`
	Bands       []Band   `json:"bands,omitempty" yaml:"bands,omitempty"`
	Top         Material `json:"top" yaml:"top"`
}

// Noised is an Architect driven by a single Noise.
type Noised struct {
	noise   noise.Noise
	mapping Mapping
	heights noise.Range
}

var _ Architect = (*Noised)(nil)

// NewNoised validates m against n once so that Decide never fails.
func NewNoised(n noise.Noise, m Mapping) (*Noised, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil noise", ErrInvalidConfig)
	}
	if !finite(m.HeightScale) {
		return nil, fmt.Errorf("%w: height scale %v is not finite", ErrInvalidConfig, m.HeightScale)
	}
	if !finite(m.Offset) {
		return nil, fmt.Errorf("%w: offset %v is not finite", ErrInvalidConfig, m.Offset)
	}

	r := n.Range()
	lo := m.Offset + float32(r.Min*m.HeightScale)
	hi := m.Offset + float32(r.Max*m.HeightScale)
	if lo > hi {
		lo, hi = hi, lo
	}
	if !finite(lo) || !finite(hi) {
		return nil, fmt.Errorf("%w: heights [%v, %v] overflow", ErrInvalidConfig, lo, hi)
	}

	for i, b := range m.Bands {
		if !finite(b.Below) {
			return nil, fmt.Errorf("%w: band %d threshold %v is not finite", ErrInvalidConfig, i, b.Below)
		}
		if i > 0 && b.Below <= m.Bands[i-1].Below {
			return nil, fmt.Errorf("%w: band %d threshold %v does not rise above %v", ErrInvalidConfig, i, b.Below, m.Bands[i-1].Below)
		}
	}
	m.Bands = append([]Band(nil), m.Bands...)

	return &Noised{
		noise:   n,
		mapping: m,
		heights: noise.Range{Min: lo, Max: hi},
	}, nil
}

// Decide samples the noise at p and maps it to a Decision.
func (a *Noised) Decide(p noise.Point2f) Decision {
	h := a.Height(a.noise.Sample(p))
	return Decision{Height: h, Material: a.classify(h)}
}

// Height maps a raw noise value to world units.
func (a *Noised) Height(value float32) float32 {
	// The explicit conversion keeps the product from being fused with the add.
	return a.mapping.Offset + float32(value*a.mapping.HeightScale)
}

// HeightRange is the range of heights Decide can return.
func (a *Noised) HeightRange() noise.Range {
	return a.heights
}

// Noise returns the underlying noise source.
func (a *Noised) Noise() noise.Noise {
	return a.noise
}

func (a *Noised) classify(h float32) Material {
	for _, b := range a.mapping.Bands {
		if h < b.Below {
			return b.Material
		}
	}
	return a.mapping.Top
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
