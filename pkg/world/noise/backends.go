package noise

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Backend names accepted by NewBackend.
const (
	KindSimplex     = "simplex"
	KindOpenSimplex = "opensimplex"
	KindPerlin      = "perlin"
)

// NewBackend returns the base noise of the given kind. An empty kind selects
// the simplex implementation in this package.
func NewBackend(kind string, seed int64) (Noise, error) {
	switch kind {
	case "", KindSimplex:
		return NewCoherentNoise(seed), nil
	case KindOpenSimplex:
		return NewOpenSimplex(seed), nil
	case KindPerlin:
		return NewPerlin(seed), nil
	default:
		return nil, fmt.Errorf("%w: unknown noise kind %q", ErrInvalidConfig, kind)
	}
}

// OpenSimplex adapts opensimplex-go to the Noise interface.
type OpenSimplex struct {
	noise opensimplex.Noise32
}

// NewOpenSimplex creates an OpenSimplex field from a seed.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{noise: opensimplex.New32(seed)}
}

func (o *OpenSimplex) Sample(p Point2f) float32 {
	return unitRange.Clamp(o.noise.Eval2(p.X, p.Y))
}

func (o *OpenSimplex) Range() Range {
	return unitRange
}

// perlinRange bounds single-octave 2D Perlin noise with unit gradients:
// the interpolated corner contributions never exceed sqrt(2)/2.
var perlinRange = Range{Min: -math.Sqrt2 / 2, Max: math.Sqrt2 / 2}

// Perlin adapts a single-octave go-perlin field to the Noise interface.
// Octaves are layered by OctavedNoise, not by go-perlin itself.
type Perlin struct {
	noise *perlin.Perlin
}

// NewPerlin creates a classic Perlin field from a seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{noise: perlin.NewPerlin(2, 2, 1, seed)}
}

func (p *Perlin) Sample(pt Point2f) float32 {
	return perlinRange.Clamp(float32(p.noise.Noise2D(float64(pt.X), float64(pt.Y))))
}

func (p *Perlin) Range() Range {
	return perlinRange
}
