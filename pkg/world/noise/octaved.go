package noise

import (
	"fmt"
	"math"
)

// Octave is one frequency/amplitude scaled evaluation of a base noise.
// By convention amplitudes fall (persistence) and frequencies rise
// (lacunarity) from one octave to the next, but nothing here requires it.
type Octave struct {
	Frequency float32 `json:"frequency" yaml:"frequency"`
	Amplitude float32 `json:"amplitude" yaml:"amplitude"`
}

// OctavedNoise layers several octaves of a base noise into fractal noise.
// The weighted sum is divided by the total amplitude, so the result stays
// within the base range.
type OctavedNoise struct {
	base    Noise
	octaves []Octave
	total   float32
}

var _ Noise = (*OctavedNoise)(nil)

// NewOctavedNoise validates octaves and wraps base. The octave slice is
// copied; base is only ever read.
func NewOctavedNoise(base Noise, octaves []Octave) (*OctavedNoise, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: nil base noise", ErrInvalidConfig)
	}
	if len(octaves) == 0 {
		return nil, fmt.Errorf("%w: empty octave list", ErrInvalidConfig)
	}

	var total float32
	for i, o := range octaves {
		if !finite(o.Frequency) || o.Frequency <= 0 {
			return nil, fmt.Errorf("%w: octave %d: frequency %v must be finite and positive", ErrInvalidConfig, i, o.Frequency)
		}
		if !finite(o.Amplitude) || o.Amplitude <= 0 {
			return nil, fmt.Errorf("%w: octave %d: amplitude %v must be finite and positive", ErrInvalidConfig, i, o.Amplitude)
		}
		total += o.Amplitude
	}
	if !finite(total) {
		return nil, fmt.Errorf("%w: amplitude sum overflows", ErrInvalidConfig)
	}

	return &OctavedNoise{
		base:    base,
		octaves: append([]Octave(nil), octaves...),
		total:   total,
	}, nil
}

// FractalOctaves builds count octaves starting at frequency with amplitude 1,
// multiplying amplitude by persistence and frequency by lacunarity each step.
func FractalOctaves(count int, frequency, persistence, lacunarity float32) ([]Octave, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: octave count %d must be at least 1", ErrInvalidConfig, count)
	}

	octaves := make([]Octave, count)
	start, amplitude := frequency, float32(1)
	for i := range octaves {
		if !finite(frequency) || frequency <= 0 || !finite(amplitude) || amplitude <= 0 {
			return nil, fmt.Errorf("%w: fractal octave %d has frequency %v amplitude %v (frequency %v, persistence %v, lacunarity %v)",
				ErrInvalidConfig, i, frequency, amplitude, start, persistence, lacunarity)
		}
		octaves[i] = Octave{Frequency: frequency, Amplitude: amplitude}
		amplitude *= persistence
		frequency *= lacunarity
	}
	return octaves, nil
}

// Octaves returns a copy of the octave list.
func (n *OctavedNoise) Octaves() []Octave {
	return append([]Octave(nil), n.octaves...)
}

// Range is the base noise range.
func (n *OctavedNoise) Range() Range {
	return n.base.Range()
}

// Sample returns the normalized octave sum at p.
func (n *OctavedNoise) Sample(p Point2f) float32 {
	var sum float32
	for _, o := range n.octaves {
		sum += n.base.Sample(p.Scale(o.Frequency)) * o.Amplitude
	}
	// Rounding can push a convex combination a hair past the bounds.
	return n.base.Range().Clamp(sum / n.total)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
