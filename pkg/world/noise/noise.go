// Package noise provides seeded 2D coherent noise and octave composition.
//
// Every Noise in this package is immutable after construction and safe for
// concurrent use by multiple goroutines without locking.
package noise

import "errors"

// ErrInvalidConfig is wrapped by every construction error in this package.
var ErrInvalidConfig = errors.New("invalid noise configuration")

// Noise maps a point to a scalar that always lies within Range().
type Noise interface {
	Sample(p Point2f) float32
	Range() Range
}

// unitRange is the output range of every backend in this package.
var unitRange = Range{Min: -1, Max: 1}
