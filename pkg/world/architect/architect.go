// Package architect turns noise samples into terrain decisions.
package architect

import (
	"fmt"

	"github.com/OCharnyshevich/worldgen/pkg/world/noise"
)

// ErrInvalidConfig is wrapped by every construction error in this package.
// It also matches noise.ErrInvalidConfig under errors.Is.
var ErrInvalidConfig = fmt.Errorf("invalid architect configuration: %w", noise.ErrInvalidConfig)

// Decision is what an Architect settles on for one column of the world.
type Decision struct {
	Height   float32  `json:"height"`
	Material Material `json:"material"`
}

// Architect decides the terrain at a world coordinate. Implementations are
// pure functions of their construction-time configuration and are safe for
// concurrent use.
type Architect interface {
	Decide(p noise.Point2f) Decision
}

// Flat decides the same column everywhere.
type Flat struct {
	Height   float32
	Material Material
}

var _ Architect = Flat{}

func (f Flat) Decide(noise.Point2f) Decision {
	return Decision{Height: f.Height, Material: f.Material}
}
