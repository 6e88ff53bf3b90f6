package architect

import "fmt"

// Material classifies the surface of a column.
type Material uint8

const (
	MaterialWater Material = iota
	MaterialSand
	MaterialGrass
	MaterialStone
	MaterialSnow
)

var materialNames = [...]string{
	MaterialWater: "water",
	MaterialSand:  "sand",
	MaterialGrass: "grass",
	MaterialStone: "stone",
	MaterialSnow:  "snow",
}

func (m Material) String() string {
	if int(m) < len(materialNames) {
		return materialNames[m]
	}
	return fmt.Sprintf("material(%d)", uint8(m))
}

// ParseMaterial is the inverse of Material.String.
func ParseMaterial(s string) (Material, error) {
	for i, name := range materialNames {
		if name == s {
			return Material(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown material %q", ErrInvalidConfig, s)
}

func (m Material) MarshalText() ([]byte, error) {
	if int(m) >= len(materialNames) {
		return nil, fmt.Errorf("%w: unknown material %d", ErrInvalidConfig, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Material) UnmarshalText(text []byte) error {
	parsed, err := ParseMaterial(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
