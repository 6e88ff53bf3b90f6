package noise

// Simplex noise implementation based on the original algorithm by Ken Perlin,
// restricted to two dimensions.

const (
	skew2   = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6

	// cornerRadiusSq bounds the influence of each simplex corner.
	cornerRadiusSq = 0.5
	// simplexScale stretches the raw corner sum into [-1, 1].
	simplexScale = 70.0
)

// grad2 are the gradient directions hashed onto lattice corners: the four
// diagonals once and the four axis directions twice each, filling the
// twelve slots a mod-12 hash selects from.
var grad2 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

// CoherentNoise produces deterministic 2D simplex noise from a seed.
type CoherentNoise struct {
	seed int64
	perm [512]uint8
}

var _ Noise = (*CoherentNoise)(nil)

// NewCoherentNoise creates a noise field with a seeded permutation table.
// Equal seeds give bit-identical fields.
func NewCoherentNoise(seed int64) *CoherentNoise {
	n := &CoherentNoise{seed: seed}

	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}

	// Fisher-Yates shuffle driven by a 64-bit LCG.
	s := seed
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int((s>>33)&0x7FFFFFFF) % (i + 1)
		p[i], p[j] = p[j], p[i]
	}

	// Doubled so corner lookups never need to wrap.
	for i := range n.perm {
		n.perm[i] = p[i&255]
	}
	return n
}

// Seed returns the seed the permutation table was built from.
func (n *CoherentNoise) Seed() int64 {
	return n.seed
}

// Range is [-1, 1] for every seed.
func (n *CoherentNoise) Range() Range {
	return unitRange
}

// Sample returns the noise value at p.
func (n *CoherentNoise) Sample(p Point2f) float32 {
	return unitRange.Clamp(float32(n.eval(float64(p.X), float64(p.Y))))
}

func (n *CoherentNoise) eval(x, y float64) float64 {
	// Skew input space to find the simplex cell.
	s := (x + y) * skew2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Lower or upper triangle of the skewed cell.
	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1.0 + 2.0*unskew2
	y2 := y0 - 1.0 + 2.0*unskew2

	ii := i & 255
	jj := j & 255
	g0 := n.gradient(ii, jj)
	g1 := n.gradient(ii+i1, jj+j1)
	g2 := n.gradient(ii+1, jj+1)

	return simplexScale * (corner(g0, x0, y0) + corner(g1, x1, y1) + corner(g2, x2, y2))
}

// gradient hashes a wrapped lattice corner to a gradient index.
func (n *CoherentNoise) gradient(i, j int) int {
	return int(n.perm[i+int(n.perm[j])]) % len(grad2)
}

// corner is one corner's contribution: a quartic radial falloff times the
// gradient projected onto the offset. The falloff and its first two
// derivatives vanish at the cutoff radius.
func corner(g int, x, y float64) float64 {
	t := cornerRadiusSq - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * (grad2[g][0]*x + grad2[g][1]*y)
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
