package engine

// Particle is a point mass with position and velocity in a roughly
// [-1,1] world frame. Mass is strictly positive and constant for the
// lifetime of the particle; it also drives the rendered sprite size
// and color blend.
type Particle struct {
	Pos  Vec2
	Vel  Vec2
	Mass float64
}

// Radius returns the collision radius for the given radius scale.
func (p Particle) Radius(scale float64) float64 {
	return p.Mass * scale
}

// IsFinite reports whether position and velocity contain no NaN or Inf.
func (p Particle) IsFinite() bool {
	return p.Pos.IsFinite() && p.Vel.IsFinite()
}

// Clone returns a deep copy of the particle slice.
func Clone(ps []Particle) []Particle {
	c := make([]Particle, len(ps))
	copy(c, ps)
	return c
}

// Valid reports whether every particle in the slice has finite state.
func Valid(ps []Particle) bool {
	for i := range ps {
		if !ps[i].IsFinite() {
			return false
		}
	}
	return true
}
