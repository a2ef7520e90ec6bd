package physics

// Reference constants for the simulation.
const (
	DefaultG           = 1.0
	DefaultSoftening   = 0.01
	DefaultRadiusScale = 0.02
)

// Params holds the physical constants of a simulation. Softening is
// added directly to the squared pair distance in the force law, which
// keeps the denominator away from zero for near-coincident particles.
type Params struct {
	G           float64
	Softening   float64
	RadiusScale float64
}

func DefaultParams() Params {
	return Params{
		G:           DefaultG,
		Softening:   DefaultSoftening,
		RadiusScale: DefaultRadiusScale,
	}
}
