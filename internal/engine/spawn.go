package engine

import "math/rand"

// SpawnOptions controls the initial particle distribution: positions
// uniform in [-Extent, Extent]^2, masses uniform in [MassMin, MassMax],
// velocities zero.
type SpawnOptions struct {
	N       int
	Seed    int64
	Extent  float64
	MassMin float64
	MassMax float64
}

// DefaultSpawnOptions returns the reference spawn distribution.
func DefaultSpawnOptions(n int, seed int64) SpawnOptions {
	return SpawnOptions{
		N:       n,
		Seed:    seed,
		Extent:  0.8,
		MassMin: 0.2,
		MassMax: 2.0,
	}
}

// Spawn creates the initial particle set. The particle count is fixed
// for the lifetime of the simulation; no particle is created or
// destroyed afterwards.
func Spawn(opt SpawnOptions) ([]Particle, error) {
	if opt.N <= 0 {
		return nil, ErrParticleCount
	}
	if opt.MassMin <= 0 || opt.MassMax < opt.MassMin {
		return nil, ErrMassRange
	}

	rng := rand.New(rand.NewSource(opt.Seed))
	ps := make([]Particle, opt.N)
	for i := range ps {
		ps[i] = Particle{
			Pos: Vec2{
				X: -opt.Extent + rng.Float64()*2*opt.Extent,
				Y: -opt.Extent + rng.Float64()*2*opt.Extent,
			},
			Mass: opt.MassMin + rng.Float64()*(opt.MassMax-opt.MassMin),
		}
	}
	return ps, nil
}
