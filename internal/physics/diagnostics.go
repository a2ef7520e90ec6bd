package physics

import (
	"math"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
)

// KineticEnergy returns the total kinetic energy of the system.
func KineticEnergy(ps []engine.Particle) float64 {
	ke := 0.0
	for i := range ps {
		ke += 0.5 * ps[i].Mass * ps[i].Vel.Dot(ps[i].Vel)
	}
	return ke
}

// PotentialEnergy returns the total gravitational potential energy,
// softened consistently with the force law.
func PotentialEnergy(ps []engine.Particle, g, softening float64) float64 {
	pe := 0.0
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			diff := ps[j].Pos.Sub(ps[i].Pos)
			dist := math.Sqrt(diff.Dot(diff) + softening)
			pe -= g * ps[i].Mass * ps[j].Mass / dist
		}
	}
	return pe
}

// TotalEnergy returns kinetic plus potential energy.
func TotalEnergy(ps []engine.Particle, p Params) float64 {
	return KineticEnergy(ps) + PotentialEnergy(ps, p.G, p.Softening)
}

// Momentum returns the total linear momentum.
func Momentum(ps []engine.Particle) engine.Vec2 {
	var mv engine.Vec2
	for i := range ps {
		mv = mv.Add(ps[i].Vel.Scale(ps[i].Mass))
	}
	return mv
}

// AngularMomentum returns the total angular momentum about the origin.
func AngularMomentum(ps []engine.Particle) float64 {
	L := 0.0
	for i := range ps {
		L += ps[i].Mass * (ps[i].Pos.X*ps[i].Vel.Y - ps[i].Pos.Y*ps[i].Vel.X)
	}
	return L
}
