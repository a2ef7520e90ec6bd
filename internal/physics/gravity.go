package physics

import (
	"math"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
)

// Accelerations computes the gravitational acceleration of every
// particle from a snapshot of the current positions. The full i!=j
// double loop reads only pre-update positions, so the result does not
// depend on particle order within a frame.
//
// The squared distance is softened additively: distSq = |diff|^2 + eps.
// The direction diff/dist therefore carries a norm slightly below one
// for close pairs, which matches the reference force law.
func Accelerations(ps []engine.Particle, g, softening float64) []engine.Vec2 {
	acc := make([]engine.Vec2, len(ps))

	for i := range ps {
		for j := range ps {
			if i == j {
				continue
			}

			diff := ps[j].Pos.Sub(ps[i].Pos)
			distSq := diff.Dot(diff) + softening
			dist := math.Sqrt(distSq)

			force := g * ps[i].Mass * ps[j].Mass / distSq
			acc[i] = acc[i].Add(diff.Scale(1 / dist).Scale(force / ps[i].Mass))
		}
	}

	return acc
}

// ApplyGravity performs the velocity half of an explicit Euler step:
// every particle's velocity is kicked by its accumulated gravitational
// acceleration. Positions are not touched here; IntegratePositions
// runs after collision resolution.
func ApplyGravity(ps []engine.Particle, dt float64, p Params) {
	acc := Accelerations(ps, p.G, p.Softening)
	for i := range ps {
		ps[i].Vel = ps[i].Vel.Add(acc[i].Scale(dt))
	}
}

// IntegratePositions advances every particle by vel*dt using the
// post-collision velocity.
func IntegratePositions(ps []engine.Particle, dt float64) {
	for i := range ps {
		ps[i].Pos = ps[i].Pos.Add(ps[i].Vel.Scale(dt))
	}
}
