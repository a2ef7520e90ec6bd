package physics

import "github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"

// Step advances the system by one frame of duration dt: gravity kicks
// velocities, collisions are resolved (mutating velocity and, for the
// penetration correction, position directly), then positions integrate
// the post-collision velocities. The ordering is the reference
// behavior and must not be rearranged.
func Step(ps []engine.Particle, dt float64, p Params) {
	ApplyGravity(ps, dt, p)
	ResolveCollisions(ps, p.RadiusScale)
	IntegratePositions(ps, dt)
}
