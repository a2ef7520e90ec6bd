// Package physics implements the per-frame dynamics of the particle
// system: pairwise gravitational attraction with a softened
// inverse-square law, elastic circle-circle collision response, and
// explicit Euler integration.
//
// A frame is advanced with [Step]:
//
//	params := physics.DefaultParams()
//	physics.Step(particles, dt, params)
//
// Step mutates the particle slice in place and is single-threaded; a
// caller that hands the particles to a renderer must do so only after
// Step returns, so the renderer never observes a half-updated frame.
//
// Energy and momentum diagnostics over a particle slice use the same
// softening as the force calculation, so drift measurements are
// self-consistent.
package physics
