// Package engine defines the particle data model shared by the
// physics step, the renderers, and the recorder: 2D vectors, the
// Particle value type, finite-state validation, and seeded spawning of
// the initial particle set.
//
// The particle slice is created once at startup and owned by a single
// writer for the lifetime of the process; see the sim package.
package engine
