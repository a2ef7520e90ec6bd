package physics

import (
	"math"
	"testing"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
)

func overlappingPair() []engine.Particle {
	// radii 0.02 and 0.04 at scale 0.02, separation 0.03 < 0.06
	return []engine.Particle{
		{Pos: engine.Vec2{X: 0, Y: 0}, Vel: engine.Vec2{X: 0.5, Y: 0.2}, Mass: 1.0},
		{Pos: engine.Vec2{X: 0.03, Y: 0}, Vel: engine.Vec2{X: -0.3, Y: 0.1}, Mass: 2.0},
	}
}

func TestCollisionConservesMomentum(t *testing.T) {
	ps := overlappingPair()
	before := Momentum(ps)

	ResolveCollisions(ps, DefaultRadiusScale)

	after := Momentum(ps)
	if math.Abs(after.X-before.X) > 1e-12 || math.Abs(after.Y-before.Y) > 1e-12 {
		t.Errorf("momentum not conserved: before (%.12f, %.12f), after (%.12f, %.12f)",
			before.X, before.Y, after.X, after.Y)
	}
}

func TestCollisionConservesKineticEnergy(t *testing.T) {
	ps := overlappingPair()
	before := KineticEnergy(ps)

	ResolveCollisions(ps, DefaultRadiusScale)

	after := KineticEnergy(ps)
	if math.Abs(after-before) > 1e-12 {
		t.Errorf("kinetic energy not conserved: before %.12f, after %.12f", before, after)
	}
}

func TestCollisionResolvesOverlap(t *testing.T) {
	ps := overlappingPair()
	rSum := ps[0].Radius(DefaultRadiusScale) + ps[1].Radius(DefaultRadiusScale)

	ResolveCollisions(ps, DefaultRadiusScale)

	dist := ps[1].Pos.Sub(ps[0].Pos).Len()
	if dist < rSum-1e-9 {
		t.Errorf("overlap not resolved: distance %.9f, radius sum %.9f", dist, rSum)
	}
}

func TestCollisionTangentialVelocityUntouched(t *testing.T) {
	// Contact normal is +x, so y components must pass through unchanged.
	ps := overlappingPair()
	vy0, vy1 := ps[0].Vel.Y, ps[1].Vel.Y

	ResolveCollisions(ps, DefaultRadiusScale)

	if ps[0].Vel.Y != vy0 || ps[1].Vel.Y != vy1 {
		t.Errorf("tangential component changed: got %.9f/%.9f, want %.9f/%.9f",
			ps[0].Vel.Y, ps[1].Vel.Y, vy0, vy1)
	}
}

func TestCollisionPairOrderSymmetry(t *testing.T) {
	fwd := overlappingPair()
	rev := []engine.Particle{fwd[1], fwd[0]}

	ResolveCollisions(fwd, DefaultRadiusScale)
	ResolveCollisions(rev, DefaultRadiusScale)

	// rev[1] is the same body as fwd[0]; outcomes must match regardless
	// of which index the body occupies.
	pairs := []struct {
		a, b engine.Particle
	}{
		{fwd[0], rev[1]},
		{fwd[1], rev[0]},
	}
	for _, pr := range pairs {
		if math.Abs(pr.a.Vel.X-pr.b.Vel.X) > 1e-12 || math.Abs(pr.a.Vel.Y-pr.b.Vel.Y) > 1e-12 {
			t.Errorf("velocity depends on iteration order: (%.12f, %.12f) vs (%.12f, %.12f)",
				pr.a.Vel.X, pr.a.Vel.Y, pr.b.Vel.X, pr.b.Vel.Y)
		}
		if math.Abs(pr.a.Pos.X-pr.b.Pos.X) > 1e-12 || math.Abs(pr.a.Pos.Y-pr.b.Pos.Y) > 1e-12 {
			t.Errorf("position depends on iteration order: (%.12f, %.12f) vs (%.12f, %.12f)",
				pr.a.Pos.X, pr.a.Pos.Y, pr.b.Pos.X, pr.b.Pos.Y)
		}
	}
}

func TestCollisionCoincidentCentersSkipped(t *testing.T) {
	ps := []engine.Particle{
		{Pos: engine.Vec2{X: 0.1, Y: 0.1}, Vel: engine.Vec2{X: 0.2, Y: 0}, Mass: 1.0},
		{Pos: engine.Vec2{X: 0.1, Y: 0.1}, Vel: engine.Vec2{X: -0.2, Y: 0}, Mass: 1.5},
	}

	ResolveCollisions(ps, DefaultRadiusScale)

	if !engine.Valid(ps) {
		t.Fatal("coincident pair produced non-finite state")
	}
	// The pair is skipped entirely this frame: no impulse, no correction.
	if ps[0].Vel.X != 0.2 || ps[1].Vel.X != -0.2 {
		t.Errorf("expected untouched velocities, got %.6f and %.6f", ps[0].Vel.X, ps[1].Vel.X)
	}
}

func TestCollisionNonOverlappingPairIgnored(t *testing.T) {
	ps := []engine.Particle{
		{Pos: engine.Vec2{X: -0.1, Y: 0}, Vel: engine.Vec2{X: 1, Y: 0}, Mass: 1.0},
		{Pos: engine.Vec2{X: 0.1, Y: 0}, Vel: engine.Vec2{X: -1, Y: 0}, Mass: 1.0},
	}

	ResolveCollisions(ps, DefaultRadiusScale)

	if ps[0].Vel.X != 1 || ps[1].Vel.X != -1 {
		t.Error("separated pair should not collide")
	}
}
