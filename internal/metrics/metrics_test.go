package metrics

import (
	"math"
	"testing"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/physics"
)

func staticPair() []engine.Particle {
	return []engine.Particle{
		{Pos: engine.Vec2{X: -0.1, Y: 0}, Mass: 1.0},
		{Pos: engine.Vec2{X: 0.1, Y: 0}, Mass: 1.0},
	}
}

func TestEnergyMatchesDiagnostics(t *testing.T) {
	params := physics.DefaultParams()
	m := NewEnergy(params)
	ps := staticPair()

	m.Observe(ps, 0)
	expected := physics.TotalEnergy(ps, params)

	if math.Abs(m.Value()-expected) > 1e-12 {
		t.Errorf("expected energy %f, got %f", expected, m.Value())
	}
}

func TestEnergyReset(t *testing.T) {
	m := NewEnergy(physics.DefaultParams())
	m.Observe(staticPair(), 0)
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDriftZeroForUnchangedState(t *testing.T) {
	m := NewEnergyDrift(physics.DefaultParams())
	ps := staticPair()

	m.Observe(ps, 0)
	m.Observe(ps, 0.016)

	if m.Value() != 0 {
		t.Errorf("expected zero drift for identical frames, got %g", m.Value())
	}
}

func TestEnergyDriftDetectsChange(t *testing.T) {
	m := NewEnergyDrift(physics.DefaultParams())
	ps := staticPair()

	m.Observe(ps, 0)
	ps[0].Vel = engine.Vec2{X: 1, Y: 0}
	m.Observe(ps, 0.016)

	if m.Value() <= 0 {
		t.Error("expected positive drift after energy injection")
	}
}

func TestMomentumDriftConservedCollision(t *testing.T) {
	// A resolved collision must not register any momentum drift.
	ps := []engine.Particle{
		{Pos: engine.Vec2{X: 0, Y: 0}, Vel: engine.Vec2{X: 0.4, Y: 0}, Mass: 1.0},
		{Pos: engine.Vec2{X: 0.03, Y: 0}, Vel: engine.Vec2{X: -0.4, Y: 0}, Mass: 2.0},
	}
	m := NewMomentumDrift()

	m.Observe(ps, 0)
	physics.ResolveCollisions(ps, physics.DefaultRadiusScale)
	m.Observe(ps, 0.016)

	if m.Value() > 1e-12 {
		t.Errorf("expected zero momentum drift across collision, got %g", m.Value())
	}
}
