package metrics

import (
	"math"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/physics"
)

// Energy reports the mean total (kinetic + softened potential) energy
// over a run.
type Energy struct {
	params  physics.Params
	samples int
	total   float64
}

func NewEnergy(params physics.Params) *Energy {
	return &Energy{params: params}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(ps []engine.Particle, t float64) {
	e.total += physics.TotalEnergy(ps, e.params)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift tracks the maximum relative deviation of total energy
// from its value at the first observed frame.
type EnergyDrift struct {
	params   physics.Params
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(params physics.Params) *EnergyDrift {
	return &EnergyDrift{params: params}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(ps []engine.Particle, t float64) {
	energy := physics.TotalEnergy(ps, e.params)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the maximum deviation of total linear momentum
// magnitude from the first observed frame. Gravity and elastic
// collisions are both momentum-preserving, so growth here points at an
// integration bug.
type MomentumDrift struct {
	initial  engine.Vec2
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(ps []engine.Particle, t float64) {
	mv := physics.Momentum(ps)

	if m.samples == 0 {
		m.initial = mv
	}
	m.samples++

	drift := mv.Sub(m.initial).Len()
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = engine.Vec2{}
	m.maxDrift = 0
	m.samples = 0
}
