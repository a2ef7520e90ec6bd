package sim

import (
	"fmt"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
)

// Metric observes particle state once per frame and reduces it to a
// single value at the end of a run.
type Metric interface {
	Name() string
	Observe(ps []engine.Particle, t float64)
	Value() float64
	Reset()
}

// Observer receives the particle state after every completed frame.
type Observer interface {
	OnFrame(ps []engine.Particle, t float64)
}

// Config controls a headless fixed-timestep run.
type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            1.0 / 60.0,
		Duration:      10.0,
		ValidateState: true,
	}
}

// Result holds the recorded trajectory of a run.
type Result struct {
	Frames     [][]engine.Particle
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// FrameError marks a frame at which the simulation state went bad.
type FrameError struct {
	Time    float64
	Step    int
	Message string
}

func (e FrameError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
