package sim

import (
	"context"
	"fmt"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/physics"
)

// Simulator owns the particle slice for the lifetime of a run. It is
// the single writer; readers (renderer, metrics, observers) only see
// the state between frames. Not safe for concurrent use.
type Simulator struct {
	particles []engine.Particle
	params    physics.Params
	metrics   []Metric
	observers []Observer
	t         float64
}

func New(particles []engine.Particle, params physics.Params) *Simulator {
	return &Simulator{
		particles: particles,
		params:    params,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Particles returns the live particle slice. Callers must not mutate
// it; the frame step is the only writer.
func (s *Simulator) Particles() []engine.Particle { return s.particles }

// Time returns the accumulated simulation time.
func (s *Simulator) Time() float64 { return s.t }

// Step advances the simulation by one frame of duration dt.
func (s *Simulator) Step(dt float64) {
	physics.Step(s.particles, dt, s.params)
	s.t += dt
}

// Reset replaces the particle set and rewinds the clock.
func (s *Simulator) Reset(particles []engine.Particle) {
	s.particles = particles
	s.t = 0
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Run executes a fixed-timestep run, recording every frame. Metrics
// observe the state before each step, matching how a live renderer
// reads the frame it is about to display.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Frames:  make([][]engine.Particle, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result.Frames = append(result.Frames, engine.Clone(s.particles))
	result.Times = append(result.Times, s.t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(s.particles, s.t)
		}
		for _, obs := range s.observers {
			obs.OnFrame(s.particles, s.t)
		}

		s.Step(cfg.Dt)

		if cfg.ValidateState && !engine.Valid(s.particles) {
			err := FrameError{Time: s.t, Step: i, Message: engine.ErrNonFinite.Error()}
			result.Errors = append(result.Errors, err)
			break
		}

		result.StepsTaken++
		result.Frames = append(result.Frames, engine.Clone(s.particles))
		result.Times = append(result.Times, s.t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps the simulation until the duration elapses or
// the callback returns false. The callback sees each frame before it
// is advanced.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(ps []engine.Particle, t float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	for s.t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(s.particles, s.t) {
			return nil
		}

		s.Step(cfg.Dt)

		if cfg.ValidateState && !engine.Valid(s.particles) {
			return fmt.Errorf("sim: %w at t=%.4f", engine.ErrNonFinite, s.t)
		}
	}

	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("sim: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("sim: duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
