package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/physics"
)

const (
	DefaultParticles   = 2
	DefaultDt          = 1.0 / 60.0
	DefaultDuration    = 10.0
	DefaultSpawnExtent = 0.8
	DefaultMassMin     = 0.2
	DefaultMassMax     = 2.0
)

// Config is the full simulation configuration, loadable from YAML.
type Config struct {
	Particles   int     `yaml:"particles"`
	Seed        int64   `yaml:"seed"`
	G           float64 `yaml:"g"`
	Softening   float64 `yaml:"softening"`
	RadiusScale float64 `yaml:"radius_scale"`
	Dt          float64 `yaml:"dt"`
	Duration    float64 `yaml:"duration"`
	SpawnExtent float64 `yaml:"spawn_extent"`
	MassMin     float64 `yaml:"mass_min"`
	MassMax     float64 `yaml:"mass_max"`
}

func DefaultConfig() *Config {
	return &Config{
		Particles:   DefaultParticles,
		G:           physics.DefaultG,
		Softening:   physics.DefaultSoftening,
		RadiusScale: physics.DefaultRadiusScale,
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		SpawnExtent: DefaultSpawnExtent,
		MassMin:     DefaultMassMin,
		MassMax:     DefaultMassMax,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PhysicsParams maps the configuration to the physics constants.
func (c *Config) PhysicsParams() physics.Params {
	return physics.Params{
		G:           c.G,
		Softening:   c.Softening,
		RadiusScale: c.RadiusScale,
	}
}

// SpawnOptions maps the configuration to the initializer inputs.
func (c *Config) SpawnOptions() engine.SpawnOptions {
	return engine.SpawnOptions{
		N:       c.Particles,
		Seed:    c.Seed,
		Extent:  c.SpawnExtent,
		MassMin: c.MassMin,
		MassMax: c.MassMax,
	}
}
