package config

import "sort"

var Presets = map[string]*Config{
	"pair": {
		Particles: 2, Dt: DefaultDt, Duration: 10.0,
		G: 1.0, Softening: 0.01, RadiusScale: 0.02,
		SpawnExtent: 0.8, MassMin: 0.2, MassMax: 2.0,
	},
	"triad": {
		Particles: 3, Dt: DefaultDt, Duration: 20.0,
		G: 1.0, Softening: 0.01, RadiusScale: 0.02,
		SpawnExtent: 0.6, MassMin: 0.5, MassMax: 1.5,
	},
	"cluster": {
		Particles: 64, Dt: DefaultDt, Duration: 30.0,
		G: 1.0, Softening: 0.01, RadiusScale: 0.02,
		SpawnExtent: 0.8, MassMin: 0.2, MassMax: 2.0,
	},
	"giants": {
		Particles: 8, Dt: DefaultDt, Duration: 30.0,
		G: 1.0, Softening: 0.01, RadiusScale: 0.03,
		SpawnExtent: 0.7, MassMin: 1.5, MassMax: 2.0,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
