package config

import "sort"

// Presets are named parameter regimes. 1 + c1*c2 < 0 is Benjamin-Feir
// unstable and develops phase turbulence.
var Presets = map[string]*Config{
	"quiet": {
		C1: 1.0, C2: 1.0, H: 1.0, MSize: 64, IC: "random",
		SigmaR: 0, NoiseSpeed: 0.5, NoiseType: "additive",
		Noise:  NoiseConfig{Beta: 2, Std: 0.01},
		Solve:  SolveConfig{Dt: 0.1, NTimes: 500, SaveEvery: 50, Tolerance: 1e-4, MaxRetries: 1},
		Single: SingleConfig{Dt: 0.1, NIt: 3000, Runs: 1},
	},
	"turbulence": {
		C1: 2.0, C2: -1.2, H: 1.0, MSize: 128, IC: "random",
		SigmaR: 0.5, NoiseSpeed: 0.5, NoiseType: "multiplicative",
		Noise:  NoiseConfig{Beta: 2, Std: 0.01},
		Solve:  SolveConfig{Dt: 0.1, NTimes: 2000, SaveEvery: 100, Tolerance: 1e-4, MaxRetries: 1},
		Single: SingleConfig{Dt: 0.1, NIt: 3000, Runs: 1},
	},
	"spirals": {
		C1: 0.0, C2: 1.5, H: 1.0, MSize: 128, IC: "gaussian",
		SigmaR: 0.1, NoiseSpeed: 0.25, NoiseType: "additive",
		Noise:  NoiseConfig{Beta: 2, Std: 0.01},
		Solve:  SolveConfig{Dt: 0.1, NTimes: 2000, SaveEvery: 200, Tolerance: 1e-4, MaxRetries: 1},
		Single: SingleConfig{Dt: 0.1, NIt: 3000, Runs: 1},
	},
	"diffusive": {
		C1: 1.0, C2: 1.0, H: 1.0, MSize: 64, IC: "gaussian",
		SigmaR: 1.0, NoiseSpeed: 1.0, NoiseType: "diffusive",
		Noise:  NoiseConfig{Beta: 1, Std: 0.01},
		Solve:  SolveConfig{Dt: 0.05, NTimes: 1000, SaveEvery: 100, Tolerance: 1e-4, MaxRetries: 1},
		Single: SingleConfig{Dt: 0.1, NIt: 3000, Runs: 1},
	},
	"ensemble": {
		C1: 1.0, C2: 1.0, H: 1.0, MSize: 32, IC: "random",
		SigmaR: 0.2, NoiseSpeed: 0.5, NoiseType: "additive",
		Noise:  NoiseConfig{Beta: 2, Std: 0.01},
		Solve:  SolveConfig{Dt: 0.1, NTimes: 100, SaveEvery: 10, Tolerance: 1e-4, MaxRetries: 1},
		Single: SingleConfig{Dt: 0.1, NIt: 3000, Beta: 1, Runs: 16},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
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
