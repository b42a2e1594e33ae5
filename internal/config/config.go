package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ncgl/internal/dynamo"
	"github.com/san-kum/ncgl/internal/integrators"
	"github.com/san-kum/ncgl/internal/sim"
)

const (
	DefaultDt         = 0.1
	DefaultNTimes     = 1000
	DefaultSaveEvery  = 100
	DefaultMSize      = 128
	DefaultNoiseSpeed = 0.5
	DefaultBeta       = 2.0
	DefaultStd        = 0.01
	DefaultNIt        = 3000
)

type Config struct {
	C1         float64      `yaml:"c1"`
	C2         float64      `yaml:"c2"`
	H          float64      `yaml:"h"`
	MSize      int          `yaml:"msize"`
	IC         string       `yaml:"ic"`
	SigmaR     float64      `yaml:"sigma_r"`
	NoiseSpeed float64      `yaml:"noise_speed"`
	NoiseType  string       `yaml:"noise_type"`
	Noise      NoiseConfig  `yaml:"noise"`
	Seed       *int64       `yaml:"seed,omitempty"`
	Solve      SolveConfig  `yaml:"solve"`
	Single     SingleConfig `yaml:"single"`
}

type NoiseConfig struct {
	Beta float64 `yaml:"beta"`
	Std  float64 `yaml:"std"`
}

type SolveConfig struct {
	Dt         float64 `yaml:"dt"`
	NTimes     int     `yaml:"ntimes"`
	SaveEvery  int     `yaml:"save_every"`
	Tolerance  float64 `yaml:"tolerance"`
	MaxRetries int     `yaml:"max_retries"`
}

// SingleConfig drives the 0D runs.
type SingleConfig struct {
	Dt   float64 `yaml:"dt"`
	NIt  int     `yaml:"nit"`
	Beta float64 `yaml:"beta"`
	Runs int     `yaml:"runs"`
}

func DefaultConfig() *Config {
	return &Config{
		C1:         1.0,
		C2:         1.0,
		H:          1.0,
		MSize:      DefaultMSize,
		IC:         "random",
		SigmaR:     1.0,
		NoiseSpeed: DefaultNoiseSpeed,
		NoiseType:  "multiplicative",
		Noise: NoiseConfig{
			Beta: DefaultBeta,
			Std:  DefaultStd,
		},
		Solve: SolveConfig{
			Dt:         DefaultDt,
			NTimes:     DefaultNTimes,
			SaveEvery:  DefaultSaveEvery,
			Tolerance:  integrators.DefaultTolerance,
			MaxRetries: 1,
		},
		Single: SingleConfig{
			Dt:   DefaultDt,
			NIt:  DefaultNIt,
			Runs: 1,
		},
	}
}

// SetSeed pins the seed, including an explicit zero.
func (c *Config) SetSeed(seed int64) { c.Seed = &seed }

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

// Params converts the file representation into validated simulator params.
func (c *Config) Params() (sim.Params, error) {
	ic, err := dynamo.ParseICMode(c.IC)
	if err != nil {
		return sim.Params{}, err
	}
	nt, err := dynamo.ParseNoiseType(c.NoiseType)
	if err != nil {
		return sim.Params{}, err
	}

	p := sim.DefaultParams()
	p.C1, p.C2, p.H = c.C1, c.C2, c.H
	p.MSize = c.MSize
	p.IC = ic
	p.SigmaR = c.SigmaR
	p.NoiseSpeed = c.NoiseSpeed
	p.NoiseType = nt
	p.NoiseArgs = sim.NoiseArgs{Beta: c.Noise.Beta, Std: c.Noise.Std}
	if c.Seed != nil {
		p.Seed = *c.Seed
	}

	if err := p.Validate(); err != nil {
		return sim.Params{}, err
	}
	return p, nil
}

// SaveIndices lists the steps to snapshot: every SaveEvery-th step and the
// last one. A non-positive SaveEvery keeps only the last step.
func (c *Config) SaveIndices() []int {
	n := c.Solve.NTimes
	if n <= 0 {
		return nil
	}
	var idx []int
	if c.Solve.SaveEvery > 0 {
		for i := c.Solve.SaveEvery - 1; i < n-1; i += c.Solve.SaveEvery {
			idx = append(idx, i)
		}
	}
	return append(idx, n-1)
}

func (c *Config) SolveOptions() []sim.SolveOption {
	return []sim.SolveOption{
		sim.WithTolerance(c.Solve.Tolerance),
		sim.WithMaxRetries(c.Solve.MaxRetries),
	}
}
