package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/ncgl/internal/analysis"
	"github.com/san-kum/ncgl/internal/config"
	"github.com/san-kum/ncgl/internal/metrics"
	"github.com/san-kum/ncgl/internal/noise"
	"github.com/san-kum/ncgl/internal/sim"
)

// resolveConfig layers defaults, preset, config file and explicit flags, in
// that order of increasing priority.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("c1") {
		cfg.C1 = c1
	}
	if flags.Changed("c2") {
		cfg.C2 = c2
	}
	if flags.Changed("sigma") {
		cfg.SigmaR = sigmaR
	}
	if flags.Changed("noise-type") {
		cfg.NoiseType = noiseType
	}
	// an unset seed is drawn from the clock, an explicit one is kept
	if flags.Changed("seed") || cfg.Seed == nil {
		cfg.SetSeed(seed)
	}
	if flags.Changed("h") {
		cfg.H = h
	}
	if flags.Changed("msize") {
		cfg.MSize = msize
	}
	if flags.Changed("ic") {
		cfg.IC = ic
	}
	if flags.Changed("noise-speed") {
		cfg.NoiseSpeed = noiseSpeed
	}
	if flags.Changed("std") {
		cfg.Noise.Std = std
	}
	if flags.Changed("ntimes") {
		cfg.Solve.NTimes = ntimes
	}
	if flags.Changed("save-every") {
		cfg.Solve.SaveEvery = saveEvery
	}
	if flags.Changed("tolerance") {
		cfg.Solve.Tolerance = tolerance
	}
	if flags.Changed("max-retries") {
		cfg.Solve.MaxRetries = maxRetries
	}
	if flags.Changed("nit") {
		cfg.Single.NIt = nit
	}
	if flags.Changed("runs") {
		cfg.Single.Runs = runs
	}

	switch cmd.Name() {
	case "run":
		if flags.Changed("dt") {
			cfg.Solve.Dt = dt
		}
		if flags.Changed("beta") {
			cfg.Noise.Beta = beta
		}
	case "single", "noisy":
		if flags.Changed("dt") {
			cfg.Single.Dt = singleDt
		}
		if flags.Changed("beta") {
			cfg.Single.Beta = forcingBeta
		}
	}

	return cfg, nil
}

func newSimulator(cmd *cobra.Command) (*config.Config, *sim.Simulator, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, nil, err
	}
	s, err := sim.New(params, sim.WithLogger(slog.Default()))
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func runSpatial(cmd *cobra.Command, args []string) error {
	cfg, s, err := newSimulator(cmd)
	if err != nil {
		return err
	}
	for _, m := range metrics.Defaults() {
		s.AddMetric(m)
	}
	s.AddObserver(newProgressLogger(slog.Default(), 10))

	slog.Info("running adaptive solve",
		"msize", cfg.MSize, "ntimes", cfg.Solve.NTimes, "dt", cfg.Solve.Dt,
		"noise", cfg.NoiseType, "sigma", cfg.SigmaR, "seed", *cfg.Seed)
	start := time.Now()

	trace, err := s.SolveAdaptive(context.Background(), cfg.Solve.Dt, cfg.Solve.NTimes, cfg.SaveIndices(), cfg.SolveOptions()...)
	if err != nil {
		return err
	}

	printTrace(os.Stdout, trace, time.Since(start))
	return nil
}

func a0FromFlags(cmd *cobra.Command) *complex128 {
	if !cmd.Flags().Changed("a0-re") && !cmd.Flags().Changed("a0-im") {
		return nil
	}
	a := complex(a0Re, a0Im)
	return &a
}

func runSingle(cmd *cobra.Command, args []string) error {
	cfg, s, err := newSimulator(cmd)
	if err != nil {
		return err
	}

	states, err := s.ChainedSingleReaction(a0FromFlags(cmd), cfg.Single.Dt, cfg.Single.NIt)
	if err != nil {
		return err
	}

	printAmplitudes(os.Stdout, "reaction", [][]complex128{states}, cfg.Single.Dt)
	return nil
}

func runNoisy(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	n := cfg.Single.Runs
	if n < 1 {
		n = 1
	}
	slog.Info("running noisy 0D integration", "runs", n, "nit", cfg.Single.NIt, "beta", cfg.Single.Beta, "noise", cfg.NoiseType)

	ens := sim.NewEnsemble(params, n, params.Seed)
	all, err := ens.NoisySingleReactions(context.Background(), a0FromFlags(cmd), cfg.Single.Beta, cfg.Single.Dt, cfg.Single.NIt)
	if err != nil {
		return err
	}

	printAmplitudes(os.Stdout, "noisy reaction", all, cfg.Single.Dt)
	return nil
}

func runNoise(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out, err := noise.NewPowerLaw(*cfg.Seed).Generate(noiseBeta, []int{samples}, 1)
	if err != nil {
		return err
	}

	printSlope(os.Stdout, noiseBeta, analysis.SpectralSlope(out.Data), samples)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Printf("  %-12s c1=%-5g c2=%-5g sigma=%-5g noise=%s msize=%d\n",
			name, p.C1, p.C2, p.SigmaR, p.NoiseType, p.MSize)
	}
	return nil
}
