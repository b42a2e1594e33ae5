package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	verbose    bool

	c1         float64
	c2         float64
	h          float64
	msize      int
	ic         string
	sigmaR     float64
	noiseSpeed float64
	noiseType  string
	beta       float64
	std        float64
	seed       int64

	dt         float64
	ntimes     int
	saveEvery  int
	tolerance  float64
	maxRetries int

	singleDt    float64
	nit         int
	forcingBeta float64
	runs        int
	a0Re        float64
	a0Im        float64

	noiseBeta float64
	samples   int
)

// main runs the root command, exiting with status 1 if it fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// newRootCmd binds every flag to its package variable, resetting it to the
// flag default.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ncgl",
		Short:         "noisy complex Ginzburg-Landau simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Float64Var(&c1, "c1", 1.0, "diffusion coupling")
	rootCmd.PersistentFlags().Float64Var(&c2, "c2", 1.0, "reaction coupling")
	rootCmd.PersistentFlags().Float64Var(&sigmaR, "sigma", 1.0, "noise strength")
	rootCmd.PersistentFlags().StringVar(&noiseType, "noise-type", "multiplicative", "multiplicative, diffusive or additive")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate the 2D field with adaptive RKF45",
		Args:  cobra.NoArgs,
		RunE:  runSpatial,
	}
	runCmd.Flags().Float64Var(&h, "h", 1.0, "grid spacing")
	runCmd.Flags().IntVar(&msize, "msize", 128, "grid side length")
	runCmd.Flags().StringVar(&ic, "ic", "random", "initial condition (random, gaussian)")
	runCmd.Flags().Float64Var(&noiseSpeed, "noise-speed", 0.5, "noise frames per step, in (0, 1]")
	runCmd.Flags().Float64Var(&beta, "beta", 2.0, "noise spectral exponent")
	runCmd.Flags().Float64Var(&std, "std", 0.01, "noise standard deviation")
	runCmd.Flags().Float64Var(&dt, "dt", 0.1, "nominal timestep")
	runCmd.Flags().IntVar(&ntimes, "ntimes", 1000, "number of steps")
	runCmd.Flags().IntVar(&saveEvery, "save-every", 100, "snapshot interval in steps")
	runCmd.Flags().Float64Var(&tolerance, "tolerance", 1e-4, "local error tolerance")
	runCmd.Flags().IntVar(&maxRetries, "max-retries", 1, "step corrections per step")

	singleCmd := &cobra.Command{
		Use:   "single",
		Short: "integrate the reaction term for a single amplitude",
		Args:  cobra.NoArgs,
		RunE:  runSingle,
	}
	addSingleFlags(singleCmd)

	noisyCmd := &cobra.Command{
		Use:   "noisy",
		Short: "integrate a single amplitude with colored forcing",
		Args:  cobra.NoArgs,
		RunE:  runNoisy,
	}
	addSingleFlags(noisyCmd)
	noisyCmd.Flags().Float64Var(&forcingBeta, "beta", 0, "forcing spectral exponent")
	noisyCmd.Flags().IntVar(&runs, "runs", 1, "independent runs (seed, seed+1, ...)")

	noiseCmd := &cobra.Command{
		Use:   "noise",
		Short: "generate colored noise and report its measured spectral slope",
		Args:  cobra.NoArgs,
		RunE:  runNoise,
	}
	noiseCmd.Flags().Float64Var(&noiseBeta, "beta", 2.0, "spectral exponent")
	noiseCmd.Flags().IntVar(&samples, "n", 4096, "samples")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, singleCmd, noisyCmd, noiseCmd, presetsCmd)
	return rootCmd
}

func addSingleFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&singleDt, "dt", 0.1, "timestep")
	cmd.Flags().IntVar(&nit, "nit", 3000, "number of steps")
	cmd.Flags().Float64Var(&a0Re, "a0-re", 0.01, "initial amplitude, real part")
	cmd.Flags().Float64Var(&a0Im, "a0-im", 0, "initial amplitude, imaginary part")
}
