package main

import (
	"fmt"
	"io"
	"math/cmplx"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/ncgl/internal/analysis"
	"github.com/san-kum/ncgl/internal/sim"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func printTrace(w io.Writer, trace *sim.Trace, elapsed time.Duration) {
	fmt.Fprintln(w, titleStyle.Render("adaptive solve"))
	fmt.Fprintf(w, "%s %v\n", labelStyle.Render("wall time:"), elapsed)
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("steps:"), len(trace.StepTimes))
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("corrected steps:"), trace.Corrections)
	if trace.Clamps > 0 {
		fmt.Fprintf(w, "%s %d\n", labelStyle.Render("diffusive clamps:"), trace.Clamps)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nsnapshot\tt\tmean |A|\tmax |A|")
	for i, f := range trace.Snapshots {
		mod := f.Modulus()
		fmt.Fprintf(tw, "%d\t%.4f\t%.6f\t%.6f\n", i, trace.Times[i], stat.Mean(mod, nil), floats.Max(mod))
	}
	tw.Flush()

	if len(trace.Metrics) == 0 {
		return
	}
	names := make([]string, 0, len(trace.Metrics))
	for name := range trace.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "\n"+titleStyle.Render("metrics"))
	for _, name := range names {
		fmt.Fprintf(w, "  %s %.6f\n", labelStyle.Render(name+":"), trace.Metrics[name])
	}
}

func printAmplitudes(w io.Writer, title string, runs [][]complex128, dt float64) {
	fmt.Fprintln(w, titleStyle.Render(title))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "run\tsteps\tfinal A\t|A|\tomega")
	for i, states := range runs {
		if len(states) == 0 {
			continue
		}
		last := states[len(states)-1]
		tail := states[len(states)/2:]
		fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.6f\t%.4f\n", i, len(states), last, cmplx.Abs(last), analysis.AngularFrequency(tail, dt))
	}
	tw.Flush()
}

func printSlope(w io.Writer, beta, slope float64, n int) {
	fmt.Fprintln(w, titleStyle.Render("colored noise"))
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("samples:"), n)
	fmt.Fprintf(w, "%s %.3f\n", labelStyle.Render("requested beta:"), beta)
	fmt.Fprintf(w, "%s %.3f\n", labelStyle.Render("measured slope:"), slope)
}
