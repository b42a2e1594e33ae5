package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns |X_k|² for k in [0, n/2).
func PowerSpectrum(data []float64) []float64 {
	bins := fft.FFTReal(data)
	ps := make([]float64, len(bins)/2)

	for i := range ps {
		a := cmplx.Abs(bins[i])
		ps[i] = a * a
	}

	return ps
}

// SpectralSlope fits log P = alpha + slope*log k over the non-zero bins of
// the power spectrum. Colored noise of exponent beta gives a slope near -beta.
func SpectralSlope(data []float64) float64 {
	ps := PowerSpectrum(data)
	xs := make([]float64, 0, len(ps))
	ys := make([]float64, 0, len(ps))
	for k := 1; k < len(ps); k++ {
		if ps[k] <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(k)))
		ys = append(ys, math.Log(ps[k]))
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}
