package noise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// Generator returns a real tensor of the requested shape whose power
// spectral density falls off as |f|^-exponent, scaled to the given std.
type Generator interface {
	Generate(exponent float64, shape []int, std float64) (*Tensor, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(exponent float64, shape []int, std float64) (*Tensor, error)

func (f GeneratorFunc) Generate(exponent float64, shape []int, std float64) (*Tensor, error) {
	return f(exponent, shape, std)
}

// PowerLaw synthesizes colored noise in frequency space: Gaussian spectral
// coefficients shaped by |f|^(-exponent/2), inverse transformed axis by axis.
// It is not safe for concurrent use.
type PowerLaw struct {
	rng *rand.Rand
}

func NewPowerLaw(seed int64) *PowerLaw {
	return &PowerLaw{rng: rand.New(rand.NewSource(seed))}
}

func (p *PowerLaw) Generate(exponent float64, shape []int, std float64) (*Tensor, error) {
	if math.IsNaN(exponent) || math.IsInf(exponent, 0) {
		return nil, fmt.Errorf("%w: exponent %v", dynamo.ErrNoiseGenerator, exponent)
	}
	if std < 0 || math.IsNaN(std) {
		return nil, fmt.Errorf("%w: std %v", dynamo.ErrNoiseGenerator, std)
	}
	out, err := NewTensor(shape...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dynamo.ErrNoiseGenerator, err)
	}

	spectrum := make([]complex128, len(out.Data))
	idx := make([]int, len(shape))
	for flat := range spectrum {
		unravel(flat, shape, idx)
		f2 := 0.0
		for d, k := range idx {
			f := dynamo.FreqAt(k, shape[d])
			f2 += f * f
		}
		if f2 == 0 {
			continue
		}
		amp := math.Pow(math.Sqrt(f2), -exponent/2)
		spectrum[flat] = complex(amp*p.rng.NormFloat64(), amp*p.rng.NormFloat64())
	}

	inverseN(spectrum, shape)

	for i, v := range spectrum {
		out.Data[i] = real(v)
	}
	mean, sd := stat.MeanStdDev(out.Data, nil)
	if sd == 0 || math.IsNaN(sd) {
		return nil, fmt.Errorf("%w: degenerate output for shape %v", dynamo.ErrNoiseGenerator, shape)
	}
	for i, v := range out.Data {
		out.Data[i] = (v - mean) / sd * std
	}
	return out, nil
}

// inverseN applies a 1D inverse FFT along every axis of a row-major array.
func inverseN(data []complex128, shape []int) {
	stride := len(data)
	for _, n := range shape {
		stride /= n
		if n == 1 {
			continue
		}
		line := make([]complex128, n)
		block := n * stride
		for base := 0; base < len(data); base += block {
			for off := 0; off < stride; off++ {
				for i := 0; i < n; i++ {
					line[i] = data[base+off+i*stride]
				}
				res := fft.IFFT(line)
				for i := 0; i < n; i++ {
					data[base+off+i*stride] = res[i]
				}
			}
		}
	}
}

func unravel(flat int, shape []int, idx []int) {
	for d := len(shape) - 1; d >= 0; d-- {
		idx[d] = flat % shape[d]
		flat /= shape[d]
	}
}
