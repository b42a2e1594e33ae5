package physics

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// Spectral computes the Laplacian of a periodic field in frequency space.
type Spectral struct {
	size int
	h2   float64
	k2   []float64 // kx[col]² + ky[row]²
}

func NewSpectral(size int, h float64) *Spectral {
	kx := dynamo.FFTFreq(size)
	for i := range kx {
		kx[i] *= 2 * math.Pi
	}
	k2 := make([]float64, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			k2[r*size+c] = kx[c]*kx[c] + kx[r]*kx[r]
		}
	}
	return &Spectral{size: size, h2: h * h, k2: k2}
}

// Laplacian transforms the real and imaginary parts separately, scales them
// by -(kx² + ky²) and keeps the real part of each inverse transform.
func (s *Spectral) Laplacian(f dynamo.Field) (dynamo.Field, error) {
	n := s.size
	if f.Size != n || len(f.Data) != n*n {
		return dynamo.Field{}, fmt.Errorf("%w: laplacian on %d grid got field of size %d",
			dynamo.ErrDimensionMismatch, n, f.Size)
	}
	re := make([][]float64, n)
	im := make([][]float64, n)
	for r := 0; r < n; r++ {
		re[r] = make([]float64, n)
		im[r] = make([]float64, n)
		for c := 0; c < n; c++ {
			v := f.Data[r*n+c]
			re[r][c] = real(v)
			im[r][c] = imag(v)
		}
	}

	fr := fft.FFT2Real(re)
	fi := fft.FFT2Real(im)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			m := complex(-s.k2[r*n+c], 0)
			fr[r][c] *= m
			fi[r][c] *= m
		}
	}
	lr := fft.IFFT2(fr)
	li := fft.IFFT2(fi)

	out := dynamo.NewField(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.Data[r*n+c] = complex(real(lr[r][c])/s.h2, real(li[r][c])/s.h2)
		}
	}
	return out, nil
}
