package noise

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/ncgl/internal/dynamo"
)

func TestBufferInterpolate_Midpoint(t *testing.T) {
	buf, err := BufferFromTensor(&Tensor{Shape: []int{2}, Data: []float64{0.0, 2.0}})
	if err != nil {
		t.Fatalf("BufferFromTensor: %v", err)
	}

	_, raw := buf.Interpolate(0.5)
	if len(raw) != 1 || math.Abs(raw[0]-1.0) > 1e-12 {
		t.Errorf("Interpolate(0.5) raw = %v, want [1]", raw)
	}
}

func TestBufferInterpolate_Weights(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		tau  float64
		want float64
	}{
		// the weight on the earlier frame is the distance from it
		{"quarter of two frames", []float64{0, 2}, 0.25, 1.5},
		{"three quarters of two frames", []float64{0, 2}, 0.75, 0.5},
		{"first interval of three frames", []float64{1, 2, 4}, 0.125, 1.75},
		{"second interval of three frames", []float64{1, 2, 4}, 0.625, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := BufferFromTensor(&Tensor{Shape: []int{len(tt.data)}, Data: tt.data})
			if err != nil {
				t.Fatalf("BufferFromTensor: %v", err)
			}
			if buf.Frames() != len(tt.data) {
				t.Fatalf("Frames() = %d, want %d", buf.Frames(), len(tt.data))
			}
			if _, raw := buf.Interpolate(tt.tau); math.Abs(raw[0]-tt.want) > 1e-12 {
				t.Errorf("Interpolate(%v) = %v, want %v", tt.tau, raw[0], tt.want)
			}
		})
	}
}

func TestBufferInterpolate_FrameBoundaries(t *testing.T) {
	raw, _ := NewTensor(5, 2, 2)
	for i := range raw.Data {
		raw.Data[i] = float64(i*i) * 0.1
	}
	buf, err := BufferFromTensor(raw)
	if err != nil {
		t.Fatalf("BufferFromTensor: %v", err)
	}

	for k := 0; k < 5; k++ {
		tau := float64(k) / 4
		rate, got := buf.Interpolate(tau)
		for i := 0; i < 4; i++ {
			if math.Abs(got[i]-raw.Data[k*4+i]) > 1e-12 {
				t.Errorf("frame %d cell %d: raw = %v, want %v", k, i, got[i], raw.Data[k*4+i])
			}
			if math.Abs(rate[i]-buf.Rate.Data[k*4+i]) > 1e-12 {
				t.Errorf("frame %d cell %d: rate = %v, want %v", k, i, rate[i], buf.Rate.Data[k*4+i])
			}
		}
	}
}

func TestBufferInterpolate_Clamps(t *testing.T) {
	buf, _ := BufferFromTensor(&Tensor{Shape: []int{3}, Data: []float64{1, 2, 3}})

	if _, raw := buf.Interpolate(-0.5); raw[0] != 1 {
		t.Errorf("Interpolate(-0.5) = %v, want 1", raw[0])
	}
	if _, raw := buf.Interpolate(1.5); raw[0] != 3 {
		t.Errorf("Interpolate(1.5) = %v, want 3", raw[0])
	}
}

func TestBufferRate(t *testing.T) {
	buf, err := BufferFromTensor(&Tensor{Shape: []int{4}, Data: []float64{0, 1, 4, 9}})
	if err != nil {
		t.Fatalf("BufferFromTensor: %v", err)
	}

	want := []float64{1, 2, 4, 5}
	for i, w := range want {
		if buf.Rate.Data[i] != w {
			t.Errorf("rate[%d] = %v, want %v", i, buf.Rate.Data[i], w)
		}
	}
}

func TestNewBuffer_Errors(t *testing.T) {
	failing := GeneratorFunc(func(float64, []int, float64) (*Tensor, error) {
		return nil, dynamo.ErrNoiseGenerator
	})
	wrongShape := GeneratorFunc(func(float64, []int, float64) (*Tensor, error) {
		return NewTensor(2, 3, 3)
	})

	tests := []struct {
		name   string
		gen    Generator
		frames int
		want   error
	}{
		{"one frame", NewPowerLaw(1), 1, dynamo.ErrInvalidConfig},
		{"generator failure", failing, 4, dynamo.ErrNoiseGenerator},
		{"wrong shape", wrongShape, 4, dynamo.ErrNoiseGenerator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuffer(tt.gen, 2, tt.frames, 4, 0.01)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewBuffer error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPowerLaw_ShapeAndStd(t *testing.T) {
	gen := NewPowerLaw(7)

	out, err := gen.Generate(2, []int{4, 8, 8}, 0.5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !out.SameShape([]int{4, 8, 8}) || len(out.Data) != 256 {
		t.Fatalf("unexpected shape %v (len %d)", out.Shape, len(out.Data))
	}

	mean, sd := stat.MeanStdDev(out.Data, nil)
	if math.Abs(mean) > 1e-9 {
		t.Errorf("mean = %v, want 0", mean)
	}
	if math.Abs(sd-0.5) > 1e-9 {
		t.Errorf("std = %v, want 0.5", sd)
	}
}

func TestPowerLaw_RedSpectrum(t *testing.T) {
	gen := NewPowerLaw(3)
	n := 1024

	out, err := gen.Generate(2, []int{n}, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	bins := fft.FFTReal(out.Data)
	low, high := 0.0, 0.0
	for k := 1; k <= 16; k++ {
		low += cmplx.Abs(bins[k])
	}
	for k := n/2 - 16; k < n/2; k++ {
		high += cmplx.Abs(bins[k])
	}
	if low <= high {
		t.Errorf("expected more power at low frequencies: low=%v high=%v", low, high)
	}
}

func TestPowerLaw_Errors(t *testing.T) {
	gen := NewPowerLaw(1)

	tests := []struct {
		name     string
		exponent float64
		shape    []int
		std      float64
	}{
		{"empty shape", 2, nil, 1},
		{"zero extent", 2, []int{0, 4}, 1},
		{"NaN exponent", math.NaN(), []int{8}, 1},
		{"negative std", 2, []int{8}, -1},
		{"single sample", 2, []int{1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Generate(tt.exponent, tt.shape, tt.std)
			if !errors.Is(err, dynamo.ErrNoiseGenerator) {
				t.Errorf("expected ErrNoiseGenerator, got %v", err)
			}
		})
	}
}

func TestInterpolate1D(t *testing.T) {
	seq := []complex128{0, complex(2, 4), 6}

	if got := Interpolate1D(seq, 1); got != seq[1] {
		t.Errorf("Interpolate1D(1) = %v, want %v", got, seq[1])
	}
	if got := Interpolate1D(seq, 0.5); cmplx.Abs(got-complex(1, 2)) > 1e-12 {
		t.Errorf("Interpolate1D(0.5) = %v, want (1+2i)", got)
	}
	if got := Interpolate1D([]complex128{0, 2}, 0.25); cmplx.Abs(got-1.5) > 1e-12 {
		t.Errorf("Interpolate1D(0.25) = %v, want 1.5", got)
	}
	// 0.25 of the way from seq[1] to seq[2] weights seq[2] by 0.75
	if got := Interpolate1D(seq, 1.25); cmplx.Abs(got-complex(5, 1)) > 1e-12 {
		t.Errorf("Interpolate1D(1.25) = %v, want (5+1i)", got)
	}
}

func TestNewTrajectory(t *testing.T) {
	tr, err := NewTrajectory(NewPowerLaw(11), 0, 50)
	if err != nil {
		t.Fatalf("NewTrajectory: %v", err)
	}
	if len(tr) != 52 {
		t.Fatalf("len = %d, want 52", len(tr))
	}
	for i, v := range tr {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("sample %d not finite: %v", i, v)
		}
	}
	if got := tr.At(10); got != tr[10] {
		t.Errorf("At(10) = %v, want %v", got, tr[10])
	}
}
