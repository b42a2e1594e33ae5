package noise

import (
	"fmt"
	"math"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// Buffer holds the noise of one spatial run. Raw is the generated tensor with
// frames on the leading axis; Rate is its derivative along that axis.
type Buffer struct {
	Raw  *Tensor
	Rate *Tensor

	frames    int
	frameSize int
}

// NewBuffer generates a (frames, size, size) tensor and derives its rate view.
func NewBuffer(gen Generator, exponent float64, frames, size int, std float64) (*Buffer, error) {
	if frames < 2 {
		return nil, dynamo.ConfigError("noise buffer needs at least 2 frames, got %d", frames)
	}
	if size <= 0 {
		return nil, dynamo.ConfigError("grid size must be positive, got %d", size)
	}
	shape := []int{frames, size, size}
	raw, err := gen.Generate(exponent, shape, std)
	if err != nil {
		return nil, fmt.Errorf("generate noise buffer: %w", err)
	}
	if raw == nil || !raw.SameShape(shape) || len(raw.Data) != frames*size*size {
		return nil, fmt.Errorf("%w: expected shape %v", dynamo.ErrNoiseGenerator, shape)
	}
	return BufferFromTensor(raw)
}

// BufferFromTensor wraps an existing tensor whose leading axis is time.
func BufferFromTensor(raw *Tensor) (*Buffer, error) {
	if raw == nil || len(raw.Shape) == 0 {
		return nil, fmt.Errorf("%w: empty noise tensor", dynamo.ErrDimensionMismatch)
	}
	frames := raw.Shape[0]
	if frames < 2 {
		return nil, dynamo.ConfigError("noise buffer needs at least 2 frames, got %d", frames)
	}
	frameSize := len(raw.Data) / frames
	rate := &Tensor{Shape: append([]int(nil), raw.Shape...), Data: gradient(raw.Data, frames, frameSize)}
	return &Buffer{Raw: raw, Rate: rate, frames: frames, frameSize: frameSize}, nil
}

func (b *Buffer) Frames() int { return b.frames }

func (b *Buffer) frame(t *Tensor, p int) []float64 {
	return t.Data[p*b.frameSize : (p+1)*b.frameSize]
}

// Interpolate samples both views at normalized time tau in [0, 1]. Values
// outside the range are clamped. Returned slices must not be modified.
func (b *Buffer) Interpolate(tau float64) (rate, raw []float64) {
	tau = math.Max(0, math.Min(1, tau))
	last := float64(b.frames - 1)
	x := tau * last
	p1, p2 := int(math.Floor(x)), int(math.Ceil(x))
	t1, t2 := float64(p1)/last, float64(p2)/last

	if math.Abs(t1-t2) < 1e-15 {
		return b.frame(b.Rate, p1), b.frame(b.Raw, p1)
	}

	w1 := math.Abs(t1-tau) / math.Abs(t2-t1)
	w2 := math.Abs(t2-tau) / math.Abs(t2-t1)
	return blend(b.frame(b.Rate, p1), b.frame(b.Rate, p2), w1, w2),
		blend(b.frame(b.Raw, p1), b.frame(b.Raw, p2), w1, w2)
}

func blend(a, b []float64, wa, wb float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = wa*a[i] + wb*b[i]
	}
	return out
}
