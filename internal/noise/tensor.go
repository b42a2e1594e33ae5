package noise

import (
	"fmt"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// Tensor is a dense real array in row-major order.
type Tensor struct {
	Shape []int
	Data  []float64
}

func NewTensor(shape ...int) (*Tensor, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	s := make([]int, len(shape))
	copy(s, shape)
	return &Tensor{Shape: s, Data: make([]float64, n)}, nil
}

// SameShape reports whether t has exactly the given shape.
func (t *Tensor) SameShape(shape []int) bool {
	if len(t.Shape) != len(shape) {
		return false
	}
	for i := range shape {
		if t.Shape[i] != shape[i] {
			return false
		}
	}
	return true
}

func volume(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("%w: empty shape", dynamo.ErrDimensionMismatch)
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("%w: non-positive extent in shape %v", dynamo.ErrDimensionMismatch, shape)
		}
		n *= d
	}
	return n, nil
}

// gradient differentiates data along its leading axis with unit spacing:
// central differences inside, one-sided differences on the two edges.
func gradient(data []float64, n, stride int) []float64 {
	out := make([]float64, len(data))
	if n < 2 {
		return out
	}
	for j := 0; j < stride; j++ {
		out[j] = data[stride+j] - data[j]
		last := (n - 1) * stride
		out[last+j] = data[last+j] - data[last-stride+j]
		for i := 1; i < n-1; i++ {
			out[i*stride+j] = (data[(i+1)*stride+j] - data[(i-1)*stride+j]) / 2
		}
	}
	return out
}
