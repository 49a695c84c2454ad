package tensor

import (
	"fmt"
	"math"

	"github.com/born-ml/ndcore/internal/backend/cpu"
)

// Sum returns the sum of all elements. An empty tensor sums to 0.
func (t *Tensor[T]) Sum() float64 {
	return cpu.Sum(cpu.ToFloat64(t.Data()))
}

// Mean returns the arithmetic mean of all elements.
// Fails with ErrEmptyTensor if the tensor has no elements.
func (t *Tensor[T]) Mean() (float64, error) {
	mean, _, err := t.meanVariance("mean")
	return mean, err
}

// Variance returns the population variance, sum((x - mean)^2) / N.
// Fails with ErrEmptyTensor if the tensor has no elements.
func (t *Tensor[T]) Variance() (float64, error) {
	_, variance, err := t.meanVariance("variance")
	return variance, err
}

// StdDev returns sqrt(Variance()).
func (t *Tensor[T]) StdDev() (float64, error) {
	_, variance, err := t.meanVariance("stddev")
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

func (t *Tensor[T]) meanVariance(op string) (mean, variance float64, err error) {
	if t.NumElements() == 0 {
		return 0, 0, fmt.Errorf("%s of shape %v: %w", op, t.shape, ErrEmptyTensor)
	}
	mean, variance = cpu.MeanVariance(cpu.ToFloat64(t.Data()))
	return mean, variance, nil
}
