package cpu

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ToFloat64 widens src into a new float64 slice.
func ToFloat64[T Number](src []T) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}

// Sum returns the sum of xs. Zero for an empty slice.
func Sum(xs []float64) float64 {
	return floats.Sum(xs)
}

// MeanVariance returns the arithmetic mean and the population variance
// (divisor N) of xs. Callers must reject empty input.
func MeanVariance(xs []float64) (mean, variance float64) {
	return stat.PopMeanVariance(xs, nil)
}
