// Package numeric holds the array primitives shared by the metrics, the candidate heap and
// the neighbor-descent driver: reductions, elementwise arithmetic, sorting permutations,
// slicing and random matrices.
//
// Unless a function says it works in place, it allocates its result and leaves the input untouched.
package numeric

import (
	"math"

	"github.com/viterin/vek/vek32"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// invLn2 converts a natural logarithm to base 2.
var invLn2 = 1 / math.Log(2)

// Log2 returns the base-2 logarithm of x. The domain is x > 0.
func Log2(x float64) float64 {
	return math.Log(x) * invLn2
}

// Max returns the largest element, or -Inf for an empty input.
func Max(xs ...float32) float32 {
	if len(xs) == 0 {
		return float32(math.Inf(-1))
	}
	return vek32.Max(xs)
}

// Min returns the smallest element, or +Inf for an empty input.
func Min(xs ...float32) float32 {
	if len(xs) == 0 {
		return float32(math.Inf(1))
	}
	return vek32.Min(xs)
}

// Mean returns the arithmetic mean, accumulated in float64. An empty input gives NaN.
func Mean(xs ...float32) float64 {
	return stat.Mean(vek32.ToFloat64(xs), nil)
}

// Mean2D returns the mean over every element of every row, not a per-row mean.
func Mean2D(x [][]float32) float64 {
	var sum float64
	var count int
	for _, row := range x {
		sum += floats.Sum(vek32.ToFloat64(row))
		count += len(row)
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// FilterPositive returns the strictly positive elements in their original order.
func FilterPositive(xs ...float32) []float32 {
	if len(xs) == 0 {
		return []float32{}
	}
	res := vek32.Select(xs, vek32.GtNumber(xs, 0))
	if res == nil {
		return []float32{}
	}
	return res
}

// ContainsNegative reports whether any element is negative, scanning row by row.
func ContainsNegative(x [][]int) bool {
	for _, row := range x {
		for _, v := range row {
			if v < 0 {
				return true
			}
		}
	}
	return false
}

// Multiply returns xs scaled by s.
func Multiply(xs []float32, s float32) []float32 {
	if len(xs) == 0 {
		return []float32{}
	}
	return vek32.MulNumber(xs, s)
}

// Multiply2D returns every row of x scaled by s.
func Multiply2D(x [][]float32, s float32) [][]float32 {
	res := make([][]float32, len(x))
	for k, row := range x {
		res[k] = Multiply(row, s)
	}
	return res
}

// Divide returns xs scaled by 1/s. A zero s is not special-cased and yields infinities.
func Divide(xs []float32, s float32) []float32 {
	return Multiply(xs, 1/s)
}

// Negate returns xs with every sign flipped.
func Negate(xs []float32) []float32 {
	if len(xs) == 0 {
		return []float32{}
	}
	return vek32.Neg(xs)
}

// ZeroEntriesBelowLimit sets, in place, every element smaller than limit to zero.
func ZeroEntriesBelowLimit(xs []float32, limit float32) {
	for k, v := range xs {
		if v < limit {
			xs[k] = 0
		}
	}
}
