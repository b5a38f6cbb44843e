package numeric

import (
	"fmt"
	"slices"

	"github.com/patrikhermansson/umap/core"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns count evenly spaced values from start to end inclusive.
func Linspace(start, end float32, count int) ([]float32, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: linspace needs at least 2 points, got %d", core.ErrInvalidArgument, count)
	}
	res := make([]float32, count)
	step := (end - start) / float32(count-1)
	for k := range res {
		res[k] = start + float32(k)*step
	}
	// Pin the endpoint so rounding in step cannot move it.
	res[count-1] = end
	return res, nil
}

// Identity returns [0, 1, ..., n-1].
func Identity(n int) []int {
	if n < 0 {
		n = 0
	}
	id := make([]int, n)
	for k := range id {
		id[k] = k
	}
	return id
}

// Argsort returns the permutation that sorts xs ascending. Equal elements keep
// their original relative order.
func Argsort[T constraints.Ordered](xs []T) []int {
	id := Identity(len(xs))
	slices.SortStableFunc(id, func(a, b int) int {
		switch {
		case xs[a] < xs[b]:
			return -1
		case xs[a] > xs[b]:
			return 1
		default:
			return 0
		}
	})
	return id
}

// ArgsortRows would return one sorting permutation per row.
// TODO: decide the tie and NaN policy for per-row permutations before implementing.
func ArgsortRows(x [][]float32) ([][]int, error) {
	return nil, fmt.Errorf("%w: row-wise argsort", core.ErrNotImplemented)
}

// Argpartition would return, per row, indices partitioned around the n-th smallest element.
func Argpartition(x mat.Matrix, n int) ([][]int, error) {
	return nil, fmt.Errorf("%w: argpartition", core.ErrNotImplemented)
}

// SubArray returns a new grid holding the first cols elements of every row of x.
func SubArray[T any](x [][]T, cols int) ([][]T, error) {
	if cols < 0 {
		return nil, fmt.Errorf("%w: negative column count %d", core.ErrInvalidArgument, cols)
	}
	res := make([][]T, len(x))
	for k, row := range x {
		if cols > len(row) {
			return nil, fmt.Errorf("%w: row %d has %d columns, cannot take %d",
				core.ErrIndexOutOfRange, k, len(row), cols)
		}
		res[k] = slices.Clone(row[:cols:cols])
	}
	return res, nil
}

// PromoteTranspose turns xs into an m×1 column matrix. An empty input gives an empty matrix.
func PromoteTranspose(xs []float32) *mat.Dense {
	if len(xs) == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(xs))
	for k, v := range xs {
		data[k] = float64(v)
	}
	return mat.NewDense(len(xs), 1, data)
}

// Subarray returns a copy of a[lo:hi].
func Subarray[T any](a []T, lo, hi int) ([]T, error) {
	if lo < 0 || hi < lo || hi > len(a) {
		return nil, fmt.Errorf("%w: bounds [%d, %d) with length %d", core.ErrIndexOutOfRange, lo, hi, len(a))
	}
	res := make([]T, hi-lo)
	copy(res, a[lo:hi])
	return res, nil
}

// Concatenate returns a new slice holding a followed by b.
func Concatenate[T any](a, b []T) []T {
	res := make([]T, 0, len(a)+len(b))
	res = append(res, a...)
	return append(res, b...)
}
