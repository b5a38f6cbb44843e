package numeric

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/patrikhermansson/umap/core"
)

// Uniform returns a rows×cols grid of values drawn uniformly from [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float32, rows, cols int) ([][]float32, error) {
	if !(hi > lo) {
		return nil, fmt.Errorf("%w: lo (%v) must be smaller than hi (%v)", core.ErrInvalidArgument, lo, hi)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative shape %dx%d", core.ErrInvalidArgument, rows, cols)
	}
	span := hi - lo
	if math.IsInf(float64(span), 0) {
		return nil, fmt.Errorf("%w: range [%v, %v) overflows float32", core.ErrInvalidArgument, lo, hi)
	}
	res := make([][]float32, rows)
	for k := range res {
		res[k] = make([]float32, cols)
		for j := range res[k] {
			v := lo + rng.Float32()*span
			// Float rounding can land exactly on hi for narrow ranges.
			if v >= hi {
				v = math.Nextafter32(hi, lo)
			}
			res[k][j] = v
		}
	}
	return res, nil
}
