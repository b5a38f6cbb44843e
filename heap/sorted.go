package heap

import (
	"github.com/patrikhermansson/umap/core"
	"github.com/patrikhermansson/umap/numeric"
)

// sortedSlots returns the slot positions of row ordered by distance, then by index,
// with unfilled slots last.
func (h *Heap) sortedSlots(row int) []int {
	indices := h.indices[row]
	// Order by index first so the stable sort on distance breaks ties by index.
	byIndex := numeric.Argsort(indices)
	ordered := numeric.Argsort(gather(h.weights[row], byIndex))

	filled := make([]int, 0, len(indices))
	var empty []int
	for _, o := range ordered {
		s := byIndex[o]
		if indices[s] == Unfilled {
			empty = append(empty, s)
		} else {
			filled = append(filled, s)
		}
	}
	return numeric.Concatenate(filled, empty)
}

func gather(xs []float64, order []int) []float64 {
	res := make([]float64, len(order))
	for p, o := range order {
		res[p] = xs[o]
	}
	return res
}

// Neighbors returns the filled candidates of row in ascending order of distance.
func (h *Heap) Neighbors(row int) ([]core.Neighbor, error) {
	if err := h.checkRow(row); err != nil {
		return nil, err
	}
	var res []core.Neighbor
	for _, s := range h.sortedSlots(row) {
		if h.indices[row][s] == Unfilled {
			break
		}
		res = append(res, core.Neighbor{ID: h.indices[row][s], Distance: h.weights[row][s]})
	}
	return res, nil
}

// Sorted returns copies of the index and weight grids with every row in ascending order
// of distance and unfilled slots last. The heap itself is not modified.
func (h *Heap) Sorted() ([][]int, [][]float64) {
	indices := make([][]int, h.n)
	weights := make([][]float64, h.n)
	for i := 0; i < h.n; i++ {
		indices[i] = make([]int, h.k)
		weights[i] = make([]float64, h.k)
		for p, s := range h.sortedSlots(i) {
			indices[i][p] = h.indices[i][s]
			weights[i][p] = h.weights[i][s]
		}
	}
	return indices, weights
}
