package bruteforce

import (
	"fmt"

	"github.com/patrikhermansson/umap/core"
	"github.com/patrikhermansson/umap/heap"
	"gonum.org/v1/gonum/stat"
)

// Recall returns the mean, over rows, of the fraction of exact neighbors that also appear
// in the approximate row. Rows of exact without any filled slot are skipped.
func Recall(approx, exact *heap.Heap) (float64, error) {
	if approx.Len() != exact.Len() {
		return 0, fmt.Errorf("%w: approximate heap has %d rows, exact heap %d",
			core.ErrInvalidArgument, approx.Len(), exact.Len())
	}
	recalls := make([]float64, 0, exact.Len())
	for i, truth := range exact.Indices() {
		// Build a set of predicted ids for the row.
		predSet := make(map[int]struct{}, approx.K())
		for _, id := range approx.Indices()[i] {
			if id != heap.Unfilled {
				predSet[id] = struct{}{}
			}
		}

		// Count ground-truth items that appear in the predictions.
		correct, total := 0, 0
		for _, id := range truth {
			if id == heap.Unfilled {
				continue
			}
			total++
			if _, ok := predSet[id]; ok {
				correct++
			}
		}
		if total > 0 {
			recalls = append(recalls, float64(correct)/float64(total))
		}
	}
	if len(recalls) == 0 {
		return 0, nil
	}
	return stat.Mean(recalls, nil), nil
}
