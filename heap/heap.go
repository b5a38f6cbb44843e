// Package heap implements the bounded per-point candidate lists refined by nearest-neighbor
// descent. Each of the n rows holds at most k (index, distance, new) candidates.
//
// Rows are unordered slots. A push scans the row once to reject duplicates and to find
// the worst slot, then overwrites that slot in place; no other slot moves.
//
// A Heap is not safe for concurrent writers to the same row. Workers may push into
// disjoint sets of rows concurrently; ResetNew and CountNew must run between rounds,
// after the workers have been joined.
package heap

import (
	"fmt"
	"math"

	"github.com/patrikhermansson/umap/core"
	"github.com/rs/zerolog/log"
)

// Unfilled marks a slot that holds no candidate yet.
const Unfilled = -1

// Heap holds, per data point, the best known neighbor candidates.
type Heap struct {
	indices [][]int     // candidate point indices, Unfilled for empty slots
	weights [][]float64 // distance to the candidate in the same slot
	isNew   [][]bool    // set when the slot was filled since the last ResetNew
	n       int         // number of rows
	k       int         // slots per row
}

// New wraps caller-seeded candidate grids. Both grids must have the same number of rows
// and every row the same width. The heap takes ownership of the grids.
func New(indices [][]int, weights [][]float64) (*Heap, error) {
	if len(indices) != len(weights) {
		return nil, fmt.Errorf("%w: %d index rows but %d weight rows",
			core.ErrInvalidArgument, len(indices), len(weights))
	}
	k := 0
	if len(indices) > 0 {
		k = len(indices[0])
	}
	isNew := make([][]bool, len(indices))
	for i := range indices {
		if len(indices[i]) != k || len(weights[i]) != k {
			return nil, fmt.Errorf("%w: row %d has %d indices and %d weights, want %d",
				core.ErrInvalidArgument, i, len(indices[i]), len(weights[i]), k)
		}
		isNew[i] = make([]bool, k)
	}
	log.Debug().Msgf("Creating candidate heap with n=%d, k=%d", len(indices), k)
	return &Heap{
		indices: indices,
		weights: weights,
		isNew:   isNew,
		n:       len(indices),
		k:       k,
	}, nil
}

// NewEmpty creates a heap of n rows with k unfilled slots each (index Unfilled, weight +Inf).
func NewEmpty(n, k int) (*Heap, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("%w: negative heap shape %dx%d", core.ErrInvalidArgument, n, k)
	}
	indices := make([][]int, n)
	weights := make([][]float64, n)
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		indices[i] = make([]int, k)
		weights[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			indices[i][j] = Unfilled
			weights[i][j] = inf
		}
	}
	return New(indices, weights)
}

// Len returns the number of rows.
func (h *Heap) Len() int { return h.n }

// K returns the number of slots per row.
func (h *Heap) K() int { return h.k }

// Indices returns the live candidate index grid. Callers must not modify it.
func (h *Heap) Indices() [][]int { return h.indices }

// Weights returns the live candidate distance grid. Callers must not modify it.
func (h *Heap) Weights() [][]float64 { return h.weights }

// IsNew returns the live grid of new-candidate flags. Callers must not modify it.
func (h *Heap) IsNew() [][]bool { return h.isNew }

func (h *Heap) checkRow(row int) error {
	if row < 0 || row >= h.n {
		return fmt.Errorf("%w: row %d not in [0, %d)", core.ErrIndexOutOfRange, row, h.n)
	}
	return nil
}

// Push offers candidate index at distance dist to row. It returns true when the candidate
// was stored. A candidate already in the row is ignored. Otherwise it goes into the first
// unfilled slot or, in a full row, replaces the first slot of largest weight if that weight
// is strictly greater than dist; ties are rejected. The stored slot is flagged new.
func (h *Heap) Push(row, index int, dist float64) (bool, error) {
	if err := h.checkRow(row); err != nil {
		return false, err
	}
	if index == Unfilled {
		return false, nil
	}
	indices := h.indices[row]
	weights := h.weights[row]

	worst := -1
	for j, c := range indices {
		if c == index {
			return false, nil
		}
		switch {
		case worst < 0:
			worst = j
		case indices[worst] == Unfilled:
			// keep the first unfilled slot
		case c == Unfilled || weights[j] > weights[worst]:
			worst = j
		}
	}
	if worst < 0 {
		return false, nil
	}
	if indices[worst] != Unfilled && !(weights[worst] > dist) {
		return false, nil
	}

	indices[worst] = index
	weights[worst] = dist
	h.isNew[row][worst] = true
	return true, nil
}

// ResetNew clears every new-candidate flag.
func (h *Heap) ResetNew() {
	for _, flags := range h.isNew {
		clear(flags)
	}
}

// CountNew returns the number of slots flagged new.
func (h *Heap) CountNew() int {
	count := 0
	for _, flags := range h.isNew {
		for _, f := range flags {
			if f {
				count++
			}
		}
	}
	return count
}

// MaxWeight returns the weight a candidate must beat to enter row:
// +Inf while the row has an unfilled slot, otherwise its largest weight.
func (h *Heap) MaxWeight(row int) (float64, error) {
	if err := h.checkRow(row); err != nil {
		return 0, err
	}
	maxWeight := math.Inf(-1)
	for j, c := range h.indices[row] {
		if c == Unfilled {
			return math.Inf(1), nil
		}
		maxWeight = math.Max(maxWeight, h.weights[row][j])
	}
	return maxWeight, nil
}

// SmallestFlagged returns the index of the closest candidate of row that is flagged new
// and clears its flag. It returns Unfilled when no slot is flagged.
func (h *Heap) SmallestFlagged(row int) (int, error) {
	if err := h.checkRow(row); err != nil {
		return Unfilled, err
	}
	best := -1
	for j, flagged := range h.isNew[row] {
		if !flagged || h.indices[row][j] == Unfilled {
			continue
		}
		if best < 0 || h.weights[row][j] < h.weights[row][best] {
			best = j
		}
	}
	if best < 0 {
		return Unfilled, nil
	}
	h.isNew[row][best] = false
	return h.indices[row][best], nil
}
