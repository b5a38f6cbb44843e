// Package bruteforce builds exact k-nearest-neighbor heaps by comparing every pair of points.
// The result is the reference that approximate neighbor graphs are scored against.
package bruteforce

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/patrikhermansson/umap/core"
	"github.com/patrikhermansson/umap/heap"
	"github.com/patrikhermansson/umap/numeric"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Options controls how Build spreads its work.
type Options struct {
	Workers  int  // number of goroutines; 0 reads UMAP_WORKERS, then falls back to one per CPU
	Progress bool // print a progress bar with one tick per finished row
}

// Build returns a heap whose row i holds the k nearest other points of data[i] under metric.
// Rows are split into contiguous chunks and each worker only pushes into its own rows.
// All new-candidate flags are cleared before returning.
func Build(ctx context.Context, data [][]float32, k int, metric core.Metric, opts Options) (*heap.Heap, error) {
	if metric == nil {
		return nil, fmt.Errorf("%w: nil metric", core.ErrInvalidArgument)
	}
	n := len(data)
	if n == 0 {
		return nil, fmt.Errorf("%w: no data points", core.ErrInvalidArgument)
	}
	if k < 1 || k >= n {
		return nil, fmt.Errorf("%w: k=%d must be in [1, %d)", core.ErrInvalidArgument, k, n)
	}
	dim := len(data[0])
	for i, vec := range data {
		if len(vec) != dim {
			return nil, fmt.Errorf("vector dimension %d does not match dimension %d for id %d: %w",
				len(vec), dim, i, core.ErrInvalidArgument)
		}
	}

	h, err := heap.NewEmpty(n, k)
	if err != nil {
		return nil, err
	}

	numWorkers := workers(opts.Workers, n)
	chunkSize := (n + numWorkers - 1) / numWorkers
	log.Info().Msgf("Building exact %d-NN heap for %d points with %d workers", k, n, numWorkers)
	start := time.Now()

	var bar *progressbar.ProgressBar
	if opts.Progress {
		// Create a progress bar with a newline on completion.
		bar = progressbar.NewOptions(n,
			progressbar.OptionSetDescription("exact k-NN"),
			progressbar.OptionOnCompletion(func() { fmt.Print("\n") }),
		)
	}

	rows := numeric.Identity(n)
	g, gCtx := errgroup.WithContext(ctx)
	for w := 0; w < numWorkers; w++ {
		lo := w * chunkSize
		hi := min(lo+chunkSize, n)
		if lo >= hi {
			break
		}
		chunk, err := numeric.Subarray(rows, lo, hi)
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			for _, i := range chunk {
				if err := gCtx.Err(); err != nil {
					return err
				}
				if err := fillRow(h, data, i, metric); err != nil {
					return err
				}
				if bar != nil {
					if err := bar.Add(1); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	h.ResetNew()
	log.Debug().Msgf("Exact %d-NN heap built in %s", k, time.Since(start))
	return h, nil
}

// fillRow pushes every other point into row i.
func fillRow(h *heap.Heap, data [][]float32, i int, metric core.Metric) error {
	for j := range data {
		if j == i {
			continue
		}
		if _, err := h.Push(i, j, metric.Distance(data[i], data[j])); err != nil {
			return err
		}
	}
	return nil
}

// workers resolves the worker count: explicit value, then UMAP_WORKERS, then the CPU count.
func workers(requested, n int) int {
	if requested <= 0 {
		cfg, err := core.LoadConfig()
		if err != nil {
			log.Warn().Err(err).Msg("Ignoring invalid UMAP configuration")
		}
		requested = cfg.Workers
	}
	if requested <= 0 {
		requested = runtime.NumCPU()
	}
	return max(1, min(requested, n))
}
