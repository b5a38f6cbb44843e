package bruteforce

import (
	"context"
	"math/rand"
	"os"
	"sort"
	"testing"

	"github.com/patrikhermansson/umap/core"
	"github.com/patrikhermansson/umap/heap"
	"github.com/patrikhermansson/umap/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomData(t *testing.T, n, dim int, seed int64) [][]float32 {
	t.Helper()
	data, err := numeric.Uniform(rand.New(rand.NewSource(seed)), -1, 1, n, dim)
	require.NoError(t, err)
	return data
}

// expectedRow returns the k nearest other points of data[i] by a sequential scan.
func expectedRow(data [][]float32, i, k int, metric core.Metric) []core.Neighbor {
	var all []core.Neighbor
	for j := range data {
		if j != i {
			all = append(all, core.Neighbor{ID: j, Distance: metric.Distance(data[i], data[j])})
		}
	}
	sort.SliceStable(all, func(a, b int) bool { return all[a].Distance < all[b].Distance })
	return all[:k]
}

func TestBuildMatchesSequentialScan(t *testing.T) {
	data := randomData(t, 60, 5, 1)
	for _, metric := range []core.Metric{core.Manhattan, core.BrayCurtis, core.Euclidean, core.Cosine} {
		for _, workers := range []int{1, 3, 16} {
			h, err := Build(context.Background(), data, 4, metric, Options{Workers: workers})
			require.NoError(t, err)
			require.Equal(t, len(data), h.Len())
			require.Equal(t, 4, h.K())
			assert.Zero(t, h.CountNew(), "flags are cleared after the build")

			for i := range data {
				got, err := h.Neighbors(i)
				require.NoError(t, err)
				want := expectedRow(data, i, 4, metric)
				require.Len(t, got, len(want))
				for p := range want {
					assert.InDelta(t, want[p].Distance, got[p].Distance, 1e-9, "metric %v row %d", metric, i)
				}
			}
		}
	}
}

func TestBuildWithProgressAndEnvWorkers(t *testing.T) {
	t.Setenv("UMAP_WORKERS", "2")
	data := randomData(t, 10, 3, 2)

	h, err := Build(context.Background(), data, 3, core.Manhattan, Options{Progress: true})
	require.NoError(t, err)
	for i := 0; i < h.Len(); i++ {
		maxWeight, err := h.MaxWeight(i)
		require.NoError(t, err)
		assert.False(t, maxWeight > 1e30, "row %d left unfilled", i)
	}
}

func TestBuildInvalidArguments(t *testing.T) {
	ctx := context.Background()
	data := randomData(t, 5, 2, 3)

	_, err := Build(ctx, data, 0, core.Manhattan, Options{})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = Build(ctx, data, 5, core.Manhattan, Options{})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = Build(ctx, nil, 1, core.Manhattan, Options{})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = Build(ctx, data, 2, nil, Options{})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	ragged := [][]float32{{1, 2}, {3}, {4, 5}}
	_, err = Build(ctx, ragged, 1, core.Manhattan, Options{})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, randomData(t, 20, 2, 4), 3, core.Euclidean, Options{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkersResolution(t *testing.T) {
	t.Setenv("UMAP_WORKERS", "")
	os.Unsetenv("UMAP_WORKERS")
	assert.Equal(t, 3, workers(3, 10))
	assert.Equal(t, 10, workers(50, 10), "capped at the number of rows")
	assert.GreaterOrEqual(t, workers(0, 1000), 1)

	t.Setenv("UMAP_WORKERS", "4")
	assert.Equal(t, 4, workers(0, 10))
}

func TestRecall(t *testing.T) {
	data := randomData(t, 30, 4, 5)
	exact, err := Build(context.Background(), data, 5, core.Euclidean, Options{Workers: 2})
	require.NoError(t, err)

	r, err := Recall(exact, exact)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	// Half of every row is right.
	approx, err := heap.NewEmpty(exact.Len(), exact.K())
	require.NoError(t, err)
	for i, row := range exact.Indices() {
		for p, id := range row {
			if p%2 == 0 {
				_, err := approx.Push(i, id, exact.Weights()[i][p])
				require.NoError(t, err)
			}
		}
	}
	r, err = Recall(approx, exact)
	require.NoError(t, err)
	assert.InDelta(t, 3.0/5.0, r, 1e-12)

	other, err := heap.NewEmpty(exact.Len()+1, exact.K())
	require.NoError(t, err)
	_, err = Recall(other, exact)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
