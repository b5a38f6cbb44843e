package core

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/viterin/vek/vek32"
)

// Metric computes a dissimilarity between two vectors of equal length.
// Implementations are stateless and safe for concurrent use.
type Metric interface {
	// IsAngular reports whether the metric is meant for normalized vectors.
	IsAngular() bool

	// Distance returns a non-negative, finite distance between x and y.
	// It panics if the vectors have different lengths.
	Distance(x, y []float32) float64
}

// The metric singletons.
var (
	Manhattan  Metric = manhattan{}
	BrayCurtis Metric = brayCurtis{}
	Euclidean  Metric = euclidean{}
	Cosine     Metric = cosine{}
)

// Metrics is a map of human–readable names to metrics.
// You can use it to choose a distance metric by name.
var Metrics = map[string]Metric{
	"manhattan":  Manhattan,
	"l1":         Manhattan,
	"taxicab":    Manhattan,
	"braycurtis": BrayCurtis,
	"euclidean":  Euclidean,
	"l2":         Euclidean,
	"cosine":     Cosine,
}

// MetricByName looks up a metric in Metrics, ignoring case and surrounding spaces.
func MetricByName(name string) (Metric, error) {
	m, ok := Metrics[strings.TrimSpace(strings.ToLower(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidArgument, name)
	}
	return m, nil
}

// MetricNames returns the registered metric names in sorted order.
func MetricNames() []string {
	names := make([]string, 0, len(Metrics))
	for name := range Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkLengths(a, b []float32) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vectors must have the same length: %d != %d", len(a), len(b)))
	}
}

// manhattan is the L1 distance: sum of |x_i - y_i|.
type manhattan struct{}

func (manhattan) IsAngular() bool { return false }

func (manhattan) Distance(x, y []float32) float64 {
	checkLengths(x, y)
	if len(x) == 0 {
		return 0
	}
	return float64(vek32.ManhattanDistance(x, y))
}

func (manhattan) String() string { return "manhattan" }

// brayCurtis is sum |x_i - y_i| / sum |x_i + y_i|, defined as 0 when the denominator vanishes.
type brayCurtis struct{}

func (brayCurtis) IsAngular() bool { return false }

func (brayCurtis) Distance(x, y []float32) float64 {
	checkLengths(x, y)
	if len(x) == 0 {
		return 0
	}
	numerator := float64(vek32.ManhattanDistance(x, y))
	var denominator float64
	for i := range x {
		denominator += math.Abs(float64(x[i] + y[i]))
	}
	if denominator > 0 {
		return numerator / denominator
	}
	return 0
}

func (brayCurtis) String() string { return "braycurtis" }

// euclidean is the L2 distance.
type euclidean struct{}

func (euclidean) IsAngular() bool { return false }

func (euclidean) Distance(x, y []float32) float64 {
	checkLengths(x, y)
	if len(x) == 0 {
		return 0
	}
	return float64(vek32.Distance(x, y))
}

func (euclidean) String() string { return "euclidean" }

// cosine is one minus the cosine similarity. Two zero vectors are at distance 0,
// a zero vector and a non-zero one at distance 1.
type cosine struct{}

func (cosine) IsAngular() bool { return true }

func (cosine) Distance(x, y []float32) float64 {
	checkLengths(x, y)
	if len(x) == 0 {
		return 0
	}
	normX := float64(vek32.Norm(x))
	normY := float64(vek32.Norm(y))
	switch {
	case normX == 0 && normY == 0:
		return 0
	case normX == 0 || normY == 0:
		return 1
	}
	d := 1 - float64(vek32.Dot(x, y))/(normX*normY)
	return math.Max(d, 0)
}

func (cosine) String() string { return "cosine" }
