package core

import (
	"github.com/viterin/vek/vek32"
)

// NormalizeVector scales vec in place to unit L2 norm. Zero vectors are left as they are.
func NormalizeVector(vec []float32) {
	if len(vec) == 0 {
		return
	}
	norm := vek32.Norm(vec)
	if norm == 0 {
		return
	}
	vek32.MulNumber_Inplace(vec, 1/norm)
}

// NormalizeBatch normalizes multiple vectors in a batch using goroutines.
func NormalizeBatch(vecs [][]float32) {
	if len(vecs) == 0 {
		return
	}

	// Create a channel to synchronize the goroutines.
	done := make(chan struct{})
	for i := range vecs {
		go func(i int) {
			NormalizeVector(vecs[i])
			done <- struct{}{}
		}(i)
	}

	// Wait for all go routines to finish.
	for range vecs {
		<-done
	}

	close(done)
}

// PrepareVectors normalizes vecs in place when m is an angular metric and does nothing otherwise.
func PrepareVectors(m Metric, vecs [][]float32) {
	if m == nil || !m.IsAngular() {
		return
	}
	NormalizeBatch(vecs)
}
