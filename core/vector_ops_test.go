package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVectorClose(t *testing.T, want, got []float32, msgAndArgs ...interface{}) {
	t.Helper()
	if assert.Len(t, got, len(want), msgAndArgs...) {
		assert.InDeltaSlice(t, want, got, 1e-5, msgAndArgs...)
	}
}

func TestNormalizeVector(t *testing.T) {
	tests := []struct {
		name     string
		vec      []float32
		expected []float32
	}{
		{"Uniform", []float32{2, 2, 2, 2}, []float32{0.5, 0.5, 0.5, 0.5}},
		{"Axis", []float32{0, -5, 0}, []float32{0, -1, 0}},
		{"Pythagorean", []float32{3, 4}, []float32{0.6, 0.8}},
		{"Zero", []float32{0, 0, 0}, []float32{0, 0, 0}},
		{"Empty", []float32{}, []float32{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			NormalizeVector(tt.vec)
			assertVectorClose(t, tt.expected, tt.vec)
		})
	}
}

func TestNormalizeBatch(t *testing.T) {
	vecs := [][]float32{
		{3, 0, 4},
		{1, 2, 2},
		{0, 0, 0},
	}

	expected := [][]float32{
		{0.6, 0, 0.8},
		{0.333333, 0.666666, 0.666666},
		{0, 0, 0},
	}

	NormalizeBatch(vecs)

	for idx, vec := range vecs {
		assertVectorClose(t, expected[idx], vec, "vector %d", idx)
	}
}

func TestNormalizeBatchLarge(t *testing.T) {
	numVecs := 100
	vecs := make([][]float32, numVecs)
	for i := range vecs {
		vecs[i] = []float32{float32(i + 1), 0, float32(i + 1)}
	}

	NormalizeBatch(vecs)

	want := float32(1 / math.Sqrt2)
	for idx, vec := range vecs {
		assertVectorClose(t, []float32{want, 0, want}, vec, "vector %d", idx)
	}
}

func TestPrepareVectors(t *testing.T) {
	angular := [][]float32{{3, 4}, {0, 0}}
	PrepareVectors(Cosine, angular)
	assertVectorClose(t, []float32{0.6, 0.8}, angular[0])
	assert.Equal(t, []float32{0, 0}, angular[1])

	plain := [][]float32{{3, 4}}
	PrepareVectors(Manhattan, plain)
	assert.Equal(t, []float32{3, 4}, plain[0])
}
