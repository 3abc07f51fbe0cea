package lda

import (
	"testing"

	"github.com/e-gun/HipparchiaGoTopics/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestNewModelNormalizesRows(t *testing.T) {
	t.Parallel()
	comp := mat.NewDense(2, 3, []float64{
		1, 1, 2,
		0, 0, 0,
	})
	m, err := NewModel(comp, 0.1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumTopics())
	assert.Equal(t, 3, m.VocabSize())
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.5}, m.Phi[0:3], 1e-12)
	// an all-zero row becomes uniform
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, m.Phi[3:6], 1e-12)
	require.NoError(t, m.Validate())
}

func TestNewModelRejectsNegativeWeights(t *testing.T) {
	t.Parallel()
	_, err := NewModel(mat.NewDense(1, 2, []float64{1, -1}), 0.1, 10)
	assert.ErrorIs(t, err, ErrConsistency)
}

func TestDescribeTopics(t *testing.T) {
	t.Parallel()
	comp := mat.NewDense(2, 4, []float64{
		1, 4, 4, 1,
		5, 1, 1, 3,
	})
	m, err := NewModel(comp, 0.1, 10)
	require.NoError(t, err)

	d := m.DescribeTopics(2)
	require.Len(t, d, 2)
	assert.Equal(t, []int{1, 2}, d[0].Indices, "equal weights keep vocabulary order")
	assert.Equal(t, []int{0, 3}, d[1].Indices)
	assert.InDelta(t, 0.5, d[1].Weights[0], 1e-12)

	assert.Len(t, m.DescribeTopics(99)[0].Indices, 4)
	assert.Empty(t, m.DescribeTopics(-1)[0].Indices)
}

func TestTopicDistributions(t *testing.T) {
	t.Parallel()
	comp := mat.NewDense(2, 2, []float64{
		9, 1,
		1, 9,
	})
	m, err := NewModel(comp, 0.1, 100)
	require.NoError(t, err)

	c := &vec.Corpus{Dim: 2, Docs: []vec.Document{
		{ID: 0, Vector: vec.DocVector{Dim: 2, Indices: []int{0}, Values: []float64{5}}},
		{ID: 1, Vector: vec.DocVector{Dim: 2, Indices: []int{1}, Values: []float64{5}}},
		{ID: 2, Vector: vec.DocVector{Dim: 2}},
	}}

	dd, err := m.TopicDistributions(c)
	require.NoError(t, err)
	require.Len(t, dd, 3)

	for _, d := range dd {
		assert.InDelta(t, 1.0, floats.Sum(d.Distribution), 1e-9)
	}
	assert.Greater(t, dd[0].Distribution[0], 0.8)
	assert.Greater(t, dd[1].Distribution[1], 0.8)
	assert.Equal(t, []float64{0.5, 0.5}, dd[2].Distribution, "no tokens: uniform")

	again, err := m.TopicDistributions(c)
	require.NoError(t, err)
	assert.Equal(t, dd, again, "inference is deterministic")
}

func TestTopicDistributionsDimensionMismatch(t *testing.T) {
	t.Parallel()
	m, err := NewModel(mat.NewDense(2, 2, []float64{1, 1, 1, 1}), 0.1, 10)
	require.NoError(t, err)
	_, err = m.TopicDistributions(&vec.Corpus{Dim: 3})
	assert.ErrorIs(t, err, ErrConsistency)
}

func TestModelValidate(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, (&Model{K: 2, W: 2, Phi: []float64{1}}).Validate(), ErrConsistency)
	assert.ErrorIs(t, (&Model{}).Validate(), ErrConsistency)
}
