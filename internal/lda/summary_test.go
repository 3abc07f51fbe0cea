package lda

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDocsPerTopicAndWeight(t *testing.T) {
	t.Parallel()
	// 2 topics x 4 documents
	dots := mat.NewDense(2, 4, []float64{
		0.9, 0.2, 0.5, 0.6,
		0.1, 0.8, 0.5, 0.4,
	})
	assert.Equal(t, []int{3, 1}, docspertopic(dots), "a tie goes to the lower topic")
	assert.InDeltaSlice(t, []float64{1.0, 1.8 / 2.2}, docsbyweight(dots), 1e-12)
}

func TestSummarize(t *testing.T) {
	b, err := Trainer{Fitter: &stripefitter{}, Workers: 2}.Train(context.Background(), animals, testconfig(2))
	require.NoError(t, err)

	sum, err := b.Summarize()
	require.NoError(t, err)
	require.Len(t, sum, 2)

	total := 0
	heaviest := 0.0
	for i, s := range sum {
		assert.Equal(t, i, s.Topic)
		assert.NotEmpty(t, s.Terms)
		total += s.Docs
		heaviest = max(heaviest, s.Weight)
	}
	assert.Equal(t, len(animals), total)
	assert.InDelta(t, 1.0, heaviest, 1e-12)
}

func TestTopDocuments(t *testing.T) {
	b, err := Trainer{Fitter: &stripefitter{}, Workers: 2}.Train(context.Background(), animals, testconfig(2))
	require.NoError(t, err)

	top, err := b.TopDocuments()
	require.NoError(t, err)
	require.Len(t, top, 2)

	dots, err := b.DocsOverTopics()
	require.NoError(t, err)
	for _, td := range top {
		assert.Equal(t, animals[td.DocID], td.Text)
		for doc := range animals {
			assert.LessOrEqual(t, dots.At(td.Topic, doc), td.Score)
		}
	}
}
