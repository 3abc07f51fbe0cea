package lda

import (
	"context"
	"testing"

	"github.com/e-gun/HipparchiaGoTopics/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedmodel - answers every document with the same distribution
type fixedmodel struct {
	w         int
	dist      []float64
	described []TopicTerms
}

func (f fixedmodel) NumTopics() int                    { return len(f.dist) }
func (f fixedmodel) VocabSize() int                    { return f.w }
func (f fixedmodel) DescribeTopics(n int) []TopicTerms { return f.described }
func (f fixedmodel) TopicDistributions(c *vec.Corpus) ([]DocTopics, error) {
	out := make([]DocTopics, c.Len())
	for i := range out {
		out[i] = DocTopics{ID: i, Distribution: f.dist}
	}
	return out, nil
}

func TestPredictArgmaxTieGoesToLowestIndex(t *testing.T) {
	t.Parallel()
	vocab := vec.NewVocabulary([]string{"bird", "fish"})
	m := fixedmodel{
		w:    2,
		dist: []float64{0.2, 0.4, 0.4},
		described: []TopicTerms{
			{Topic: 0, Indices: []int{0}, Weights: []float64{1}},
			{Topic: 1, Indices: []int{1}, Weights: []float64{1}},
			{Topic: 2, Indices: []int{0}, Weights: []float64{1}},
		},
	}
	p, err := Predict(m, vocab, "anything at all", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Best)
	assert.Equal(t, []TermWeight{{"fish", 1}}, p.BestTerms)
	assert.Len(t, p.Topics, 3)
}

func TestPredictMissingTopicIsAConsistencyError(t *testing.T) {
	t.Parallel()
	vocab := vec.NewVocabulary([]string{"bird", "fish"})
	m := fixedmodel{
		w:         2,
		dist:      []float64{0.1, 0.9},
		described: []TopicTerms{{Topic: 0, Indices: []int{0}, Weights: []float64{1}}},
	}
	_, err := Predict(m, vocab, "bird", 10)
	require.ErrorIs(t, err, ErrConsistency)
	assert.Contains(t, err.Error(), "cannot find topic")
}

func TestPredictTermOutsideVocabulary(t *testing.T) {
	t.Parallel()
	vocab := vec.NewVocabulary([]string{"bird", "fish"})
	m := fixedmodel{
		w:         2,
		dist:      []float64{1},
		described: []TopicTerms{{Topic: 0, Indices: []int{7}, Weights: []float64{1}}},
	}
	_, err := Predict(m, vocab, "bird", 10)
	assert.ErrorIs(t, err, ErrConsistency)
}

func TestPredictVocabularyMismatch(t *testing.T) {
	t.Parallel()
	m := fixedmodel{w: 3, dist: []float64{1}}
	_, err := Predict(m, vec.NewVocabulary([]string{"bird"}), "bird", 10)
	assert.ErrorIs(t, err, ErrConsistency)
}

func TestRankTopicTermsAlphabetizesEqualWeights(t *testing.T) {
	t.Parallel()
	vocab := vec.NewVocabulary([]string{"zebra", "apple", "mango"})
	m := fixedmodel{
		w:    3,
		dist: []float64{1},
		described: []TopicTerms{
			{Topic: 0, Indices: []int{0, 1, 2}, Weights: []float64{0.4, 0.4, 0.2}},
		},
	}
	tr, err := RankTopicTerms(m, vocab, 3)
	require.NoError(t, err)
	assert.Equal(t, []TermWeight{{"apple", 0.4}, {"zebra", 0.4}, {"mango", 0.2}}, tr[0])
}

func TestPredictWithTrainedBundle(t *testing.T) {
	b, err := Trainer{Fitter: &stripefitter{}, Workers: 2}.Train(context.Background(), animals, testconfig(2))
	require.NoError(t, err)

	for _, q := range []string{"", "   ", "nothing known here", animals[1]} {
		p, err := b.Predict(q)
		require.NoError(t, err, q)
		assert.GreaterOrEqual(t, p.Best, 0)
		assert.Less(t, p.Best, 2)
		assert.Len(t, p.Topics, 2)
		for topic, tw := range p.Topics {
			assert.LessOrEqual(t, len(tw), b.Config.TermsPerTopic, "topic %d", topic)
			for i := 1; i < len(tw); i++ {
				ok := tw[i-1].Weight > tw[i].Weight || (tw[i-1].Weight == tw[i].Weight && tw[i-1].Term < tw[i].Term)
				assert.True(t, ok, "topic %d is out of order at %d", topic, i)
			}
		}
	}

	// an empty query carries no evidence: the uniform distribution and so topic 0
	p, err := b.Predict("")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Best)
	assert.Equal(t, []float64{0.5, 0.5}, p.Distribution)
}

func TestPredictMatchesTrainingDocument(t *testing.T) {
	b, err := Trainer{Fitter: &stripefitter{}, Workers: 2}.Train(context.Background(), animals, testconfig(2))
	require.NoError(t, err)

	dots, err := b.DocsOverTopics()
	require.NoError(t, err)

	for doc, text := range animals {
		p, err := b.Predict(text)
		require.NoError(t, err)
		for topic := range p.Distribution {
			assert.InDelta(t, dots.At(topic, doc), p.Distribution[topic], 1e-9)
		}
	}
}
