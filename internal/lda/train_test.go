package lda

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainRejectsEmptyCorpus(t *testing.T) {
	f := &stripefitter{}
	tr := Trainer{Fitter: f, Workers: 2}

	_, err := tr.Train(context.Background(), nil, testconfig(2))
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	// every token is too short: the vocabulary is empty
	_, err = tr.Train(context.Background(), []string{"cat dog", "a an the"}, testconfig(2))
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	assert.Equal(t, 0, f.calls, "the fitter is never reached")
}

func TestTrainRejectsBadParams(t *testing.T) {
	tr := Trainer{Fitter: &stripefitter{}}
	for _, k := range []int{0, -1, 10000} {
		_, err := tr.Train(context.Background(), animals, testconfig(k))
		assert.ErrorIs(t, err, ErrBadParams, "k=%d", k)
	}
	cfg := testconfig(2)
	cfg.MaxIterations = 0
	_, err := tr.Train(context.Background(), animals, cfg)
	assert.ErrorIs(t, err, ErrBadParams)
}

func TestTrainBuildsBundle(t *testing.T) {
	var reports []string
	tr := Trainer{Fitter: &stripefitter{}, Workers: 3, Report: func(s string) { reports = append(reports, s) }}

	b, err := tr.Train(context.Background(), animals, testconfig(2))
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	assert.Equal(t, len(animals), b.Corpus.Len())
	assert.Equal(t, b.Vocab.Size(), b.Model.VocabSize())
	assert.Equal(t, 2, b.Model.NumTopics())
	assert.Len(t, reports, 3)
}

func TestNLPFitter(t *testing.T) {
	cfg := testconfig(2)
	cfg.MaxIterations = 20
	cfg.XformPasses = 20

	b, err := Trainer{Fitter: NLPFitter{Processes: 1}, Workers: 2}.Train(context.Background(), animals, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Model.NumTopics())
	assert.Equal(t, b.Vocab.Size(), b.Model.VocabSize())

	p, err := b.Predict(animals[0])
	require.NoError(t, err)
	assert.Len(t, p.Distribution, 2)
}

func TestNLPFitterHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Trainer{Fitter: NLPFitter{}}.Train(ctx, animals, testconfig(2))
	assert.ErrorIs(t, err, context.Canceled)
}
