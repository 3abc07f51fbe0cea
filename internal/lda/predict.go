//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/gen"
	"github.com/e-gun/HipparchiaGoTopics/internal/vec"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"slices"
	"strings"
)

//
// PREDICTOR
//

type TermWeight struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// TopicResult - topic index -> its heaviest terms, heaviest first and alphabetized within equal weights
type TopicResult map[int][]TermWeight

// Prediction - the dominant topic of a query, its terms, and the terms of every other topic
type Prediction struct {
	Best         int          `json:"best"`
	BestTerms    []TermWeight `json:"bestterms"`
	Distribution []float64    `json:"distribution"`
	Topics       TopicResult  `json:"topics"`
}

// Predict - the bundle's model and vocabulary answer the query; vv.LDATOPNTERMS terms per topic unless the
// bundle was configured otherwise
func (b *Bundle) Predict(query string) (*Prediction, error) {
	n := b.Config.TermsPerTopic
	if n < 1 {
		n = vv.LDATOPNTERMS
	}
	return Predict(b.Model, b.Vocab, query, n)
}

// Predict - trim the query, vectorize it against the training vocabulary, fold it into the model, and pick the
// heaviest topic; the lowest topic index wins a tie; an empty query is a document without tokens, not an error
func Predict(m TopicModel, vocab *vec.Vocabulary, query string, nterms int) (*Prediction, error) {
	const (
		FAIL1 = "%w: model knows %d terms but the vocabulary has %d"
		FAIL2 = "%w: expected one topic distribution, got %d"
		FAIL3 = "%w: cannot find topic %d"
	)

	if m.VocabSize() != vocab.Size() {
		return nil, fmt.Errorf(FAIL1, ErrConsistency, m.VocabSize(), vocab.Size())
	}

	q := strings.TrimSpace(query)
	corpus := vec.NewBuilder(1).BuildCorpusWithVocabulary([]string{q}, vocab)

	dists, err := m.TopicDistributions(corpus)
	if err != nil {
		return nil, err
	}
	if len(dists) != 1 {
		return nil, fmt.Errorf(FAIL2, ErrConsistency, len(dists))
	}
	dist := dists[0].Distribution
	best := gen.ArgMax(dist)

	topics, err := RankTopicTerms(m, vocab, nterms)
	if err != nil {
		return nil, err
	}

	bt, ok := topics[best]
	if !ok {
		return nil, fmt.Errorf(FAIL3, ErrConsistency, best)
	}

	return &Prediction{
		Best:         best,
		BestTerms:    bt,
		Distribution: slices.Clone(dist),
		Topics:       topics,
	}, nil
}

// RankTopicTerms - DescribeTopics(n) with the indices swapped for terms; the list is re-sorted so that equal weights
// are alphabetized
func RankTopicTerms(m TopicModel, vocab *vec.Vocabulary, n int) (TopicResult, error) {
	const (
		FAIL = "%w: topic %d refers to term %d but the vocabulary has only %d terms"
	)

	tr := make(TopicResult, m.NumTopics())
	for _, tt := range m.DescribeTopics(n) {
		tw := make([]TermWeight, len(tt.Indices))
		for i, idx := range tt.Indices {
			term, ok := vocab.Term(idx)
			if !ok {
				return nil, fmt.Errorf(FAIL, ErrConsistency, tt.Topic, idx, vocab.Size())
			}
			tw[i] = TermWeight{Term: term, Weight: tt.Weights[i]}
		}
		SortTermWeights(tw)
		tr[tt.Topic] = tw
	}
	return tr, nil
}

// SortTermWeights - weight descending, then term ascending
func SortTermWeights(tw []TermWeight) {
	slices.SortFunc(tw, func(a, b TermWeight) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return strings.Compare(a.Term, b.Term)
		}
	})
}
