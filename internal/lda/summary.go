//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//
// SUMMARIES
//

// TopicSummary - one row of the topic overview
type TopicSummary struct {
	Topic    int          `json:"topic"`
	Terms    []TermWeight `json:"terms"`
	Docs     int          `json:"docs"`     // # of training documents with this as their dominant topic
	DocShare float64      `json:"docshare"` // Docs as a fraction of the corpus
	Weight   float64      `json:"weight"`   // accumulated weight scaled so that the heaviest topic is 1.0
}

// TopDocument - the training document most associated with a topic
type TopDocument struct {
	Topic int     `json:"topic"`
	DocID int     `json:"docid"`
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}

// Summarize - top terms, dominant-topic document counts, and scaled accumulated weight for every topic
func (b *Bundle) Summarize() ([]TopicSummary, error) {
	dots, err := b.DocsOverTopics()
	if err != nil {
		return nil, err
	}
	n := b.Config.TermsPerTopic
	if n < 1 {
		n = vv.LDATOPNTERMS
	}
	tt, err := RankTopicTerms(b.Model, b.Vocab, n)
	if err != nil {
		return nil, err
	}

	dpt := docspertopic(dots)
	dbw := docsbyweight(dots)
	_, dc := dots.Dims()

	summary := make([]TopicSummary, len(dpt))
	for t := range summary {
		summary[t] = TopicSummary{
			Topic:    t,
			Terms:    tt[t],
			Docs:     dpt[t],
			DocShare: float64(dpt[t]) / float64(dc),
			Weight:   dbw[t],
		}
	}
	return summary, nil
}

// TopDocuments - for each topic the training document with the highest membership; the lowest id wins a tie
func (b *Bundle) TopDocuments() ([]TopDocument, error) {
	dots, err := b.DocsOverTopics()
	if err != nil {
		return nil, err
	}

	r, _ := dots.Dims()
	winners := make([]TopDocument, r)
	for topic := 0; topic < r; topic++ {
		row := mat.Row(nil, topic, dots)
		doc := floats.MaxIdx(row)
		txt, _ := b.Corpus.Text(doc)
		winners[topic] = TopDocument{Topic: topic, DocID: doc, Score: row[doc], Text: txt}
	}
	return winners, nil
}

// docspertopic - N documents have topic X as their dominant topic
func docspertopic(dots mat.Matrix) []int {
	r, c := dots.Dims()
	counter := make([]int, r)
	for doc := 0; doc < c; doc++ {
		counter[floats.MaxIdx(mat.Col(nil, doc, dots))]++
	}
	return counter
}

// docsbyweight - total accumulated weight of each topic, scaled against the heaviest
func docsbyweight(dots mat.Matrix) []float64 {
	r, _ := dots.Dims()
	counter := make([]float64, r)
	for topic := 0; topic < r; topic++ {
		counter[topic] = floats.Sum(mat.Row(nil, topic, dots))
	}
	if high := floats.Max(counter); high > 0 {
		floats.Scale(1/high, counter)
	}
	return counter
}
