//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/vec"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"math"
	"slices"
)

//
// THE TOPIC MODEL
//

// TopicModel - what the predictor and the summaries need from a fitted model
type TopicModel interface {
	NumTopics() int
	VocabSize() int
	DescribeTopics(n int) []TopicTerms
	TopicDistributions(c *vec.Corpus) ([]DocTopics, error)
}

// TopicTerms - the n heaviest vocabulary indices of one topic, heaviest first
type TopicTerms struct {
	Topic   int
	Indices []int
	Weights []float64
}

// DocTopics - a document id and its distribution over the topics
type DocTopics struct {
	ID           int
	Distribution []float64
}

// Model - the fitted topics-over-words distribution (phi) plus what inference needs to fold new documents into it
type Model struct {
	K      int       `json:"k"`
	W      int       `json:"w"`
	Alpha  float64   `json:"alpha"`
	Passes int       `json:"passes"`
	Phi    []float64 `json:"phi"` // K x W, row-major; every row sums to 1
}

// NewModel - normalize the rows of a topics x words matrix (e.g. nlp.LatentDirichletAllocation.Components())
func NewModel(components mat.Matrix, alpha float64, passes int) (*Model, error) {
	const (
		FAIL1 = "%w: a %d x %d topic matrix is unusable"
		FAIL2 = "%w: topic %d, term %d has weight %f"
	)

	k, w := components.Dims()
	if k == 0 || w == 0 {
		return nil, fmt.Errorf(FAIL1, ErrConsistency, k, w)
	}
	if passes < 1 {
		passes = vv.LDAXFORMPASSES
	}

	m := &Model{K: k, W: w, Alpha: alpha, Passes: passes, Phi: make([]float64, k*w)}
	for t := 0; t < k; t++ {
		row := m.Phi[t*w : (t+1)*w]
		for j := 0; j < w; j++ {
			v := components.At(t, j)
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf(FAIL2, ErrConsistency, t, j, v)
			}
			row[j] = v
		}
		if s := floats.Sum(row); s > 0 {
			floats.Scale(1/s, row)
		} else {
			for j := range row {
				row[j] = 1 / float64(w)
			}
		}
	}
	return m, nil
}

func (m *Model) NumTopics() int { return m.K }
func (m *Model) VocabSize() int { return m.W }

// Validate - the shape of a model that came back from storage
func (m *Model) Validate() error {
	const (
		FAIL = "%w: model claims %d x %d but carries %d weights"
	)
	if m.K < 1 || m.W < 1 || len(m.Phi) != m.K*m.W {
		return fmt.Errorf(FAIL, ErrConsistency, m.K, m.W, len(m.Phi))
	}
	return nil
}

// Components - phi as a gonum matrix; it shares the underlying data
func (m *Model) Components() *mat.Dense {
	return mat.NewDense(m.K, m.W, m.Phi)
}

// DescribeTopics - per topic, the n heaviest terms; equal weights keep vocabulary order
func (m *Model) DescribeTopics(n int) []TopicTerms {
	if n > m.W {
		n = m.W
	}
	if n < 0 {
		n = 0
	}

	described := make([]TopicTerms, m.K)
	for t := 0; t < m.K; t++ {
		row := m.Phi[t*m.W : (t+1)*m.W]
		idx := make([]int, m.W)
		for j := range idx {
			idx[j] = j
		}
		slices.SortStableFunc(idx, func(a, b int) int {
			switch {
			case row[a] > row[b]:
				return -1
			case row[a] < row[b]:
				return 1
			default:
				return a - b
			}
		})
		tt := TopicTerms{Topic: t, Indices: idx[:n:n], Weights: make([]float64, n)}
		for i := 0; i < n; i++ {
			tt.Weights[i] = row[idx[i]]
		}
		described[t] = tt
	}
	return described
}

// TopicDistributions - fold every document of the corpus into the fitted topics; phi stays fixed, so the answer
// depends only on the stored model and the document
func (m *Model) TopicDistributions(c *vec.Corpus) ([]DocTopics, error) {
	const (
		FAIL = "%w: corpus dimension %d does not match the model's vocabulary size %d"
	)
	if c.Dim != m.W {
		return nil, fmt.Errorf(FAIL, ErrConsistency, c.Dim, m.W)
	}

	out := make([]DocTopics, c.Len())
	for i, d := range c.Docs {
		out[i] = DocTopics{ID: d.ID, Distribution: m.foldin(d.Vector)}
	}
	return out, nil
}

// foldin - EM over theta alone:
//
//	theta'[k] = (alpha + sum_w n_w * theta[k]*phi[k][w] / sum_j theta[j]*phi[j][w]) / (N + K*alpha)
//
// starting from the uniform distribution and stopping after Passes rounds or once no component moves more than
// vv.LDAFOLDINTOL
func (m *Model) foldin(dv vec.DocVector) []float64 {
	theta := make([]float64, m.K)
	for k := range theta {
		theta[k] = 1 / float64(m.K)
	}
	if dv.NNZ() == 0 {
		return theta
	}

	next := make([]float64, m.K)
	resp := make([]float64, m.K)
	for pass := 0; pass < m.Passes; pass++ {
		for k := range next {
			next[k] = m.Alpha
		}
		for j, w := range dv.Indices {
			for k := 0; k < m.K; k++ {
				resp[k] = theta[k] * m.Phi[k*m.W+w]
			}
			s := floats.Sum(resp)
			if s == 0 {
				continue
			}
			floats.AddScaled(next, dv.Values[j]/s, resp)
		}

		total := floats.Sum(next)
		if total == 0 {
			break
		}
		floats.Scale(1/total, next)

		delta := floats.Distance(theta, next, math.Inf(1))
		copy(theta, next)
		if delta < vv.LDAFOLDINTOL {
			break
		}
	}
	return theta
}
