//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"slices"
	"sort"
)

//
// VECTORIZER
//

// DocVector - sparse term counts; Indices are ascending and every one of them is < Dim
type DocVector struct {
	Dim     int       `json:"dim"`
	Indices []int     `json:"idx"`
	Values  []float64 `json:"val"`
}

// Vectorize - +1.0 for every in-vocabulary token; tokens outside the vocabulary are dropped silently
func Vectorize(tokens []string, v *Vocabulary) DocVector {
	counts := make(map[int]float64)
	for _, t := range tokens {
		if i, ok := v.Index(t); ok {
			counts[i] += 1
		}
	}

	dv := DocVector{
		Dim:     v.Size(),
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for i := range counts {
		dv.Indices = append(dv.Indices, i)
	}
	slices.Sort(dv.Indices)
	for _, i := range dv.Indices {
		dv.Values = append(dv.Values, counts[i])
	}
	return dv
}

// At - the count at index i; zero if absent
func (d DocVector) At(i int) float64 {
	j := sort.SearchInts(d.Indices, i)
	if j < len(d.Indices) && d.Indices[j] == i {
		return d.Values[j]
	}
	return 0
}

// NNZ - number of non-zero entries
func (d DocVector) NNZ() int {
	return len(d.Indices)
}

// Total - the number of in-vocabulary tokens the document contained
func (d DocVector) Total() float64 {
	t := 0.0
	for _, v := range d.Values {
		t += v
	}
	return t
}

// Dense - expand to a []float64 of length Dim
func (d DocVector) Dense() []float64 {
	out := make([]float64, d.Dim)
	for j, i := range d.Indices {
		out[i] = d.Values[j]
	}
	return out
}

// Valid - indices ascending, inside [0, Dim), and paired with a value
func (d DocVector) Valid() bool {
	if len(d.Indices) != len(d.Values) {
		return false
	}
	for j, i := range d.Indices {
		if i < 0 || i >= d.Dim {
			return false
		}
		if j > 0 && d.Indices[j-1] >= i {
			return false
		}
	}
	return true
}
