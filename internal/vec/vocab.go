//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/json"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/gen"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"slices"
	"strings"
	"sync"
)

//
// VOCABULARY
//

// Vocabulary - term <-> dense index; immutable once built, so it can be shared between goroutines
type Vocabulary struct {
	terms []string
	index map[string]int
}

// TermCount - a term and the number of times it appears in the whole corpus
type TermCount struct {
	Term  string
	Count int
}

// NewVocabulary - index the terms in the order given; a repeated term keeps its first index
func NewVocabulary(terms []string) *Vocabulary {
	v := &Vocabulary{
		terms: make([]string, 0, len(terms)),
		index: make(map[string]int, len(terms)),
	}
	for _, t := range terms {
		if _, seen := v.index[t]; seen {
			continue
		}
		v.index[t] = len(v.terms)
		v.terms = append(v.terms, t)
	}
	return v
}

func (v *Vocabulary) Size() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Index - term to dense index
func (v *Vocabulary) Index(term string) (int, bool) {
	if v == nil {
		return 0, false
	}
	i, ok := v.index[term]
	return i, ok
}

// Term - dense index to term
func (v *Vocabulary) Term(i int) (string, bool) {
	if v == nil || i < 0 || i >= len(v.terms) {
		return "", false
	}
	return v.terms[i], true
}

// Terms - a copy of the terms in index order
func (v *Vocabulary) Terms() []string {
	if v == nil {
		return nil
	}
	return slices.Clone(v.terms)
}

func (v *Vocabulary) MarshalJSON() ([]byte, error) {
	if v.terms == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.terms)
}

func (v *Vocabulary) UnmarshalJSON(b []byte) error {
	const (
		FAIL = "vocabulary repeats %d term(s)"
	)
	var tt []string
	if err := json.Unmarshal(b, &tt); err != nil {
		return err
	}
	nv := NewVocabulary(tt)
	if nv.Size() != len(tt) {
		return fmt.Errorf(FAIL, len(tt)-nv.Size())
	}
	*v = *nv
	return nil
}

// CountTerms - a parallel tally of every token in every document; each worker counts its own span of documents
// and the partial maps are merged once all of the workers are done
func CountTerms(docs [][]string, workers int) map[string]int {
	spans := gen.Spans(len(docs), workers)
	parts := make([]map[string]int, len(spans))

	var wg sync.WaitGroup
	for i, s := range spans {
		wg.Add(1)
		go func(i int, s gen.Span) {
			defer wg.Done()
			m := make(map[string]int)
			for _, d := range docs[s.Start:s.End] {
				for _, t := range d {
					m[t]++
				}
			}
			parts[i] = m
		}(i, s)
	}
	wg.Wait()

	return gen.MergeCounts(parts)
}

// RankTerms - most frequent first; equal counts are alphabetized so that the ranking never depends on map order
func RankTerms(counts map[string]int) []TermCount {
	ranked := make([]TermCount, 0, len(counts))
	for t, c := range counts {
		ranked = append(ranked, TermCount{Term: t, Count: c})
	}
	slices.SortFunc(ranked, func(a, b TermCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Term, b.Term)
	})
	return ranked
}

// NumStopwords - the most frequent tenth of the distinct terms (rounded down) are treated as stopwords
func NumStopwords(distinct int) int {
	return distinct / vv.STOPWORDDECILE
}

// BuildVocabulary - count, rank, drop the stopwords, and index what is left in rank order
func BuildVocabulary(docs [][]string, workers int) *Vocabulary {
	// [a] count
	counts := CountTerms(docs, workers)

	// [b] rank
	ranked := RankTerms(counts)

	// [c] prune
	ns := NumStopwords(len(ranked))
	if ns > 0 {
		Msg.TMI(fmt.Sprintf("BuildVocabulary() dropping %d stopwords: %s...", ns, ranked[0].Term))
	}
	ranked = ranked[ns:]

	// [d] index
	terms := make([]string, len(ranked))
	for i := range ranked {
		terms[i] = ranked[i].Term
	}
	return NewVocabulary(terms)
}
