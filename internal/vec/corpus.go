//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/gen"
	"github.com/e-gun/sparse"
	"runtime"
	"sync"
	"time"
)

//
// CORPUS BUILDER
//

// Document - one input text, its position in the input, and its vector
type Document struct {
	ID     int       `json:"id"`
	Text   string    `json:"text"`
	Vector DocVector `json:"vector"`
}

// Corpus - documents in input order; Docs[i].ID == i
type Corpus struct {
	Docs []Document `json:"docs"`
	Dim  int        `json:"dim"`
}

func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Docs)
}

// Text - the raw text of document id
func (c *Corpus) Text(id int) (string, bool) {
	if c == nil || id < 0 || id >= len(c.Docs) {
		return "", false
	}
	return c.Docs[id].Text, true
}

// Matrix - the terms x documents count matrix that nlp.LatentDirichletAllocation.Fit() wants; nil if either
// dimension is zero
func (c *Corpus) Matrix() *sparse.CSC {
	if c.Len() == 0 || c.Dim == 0 {
		return nil
	}
	dok := sparse.NewDOK(c.Dim, len(c.Docs))
	for j, d := range c.Docs {
		for k, i := range d.Vector.Indices {
			dok.Set(i, j, d.Vector.Values[k])
		}
	}
	return dok.ToCSC()
}

// Validate - sequential ids and vectors that fit the dimension
func (c *Corpus) Validate() error {
	const (
		FAIL1 = "document at position %d carries id %d"
		FAIL2 = "document %d has a vector of dimension %d inside a corpus of dimension %d"
		FAIL3 = "document %d has a malformed vector"
	)
	for i, d := range c.Docs {
		if d.ID != i {
			return fmt.Errorf(FAIL1, i, d.ID)
		}
		if d.Vector.Dim != c.Dim {
			return fmt.Errorf(FAIL2, i, d.Vector.Dim, c.Dim)
		}
		if !d.Vector.Valid() {
			return fmt.Errorf(FAIL3, i)
		}
	}
	return nil
}

// Builder - Tokenizer -> Vocabulary Builder -> Vectorizer, spread over Workers goroutines
type Builder struct {
	Workers int
}

func NewBuilder(workers int) *Builder {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Builder{Workers: workers}
}

// Tokenize - every text, in parallel; result[i] belongs to texts[i]
func (b *Builder) Tokenize(texts []string) [][]string {
	tokens := make([][]string, len(texts))
	b.each(len(texts), func(i int) {
		tokens[i] = Tokenize(texts[i])
	})
	return tokens
}

// BuildCorpus - learn a vocabulary from the texts and vectorize them against it
func (b *Builder) BuildCorpus(texts []string) (*Corpus, *Vocabulary) {
	start := time.Now()

	// [a] tokenize
	tokens := b.Tokenize(texts)
	Msg.Timer("A1", fmt.Sprintf("BuildCorpus() tokenized %s documents", Msg.Count(len(texts))), start, start)
	previous := time.Now()

	// [b] count, rank, prune
	vocab := BuildVocabulary(tokens, b.Workers)
	Msg.Timer("A2", fmt.Sprintf("BuildCorpus() found %s terms", Msg.Count(vocab.Size())), start, previous)
	previous = time.Now()

	// [c] vectorize
	c := b.vectorize(texts, tokens, vocab)
	Msg.Timer("A3", "BuildCorpus() vectorized the corpus", start, previous)

	return c, vocab
}

// BuildCorpusWithVocabulary - vectorize against a vocabulary built elsewhere; this is how queries reach the
// coordinate system the model was trained in
func (b *Builder) BuildCorpusWithVocabulary(texts []string, vocab *Vocabulary) *Corpus {
	return b.vectorize(texts, b.Tokenize(texts), vocab)
}

func (b *Builder) vectorize(texts []string, tokens [][]string, vocab *Vocabulary) *Corpus {
	c := &Corpus{
		Docs: make([]Document, len(texts)),
		Dim:  vocab.Size(),
	}
	b.each(len(texts), func(i int) {
		c.Docs[i] = Document{ID: i, Text: texts[i], Vector: Vectorize(tokens[i], vocab)}
	})
	return c
}

// each - run fn(0)...fn(n-1) over contiguous spans; fn(i) may only write to slot i of its output
func (b *Builder) each(n int, fn func(i int)) {
	var wg sync.WaitGroup
	for _, s := range gen.Spans(n, b.Workers) {
		wg.Add(1)
		go func(s gen.Span) {
			defer wg.Done()
			for i := s.Start; i < s.End; i++ {
				fn(i)
			}
		}(s)
	}
	wg.Wait()
}
