//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/db"
	"github.com/e-gun/HipparchiaGoTopics/internal/str"
	"github.com/e-gun/HipparchiaGoTopics/internal/vec"
	"gonum.org/v1/gonum/mat"
	"sync"
	"time"
)

//
// MODEL WRAPPER
//

// Bundle - the fitted model, the corpus it was fitted on (texts included), and the vocabulary that maps between
// them; read-only once built and safe for concurrent predictions
type Bundle struct {
	ID     string
	Model  *Model
	Corpus *vec.Corpus
	Vocab  *vec.Vocabulary
	Config str.LDAConfig
	Built  time.Time

	once    sync.Once
	dots    *mat.Dense
	dotserr error
}

// modelfile - the model artifact also remembers how the model was made
type modelfile struct {
	Model  *Model        `json:"model"`
	Config str.LDAConfig `json:"config"`
	Built  time.Time     `json:"built"`
}

// Validate - every part present, and every part the same size as the others
func (b *Bundle) Validate() error {
	const (
		FAIL1 = "%w: bundle is missing its %s"
		FAIL2 = "%w: model knows %d terms but the vocabulary has %d"
		FAIL3 = "%w: corpus has dimension %d but the vocabulary has %d terms"
		FAIL4 = "%w: %s"
	)
	switch {
	case b.Model == nil:
		return fmt.Errorf(FAIL1, ErrConsistency, "model")
	case b.Corpus == nil:
		return fmt.Errorf(FAIL1, ErrConsistency, "corpus")
	case b.Vocab == nil:
		return fmt.Errorf(FAIL1, ErrConsistency, "vocabulary")
	}
	if err := b.Model.Validate(); err != nil {
		return err
	}
	if b.Model.VocabSize() != b.Vocab.Size() {
		return fmt.Errorf(FAIL2, ErrConsistency, b.Model.VocabSize(), b.Vocab.Size())
	}
	if b.Corpus.Dim != b.Vocab.Size() {
		return fmt.Errorf(FAIL3, ErrConsistency, b.Corpus.Dim, b.Vocab.Size())
	}
	if err := b.Corpus.Validate(); err != nil {
		return fmt.Errorf(FAIL4, ErrConsistency, err.Error())
	}
	return nil
}

// Save - encode all three artifacts first and hand them to the store in one call; the store writes all or nothing
func (b *Bundle) Save(ctx context.Context, s db.Store, id string) error {
	const (
		FAIL1 = "cannot encode the %s: %w"
		MSG1  = "Bundle.Save(): '%s' stored [model %s; corpus %s; vocab %s bytes]"
	)

	if err := b.Validate(); err != nil {
		return err
	}

	var arts db.Artifacts
	var err error

	if arts.Model, err = gzjson(modelfile{Model: b.Model, Config: b.Config, Built: b.Built}); err != nil {
		return fmt.Errorf(FAIL1, "model", err)
	}
	if arts.Corpus, err = gzjson(b.Corpus); err != nil {
		return fmt.Errorf(FAIL1, "corpus", err)
	}
	if arts.Vocab, err = gzjson(b.Vocab); err != nil {
		return fmt.Errorf(FAIL1, "vocabulary", err)
	}

	if err = s.Save(ctx, id, arts); err != nil {
		return err
	}
	b.ID = id
	Msg.TMI(fmt.Sprintf(MSG1, id, Msg.Count(len(arts.Model)), Msg.Count(len(arts.Corpus)), Msg.Count(len(arts.Vocab))))
	return nil
}

// LoadBundle - fetch and decode all three artifacts; any failure means no bundle at all
func LoadBundle(ctx context.Context, s db.Store, id string) (*Bundle, error) {
	const (
		FAIL1 = "%w: '%s' has an unreadable %s: %s"
	)

	arts, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	var mf modelfile
	if err = ungzjson(arts.Model, &mf); err != nil {
		return nil, fmt.Errorf(FAIL1, db.ErrStorage, id, "model", err.Error())
	}
	var corpus vec.Corpus
	if err = ungzjson(arts.Corpus, &corpus); err != nil {
		return nil, fmt.Errorf(FAIL1, db.ErrStorage, id, "corpus", err.Error())
	}
	var vocab vec.Vocabulary
	if err = ungzjson(arts.Vocab, &vocab); err != nil {
		return nil, fmt.Errorf(FAIL1, db.ErrStorage, id, "vocabulary", err.Error())
	}

	b := &Bundle{
		ID:     id,
		Model:  mf.Model,
		Corpus: &corpus,
		Vocab:  &vocab,
		Config: mf.Config,
		Built:  mf.Built,
	}
	if err = b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// DocsOverTopics - the K x D matrix of training-document topic distributions; computed once, then shared
func (b *Bundle) DocsOverTopics() (*mat.Dense, error) {
	b.once.Do(func() {
		b.dots, b.dotserr = docsovertopics(b.Model, b.Corpus)
	})
	return b.dots, b.dotserr
}

func docsovertopics(m TopicModel, c *vec.Corpus) (*mat.Dense, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	dd, err := m.TopicDistributions(c)
	if err != nil {
		return nil, err
	}
	dots := mat.NewDense(m.NumTopics(), len(dd), nil)
	for doc, d := range dd {
		if len(d.Distribution) != m.NumTopics() {
			return nil, fmt.Errorf("%w: document %d has %d topic weights", ErrConsistency, d.ID, len(d.Distribution))
		}
		for topic, v := range d.Distribution {
			dots.Set(topic, doc, v)
		}
	}
	return dots, nil
}

// IsMissing - the store had nothing under that id
func IsMissing(err error) bool {
	return errors.Is(err, db.ErrNotFound)
}
