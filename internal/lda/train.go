//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"context"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/str"
	"github.com/e-gun/HipparchiaGoTopics/internal/vec"
	"time"
)

// Trainer - corpus building plus fitting; Report (optional) hears about each stage as it happens
type Trainer struct {
	Fitter  Fitter
	Workers int
	Report  func(string)
}

// Train - texts -> corpus + vocabulary -> fitted model, all wrapped in a Bundle; nothing is stored
func (tr Trainer) Train(ctx context.Context, texts []string, cfg str.LDAConfig) (*Bundle, error) {
	const (
		FAIL1 = "%w: no documents to train on"
		FAIL2 = "%w: no term survived tokenizing and stopword removal"
		MSG1  = "building the corpus from %s documents"
		MSG2  = "vocabulary: %s terms; fitting %d topics"
		MSG3  = "fitted %d topics in %.2fs"
	)

	start := time.Now()

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf(FAIL1, ErrEmptyCorpus)
	}

	fitter := tr.Fitter
	if fitter == nil {
		fitter = NLPFitter{}
	}

	tr.report(fmt.Sprintf(MSG1, Msg.Count(len(texts))))
	corpus, vocab := vec.NewBuilder(tr.Workers).BuildCorpus(texts)
	if vocab.Size() == 0 {
		return nil, fmt.Errorf(FAIL2, ErrEmptyCorpus)
	}

	tr.report(fmt.Sprintf(MSG2, Msg.Count(vocab.Size()), cfg.NumTopics))
	model, err := fitter.Fit(ctx, corpus, cfg)
	if err != nil {
		return nil, err
	}
	tr.report(fmt.Sprintf(MSG3, model.NumTopics(), time.Since(start).Seconds()))

	b := &Bundle{
		Model:  model,
		Corpus: corpus,
		Vocab:  vocab,
		Config: cfg,
		Built:  time.Now().UTC(),
	}
	if err = b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (tr Trainer) report(s string) {
	Msg.PEEK("Trainer: " + s)
	if tr.Report != nil {
		tr.Report(s)
	}
}
