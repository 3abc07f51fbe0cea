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
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/e-gun/nlp"
	"golang.org/x/exp/rand"
	"time"
)

// Fitter - anything that can estimate topics for a corpus
type Fitter interface {
	Fit(ctx context.Context, c *vec.Corpus, cfg str.LDAConfig) (*Model, error)
}

// NLPFitter - github.com/e-gun/nlp does the estimation; Processes overrides cfg.Goroutines when > 0
type NLPFitter struct {
	Processes int
}

// Fit - see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go for what the knobs do
func (f NLPFitter) Fit(ctx context.Context, c *vec.Corpus, cfg str.LDAConfig) (*Model, error) {
	const (
		FAIL1 = "nlp refused to fit the model: %w"
		MSG1  = "NLPFitter.Fit(): %d topics over %s documents x %s terms"
	)

	// the fit itself cannot be interrupted; a cancelled context only stops it from starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	m := c.Matrix()
	if m == nil {
		return nil, ErrEmptyCorpus
	}

	Msg.PEEK(fmt.Sprintf(MSG1, cfg.NumTopics, Msg.Count(c.Len()), Msg.Count(c.Dim)))

	procs := cfg.Goroutines
	if f.Processes > 0 {
		procs = f.Processes
	}
	if procs < 1 {
		procs = 1
	}

	start := time.Now()
	ldam := nlp.NewLatentDirichletAllocation(cfg.NumTopics)
	ldam.Iterations = cfg.MaxIterations
	ldam.Alpha = cfg.DocConcentration
	ldam.Eta = cfg.TopicConcentration
	ldam.TransformationPasses = cfg.XformPasses
	ldam.BurnInPasses = cfg.BurnInPasses
	ldam.ChangeEvaluationFrequency = cfg.ChangeEvalFrq
	ldam.PerplexityEvaluationFrequency = cfg.PerplexEvalFrq
	ldam.PerplexityTolerance = cfg.PerplexTol
	ldam.Processes = procs
	ldam.Rnd = rand.New(rand.NewSource(cfg.Seed))

	if _, err := ldam.FitTransform(m); err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}
	Msg.Timer("B1", "NLPFitter.Fit() finished", start, start)

	return NewModel(ldam.Components(), cfg.DocConcentration, cfg.XformPasses)
}

// ValidateConfig - numTopics > 0 and maxIterations > 0
func ValidateConfig(cfg str.LDAConfig) error {
	const (
		FAIL1 = "%w: numTopics must be > 0 (got %d)"
		FAIL2 = "%w: numTopics must be <= %d (got %d)"
		FAIL3 = "%w: maxIterations must be > 0 (got %d)"
		FAIL4 = "%w: concentrations must be >= 0 (got %f, %f)"
	)
	switch {
	case cfg.NumTopics <= 0:
		return fmt.Errorf(FAIL1, ErrBadParams, cfg.NumTopics)
	case cfg.NumTopics > vv.LDAMAXTOPICS:
		return fmt.Errorf(FAIL2, ErrBadParams, vv.LDAMAXTOPICS, cfg.NumTopics)
	case cfg.MaxIterations <= 0:
		return fmt.Errorf(FAIL3, ErrBadParams, cfg.MaxIterations)
	case cfg.DocConcentration < 0 || cfg.TopicConcentration < 0:
		return fmt.Errorf(FAIL4, ErrBadParams, cfg.DocConcentration, cfg.TopicConcentration)
	}
	return nil
}
