//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"errors"
	"github.com/e-gun/HipparchiaGoTopics/internal/lnch"
)

var Msg = lnch.NewMessageMakerWithDefaults()

var (
	// ErrEmptyCorpus - nothing to fit: no documents, or no surviving vocabulary
	ErrEmptyCorpus = errors.New("training precondition failed")
	// ErrConsistency - the model, the corpus, and the vocabulary disagree with one another
	ErrConsistency = errors.New("consistency error")
	// ErrBadParams - numTopics or maxIterations out of range
	ErrBadParams = errors.New("invalid topic model parameters")
)
