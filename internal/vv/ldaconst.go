//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	LDATOPICS       = 8
	LDAMAXTOPICS    = 100
	LDAITER         = 200
	LDAXFORMPASSES  = 100
	LDABURNINPASSES = 2
	LDACHGEVALFRQ   = 10
	LDAPERPEVALFRQ  = 10
	LDAPERPTOL      = 1e-2
	LDAALPHA        = 0.1  // docConcentration
	LDAETA          = 0.01 // topicConcentration
	LDASEED         = 1
	LDAFOLDINTOL    = 1e-6
	LDATOPNTERMS    = 10
	LDAGOROUTINES   = 1 // >1 is faster but the fit is no longer reproducible for a given seed

	MINTERMLEN     = 4  // a term must be longer than 3 characters
	STOPWORDDECILE = 10 // the most frequent 1/N of the distinct terms are stopwords

	MODELTABLENAME = "topic_models_lda"
	ARTMODEL       = "model.json.gz"
	ARTCORPUS      = "corpus.json.gz"
	ARTVOCAB       = "vocab.json.gz"
)
