//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// LDAConfig - the parameters handed to the topic model fitter; see vv.LDA* for the defaults
type LDAConfig struct {
	NumTopics          int
	MaxIterations      int
	DocConcentration   float64 // alpha
	TopicConcentration float64 // eta
	Seed               uint64
	XformPasses        int
	BurnInPasses       int
	ChangeEvalFrq      int
	PerplexEvalFrq     int
	PerplexTol         float64
	TermsPerTopic      int
	Goroutines         int
}
