//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/str"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"os"
	"path/filepath"
)

//
// LDA CONFIGURATION
//

func BuildDefaultLDAConfig() str.LDAConfig {
	return str.LDAConfig{
		NumTopics:          vv.LDATOPICS,
		MaxIterations:      vv.LDAITER,
		DocConcentration:   vv.LDAALPHA,
		TopicConcentration: vv.LDAETA,
		Seed:               vv.LDASEED,
		XformPasses:        vv.LDAXFORMPASSES,
		BurnInPasses:       vv.LDABURNINPASSES,
		ChangeEvalFrq:      vv.LDACHGEVALFRQ,
		PerplexEvalFrq:     vv.LDAPERPEVALFRQ,
		PerplexTol:         vv.LDAPERPTOL,
		TermsPerTopic:      vv.LDATOPNTERMS,
		Goroutines:         vv.LDAGOROUTINES,
	}
}

// LoadLDAConfig - read vv.CONFIGLDA from dir; write the defaults there if it is missing
func LoadLDAConfig(dir string) str.LDAConfig {
	const (
		ERR1 = "LoadLDAConfig() failed to parse "
		MSG1 = "wrote default topic model configuration file "
		MSG2 = "read topic model configuration from "
	)

	cfg := BuildDefaultLDAConfig()
	fn := filepath.Join(dir, vv.CONFIGLDA)

	if _, yes := os.Stat(fn); yes != nil {
		writedefaults(dir, fn, cfg)
		Msg.PEEK(MSG1 + vv.CONFIGLDA)
		return cfg
	}

	// start from the defaults so that a file which omits a field does not zero it
	vc := BuildDefaultLDAConfig()
	if err := readjson(fn, &vc); err != nil {
		Msg.CRIT(ERR1 + vv.CONFIGLDA)
		return cfg
	}
	Msg.TMI(MSG2 + vv.CONFIGLDA)
	return vc
}

// LDARequest - the user may override some of the topic model parameters per request; zero means "keep the default"
func LDARequest(base str.LDAConfig, topics int, iterations int, seed uint64) str.LDAConfig {
	const (
		FAIL1 = "LDARequest() refusing %d topics; max is %d"
	)
	c := base
	if topics > 0 {
		if topics > vv.LDAMAXTOPICS {
			Msg.WARN(fmt.Sprintf(FAIL1, topics, vv.LDAMAXTOPICS))
			topics = vv.LDAMAXTOPICS
		}
		c.NumTopics = topics
	}
	if iterations > 0 {
		c.MaxIterations = iterations
	}
	if seed > 0 {
		c.Seed = seed
	}
	return c
}
