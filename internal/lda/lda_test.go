package lda

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/e-gun/HipparchiaGoTopics/internal/db"
	"github.com/e-gun/HipparchiaGoTopics/internal/lnch"
	"github.com/e-gun/HipparchiaGoTopics/internal/str"
	"github.com/e-gun/HipparchiaGoTopics/internal/vec"
	"gonum.org/v1/gonum/mat"
)

func TestMain(m *testing.M) {
	Msg.Out = io.Discard
	vec.Msg.Out = io.Discard
	db.Msg.Out = io.Discard
	os.Exit(m.Run())
}

// stripefitter - term w belongs to topic w % K; deterministic, so tests can reason about the answers
type stripefitter struct {
	calls int
}

func (f *stripefitter) Fit(ctx context.Context, c *vec.Corpus, cfg str.LDAConfig) (*Model, error) {
	f.calls++
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	comp := mat.NewDense(cfg.NumTopics, c.Dim, nil)
	for k := 0; k < cfg.NumTopics; k++ {
		for w := 0; w < c.Dim; w++ {
			v := 1.0
			if w%cfg.NumTopics == k {
				v = 20.0
			}
			comp.Set(k, w, v)
		}
	}
	return NewModel(comp, cfg.DocConcentration, cfg.XformPasses)
}

func testconfig(k int) str.LDAConfig {
	c := lnch.BuildDefaultLDAConfig()
	c.NumTopics = k
	return c
}

var animals = []string{
	"whale shark whale dolphin",
	"eagle falcon eagle sparrow",
	"shark dolphin whale",
	"falcon sparrow eagle",
	"dolphin whale shark shark",
	"sparrow falcon falcon",
}
