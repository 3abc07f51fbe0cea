//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/db"
	"github.com/e-gun/HipparchiaGoTopics/internal/ingest"
	"github.com/e-gun/HipparchiaGoTopics/internal/lda"
	"github.com/e-gun/HipparchiaGoTopics/internal/lnch"
	"github.com/e-gun/HipparchiaGoTopics/internal/mm"
	"github.com/e-gun/HipparchiaGoTopics/internal/vec"
	"github.com/e-gun/HipparchiaGoTopics/web"
	"github.com/pkg/profile"
	"time"
)

func main() {
	const (
		MSG1 = "%s documents read from '%s'"
		MSG2 = "model '%s' is ready: %d topics over %s terms"
		FAIL = "could not train on '%s': %s"
	)

	start := time.Now()
	previous := time.Now()

	//
	// [A] CONFIGURATION
	//

	lnch.ConfigAtLaunch()

	for _, m := range []*mm.MessageMaker{vec.Msg, lda.Msg, db.Msg, ingest.Msg, web.Msg} {
		lnch.UpdateMessageMakerWithConfig(m)
	}
	msg := lnch.Msg

	lnch.PrintVersion(*lnch.Config)
	if !lnch.Config.QuietStart {
		lnch.PrintCopyright()
	}

	// go tool pprof --pdf ./HipparchiaGoTopics /tmp/profile.../cpu.pprof > profile.pdf
	if lnch.Config.ProfileCPU {
		defer profile.Start().Stop()
	} else if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	//
	// [B] THE MODEL STORE
	//

	ctx := context.Background()
	store, err := db.Open(ctx, *lnch.Config)
	msg.EF(err, "db.Open()")
	defer store.Close()
	msg.Timer("A1", "model store ready", start, previous)

	hub := web.NewHub(store, lda.Trainer{Fitter: lda.NLPFitter{Processes: lnch.LDA.Goroutines}, Workers: lnch.Config.WorkerCount}, lnch.LDA)

	//
	// [C] OPTIONAL TRAINING AT LAUNCH
	//

	if lnch.Config.TrainFile != "" {
		previous = time.Now()
		rr, e := ingest.Load(lnch.Config.TrainFile)
		msg.EF(e, "ingest.Load()")
		msg.NOTE(fmt.Sprintf(MSG1, msg.Count(len(rr)), lnch.Config.TrainFile))

		b, e := hub.TrainAndSave(ctx, lnch.Config.TrainID, ingest.Texts(rr), lnch.LDA, msg.FYI)
		if e != nil {
			msg.CRIT(fmt.Sprintf(FAIL, lnch.Config.TrainFile, e.Error()))
		} else {
			msg.NOTE(fmt.Sprintf(MSG2, b.ID, b.Model.NumTopics(), msg.Count(b.Vocab.Size())))
		}
		msg.Timer("A2", "training at launch finished", start, previous)
	}

	//
	// [D] SERVE
	//

	web.StartEchoServer(hub)
}
