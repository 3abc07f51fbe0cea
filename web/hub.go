//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"context"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/db"
	"github.com/e-gun/HipparchiaGoTopics/internal/lda"
	"github.com/e-gun/HipparchiaGoTopics/internal/lnch"
	"github.com/e-gun/HipparchiaGoTopics/internal/str"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/google/uuid"
	"sync"
	"time"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

// Hub - everything the routes share: the model store, the trainer, the running jobs, and recently used bundles
type Hub struct {
	Store   db.Store
	Trainer lda.Trainer
	Base    str.LDAConfig
	Jobs    *JobVault
	sem     chan struct{}
	cache   map[string]*lda.Bundle
	order   []string
	mutex   sync.Mutex
}

func NewHub(s db.Store, tr lda.Trainer, base str.LDAConfig) *Hub {
	return &Hub{
		Store:   s,
		Trainer: tr,
		Base:    base,
		Jobs:    MakeJobVault(),
		sem:     make(chan struct{}, vv.SIMULTANEOUSJOBS),
		cache:   make(map[string]*lda.Bundle),
	}
}

// Bundle - from the cache if possible, otherwise from the store
func (h *Hub) Bundle(ctx context.Context, id string) (*lda.Bundle, error) {
	h.mutex.Lock()
	b, ok := h.cache[id]
	h.mutex.Unlock()
	if ok {
		return b, nil
	}

	b, err := lda.LoadBundle(ctx, h.Store, id)
	if err != nil {
		return nil, err
	}
	h.remember(b)
	return b, nil
}

// remember - a small FIFO; the oldest bundle goes once there are more than vv.MAXBUNDLECACHE
func (h *Hub) remember(b *lda.Bundle) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.cache[b.ID]; !ok {
		h.order = append(h.order, b.ID)
	}
	h.cache[b.ID] = b
	for len(h.order) > vv.MAXBUNDLECACHE {
		delete(h.cache, h.order[0])
		h.order = h.order[1:]
	}
}

func (h *Hub) Forget(id string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.cache, id)
	for i := range h.order {
		if h.order[i] == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// TrainAndSave - fit, then store under id; a blank id gets a fresh uuid
func (h *Hub) TrainAndSave(ctx context.Context, id string, texts []string, cfg str.LDAConfig, report func(string)) (*lda.Bundle, error) {
	const (
		MSG1 = "stored model '%s'"
	)

	if id == "" {
		id = uuid.New().String()
	}
	if err := db.ValidID(id); err != nil {
		return nil, err
	}

	tr := h.Trainer
	tr.Report = report

	b, err := tr.Train(ctx, texts, cfg)
	if err != nil {
		return nil, err
	}
	if err = b.Save(ctx, h.Store, id); err != nil {
		return nil, err
	}
	h.Forget(id)
	h.remember(b)
	if report != nil {
		report(fmt.Sprintf(MSG1, id))
	}
	return b, nil
}

// Launch - queue a training run and return at once; at most vv.SIMULTANEOUSJOBS run at the same time
func (h *Hub) Launch(id string, texts []string, cfg str.LDAConfig) Job {
	const (
		MSG1 = "waiting for one of %d training slots"
		MSG2 = "job %s (model '%s') failed: %s"
	)

	if id == "" {
		id = uuid.New().String()
	}
	j := h.Jobs.Insert(id)

	go func() {
		h.Jobs.Note(j.ID, fmt.Sprintf(MSG1, cap(h.sem)))
		h.sem <- struct{}{}
		defer func() { <-h.sem }()

		report := func(s string) { h.Jobs.Note(j.ID, s) }
		_, err := h.TrainAndSave(context.Background(), id, texts, cfg, report)
		if err != nil {
			Msg.WARN(fmt.Sprintf(MSG2, j.ID, id, err.Error()))
		}
		h.Jobs.Finish(j.ID, err)
	}()
	return j
}

// Delete - remove from the store and from the cache
func (h *Hub) Delete(ctx context.Context, id string) error {
	h.Forget(id)
	return h.Store.Delete(ctx, id)
}

// JobSweeper - forget old jobs every vv.JOBSWEEP; never returns
func (h *Hub) JobSweeper() {
	for {
		time.Sleep(vv.JOBSWEEP)
		if n := h.Jobs.Sweep(vv.JOBLINGER); n > 0 {
			Msg.TMI(fmt.Sprintf("JobSweeper() forgot %d finished jobs", n))
		}
	}
}

