//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/db"
	"github.com/e-gun/HipparchiaGoTopics/internal/gen"
	"github.com/e-gun/HipparchiaGoTopics/internal/ingest"
	"github.com/e-gun/HipparchiaGoTopics/internal/lda"
	"github.com/e-gun/HipparchiaGoTopics/internal/lnch"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/labstack/echo/v4"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// TrainRequest - the JSON body of POST /lda/train
type TrainRequest struct {
	ID         string   `json:"id"`
	Texts      []string `json:"texts"`
	Topics     int      `json:"topics"`
	Iterations int      `json:"iterations"`
	Seed       uint64   `json:"seed"`
}

// TopicsReply - what /lda/topics sends
type TopicsReply struct {
	Model  string          `json:"model"`
	Topics lda.TopicResult `json:"topics"`
}

// SummaryReply - what /lda/summary sends
type SummaryReply struct {
	Model   string             `json:"model"`
	NumDocs int                `json:"numdocs"`
	Vocab   int                `json:"vocab"`
	Topics  []lda.TopicSummary `json:"topics"`
	TopDocs []lda.TopDocument  `json:"topdocs"`
}

// RtModels - everything in the store
func (h *Hub) RtModels(c echo.Context) error {
	mm, err := h.Store.List(c.Request().Context())
	if err != nil {
		return replyerr(c, err)
	}
	if mm == nil {
		mm = []db.ModelInfo{}
	}
	return gen.JSONresponse(c, mm)
}

func (h *Hub) RtDeleteModel(c echo.Context) error {
	id := c.Param("model")
	if err := db.ValidID(id); err != nil {
		return replyerr(c, err)
	}
	if err := h.Delete(c.Request().Context(), id); err != nil {
		return replyerr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RtPredict - the dominant topic of "q" and the top terms of every topic
func (h *Hub) RtPredict(c echo.Context) error {
	b, err := h.bundle(c)
	if err != nil {
		return replyerr(c, err)
	}
	q := gen.TrimToRunes(gen.ScrubControl(c.QueryParam("q")), vv.MAXQUERYLEN)
	p, err := b.Predict(q)
	if err != nil {
		return replyerr(c, err)
	}
	return gen.JSONresponse(c, p)
}

// RtTopics - the top "n" terms of every topic
func (h *Hub) RtTopics(c echo.Context) error {
	const (
		FAIL = "'n' must be a positive number"
	)

	b, err := h.bundle(c)
	if err != nil {
		return replyerr(c, err)
	}

	n := b.Config.TermsPerTopic
	if ns := c.QueryParam("n"); ns != "" {
		n, err = strconv.Atoi(ns)
		if err != nil || n < 1 {
			return gen.JSONerror(c, http.StatusBadRequest, FAIL)
		}
	}
	if n < 1 {
		n = vv.LDATOPNTERMS
	}

	tr, err := lda.RankTopicTerms(b.Model, b.Vocab, n)
	if err != nil {
		return replyerr(c, err)
	}
	return gen.JSONresponse(c, TopicsReply{Model: b.ID, Topics: tr})
}

// RtSummary - per-topic terms and document counts plus the most representative training document for each topic
func (h *Hub) RtSummary(c echo.Context) error {
	b, err := h.bundle(c)
	if err != nil {
		return replyerr(c, err)
	}
	ts, err := b.Summarize()
	if err != nil {
		return replyerr(c, err)
	}
	td, err := b.TopDocuments()
	if err != nil {
		return replyerr(c, err)
	}
	return gen.JSONresponse(c, SummaryReply{
		Model:   b.ID,
		NumDocs: b.Corpus.Len(),
		Vocab:   b.Vocab.Size(),
		Topics:  ts,
		TopDocs: td,
	})
}

// RtTrain - accept a JSON TrainRequest or a multipart upload ("file" plus optional "id", "topics", "iterations",
// "seed" fields); the fit runs in the background and the reply is the Job to poll
func (h *Hub) RtTrain(c echo.Context) error {
	const (
		FAIL1 = "no texts to train on"
		FAIL2 = "could not read the upload: %s"
	)

	var tr TrainRequest
	var texts []string

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		var err error
		tr, texts, err = readupload(c)
		if err != nil {
			if errors.Is(err, ingest.ErrUnsupported) || errors.Is(err, ingest.ErrNoText) {
				return gen.JSONerror(c, http.StatusBadRequest, err.Error())
			}
			return gen.JSONerror(c, http.StatusBadRequest, fmt.Sprintf(FAIL2, err.Error()))
		}
	} else {
		if err := c.Bind(&tr); err != nil {
			return gen.JSONerror(c, http.StatusBadRequest, err.Error())
		}
		texts = make([]string, 0, len(tr.Texts))
		for _, t := range tr.Texts {
			if t = strings.TrimSpace(gen.ScrubControl(t)); t != "" {
				texts = append(texts, t)
			}
		}
	}

	if len(texts) == 0 {
		return gen.JSONerror(c, http.StatusBadRequest, FAIL1)
	}
	if len(texts) > vv.MAXTRAINDOCS {
		texts = texts[:vv.MAXTRAINDOCS]
	}
	if tr.ID != "" {
		if err := db.ValidID(tr.ID); err != nil {
			return replyerr(c, err)
		}
	}

	cfg := lnch.LDARequest(h.Base, tr.Topics, tr.Iterations, tr.Seed)
	if err := lda.ValidateConfig(cfg); err != nil {
		return replyerr(c, err)
	}

	j := h.Launch(tr.ID, texts, cfg)
	return c.JSON(http.StatusAccepted, j)
}

// RtJob - the current state of a training job
func (h *Hub) RtJob(c echo.Context) error {
	const (
		FAIL = "no such job: '%s'"
	)
	j, ok := h.Jobs.Get(c.Param("id"))
	if !ok {
		return gen.JSONerror(c, http.StatusNotFound, fmt.Sprintf(FAIL, c.Param("id")))
	}
	return gen.JSONresponse(c, j)
}

// bundle - the bundle named by the ":model" param
func (h *Hub) bundle(c echo.Context) (*lda.Bundle, error) {
	id := c.Param("model")
	if err := db.ValidID(id); err != nil {
		return nil, err
	}
	return h.Bundle(c.Request().Context(), id)
}

// readupload - save the multipart "file" to a temp file with the same extension and hand it to ingest.Load
func readupload(c echo.Context) (TrainRequest, []string, error) {
	var tr TrainRequest

	fh, err := c.FormFile("file")
	if err != nil {
		return tr, nil, err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !slices.Contains(ingest.Supported, ext) {
		return tr, nil, fmt.Errorf("%w: '%s'", ingest.ErrUnsupported, ext)
	}

	src, err := fh.Open()
	if err != nil {
		return tr, nil, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "hgt-upload-*"+ext)
	if err != nil {
		return tr, nil, err
	}
	defer os.Remove(tmp.Name())

	_, err = io.Copy(tmp, src)
	if ce := tmp.Close(); err == nil {
		err = ce
	}
	if err != nil {
		return tr, nil, err
	}

	rr, err := ingest.Load(tmp.Name())
	if err != nil {
		return tr, nil, err
	}

	tr.ID = c.FormValue("id")
	tr.Topics, _ = strconv.Atoi(c.FormValue("topics"))
	tr.Iterations, _ = strconv.Atoi(c.FormValue("iterations"))
	if s, e := strconv.ParseUint(c.FormValue("seed"), 10, 64); e == nil {
		tr.Seed = s
	}
	return tr, ingest.Texts(rr), nil
}

// replyerr - map the package errors onto HTTP status codes
func replyerr(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, db.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrBadID), errors.Is(err, lda.ErrBadParams), errors.Is(err, lda.ErrEmptyCorpus):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		Msg.WARN(fmt.Sprintf("%s %s: %s", c.Request().Method, c.Request().URL.Path, err.Error()))
	}
	return gen.JSONerror(c, status, err.Error())
}
