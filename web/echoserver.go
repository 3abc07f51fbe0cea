//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/lnch"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"strings"
)

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer(h *Hub) {
	e := NewEchoServer(h)

	go h.JobSweeper()

	e.HideBanner = true
	e.HidePort = false
	e.Debug = false
	e.DisableHTTP2 = true
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", lnch.Config.HostIP, lnch.Config.HostPort)))
}

// NewEchoServer - middleware and routes, but nothing is listening yet
func NewEchoServer(h *Hub) *echo.Echo {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	// ctf - a CustomTagFunc return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		last := ua[len(ua)-1]
		return buf.WriteString(last)
	}

	//
	// SETUP
	//

	e := echo.New()

	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	switch lnch.Config.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECOND)))

	e.Use(middleware.Recover())

	if lnch.Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", vv.MAXUPLOADBYTES>>20)))

	//
	// TOPIC MODEL ROUTES
	//

	// [a] models ("rt-lda.go")

	e.GET("/lda/models", h.RtModels)               // "u: /lda/models"
	e.DELETE("/lda/model/:model", h.RtDeleteModel) // "u: /lda/model/plato"
	e.GET("/lda/predict/:model", h.RtPredict)      // "u: /lda/predict/plato?q=the%20soul%20is%20immortal"
	e.GET("/lda/topics/:model", h.RtTopics)        // "u: /lda/topics/plato?n=15"
	e.GET("/lda/summary/:model", h.RtSummary)      // "u: /lda/summary/plato"

	// [b] training ("rt-lda.go")

	e.POST("/lda/train", h.RtTrain) // JSON body or a multipart "file"
	e.GET("/lda/job/:id", h.RtJob)  // "u: /lda/job/6a0f1d22-..."

	// [c] charts ("rt-chart.go")

	e.GET("/lda/chart/:model", h.RtChart) // "u: /lda/chart/plato"

	// [d] websocket ("rt-websocket.go")

	e.GET("/ws/job/:id", h.RtWebsocket)

	return e
}
