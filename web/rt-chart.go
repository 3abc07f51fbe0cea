//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/lda"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/labstack/echo/v4"
	"net/http"
)

// RtChart - an html page of bar charts: the weight of every topic, then the top terms of each topic
func (h *Hub) RtChart(c echo.Context) error {
	b, err := h.bundle(c)
	if err != nil {
		return replyerr(c, err)
	}

	ts, err := b.Summarize()
	if err != nil {
		return replyerr(c, err)
	}

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s: %s", vv.SHORTNAME, b.ID)
	page.AddCharts(overviewchart(b.ID, ts))
	for _, t := range ts {
		page.AddCharts(topicchart(t))
	}

	var buf bytes.Buffer
	if err = page.Render(&buf); err != nil {
		return replyerr(c, err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// overviewchart - share of the documents dominated by each topic next to each topic's scaled weight
func overviewchart(id string, ts []lda.TopicSummary) *charts.Bar {
	x := make([]string, len(ts))
	share := make([]opts.BarData, len(ts))
	weight := make([]opts.BarData, len(ts))
	for i, t := range ts {
		x[i] = fmt.Sprintf("topic %d", t.Topic)
		share[i] = opts.BarData{Value: round(t.DocShare)}
		weight[i] = opts.BarData{Value: round(t.Weight)}
	}

	bar := newbar(fmt.Sprintf("%s: %d topics", id, len(ts)), "document share and relative weight")
	bar.SetXAxis(x).
		AddSeries("document share", share).
		AddSeries("weight", weight)
	return bar
}

func topicchart(t lda.TopicSummary) *charts.Bar {
	x := make([]string, len(t.Terms))
	y := make([]opts.BarData, len(t.Terms))
	for i, tw := range t.Terms {
		x[i] = tw.Term
		y[i] = opts.BarData{Value: round(tw.Weight)}
	}

	bar := newbar(fmt.Sprintf("topic %d", t.Topic), fmt.Sprintf("dominant in %d documents", t.Docs))
	bar.SetXAxis(x).AddSeries("weight", y)
	return bar
}

// newbar - return a pre-formatted charts.Bar
func newbar(title string, subtitle string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.CHRTWIDTH, Height: vv.CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
	)
	return bar
}

func round(f float64) float64 {
	return float64(int(f*10000+0.5)) / 10000
}
