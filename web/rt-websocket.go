//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"time"
)

var (
	Upgrader = websocket.Upgrader{}
)

// WSJobOut - one progress message pushed down the websocket
type WSJobOut struct {
	Job   Job    `json:"job"`
	Close string `json:"close"`
}

// RtWebsocket - push the state of a training job every vv.WSPOLLINTERVAL until the job is done
func (h *Hub) RtWebsocket(c echo.Context) error {
	const (
		FAILCON = "RtWebsocket(): ws connection failed"
		FAILWRT = "RtWebsocket(): client went away while watching %s"
	)

	id := c.Param("id")

	ws, err := Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		Msg.NOTE(FAILCON)
		return nil
	}
	defer ws.Close()

	for {
		j, ok := h.Jobs.Get(id)
		out := WSJobOut{Job: j, Close: "open"}
		if !ok {
			out.Job = Job{ID: id, Status: JobFailed, Err: "no such job"}
		}
		if !ok || j.Done() {
			out.Close = "close"
		}

		if e := ws.WriteJSON(out); e != nil {
			Msg.FYI(fmt.Sprintf(FAILWRT, id))
			return nil
		}
		if out.Close == "close" {
			break
		}
		time.Sleep(vv.WSPOLLINTERVAL)
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return nil
}
