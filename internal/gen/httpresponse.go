//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"github.com/labstack/echo/v4"
	"net/http"
)

// ErrorReply - what every route sends instead of a result when something goes wrong
type ErrorReply struct {
	Error string `json:"error"`
}

// JSONresponse - send the JSON; jsr should be a json-ready struct
func JSONresponse(c echo.Context, jsr any) error {
	// JSONPretty lands high on the profiler for no real gain
	return c.JSON(http.StatusOK, jsr)
}

// JSONerror - send an ErrorReply with the given status
func JSONerror(c echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorReply{Error: msg})
}
