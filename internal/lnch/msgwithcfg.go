//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/HipparchiaGoTopics/internal/mm"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"os"
	"runtime"
	"time"
)

func NewMessageMakerConfigured() *mm.MessageMaker {
	m := NewMessageMakerWithDefaults()
	UpdateMessageMakerWithConfig(m)
	return m
}

func NewMessageMakerWithDefaults() *mm.MessageMaker {
	w := false
	if runtime.GOOS == "windows" {
		w = true
	}
	return &mm.MessageMaker{
		Lnc:  time.Now(),
		BW:   vv.BLACKANDWHITE,
		Clr:  "",
		GC:   false,
		LLvl: vv.DEFAULTGOLOGLEVEL,
		LNm:  vv.MYNAME,
		SNm:  vv.SHORTNAME,
		Tick: false,
		Ver:  vv.VERSION,
		Win:  w,
		Out:  os.Stdout,
	}
}

func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.BW = Config.BlackAndWhite
	m.LLvl = Config.LogLevel
}
