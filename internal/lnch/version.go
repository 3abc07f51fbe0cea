//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/str"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"runtime"
)

// set at build time: 'go build -ldflags "-X github.com/e-gun/HipparchiaGoTopics/internal/lnch.GitCommit=$GIT_COMMIT"'
var (
	GitCommit string
	VersSuppl string
	BuildDate string
	PGOInfo   string
)

// VersionLine - the tagged (uncolored) version banner
func VersionLine(cc str.CurrentConfiguration) string {
	// [HGT] Hipparchia Golang Topic Modeler (v0.3.1) [git: 64974732] [store: sqlite] [gl=3; el=0]
	const (
		SN = "[C1%sC0] "
		ME = "C5%sC0 (C2v%sC0)"
		GC = " [C4git: C4%sC0]"
		ST = " [C3store: %sC0]"
		LL = " [C6gl=%d; el=%dC0]"
	)

	line := fmt.Sprintf(SN, vv.SHORTNAME) + fmt.Sprintf(ME, vv.MYNAME, vv.VERSION+VersSuppl)
	if GitCommit != "" {
		line += fmt.Sprintf(GC, GitCommit)
	}
	line += fmt.Sprintf(ST, cc.Store)
	return line + fmt.Sprintf(LL, cc.LogLevel, cc.EchoLog)
}

func PrintVersion(cc str.CurrentConfiguration) {
	fmt.Println(Msg.ColStyle(VersionLine(cc)))
}

func PrintBuildInfo(cc str.CurrentConfiguration) {
	// 	Built:	2024-02-14@19:02:51		Golang:	go1.21.4
	//	System:	darwin-arm64			WKvCPU:	8/8
	const (
		BD = "\tS1Built:S0\tC3%sC0\t"
		PG = "\tS1PGO:S0\tC3%sC0\t"
		GV = "\tS1Golang:S0\tC3%sC0\n"
		SY = "\tS1System:S0\tC3%s-%sC0\t"
		WC = "\t\tS1WKvCPU:S0\tC3%dC0/C3%dC0"
	)

	bi := ""
	if BuildDate != "" {
		bi += fmt.Sprintf(BD, BuildDate)
	}
	if PGOInfo != "" {
		bi += fmt.Sprintf(PG, PGOInfo)
	}
	bi += fmt.Sprintf(GV, runtime.Version())
	bi += fmt.Sprintf(SY, runtime.GOOS, runtime.GOARCH)
	bi += fmt.Sprintf(WC, cc.WorkerCount, runtime.NumCPU())
	fmt.Println(Msg.ColStyle(bi))
}

// PrintCopyright - the GPL notice; suppressed by "-q"
func PrintCopyright() {
	fmt.Println(Msg.Styled(fmt.Sprintf(vv.TERMINALTEXT, vv.PROJYEAR, vv.PROJAUTH, vv.PROJMAIL)))
}
