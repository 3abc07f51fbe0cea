//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MSGMAND              = -1
	MSGCRIT              = 0
	MSGWARN              = 1
	MSGNOTE              = 2
	MSGFYI               = 3
	MSGPEEK              = 4
	MSGTMI               = 5
	TIMETRACKERMSGTHRESH = MSGFYI
	RESET                = "\033[0m"
	BLUE1                = "\033[38;5;38m"  // DeepSkyBlue2
	CYAN2                = "\033[38;5;117m" // SkyBlue1
	GREEN                = "\033[38;5;70m"  // Chartreuse3
	RED1                 = "\033[38;5;160m" // Red3
	YELLOW1              = "\033[38;5;178m" // Gold3
	YELLOW2              = "\033[38;5;143m" // DarkKhaki
	GREY3                = "\033[38;5;242m" // Grey42
	BLINK                = "\033[30;0;5m"
	PANIC                = "[%s%s v.%s%s] (%s%s%s) %sUNRECOVERABLE ERROR%s\n"
)

// the same 256-colour palette as the constants above, but as fatih/color attributes
var levelcolors = map[int]*color.Color{
	MSGMAND: color.New(38, 5, 70),
	MSGCRIT: color.New(38, 5, 160),
	MSGWARN: color.New(38, 5, 143),
	MSGNOTE: color.New(38, 5, 178),
	MSGFYI:  color.New(38, 5, 117),
	MSGPEEK: color.New(38, 5, 68),
	MSGTMI:  color.New(38, 5, 242),
}

var (
	prefixcolor = color.New(38, 5, 178)
	plaincolor  = color.New(38, 5, 255)
	printer     = message.NewPrinter(language.English)
)

type MessageMaker struct {
	Lnc  time.Time
	BW   bool
	Clr  string
	GC   bool
	LLvl int
	LNm  string
	SNm  string
	Tick bool
	Ver  string
	Win  bool
	Out  io.Writer
	mtx  sync.Mutex
}

func NewMessageMaker() *MessageMaker {
	return &MessageMaker{
		Lnc: time.Now(),
		Out: os.Stdout,
	}
}

func (m *MessageMaker) writer() io.Writer {
	if m.Out == nil {
		return os.Stdout
	}
	return m.Out
}

func (m *MessageMaker) colored() bool {
	return !m.Win && !m.BW
}

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[HGT] Train() built a vocabulary of 5,432 terms"

	if m.LLvl < threshold {
		return
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	if !m.colored() {
		// terminal color codes not w's friend
		fmt.Fprintf(m.writer(), "[%s] %s\n", m.SNm, message)
		return
	}

	c, ok := levelcolors[threshold]
	if !ok {
		c = plaincolor
	}
	c.EnableColor()
	prefixcolor.EnableColor()
	fmt.Fprintf(m.writer(), "[%s] %s\n", prefixcolor.Sprint(m.SNm), c.Sprint(message))
}

func (m *MessageMaker) MAND(s string) { m.Emit(s, MSGMAND) }
func (m *MessageMaker) CRIT(s string) { m.Emit(s, MSGCRIT) }
func (m *MessageMaker) WARN(s string) { m.Emit(s, MSGWARN) }
func (m *MessageMaker) NOTE(s string) { m.Emit(s, MSGNOTE) }
func (m *MessageMaker) FYI(s string)  { m.Emit(s, MSGFYI) }
func (m *MessageMaker) PEEK(s string) { m.Emit(s, MSGPEEK) }
func (m *MessageMaker) TMI(s string)  { m.Emit(s, MSGTMI) }

// Color - color text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Color(tagged string) string {
	// "[git: C4%sC0]" ==> green text for the %s
	swap := strings.NewReplacer("C1", "", "C2", "", "C3", "", "C4", "", "C5", "", "C6", "", "C7", "", "C0", "")

	if m.colored() {
		swap = strings.NewReplacer("C1", YELLOW1, "C2", CYAN2, "C3", BLUE1, "C4", GREEN, "C5", RED1,
			"C6", GREY3, "C7", BLINK, "C0", RESET)
	}
	return swap.Replace(tagged)
}

// Styled - style text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Styled(tagged string) string {
	const (
		BOLD    = "\033[1m"
		ITAL    = "\033[3m"
		UNDER   = "\033[4m"
		REVERSE = "\033[7m"
		STRIKE  = "\033[9m"
	)
	swap := strings.NewReplacer("S1", "", "S2", "", "S3", "", "S4", "", "S5", "", "S0", "")

	if m.colored() {
		swap = strings.NewReplacer("S1", BOLD, "S2", ITAL, "S3", UNDER, "S4", STRIKE, "S5", REVERSE,
			"S0", RESET)
	}
	return swap.Replace(tagged)
}

func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Styled(m.Color(tagged))
}

// Count - 12345 -> "12,345"
func (m *MessageMaker) Count(n int) string {
	return printer.Sprintf("%d", n)
}

// EC - report an error and the function that produced it; then exit
func (m *MessageMaker) EC(err error) {
	m.EF(err, "")
}

// EF - report error and function; then exit
func (m *MessageMaker) EF(err error, fn string) {
	if err == nil {
		return
	}
	if m.colored() {
		fmt.Fprintf(m.writer(), PANIC, YELLOW2, m.LNm, m.Ver, RESET, CYAN2, fn, RESET, RED1, RESET)
	} else {
		fmt.Fprintf(m.writer(), "[%s v.%s] (%s) UNRECOVERABLE ERROR\n", m.LNm, m.Ver, fn)
	}
	fmt.Fprintln(m.writer(), err)
	m.ExitOrHang(1)
}

// ExitOrHang - Windows should hang to keep the error visible before the window closes and hides it
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = `Execution suspended. %s is now frozen. Note any errors above. Execution will halt after %d seconds.`
		SUSP = 60
	)
	if m.Win {
		m.Emit(fmt.Sprintf(HANG, m.LNm, SUSP), MSGMAND)
		time.Sleep(SUSP * time.Second)
	}
	os.Exit(e)
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[A2: 3.764s][Δ: 1.024s] vocabulary built"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Since(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Since(start).Seconds()) + d + o
	m.Emit(o, TIMETRACKERMSGTHRESH)
}
