// Package lol (log of location) is a small logging library that prints a
// high precision timestamp and the source location of each print so tracing
// a report back to code is a copy-paste. It has the usual levels, filtered
// by a single atomic gate, and a set of check/errorf helpers that make
// error handling sites one-liners.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"go.uber.org/atomic"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{
	"off",
	"fatal",
	"error",
	"warn",
	"info",
	"debug",
	"trace",
}

type (
	// Ln prints a list of values separated by spaces.
	Ln func(a ...interface{})
	// F prints with a printf format string.
	F func(format string, a ...interface{})
	// S prints a spew.Sdump of its arguments.
	S func(a ...interface{})
	// C accepts a closure so an expensive render is skipped when the level
	// is filtered out.
	C func(closure func() string)
	// Chk prints the error if it is not nil and returns whether it was.
	Chk func(e error) bool
	// Err builds an error with fmt.Errorf, logs it at the site and returns
	// it.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of printers available on one log level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
		Err
	}

	// LevelSpec is the identifier, short name and colorizer of one level.
	LevelSpec struct {
		ID        int
		Name      string
		Colorizer func(a ...any) string
	}
)

var (
	// LevelSpecs maps the level constants to their print decoration.
	LevelSpecs = []LevelSpec{
		{Off, "", noSprint},
		{Fatal, "FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
		{Error, "ERR", color.New(color.FgHiRed).Sprint},
		{Warn, "WRN", color.New(color.FgHiYellow).Sprint},
		{Info, "INF", color.New(color.FgHiGreen).Sprint},
		{Debug, "DBG", color.New(color.FgHiBlue).Sprint},
		{Trace, "TRC", color.New(color.FgHiMagenta).Sprint},
	}

	// NoTimeStamp disables the timestamp prefix, mainly for tests that
	// compare log output.
	NoTimeStamp atomic.Bool

	// Level is the gate that the printers compare against.
	Level atomic.Int32

	msgCol = color.New(color.FgBlue).Sprint
)

func noSprint(a ...any) string { return "" }

// Log is the set of level printers.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of error-check printers, one per level.
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf is the set of log-and-return-error printers, one per level.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger bundles the three printer sets.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Main is the logger everything in this module prints through.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	SetLoggers(Info)
}

// SetLoggers sets the numeric log level.
func SetLoggers(level int) {
	Main.Log.T.F("log level %s", LevelSpecs[level].Colorizer(LevelNames[level]))
	Level.Store(int32(level))
}

// GetLogLevel returns the level number for a level name, defaulting to
// Info.
func GetLogLevel(level string) (i int) {
	for i = range LevelNames {
		if level == LevelNames[i] {
			return i
		}
	}
	return Info
}

// SetLogLevel sets the log level by name.
func SetLogLevel(level string) {
	for i := range LevelNames {
		if level == LevelNames[i] {
			SetLoggers(i)
			return
		}
	}
}

func joinStrings(a ...any) (s string) {
	for i := range a {
		s += fmt.Sprint(a[i])
		if i < len(a)-1 {
			s += " "
		}
	}
	return
}

func printOne(w io.Writer, l int32, text string) {
	fmt.Fprintf(w, "%s%s %s %s\n",
		msgCol(timeStamp()),
		LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
		text,
		msgCol(getLoc(3)),
	)
}

// GetPrinter returns the full printer set for one level writing to w.
func GetPrinter(l int32, w io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...interface{}) {
			if Level.Load() < l {
				return
			}
			printOne(w, l, joinStrings(a...))
		},
		F: func(format string, a ...interface{}) {
			if Level.Load() < l {
				return
			}
			printOne(w, l, fmt.Sprintf(format, a...))
		},
		S: func(a ...interface{}) {
			if Level.Load() < l {
				return
			}
			printOne(w, l, spew.Sdump(a...))
		},
		C: func(closure func() string) {
			if Level.Load() < l {
				return
			}
			printOne(w, l, closure())
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if Level.Load() >= l {
				printOne(w, l, e.Error())
			}
			return true
		},
		Err: func(format string, a ...interface{}) error {
			if Level.Load() >= l {
				printOne(w, l, fmt.Sprintf(format, a...))
			}
			return fmt.Errorf(format, a...)
		},
	}
}

// GetNullPrinter returns a printer set that discards everything but still
// propagates errors.
func GetNullPrinter() LevelPrinter {
	return LevelPrinter{
		Ln:  func(a ...interface{}) {},
		F:   func(format string, a ...interface{}) {},
		S:   func(a ...interface{}) {},
		C:   func(closure func() string) {},
		Chk: func(e error) bool { return e != nil },
		Err: func(format string, a ...interface{}) error { return fmt.Errorf(format, a...) },
	}
}

// New creates the three printer sets writing to w.
func New(w io.Writer) (l *Log, c *Check, e *Errorf) {
	l = &Log{
		T: GetPrinter(Trace, w),
		D: GetPrinter(Debug, w),
		I: GetPrinter(Info, w),
		W: GetPrinter(Warn, w),
		E: GetPrinter(Error, w),
		F: GetPrinter(Fatal, w),
	}
	c = &Check{F: l.F.Chk, E: l.E.Chk, W: l.W.Chk, I: l.I.Chk, D: l.D.Chk, T: l.T.Chk}
	e = &Errorf{F: l.F.Err, E: l.E.Err, W: l.W.Err, I: l.I.Err, D: l.D.Err, T: l.T.Err}
	return
}

func timeStamp() (s string) {
	if NoTimeStamp.Load() {
		return
	}
	return time.Now().Format("2006-01-02T15:04:05Z07:00.000 ")
}

func getLoc(skip int) (output string) {
	_, file, line, _ := runtime.Caller(skip)
	output = fmt.Sprintf("%s:%d", file, line)
	return
}
