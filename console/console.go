// Package console prints diagnostics to stderr through the standard logger,
// coloured when stderr is a terminal.
package console

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"
)

var (
	styleInfo  = color.Style{color.FgCyan}
	styleWarn  = color.Style{color.FgYellow}
	styleFatal = color.Style{color.FgRed, color.OpBold}
)

var (
	logger  = log.New(os.Stderr, "", log.LstdFlags)
	colored = isTerminal(os.Stderr)
	exit    = defaultExit
)

func defaultExit(code int) { os.Exit(code) }

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SetOutput redirects diagnostics, disabling colour unless w is a terminal.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
	f, ok := w.(*os.File)
	colored = ok && isTerminal(f)
}

func render(style color.Style, format string, args []any) string {
	msg := fmt.Sprintf(format, args...)
	if !colored {
		return msg
	}
	return style.Sprint(msg)
}

func Infof(format string, args ...any) {
	logger.Print(render(styleInfo, format, args))
}

func Warnf(format string, args ...any) {
	logger.Print(render(styleWarn, "warning: "+format, args))
}

// Fatalf logs a startup failure and exits with status 1.
func Fatalf(format string, args ...any) {
	logger.Print(render(styleFatal, "fatal: "+format, args))
	exit(1)
}
