package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Paint wraps s in color when colors are on for w.
func Paint(w io.Writer, color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || isTTY(w) {
		return color + s + reset
	}
	return s
}

// C is Paint for stdout.
func C(color, s string) string { return Paint(os.Stdout, color, s) }

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, Paint(w, current.Success, current.SymOK+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, Paint(w, current.Error, current.SymFail+" "+msg)) }
