package terminal

import (
	"io"
	"os"

	"github.com/arthur-debert/capstyle/pkg/config"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is connected to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ShouldStyle decides whether output to w gets escape sequences.
//
// "always" and "never" are taken as given. "auto" styles only a terminal
// output whose kind is not "dumb", and only while NO_COLOR is unset.
func ShouldStyle(mode, kind string, w io.Writer) bool {
	switch mode {
	case config.StylingAlways:
		return true
	case config.StylingNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" || kind == "dumb" {
		return false
	}
	return IsTerminal(w)
}
