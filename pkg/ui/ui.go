// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/ui/display"
	"github.com/arthur-debert/capstyle/pkg/ui/json"
	"github.com/arthur-debert/capstyle/pkg/ui/terminal"
	"github.com/arthur-debert/capstyle/pkg/ui/text"
	"golang.org/x/term"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderReport renders the resolution of one attribute name
	RenderReport(rep *display.Report) error

	// RenderPalette renders the colour listing
	RenderPalette(p *display.Palette) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// Auto picks the terminal renderer only for a color capable terminal.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output, Width(output))
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// Width returns the column count of output, or 0 when it is not a
// terminal
func Width(output io.Writer) int {
	file, ok := output.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}
