// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/capstyle/pkg/formatters"
	"github.com/arthur-debert/capstyle/pkg/sequences"
	"github.com/arthur-debert/capstyle/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// Fields returns the label/value pairs shown for a report. Escape bytes
// are made visible.
func Fields(rep *display.Report) [][2]string {
	kind := rep.NameKind
	if len(rep.Tokens) > 0 {
		kind += " (" + strings.Join(rep.Tokens, ", ") + ")"
	}
	fields := [][2]string{
		{"name", rep.Name},
		{"kind", kind},
	}

	if rep.Attribute != nil {
		fields = append(fields, [2]string{"attribute", rep.Attribute.Kind().String()})
		fields = append(fields, [2]string{"sequence", display.Visible(rep.Attribute.String())})
		switch a := rep.Attribute.(type) {
		case formatters.FormattingString:
			fields = append(fields, [2]string{"normal", display.Visible(a.Normal)})
		case formatters.ParameterizingString:
			fields = append(fields, [2]string{"normal", display.Visible(a.Normal)})
		}
	}
	if rep.Output != "" {
		fields = append(fields, [2]string{"output", display.Visible(rep.Output)})
	}

	styling := "off"
	if rep.Terminal.Styling {
		styling = "on"
	}
	fields = append(fields, [2]string{"terminal", fmt.Sprintf("%s (%s, %d colors, styling %s)",
		rep.Terminal.Kind, rep.Terminal.Backend, rep.Terminal.Colors, styling)})
	return fields
}

// RenderReport renders a resolution report as aligned lines
func (r *Renderer) RenderReport(rep *display.Report) error {
	for _, f := range Fields(rep) {
		if _, err := fmt.Fprintf(r.output, "%-10s %s\n", f[0]+":", f[1]); err != nil {
			return err
		}
	}
	return nil
}

// RenderPalette lists colours one per line
func (r *Renderer) RenderPalette(p *display.Palette) error {
	for _, s := range p.Swatches {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("color%d", s.Index)
		}
		line := fmt.Sprintf("%3d  %s %s", s.Index, sequences.Pad(name, 16), display.Visible(s.Sequence))
		if _, err := fmt.Fprintln(r.output, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
