// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/capstyle/pkg/ui/display"
	"github.com/arthur-debert/capstyle/pkg/ui/styles"
	"github.com/arthur-debert/capstyle/pkg/ui/text"
	"github.com/pterm/pterm"
)

// swatchCell is the width of one palette grid cell
const swatchCell = 4

// Renderer provides rich terminal output using lipgloss styles and
// pterm tables
type Renderer struct {
	output io.Writer
	width  int
}

// New creates a new terminal renderer. width is the column count used
// to lay out the palette grid; 0 means 80.
func New(w io.Writer, width int) (*Renderer, error) {
	if width <= 0 {
		width = 80
	}
	return &Renderer{output: w, width: width}, nil
}

// RenderReport renders a resolution report with a live preview of the
// attribute
func (r *Renderer) RenderReport(rep *display.Report) error {
	var b strings.Builder
	for _, f := range text.Fields(rep) {
		value := f[1]
		switch f[0] {
		case "kind":
			value = styles.Render("Kind", value)
		case "sequence", "normal", "output":
			value = styles.Render("Sequence", value)
		}
		b.WriteString(styles.Render("Label", f[0]) + value + "\n")
	}

	if preview := preview(rep); preview != "" {
		b.WriteString(styles.Render("Label", "preview") + preview + "\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// preview is the raw sample output, or the attribute wrapped around its
// own name
func preview(rep *display.Report) string {
	if !rep.Terminal.Styling {
		return ""
	}
	if rep.Output != "" {
		return rep.Output
	}
	if rep.Attribute == nil || rep.Attribute.String() == "" {
		return ""
	}
	type wrapper interface{ Wrap(string) string }
	if w, ok := rep.Attribute.(wrapper); ok {
		return w.Wrap(rep.Name)
	}
	return ""
}

// RenderPalette draws a grid of background swatches sized to the
// terminal width, then a table of the named colours
func (r *Renderer) RenderPalette(p *display.Palette) error {
	header := fmt.Sprintf("%s: %d colors", p.Terminal.Kind, p.Terminal.Colors)
	if _, err := fmt.Fprintln(r.output, styles.Render("Header", header)); err != nil {
		return err
	}

	perRow := r.width / swatchCell
	if perRow < 1 {
		perRow = 1
	}

	var grid strings.Builder
	for i, s := range p.Swatches {
		grid.WriteString(s.Sample)
		if (i+1)%perRow == 0 || i == len(p.Swatches)-1 {
			grid.WriteString("\n")
		}
	}
	if _, err := io.WriteString(r.output, grid.String()+"\n"); err != nil {
		return err
	}

	data := pterm.TableData{{"index", "name", "sequence"}}
	for _, s := range p.Swatches {
		if s.Name == "" {
			continue
		}
		data = append(data, []string{strconv.Itoa(s.Index), s.Name, display.Visible(s.Sequence)})
	}
	if len(data) == 1 {
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithWriter(r.output).WithData(data).Render()
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, styles.Render("Error", "Error:")+" "+err.Error())
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
