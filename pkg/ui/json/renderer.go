// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/formatters"
	"github.com/arthur-debert/capstyle/pkg/ui/display"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// report adds the serialized attribute envelope to display.Report
type report struct {
	*display.Report
	Attribute json.RawMessage `json:"attribute,omitempty"`
}

// RenderReport renders a resolution report, the attribute in its
// transport envelope
func (r *Renderer) RenderReport(rep *display.Report) error {
	out := report{Report: rep}
	if rep.Attribute != nil {
		data, err := formatters.Marshal(rep.Attribute)
		if err != nil {
			return err
		}
		out.Attribute = data
	}
	return r.encoder.Encode(out)
}

// RenderPalette renders the colour listing
func (r *Renderer) RenderPalette(p *display.Palette) error {
	return r.encoder.Encode(p)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		errorObj["code"] = string(code)
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
