// Package display holds the data passed from commands to renderers.
package display

import (
	"strconv"

	"github.com/arthur-debert/capstyle/pkg/formatters"
)

// TerminalInfo describes the terminal a report was produced for
type TerminalInfo struct {
	Kind    string `json:"kind"`
	Backend string `json:"backend"`
	Colors  int    `json:"colors"`
	Styling bool   `json:"styling"`
}

// Report is the result of resolving one attribute name
type Report struct {
	Name     string   `json:"name"`
	NameKind string   `json:"name_kind"`
	Tokens   []string `json:"tokens,omitempty"`

	// Attribute is serialized by renderers through formatters.Marshal
	Attribute formatters.Attribute `json:"-"`

	// Output is the text produced by applying or calling the attribute
	Output string `json:"output,omitempty"`

	Terminal TerminalInfo `json:"terminal"`
}

// Swatch is one colour entry of the palette listing
type Swatch struct {
	Name     string `json:"name"`
	Index    int    `json:"index"`
	Sequence string `json:"sequence"`
	Sample   string `json:"sample"`
}

// Palette is the result of the colors command
type Palette struct {
	Terminal TerminalInfo `json:"terminal"`
	Swatches []Swatch     `json:"swatches"`
}

// Visible renders escape bytes as Go escapes so a sequence can be shown
// on screen without taking effect
func Visible(seq string) string {
	q := strconv.QuoteToASCII(seq)
	return q[1 : len(q)-1]
}
