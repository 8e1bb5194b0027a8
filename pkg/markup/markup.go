package markup

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/formatters"
	"github.com/beevik/etree"
)

// NoFormatTag holds content shown only on unstyled output
const NoFormatTag = "no-format"

// Terminal is what markup needs from a terminal
type Terminal interface {
	DoesStyling() bool
	Normal() string
	Attr(name string) formatters.Attribute
}

// styleLookup is implemented by terminals that know semantic styles
type styleLookup interface {
	StyleAttr(style string) (string, bool)
}

// Render executes text as a Go template with data, then expands tags
func Render(text string, data any, term Terminal) (string, error) {
	tmpl, err := template.New("markup").Parse(text)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to parse template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to execute template")
	}

	return ExpandTags(buf.String(), term)
}

// ExpandTags replaces tags with the sequences of the attributes they
// name. Input that is not well formed comes back unchanged.
func ExpandTags(text string, term Terminal) (string, error) {
	if text == "" {
		return "", nil
	}

	root, ok := parse(text)
	if !ok {
		return text, nil
	}

	e := &expander{term: term, styling: term.DoesStyling()}
	e.walk(root)
	return e.out.String(), nil
}

// StripTags removes all tags, keeping their content
func StripTags(text string) string {
	root, ok := parse(text)
	if !ok {
		return text
	}

	var b strings.Builder
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, tok := range el.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(root)
	return b.String()
}

// parse wraps text in a root element so that mixed content is valid XML
func parse(text string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	doc.ReadSettings.ValidateInput = true
	if err := doc.ReadFromString("<markup>" + text + "</markup>"); err != nil {
		return nil, false
	}
	root := doc.Root()
	return root, root != nil
}

type expander struct {
	term    Terminal
	styling bool
	out     strings.Builder

	// active holds the start sequences of the open tags
	active []string
}

func (e *expander) walk(el *etree.Element) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			e.out.WriteString(t.Data)
		case *etree.Element:
			e.element(t)
		}
	}
}

func (e *expander) element(el *etree.Element) {
	if el.Tag == NoFormatTag {
		if !e.styling {
			e.walk(el)
		}
		return
	}

	seq, wraps := e.sequence(el.Tag)
	if seq == "" {
		e.walk(el)
		return
	}

	if len(el.Child) == 0 {
		// an empty attribute tag has nothing to style; capabilities such
		// as <clear_eol/> are emitted on their own
		if !wraps {
			e.out.WriteString(seq)
		}
		return
	}

	e.out.WriteString(seq)
	e.active = append(e.active, seq)
	e.walk(el)
	e.active = e.active[:len(e.active)-1]

	e.out.WriteString(e.term.Normal())
	for _, outer := range e.active {
		e.out.WriteString(outer)
	}
}

// sequence resolves a tag to its start sequence, trying semantic styles
// before attribute names. wraps is false for capabilities, which are not
// followed by a reset.
func (e *expander) sequence(tag string) (seq string, wraps bool) {
	if !e.styling {
		return "", false
	}

	name := tag
	if styles, ok := e.term.(styleLookup); ok {
		if attr, found := styles.StyleAttr(tag); found {
			name = attr
		}
	}

	switch attr := e.term.Attr(name).(type) {
	case formatters.FormattingString:
		return attr.Sequence, true
	case formatters.ParameterizingString:
		// capabilities without parameters are usable as is
		if strings.Contains(attr.Sequence, "%p") {
			return "", false
		}
		return attr.Sequence, false
	default:
		return "", false
	}
}
