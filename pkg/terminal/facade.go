package terminal

import (
	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/formatters"
	"github.com/arthur-debert/capstyle/pkg/logging"
)

// Attr resolves an attribute name such as "bold_red" or "move_x".
//
// Results are cached per Terminal; concurrent first lookups of one name
// resolve once. A terminal that does no styling always returns a
// NullCallableString.
func (t *Terminal) Attr(name string) formatters.Attribute {
	if !t.styling {
		return formatters.NullCallableString{}
	}

	t.mu.RLock()
	attr, ok := t.cache[name]
	t.mu.RUnlock()
	if ok {
		return attr
	}

	v, _, _ := t.group.Do(name, func() (interface{}, error) {
		t.mu.RLock()
		cached, ok := t.cache[name]
		t.mu.RUnlock()
		if ok {
			return cached, nil
		}

		attr := t.resolver.ResolveAttribute(t, name)
		kind, _ := t.resolver.Classify(name)
		logging.LogResolution(t.logger, name, kind.String(), attr.String())

		t.mu.Lock()
		t.cache[name] = attr
		t.mu.Unlock()
		return attr, nil
	})
	return v.(formatters.Attribute)
}

// Classify reports how name is interpreted by this terminal's tables
func (t *Terminal) Classify(name string) (formatters.NameKind, []string) {
	return t.resolver.Classify(name)
}

// Apply wraps text in the attribute name
func (t *Terminal) Apply(name, text string) (string, error) {
	return formatters.Apply(t.Attr(name), text)
}

// Call evaluates a parameterized capability, for example
// Call("move", 3, 10) for cursor addressing.
//
// Plain attributes accept no arguments. Without styling the result is "".
func (t *Terminal) Call(name string, args ...any) (string, error) {
	switch attr := t.Attr(name).(type) {
	case formatters.ParameterizingString:
		fs, err := attr.Call(args...)
		if err != nil {
			return "", err
		}
		return fs.String(), nil
	case formatters.FormattingString:
		if len(args) > 0 {
			return "", errors.Newf(errors.ErrInvalidInput, "%q takes no parameters", name).
				WithDetail("name", name)
		}
		return attr.String(), nil
	default:
		return "", nil
	}
}

// Style wraps text in the attribute configured for a semantic style
func (t *Terminal) Style(style, text string) (string, error) {
	name, ok := t.styles[style]
	if !ok {
		return "", errors.Newf(errors.ErrNotFound, "unknown style %q", style).
			WithDetail("style", style)
	}
	return t.Apply(name, text)
}
