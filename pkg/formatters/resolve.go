package formatters

import "strings"

// NameKind is the shape of an attribute name.
type NameKind int

const (
	// NameCapability is a plain or parameterized capability such as "move_x"
	NameCapability NameKind = iota
	// NameColor is a colour such as "red" or "on_bright_blue"
	NameColor
	// NameCompoundable is a single attribute such as "bold"
	NameCompoundable
	// NameCompound joins colours and compoundables, e.g. "bold_red_on_white"
	NameCompound
)

// String returns the string representation of the kind
func (k NameKind) String() string {
	switch k {
	case NameCapability:
		return "capability"
	case NameColor:
		return "color"
	case NameCompoundable:
		return "compoundable"
	case NameCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// Classify reports the kind of name. For NameCompound it also returns the
// tokens in split order.
//
// A name splits into a compound only when it has several tokens and every
// one of them is a colour or compoundable; "move_x" therefore stays a
// capability.
func (r *Resolver) Classify(name string) (NameKind, []string) {
	switch {
	case r.IsColor(name):
		return NameColor, nil
	case r.IsCompoundable(name):
		return NameCompoundable, nil
	}

	tokens := SplitCompound(name)
	if len(tokens) < 2 {
		return NameCapability, nil
	}
	for _, token := range tokens {
		if !r.IsColor(token) && !r.IsCompoundable(token) {
			return NameCapability, nil
		}
	}
	return NameCompound, tokens
}

// ResolveAttribute resolves name using the default tables.
func ResolveAttribute(term Terminal, name string) Attribute {
	return DefaultResolver.ResolveAttribute(term, name)
}

// ResolveAttribute turns name into an Attribute. It never fails: unknown
// names come back as a ParameterizingString, possibly with an empty
// template, which can still be called later.
func (r *Resolver) ResolveAttribute(term Terminal, name string) Attribute {
	kind, tokens := r.Classify(name)
	switch kind {
	case NameColor:
		return r.ResolveColor(term, name)
	case NameCompoundable:
		return FormattingString{Sequence: ResolveCapability(term, name), Normal: term.Normal()}
	case NameCompound:
		var seq strings.Builder
		for _, token := range tokens {
			seq.WriteString(r.ResolveAttribute(term, token).String())
		}
		return FormattingString{Sequence: seq.String(), Normal: term.Normal()}
	default:
		return NewParameterizingString(ResolveCapability(term, name), term.Normal(), name, term)
	}
}

// Apply formats text with attr.
//
// FormattingString and NullCallableString wrap the text. A
// ParameterizingString is called with text as its only argument, which
// normally fails with a CAPABILITY_MISUSE error pointing at a misspelled
// name.
func Apply(attr Attribute, text string) (string, error) {
	switch a := attr.(type) {
	case FormattingString:
		return a.Wrap(text), nil
	case NullCallableString:
		return a.Call(text), nil
	case ParameterizingString:
		out, err := a.Call(text)
		if err != nil {
			return "", err
		}
		return out.String(), nil
	default:
		return text, nil
	}
}
