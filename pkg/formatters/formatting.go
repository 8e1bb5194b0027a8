package formatters

import (
	"fmt"
	"strings"
)

// AttributeKind tags the concrete type behind an Attribute.
type AttributeKind int

const (
	// KindNull is a NullCallableString
	KindNull AttributeKind = iota
	// KindFormatting is a FormattingString
	KindFormatting
	// KindParameterizing is a ParameterizingString
	KindParameterizing
)

// String returns the string representation of the kind
func (k AttributeKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindFormatting:
		return "formatting"
	case KindParameterizing:
		return "parameterizing"
	default:
		return "unknown"
	}
}

// Attribute is the result of resolving an attribute name.
//
// String returns the resolved sequence. Two attributes are Equal when their
// sequences match; reset sequences and names do not take part.
type Attribute interface {
	fmt.Stringer
	Kind() AttributeKind
	Equal(other fmt.Stringer) bool
}

// FormattingString wraps text between Sequence and Normal.
type FormattingString struct {
	Sequence string
	Normal   string
}

// NewFormattingString returns a FormattingString for seq, reset by normal.
func NewFormattingString(seq, normal string) FormattingString {
	return FormattingString{Sequence: seq, Normal: normal}
}

// String returns the start sequence.
func (f FormattingString) String() string { return f.Sequence }

// Kind returns KindFormatting.
func (f FormattingString) Kind() AttributeKind { return KindFormatting }

// Equal compares resolved sequences.
func (f FormattingString) Equal(other fmt.Stringer) bool {
	return other != nil && f.Sequence == other.String()
}

// Wrap returns text between the start and reset sequences. With an empty
// start sequence the text comes back unchanged, without a stray reset.
func (f FormattingString) Wrap(text string) string {
	if f.Sequence == "" {
		return text
	}
	return f.Sequence + text + f.Normal
}

// Call wraps the concatenation of args, each formatted with fmt.Sprint.
func (f FormattingString) Call(args ...any) string {
	return f.Wrap(joinArgs(args))
}

// NullCallableString stands in when no sequence applies. It renders as ""
// and swallows whatever it is called with.
type NullCallableString struct{}

// String returns "".
func (NullCallableString) String() string { return "" }

// Kind returns KindNull.
func (NullCallableString) Kind() AttributeKind { return KindNull }

// Equal reports whether other renders as "".
func (NullCallableString) Equal(other fmt.Stringer) bool {
	return other != nil && other.String() == ""
}

// Wrap returns text unchanged.
func (NullCallableString) Wrap(text string) string { return text }

// Call returns "" for any arguments, except a lone string which is
// returned as is. That keeps term.Attr("red") usable on plain output while
// misused calls such as Call(3) or Call("a", 1) still produce nothing.
func (NullCallableString) Call(args ...any) string {
	if len(args) == 1 {
		if text, ok := args[0].(string); ok {
			return text
		}
	}
	return ""
}

func joinArgs(args []any) string {
	if len(args) == 1 {
		if text, ok := args[0].(string); ok {
			return text
		}
	}
	var b strings.Builder
	for _, arg := range args {
		fmt.Fprint(&b, arg)
	}
	return b.String()
}
