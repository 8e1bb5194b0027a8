package formatters

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/capstyle/pkg/errors"
)

// UnnamedCapability is the name of a ParameterizingString built without one.
const UnnamedCapability = "<not specified>"

// ErrArgumentType matches, through errors.Is, any error carrying the
// PARAM_TYPE code. Parameterizers return such an error when an argument
// has a type the template cannot take.
var ErrArgumentType = errors.New(errors.ErrParamType, "invalid argument type")

// ParameterizingString is a capability template waiting for arguments,
// such as the sequence behind "move_x" or "cup".
//
// The parameterizer is not part of the value: it is skipped by Equal and by
// serialization, and a value without one falls back to DefaultParameterizer.
// Compare values with Equal. When the parameterizer is a ParameterizerFunc,
// == on the values (or on interfaces holding them) panics, so they cannot
// be map keys either.
type ParameterizingString struct {
	Sequence string
	Normal   string
	Name     string

	params Parameterizer
}

// NewParameterizingString returns a template for seq that resets with
// normal. An empty name is recorded as UnnamedCapability. A nil params
// uses DefaultParameterizer.
func NewParameterizingString(seq, normal, name string, params Parameterizer) ParameterizingString {
	if name == "" {
		name = UnnamedCapability
	}
	return ParameterizingString{Sequence: seq, Normal: normal, Name: name, params: params}
}

// String returns the template itself.
func (p ParameterizingString) String() string { return p.Sequence }

// Kind returns KindParameterizing.
func (p ParameterizingString) Kind() AttributeKind { return KindParameterizing }

// Equal compares templates.
func (p ParameterizingString) Equal(other fmt.Stringer) bool {
	return other != nil && p.Sequence == other.String()
}

// WithParameterizer returns a copy of p bound to params.
func (p ParameterizingString) WithParameterizer(params Parameterizer) ParameterizingString {
	p.params = params
	return p
}

// Call substitutes args into the template and returns the result as a
// FormattingString that resets with p.Normal.
//
// A type error raised while any argument is a string most likely means a
// formatting name was misspelled, e.g. term.Apply("bright_rde", "text"),
// and is reported as a CAPABILITY_MISUSE error naming the capability.
// Every other error is returned untouched.
func (p ParameterizingString) Call(args ...any) (FormattingString, error) {
	params := p.params
	if params == nil {
		params = DefaultParameterizer
	}

	seq, err := params.Parameterize([]byte(p.Sequence), args...)
	if err != nil {
		if stderrors.Is(err, ErrArgumentType) && hasStringArg(args) {
			return FormattingString{}, errors.Wrapf(err, errors.ErrCapabilityMisuse,
				"a native or nonexistent capability template %q received invalid argument %q. "+
					"You probably misspelled a formatting call like \"bright_red\"", p.Name, args).
				WithDetail("capability", p.Name).
				WithDetail("args", args)
		}
		return FormattingString{}, err
	}
	return FormattingString{Sequence: string(seq), Normal: p.Normal}, nil
}

func hasStringArg(args []any) bool {
	for _, arg := range args {
		if _, ok := arg.(string); ok {
			return true
		}
	}
	return false
}
