package formatters

import (
	"encoding/json"

	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/capstyle/pkg/errors"
)

// Serialized sequences are Latin-1 decoded so that every byte maps to one
// code point; JSON and YAML would otherwise mangle bytes that are not
// valid UTF-8.

func toText(raw string) (string, error) {
	text, err := charmap.ISO8859_1.NewDecoder().String(raw)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrSerialize, "failed to decode sequence as latin-1")
	}
	return text, nil
}

func fromText(text string) (string, error) {
	raw, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrSerialize, "sequence is not representable in latin-1")
	}
	return raw, nil
}

// envelope is the wire form of every Attribute.
type envelope struct {
	Kind     string `json:"kind" yaml:"kind"`
	Sequence string `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	Normal   string `json:"normal,omitempty" yaml:"normal,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
}

func encodeEnvelope(attr Attribute) (envelope, error) {
	env := envelope{Kind: attr.Kind().String()}
	var err error
	switch a := attr.(type) {
	case FormattingString:
		if env.Sequence, err = toText(a.Sequence); err != nil {
			return env, err
		}
		env.Normal, err = toText(a.Normal)
	case ParameterizingString:
		if env.Sequence, err = toText(a.Sequence); err != nil {
			return env, err
		}
		if env.Normal, err = toText(a.Normal); err != nil {
			return env, err
		}
		env.Name = a.Name
	case NullCallableString:
	default:
		err = errors.Newf(errors.ErrSerialize, "cannot serialize attribute of type %T", attr)
	}
	return env, err
}

func (env envelope) decode() (Attribute, error) {
	seq, err := fromText(env.Sequence)
	if err != nil {
		return nil, err
	}
	normal, err := fromText(env.Normal)
	if err != nil {
		return nil, err
	}
	switch env.Kind {
	case KindFormatting.String():
		return FormattingString{Sequence: seq, Normal: normal}, nil
	case KindParameterizing.String():
		return ParameterizingString{Sequence: seq, Normal: normal, Name: env.Name}, nil
	case KindNull.String():
		return NullCallableString{}, nil
	default:
		return nil, errors.Newf(errors.ErrSerialize, "unknown attribute kind %q", env.Kind)
	}
}

// Marshal encodes any Attribute as a tagged JSON object.
func Marshal(attr Attribute) ([]byte, error) {
	env, err := encodeEnvelope(attr)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// Unmarshal decodes the output of Marshal. A decoded ParameterizingString
// uses DefaultParameterizer until rebound with WithParameterizer.
func Unmarshal(data []byte) (Attribute, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, errors.ErrSerialize, "failed to parse attribute")
	}
	return env.decode()
}

// MarshalJSON implements json.Marshaler.
func (f FormattingString) MarshalJSON() ([]byte, error) { return Marshal(f) }

// UnmarshalJSON implements json.Unmarshaler.
func (f *FormattingString) UnmarshalJSON(data []byte) error {
	attr, err := Unmarshal(data)
	if err != nil {
		return err
	}
	fs, ok := attr.(FormattingString)
	if !ok {
		return errors.Newf(errors.ErrSerialize, "expected formatting attribute, got %s", attr.Kind())
	}
	*f = fs
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p ParameterizingString) MarshalJSON() ([]byte, error) { return Marshal(p) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *ParameterizingString) UnmarshalJSON(data []byte) error {
	attr, err := Unmarshal(data)
	if err != nil {
		return err
	}
	ps, ok := attr.(ParameterizingString)
	if !ok {
		return errors.Newf(errors.ErrSerialize, "expected parameterizing attribute, got %s", attr.Kind())
	}
	*p = ps
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f FormattingString) MarshalYAML() (interface{}, error) { return encodeEnvelope(f) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FormattingString) UnmarshalYAML(node *yaml.Node) error {
	var env envelope
	if err := node.Decode(&env); err != nil {
		return errors.Wrap(err, errors.ErrSerialize, "failed to parse attribute")
	}
	attr, err := env.decode()
	if err != nil {
		return err
	}
	fs, ok := attr.(FormattingString)
	if !ok {
		return errors.Newf(errors.ErrSerialize, "expected formatting attribute, got %s", attr.Kind())
	}
	*f = fs
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p ParameterizingString) MarshalYAML() (interface{}, error) { return encodeEnvelope(p) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *ParameterizingString) UnmarshalYAML(node *yaml.Node) error {
	var env envelope
	if err := node.Decode(&env); err != nil {
		return errors.Wrap(err, errors.ErrSerialize, "failed to parse attribute")
	}
	attr, err := env.decode()
	if err != nil {
		return err
	}
	ps, ok := attr.(ParameterizingString)
	if !ok {
		return errors.Newf(errors.ErrSerialize, "expected parameterizing attribute, got %s", attr.Kind())
	}
	*p = ps
	return nil
}
