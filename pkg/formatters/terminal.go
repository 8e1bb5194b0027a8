package formatters

// Parameterizer substitutes runtime arguments into a capability template.
type Parameterizer interface {
	Parameterize(seq []byte, args ...any) ([]byte, error)
}

// ParameterizerFunc adapts a plain function to the Parameterizer interface.
type ParameterizerFunc func(seq []byte, args ...any) ([]byte, error)

// Parameterize calls f(seq, args...).
func (f ParameterizerFunc) Parameterize(seq []byte, args ...any) ([]byte, error) {
	return f(seq, args...)
}

// Terminal is everything the resolver needs to know about a terminal.
//
// Implementations own the capability database. Lookup reports false when
// the terminal has no such capability.
type Terminal interface {
	Parameterizer

	// DoesStyling is false when output must stay free of escape sequences.
	DoesStyling() bool

	// NumberOfColors is the colour count of the terminal, 0 or less for none.
	NumberOfColors() int

	Lookup(name string) ([]byte, bool)

	// Normal is the sequence that resets every attribute.
	Normal() string

	ForegroundColor(index int) string
	BackgroundColor(index int) string

	// Sugar maps mnemonic names to capability names, e.g. move_x to hpa.
	Sugar() map[string]string
}
