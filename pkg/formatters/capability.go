package formatters

// ResolveCapability returns the raw sequence of a named capability, or ""
// when the terminal does not style output or lacks the capability.
//
// Names are first passed through the terminal's sugar table, so "move_x"
// is looked up as "hpa" on terminals that define that alias. A terminal
// that does no styling is never queried.
func ResolveCapability(term Terminal, name string) string {
	if !term.DoesStyling() {
		return ""
	}
	if alias, ok := term.Sugar()[name]; ok {
		name = alias
	}
	seq, ok := term.Lookup(name)
	if !ok || seq == nil {
		return ""
	}
	return string(seq)
}
