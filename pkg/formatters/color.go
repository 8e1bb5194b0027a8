package formatters

import "strings"

// ResolveColor resolves a colour name using the default tables.
func ResolveColor(term Terminal, color string) Attribute {
	return DefaultResolver.ResolveColor(term, color)
}

// ResolveColor returns a FormattingString for color, such as "red",
// "on_blue" or "on_bright_green".
//
// An "on_" prefix selects the background, a "bright_" prefix shifts the
// index by BrightOffset. Terminals without colour or styling, and names
// whose base colour is unknown, get a NullCallableString.
func (r *Resolver) ResolveColor(term Terminal, color string) Attribute {
	if !term.DoesStyling() || term.NumberOfColors() <= 0 {
		return NullCallableString{}
	}

	name := color
	background := strings.HasPrefix(name, "on_")
	if background {
		name = strings.TrimPrefix(name, "on_")
	}
	bright := strings.HasPrefix(name, "bright_")
	if bright {
		name = strings.TrimPrefix(name, "bright_")
	}

	index, ok := r.ColorIndex[name]
	if !ok {
		return NullCallableString{}
	}
	if bright {
		index += r.BrightOffset
	}

	var seq string
	if background {
		seq = term.BackgroundColor(index)
	} else {
		seq = term.ForegroundColor(index)
	}
	return FormattingString{Sequence: seq, Normal: term.Normal()}
}
